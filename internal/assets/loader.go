package assets

// AssetLoader loads CSS styles and document template sets.
type AssetLoader interface {
	// LoadStyle loads a CSS style by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadStyle(name string) (string, error)

	// LoadTemplateSet loads the document templates stored under name.
	// Returns ErrTemplateSetNotFound if neither template exists and
	// ErrIncompleteTemplateSet if only one does.
	LoadTemplateSet(name string) (*TemplateSet, error)
}
