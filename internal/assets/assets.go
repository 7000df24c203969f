package assets

// defaultLoader serves the embedded assets.
var defaultLoader = NewEmbeddedLoader()

// LoadStyle loads an embedded CSS style by name, without extension.
func LoadStyle(name string) (string, error) {
	return defaultLoader.LoadStyle(name)
}

// LoadTemplateSet loads an embedded template set by name.
func LoadTemplateSet(name string) (*TemplateSet, error) {
	return defaultLoader.LoadTemplateSet(name)
}
