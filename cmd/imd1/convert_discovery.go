package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrInvalidExtension is returned for an input file that is not Markdown.
var ErrInvalidExtension = errors.New("file must have .md or .markdown extension")

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// discoverFiles lists the Markdown files under inputPath in lexical
// order, skipping dot-directories. ext is the output extension, with its
// leading dot.
func discoverFiles(inputPath, outputDir, ext string) ([]FileToConvert, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if err := validateMarkdownExtension(inputPath); err != nil {
			return nil, err
		}
		outPath := resolveOutputPath(inputPath, outputDir, "", ext)
		return []FileToConvert{{InputPath: inputPath, OutputPath: outPath}}, nil
	}

	var files []FileToConvert
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		switch {
		case err != nil:
			return fmt.Errorf("scanning %s: %w", path, err)
		case d.IsDir() && path != inputPath && strings.HasPrefix(d.Name(), "."):
			return filepath.SkipDir
		case d.IsDir() || !looksLikeMarkdown(path):
			return nil
		}
		files = append(files, FileToConvert{
			InputPath:  path,
			OutputPath: resolveOutputPath(path, outputDir, inputPath, ext),
		})
		return nil
	})

	return files, err
}

// resolveOutputPath places the output for inputPath:
//   - next to the source when outputDir is empty
//   - at outputDir itself for a single file when outputDir ends in ext
//   - under outputDir, keeping the path relative to baseInputDir
func resolveOutputPath(inputPath, outputDir, baseInputDir, ext string) string {
	name := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath)) + ext

	switch {
	case outputDir == "":
		return filepath.Join(filepath.Dir(inputPath), name)
	case baseInputDir == "":
		if strings.HasSuffix(outputDir, ext) {
			return outputDir
		}
		return filepath.Join(outputDir, name)
	}

	rel, err := filepath.Rel(baseInputDir, inputPath)
	if err != nil {
		return filepath.Join(outputDir, name)
	}
	return filepath.Join(outputDir, filepath.Dir(rel), name)
}

// validateMarkdownExtension checks that the file has a .md or .markdown extension.
func validateMarkdownExtension(path string) error {
	if !looksLikeMarkdown(path) {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(path))
	}
	return nil
}
