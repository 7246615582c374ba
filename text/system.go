package text

import (
	"fmt"

	"github.com/flopp/go-findfont"
)

// FindSystemFont returns the path of an installed font file whose name
// matches name, searching the platform's font directories. The name is a
// file name with or without extension, e.g. "DejaVuSans" or "arial.ttf".
func FindSystemFont(name string) (string, error) {
	path, err := findfont.Find(name)
	if err != nil || path == "" {
		return "", fmt.Errorf("%w: %q", ErrFontNotFound, name)
	}
	return path, nil
}

// LoadSystemFont finds an installed font by name and loads face index.
func LoadSystemFont(name string, index int, opts ...SourceOption) (*FontSource, error) {
	path, err := FindSystemFont(name)
	if err != nil {
		return nil, err
	}
	slogger().Debug("text: system font resolved", "name", name, "path", path)
	return LoadFontFile(path, index, opts...)
}
