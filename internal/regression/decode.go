package regression

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Extensions lists the artifact encodings Decode understands.
var Extensions = []string{".json", ".yaml", ".yml", ".toml"}

// SupportedExt reports whether ext (with dot, any case) is a known encoding.
func SupportedExt(ext string) bool {
	ext = strings.ToLower(ext)
	for _, e := range Extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Decode parses an artifact body according to ext.
func Decode(b []byte, ext string) (*Linear, error) {
	var l Linear
	switch ext = strings.ToLower(ext); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &l); err != nil {
			return nil, err
		}
	case ".json":
		if err := json.Unmarshal(b, &l); err != nil {
			return nil, err
		}
	case ".toml":
		if err := toml.Unmarshal(b, &l); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported artifact extension: %s", ext)
	}
	if err := l.Check(); err != nil {
		return nil, err
	}
	return &l, nil
}

// LoadFile reads and decodes the artifact at path.
func LoadFile(path string) (*Linear, error) {
	if path == "" {
		return nil, fmt.Errorf("empty artifact path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	l, err := Decode(b, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return l, nil
}
