package cli

import (
	"fmt"
	"os"
	"strings"

	theme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"
)

type themeVariantFile struct {
	Tokens       map[string]string `yaml:"tokens"`
	Templates    map[string]string `yaml:"templates"`
	AssetsPrefix string            `yaml:"assetsPrefix"`
}

type themeFile struct {
	Name         string                      `yaml:"name"`
	Version      string                      `yaml:"version"`
	Tokens       map[string]string           `yaml:"tokens"`
	Templates    map[string]string           `yaml:"templates"`
	AssetsPrefix string                      `yaml:"assetsPrefix"`
	Variants     map[string]themeVariantFile `yaml:"variants"`
}

// manifestSelector serves a single theme manifest read from disk.
type manifestSelector struct {
	manifest *theme.Manifest
}

func loadThemeFile(path string) (*manifestSelector, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme: %w", err)
	}
	var raw themeFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse theme %s: %w", path, err)
	}
	if strings.TrimSpace(raw.Name) == "" {
		return nil, fmt.Errorf("theme %s has no name", path)
	}

	manifest := &theme.Manifest{
		Name:      raw.Name,
		Version:   raw.Version,
		Tokens:    raw.Tokens,
		Templates: raw.Templates,
		Assets:    theme.Assets{Prefix: raw.AssetsPrefix},
	}
	if len(raw.Variants) > 0 {
		manifest.Variants = make(map[string]theme.Variant, len(raw.Variants))
		for name, variant := range raw.Variants {
			manifest.Variants[name] = theme.Variant{
				Tokens:    variant.Tokens,
				Templates: variant.Templates,
				Assets:    theme.Assets{Prefix: variant.AssetsPrefix},
			}
		}
	}
	return &manifestSelector{manifest: manifest}, nil
}

func (s *manifestSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	if name != "" && name != s.manifest.Name {
		return nil, fmt.Errorf("theme %q not found", name)
	}
	if variant != "" {
		if _, ok := s.manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("theme %q has no variant %q", s.manifest.Name, variant)
		}
	}
	return &theme.Selection{Theme: s.manifest.Name, Variant: variant, Manifest: s.manifest}, nil
}
