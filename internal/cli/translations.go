package cli

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formfields/pkg/render"
)

// loadTranslations reads a catalog file shaped as locale -> key -> text.
func loadTranslations(path, fallbackLocale string) (*render.MapTranslator, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read translations: %w", err)
	}
	catalogs := make(map[string]map[string]string)
	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&catalogs); err != nil {
		return nil, fmt.Errorf("parse translations %s: %w", path, err)
	}
	return render.NewMapTranslator(fallbackLocale, catalogs), nil
}
