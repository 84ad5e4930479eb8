package config

import (
	"fmt"

	"github.com/goliatone/go-formfields/pkg/fields"
	"github.com/goliatone/go-formfields/pkg/form"
)

// BuildForm creates a form from def, building each field through registry
// (the default registry when nil). opts are applied after the options
// derived from def, so callers can add a translator or theme.
func BuildForm(def FormDefinition, registry *fields.Registry, opts ...form.Option) (*form.Form, error) {
	if registry == nil {
		registry = fields.NewDefaultRegistry()
	}

	var options []form.Option
	if def.FormTag != nil {
		options = append(options, form.WithFormTag(*def.FormTag))
	}
	if def.Action != "" || def.Method != "" || def.Enctype != "" {
		options = append(options, form.WithAction(def.Action, def.Method, def.Enctype))
	}
	if len(def.CSSClasses) > 0 {
		options = append(options, form.WithCSSClasses(def.CSSClasses...))
	}
	if def.BaseTabIndex != 0 {
		options = append(options, form.WithBaseTabIndex(def.BaseTabIndex))
	}
	if def.AssetsBaseURL != "" {
		options = append(options, form.WithAssetsBaseURL(def.AssetsBaseURL))
	}
	options = append(options, opts...)
	if def.Translate != nil {
		options = append(options, form.WithTranslation(*def.Translate))
	}

	f := form.New(def.ID, options...)
	for idx, cfg := range def.Fields {
		field, err := registry.Build(cfg)
		if err != nil {
			return nil, fmt.Errorf("config: form %q field %d: %w", def.ID, idx, err)
		}
		if err := f.AddField(field); err != nil {
			return nil, fmt.Errorf("config: form %q: %w", def.ID, err)
		}
	}
	return f, nil
}
