package fields

import "github.com/goliatone/go-formfields/pkg/view"

// Button renders a <button type="button"> with default text "OK".
type Button struct {
	Base
	ButtonContent
}

var buttonOptions = allowOptions([]option{optValue, optIcon})

// NewButton builds a Button from cfg.
func NewButton(cfg Config) (*Button, error) {
	return newButton(TypeButton, DefaultButtonValue, ButtonTemplate, cfg, buttonOptions)
}

func newButton(fieldType, defaultValue, template string, cfg Config, allowed map[option]struct{}) (*Button, error) {
	if err := cfg.checkOptions(fieldType, allowed); err != nil {
		return nil, err
	}
	base, err := newBase(fieldType, defaultValue, template, cfg)
	if err != nil {
		return nil, err
	}
	b := &Button{Base: base}
	b.SetIcon(cfg.Icon)
	return b, nil
}

// SetForm attaches the button; a non-empty value is required.
func (b *Button) SetForm(form Form) error {
	return b.attach(form, b.requireValue)
}

// PreDispatch resolves the tab index and translates the button text.
func (b *Button) PreDispatch() error {
	return b.preDispatch()
}

// RenderControl renders the <button> element.
func (b *Button) RenderControl() (string, error) {
	return b.renderButton(nil)
}

func (b *Button) renderButton(variantAttrs func(*view.Attrs), extra ...map[string]string) (string, error) {
	if err := b.checkRenderable(); err != nil {
		return "", err
	}
	var attrs view.Attrs
	if variantAttrs != nil {
		variantAttrs(&attrs)
	}
	b.writeCommonAttrs(&attrs, mergeExtra(extra...))
	return b.format(map[string]string{
		"value": b.inner(view.EscapeAttr(b.DisplayValue())),
		"attrs": attrs.Placeholder(),
	}), nil
}

// ButtonInput renders an <input type="button"> with default value "OK".
type ButtonInput struct {
	Base
}

var inputOptions = allowOptions([]option{optValue})

// NewButtonInput builds a ButtonInput from cfg.
func NewButtonInput(cfg Config) (*ButtonInput, error) {
	return newButtonInput(TypeButtonInput, DefaultButtonValue, ButtonInputTemplate, cfg, inputOptions)
}

func newButtonInput(fieldType, defaultValue, template string, cfg Config, allowed map[option]struct{}) (*ButtonInput, error) {
	if err := cfg.checkOptions(fieldType, allowed); err != nil {
		return nil, err
	}
	base, err := newBase(fieldType, defaultValue, template, cfg)
	if err != nil {
		return nil, err
	}
	return &ButtonInput{Base: base}, nil
}

// SetForm attaches the input; a non-empty value is required.
func (b *ButtonInput) SetForm(form Form) error {
	return b.attach(form, b.requireValue)
}

// PreDispatch resolves the tab index and translates the value.
func (b *ButtonInput) PreDispatch() error {
	return b.preDispatch()
}

// RenderControl renders the <input> element.
func (b *ButtonInput) RenderControl() (string, error) {
	return b.renderInput(nil)
}

func (b *ButtonInput) renderInput(variantAttrs func(*view.Attrs), extra ...map[string]string) (string, error) {
	if err := b.checkRenderable(); err != nil {
		return "", err
	}
	var attrs view.Attrs
	if variantAttrs != nil {
		variantAttrs(&attrs)
	}
	b.writeCommonAttrs(&attrs, mergeExtra(extra...))
	return b.format(map[string]string{
		"value": view.EscapeAttr(b.DisplayValue()),
		"attrs": attrs.Placeholder(),
	}), nil
}

func mergeExtra(extra ...map[string]string) map[string]string {
	var out map[string]string
	for _, m := range extra {
		for key, value := range m {
			if out == nil {
				out = make(map[string]string)
			}
			out[key] = value
		}
	}
	return out
}
