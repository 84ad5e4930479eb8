package fields

import "github.com/goliatone/go-formfields/pkg/view"

var (
	submitButtonOptions = allowOptions([]option{optValue, optIcon}, formAttrOptions)
	submitInputOptions  = allowOptions([]option{optValue}, formAttrOptions)
)

// SubmitButton renders a <button type="submit"> with default text "Submit",
// form override attributes and an optional custom result state.
type SubmitButton struct {
	Button
	FormAttrs
	SubmitProps
}

// NewSubmitButton builds a SubmitButton from cfg.
func NewSubmitButton(cfg Config) (*SubmitButton, error) {
	b, err := newButton(TypeSubmitButton, DefaultSubmitValue, SubmitButtonTemplate, cfg, submitButtonOptions)
	if err != nil {
		return nil, err
	}
	s := &SubmitButton{Button: *b}
	if s.FormAttrs, err = newFormAttrs(&s.Base, cfg); err != nil {
		return nil, err
	}
	if s.SubmitProps, err = newSubmitProps(&s.Base, cfg); err != nil {
		return nil, err
	}
	return s, nil
}

// RenderControl renders the <button> element with form overrides.
func (s *SubmitButton) RenderControl() (string, error) {
	return s.renderButton(func(attrs *view.Attrs) {
		s.FormAttrs.writeAttrs(attrs)
	}, s.resultAttrs())
}

// SubmitInput renders an <input type="submit"> with default value "Submit",
// form override attributes and an optional custom result state.
type SubmitInput struct {
	ButtonInput
	FormAttrs
	SubmitProps
}

// NewSubmitInput builds a SubmitInput from cfg.
func NewSubmitInput(cfg Config) (*SubmitInput, error) {
	b, err := newButtonInput(TypeSubmitInput, DefaultSubmitValue, SubmitInputTemplate, cfg, submitInputOptions)
	if err != nil {
		return nil, err
	}
	s := &SubmitInput{ButtonInput: *b}
	if s.FormAttrs, err = newFormAttrs(&s.Base, cfg); err != nil {
		return nil, err
	}
	if s.SubmitProps, err = newSubmitProps(&s.Base, cfg); err != nil {
		return nil, err
	}
	return s, nil
}

// RenderControl renders the <input> element with form overrides.
func (s *SubmitInput) RenderControl() (string, error) {
	return s.renderInput(func(attrs *view.Attrs) {
		s.FormAttrs.writeAttrs(attrs)
	}, s.resultAttrs())
}
