package fields

// AssetsDirPlaceholder prefixes supporting script paths; the form replaces it
// with its assets base URL.
const AssetsDirPlaceholder = "__FORM_ASSETS__"

// Supporting script registered by reset controls.
const (
	ResetScriptPath  = AssetsDirPlaceholder + "/fields/reset.js"
	ResetScriptClass = "FormFields.Reset"
)

// ResetButton renders a <button type="reset"> with default text "Reset" and
// registers the reset supporting script.
type ResetButton struct {
	Button
}

// NewResetButton builds a ResetButton from cfg.
func NewResetButton(cfg Config) (*ResetButton, error) {
	b, err := newButton(TypeResetButton, DefaultResetValue, ResetButtonTemplate, cfg, buttonOptions)
	if err != nil {
		return nil, err
	}
	return &ResetButton{Button: *b}, nil
}

// PreDispatch prepares the button and registers the reset script.
func (r *ResetButton) PreDispatch() error {
	if err := r.Button.PreDispatch(); err != nil {
		return err
	}
	r.form.AddJsSupportFile(ResetScriptPath, ResetScriptClass, r.name)
	return nil
}

// ResetInput renders an <input type="reset"> with default value "Reset" and
// registers the reset supporting script.
type ResetInput struct {
	ButtonInput
}

// NewResetInput builds a ResetInput from cfg.
func NewResetInput(cfg Config) (*ResetInput, error) {
	b, err := newButtonInput(TypeResetInput, DefaultResetValue, ResetInputTemplate, cfg, inputOptions)
	if err != nil {
		return nil, err
	}
	return &ResetInput{ButtonInput: *b}, nil
}

// PreDispatch prepares the input and registers the reset script.
func (r *ResetInput) PreDispatch() error {
	if err := r.ButtonInput.PreDispatch(); err != nil {
		return err
	}
	r.form.AddJsSupportFile(ResetScriptPath, ResetScriptClass, r.name)
	return nil
}
