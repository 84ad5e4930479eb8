package fields

// Control templates per variant. Instances may swap their own template via
// Config.Template; these values never change at runtime.
const (
	ButtonTemplate       = `<button id="{id}" name="{name}" type="{type}"{attrs}>{value}</button>`
	SubmitButtonTemplate = `<button id="{id}" name="{name}" type="submit"{attrs}>{value}</button>`
	ResetButtonTemplate  = `<button id="{id}" name="{name}" type="reset"{attrs}>{value}</button>`
	ButtonInputTemplate  = `<input type="button" id="{id}" name="{name}" value="{value}"{attrs} />`
	SubmitInputTemplate  = `<input type="submit" id="{id}" name="{name}" value="{value}"{attrs} />`
	ResetInputTemplate   = `<input type="reset" id="{id}" name="{name}" value="{value}"{attrs} />`
	ImageTemplate        = `<input type="image" id="{id}" name="{name}" src="{src}"{attrs} />`
)

// Type tags.
const (
	TypeButton       = "button"
	TypeButtonInput  = "button-input"
	TypeResetButton  = "reset-button"
	TypeResetInput   = "reset-input"
	TypeSubmitButton = "submit-button"
	TypeSubmitInput  = "submit-input"
	TypeImage        = "image"
)

// Default visible texts.
const (
	DefaultButtonValue = "OK"
	DefaultResetValue  = "Reset"
	DefaultSubmitValue = "Submit"
	DefaultImageAlt    = "Submit"
)
