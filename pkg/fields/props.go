package fields

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-formfields/pkg/view"
)

// VisibleField is implemented by every variant: a control with visible text
// that can be translated.
type VisibleField interface {
	Field
	Value() string
	SetValue(value string)
	Title() string
	SetTitle(title string)
	Translate() bool
	SetTranslate(translate bool)
}

// FormAttrsField is implemented by controls that can override the owning
// form's submission attributes.
type FormAttrsField interface {
	Field
	FormAction() string
	SetFormAction(action string)
	FormEnctype() Enctype
	SetFormEnctype(enctype Enctype) error
	FormMethod() Method
	SetFormMethod(method Method) error
	FormNoValidate() bool
	SetFormNoValidate(noValidate bool)
	FormTarget() string
	SetFormTarget(target string)
}

// SubmitField is implemented by controls that submit the form and may carry a
// custom result state.
type SubmitField interface {
	FormAttrsField
	CustomResultState() (int, bool)
	SetCustomResultState(state int) error
	ClearCustomResultState()
}

// SizedField is implemented by controls with pixel dimensions.
type SizedField interface {
	Field
	Width() int
	SetWidth(width int) error
	Height() int
	SetHeight(height int) error
}

// Enctype is a form encoding type accepted by the formenctype attribute.
type Enctype string

const (
	EnctypeURLEncoded Enctype = "application/x-www-form-urlencoded"
	EnctypeMultipart  Enctype = "multipart/form-data"
	EnctypePlainText  Enctype = "text/plain"
)

// Valid reports whether e is one of the known encodings.
func (e Enctype) Valid() bool {
	switch e {
	case EnctypeURLEncoded, EnctypeMultipart, EnctypePlainText:
		return true
	default:
		return false
	}
}

// Method is a submission method accepted by the formmethod attribute.
type Method string

const (
	MethodGet  Method = "GET"
	MethodPost Method = "POST"
)

// Valid reports whether m is GET or POST.
func (m Method) Valid() bool {
	return m == MethodGet || m == MethodPost
}

func normalizeMethod(m Method) Method {
	return Method(strings.ToUpper(strings.TrimSpace(string(m))))
}

// Reserved result states understood by every form. Other positive values are
// application defined and need custom redirect handling.
const (
	ResultErrors   = 0
	ResultSuccess  = 1
	ResultPrevPage = 2
	ResultNextPage = 4
)

// IsReservedResultState reports whether state is one of the built-in values.
func IsReservedResultState(state int) bool {
	switch state {
	case ResultErrors, ResultSuccess, ResultPrevPage, ResultNextPage:
		return true
	default:
		return false
	}
}

// FormAttrs stores the form override attributes of submit-like controls.
type FormAttrs struct {
	owner *Base

	formAction     string
	formEnctype    Enctype
	formMethod     Method
	formNoValidate bool
	formTarget     string
}

func newFormAttrs(owner *Base, cfg Config) (FormAttrs, error) {
	fa := FormAttrs{
		owner:          owner,
		formAction:     cfg.FormAction,
		formNoValidate: cfg.FormNoValidate,
		formTarget:     cfg.FormTarget,
	}
	if cfg.FormEnctype != "" {
		if err := fa.SetFormEnctype(cfg.FormEnctype); err != nil {
			return FormAttrs{}, err
		}
	}
	if cfg.FormMethod != "" {
		if err := fa.SetFormMethod(cfg.FormMethod); err != nil {
			return FormAttrs{}, err
		}
	}
	return fa, nil
}

// FormAction returns the URL overriding the form's action.
func (fa *FormAttrs) FormAction() string { return fa.formAction }

// SetFormAction sets the URL overriding the form's action.
func (fa *FormAttrs) SetFormAction(action string) { fa.formAction = action }

// FormEnctype returns the encoding overriding the form's enctype.
func (fa *FormAttrs) FormEnctype() Enctype { return fa.formEnctype }

// SetFormEnctype sets the encoding; an empty value clears it.
func (fa *FormAttrs) SetFormEnctype(enctype Enctype) error {
	enctype = Enctype(strings.TrimSpace(string(enctype)))
	if enctype != "" && !enctype.Valid() {
		return configError(fa.ownerType(), fa.ownerName(), "invalid form enctype %q", enctype)
	}
	fa.formEnctype = enctype
	return nil
}

// FormMethod returns the method overriding the form's method.
func (fa *FormAttrs) FormMethod() Method { return fa.formMethod }

// SetFormMethod sets the method (case insensitive); an empty value clears it.
func (fa *FormAttrs) SetFormMethod(method Method) error {
	method = normalizeMethod(method)
	if method != "" && !method.Valid() {
		return configError(fa.ownerType(), fa.ownerName(), "invalid form method %q", method)
	}
	fa.formMethod = method
	return nil
}

// FormNoValidate reports whether client side validation is skipped.
func (fa *FormAttrs) FormNoValidate() bool { return fa.formNoValidate }

// SetFormNoValidate toggles the bare formnovalidate attribute.
func (fa *FormAttrs) SetFormNoValidate(noValidate bool) { fa.formNoValidate = noValidate }

// FormTarget returns the browsing context receiving the response.
func (fa *FormAttrs) FormTarget() string { return fa.formTarget }

// SetFormTarget sets the browsing context, e.g. "_blank" or an iframe name.
func (fa *FormAttrs) SetFormTarget(target string) { fa.formTarget = target }

func (fa *FormAttrs) writeAttrs(attrs *view.Attrs) {
	attrs.Set("formaction", fa.formAction)
	attrs.Set("formenctype", string(fa.formEnctype))
	attrs.Set("formmethod", string(fa.formMethod))
	attrs.Flag("formnovalidate", fa.formNoValidate)
	attrs.Set("formtarget", fa.formTarget)
}

func (fa *FormAttrs) ownerType() string {
	if fa.owner == nil {
		return ""
	}
	return fa.owner.fieldType
}

func (fa *FormAttrs) ownerName() string {
	if fa.owner == nil {
		return ""
	}
	return fa.owner.name
}

// SubmitProps stores the custom result state of submit controls.
type SubmitProps struct {
	owner             *Base
	customResultState *int
}

func newSubmitProps(owner *Base, cfg Config) (SubmitProps, error) {
	sp := SubmitProps{owner: owner}
	if cfg.CustomResultState != nil {
		if err := sp.SetCustomResultState(*cfg.CustomResultState); err != nil {
			return SubmitProps{}, err
		}
	}
	return sp, nil
}

// CustomResultState returns the configured state and whether one is set.
func (sp *SubmitProps) CustomResultState() (int, bool) {
	if sp.customResultState == nil {
		return 0, false
	}
	return *sp.customResultState, true
}

// SetCustomResultState sets the state rendered as data-result. Negative
// values are rejected.
func (sp *SubmitProps) SetCustomResultState(state int) error {
	if state < 0 {
		name, fieldType := "", ""
		if sp.owner != nil {
			name, fieldType = sp.owner.name, sp.owner.fieldType
		}
		return configError(fieldType, name, "custom result state must not be negative, got %d", state)
	}
	sp.customResultState = &state
	return nil
}

// ClearCustomResultState removes the state.
func (sp *SubmitProps) ClearCustomResultState() { sp.customResultState = nil }

func (sp *SubmitProps) resultAttrs() map[string]string {
	if sp.customResultState == nil {
		return nil
	}
	return map[string]string{"data-result": strconv.Itoa(*sp.customResultState)}
}

// WidthHeight stores pixel dimensions. Zero means unset.
type WidthHeight struct {
	owner  *Base
	width  int
	height int
}

func newWidthHeight(owner *Base, cfg Config) (WidthHeight, error) {
	wh := WidthHeight{owner: owner}
	if err := wh.SetWidth(cfg.Width); err != nil {
		return WidthHeight{}, err
	}
	if err := wh.SetHeight(cfg.Height); err != nil {
		return WidthHeight{}, err
	}
	return wh, nil
}

// Width returns the width in pixels.
func (wh *WidthHeight) Width() int { return wh.width }

// SetWidth sets the width in pixels.
func (wh *WidthHeight) SetWidth(width int) error {
	if width < 0 {
		return wh.dimensionError("width", width)
	}
	wh.width = width
	return nil
}

// Height returns the height in pixels.
func (wh *WidthHeight) Height() int { return wh.height }

// SetHeight sets the height in pixels.
func (wh *WidthHeight) SetHeight(height int) error {
	if height < 0 {
		return wh.dimensionError("height", height)
	}
	wh.height = height
	return nil
}

func (wh *WidthHeight) dimensionError(attr string, value int) error {
	name, fieldType := "", ""
	if wh.owner != nil {
		name, fieldType = wh.owner.name, wh.owner.fieldType
	}
	return configError(fieldType, name, "%s must not be negative, got %d", attr, value)
}

func (wh *WidthHeight) writeAttrs(attrs *view.Attrs) {
	if wh.width > 0 {
		attrs.Set("width", strconv.Itoa(wh.width))
	}
	if wh.height > 0 {
		attrs.Set("height", strconv.Itoa(wh.height))
	}
}
