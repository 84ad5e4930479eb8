package fields

import (
	"sort"
	"strconv"
	"strings"

	"github.com/goliatone/go-formfields/pkg/view"
)

// Field is the surface a Form drives during a render pass.
type Field interface {
	Name() string
	ID() string
	Type() string
	State() State
	SetForm(form Form) error
	PreDispatch() error
	RenderControl() (string, error)
}

var reservedControlAttrs = map[string]struct{}{
	"id":       {},
	"name":     {},
	"value":    {},
	"readonly": {},
	"disabled": {},
	"class":    {},
	"type":     {},
	"src":      {},
}

// Base carries the properties and lifecycle shared by every variant. Variants
// embed it and add their own capabilities.
type Base struct {
	form  Form
	state State

	id        string
	name      string
	fieldType string
	template  string

	value     string
	rendered  string
	title     string
	titleText string

	translate      *bool
	translateTitle *bool

	cssClasses   []string
	controlAttrs map[string]string

	tabIndex         TabIndex
	resolvedTabIndex *int

	accessKey string
	autoFocus bool
	disabled  bool
	required  bool
}

func newBase(fieldType, defaultValue, template string, cfg Config) (Base, error) {
	b := Base{
		name:           strings.TrimSpace(cfg.Name),
		fieldType:      fieldType,
		template:       template,
		value:          defaultValue,
		title:          cfg.Title,
		translate:      cfg.Translate,
		translateTitle: cfg.TranslateTitle,
		cssClasses:     normalizeClasses(cfg.CSSClasses),
		tabIndex:       cfg.TabIndex,
		accessKey:      cfg.AccessKey,
		autoFocus:      cfg.AutoFocus,
		disabled:       cfg.Disabled,
		required:       cfg.Required,
	}
	if cfg.Value != nil {
		b.value = *cfg.Value
	}
	if tpl := strings.TrimSpace(cfg.Template); tpl != "" {
		b.template = tpl
	}
	for key, value := range cfg.ControlAttrs {
		if err := b.SetControlAttr(key, value); err != nil {
			return Base{}, err
		}
	}
	return b, nil
}

// Name returns the field name. It is fixed at construction.
func (b *Base) Name() string { return b.name }

// ID returns the id derived from the owning form; empty before attach.
func (b *Base) ID() string { return b.id }

// Type returns the variant type tag, e.g. "submit-input".
func (b *Base) Type() string { return b.fieldType }

// State reports the lifecycle position.
func (b *Base) State() State { return b.state }

// Form returns the owning form, or nil before attach.
func (b *Base) Form() Form { return b.form }

// Template returns the control template used by RenderControl.
func (b *Base) Template() string { return b.template }

// Value returns the configured (untranslated) visible text.
func (b *Base) Value() string { return b.value }

// SetValue replaces the visible text.
func (b *Base) SetValue(value string) {
	b.value = value
	b.invalidate()
}

// Title returns the configured (untranslated) title attribute.
func (b *Base) Title() string { return b.title }

// SetTitle replaces the title attribute text.
func (b *Base) SetTitle(title string) {
	b.title = title
	b.invalidate()
}

// Translate reports whether visible texts are translated. Before attach an
// unset flag reads as false.
func (b *Base) Translate() bool {
	return b.translate != nil && *b.translate
}

// SetTranslate overrides the form default.
func (b *Base) SetTranslate(translate bool) {
	b.translate = &translate
	b.invalidate()
}

// TranslateTitle reports whether the title is translated along with the
// other visible texts. Defaults to true.
func (b *Base) TranslateTitle() bool {
	return b.translateTitle == nil || *b.translateTitle
}

// SetTranslateTitle toggles title translation.
func (b *Base) SetTranslateTitle(translate bool) {
	b.translateTitle = &translate
	b.invalidate()
}

// CSSClasses returns a copy of the class list.
func (b *Base) CSSClasses() []string {
	return append([]string(nil), b.cssClasses...)
}

// SetCSSClasses replaces the class list.
func (b *Base) SetCSSClasses(classes ...string) {
	b.cssClasses = normalizeClasses(classes)
}

// AddCSSClasses appends classes that are not already present.
func (b *Base) AddCSSClasses(classes ...string) {
	b.cssClasses = normalizeClasses(append(b.cssClasses, classes...))
}

// ControlAttrs returns a copy of the additional attributes.
func (b *Base) ControlAttrs() map[string]string {
	if len(b.controlAttrs) == 0 {
		return nil
	}
	out := make(map[string]string, len(b.controlAttrs))
	for key, value := range b.controlAttrs {
		out[key] = value
	}
	return out
}

// SetControlAttr sets an additional attribute. Reserved names have their own
// properties and are rejected.
func (b *Base) SetControlAttr(name, value string) error {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return configError(b.fieldType, b.name, "control attribute name is empty")
	}
	if _, reserved := reservedControlAttrs[key]; reserved {
		return configError(b.fieldType, b.name, "control attribute %q is reserved", key)
	}
	if b.controlAttrs == nil {
		b.controlAttrs = make(map[string]string)
	}
	b.controlAttrs[key] = value
	return nil
}

// RemoveControlAttr deletes an additional attribute.
func (b *Base) RemoveControlAttr(name string) {
	delete(b.controlAttrs, strings.ToLower(strings.TrimSpace(name)))
}

// TabIndex returns the configured tab index (possibly auto).
func (b *Base) TabIndex() TabIndex { return b.tabIndex }

// SetTabIndex replaces the configured tab index.
func (b *Base) SetTabIndex(index TabIndex) {
	b.tabIndex = index
	b.invalidate()
}

// ResolvedTabIndex returns the index rendered in the current pass.
func (b *Base) ResolvedTabIndex() (int, bool) {
	if b.resolvedTabIndex == nil {
		return 0, false
	}
	return *b.resolvedTabIndex, true
}

// AccessKey returns the keyboard shortcut hint.
func (b *Base) AccessKey() string { return b.accessKey }

// SetAccessKey sets the keyboard shortcut hint.
func (b *Base) SetAccessKey(key string) { b.accessKey = key }

// AutoFocus reports whether the control requests focus on load.
func (b *Base) AutoFocus() bool { return b.autoFocus }

// SetAutoFocus toggles the autofocus attribute.
func (b *Base) SetAutoFocus(autoFocus bool) { b.autoFocus = autoFocus }

// Disabled reports whether the control is disabled.
func (b *Base) Disabled() bool { return b.disabled }

// SetDisabled toggles the disabled attribute.
func (b *Base) SetDisabled(disabled bool) { b.disabled = disabled }

// Required reports whether the field is required.
func (b *Base) Required() bool { return b.required }

// SetRequired toggles the required attribute. Changing it after attach does
// not update the form's required set.
func (b *Base) SetRequired(required bool) { b.required = required }

// attach links the field to form after validate accepts it. Nothing is
// changed when validation fails.
func (b *Base) attach(form Form, validate func() error) error {
	if form == nil {
		return configError(b.fieldType, b.name, "form is nil")
	}
	if b.form != nil {
		if b.form == form {
			return nil
		}
		return lifecycleError(ErrAlreadyAttached, b.fieldType, b.name)
	}
	if b.name == "" {
		return configError(b.fieldType, b.name, "no field name defined")
	}
	if validate != nil {
		if err := validate(); err != nil {
			return err
		}
	}

	b.form = form
	b.id = fieldID(form.ID(), b.name)
	if b.translate == nil {
		translate := form.Translates()
		b.translate = &translate
	}
	if b.required {
		form.MarkRequired(b.name)
	}
	b.state = StateAttached
	return nil
}

func (b *Base) requireValue() error {
	if b.value == "" {
		return configError(b.fieldType, b.name, "no button `value` defined")
	}
	return nil
}

// preDispatch resolves the tab index and translates visible texts from their
// source values, so running it again never translates twice.
func (b *Base) preDispatch() error {
	if b.form == nil {
		return lifecycleError(ErrNotAttached, b.fieldType, b.name)
	}

	b.resolvedTabIndex = nil
	switch {
	case b.tabIndex.IsAuto():
		next := b.form.NextTabIndex()
		b.resolvedTabIndex = &next
	case b.tabIndex.IsSet():
		fixed := b.tabIndex.Value()
		b.resolvedTabIndex = &fixed
	}

	b.rendered = b.value
	b.titleText = b.title
	if b.Translate() {
		if b.value != "" {
			b.rendered = b.form.Translate(b.value)
		}
		if b.title != "" && b.TranslateTitle() {
			b.titleText = b.form.Translate(b.title)
		}
	}

	b.state = StatePreDispatched
	return nil
}

func (b *Base) translateText(text string) string {
	if text == "" || !b.Translate() || b.form == nil {
		return text
	}
	return b.form.Translate(text)
}

// invalidate drops a dispatched field back to attached so that a render
// after a modification requires a new PreDispatch.
func (b *Base) invalidate() {
	if b.state > StateAttached {
		b.state = StateAttached
	}
}

func (b *Base) checkRenderable() error {
	if b.form == nil || b.state < StateAttached {
		return lifecycleError(ErrNotAttached, b.fieldType, b.name)
	}
	if b.state < StatePreDispatched {
		return lifecycleError(ErrNotDispatched, b.fieldType, b.name)
	}
	return nil
}

// DisplayValue is the visible text prepared by the last PreDispatch.
func (b *Base) DisplayValue() string { return b.rendered }

// writeCommonAttrs renders the attributes every variant shares, after the
// variant specific ones. extra holds computed attributes such as data-result
// and is merged with the control attributes in key order.
func (b *Base) writeCommonAttrs(attrs *view.Attrs, extra map[string]string) {
	attrs.Set("class", strings.Join(b.cssClasses, " "))
	attrs.Set("title", b.titleText)
	attrs.Set("accesskey", b.accessKey)
	if b.resolvedTabIndex != nil {
		attrs.Set("tabindex", strconv.Itoa(*b.resolvedTabIndex))
	}
	attrs.Flag("autofocus", b.autoFocus)
	attrs.Flag("disabled", b.disabled)
	attrs.Flag("required", b.required)

	merged := make(map[string]string, len(b.controlAttrs)+len(extra))
	for key, value := range b.controlAttrs {
		merged[key] = value
	}
	for key, value := range extra {
		merged[key] = value
	}
	keys := make([]string, 0, len(merged))
	for key := range merged {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		// Attributes owned by the variant or by typed properties win.
		if attrs.Has(key) {
			continue
		}
		attrs.Set(key, merged[key])
	}

	if !attrs.Has("form") && !b.form.RendersFormTag() {
		attrs.Set("form", b.form.ID())
	}
}

// format substitutes values into the control template and marks the field
// rendered.
func (b *Base) format(values map[string]string) string {
	if values == nil {
		values = make(map[string]string)
	}
	values["id"] = view.EscapeAttr(b.id)
	values["name"] = view.EscapeAttr(b.name)
	if _, ok := values["type"]; !ok {
		values["type"] = view.EscapeAttr(b.fieldType)
	}
	out := formatterFor(b.form).Format(b.template, values)
	b.state = StateRendered
	return out
}

func fieldID(formID, name string) string {
	formID = strings.TrimSpace(formID)
	if formID == "" {
		return name
	}
	return formID + "-" + name
}

func normalizeClasses(classes []string) []string {
	if len(classes) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(classes))
	out := make([]string, 0, len(classes))
	for _, entry := range classes {
		for _, class := range strings.Fields(entry) {
			if _, ok := seen[class]; ok {
				continue
			}
			seen[class] = struct{}{}
			out = append(out, class)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
