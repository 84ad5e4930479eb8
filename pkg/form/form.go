package form

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-formfields/pkg/fields"
	"github.com/goliatone/go-formfields/pkg/render"
	rendertemplate "github.com/goliatone/go-formfields/pkg/render/template"
	"github.com/goliatone/go-formfields/pkg/view"
)

var (
	// ErrDuplicateField is returned by AddField for a name already in use.
	ErrDuplicateField = errors.New("form: duplicate field name")
	// ErrUnknownField is returned when a named field does not exist.
	ErrUnknownField = errors.New("form: unknown field")
)

// Form hosts fields and implements fields.Form. A Form and its fields are
// request scoped and not safe for concurrent use.
type Form struct {
	id         string
	rendersTag bool
	action     string
	method     string
	enctype    string
	cssClasses []string

	formatter view.Formatter
	localizer render.Localizer
	translate bool

	baseTabIndex int
	tabIndex     int

	assetsBaseURL string
	assets        Assets

	fields   []fields.Field
	byName   map[string]fields.Field
	required []string

	hidden map[string]string
	errors map[string][]string

	renderer rendertemplate.TemplateRenderer
	theme    themeChoice
}

var _ fields.Form = (*Form)(nil)

// New creates a form identified by id. Forms render their own <form> tag
// unless WithFormTag(false) is given.
func New(id string, opts ...Option) *Form {
	f := &Form{
		id:         strings.TrimSpace(id),
		rendersTag: true,
		method:     "POST",
		formatter:  view.DefaultFormatter,
		byName:     make(map[string]fields.Field),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}
	return f
}

// ID implements fields.Form.
func (f *Form) ID() string { return f.id }

// Formatter implements fields.Form.
func (f *Form) Formatter() view.Formatter { return f.formatter }

// RendersFormTag implements fields.Form.
func (f *Form) RendersFormTag() bool { return f.rendersTag }

// Translates implements fields.Form.
func (f *Form) Translates() bool { return f.translate }

// Locale returns the locale used for translation.
func (f *Form) Locale() string { return f.localizer.Locale }

// Translate implements fields.Form. Text is used as its own key. Whether a
// field asks for translation is decided by the field, so only a missing
// translator leaves text untouched.
func (f *Form) Translate(text string) string {
	if f.localizer.Translator == nil {
		return text
	}
	return f.localizer.Text(text)
}

// NextTabIndex implements fields.Form. The sequence restarts on every render
// pass.
func (f *Form) NextTabIndex() int {
	f.tabIndex++
	return f.tabIndex
}

// AddJsSupportFile implements fields.Form.
func (f *Form) AddJsSupportFile(path, className string, args ...any) {
	f.assets.Add(path, className, args...)
}

// MarkRequired implements fields.Form.
func (f *Form) MarkRequired(name string) {
	for _, existing := range f.required {
		if existing == name {
			return
		}
	}
	f.required = append(f.required, name)
}

// Required returns the names of required fields in attach order.
func (f *Form) Required() []string {
	return append([]string(nil), f.required...)
}

// Assets returns the scripts collected by the last render pass.
func (f *Form) Assets() *Assets { return &f.assets }

// AddField attaches fields in order. Names must be unique in the form.
func (f *Form) AddField(items ...fields.Field) error {
	for _, field := range items {
		if field == nil {
			return fmt.Errorf("form %q: field is nil", f.id)
		}
		name := field.Name()
		if _, exists := f.byName[name]; exists {
			return fmt.Errorf("form %q: %w: %q", f.id, ErrDuplicateField, name)
		}
		if err := field.SetForm(f); err != nil {
			return fmt.Errorf("form %q: add field: %w", f.id, err)
		}
		f.byName[name] = field
		f.fields = append(f.fields, field)
	}
	return nil
}

// Field returns the named field.
func (f *Form) Field(name string) (fields.Field, bool) {
	field, ok := f.byName[name]
	return field, ok
}

// Fields returns the fields in attach order.
func (f *Form) Fields() []fields.Field {
	return append([]fields.Field(nil), f.fields...)
}

// FieldNames returns the field names in attach order.
func (f *Form) FieldNames() []string {
	names := make([]string, 0, len(f.fields))
	for _, field := range f.fields {
		names = append(names, field.Name())
	}
	return names
}

// SetErrors replaces the validation messages shown by chrome rendering.
func (f *Form) SetErrors(payload map[string][]string) {
	f.errors = payload
}

func (f *Form) errorMapping() render.ErrorMapping {
	return render.MapErrorPayload(f.FieldNames(), f.errors)
}
