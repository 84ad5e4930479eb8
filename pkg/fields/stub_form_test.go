package fields_test

import (
	"testing"

	"github.com/goliatone/go-formfields/pkg/fields"
	"github.com/goliatone/go-formfields/pkg/view"
)

type scriptCall struct {
	path      string
	className string
	args      []any
}

type stubForm struct {
	id         string
	rendersTag bool
	translates bool
	translate  func(string) string
	formatter  view.Formatter

	tabIndex int
	scripts  []scriptCall
	required []string
}

var _ fields.Form = (*stubForm)(nil)

func newStubForm(id string) *stubForm {
	return &stubForm{id: id, rendersTag: true}
}

func (f *stubForm) ID() string { return f.id }
func (f *stubForm) Formatter() view.Formatter { return f.formatter }
func (f *stubForm) RendersFormTag() bool { return f.rendersTag }
func (f *stubForm) Translates() bool { return f.translates }

func (f *stubForm) Translate(text string) string {
	if f.translate == nil {
		return text
	}
	return f.translate(text)
}

func (f *stubForm) NextTabIndex() int {
	f.tabIndex++
	return f.tabIndex
}

func (f *stubForm) AddJsSupportFile(path, className string, args ...any) {
	f.scripts = append(f.scripts, scriptCall{path: path, className: className, args: args})
}

func (f *stubForm) MarkRequired(name string) {
	f.required = append(f.required, name)
}

// dispatch attaches and pre-dispatches field, failing the test on error.
func dispatch(t testing.TB, field fields.Field, form fields.Form) {
	t.Helper()
	if err := field.SetForm(form); err != nil {
		t.Fatalf("set form: %v", err)
	}
	if err := field.PreDispatch(); err != nil {
		t.Fatalf("pre-dispatch: %v", err)
	}
}
