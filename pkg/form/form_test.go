package form_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formfields/pkg/fields"
	"github.com/goliatone/go-formfields/pkg/form"
	"github.com/goliatone/go-formfields/pkg/render"
	"github.com/goliatone/go-formfields/pkg/view"
)

func mustAdd(t *testing.T, f *form.Form, items ...fields.Field) {
	t.Helper()
	if err := f.AddField(items...); err != nil {
		t.Fatalf("add field: %v", err)
	}
}

func mustRender(t *testing.T, f *form.Form) form.Result {
	t.Helper()
	result, err := f.Render(context.Background())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return result
}

func TestRender_SubmitInputWithoutFormTag(t *testing.T) {
	f := form.New("f1", form.WithFormTag(false))
	submit, _ := fields.NewSubmitInput(fields.Config{Name: "send", Value: fields.String("Send")})
	mustAdd(t, f, submit)

	result := mustRender(t, f)
	want := `<input type="submit" id="f1-send" name="send" value="Send" form="f1" />`
	if got := result.HTML(); got != want {
		t.Fatalf("markup mismatch\nwant: %s\n got: %s", want, got)
	}
	control, ok := result.Control("send")
	if !ok || control.ID != "f1-send" || control.Type != fields.TypeSubmitInput {
		t.Fatalf("unexpected control %#v", control)
	}
}

func TestAddField_Errors(t *testing.T) {
	f := form.New("f1")
	first, _ := fields.NewButton(fields.Config{Name: "ok"})
	second, _ := fields.NewButton(fields.Config{Name: "ok"})
	mustAdd(t, f, first)

	if err := f.AddField(second); !errors.Is(err, form.ErrDuplicateField) {
		t.Fatalf("expected duplicate error, got %v", err)
	}

	img, _ := fields.NewImage(fields.Config{Name: "img"})
	err := f.AddField(img)
	if !errors.Is(err, fields.ErrConfiguration) {
		t.Fatalf("expected configuration error to surface, got %v", err)
	}
	if _, ok := f.Field("img"); ok {
		t.Fatalf("failed field must not be registered")
	}
	if diff := cmp.Diff([]string{"ok"}, f.FieldNames()); diff != "" {
		t.Fatalf("field names mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_TabIndexRestartsEveryPass(t *testing.T) {
	f := form.New("f1", form.WithBaseTabIndex(10))
	a, _ := fields.NewSubmitButton(fields.Config{Name: "a", TabIndex: fields.TabIndexAuto()})
	b, _ := fields.NewResetButton(fields.Config{Name: "b", TabIndex: fields.TabIndexAuto()})
	mustAdd(t, f, a, b)

	first := mustRender(t, f)
	second := mustRender(t, f)
	if first.HTML() != second.HTML() {
		t.Fatalf("passes must be identical\nfirst:  %s\nsecond: %s", first.HTML(), second.HTML())
	}
	if !strings.Contains(first.HTML(), `tabindex="11"`) || !strings.Contains(first.HTML(), `tabindex="12"`) {
		t.Fatalf("expected tab indexes 11 and 12, got %s", first.HTML())
	}
}

func TestRender_CollectsResetScriptsOncePerPass(t *testing.T) {
	f := form.New("f1")
	clearField, _ := fields.NewResetButton(fields.Config{Name: "clear"})
	undo, _ := fields.NewResetInput(fields.Config{Name: "undo"})
	mustAdd(t, f, clearField, undo)

	for i := 0; i < 2; i++ {
		result := mustRender(t, f)
		if diff := cmp.Diff([]string{fields.ResetScriptPath}, result.Files); diff != "" {
			t.Fatalf("pass %d files mismatch (-want +got):\n%s", i, diff)
		}
		want := []form.Script{
			{Path: fields.ResetScriptPath, ClassName: fields.ResetScriptClass, Args: []any{"clear"}},
			{Path: fields.ResetScriptPath, ClassName: fields.ResetScriptClass, Args: []any{"undo"}},
		}
		if diff := cmp.Diff(want, result.Scripts); diff != "" {
			t.Fatalf("pass %d scripts mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestRender_TranslatesWithFormTranslator(t *testing.T) {
	translator := render.NewMapTranslator("", map[string]map[string]string{
		"cs": {"Submit": "Odeslat", "Reset": "Obnovit"},
	})
	f := form.New("f1", form.WithTranslator(translator, "cs"))
	submit, _ := fields.NewSubmitButton(fields.Config{Name: "send"})
	reset, _ := fields.NewResetInput(fields.Config{Name: "clear", Translate: fields.Bool(false)})
	mustAdd(t, f, submit, reset)

	result := mustRender(t, f)
	want := strings.Join([]string{
		`<button id="f1-send" name="send" type="submit">Odeslat</button>`,
		`<input type="reset" id="f1-clear" name="clear" value="Reset" />`,
	}, "\n")
	if got := result.HTML(); got != want {
		t.Fatalf("markup mismatch\nwant: %s\n got: %s", want, got)
	}
}

func TestRender_FieldTranslateOverridesFormDefault(t *testing.T) {
	translator := render.NewMapTranslator("", map[string]map[string]string{
		"de": {"Send": "Senden", "Reset": "Zurücksetzen"},
	})
	f := form.New("f1", form.WithTranslator(translator, "de"), form.WithTranslation(false))
	submit, _ := fields.NewSubmitInput(fields.Config{Name: "send", Value: fields.String("Send"), Translate: fields.Bool(true)})
	reset, _ := fields.NewResetInput(fields.Config{Name: "clear"})
	mustAdd(t, f, submit, reset)

	result := mustRender(t, f)
	want := strings.Join([]string{
		`<input type="submit" id="f1-send" name="send" value="Senden" />`,
		`<input type="reset" id="f1-clear" name="clear" value="Reset" />`,
	}, "\n")
	if got := result.HTML(); got != want {
		t.Fatalf("markup mismatch\nwant: %s\n got: %s", want, got)
	}

	untranslated := form.New("f2", form.WithTranslation(true))
	if got := untranslated.Translate("Send"); got != "Send" {
		t.Fatalf("expected text unchanged without a translator, got %q", got)
	}
}

func TestRender_RequiredFields(t *testing.T) {
	f := form.New("f1")
	a, _ := fields.NewSubmitInput(fields.Config{Name: "a", Required: true})
	b, _ := fields.NewSubmitInput(fields.Config{Name: "b"})
	mustAdd(t, f, a, b)

	result := mustRender(t, f)
	if diff := cmp.Diff([]string{"a"}, result.Required); diff != "" {
		t.Fatalf("required mismatch (-want +got):\n%s", diff)
	}
	control, _ := result.Control("a")
	if !strings.HasSuffix(control.HTML, ` required />`) {
		t.Fatalf("expected required attribute, got %s", control.HTML)
	}
}

func TestRender_CustomFormatter(t *testing.T) {
	upper := form.WithFormatter(view.FormatterFunc(func(template string, values map[string]string) string {
		return strings.ToUpper(values["name"])
	}))
	f := form.New("f1", upper)
	button, _ := fields.NewButton(fields.Config{Name: "ok"})
	mustAdd(t, f, button)

	if got := mustRender(t, f).HTML(); got != "OK" {
		t.Fatalf("expected formatter output, got %q", got)
	}
}

func TestRender_ContextCancelled(t *testing.T) {
	f := form.New("f1")
	button, _ := fields.NewButton(fields.Config{Name: "ok"})
	mustAdd(t, f, button)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := f.Render(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
