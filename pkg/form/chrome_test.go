package form_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formfields/pkg/fields"
	"github.com/goliatone/go-formfields/pkg/form"
	"github.com/goliatone/go-formfields/pkg/render/template/gotemplate"
	"github.com/goliatone/go-formfields/pkg/testsupport"
)

type selectorCall struct {
	name    string
	variant string
}

type stubThemeSelector struct {
	selection *theme.Selection
	err       error
	calls     []selectorCall
}

func (s *stubThemeSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.calls = append(s.calls, selectorCall{name: name, variant: variant})
	return s.selection, s.err
}

func TestRenderHTML_FormTagHiddenAndScripts(t *testing.T) {
	f := form.New("checkout",
		form.WithAction("/checkout", "post", "multipart/form-data"),
		form.WithCSRFToken("_csrf", "tok"),
		form.WithAssetsBaseURL("/static"),
	)
	send, _ := fields.NewSubmitInput(fields.Config{Name: "send", Value: fields.String("Send"), Required: true})
	clearField, _ := fields.NewResetButton(fields.Config{Name: "clear"})
	mustAdd(t, f, send, clearField)

	html, err := f.RenderHTML(context.Background())
	if err != nil {
		t.Fatalf("render html: %v", err)
	}
	doc := testsupport.Query(t, html)

	formAttrs := testsupport.Attrs(doc.Find("form"))
	if formAttrs["id"] != "checkout" || formAttrs["action"] != "/checkout" || formAttrs["method"] != "post" || formAttrs["enctype"] != "multipart/form-data" {
		t.Fatalf("unexpected form attrs %v", formAttrs)
	}
	if token, _ := doc.Find(`form > input[type="hidden"][name="_csrf"]`).Attr("value"); token != "tok" {
		t.Fatalf("expected csrf hidden input, got %q in %s", token, html)
	}

	wrapper := doc.Find(`div.field[data-field="send"]`)
	if wrapper.Length() != 1 {
		t.Fatalf("expected send chrome wrapper in %s", html)
	}
	if class, _ := wrapper.Attr("class"); class != "field field--submit-input field--required" {
		t.Fatalf("unexpected wrapper class %q", class)
	}
	if wrapper.Find(`input#checkout-send`).Length() != 1 {
		t.Fatalf("control must sit inside its chrome wrapper: %s", html)
	}
	if _, hasForm := doc.Find(`#checkout-send`).Attr("form"); hasForm {
		t.Fatalf("controls inside the form tag must not carry form attr")
	}

	if src, _ := doc.Find(`script[src]`).Attr("src"); src != "/static/fields/reset.js" {
		t.Fatalf("expected reset script, got %q", src)
	}
	if !strings.Contains(html, `new FormFields.Reset(document.getElementById("checkout"), "clear");`) {
		t.Fatalf("expected reset initializer in %s", html)
	}
}

func TestRenderHTML_Errors(t *testing.T) {
	f := form.New("f1",
		form.WithFormTag(false),
		form.WithErrors(map[string][]string{
			"/body/send":       {"Try again <later>"},
			"non_field_errors": {"Form failed"},
		}),
	)
	send, _ := fields.NewSubmitButton(fields.Config{Name: "send"})
	mustAdd(t, f, send)

	html, err := f.RenderHTML(context.Background())
	if err != nil {
		t.Fatalf("render html: %v", err)
	}
	doc := testsupport.Query(t, html)

	if doc.Find("form").Length() != 0 {
		t.Fatalf("form tag must not render: %s", html)
	}
	if got := doc.Find(`div.field--invalid span.field__error`).Text(); got != "Try again <later>" {
		t.Fatalf("expected field error, got %q in %s", got, html)
	}
	if !strings.Contains(html, "Try again &lt;later&gt;") {
		t.Fatalf("error messages must be escaped: %s", html)
	}
	if got := doc.Find(`p.form__error`).Text(); got != "Form failed" {
		t.Fatalf("expected form error, got %q", got)
	}
	if owner, _ := doc.Find(`button#f1-send`).Attr("form"); owner != "f1" {
		t.Fatalf("expected form attribute outside form tag, got %q", owner)
	}
}

func TestRenderField_RequiresRenderPass(t *testing.T) {
	f := form.New("f1")
	send, _ := fields.NewSubmitButton(fields.Config{Name: "send"})
	mustAdd(t, f, send)

	if _, err := f.RenderField(context.Background(), "send"); !errors.Is(err, fields.ErrNotDispatched) {
		t.Fatalf("expected ErrNotDispatched, got %v", err)
	}
	if _, err := f.RenderField(context.Background(), "missing"); !errors.Is(err, form.ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}

	mustRender(t, f)
	html, err := f.RenderField(context.Background(), "send")
	if err != nil {
		t.Fatalf("render field: %v", err)
	}
	want := `<div class="field field--submit-button" data-field="send"><button id="f1-send" name="send" type="submit">Submit</button></div>`
	if html != want {
		t.Fatalf("markup mismatch\nwant: %s\n got: %s", want, html)
	}
}

func TestRenderHTML_ThemeTemplates(t *testing.T) {
	files := fstest.MapFS{
		"themes/acme/field.tpl": {Data: []byte(`<p class="acme" style="color: {{ theme.tokens.brand }}">{{ field.control|safe }}</p>`)},
		"themes/acme/dark.tpl":  {Data: []byte(`<p class="acme-dark" data-variant="{{ theme.variant }}">{{ field.control|safe }}</p>`)},
	}
	engine, err := gotemplate.New(gotemplate.WithFS(files), gotemplate.WithFS(form.TemplatesFS()))
	if err != nil {
		t.Fatalf("engine: %v", err)
	}

	manifest := &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens:  map[string]string{"brand": "#123456"},
		Templates: map[string]string{
			form.FieldTemplateTheme: "themes/acme/field",
		},
		Assets: theme.Assets{Prefix: "/assets/themes/acme"},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens:    map[string]string{"brand": "#654321"},
				Templates: map[string]string{form.FieldTemplateTheme: "themes/acme/dark"},
			},
		},
	}

	t.Run("manifest", func(t *testing.T) {
		selector := &stubThemeSelector{selection: &theme.Selection{Theme: "acme", Variant: "light", Manifest: manifest}}
		f := form.New("f1", form.WithTemplateRenderer(engine), form.WithThemeSelector(selector, "acme", "light"))
		reset, _ := fields.NewResetInput(fields.Config{Name: "clear"})
		mustAdd(t, f, reset)

		html, err := f.RenderHTML(context.Background())
		if err != nil {
			t.Fatalf("render html: %v", err)
		}
		if !strings.Contains(html, `<p class="acme" style="color: #123456"><input type="reset" id="f1-clear" name="clear" value="Reset" /></p>`) {
			t.Fatalf("expected themed chrome, got %s", html)
		}
		if !strings.Contains(html, `src="/assets/themes/acme/fields/reset.js"`) {
			t.Fatalf("expected theme assets prefix, got %s", html)
		}
		if len(selector.calls) != 1 || selector.calls[0] != (selectorCall{name: "acme", variant: "light"}) {
			t.Fatalf("unexpected selector calls %+v", selector.calls)
		}
	})

	t.Run("variant", func(t *testing.T) {
		selector := &stubThemeSelector{selection: &theme.Selection{Theme: "acme", Variant: "dark", Manifest: manifest}}
		f := form.New("f1", form.WithTemplateRenderer(engine), form.WithThemeSelector(selector, "acme", "dark"))
		button, _ := fields.NewButton(fields.Config{Name: "ok"})
		mustAdd(t, f, button)

		html, err := f.RenderHTML(context.Background())
		if err != nil {
			t.Fatalf("render html: %v", err)
		}
		if !strings.Contains(html, `<p class="acme-dark" data-variant="dark">`) {
			t.Fatalf("expected variant chrome, got %s", html)
		}
	})

	t.Run("selector error", func(t *testing.T) {
		boom := errors.New("no such theme")
		f := form.New("f1", form.WithTemplateRenderer(engine), form.WithThemeSelector(&stubThemeSelector{err: boom}, "x", ""))
		button, _ := fields.NewButton(fields.Config{Name: "ok"})
		mustAdd(t, f, button)

		if _, err := f.RenderHTML(context.Background()); !errors.Is(err, boom) {
			t.Fatalf("expected selector error, got %v", err)
		}
	})
}
