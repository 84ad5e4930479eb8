package form

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formfields/pkg/render"
	rendertemplate "github.com/goliatone/go-formfields/pkg/render/template"
	"github.com/goliatone/go-formfields/pkg/render/template/gotemplate"
	"github.com/goliatone/go-formfields/pkg/view"
)

//go:embed templates/formfields/*.tpl
var embeddedTemplates embed.FS

// Chrome template names and the theme template keys that override them.
const (
	FieldTemplate      = "formfields/field"
	FormTemplate       = "formfields/form"
	FieldTemplateTheme = "formfields.field"
	FormTemplateTheme  = "formfields.form"
)

// TemplatesFS exposes the embedded chrome templates so custom engines can
// load them alongside their own.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}

var (
	defaultEngineOnce sync.Once
	defaultEngine     *gotemplate.Engine
	defaultEngineErr  error
)

func (f *Form) templateRenderer() (rendertemplate.TemplateRenderer, error) {
	if f.renderer != nil {
		return f.renderer, nil
	}
	defaultEngineOnce.Do(func() {
		defaultEngine, defaultEngineErr = gotemplate.New(gotemplate.WithFS(TemplatesFS()))
	})
	if defaultEngineErr != nil {
		return nil, fmt.Errorf("form: default template engine: %w", defaultEngineErr)
	}
	return defaultEngine, nil
}

type themeChoice struct {
	selector theme.ThemeSelector
	name     string
	variant  string
}

// chrome carries what one chrome rendering needs.
type chrome struct {
	renderer  rendertemplate.TemplateRenderer
	selection *theme.Selection
	errors    render.ErrorMapping
}

func (f *Form) newChrome() (*chrome, error) {
	renderer, err := f.templateRenderer()
	if err != nil {
		return nil, err
	}
	c := &chrome{renderer: renderer, errors: f.errorMapping()}
	if f.theme.selector != nil {
		selection, err := f.theme.selector.Select(f.theme.name, f.theme.variant)
		if err != nil {
			return nil, fmt.Errorf("form %q: select theme: %w", f.id, err)
		}
		c.selection = selection
	}
	return c, nil
}

// template returns the theme override for key, or fallback. Variant
// templates win over the manifest defaults.
func (c *chrome) template(key, fallback string) string {
	if c.selection == nil || c.selection.Manifest == nil {
		return fallback
	}
	manifest := c.selection.Manifest
	if variant, ok := manifest.Variants[c.selection.Variant]; ok {
		if name := strings.TrimSpace(variant.Templates[key]); name != "" {
			return name
		}
	}
	if name := strings.TrimSpace(manifest.Templates[key]); name != "" {
		return name
	}
	return fallback
}

func (c *chrome) tokens() map[string]string {
	if c.selection == nil || c.selection.Manifest == nil {
		return nil
	}
	manifest := c.selection.Manifest
	out := make(map[string]string, len(manifest.Tokens))
	for key, value := range manifest.Tokens {
		out[key] = value
	}
	if variant, ok := manifest.Variants[c.selection.Variant]; ok {
		for key, value := range variant.Tokens {
			out[key] = value
		}
	}
	return out
}

func (c *chrome) assetsPrefix() string {
	if c.selection == nil || c.selection.Manifest == nil {
		return ""
	}
	manifest := c.selection.Manifest
	if variant, ok := manifest.Variants[c.selection.Variant]; ok && strings.TrimSpace(variant.Assets.Prefix) != "" {
		return variant.Assets.Prefix
	}
	return manifest.Assets.Prefix
}

func (c *chrome) themeData() map[string]any {
	if c.selection == nil {
		return nil
	}
	return map[string]any{
		"name":    c.selection.Theme,
		"variant": c.selection.Variant,
		"tokens":  c.tokens(),
	}
}

func (f *Form) renderFieldChrome(c *chrome, control Control, required bool) (string, error) {
	messages := c.errors.For(control.Name)
	classes := []string{"field", "field--" + control.Type}
	if required {
		classes = append(classes, "field--required")
	}
	if len(messages) > 0 {
		classes = append(classes, "field--invalid")
	}

	errs := make([]any, 0, len(messages))
	for _, message := range messages {
		errs = append(errs, f.messageText(message))
	}
	classList := make([]any, 0, len(classes))
	for _, class := range classes {
		classList = append(classList, class)
	}

	out, err := c.renderer.RenderTemplate(c.template(FieldTemplateTheme, FieldTemplate), map[string]any{
		"field": map[string]any{
			"name":     control.Name,
			"id":       control.ID,
			"type":     control.Type,
			"control":  control.HTML,
			"errors":   errs,
			"required": required,
		},
		"classes": classList,
		"form_id": f.id,
		"locale":  f.Locale(),
		"theme":   c.themeData(),
	})
	if err != nil {
		return "", fmt.Errorf("form %q: render chrome for %q: %w", f.id, control.Name, err)
	}
	return strings.TrimSpace(out), nil
}

// RenderField wraps the markup of an already dispatched field in chrome. It
// does not start a render pass, so call Render or RenderHTML first.
func (f *Form) RenderField(ctx context.Context, name string) (string, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return "", err
		}
	}
	field, ok := f.byName[name]
	if !ok {
		return "", fmt.Errorf("form %q: %w: %q", f.id, ErrUnknownField, name)
	}
	markup, err := field.RenderControl()
	if err != nil {
		return "", fmt.Errorf("form %q: render %q: %w", f.id, name, err)
	}

	c, err := f.newChrome()
	if err != nil {
		return "", err
	}
	return f.renderFieldChrome(c, Control{
		Name: field.Name(),
		ID:   field.ID(),
		Type: field.Type(),
		HTML: markup,
	}, f.isRequired(name))
}

// RenderHTML runs a render pass and renders the whole form through the chrome
// templates: form tag and hidden inputs when the form renders its tag, form
// level errors, wrapped controls and supporting scripts.
func (f *Form) RenderHTML(ctx context.Context) (string, error) {
	result, err := f.Render(ctx)
	if err != nil {
		return "", err
	}
	c, err := f.newChrome()
	if err != nil {
		return "", err
	}

	wrapped := make([]any, 0, len(result.Controls))
	for _, control := range result.Controls {
		html, err := f.renderFieldChrome(c, control, f.isRequired(control.Name))
		if err != nil {
			return "", err
		}
		wrapped = append(wrapped, html)
	}

	baseURL := f.assetsBaseURL
	if baseURL == "" {
		baseURL = c.assetsPrefix()
	}
	scripts, err := f.assets.HTML(f.id, baseURL)
	if err != nil {
		return "", err
	}

	var hidden []any
	for _, field := range render.SortedHiddenFields(f.hidden) {
		hidden = append(hidden, field.HTML())
	}
	var formErrors []any
	for _, message := range c.errors.Form {
		formErrors = append(formErrors, f.messageText(message))
	}

	out, err := c.renderer.RenderTemplate(c.template(FormTemplateTheme, FormTemplate), map[string]any{
		"form": map[string]any{
			"id":          f.id,
			"renders_tag": f.rendersTag,
			"attrs":       f.tagAttrs(),
			"hidden":      hidden,
			"errors":      formErrors,
		},
		"fields":  wrapped,
		"scripts": scripts,
		"locale":  f.Locale(),
		"theme":   c.themeData(),
	})
	if err != nil {
		return "", fmt.Errorf("form %q: render form chrome: %w", f.id, err)
	}
	return strings.TrimSpace(out), nil
}

// messageText translates validation messages when the form translates by
// default.
func (f *Form) messageText(message string) string {
	if !f.translate {
		return message
	}
	return f.Translate(message)
}

func (f *Form) tagAttrs() string {
	var attrs view.Attrs
	attrs.Set("id", f.id)
	attrs.Set("action", f.action)
	attrs.Set("method", strings.ToLower(f.method))
	attrs.Set("enctype", f.enctype)
	attrs.Set("class", strings.Join(f.cssClasses, " "))
	return attrs.Placeholder()
}

func (f *Form) isRequired(name string) bool {
	for _, required := range f.required {
		if required == name {
			return true
		}
	}
	return false
}
