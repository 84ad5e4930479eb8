package form

import (
	"context"
	"fmt"
	"strings"
)

// Control is the markup of one field produced by a render pass.
type Control struct {
	Name string
	ID   string
	Type string
	HTML string
}

// Result is the outcome of a render pass.
type Result struct {
	FormID   string
	Controls []Control
	Files    []string
	Scripts  []Script
	Required []string
}

// HTML joins the control markup, one control per line.
func (r Result) HTML() string {
	parts := make([]string, 0, len(r.Controls))
	for _, control := range r.Controls {
		parts = append(parts, control.HTML)
	}
	return strings.Join(parts, "\n")
}

// Control returns the markup of the named field.
func (r Result) Control(name string) (Control, bool) {
	for _, control := range r.Controls {
		if control.Name == name {
			return control, true
		}
	}
	return Control{}, false
}

// Render runs one render pass: the tab index sequence and script collector
// are reset, every field is pre-dispatched, then every control is rendered.
func (f *Form) Render(ctx context.Context) (Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	f.tabIndex = f.baseTabIndex
	f.assets.Reset()

	for _, field := range f.fields {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		if err := field.PreDispatch(); err != nil {
			return Result{}, fmt.Errorf("form %q: pre-dispatch %q: %w", f.id, field.Name(), err)
		}
	}

	result := Result{
		FormID:   f.id,
		Controls: make([]Control, 0, len(f.fields)),
	}
	for _, field := range f.fields {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		markup, err := field.RenderControl()
		if err != nil {
			return Result{}, fmt.Errorf("form %q: render %q: %w", f.id, field.Name(), err)
		}
		result.Controls = append(result.Controls, Control{
			Name: field.Name(),
			ID:   field.ID(),
			Type: field.Type(),
			HTML: markup,
		})
	}

	result.Files = f.assets.Files()
	result.Scripts = f.assets.Scripts()
	result.Required = f.Required()
	return result, nil
}

// ScriptsHTML renders the supporting scripts collected by the last render
// pass using the form's assets base URL.
func (f *Form) ScriptsHTML() (string, error) {
	return f.assets.HTML(f.id, f.assetsBaseURL)
}
