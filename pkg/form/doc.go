// Package form is the reference host for field controls. A Form owns its
// fields, hands them the formatter, translator and tab index allocator they
// need, collects supporting scripts and drives the render pass:
//
//	f := form.New("checkout", form.WithFormTag(false))
//	_ = f.AddField(submit)
//	html, err := f.RenderHTML(ctx)
//
// Controls can be wrapped in chrome rendered by a template engine; a go-theme
// selection may swap the chrome templates per theme and variant.
package form
