package fields

import "github.com/goliatone/go-formfields/pkg/view"

// Form is the contract a field expects from its owner. Only the owning form
// should call SetForm, PreDispatch and RenderControl on a field.
type Form interface {
	// ID is the form id; field ids are derived from it.
	ID() string
	// Formatter fills control templates. A nil Formatter falls back to
	// view.DefaultFormatter.
	Formatter() view.Formatter
	// RendersFormTag reports whether the form emits its own <form> element.
	// When it does not, controls carry a form="<id>" attribute instead.
	RendersFormTag() bool
	// Translates is the default for fields that leave Translate unset.
	Translates() bool
	// Translate returns the localized text for a visible string.
	Translate(text string) string
	// NextTabIndex allocates the next sequential tab index of the current
	// render pass.
	NextTabIndex() int
	// AddJsSupportFile registers a supporting script for the current render
	// pass. Registering the same script twice in one pass is a no-op.
	AddJsSupportFile(path, className string, args ...any)
	// MarkRequired records that the named field is required.
	MarkRequired(name string)
}

func formatterFor(form Form) view.Formatter {
	if form == nil {
		return view.DefaultFormatter
	}
	if f := form.Formatter(); f != nil {
		return f
	}
	return view.DefaultFormatter
}
