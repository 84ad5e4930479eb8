// Package fields implements the button style form controls: Button,
// ButtonInput, ResetButton, ResetInput, SubmitButton, SubmitInput and Image.
//
// Every field walks the same lifecycle. It is built from a Config, attached to
// exactly one owning Form (SetForm), prepared for a render pass (PreDispatch)
// and finally rendered to control markup (RenderControl). Skipping a step is
// reported as an error instead of producing partial markup.
//
//	submit, err := fields.NewSubmitInput(fields.Config{Name: "send", Value: fields.String("Send")})
//	if err != nil { ... }
//	if err := submit.SetForm(form); err != nil { ... }
//	if err := submit.PreDispatch(); err != nil { ... }
//	markup, err := submit.RenderControl()
//
// SetForm, PreDispatch and RenderControl are meant to be driven by the owning
// form (see package form); application code normally only builds fields and
// adds them to a form.
package fields
