package fields

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is matched by every ConfigurationError.
	ErrConfiguration = errors.New("fields: configuration error")
	// ErrNotAttached is returned when a lifecycle step needs an owning form
	// but SetForm has not succeeded yet.
	ErrNotAttached = errors.New("fields: field is not attached to a form")
	// ErrNotDispatched is returned by RenderControl when PreDispatch has not
	// run since the field was attached or last modified.
	ErrNotDispatched = errors.New("fields: field was not pre-dispatched")
	// ErrAlreadyAttached is returned when a field owned by one form is
	// attached to another.
	ErrAlreadyAttached = errors.New("fields: field already attached to another form")
)

// ConfigurationError reports a field that cannot be set up: a missing name or
// required text, an unsupported option, or an invalid attribute value.
type ConfigurationError struct {
	Field  string
	Type   string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("fields: %s: %s", e.Type, e.Reason)
	}
	return fmt.Sprintf("fields: %s %q: %s", e.Type, e.Field, e.Reason)
}

// Unwrap lets errors.Is match ErrConfiguration.
func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}

func configError(fieldType, name, format string, args ...any) error {
	return &ConfigurationError{
		Field:  name,
		Type:   fieldType,
		Reason: fmt.Sprintf(format, args...),
	}
}

func lifecycleError(sentinel error, fieldType, name string) error {
	return fmt.Errorf("%w: %s %q", sentinel, fieldType, name)
}
