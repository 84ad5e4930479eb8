package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-formfields/pkg/view"
)

// HiddenField is a hidden input emitted right after the opening form tag.
type HiddenField struct {
	Name  string
	Value string
}

// Hidden returns a HiddenField for an arbitrary name/value pair.
func Hidden(name string, value any) HiddenField {
	return HiddenField{
		Name:  strings.TrimSpace(name),
		Value: fmt.Sprint(value),
	}
}

// CSRFToken returns a hidden field carrying token under name, e.g. "_csrf".
func CSRFToken(name, token string) HiddenField {
	return Hidden(name, token)
}

// HTML renders the field as an <input type="hidden">.
func (h HiddenField) HTML() string {
	var attrs view.Attrs
	attrs.Set("name", h.Name)
	return fmt.Sprintf(`<input type="hidden"%s value="%s" />`, attrs.Placeholder(), view.EscapeAttr(h.Value))
}

// MergeHiddenFields returns a copy of base with fields applied. Empty names
// are ignored; later fields win on name collisions.
func MergeHiddenFields(base map[string]string, fields ...HiddenField) map[string]string {
	out := make(map[string]string, len(base)+len(fields))
	for key, value := range base {
		if trimmed := strings.TrimSpace(key); trimmed != "" {
			out[trimmed] = value
		}
	}
	for _, field := range fields {
		if name := strings.TrimSpace(field.Name); name != "" {
			out[name] = field.Value
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// SortedHiddenFields returns the fields ordered by name for deterministic
// markup.
func SortedHiddenFields(fields map[string]string) []HiddenField {
	if len(fields) == 0 {
		return nil
	}
	names := make([]string, 0, len(fields))
	for name := range fields {
		if strings.TrimSpace(name) != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	out := make([]HiddenField, 0, len(names))
	for _, name := range names {
		out = append(out, HiddenField{Name: strings.TrimSpace(name), Value: fields[name]})
	}
	return out
}
