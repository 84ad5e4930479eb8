package render

import (
	"strconv"
	"strings"
)

// ErrorMapping splits a server validation payload into messages for known
// field names and form level messages.
type ErrorMapping struct {
	Fields map[string][]string
	Form   []string
}

// For returns the messages mapped to the named field.
func (m ErrorMapping) For(name string) []string {
	if m.Fields == nil {
		return nil
	}
	return m.Fields[name]
}

// MergeFormErrors concatenates form level messages, trimming whitespace and
// dropping duplicates while preserving order.
func MergeFormErrors(existing []string, extras ...string) []string {
	combined := make([]string, 0, len(existing)+len(extras))
	combined = append(combined, existing...)
	combined = append(combined, extras...)
	return normalizeMessages(combined)
}

// MapErrorPayload assigns payload entries to fieldNames. Keys may be plain
// names, dotted or JSON pointer paths ("/body/send", "$.data.items[0]");
// wrapper segments and numeric indexes are skipped. Anything that does not
// resolve to a known field becomes a form level message.
func MapErrorPayload(fieldNames []string, payload map[string][]string) ErrorMapping {
	mapping := ErrorMapping{Fields: make(map[string][]string)}
	if len(payload) == 0 {
		mapping.Fields = nil
		return mapping
	}

	known := make(map[string]struct{}, len(fieldNames))
	for _, name := range fieldNames {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			known[trimmed] = struct{}{}
		}
	}

	for rawPath, messages := range payload {
		clean := normalizeMessages(messages)
		if len(clean) == 0 {
			continue
		}
		name := matchFieldName(rawPath, known)
		if name == "" {
			mapping.Form = append(mapping.Form, clean...)
			continue
		}
		mapping.Fields[name] = normalizeMessages(append(mapping.Fields[name], clean...))
	}

	if len(mapping.Fields) == 0 {
		mapping.Fields = nil
	}
	mapping.Form = normalizeMessages(mapping.Form)
	return mapping
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}
	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))
	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func matchFieldName(raw string, known map[string]struct{}) string {
	trimmed := strings.TrimSpace(raw)
	if isFormLevelKey(trimmed) {
		return ""
	}
	if _, ok := known[trimmed]; ok {
		return trimmed
	}
	for _, segment := range pathSegments(trimmed) {
		if isWrapperSegment(segment) {
			continue
		}
		if _, err := strconv.Atoi(segment); err == nil {
			continue
		}
		if _, ok := known[segment]; ok {
			return segment
		}
		return ""
	}
	return ""
}

func pathSegments(path string) []string {
	clean := strings.NewReplacer("[", ".", "]", "").Replace(path)
	parts := strings.FieldsFunc(clean, func(r rune) bool {
		return r == '.' || r == '/' || r == '#' || r == '$'
	})
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		segment := strings.TrimSpace(part)
		if segment == "" {
			continue
		}
		segment = strings.ReplaceAll(segment, "~1", "/")
		segment = strings.ReplaceAll(segment, "~0", "~")
		out = append(out, segment)
	}
	return out
}

func isWrapperSegment(segment string) bool {
	switch strings.ToLower(segment) {
	case "body", "request", "payload", "data", "attributes":
		return true
	default:
		return false
	}
}

func isFormLevelKey(key string) bool {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "", ".", "/", "#", "$", "form", "base", "__all__", "non_field_errors", "non-field-errors":
		return true
	default:
		return false
	}
}
