package view

import (
	"sort"
	"strings"
)

// Formatter fills a control template with named values. Placeholders use the
// `{name}` form, e.g. `<button id="{id}"{attrs}>{value}</button>`.
type Formatter interface {
	Format(template string, values map[string]string) string
}

// FormatterFunc adapts a plain function to the Formatter interface.
type FormatterFunc func(template string, values map[string]string) string

// Format calls fn.
func (fn FormatterFunc) Format(template string, values map[string]string) string {
	return fn(template, values)
}

// PlaceholderFormatter substitutes `{key}` tokens in a single pass, so values
// that happen to contain placeholder syntax are never expanded a second time.
// Tokens without a matching value are left untouched.
type PlaceholderFormatter struct{}

var _ Formatter = PlaceholderFormatter{}

// Format implements Formatter.
func (PlaceholderFormatter) Format(template string, values map[string]string) string {
	if template == "" || len(values) == 0 {
		return template
	}

	keys := make([]string, 0, len(values))
	for key := range values {
		if strings.TrimSpace(key) == "" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys)*2)
	for _, key := range keys {
		pairs = append(pairs, "{"+key+"}", values[key])
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

// DefaultFormatter is used when a form does not supply its own.
var DefaultFormatter Formatter = PlaceholderFormatter{}
