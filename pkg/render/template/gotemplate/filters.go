package gotemplate

import (
	"strings"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-formfields/pkg/view"
)

func filterTrim(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue(strings.TrimSpace(in.String())), nil
}

// filterAttr escapes a value for an attribute with the same rules as control
// markup and marks it safe so autoescaping does not encode it again.
func filterAttr(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.IsNil() {
		return pongo2.AsSafeValue(""), nil
	}
	return pongo2.AsSafeValue(view.EscapeAttr(in.String())), nil
}

// filterClasses joins a list of class names, skipping blanks and duplicates.
func filterClasses(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	var classes []string
	seen := make(map[string]struct{})
	add := func(raw string) {
		for _, class := range strings.Fields(raw) {
			if _, ok := seen[class]; ok {
				continue
			}
			seen[class] = struct{}{}
			classes = append(classes, class)
		}
	}
	if in.CanSlice() && !in.IsString() {
		in.Iterate(func(_, _ int, key, _ *pongo2.Value) bool {
			add(key.String())
			return true
		}, func() {})
	} else {
		add(in.String())
	}
	return pongo2.AsValue(strings.Join(classes, " ")), nil
}
