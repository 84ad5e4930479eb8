package view

import "strings"

// Attrs accumulates rendered attributes in insertion order.
type Attrs struct {
	items []string
	names map[string]struct{}
}

// Set appends `name="value"`. Empty values are skipped.
func (a *Attrs) Set(name, value string) {
	name = strings.TrimSpace(name)
	if name == "" || value == "" {
		return
	}
	a.items = append(a.items, name+`="`+EscapeAttr(value)+`"`)
	a.mark(name)
}

// Flag appends the bare boolean attribute when on is true.
func (a *Attrs) Flag(name string, on bool) {
	name = strings.TrimSpace(name)
	if name == "" || !on {
		return
	}
	a.items = append(a.items, name)
	a.mark(name)
}

// Has reports whether an attribute with name was already written.
func (a *Attrs) Has(name string) bool {
	_, ok := a.names[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

func (a *Attrs) mark(name string) {
	if a.names == nil {
		a.names = make(map[string]struct{})
	}
	a.names[strings.ToLower(name)] = struct{}{}
}

// Len reports how many attributes were written.
func (a *Attrs) Len() int {
	return len(a.items)
}

// String joins the attributes with single spaces.
func (a *Attrs) String() string {
	return strings.Join(a.items, " ")
}

// Placeholder returns the attribute string prefixed with a space, or an empty
// string, ready to be substituted into an `{attrs}` placeholder.
func (a *Attrs) Placeholder() string {
	if len(a.items) == 0 {
		return ""
	}
	return " " + a.String()
}
