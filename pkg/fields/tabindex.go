package fields

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const tabIndexAutoToken = "auto"

// TabIndex is either unset, a fixed integer or the "auto" sentinel that pulls
// the next sequential index from the owning form during PreDispatch.
type TabIndex struct {
	value int
	auto  bool
	set   bool
}

// TabIndexAuto requests a form assigned tab index.
func TabIndexAuto() TabIndex {
	return TabIndex{auto: true, set: true}
}

// TabIndexValue pins the tab index to n. Negative values keep the control
// focusable but out of sequential navigation.
func TabIndexValue(n int) TabIndex {
	return TabIndex{value: n, set: true}
}

// IsSet reports whether a tab index was configured.
func (t TabIndex) IsSet() bool { return t.set }

// IsAuto reports whether the index is assigned by the form.
func (t TabIndex) IsAuto() bool { return t.set && t.auto }

// Value returns the fixed index; it is meaningless for auto or unset values.
func (t TabIndex) Value() int { return t.value }

func (t TabIndex) String() string {
	switch {
	case !t.set:
		return ""
	case t.auto:
		return tabIndexAutoToken
	default:
		return strconv.Itoa(t.value)
	}
}

// ParseTabIndex accepts "auto", an integer, or an empty string for unset.
func ParseTabIndex(raw string) (TabIndex, error) {
	trimmed := strings.TrimSpace(raw)
	switch {
	case trimmed == "":
		return TabIndex{}, nil
	case strings.EqualFold(trimmed, tabIndexAutoToken):
		return TabIndexAuto(), nil
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return TabIndex{}, fmt.Errorf("fields: invalid tab index %q", raw)
	}
	return TabIndexValue(n), nil
}

// MarshalJSON renders auto as a string and fixed values as numbers.
func (t TabIndex) MarshalJSON() ([]byte, error) {
	switch {
	case !t.set:
		return []byte("null"), nil
	case t.auto:
		return json.Marshal(tabIndexAutoToken)
	default:
		return json.Marshal(t.value)
	}
}

// UnmarshalJSON accepts a number, "auto", a numeric string or null.
func (t *TabIndex) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*t = TabIndex{}
		return nil
	}
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		parsed, err := ParseTabIndex(text)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("fields: invalid tab index %s", raw)
	}
	*t = TabIndexValue(n)
	return nil
}

// UnmarshalYAML accepts the same forms as UnmarshalJSON.
func (t *TabIndex) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("fields: tab index must be a scalar (line %d)", node.Line)
	}
	if node.Tag == "!!null" {
		*t = TabIndex{}
		return nil
	}
	parsed, err := ParseTabIndex(node.Value)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
