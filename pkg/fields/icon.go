package fields

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	iconPolicyOnce sync.Once
	iconPolicy     *bluemonday.Policy
)

// SanitizeIcon strips everything but inline SVG drawing elements from icon
// markup placed inside <button> controls.
func SanitizeIcon(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(iconSanitizer().Sanitize(trimmed))
}

func iconSanitizer() *bluemonday.Policy {
	iconPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("svg", "g", "path", "circle", "rect", "line", "polyline", "polygon", "title", "use")

		policy.AllowAttrs(
			"xmlns", "viewbox", "width", "height", "fill", "stroke",
			"stroke-width", "stroke-linecap", "stroke-linejoin",
			"aria-hidden", "focusable", "role", "class",
		).OnElements("svg")
		policy.AllowAttrs("href", "xlink:href").OnElements("use")
		policy.AllowAttrs(
			"d", "cx", "cy", "r", "x", "y", "x1", "y1", "x2", "y2",
			"points", "rx", "ry", "fill", "stroke", "stroke-width", "class",
		).OnElements("path", "circle", "rect", "line", "polyline", "polygon")
		policy.AllowAttrs("class", "fill", "stroke").OnElements("g")

		iconPolicy = policy
	})
	return iconPolicy
}

// ButtonContent holds the optional icon of <button> based variants.
type ButtonContent struct {
	icon string
}

// Icon returns the sanitized icon markup.
func (bc *ButtonContent) Icon() string { return bc.icon }

// SetIcon sanitizes and stores icon markup; an empty string removes it.
func (bc *ButtonContent) SetIcon(markup string) { bc.icon = SanitizeIcon(markup) }

// inner joins the icon and the already escaped text.
func (bc *ButtonContent) inner(escapedText string) string {
	switch {
	case bc.icon == "":
		return escapedText
	case escapedText == "":
		return bc.icon
	default:
		return bc.icon + " " + escapedText
	}
}
