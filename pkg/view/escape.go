package view

import (
	"regexp"
	"strings"
)

// entityRef matches a complete character reference at the start of a string:
// named (`&amp;`), decimal (`&#39;`) or hexadecimal (`&#x27;`).
var entityRef = regexp.MustCompile(`^&(?:[A-Za-z][A-Za-z0-9]*|#[0-9]{1,7}|#[xX][0-9A-Fa-f]{1,6});`)

// EscapeAttr escapes text for a double quoted attribute value or element
// text content. Quotes, angle brackets and bare ampersands are encoded;
// ampersands that already start a character reference are kept, so escaping
// is applied exactly once no matter how often a value passes through here.
func EscapeAttr(value string) string {
	if value == "" {
		return ""
	}
	if !strings.ContainsAny(value, `&<>"'`) {
		return value
	}

	var b strings.Builder
	b.Grow(len(value) + 16)
	for i := 0; i < len(value); i++ {
		switch c := value[i]; c {
		case '&':
			if ref := entityRef.FindString(value[i:]); ref != "" {
				b.WriteString(ref)
				i += len(ref) - 1
				continue
			}
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		case '\'':
			b.WriteString("&#39;")
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
