package form

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/goliatone/go-formfields/pkg/fields"
	"github.com/goliatone/go-formfields/pkg/view"
)

// DefaultAssetsBaseURL replaces fields.AssetsDirPlaceholder when no base URL
// is configured.
const DefaultAssetsBaseURL = "/assets/formfields"

// Script is a supporting script registered by a field during PreDispatch.
type Script struct {
	Path      string
	ClassName string
	Args      []any
}

// Assets collects supporting scripts for one render pass. Files are emitted
// once each; every registration keeps its own initializer.
type Assets struct {
	files   []string
	seen    map[string]struct{}
	scripts []Script
	inits   map[string]struct{}
}

// Add records a script registration. Identical registrations are kept once.
func (a *Assets) Add(path, className string, args ...any) {
	path = strings.TrimSpace(path)
	if path == "" {
		return
	}
	if a.seen == nil {
		a.seen = make(map[string]struct{})
		a.inits = make(map[string]struct{})
	}
	if _, ok := a.seen[path]; !ok {
		a.seen[path] = struct{}{}
		a.files = append(a.files, path)
	}

	key := initKey(path, className, args)
	if _, ok := a.inits[key]; ok {
		return
	}
	a.inits[key] = struct{}{}
	a.scripts = append(a.scripts, Script{Path: path, ClassName: className, Args: append([]any(nil), args...)})
}

// Reset clears the collector before a new pass.
func (a *Assets) Reset() {
	a.files = nil
	a.seen = nil
	a.scripts = nil
	a.inits = nil
}

// Files returns the distinct script paths in registration order.
func (a *Assets) Files() []string {
	return append([]string(nil), a.files...)
}

// Scripts returns the distinct registrations in order.
func (a *Assets) Scripts() []Script {
	return append([]Script(nil), a.scripts...)
}

// URL resolves a registered path against baseURL.
func URL(path, baseURL string) string {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultAssetsBaseURL
	}
	return strings.Replace(path, fields.AssetsDirPlaceholder, baseURL, 1)
}

// HTML renders one <script src> per file followed by an inline block that
// instantiates each registered class with the form element and its args.
func (a *Assets) HTML(formID, baseURL string) (string, error) {
	if len(a.files) == 0 {
		return "", nil
	}

	var b strings.Builder
	for _, path := range a.files {
		fmt.Fprintf(&b, `<script src="%s"></script>`+"\n", view.EscapeAttr(URL(path, baseURL)))
	}

	var inits []string
	for _, script := range a.scripts {
		if strings.TrimSpace(script.ClassName) == "" {
			continue
		}
		formRef, _ := json.Marshal(formID)
		params := []string{fmt.Sprintf("document.getElementById(%s)", formRef)}
		for _, arg := range script.Args {
			encoded, err := json.Marshal(arg)
			if err != nil {
				return "", fmt.Errorf("form: encode args for %s: %w", script.ClassName, err)
			}
			params = append(params, string(encoded))
		}
		inits = append(inits, fmt.Sprintf("new %s(%s);", script.ClassName, strings.Join(params, ", ")))
	}
	if len(inits) > 0 {
		b.WriteString("<script>\n")
		b.WriteString(strings.Join(inits, "\n"))
		b.WriteString("\n</script>\n")
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

func initKey(path, className string, args []any) string {
	encoded, err := json.Marshal(args)
	if err != nil {
		encoded = []byte(fmt.Sprint(args))
	}
	return path + "|" + className + "|" + string(encoded)
}
