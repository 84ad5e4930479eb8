package fields

import (
	"sort"
	"strings"
)

// Config collects every option a field variant may accept. Constructors reject
// options that the variant does not support instead of silently ignoring them.
type Config struct {
	// Type selects the variant when building through a Registry. When set on
	// a direct constructor call it must match the variant's type tag.
	Type string `json:"type,omitempty" yaml:"type,omitempty"`
	// Name identifies the submitted value and is required before attach.
	Name string `json:"name" yaml:"name"`
	// Value overrides the variant's default visible text. A pointer so that
	// an explicit empty string can be told apart from "use the default".
	Value *string `json:"value,omitempty" yaml:"value,omitempty"`
	// Title is rendered as the global title attribute.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
	// Translate overrides the form wide translation default.
	Translate *bool `json:"translate,omitempty" yaml:"translate,omitempty"`
	// TranslateTitle controls title translation; defaults to true.
	TranslateTitle *bool `json:"translateTitle,omitempty" yaml:"translateTitle,omitempty"`
	// CSSClasses render as the class attribute in the given order.
	CSSClasses []string `json:"cssClasses,omitempty" yaml:"cssClasses,omitempty"`
	// ControlAttrs are additional attributes. Reserved names (id, name,
	// value, readonly, disabled, class) are rejected.
	ControlAttrs map[string]string `json:"controlAttrs,omitempty" yaml:"controlAttrs,omitempty"`
	AccessKey    string            `json:"accessKey,omitempty" yaml:"accessKey,omitempty"`
	AutoFocus    bool              `json:"autoFocus,omitempty" yaml:"autoFocus,omitempty"`
	Disabled     bool              `json:"disabled,omitempty" yaml:"disabled,omitempty"`
	Required     bool              `json:"required,omitempty" yaml:"required,omitempty"`
	TabIndex     TabIndex          `json:"tabIndex,omitempty" yaml:"tabIndex,omitempty"`
	// Template replaces the variant's control template for this instance.
	Template string `json:"template,omitempty" yaml:"template,omitempty"`

	// Icon is SVG markup placed before the text of <button> based variants.
	Icon string `json:"icon,omitempty" yaml:"icon,omitempty"`

	CustomResultState *int    `json:"customResultState,omitempty" yaml:"customResultState,omitempty"`
	FormAction        string  `json:"formAction,omitempty" yaml:"formAction,omitempty"`
	FormEnctype       Enctype `json:"formEnctype,omitempty" yaml:"formEnctype,omitempty"`
	FormMethod        Method  `json:"formMethod,omitempty" yaml:"formMethod,omitempty"`
	FormNoValidate    bool    `json:"formNoValidate,omitempty" yaml:"formNoValidate,omitempty"`
	FormTarget        string  `json:"formTarget,omitempty" yaml:"formTarget,omitempty"`

	Src    string  `json:"src,omitempty" yaml:"src,omitempty"`
	Alt    *string `json:"alt,omitempty" yaml:"alt,omitempty"`
	Width  int     `json:"width,omitempty" yaml:"width,omitempty"`
	Height int     `json:"height,omitempty" yaml:"height,omitempty"`
}

// String returns a pointer to s, for Config.Value and Config.Alt.
func String(s string) *string { return &s }

// Bool returns a pointer to b, for Config.Translate and Config.TranslateTitle.
func Bool(b bool) *bool { return &b }

// Int returns a pointer to n, for Config.CustomResultState.
func Int(n int) *int { return &n }

type option string

const (
	optIcon       option = "icon"
	optSubmit     option = "customResultState"
	optFormAction option = "formAction"
	optEnctype    option = "formEnctype"
	optMethod     option = "formMethod"
	optNoValidate option = "formNoValidate"
	optFormTarget option = "formTarget"
	optSrc        option = "src"
	optAlt        option = "alt"
	optWidth      option = "width"
	optHeight     option = "height"
	optValue      option = "value"
)

// variantOptions returns the variant specific options that were set.
func (c Config) variantOptions() []option {
	var set []option
	add := func(opt option, present bool) {
		if present {
			set = append(set, opt)
		}
	}
	add(optValue, c.Value != nil)
	add(optIcon, strings.TrimSpace(c.Icon) != "")
	add(optSubmit, c.CustomResultState != nil)
	add(optFormAction, c.FormAction != "")
	add(optEnctype, c.FormEnctype != "")
	add(optMethod, c.FormMethod != "")
	add(optNoValidate, c.FormNoValidate)
	add(optFormTarget, c.FormTarget != "")
	add(optSrc, c.Src != "")
	add(optAlt, c.Alt != nil)
	add(optWidth, c.Width != 0)
	add(optHeight, c.Height != 0)
	return set
}

var (
	formAttrOptions = []option{optSubmit, optFormAction, optEnctype, optMethod, optNoValidate, optFormTarget}
	imageOptions    = []option{optSrc, optAlt, optWidth, optHeight}
)

func allowOptions(groups ...[]option) map[option]struct{} {
	allowed := make(map[option]struct{})
	for _, group := range groups {
		for _, opt := range group {
			allowed[opt] = struct{}{}
		}
	}
	return allowed
}

// checkOptions rejects options the variant does not support, reporting them
// in a stable order.
func (c Config) checkOptions(fieldType string, allowed map[option]struct{}) error {
	if c.Type != "" && c.Type != fieldType {
		return configError(fieldType, c.Name, "config type %q does not match", c.Type)
	}

	var rejected []string
	for _, opt := range c.variantOptions() {
		if _, ok := allowed[opt]; !ok {
			rejected = append(rejected, string(opt))
		}
	}
	if len(rejected) == 0 {
		return nil
	}
	sort.Strings(rejected)
	return configError(fieldType, c.Name, "unsupported option(s): %s", strings.Join(rejected, ", "))
}
