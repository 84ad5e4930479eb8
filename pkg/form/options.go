package form

import (
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formfields/pkg/render"
	rendertemplate "github.com/goliatone/go-formfields/pkg/render/template"
	"github.com/goliatone/go-formfields/pkg/view"
)

// Option configures a Form.
type Option func(*Form)

// WithFormTag controls whether the form renders its own <form> element.
// Without it, controls carry form="<id>" to stay associated.
func WithFormTag(enabled bool) Option {
	return func(f *Form) {
		f.rendersTag = enabled
	}
}

// WithAction sets the action, method and enctype of the rendered form tag.
func WithAction(action, method, enctype string) Option {
	return func(f *Form) {
		f.action = strings.TrimSpace(action)
		if m := strings.ToUpper(strings.TrimSpace(method)); m != "" {
			f.method = m
		}
		f.enctype = strings.TrimSpace(enctype)
	}
}

// WithCSSClasses sets the classes of the rendered form tag.
func WithCSSClasses(classes ...string) Option {
	return func(f *Form) {
		f.cssClasses = append(f.cssClasses, classes...)
	}
}

// WithFormatter replaces the placeholder formatter used by every control.
func WithFormatter(formatter view.Formatter) Option {
	return func(f *Form) {
		if formatter != nil {
			f.formatter = formatter
		}
	}
}

// WithTranslator enables translation of field texts for locale.
func WithTranslator(translator render.Translator, locale string) Option {
	return func(f *Form) {
		f.localizer.Translator = translator
		f.localizer.Locale = strings.TrimSpace(locale)
		f.translate = translator != nil
	}
}

// WithTranslation overrides the form wide translation default that fields
// inherit when they do not set their own.
func WithTranslation(enabled bool) Option {
	return func(f *Form) {
		f.translate = enabled
	}
}

// WithMissingTranslationHandler decides the text used for untranslated keys.
func WithMissingTranslationHandler(handler render.MissingTranslationHandler) Option {
	return func(f *Form) {
		f.localizer.OnMissing = handler
	}
}

// WithBaseTabIndex offsets automatically assigned tab indexes so that the
// first auto field gets base+1.
func WithBaseTabIndex(base int) Option {
	return func(f *Form) {
		f.baseTabIndex = base
		f.tabIndex = base
	}
}

// WithAssetsBaseURL sets the URL that replaces the assets placeholder in
// supporting script paths.
func WithAssetsBaseURL(url string) Option {
	return func(f *Form) {
		f.assetsBaseURL = strings.TrimSpace(url)
	}
}

// WithHiddenFields adds hidden inputs rendered after the opening form tag.
func WithHiddenFields(items ...render.HiddenField) Option {
	return func(f *Form) {
		f.hidden = render.MergeHiddenFields(f.hidden, items...)
	}
}

// WithCSRFToken adds a hidden CSRF token input.
func WithCSRFToken(name, token string) Option {
	return WithHiddenFields(render.CSRFToken(name, token))
}

// WithErrors seeds validation messages keyed by field name or path.
func WithErrors(payload map[string][]string) Option {
	return func(f *Form) {
		f.errors = payload
	}
}

// WithTemplateRenderer sets the engine used for chrome rendering. The engine
// must be able to resolve the chrome templates, see TemplatesFS.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(f *Form) {
		f.renderer = renderer
	}
}

// WithThemeSelector resolves chrome templates and tokens from a go-theme
// selection of name and variant.
func WithThemeSelector(selector theme.ThemeSelector, name, variant string) Option {
	return func(f *Form) {
		f.theme = themeChoice{
			selector: selector,
			name:     strings.TrimSpace(name),
			variant:  strings.TrimSpace(variant),
		}
	}
}
