package render

import (
	"fmt"
	"reflect"
	"strings"
)

// TemplateI18nConfig configures the translation helpers exposed to chrome
// templates.
type TemplateI18nConfig struct {
	// DefaultLocale is used when the locale source passed to the helper is
	// empty or does not carry a locale.
	DefaultLocale string
	// LocaleKey is the map key or struct field holding the locale when the
	// helper receives template data instead of a string. Defaults to "locale".
	LocaleKey string
	// FuncName renames the translate helper.
	FuncName  string
	OnMissing MissingTranslationHandler
}

// TemplateI18nFuncs returns helpers for gotemplate.WithTemplateFunc:
//
//	translate(localeSrc, key, ...args) string
//	current_locale(localeSrc) string
func TemplateI18nFuncs(t Translator, cfg TemplateI18nConfig) map[string]any {
	localeKey := strings.TrimSpace(cfg.LocaleKey)
	if localeKey == "" {
		localeKey = "locale"
	}
	funcName := strings.TrimSpace(cfg.FuncName)
	if funcName == "" {
		funcName = "translate"
	}
	onMissing := cfg.OnMissing
	if onMissing == nil {
		onMissing = missingTranslationDefault
	}

	locale := func(src any) string {
		if found := resolveLocale(src, localeKey); found != "" {
			return found
		}
		return cfg.DefaultLocale
	}

	return map[string]any{
		funcName: func(localeSrc any, key string, params ...any) string {
			key = strings.TrimSpace(key)
			if key == "" {
				return ""
			}
			loc := locale(localeSrc)
			if t == nil {
				return onMissing(loc, key, params, ErrMissingTranslator)
			}
			msg, err := t.Translate(loc, key, params...)
			if err != nil || strings.TrimSpace(msg) == "" {
				return onMissing(loc, key, params, err)
			}
			return msg
		},
		"current_locale": locale,
	}
}

func resolveLocale(src any, key string) string {
	switch data := src.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(data)
	case map[string]string:
		return strings.TrimSpace(data[key])
	case map[string]any:
		if v, ok := data[key]; ok && v != nil {
			return strings.TrimSpace(fmt.Sprint(v))
		}
		return ""
	}

	value := reflect.ValueOf(src)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return ""
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return ""
	}
	field := value.FieldByNameFunc(func(name string) bool {
		return strings.EqualFold(name, key)
	})
	if field.IsValid() && field.Kind() == reflect.String {
		return strings.TrimSpace(field.String())
	}
	return ""
}
