package render

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// ErrMissingTranslator is passed to the missing handler when no Translator is
// configured.
var ErrMissingTranslator = errors.New("render: translator not configured")

// ErrMissingTranslation is returned by MapTranslator for unknown keys.
var ErrMissingTranslation = errors.New("render: missing translation")

// Translator resolves a translation key for a locale. Field texts (button
// values, image alt, titles) are used as their own keys.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// TranslatorFunc adapts a function to the Translator interface.
type TranslatorFunc func(locale, key string, args ...any) (string, error)

// Translate calls fn.
func (fn TranslatorFunc) Translate(locale, key string, args ...any) (string, error) {
	return fn(locale, key, args...)
}

// MissingTranslationHandler decides what is rendered when a key cannot be
// translated. args carries a map with the "default" fallback text.
type MissingTranslationHandler func(locale, key string, args []any, err error) string

// MapTranslator is an in-memory catalog keyed by locale then key. Messages
// may contain fmt verbs that are filled from args. Safe for concurrent use.
type MapTranslator struct {
	mu       sync.RWMutex
	catalogs map[string]map[string]string
	fallback string
}

// NewMapTranslator builds a catalog. fallbackLocale is consulted when a key
// is missing for the requested locale; empty disables it.
func NewMapTranslator(fallbackLocale string, catalogs map[string]map[string]string) *MapTranslator {
	t := &MapTranslator{
		catalogs: make(map[string]map[string]string, len(catalogs)),
		fallback: normalizeLocale(fallbackLocale),
	}
	for locale, messages := range catalogs {
		t.Add(locale, messages)
	}
	return t
}

// Add merges messages into the catalog of locale.
func (t *MapTranslator) Add(locale string, messages map[string]string) {
	locale = normalizeLocale(locale)
	t.mu.Lock()
	defer t.mu.Unlock()

	catalog := t.catalogs[locale]
	if catalog == nil {
		catalog = make(map[string]string, len(messages))
		t.catalogs[locale] = catalog
	}
	for key, message := range messages {
		catalog[key] = message
	}
}

// Locales returns the locales with at least one message.
func (t *MapTranslator) Locales() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]string, 0, len(t.catalogs))
	for locale := range t.catalogs {
		out = append(out, locale)
	}
	return out
}

// Translate implements Translator.
func (t *MapTranslator) Translate(locale, key string, args ...any) (string, error) {
	t.mu.RLock()
	message, ok := t.lookup(normalizeLocale(locale), key)
	t.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("%w: %q (%s)", ErrMissingTranslation, key, locale)
	}
	if len(args) > 0 && strings.Contains(message, "%") {
		return fmt.Sprintf(message, args...), nil
	}
	return message, nil
}

func (t *MapTranslator) lookup(locale, key string) (string, bool) {
	candidates := []string{locale}
	if base, _, found := strings.Cut(locale, "-"); found {
		candidates = append(candidates, base)
	}
	if t.fallback != "" {
		candidates = append(candidates, t.fallback)
	}
	for _, candidate := range candidates {
		if message, ok := t.catalogs[candidate][key]; ok {
			return message, true
		}
	}
	return "", false
}

func normalizeLocale(locale string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(locale), "_", "-"))
}

// Localizer binds a Translator to one locale and produces the text
// translation function a form hands to its fields.
type Localizer struct {
	Locale     string
	Translator Translator
	OnMissing  MissingTranslationHandler
}

// Text translates text using it as the key, falling back to the text itself.
func (l Localizer) Text(text string) string {
	return Translate(l.Locale, text, text, l.Translator, l.OnMissing)
}

// Translate resolves key for locale. On failure onMissing decides the result;
// without a handler the fallback (or the key when fallback is blank) is used.
func Translate(locale, key, fallback string, t Translator, onMissing MissingTranslationHandler) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return fallback
	}

	var err error
	if t == nil {
		err = ErrMissingTranslator
	} else {
		var result string
		result, err = t.Translate(locale, key)
		if err == nil && strings.TrimSpace(result) != "" {
			return result
		}
	}

	if onMissing != nil {
		return onMissing(locale, key, []any{map[string]any{"default": fallback}}, err)
	}
	return missingTranslationDefault(locale, key, []any{map[string]any{"default": fallback}}, err)
}

// missingTranslationDefault returns the "default" argument when present and
// the key otherwise.
func missingTranslationDefault(_ string, key string, args []any, _ error) string {
	for _, arg := range args {
		values, ok := arg.(map[string]any)
		if !ok {
			continue
		}
		if fallback, ok := values["default"].(string); ok && strings.TrimSpace(fallback) != "" {
			return fallback
		}
	}
	return key
}
