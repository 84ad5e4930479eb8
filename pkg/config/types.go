package config

import (
	"github.com/goliatone/go-formfields/pkg/fields"
)

// FormDefinition describes one form and its ordered fields.
type FormDefinition struct {
	// ID is taken from the key in the forms map.
	ID string `json:"-" yaml:"-"`
	// Source is the file the definition was loaded from.
	Source string `json:"-" yaml:"-"`

	FormTag       *bool    `json:"formTag,omitempty" yaml:"formTag,omitempty"`
	Action        string   `json:"action,omitempty" yaml:"action,omitempty"`
	Method        string   `json:"method,omitempty" yaml:"method,omitempty"`
	Enctype       string   `json:"enctype,omitempty" yaml:"enctype,omitempty"`
	CSSClasses    []string `json:"cssClasses,omitempty" yaml:"cssClasses,omitempty"`
	Translate     *bool    `json:"translate,omitempty" yaml:"translate,omitempty"`
	Locale        string   `json:"locale,omitempty" yaml:"locale,omitempty"`
	BaseTabIndex  int      `json:"baseTabIndex,omitempty" yaml:"baseTabIndex,omitempty"`
	AssetsBaseURL string   `json:"assetsBaseURL,omitempty" yaml:"assetsBaseURL,omitempty"`

	Fields []fields.Config `json:"fields" yaml:"fields"`
}

type documentFile struct {
	Forms map[string]FormDefinition `json:"forms" yaml:"forms"`
}
