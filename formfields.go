// Package formfields is the entry point for building button, submit, reset
// and image form fields. It re-exports the constructors most callers need and
// the embedded browser scripts and chrome templates.
package formfields

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/goliatone/go-formfields/pkg/config"
	"github.com/goliatone/go-formfields/pkg/fields"
	"github.com/goliatone/go-formfields/pkg/form"
)

//go:embed assets/fields/*.js
var embeddedAssets embed.FS

// AssetsFS exposes the supporting scripts that fields register (for example
// fields/reset.js) so applications can serve them under the form's assets
// base URL.
//
// Typical mount:
//
//	mux.Handle("/assets/formfields/",
//	  http.StripPrefix("/assets/formfields/",
//	    http.FileServerFS(formfields.AssetsFS()),
//	  ),
//	)
func AssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		return embeddedAssets
	}
	return sub
}

// TemplatesFS exposes the built-in form and field chrome templates.
func TemplatesFS() fs.FS {
	return form.TemplatesFS()
}

// NewForm creates a form host.
func NewForm(id string, opts ...form.Option) *form.Form {
	return form.New(id, opts...)
}

// DefaultRegistry returns a registry holding every built-in variant.
func DefaultRegistry() *fields.Registry {
	return fields.NewDefaultRegistry()
}

// LoadDefinitions reads form definitions from fsys.
func LoadDefinitions(fsys fs.FS) (*config.Store, error) {
	return config.LoadFS(fsys)
}

// BuildForm builds the form id from store using the default registry.
func BuildForm(store *config.Store, id string, opts ...form.Option) (*form.Form, error) {
	def, ok := store.Form(id)
	if !ok {
		return nil, fmt.Errorf("formfields: unknown form %q", id)
	}
	return config.BuildForm(def, nil, opts...)
}
