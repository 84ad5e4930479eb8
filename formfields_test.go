package formfields

import (
	"context"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-formfields/pkg/fields"
)

func TestAssetsFSContainsResetScript(t *testing.T) {
	path := strings.TrimPrefix(fields.ResetScriptPath, fields.AssetsDirPlaceholder+"/")
	data, err := fs.ReadFile(AssetsFS(), path)
	if err != nil {
		t.Fatalf("expected %s to be readable: %v", path, err)
	}
	if !strings.Contains(string(data), "ns.Reset = Reset") {
		t.Fatalf("expected reset script to define %s", fields.ResetScriptClass)
	}
}

func TestTemplatesFSContainsChrome(t *testing.T) {
	for _, name := range []string{"formfields/field.tpl", "formfields/form.tpl"} {
		if _, err := fs.Stat(TemplatesFS(), name); err != nil {
			t.Fatalf("expected %s: %v", name, err)
		}
	}
}

func TestBuildForm(t *testing.T) {
	store, err := LoadDefinitions(fstest.MapFS{
		"login.yaml": {Data: []byte("forms:\n  login:\n    fields:\n      - {type: submit-button, name: go, value: Log in}\n")},
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if _, err := BuildForm(store, "missing"); err == nil {
		t.Fatalf("expected unknown form error")
	}

	f, err := BuildForm(store, "login")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	result, err := f.Render(context.Background())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := `<button id="login-go" name="go" type="submit">Log in</button>`
	if got := result.HTML(); got != want {
		t.Fatalf("markup mismatch\nwant: %s\n got: %s", want, got)
	}
	if len(DefaultRegistry().Types()) != 7 {
		t.Fatalf("expected seven built-in types")
	}
	if NewForm("x").ID() != "x" {
		t.Fatalf("unexpected form id")
	}
}
