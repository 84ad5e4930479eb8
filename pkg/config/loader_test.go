package config_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formfields/pkg/config"
	"github.com/goliatone/go-formfields/pkg/fields"
	"github.com/goliatone/go-formfields/pkg/form"
)

const checkoutYAML = `
forms:
  checkout:
    formTag: false
    fields:
      - type: submit-input
        name: send
        value: Send
      - type: reset-button
        name: clear
        tabIndex: auto
`

const searchJSON = `{
  "forms": {
    "search": {
      "action": "/search",
      "method": "get",
      "fields": [
        {"type": "image", "name": "go", "src": "/img/go.png", "width": 16, "height": 16}
      ]
    }
  }
}`

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"forms/checkout.yaml": {Data: []byte(checkoutYAML)},
		"forms/search.json":   {Data: []byte(searchJSON)},
		"forms/README.md":     {Data: []byte("ignored")},
	}

	store, err := config.LoadFS(fsys)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff([]string{"checkout", "search"}, store.IDs()); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}

	checkout, ok := store.Form("checkout")
	if !ok {
		t.Fatalf("checkout not loaded")
	}
	if checkout.Source != "forms/checkout.yaml" {
		t.Fatalf("unexpected source %q", checkout.Source)
	}
	if len(checkout.Fields) != 2 || !checkout.Fields[1].TabIndex.IsAuto() {
		t.Fatalf("unexpected fields %#v", checkout.Fields)
	}
	if checkout.FormTag == nil || *checkout.FormTag {
		t.Fatalf("expected formTag=false")
	}
}

func TestLoadFS_Empty(t *testing.T) {
	store, err := config.LoadFS(nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !store.Empty() {
		t.Fatalf("expected empty store")
	}
	if _, ok := store.Form("missing"); ok {
		t.Fatalf("unexpected form")
	}
}

func TestLoadFS_Errors(t *testing.T) {
	cases := map[string]struct {
		files fstest.MapFS
		want  string
	}{
		"unknown yaml key": {
			files: fstest.MapFS{"a.yaml": {Data: []byte("forms:\n  a:\n    colour: red\n    fields:\n      - {type: button, name: ok}\n")}},
			want:  "colour",
		},
		"unknown json field key": {
			files: fstest.MapFS{"a.json": {Data: []byte(`{"forms":{"a":{"fields":[{"type":"button","name":"ok","size":3}]}}}`)}},
			want:  "size",
		},
		"trailing json": {
			files: fstest.MapFS{"a.json": {Data: []byte(`{"forms":{}} {}`)}},
			want:  "unexpected data",
		},
		"duplicate form": {
			files: fstest.MapFS{
				"a.yaml": {Data: []byte("forms:\n  dup:\n    fields:\n      - {type: button, name: ok}\n")},
				"b.yml":  {Data: []byte("forms:\n  dup:\n    fields:\n      - {type: button, name: ok}\n")},
			},
			want: `duplicate form "dup"`,
		},
		"no fields": {
			files: fstest.MapFS{"a.yaml": {Data: []byte("forms:\n  a: {}\n")}},
			want:  "has no fields",
		},
		"missing type": {
			files: fstest.MapFS{"a.yaml": {Data: []byte("forms:\n  a:\n    fields:\n      - {name: ok}\n")}},
			want:  "has no type",
		},
		"duplicate field": {
			files: fstest.MapFS{"a.yaml": {Data: []byte("forms:\n  a:\n    fields:\n      - {type: button, name: ok}\n      - {type: submit-input, name: ok}\n")}},
			want:  `field "ok" twice`,
		},
		"empty file": {
			files: fstest.MapFS{"a.yaml": {Data: []byte("  \n")}},
			want:  "is empty",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.LoadFS(tc.files)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected %q in error, got %v", tc.want, err)
			}
		})
	}
}

func TestBuildForm(t *testing.T) {
	store, err := config.LoadFS(fstest.MapFS{"checkout.yaml": {Data: []byte(checkoutYAML)}})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	def, _ := store.Form("checkout")

	f, err := config.BuildForm(def, nil, form.WithBaseTabIndex(4))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if diff := cmp.Diff([]string{"send", "clear"}, f.FieldNames()); diff != "" {
		t.Fatalf("field order mismatch (-want +got):\n%s", diff)
	}

	result, err := f.Render(context.Background())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	send, _ := result.Control("send")
	want := `<input type="submit" id="checkout-send" name="send" value="Send" form="checkout" />`
	if send.HTML != want {
		t.Fatalf("markup mismatch\nwant: %s\n got: %s", want, send.HTML)
	}
	clearControl, _ := result.Control("clear")
	if !strings.Contains(clearControl.HTML, `tabindex="5"`) {
		t.Fatalf("expected tabindex 5, got %s", clearControl.HTML)
	}
	if len(result.Scripts) != 1 {
		t.Fatalf("expected one reset script, got %d", len(result.Scripts))
	}
}

func TestBuildForm_FieldError(t *testing.T) {
	def := config.FormDefinition{
		ID:     "broken",
		Fields: []fields.Config{{Type: "button", Name: "ok", Src: "/x.png"}},
	}
	_, err := config.BuildForm(def, fields.NewDefaultRegistry())
	if !errors.Is(err, fields.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	if !strings.Contains(err.Error(), `form "broken" field 0`) {
		t.Fatalf("expected form context in error, got %v", err)
	}
}
