package fields_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formfields/pkg/fields"
)

func TestConstructors_RejectUnsupportedOptions(t *testing.T) {
	cases := []struct {
		name   string
		build  func() error
		option string
	}{
		{
			name: "button with src",
			build: func() error {
				_, err := fields.NewButton(fields.Config{Name: "a", Src: "/x.png"})
				return err
			},
			option: "src",
		},
		{
			name: "reset input with form action",
			build: func() error {
				_, err := fields.NewResetInput(fields.Config{Name: "a", FormAction: "/x"})
				return err
			},
			option: "formAction",
		},
		{
			name: "submit input with icon",
			build: func() error {
				_, err := fields.NewSubmitInput(fields.Config{Name: "a", Icon: "<svg></svg>"})
				return err
			},
			option: "icon",
		},
		{
			name: "image with value",
			build: func() error {
				_, err := fields.NewImage(fields.Config{Name: "a", Src: "/x.png", Value: fields.String("Go")})
				return err
			},
			option: "value",
		},
		{
			name: "button with result state",
			build: func() error {
				_, err := fields.NewButton(fields.Config{Name: "a", CustomResultState: fields.Int(1)})
				return err
			},
			option: "customResultState",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.build()
			if !errors.Is(err, fields.ErrConfiguration) {
				t.Fatalf("expected configuration error, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.option) {
				t.Fatalf("error should name option %q, got %v", tc.option, err)
			}
		})
	}
}

func TestConstructors_TypeMismatch(t *testing.T) {
	_, err := fields.NewSubmitInput(fields.Config{Type: fields.TypeImage, Name: "a"})
	if !errors.Is(err, fields.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestControlAttrs_Reserved(t *testing.T) {
	for _, attr := range []string{"id", "name", "value", "readonly", "disabled", "class", " Class ", "type", "SRC"} {
		_, err := fields.NewButton(fields.Config{Name: "a", ControlAttrs: map[string]string{attr: "x"}})
		if !errors.Is(err, fields.ErrConfiguration) {
			t.Errorf("%q: expected configuration error, got %v", attr, err)
		}
	}

	button, _ := fields.NewButton(fields.Config{Name: "a"})
	if err := button.SetControlAttr("Data-Role", "x"); err != nil {
		t.Fatalf("set control attr: %v", err)
	}
	if got := button.ControlAttrs()["data-role"]; got != "x" {
		t.Fatalf("control attribute names are lower-cased, got %v", button.ControlAttrs())
	}
	button.RemoveControlAttr("DATA-ROLE")
	if len(button.ControlAttrs()) != 0 {
		t.Fatalf("expected attribute removed, got %v", button.ControlAttrs())
	}
}

func TestFormAttrs_Validation(t *testing.T) {
	if _, err := fields.NewSubmitButton(fields.Config{Name: "a", FormEnctype: "application/json"}); !errors.Is(err, fields.ErrConfiguration) {
		t.Fatalf("expected enctype error, got %v", err)
	}
	if _, err := fields.NewSubmitButton(fields.Config{Name: "a", FormMethod: "delete"}); !errors.Is(err, fields.ErrConfiguration) {
		t.Fatalf("expected method error, got %v", err)
	}

	submit, err := fields.NewSubmitInput(fields.Config{Name: "a", FormMethod: "get", FormEnctype: fields.EnctypePlainText})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if submit.FormMethod() != fields.MethodGet {
		t.Fatalf("method should be normalized, got %q", submit.FormMethod())
	}
	if err := submit.SetFormEnctype(""); err != nil || submit.FormEnctype() != "" {
		t.Fatalf("empty enctype should clear, got %q (%v)", submit.FormEnctype(), err)
	}
}

func TestNumericOptions_RejectNegative(t *testing.T) {
	if _, err := fields.NewSubmitInput(fields.Config{Name: "a", CustomResultState: fields.Int(-1)}); !errors.Is(err, fields.ErrConfiguration) {
		t.Fatalf("expected result state error, got %v", err)
	}
	if _, err := fields.NewImage(fields.Config{Name: "a", Src: "/x.png", Width: -5}); !errors.Is(err, fields.ErrConfiguration) {
		t.Fatalf("expected width error, got %v", err)
	}

	img, _ := fields.NewImage(fields.Config{Name: "a", Src: "/x.png"})
	if err := img.SetHeight(-1); !errors.Is(err, fields.ErrConfiguration) {
		t.Fatalf("expected height error, got %v", err)
	}
	if img.Height() != 0 {
		t.Fatalf("rejected height must not be stored, got %d", img.Height())
	}
}

func TestIsReservedResultState(t *testing.T) {
	for _, state := range []int{fields.ResultErrors, fields.ResultSuccess, fields.ResultPrevPage, fields.ResultNextPage} {
		if !fields.IsReservedResultState(state) {
			t.Errorf("%d should be reserved", state)
		}
	}
	for _, state := range []int{3, 5, 10} {
		if fields.IsReservedResultState(state) {
			t.Errorf("%d should be application defined", state)
		}
	}
}

func TestConfig_DecodeJSON(t *testing.T) {
	raw := `{
		"type": "submit-input",
		"name": "send",
		"value": "Send",
		"tabIndex": "auto",
		"customResultState": 2,
		"formMethod": "post"
	}`
	var cfg fields.Config
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !cfg.TabIndex.IsAuto() {
		t.Fatalf("expected auto tab index, got %v", cfg.TabIndex)
	}
	if cfg.Value == nil || *cfg.Value != "Send" {
		t.Fatalf("unexpected value %v", cfg.Value)
	}
	if cfg.CustomResultState == nil || *cfg.CustomResultState != 2 {
		t.Fatalf("unexpected result state %v", cfg.CustomResultState)
	}

	var numeric fields.Config
	if err := json.Unmarshal([]byte(`{"name":"a","tabIndex":3}`), &numeric); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if numeric.TabIndex.IsAuto() || numeric.TabIndex.Value() != 3 {
		t.Fatalf("expected fixed tab index 3, got %v", numeric.TabIndex)
	}

	if err := json.Unmarshal([]byte(`{"name":"a","tabIndex":"later"}`), &numeric); err == nil {
		t.Fatalf("expected invalid tab index error")
	}
}

func TestConfig_DecodeYAML(t *testing.T) {
	raw := `
type: image
name: go
src: /img/go.png
alt: ""
width: 32
tabIndex: auto
`
	var cfg fields.Config
	if err := yaml.Unmarshal([]byte(raw), &cfg); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !cfg.TabIndex.IsAuto() {
		t.Fatalf("expected auto tab index, got %v", cfg.TabIndex)
	}
	if cfg.Alt == nil || *cfg.Alt != "" {
		t.Fatalf("explicit empty alt should decode to an empty pointer, got %v", cfg.Alt)
	}

	img, err := fields.NewImage(cfg)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if img.Alt() != "" || img.Width() != 32 {
		t.Fatalf("unexpected image config alt=%q width=%d", img.Alt(), img.Width())
	}
}

func TestTabIndex_String(t *testing.T) {
	cases := map[string]fields.TabIndex{
		"":     {},
		"auto": fields.TabIndexAuto(),
		"-1":   fields.TabIndexValue(-1),
	}
	for want, index := range cases {
		if got := index.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}

	parsed, err := fields.ParseTabIndex(" AUTO ")
	if err != nil || !parsed.IsAuto() {
		t.Fatalf("expected auto from ParseTabIndex, got %v (%v)", parsed, err)
	}
}
