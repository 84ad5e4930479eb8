package fields

import (
	"strings"

	"github.com/goliatone/go-formfields/pkg/view"
)

var imageFieldOptions = allowOptions(formAttrOptions, imageOptions)

// Image renders an <input type="image"> submit control. A src is required
// once the field is attached.
type Image struct {
	Base
	FormAttrs
	SubmitProps
	WidthHeight

	src     string
	alt     string
	altText string
}

// NewImage builds an Image from cfg. Alt defaults to "Submit"; an explicit
// empty Config.Alt removes the attribute.
func NewImage(cfg Config) (*Image, error) {
	if err := cfg.checkOptions(TypeImage, imageFieldOptions); err != nil {
		return nil, err
	}
	base, err := newBase(TypeImage, "", ImageTemplate, cfg)
	if err != nil {
		return nil, err
	}
	img := &Image{
		Base: base,
		src:  strings.TrimSpace(cfg.Src),
		alt:  DefaultImageAlt,
	}
	if cfg.Alt != nil {
		img.alt = *cfg.Alt
	}
	if img.FormAttrs, err = newFormAttrs(&img.Base, cfg); err != nil {
		return nil, err
	}
	if img.SubmitProps, err = newSubmitProps(&img.Base, cfg); err != nil {
		return nil, err
	}
	if img.WidthHeight, err = newWidthHeight(&img.Base, cfg); err != nil {
		return nil, err
	}
	return img, nil
}

// Src returns the image path.
func (img *Image) Src() string { return img.src }

// SetSrc sets the image path.
func (img *Image) SetSrc(src string) { img.src = strings.TrimSpace(src) }

// Alt returns the configured (untranslated) alternative text.
func (img *Image) Alt() string { return img.alt }

// SetAlt sets the alternative text; empty removes the attribute.
func (img *Image) SetAlt(alt string) {
	img.alt = alt
	img.invalidate()
}

// SetForm attaches the image; a non-empty src is required.
func (img *Image) SetForm(form Form) error {
	return img.attach(form, func() error {
		if img.src == "" {
			return configError(img.fieldType, img.name, "no input:image `src` attribute defined")
		}
		return nil
	})
}

// PreDispatch resolves the tab index and translates the alt text.
func (img *Image) PreDispatch() error {
	if err := img.preDispatch(); err != nil {
		return err
	}
	img.altText = img.translateText(img.alt)
	return nil
}

// RenderControl renders the <input type="image"> element.
func (img *Image) RenderControl() (string, error) {
	if err := img.checkRenderable(); err != nil {
		return "", err
	}
	if img.src == "" {
		return "", configError(img.fieldType, img.name, "no input:image `src` attribute defined")
	}

	var attrs view.Attrs
	img.FormAttrs.writeAttrs(&attrs)
	attrs.Set("alt", img.altText)
	img.WidthHeight.writeAttrs(&attrs)
	img.writeCommonAttrs(&attrs, img.resultAttrs())

	return img.format(map[string]string{
		"src":   view.EscapeAttr(img.src),
		"attrs": attrs.Placeholder(),
	}), nil
}
