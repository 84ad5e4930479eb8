package gotemplate

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/flosch/pongo2/v6"
	gotemplatepkg "github.com/goliatone/go-template"

	"github.com/goliatone/go-formfields/pkg/render/template"
)

// Option configures the engine before construction.
type Option func(*config)

type config struct {
	baseDir    string
	templates  []fs.FS
	extension  string
	templateFn map[string]any
	globalData map[string]any
	engineOpts []gotemplatepkg.Option
}

// WithBaseDir loads templates from a directory on disk. It is searched after
// every file system given through WithFS.
func WithBaseDir(dir string) Option {
	return func(cfg *config) {
		cfg.baseDir = strings.TrimSpace(dir)
	}
}

// WithFS loads templates from files. It may be given more than once; earlier
// file systems take precedence, so callers can shadow embedded defaults.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templates = append(cfg.templates, files)
		}
	}
}

// WithExtension overrides the ".tpl" template extension.
func WithExtension(ext string) Option {
	return func(cfg *config) {
		trimmed := strings.TrimSpace(ext)
		if trimmed == "" {
			return
		}
		if !strings.HasPrefix(trimmed, ".") {
			trimmed = "." + trimmed
		}
		cfg.extension = trimmed
	}
}

// WithTemplateFunc registers helpers. pongo2.FilterFunction values become
// filters; other functions are exposed as globals.
func WithTemplateFunc(funcs map[string]any) Option {
	return func(cfg *config) {
		if len(funcs) == 0 {
			return
		}
		if cfg.templateFn == nil {
			cfg.templateFn = make(map[string]any, len(funcs))
		}
		for name, fn := range funcs {
			cfg.templateFn[strings.TrimSpace(name)] = fn
		}
	}
}

// WithGlobalData seeds values available to every template.
func WithGlobalData(data map[string]any) Option {
	return func(cfg *config) {
		if len(data) == 0 {
			return
		}
		if cfg.globalData == nil {
			cfg.globalData = make(map[string]any, len(data))
		}
		for key, value := range data {
			cfg.globalData[strings.TrimSpace(key)] = value
		}
	}
}

// WithGoTemplateOptions forwards options to the underlying go-template
// renderer. They are applied after the options derived from this package,
// so they win on conflicts.
func WithGoTemplateOptions(opts ...gotemplatepkg.Option) Option {
	return func(cfg *config) {
		for _, opt := range opts {
			if opt != nil {
				cfg.engineOpts = append(cfg.engineOpts, opt)
			}
		}
	}
}

// Engine implements template.TemplateRenderer on top of a go-template
// renderer.
type Engine struct {
	renderer *gotemplatepkg.Engine
}

var _ template.TemplateRenderer = (*Engine)(nil)

// New constructs an Engine. Either WithBaseDir or WithFS is required.
func New(options ...Option) (*Engine, error) {
	cfg := &config{extension: ".tpl"}
	for _, opt := range options {
		if opt != nil {
			opt(cfg)
		}
	}

	layers := append([]fs.FS(nil), cfg.templates...)
	if cfg.baseDir != "" {
		info, err := os.Stat(cfg.baseDir)
		if err != nil {
			return nil, fmt.Errorf("gotemplate: base dir: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("gotemplate: base dir %s is not a directory", cfg.baseDir)
		}
		layers = append(layers, os.DirFS(cfg.baseDir))
	}
	if len(layers) == 0 {
		return nil, errors.New("gotemplate: need to provide either base dir or fs.FS")
	}

	funcs := defaultFilters()
	for name, fn := range cfg.templateFn {
		if name == "" || fn == nil {
			continue
		}
		funcs[name] = fn
	}

	engineOpts := []gotemplatepkg.Option{
		gotemplatepkg.WithFS(layeredFS(layers)),
		gotemplatepkg.WithExtension(cfg.extension),
		gotemplatepkg.WithTemplateFunc(funcs),
	}
	if len(cfg.globalData) > 0 {
		engineOpts = append(engineOpts, gotemplatepkg.WithGlobalData(cfg.globalData))
	}
	engineOpts = append(engineOpts, cfg.engineOpts...)

	renderer, err := gotemplatepkg.NewRenderer(engineOpts...)
	if err != nil {
		return nil, fmt.Errorf("gotemplate: %w", err)
	}
	return &Engine{renderer: renderer}, nil
}

// Render treats name as inline content when it contains template tags and as
// a template name otherwise.
func (e *Engine) Render(name string, data any, out ...io.Writer) (string, error) {
	if e == nil || e.renderer == nil {
		return "", errors.New("gotemplate: engine is nil")
	}
	rendered, err := e.renderer.Render(name, data, out...)
	if err != nil {
		return "", fmt.Errorf("gotemplate: %w", err)
	}
	return rendered, nil
}

// RenderTemplate renders a named template; the extension is optional.
func (e *Engine) RenderTemplate(name string, data any, out ...io.Writer) (string, error) {
	if e == nil || e.renderer == nil {
		return "", errors.New("gotemplate: engine is nil")
	}
	rendered, err := e.renderer.RenderTemplate(strings.TrimSpace(name), data, out...)
	if err != nil {
		return "", fmt.Errorf("gotemplate: %w", err)
	}
	return rendered, nil
}

// RenderString renders inline template content.
func (e *Engine) RenderString(templateContent string, data any, out ...io.Writer) (string, error) {
	if e == nil || e.renderer == nil {
		return "", errors.New("gotemplate: engine is nil")
	}
	rendered, err := e.renderer.RenderString(templateContent, data, out...)
	if err != nil {
		return "", fmt.Errorf("gotemplate: %w", err)
	}
	return rendered, nil
}

// RegisterFilter registers a filter. pongo2 filters are process wide, so a
// name can only be registered once.
func (e *Engine) RegisterFilter(name string, fn func(input any, param any) (any, error)) error {
	if e == nil || e.renderer == nil {
		return errors.New("gotemplate: engine is nil")
	}
	name = strings.TrimSpace(name)
	if name == "" || fn == nil {
		return errors.New("gotemplate: filter name and function required")
	}
	if err := e.renderer.RegisterFilter(name, fn); err != nil {
		return fmt.Errorf("gotemplate: %w", err)
	}
	return nil
}

// GlobalContext merges data into the values visible to every template.
func (e *Engine) GlobalContext(data any) error {
	if e == nil || e.renderer == nil {
		return errors.New("gotemplate: engine is nil")
	}
	if data == nil {
		return nil
	}
	if err := e.renderer.GlobalContext(data); err != nil {
		return fmt.Errorf("gotemplate: %w", err)
	}
	return nil
}

// RegisterPostHook runs hook on every rendered output, e.g. to minify or
// annotate chrome markup.
func (e *Engine) RegisterPostHook(hook gotemplatepkg.PostHook) {
	if e == nil || e.renderer == nil || hook == nil {
		return
	}
	e.renderer.RegisterPostHook(hook)
}

// layeredFS opens a name from the first file system that has it.
type layeredFS []fs.FS

func (l layeredFS) Open(name string) (fs.File, error) {
	var firstErr error
	for _, files := range l {
		f, err := files.Open(name)
		if err == nil {
			return f, nil
		}
		if firstErr == nil || !errors.Is(err, fs.ErrNotExist) {
			firstErr = err
		}
	}
	if firstErr == nil {
		firstErr = &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return nil, firstErr
}

func defaultFilters() map[string]any {
	return map[string]any{
		"trim":    pongo2.FilterFunction(filterTrim),
		"attr":    pongo2.FilterFunction(filterAttr),
		"classes": pongo2.FilterFunction(filterClasses),
	}
}
