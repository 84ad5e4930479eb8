package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/goliatone/go-formfields/pkg/config"
	"github.com/goliatone/go-formfields/pkg/fields"
	"github.com/goliatone/go-formfields/pkg/form"
	"github.com/goliatone/go-formfields/pkg/render"
	"github.com/goliatone/go-formfields/pkg/render/template/gotemplate"
)

// Option customises the root command.
type Option func(*app)

// WithPrompter replaces the survey based prompter.
func WithPrompter(p Prompter) Option {
	return func(a *app) {
		if p != nil {
			a.prompter = p
		}
	}
}

// WithRegistry replaces the default field registry.
func WithRegistry(r *fields.Registry) Option {
	return func(a *app) {
		if r != nil {
			a.registry = r
		}
	}
}

type app struct {
	v          *viper.Viper
	prompter   Prompter
	registry   *fields.Registry
	configPath string
}

// NewRootCommand builds the formfields command tree.
func NewRootCommand(opts ...Option) *cobra.Command {
	a := &app{
		v:        newViper(),
		prompter: surveyPrompter{},
		registry: fields.NewDefaultRegistry(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}

	root := &cobra.Command{
		Use:           "formfields",
		Short:         "Render button, submit, reset and image form fields",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default "+DefaultConfigFile+" when present)")
	root.PersistentFlags().StringP(KeyDefinitions, "d", "forms", "directory holding form definitions (.yaml, .yml, .json)")
	root.PersistentFlags().Bool(KeyNoColor, false, "disable colored output")

	root.AddCommand(a.typesCommand(), a.listCommand(), a.renderCommand())
	return root
}

func (a *app) settings(cmd *cobra.Command) (Settings, error) {
	settings, err := loadSettings(a.v, a.configPath, cmd.Flags(), cmd.InheritedFlags())
	if err != nil {
		return Settings{}, err
	}
	if settings.NoColor {
		color.NoColor = true
	}
	return settings, nil
}

func (a *app) typesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the registered field types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range a.registry.Types() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func (a *app) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the forms found in the definitions directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := a.settings(cmd)
			if err != nil {
				return err
			}
			store, err := config.LoadDir(settings.Definitions)
			if err != nil {
				return err
			}
			if store.Empty() {
				color.New(color.FgYellow).Fprintf(cmd.ErrOrStderr(), "[!] No forms in %s\n", settings.Definitions)
				return nil
			}
			out := cmd.OutOrStdout()
			for _, id := range store.IDs() {
				def, _ := store.Form(id)
				fmt.Fprintf(out, "%s\t%d field(s)\t%s\n", id, len(def.Fields), def.Source)
			}
			return nil
		},
	}
}

func (a *app) renderCommand() *cobra.Command {
	var (
		output      string
		interactive bool
	)
	cmd := &cobra.Command{
		Use:   "render [form-id]",
		Short: "Render a form definition to HTML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := a.settings(cmd)
			if err != nil {
				return err
			}
			store, err := config.LoadDir(settings.Definitions)
			if err != nil {
				return err
			}
			var id string
			if len(args) == 1 {
				id = strings.TrimSpace(args[0])
			}
			id, err = a.pickForm(cmd.Context(), store, id, interactive)
			if err != nil {
				return err
			}
			def, _ := store.Form(id)

			html, err := a.render(cmd.Context(), def, settings)
			if err != nil {
				return err
			}
			return writeOutput(cmd, output, html)
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	flags.BoolVarP(&interactive, "interactive", "i", false, "prompt for the form when no id is given")
	flags.String(KeyLocale, "", "locale used to translate field texts")
	flags.String(KeyTranslations, "", "YAML catalog file shaped as locale -> key -> text")
	flags.Bool(KeyChrome, false, "wrap controls in the form and field templates")
	flags.String(KeyAssetsBaseURL, "", "base URL replacing __FORM_ASSETS__ in script paths")
	flags.String(KeyThemeFile, "", "theme manifest (YAML) whose templates live next to it")
	flags.String(KeyThemeVariant, "", "theme variant to select")
	return cmd
}

func (a *app) pickForm(ctx context.Context, store *config.Store, id string, interactive bool) (string, error) {
	ids := store.IDs()
	if len(ids) == 0 {
		return "", errors.New("no form definitions found")
	}
	if id != "" {
		if _, ok := store.Form(id); !ok {
			return "", fmt.Errorf("unknown form %q (available: %s)", id, strings.Join(ids, ", "))
		}
		return id, nil
	}
	if len(ids) == 1 {
		return ids[0], nil
	}
	if !interactive {
		return "", fmt.Errorf("form id required (available: %s)", strings.Join(ids, ", "))
	}
	if ctx == nil {
		ctx = context.Background()
	}
	idx, err := a.prompter.Select(ctx, SelectConfig{Message: "Form to render", Options: ids, PageSize: 10})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(ids) {
		return "", errors.New("no form selected")
	}
	return ids[idx], nil
}

func (a *app) render(ctx context.Context, def config.FormDefinition, settings Settings) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	var opts []form.Option
	if settings.AssetsBaseURL != "" {
		opts = append(opts, form.WithAssetsBaseURL(settings.AssetsBaseURL))
	}
	var translator *render.MapTranslator
	if settings.Translations != "" {
		var err error
		translator, err = loadTranslations(settings.Translations, settings.Locale)
		if err != nil {
			return "", err
		}
		opts = append(opts, form.WithTranslator(translator, settings.Locale))
	}
	if settings.ThemeFile != "" {
		selector, err := loadThemeFile(settings.ThemeFile)
		if err != nil {
			return "", err
		}
		engineOpts := []gotemplate.Option{
			gotemplate.WithFS(os.DirFS(filepath.Dir(settings.ThemeFile))),
			gotemplate.WithFS(form.TemplatesFS()),
		}
		if translator != nil {
			engineOpts = append(engineOpts, gotemplate.WithTemplateFunc(
				render.TemplateI18nFuncs(translator, render.TemplateI18nConfig{DefaultLocale: settings.Locale}),
			))
		}
		engine, err := gotemplate.New(engineOpts...)
		if err != nil {
			return "", err
		}
		opts = append(opts,
			form.WithTemplateRenderer(engine),
			form.WithThemeSelector(selector, selector.manifest.Name, settings.ThemeVariant),
		)
	}

	f, err := config.BuildForm(def, a.registry, opts...)
	if err != nil {
		return "", err
	}
	if settings.Chrome || settings.ThemeFile != "" {
		return f.RenderHTML(ctx)
	}
	result, err := f.Render(ctx)
	if err != nil {
		return "", err
	}
	html := result.HTML()
	scripts, err := f.ScriptsHTML()
	if err != nil {
		return "", err
	}
	if scripts != "" {
		html += "\n" + scripts
	}
	return html, nil
}

func writeOutput(cmd *cobra.Command, path, html string) error {
	if path == "" {
		_, err := io.WriteString(cmd.OutOrStdout(), html+"\n")
		return err
	}
	if err := os.WriteFile(path, []byte(html+"\n"), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	color.New(color.FgGreen).Fprintf(cmd.ErrOrStderr(), "[+] Form written to %s\n", path)
	return nil
}
