package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Setting keys. Each key doubles as the flag name, the config file key and,
// upper-cased with dashes turned into underscores, the FORMFIELDS_ env var.
const (
	KeyDefinitions   = "definitions"
	KeyLocale        = "locale"
	KeyTranslations  = "translations"
	KeyChrome        = "chrome"
	KeyAssetsBaseURL = "assets-base-url"
	KeyThemeFile     = "theme-file"
	KeyThemeVariant  = "theme-variant"
	KeyNoColor       = "no-color"

	// DefaultConfigFile is looked up in the working directory when --config
	// is not given.
	DefaultConfigFile = ".formfields.yaml"

	envPrefix = "FORMFIELDS"
)

// Settings is the resolved CLI configuration.
type Settings struct {
	Definitions   string
	Locale        string
	Translations  string
	Chrome        bool
	AssetsBaseURL string
	ThemeFile     string
	ThemeVariant  string
	NoColor       bool
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetDefault(KeyDefinitions, "forms")
	v.SetDefault(KeyChrome, false)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// loadSettings merges the config file into v, binds flags and resolves the
// settings with the precedence defaults < file < env < flags.
func loadSettings(v *viper.Viper, configPath string, flags ...*pflag.FlagSet) (Settings, error) {
	explicit := strings.TrimSpace(configPath) != ""
	if !explicit {
		configPath = DefaultConfigFile
	}
	if err := mergeConfigFile(v, configPath, explicit); err != nil {
		return Settings{}, err
	}
	for _, set := range flags {
		if set == nil {
			continue
		}
		if err := v.BindPFlags(set); err != nil {
			return Settings{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	return Settings{
		Definitions:   strings.TrimSpace(v.GetString(KeyDefinitions)),
		Locale:        strings.TrimSpace(v.GetString(KeyLocale)),
		Translations:  strings.TrimSpace(v.GetString(KeyTranslations)),
		Chrome:        v.GetBool(KeyChrome),
		AssetsBaseURL: strings.TrimSpace(v.GetString(KeyAssetsBaseURL)),
		ThemeFile:     strings.TrimSpace(v.GetString(KeyThemeFile)),
		ThemeVariant:  strings.TrimSpace(v.GetString(KeyThemeVariant)),
		NoColor:       v.GetBool(KeyNoColor),
	}, nil
}

func mergeConfigFile(v *viper.Viper, path string, required bool) error {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) && !required {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("config path %s is a directory", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := v.MergeConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
