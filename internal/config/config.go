package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/layerkit-labs/layerkit/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys.
const (
	KeyRootMarker   = "root_marker"
	KeyPlaceholder  = "placeholder"
	KeyFeatureToken = "feature_token"
)

// Defaults applied when neither the config file nor the environment sets a key.
const (
	DefaultRootMarker   = "lib"
	DefaultPlaceholder  = "// Auto generated."
	DefaultFeatureToken = "#feature#"
)

var defaults = map[string]string{
	KeyRootMarker:   DefaultRootMarker,
	KeyPlaceholder:  DefaultPlaceholder,
	KeyFeatureToken: DefaultFeatureToken,
}

// Settings is the resolved configuration consumed by the scaffold commands.
type Settings struct {
	RootMarker   string `mapstructure:"root_marker" validate:"required,excludesall=/\\"`
	Placeholder  string `mapstructure:"placeholder" validate:"required,excludes=\n"`
	FeatureToken string `mapstructure:"feature_token" validate:"required,min=3,excludesall=/\\"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Dir returns the path to the config directory. LAYERKIT_HOME overrides the
// default of ~/.layerkit/.
func Dir() string {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.layerkit/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
// A .env file in the working directory is loaded first; a missing one is fine.
func Load() error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("loading .env: %w", err)
	}

	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()
	for k, v := range defaults {
		viper.SetDefault(k, v)
	}

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
	return nil
}

// Current returns the validated settings.
func Current() (Settings, error) {
	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decoding settings: %w", err)
	}
	if err := validate.Struct(s); err != nil {
		return Settings{}, fmt.Errorf("invalid settings: %w", err)
	}
	return s, nil
}

// Keys returns the known setting keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(defaults))
	for k := range defaults {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if _, ok := defaults[key]; !ok {
		return fmt.Errorf("unknown key %q (known keys: %v)", key, Keys())
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	s, err := Current()
	if err != nil {
		return err
	}
	switch key {
	case KeyRootMarker:
		s.RootMarker = value
	case KeyPlaceholder:
		s.Placeholder = value
	case KeyFeatureToken:
		s.FeatureToken = value
	}
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}

	// Only the file's own keys are persisted; defaults and environment
	// overrides stay out of it.
	configFile := FilePath()
	file := viper.New()
	file.SetConfigFile(configFile)
	file.SetConfigType(fileType)
	if err := file.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("reading config file %s: %w", configFile, err)
	}
	file.Set(key, value)
	if err := file.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	viper.Set(key, value)
	return nil
}
