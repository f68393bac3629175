package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/NicabarNimble/jago/internal/errors"
)

const (
	// EnvPrefix prefixes environment overrides, e.g. JAGO_ROOT
	EnvPrefix = "JAGO"
	// ConfigName is the optional config file looked up in the home directory (.jago.yaml)
	ConfigName = ".jago"
	// DefaultRootSuffix is appended to the home directory to form the workspace root
	DefaultRootSuffix = "src"

	KeyRoot    = "root"
	KeyVerbose = "verbose"
	KeyHome    = "home"
)

// Config holds the process-wide settings. It is built once at startup and not modified afterwards.
type Config struct {
	Root    string `mapstructure:"root"`
	Verbose bool   `mapstructure:"verbose"`
}

// DefaultConfig provides default configuration values for the given home directory
func DefaultConfig(home string) *Config {
	return &Config{
		Root: filepath.Join(home, DefaultRootSuffix),
	}
}

// NewViper returns a viper instance reading JAGO_* environment variables and
// the HOME variable
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	_ = v.BindEnv(KeyRoot)
	_ = v.BindEnv(KeyVerbose)
	_ = v.BindEnv(KeyHome, "HOME")
	return v
}

// Load builds the configuration from v.
// Precedence is flag, then JAGO_ROOT, then the root key of ~/.jago.yaml, then <home>/src.
func Load(v *viper.Viper) (*Config, error) {
	home := v.GetString(KeyHome)
	if home == "" && v.GetString(KeyRoot) == "" {
		return nil, errors.Newf("config", errors.KindConfig, fmt.Errorf("HOME is not set; set HOME or %s_ROOT", EnvPrefix))
	}

	if home != "" {
		v.SetConfigName(ConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(home)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, errors.Newf("config", errors.KindConfig, fmt.Errorf("failed to read config file: %w", err))
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Newf("config", errors.KindConfig, fmt.Errorf("failed to parse config: %w", err))
	}

	cfg.MergeDefaults(home)
	if err := cfg.Validate(); err != nil {
		return nil, errors.Newf("config", errors.KindConfig, err)
	}
	return cfg, nil
}

// MergeDefaults merges default values for unset fields
func (c *Config) MergeDefaults(home string) {
	if c.Root == "" && home != "" {
		c.Root = DefaultConfig(home).Root
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Root == "" {
		return fmt.Errorf("workspace root cannot be empty")
	}
	if !filepath.IsAbs(c.Root) {
		return fmt.Errorf("workspace root must be an absolute path, got %q", c.Root)
	}
	return nil
}
