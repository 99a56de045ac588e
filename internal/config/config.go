// Package config loads CLI defaults from an optional YAML file and
// A11YATTRS_* environment variables. Command-line flags take precedence over
// everything loaded here.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvConfig names the environment variable that points at a config file.
const EnvConfig = "A11YATTRS_CONFIG"

// Config holds CLI defaults.
type Config struct {
	Log    LogConfig
	Render RenderConfig
}

// LogConfig holds logging defaults.
type LogConfig struct {
	Level string
	JSON  bool
}

// RenderConfig holds defaults for the render command.
type RenderConfig struct {
	Format string
	Strict bool
}

// Load reads configuration from path, or from $A11YATTRS_CONFIG, or from
// config.yaml in the user config directory, in that order. A missing file is
// only tolerated when it was not named explicitly. Env var overrides use prefix A11YATTRS_, e.g.
// A11YATTRS_LOG_LEVEL=debug.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("log.level", "warn")
	v.SetDefault("log.json", false)
	v.SetDefault("render.format", "html")
	v.SetDefault("render.strict", false)

	v.SetConfigType("yaml")

	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "a11yattrs"))
		}
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("A11YATTRS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case explicit && errors.Is(err, fs.ErrNotExist):
			return Config{}, fmt.Errorf("config file %s: %w", path, err)
		case errors.As(err, &notFound), errors.Is(err, fs.ErrNotExist):
		default:
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
