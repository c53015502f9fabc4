// Package config loads CLI settings from flags, environment, an optional
// YAML file and a local .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix is prepended to every environment variable, e.g. UTF8CONVERT_LOG_LEVEL.
	EnvPrefix = "UTF8CONVERT"
	// Name is the config file base name searched for in . and ~/.config/utf8convert.
	Name = "utf8convert"
)

// Config keys, shared with the cobra flag bindings.
const (
	KeyLogLevel  = "log_level"
	KeyLogFormat = "log_format"
	KeyNoColor   = "no_color"
)

// Config holds the ambient CLI settings.
type Config struct {
	LogLevel  string
	LogFormat string
	NoColor   bool
}

// Init prepares v to read the config file, env and .env. A missing .env or
// config file is not an error; a malformed config file is. It returns the
// path of the config file in use, or "".
func Init(v *viper.Viper, cfgFile string) (string, error) {
	_ = godotenv.Load()

	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyNoColor, false)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(Name)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", Name))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return "", nil
		}
		return "", fmt.Errorf("read config: %w", err)
	}
	return v.ConfigFileUsed(), nil
}

// FromViper extracts a Config from an initialised viper instance.
func FromViper(v *viper.Viper) *Config {
	return &Config{
		LogLevel:  v.GetString(KeyLogLevel),
		LogFormat: v.GetString(KeyLogFormat),
		NoColor:   v.GetBool(KeyNoColor),
	}
}
