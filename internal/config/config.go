// Package config resolves the settings of one msprofstat invocation from
// defaults, an optional config file, MSPROFSTAT_* environment variables
// and command-line flags, in increasing order of precedence.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/mwiater/msprofstat/internal/trace"
)

// Keys shared by flags, config files and the environment.
const (
	KeyPattern   = "pattern"
	KeyRunPrefix = "run_prefix"
	KeyLogLevel  = "log_level"
	KeyLogFormat = "log_format"
	KeyDebug     = "debug"
	KeyJSON      = "json"
	KeyPretty    = "pretty"
)

// EnvPrefix is prepended to upper-cased keys, e.g. MSPROFSTAT_PATTERN.
const EnvPrefix = "MSPROFSTAT"

// Settings is the resolved, read-only configuration.
type Settings struct {
	Pattern   string `json:"pattern" mapstructure:"pattern"`
	RunPrefix string `json:"run_prefix" mapstructure:"run_prefix"`
	LogLevel  string `json:"log_level" mapstructure:"log_level"`
	LogFormat string `json:"log_format" mapstructure:"log_format"`
	Debug     bool   `json:"debug" mapstructure:"debug"`
	JSON      bool   `json:"json" mapstructure:"json"`
	Pretty    bool   `json:"pretty" mapstructure:"pretty"`
}

// SetDefaults registers the default value of every key on v and enables
// environment overrides.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyPattern, trace.DefaultPattern)
	v.SetDefault(KeyRunPrefix, trace.DefaultRunPrefix)
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyDebug, false)
	v.SetDefault(KeyJSON, false)
	v.SetDefault(KeyPretty, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

// ReadFile merges the config file at path into v. An empty path is a
// no-op; a path that cannot be read or parsed is an error.
func ReadFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "could not read config file %s", path)
	}
	return nil
}

// FromViper snapshots the current values of v.
func FromViper(v *viper.Viper) Settings {
	return Settings{
		Pattern:   v.GetString(KeyPattern),
		RunPrefix: v.GetString(KeyRunPrefix),
		LogLevel:  v.GetString(KeyLogLevel),
		LogFormat: v.GetString(KeyLogFormat),
		Debug:     v.GetBool(KeyDebug),
		JSON:      v.GetBool(KeyJSON),
		Pretty:    v.GetBool(KeyPretty),
	}
}
