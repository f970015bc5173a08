// Package config resolves watsetcli's run parameters from command-line
// flag values with an optional YAML file layered over them: the flag
// values are viper defaults, and any key the file sets replaces them.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Options holds every tunable parameter of a watsetcli run. Flags in
// main.go populate one of these directly; Load then replaces any field
// whose key an optional config file sets.
type Options struct {
	LocalAlgorithm  string
	GlobalAlgorithm string
	SelfWeight      float64
	LogLevel        string
	LogFormat       string
}

// ErrUnknownAlgorithm indicates --local or --global named something other
// than "together" or "maxmax".
var ErrUnknownAlgorithm = errors.New("config: unknown algorithm (want together or maxmax)")

// Load merges whatever cfgFile contains over flagOpts (the values cobra
// parsed from the command line). A key set in cfgFile takes precedence over
// the matching flagOpts field whether or not the user passed that flag
// explicitly; Load does not tell an explicit flag from its default. An
// empty cfgFile is not an error — it simply means the flag values (or their
// defaults) are used as-is.
func Load(cfgFile string, flagOpts Options) (Options, error) {
	v := viper.New()
	v.SetDefault("local", flagOpts.LocalAlgorithm)
	v.SetDefault("global", flagOpts.GlobalAlgorithm)
	v.SetDefault("self_weight", flagOpts.SelfWeight)
	v.SetDefault("log_level", flagOpts.LogLevel)
	v.SetDefault("log_format", flagOpts.LogFormat)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Options{}, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	}

	resolved := Options{
		LocalAlgorithm:  v.GetString("local"),
		GlobalAlgorithm: v.GetString("global"),
		SelfWeight:      v.GetFloat64("self_weight"),
		LogLevel:        v.GetString("log_level"),
		LogFormat:       v.GetString("log_format"),
	}

	if err := validateAlgorithm(resolved.LocalAlgorithm); err != nil {
		return Options{}, fmt.Errorf("local: %w", err)
	}
	if err := validateAlgorithm(resolved.GlobalAlgorithm); err != nil {
		return Options{}, fmt.Errorf("global: %w", err)
	}

	return resolved, nil
}

func validateAlgorithm(name string) error {
	switch name {
	case "together", "maxmax":
		return nil
	default:
		return fmt.Errorf("%q: %w", name, ErrUnknownAlgorithm)
	}
}
