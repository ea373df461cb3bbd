// Package config loads scte's on-disk configuration via koanf: a set of
// built-in defaults overlaid by an optional YAML file on disk.
package config

import (
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Debug holds the debug introspection server's settings.
type Debug struct {
	Addr    string `yaml:"Addr"`
	Enabled bool   `yaml:"Enabled"`
}

// Config is scte's full on-disk configuration.
type Config struct {
	ProfilePath string `yaml:"ProfilePath"`
	MenuPath    string `yaml:"MenuPath"`
	Verbose     bool   `yaml:"Verbose"`
	Debug       Debug  `yaml:"Debug"`
}

// Default returns the built-in configuration used before any file is
// loaded on top of it.
func Default() Config {
	return Config{
		ProfilePath: "default.sccprofile",
		MenuPath:    "default.menu",
		Debug: Debug{
			Addr:    ":7880",
			Enabled: false,
		},
	}
}

// Load reads path (a YAML file) over the defaults and returns the merged
// result. A missing file is not an error — Default() is returned as-is, the
// same "keys are not case-sensitive... when no configuration is provided,
// the defaults are used" contract koanf-based configs in this style follow.
func Load(path string) (Config, error) {
	cfg := Default()

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if strings.Contains(err.Error(), "no such file") {
			return cfg, nil
		}
		return cfg, err
	}
	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
