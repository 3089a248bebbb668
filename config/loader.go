package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultOutputFormat is used when the config names no format.
const DefaultOutputFormat = "json"

// LoadAppConfig loads and validates the application configuration from
// the given YAML file, applying defaults for omitted fields.
func LoadAppConfig(path string) (AppConfig, error) {
	var cfg AppConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	v := validator.New()
	if err := v.Struct(cfg.Output); err != nil {
		return cfg, err
	}
	// mode mappings are optional; if present validate each
	for _, m := range cfg.Decoder.Modes {
		if err := v.Struct(m); err != nil {
			return cfg, err
		}
	}
	applyDefaults(&cfg)
	return cfg, nil
}

// Default returns the configuration used when no config file exists.
func Default() AppConfig {
	var cfg AppConfig
	applyDefaults(&cfg)
	return cfg
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Output.Format == "" {
		cfg.Output.Format = DefaultOutputFormat
	}
}
