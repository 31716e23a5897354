package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// envPrefix namespaces the server's environment variables, e.g.
// HYDROCALC_ADDR, HYDROCALC_LOG_LEVEL, HYDROCALC_REQUEST_TIMEOUT.
const envPrefix = "HYDROCALC_"

// Load builds a Config by layering sources, lowest precedence first:
//  1. defaults (New)
//  2. YAML file named by HYDROCALC_CONFIG, if set
//  3. environment variables with the HYDROCALC_ prefix
func Load() (*Config, error) {
	k := koanf.New(".")

	if path := os.Getenv(envPrefix + "CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// HYDROCALC_LOG_LEVEL -> log_level (flat keys, underscores kept to
	// match the koanf struct tags).
	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *New()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
