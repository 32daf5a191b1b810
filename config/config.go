// Package config loads and validates the service configuration.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/kilianp07/powerplan/core/metrics"
	"github.com/kilianp07/powerplan/infra/mqtt"
)

type Config struct {
	API     APIConfig      `json:"api"`
	Metrics metrics.Config `json:"metrics"`
	PlanLog PlanLogConfig  `json:"planlog"`
	MQTT    mqtt.Config    `json:"mqtt"`
}

// APIConfig defines the HTTP listener settings.
type APIConfig struct {
	Addr string `json:"addr"`
	// AllowedOrigins configures CORS; empty means same-origin only.
	AllowedOrigins []string `json:"allowed_origins"`
}

// SetDefaults applies sane defaults.
func (c *APIConfig) SetDefaults() {
	if c.Addr == "" {
		c.Addr = ":8888"
	}
}

// Load reads the configuration file, applies K_ environment overrides and
// validates every section.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("K_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "k_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.API.SetDefaults()
	cfg.Metrics.SetDefaults()
	cfg.PlanLog.SetDefaults()
	cfg.MQTT.SetDefaults()
	if err := cfg.PlanLog.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.MQTT.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
