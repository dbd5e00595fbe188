package adapter

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tailscale/hujson"

	m "github.com/fuzzbed/mangle/internal/model"
)

// ConfigLoader reads session configuration files. Files are JWCC (JSON
// with comments and trailing commas) so configs can be annotated.
type ConfigLoader interface {
	Load(path m.Path) (m.SessionConfig, error)
}

type configLoader struct{}

// NewConfigLoader constructs a ConfigLoader backed by the local
// filesystem.
func NewConfigLoader() ConfigLoader {
	return &configLoader{}
}

// fileConfig mirrors SessionConfig with JSON field names. Absent fields
// keep their defaults.
type fileConfig struct {
	Seed    *uint64  `json:"seed"`
	Passes  *int     `json:"passes"`
	Workers *int     `json:"workers"`
	Mode    *string  `json:"mode"`
	MaxSize *int     `json:"maxSize"`
	Output  *string  `json:"output"`
	Shapes  []string `json:"shapes"`
}

func (cl *configLoader) Load(path m.Path) (m.SessionConfig, error) {
	cfg := m.DefaultSessionConfig()

	raw, err := os.ReadFile(string(path))
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	std, err := hujson.Standardize(raw)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	var fc fileConfig
	if err := json.Unmarshal(std, &fc); err != nil {
		return cfg, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	if fc.Seed != nil {
		cfg.Seed = *fc.Seed
	}

	if fc.Passes != nil {
		cfg.Passes = *fc.Passes
	}

	if fc.Workers != nil {
		cfg.Workers = *fc.Workers
	}

	if fc.Mode != nil {
		cfg.Mode = *fc.Mode
	}

	if fc.MaxSize != nil {
		cfg.MaxSize = *fc.MaxSize
	}

	if fc.Output != nil {
		cfg.Output = m.Path(*fc.Output)
	}

	for _, shape := range fc.Shapes {
		cfg.Shapes = append(cfg.Shapes, m.Shape(shape))
	}

	return cfg, nil
}
