package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/dwarfsim/pkg/physics"
)

const (
	DefaultModel        = "white_dwarf"
	DefaultC0           = 1.0
	DefaultOriginCutoff = physics.DefaultOriginCutoff
	DefaultMass         = 0.0
	DefaultDensity      = 1.0
)

// Config is the on-disk parameter block for a white dwarf model.
type Config struct {
	Model        string          `yaml:"model"`
	C0           float64         `yaml:"c0"`
	OriginCutoff float64         `yaml:"origin_cutoff"`
	InitState    InitStateConfig `yaml:"init_state"`
}

type InitStateConfig struct {
	Mass    float64 `yaml:"mass"`
	Density float64 `yaml:"density"`
}

// envOverrides holds optional environment values. Pointers distinguish
// "unset" from an explicit zero.
type envOverrides struct {
	C0           *float64 `env:"DWARF_C0"`
	OriginCutoff *float64 `env:"DWARF_ORIGIN_CUTOFF"`
}

// DefaultConfig returns the solar preset values with the standard origin cutoff.
func DefaultConfig() *Config {
	return &Config{
		Model:        DefaultModel,
		C0:           DefaultC0,
		OriginCutoff: DefaultOriginCutoff,
		InitState: InitStateConfig{
			Mass:    DefaultMass,
			Density: DefaultDensity,
		},
	}
}

// Load reads a YAML file over DefaultConfig; keys missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	slog.Debug("config loaded", "path", path, "c0", cfg.C0, "origin_cutoff", cfg.OriginCutoff)
	return cfg, nil
}

// Save writes cfg to path as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overrides cfg with DWARF_C0 and DWARF_ORIGIN_CUTOFF when set.
func ApplyEnv(cfg *Config) error {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if o.C0 != nil {
		cfg.C0 = *o.C0
		slog.Debug("config override from env", "key", "DWARF_C0", "value", cfg.C0)
	}
	if o.OriginCutoff != nil {
		cfg.OriginCutoff = *o.OriginCutoff
		slog.Debug("config override from env", "key", "DWARF_ORIGIN_CUTOFF", "value", cfg.OriginCutoff)
	}
	return nil
}

// Validate rejects parameters the structure equations cannot use.
func (c *Config) Validate() error {
	if err := c.Params().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Params converts c into the block physics.NewWhiteDwarf takes.
func (c *Config) Params() physics.Params {
	return physics.Params{C0: c.C0, OriginCutoff: c.OriginCutoff}
}

// GetInitState returns the central state as [mass, density].
func (c *Config) GetInitState() []float64 {
	return []float64{c.InitState.Mass, c.InitState.Density}
}
