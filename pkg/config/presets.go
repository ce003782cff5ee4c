package config

import "sort"

// Presets maps model name to named configurations.
var Presets = map[string]map[string]*Config{
	"white_dwarf": {
		"low_density": {
			Model: "white_dwarf", C0: 0.1, OriginCutoff: DefaultOriginCutoff,
			InitState: InitStateConfig{Mass: 0, Density: 0.1},
		},
		"solar": {
			Model: "white_dwarf", C0: 1.0, OriginCutoff: DefaultOriginCutoff,
			InitState: InitStateConfig{Mass: 0, Density: 1.0},
		},
		"dense": {
			Model: "white_dwarf", C0: 10.0, OriginCutoff: DefaultOriginCutoff,
			InitState: InitStateConfig{Mass: 0, Density: 10.0},
		},
		"ultra_dense": {
			Model: "white_dwarf", C0: 1e6, OriginCutoff: DefaultOriginCutoff,
			InitState: InitStateConfig{Mass: 0, Density: 1e6},
		},
	},
}

// GetPreset returns a copy of the named preset, or nil if it does not exist.
func GetPreset(model, preset string) *Config {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	cfg, ok := modelPresets[preset]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

// ListPresets returns the preset names for model in sorted order, or nil for an unknown model.
func ListPresets(model string) []string {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(modelPresets))
	for name := range modelPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
