package config

import "sort"

// Presets are named control-parameter regimes. All sit in or near the
// map's chaotic band; "edge" is close enough to the onset that key
// diversity is noticeably worse, which makes it useful for demos.
var Presets = map[string]*Config{
	"classic": {
		Seed: 0.3, R: 3.99,
	},
	"deep": {
		Seed: 0.613, R: 4.0,
	},
	"edge": {
		Seed: 0.5, R: 3.6,
	},
}

// GetPreset returns a copy of the named preset, or nil if unknown.
// Output paths fall back to the defaults.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Seed = p.Seed
	cfg.R = p.R
	return cfg
}

// ListPresets returns the available preset names.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
