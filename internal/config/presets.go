package config

import "fmt"

// SearchPreset names a bundled search depth. Presets only touch the
// depth; parallelism and memoization stay independent knobs.
type SearchPreset string

const (
	PresetQuick  SearchPreset = "quick"  // shallow, near-instant moves
	PresetNormal SearchPreset = "normal" // the default balance
	PresetDeep   SearchPreset = "deep"   // slow, strongest play
)

// presetDepths maps each preset to its lookahead depth.
var presetDepths = map[SearchPreset]int{
	PresetQuick:  3,
	PresetNormal: 6,
	PresetDeep:   8,
}

// Presets returns the known preset names in strength order.
func Presets() []SearchPreset {
	return []SearchPreset{PresetQuick, PresetNormal, PresetDeep}
}

// ApplyPreset sets the search depth for a named preset.
func ApplyPreset(cfg *Config, preset SearchPreset) error {
	depth, ok := presetDepths[preset]
	if !ok {
		return fmt.Errorf("config: unknown preset %q", preset)
	}
	cfg.Search.Depth = depth
	return nil
}
