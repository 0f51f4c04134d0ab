package config

import (
	_ "embed"
)

//go:embed defaults/auto2048.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded defaults. The embedded YAML
// mirrors these values; the hardcoded form is the last-resort fallback
// and the base that partial config files are merged onto.
func DefaultConfig() Config {
	return Config{
		Strategy: "lookahead",
		Search: SearchConfig{
			Depth:    6,
			Parallel: true,
			Memo:     false,
		},
		Game: GameConfig{
			Target:     2048,
			Spawn4Prob: 0.10,
		},
		Watch: WatchConfig{
			Speed: 10,
		},
		Storage: StorageConfig{
			Path: "~/.auto2048/auto2048.db",
		},
		SSH: SSHConfig{
			Address:     ":23234",
			HostKeyPath: "~/.auto2048/host_key",
			IdleTimeout: 30,
		},
	}
}

// GetDefaultYAML returns the embedded default configuration, a
// starting point for a user config file.
func GetDefaultYAML() []byte {
	return defaultYAML
}
