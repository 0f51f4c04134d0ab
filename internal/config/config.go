// Package config provides YAML-based configuration loading and search
// presets for the autoplayer.
package config

// Config holds every tunable of the autoplayer: which strategy drives
// the board, how deep it searches, game rules, watch-mode pacing, and
// the storage and SSH endpoints.
type Config struct {
	Strategy string        `yaml:"strategy"`
	Search   SearchConfig  `yaml:"search"`
	Game     GameConfig    `yaml:"game"`
	Watch    WatchConfig   `yaml:"watch"`
	Storage  StorageConfig `yaml:"storage"`
	SSH      SSHConfig     `yaml:"ssh"`
}

// SearchConfig defines the lookahead parameters.
type SearchConfig struct {
	Depth    int  `yaml:"depth"`    // lookahead depth in moves
	Parallel bool `yaml:"parallel"` // evaluate root subtrees concurrently
	Memo     bool `yaml:"memo"`     // memoize positions within one decision
}

// GameConfig defines the session rules.
type GameConfig struct {
	Target     int     `yaml:"target"`      // tile value that counts as a win
	Spawn4Prob float64 `yaml:"spawn4_prob"` // chance a spawned tile is a 4
}

// WatchConfig defines watch-mode pacing.
type WatchConfig struct {
	Speed int `yaml:"speed"` // autoplay speed in moves per second
}

// StorageConfig defines where results are kept.
type StorageConfig struct {
	Path string `yaml:"path"` // SQLite database path; ~ expands to the home directory
}

// SSHConfig defines the watch server endpoint.
type SSHConfig struct {
	Address     string `yaml:"address"`
	HostKeyPath string `yaml:"host_key"`
	IdleTimeout int    `yaml:"idle_timeout_minutes"`
}
