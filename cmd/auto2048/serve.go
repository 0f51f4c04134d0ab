package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/auto2048/internal/game"
	"github.com/vovakirdan/auto2048/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the watch SSH server",
	Long: `Start an SSH server that lets anyone watch the autoplayer over SSH.

Each SSH connection gets its own freshly seeded game driven by the
configured strategy. Finished games land in the shared results database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.auto2048/host_key

Examples:
  auto2048 serve                           # Listen on :23234 with auto-generated key
  auto2048 serve --ssh :2222               # Listen on port 2222
  auto2048 serve --strategy greedy         # Sessions play the greedy strategy
  auto2048 serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagStrategy, "strategy", "", "Strategy sessions play with (default from config)")
	serveCmd.Flags().IntVar(&flagDepth, "depth", 0, "Search depth in plies (default from config)")
	serveCmd.Flags().StringVar(&flagPreset, "preset", "", "Search preset: quick, normal, deep")
	serveCmd.Flags().IntVar(&flagSpeed, "speed", 0, "Autoplay speed in moves per second")
	serveCmd.Flags().IntVar(&flagTarget, "target", 0, "Tile value that counts as a win")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagSSHAddr != "" {
		cfg.SSH.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.SSH.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.SSH.IdleTimeout = flagIdleTimeout
	}

	srvCfg := tui.SSHServerConfig{
		Address:     cfg.SSH.Address,
		HostKeyPath: cfg.SSH.HostKeyPath,
		DBPath:      cfg.Storage.Path,
		IdleTimeout: time.Duration(cfg.SSH.IdleTimeout) * time.Minute,
		Strategy:    cfg.Strategy,
		Search:      searchOptions(cfg, flagSeed),
		Game: game.Options{
			Target:     cfg.Game.Target,
			Spawn4Prob: cfg.Game.Spawn4Prob,
		},
		Speed: cfg.Watch.Speed,
	}

	server, err := tui.NewSSHServer(srvCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting auto2048 SSH server on %s\n", srvCfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
