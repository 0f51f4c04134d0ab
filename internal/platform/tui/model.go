package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/auto2048/internal/core"
	"github.com/vovakirdan/auto2048/internal/game"
	"github.com/vovakirdan/auto2048/internal/registry"
	"github.com/vovakirdan/auto2048/internal/storage"
)

// Speed bounds for the watch view, in moves per second.
const (
	minSpeed = 1
	maxSpeed = 60
)

// WatchConfig assembles everything the live view needs.
type WatchConfig struct {
	// Strategy plays the session.
	Strategy registry.Strategy

	// Depth is shown in the HUD and recorded with saved results.
	Depth int

	// Game is the prepared session to watch.
	Game *game.Game

	// Store persists finished games when non-nil.
	Store *storage.Store

	// Runtime carries the screen size and the initial speed.
	Runtime core.RuntimeConfig
}

// WatchModel is the Bubble Tea model that plays one session live.
type WatchModel struct {
	game     *game.Game
	strategy registry.Strategy
	depth    int
	screen   *core.Screen
	store    *storage.Store
	config   core.RuntimeConfig
	keys     WatchKeyMap

	paused      bool
	quitting    bool
	resultSaved bool
	started     time.Time
}

// NewWatchModel creates a watch model around a prepared session.
func NewWatchModel(cfg WatchConfig) WatchModel {
	if cfg.Runtime.TickRate <= 0 {
		cfg.Runtime.TickRate = core.DefaultConfig().TickRate
	}

	return WatchModel{
		game:     cfg.Game,
		strategy: cfg.Strategy,
		depth:    cfg.Depth,
		screen:   core.NewScreen(cfg.Runtime.ScreenW, cfg.Runtime.ScreenH),
		store:    cfg.Store,
		config:   cfg.Runtime,
		keys:     DefaultWatchKeyMap(),
		started:  time.Now(),
	}
}

// Init starts the move loop.
func (m WatchModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The board does not depend on the screen, so a resize never
		// resets the session.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m WatchModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused

	case key.Matches(msg, m.keys.Step):
		if m.paused && !m.game.Over() {
			m.playTurn()
		}

	case key.Matches(msg, m.keys.Faster):
		m.config.TickRate = core.Clamp(m.config.TickRate*2, minSpeed, maxSpeed)

	case key.Matches(msg, m.keys.Slower):
		m.config.TickRate = core.Clamp(m.config.TickRate/2, minSpeed, maxSpeed)

	case key.Matches(msg, m.keys.Restart):
		m.game.Reset(time.Now().UnixNano())
		m.resultSaved = false
		m.paused = false
		m.started = time.Now()

	case key.Matches(msg, m.keys.Snapshot):
		m.saveSnapshot()
	}

	return m, nil
}

// handleTick advances the session one move. The loop keeps ticking
// while paused or finished so restarts pick up immediately.
func (m WatchModel) handleTick() (tea.Model, tea.Cmd) {
	if !m.paused && !m.game.Over() {
		m.playTurn()
	}
	return m, tickCmd(m.config.TickRate)
}

// playTurn runs one strategy move and records the result when the
// session ends.
func (m *WatchModel) playTurn() {
	m.game.PlayTurn(m.strategy)

	if m.game.Over() && !m.resultSaved {
		m.saveResult()
		m.resultSaved = true
	}
}

// saveResult records the finished session.
func (m *WatchModel) saveResult() {
	if m.store == nil || m.game.Moves() == 0 {
		return
	}

	//nolint:errcheck // Best-effort save, the view continues regardless
	m.store.SaveResult(storage.Result{
		Strategy: m.strategy.Name(),
		Depth:    m.depth,
		Seed:     m.game.Seed(),
		Target:   m.game.Target(),
		MaxTile:  m.game.MaxTile(),
		Moves:    m.game.Moves(),
		Won:      m.game.Won(),
		Duration: time.Since(m.started),
	})
}

// saveSnapshot writes the current position to ~/.auto2048/snapshots so
// it can be inspected later with the analyze command.
func (m *WatchModel) saveSnapshot() {
	dir := filepath.Join(os.Getenv("HOME"), ".auto2048", "snapshots")
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("snapshot_%s.yaml", timestamp))

	//nolint:errcheck // Best-effort save, the view continues regardless
	game.SaveSnapshot(path, m.game.Snapshot())
}

// View renders the current state to a string for display.
func (m WatchModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen, game.HUD{
		Strategy: m.strategy.Name(),
		Depth:    m.depth,
		Speed:    m.config.TickRate,
		Paused:   m.paused,
	})
	return RenderScreen(m.screen)
}

// Watch runs the live view until the user quits.
func Watch(cfg WatchConfig) error {
	p := tea.NewProgram(
		NewWatchModel(cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
