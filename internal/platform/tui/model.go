package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/replay"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// Options configures a terminal play session.
type Options struct {
	Config config.FlappyConfig
	Seed   int64 // 0 picks a time-based seed
	Width  int   // Terminal columns
	Height int   // Terminal rows
	Store  *storage.Store
	Logger *log.Logger
}

// Model is the Bubble Tea model for one play session.
type Model struct {
	game       *flappy.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	runtime    core.RuntimeConfig
	keys       GameKeyMap
	help       help.Model
	clock      core.FrameClock
	recorder   *replay.Recorder
	saveOnce   *sync.Once
	inputFrame core.InputFrame
	gameState  core.GameState
	status     string
	quitting   bool
}

// NewModel creates a play session and resets the game.
func NewModel(opts Options) Model {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	rc := core.RuntimeConfig{
		ScreenW:  opts.Width,
		ScreenH:  opts.Height,
		TickRate: opts.Config.Screen.TargetFPS,
		Seed:     seed,
	}

	game := flappy.New(opts.Config)
	game.Reset(rc)

	var rec *replay.Recorder
	if opts.Store != nil {
		r, err := replay.NewRecorder(seed, opts.Config)
		if err != nil {
			logger.Warn("replay recording disabled", "error", err)
		} else {
			rec = r
		}
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(opts.Width, playHeight(opts.Height)),
		store:      opts.Store,
		logger:     logger,
		runtime:    rc,
		keys:       DefaultGameKeyMap(),
		help:       help.New(),
		clock:      core.NewFrameClock(rc.TickRate, opts.Config.Display.MaxFrameTime),
		recorder:   rec,
		saveOnce:   new(sync.Once),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}
}

// playHeight leaves one row for the help bar.
func playHeight(rows int) int {
	if rows > 1 {
		return rows - 1
	}
	return rows
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, playHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.status = m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) == core.ActionQuit {
		m.quitting = true
		m.Finish()
		return m, tea.Quit
	}
	return m, nil
}

// handleTick runs one simulation step with the input gathered since the
// previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.clock.Advance(now)

	// Frames spent paused without a toggle change nothing and are not kept.
	if m.recorder != nil && (!m.gameState.Paused || m.inputFrame.Has(core.ActionPause)) {
		m.recorder.Record(m.inputFrame, dt)
	}

	result := m.game.Step(m.inputFrame, dt)
	m.gameState = result.State
	if result.Reset {
		m.logger.Debug("collision reset", "resets", result.State.Resets, "best", result.State.Best)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.runtime.TickRate)
}

// Finish writes the session to the replay journal unless it was already
// written. Every copy of a model shares the same session, so any of them
// may be used, from any goroutine. Failures are logged.
func (m Model) Finish() {
	if m.saveOnce == nil {
		return
	}
	m.saveOnce.Do(m.saveReplay)
}

func (m Model) saveReplay() {
	if m.store == nil || m.recorder == nil || m.recorder.Len() == 0 {
		return
	}
	rec := m.recorder.Recording()
	if err := m.store.SaveReplay(rec); err != nil {
		m.logger.Error("could not save replay", "error", err)
		return
	}
	m.logger.Info("replay saved", "id", rec.ID, "frames", len(rec.Frames))
}

// saveScreenshot saves the current screen to a file and returns a status line.
func (m *Model) saveScreenshot() string {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "screenshot failed: " + err.Error()
	}
	dir := filepath.Join(home, ".flappy", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "screenshot failed: " + err.Error()
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "screenshot failed: " + err.Error()
	}
	return "saved " + path
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	flappy.RenderSnapshot(m.screen, m.game.Snapshot())

	footer := m.help.View(m.keys)
	if m.status != "" {
		footer = m.status
	}
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(footer)
}

// Run starts the Bubble Tea program for a terminal play session.
func Run(opts Options) error {
	m := NewModel(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	m.Finish()
	return err
}
