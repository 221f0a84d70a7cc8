package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/replay"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

const maxReplays = 100 // Rows loaded into the browser

// ReplayStore is the part of the journal the browser needs.
type ReplayStore interface {
	RecentReplays(limit int) ([]storage.ReplayInfo, error)
	Replay(id string) (*replay.Recording, error)
	DeleteReplay(id string) error
}

// ReplayBrowserModel lists recorded sessions and plays them back.
type ReplayBrowserModel struct {
	store    ReplayStore
	infos    []storage.ReplayInfo
	table    table.Model
	help     help.Model
	keys     ReplayKeyMap
	width    int
	height   int
	status   string
	playback *PlaybackModel
	quitting bool
}

// NewReplayBrowserModel creates the browser and loads the newest replays.
func NewReplayBrowserModel(store ReplayStore, width, height int) ReplayBrowserModel {
	h := help.New()
	h.ShowAll = false

	m := ReplayBrowserModel{
		store:  store,
		keys:   DefaultReplayKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.loadReplays()
	return m
}

// createTable creates a new table sized to the terminal.
func (m *ReplayBrowserModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 10},
		{Title: "Seed", Width: 20},
		{Title: "Frames", Width: 8},
		{Title: "Length", Width: 9},
		{Title: "Date", Width: 14},
	}

	height := m.height - 8 // Title, help and margins
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadReplays refreshes the table from the store.
func (m *ReplayBrowserModel) loadReplays() {
	infos, err := m.store.RecentReplays(maxReplays)
	if err != nil {
		m.status = err.Error()
		infos = nil
	}
	m.infos = infos
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded replays.
func (m *ReplayBrowserModel) updateTableRows() {
	rows := make([]table.Row, len(m.infos))
	for i, info := range m.infos {
		rows[i] = table.Row{
			shortID(info.ID),
			fmt.Sprintf("%d", info.Seed),
			fmt.Sprintf("%d", info.Frames),
			info.Duration.Round(time.Second).String(),
			info.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// selected returns the replay under the cursor.
func (m ReplayBrowserModel) selected() (storage.ReplayInfo, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.infos) {
		return storage.ReplayInfo{}, false
	}
	return m.infos[i], true
}

// Init initializes the browser.
func (m ReplayBrowserModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser and an active playback.
func (m ReplayBrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
		m.help.Width = wsm.Width
		m.table = m.createTable()
		m.updateTableRows()
	}

	if m.playback != nil {
		return m.updatePlayback(msg)
	}

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Back):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Play):
			return m.startPlayback()

		case key.Matches(msg, m.keys.Delete):
			if info, ok := m.selected(); ok {
				if err := m.store.DeleteReplay(info.ID); err != nil {
					m.status = err.Error()
				} else {
					m.status = "deleted " + shortID(info.ID)
				}
				m.loadReplays()
			}
			return m, nil
		}
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// startPlayback loads the selected replay and switches to playback.
func (m ReplayBrowserModel) startPlayback() (tea.Model, tea.Cmd) {
	info, ok := m.selected()
	if !ok {
		return m, nil
	}
	rec, err := m.store.Replay(info.ID)
	if err != nil {
		m.status = err.Error()
		return m, nil
	}
	pb, err := NewPlaybackModel(rec, m.width, m.height)
	if err != nil {
		if errors.Is(err, replay.ErrFingerprintMismatch) {
			m.status = "replay is corrupt: " + err.Error()
		} else {
			m.status = err.Error()
		}
		return m, nil
	}
	m.status = ""
	m.playback = &pb
	return m, pb.Init()
}

// updatePlayback forwards messages to the playback until it ends.
func (m ReplayBrowserModel) updatePlayback(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.playback.Update(msg)
	pb := next.(PlaybackModel)

	switch {
	case pb.quitting:
		m.quitting = true
		return m, tea.Quit
	case pb.back:
		m.status = "last playback: " + pb.player.Summary().String()
		m.playback = nil
		return m, nil
	}
	m.playback = &pb
	return m, cmd
}

// View renders the browser or the active playback.
func (m ReplayBrowserModel) View() string {
	if m.quitting {
		return ""
	}
	if m.playback != nil {
		return m.playback.View()
	}

	var b strings.Builder
	b.WriteString(titleStyle.MarginBottom(1).Render(centerText("REPLAYS", m.width)))
	b.WriteString("\n\n")

	if len(m.infos) == 0 {
		b.WriteString(centerText("No replays recorded yet. Play with `flappy term` first.", m.width))
		b.WriteString("\n")
	} else {
		box := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
		b.WriteString(box.Render(m.table.View()))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString(errorStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// PlaybackModel replays a recording in the terminal, one frame per tick.
type PlaybackModel struct {
	player   *replay.Player
	screen   *core.Screen
	tickRate int
	keys     ReplayKeyMap
	back     bool
	quitting bool
}

// NewPlaybackModel prepares playback of rec on a width x height terminal.
func NewPlaybackModel(rec *replay.Recording, width, height int) (PlaybackModel, error) {
	p, err := replay.NewPlayer(rec)
	if err != nil {
		return PlaybackModel{}, err
	}
	return PlaybackModel{
		player:   p,
		screen:   core.NewScreen(width, playHeight(height)),
		tickRate: p.Game().Config().Screen.TargetFPS,
		keys:     DefaultReplayKeyMap(),
	}, nil
}

// Init starts the playback ticks.
func (m PlaybackModel) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update advances playback on ticks and handles back/quit keys.
func (m PlaybackModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
		case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Play):
			m.back = true
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, playHeight(msg.Height))
		return m, nil

	case TickMsg:
		if _, ok := m.player.Next(); !ok {
			return m, nil
		}
		return m, tickCmd(m.tickRate)
	}
	return m, nil
}

// View renders the replayed game with a progress line.
func (m PlaybackModel) View() string {
	flappy.RenderSnapshot(m.screen, m.player.Game().Snapshot())

	done, total := m.player.Progress()
	status := fmt.Sprintf("replay %d/%d  resets %d  best %d", done, total,
		m.player.Summary().Resets, m.player.Summary().Best)
	if m.player.Done() {
		status += "  (finished, esc to go back)"
	}
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(status)
}

// RunReplayBrowser starts the Bubble Tea program for the replay browser.
func RunReplayBrowser(store ReplayStore, width, height int) error {
	p := tea.NewProgram(NewReplayBrowserModel(store, width, height), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
