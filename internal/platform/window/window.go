// Package window runs the game in a desktop window through Ebitengine.
package window

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/replay"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	backgroundColor = color.White
	hudColor        = color.RGBA{R: 30, G: 30, B: 30, A: 255}
	overlayColor    = color.RGBA{A: 160}
)

// Options configures a windowed play session.
type Options struct {
	Config config.FlappyConfig
	Seed   int64 // 0 picks a time-based seed
	Store  *storage.Store
	Logger *log.Logger
}

// Window implements ebiten.Game for one play session.
type Window struct {
	cfg      config.FlappyConfig
	game     *flappy.Game
	tex      textures
	face     *text.GoTextFaceSource
	clock    core.FrameClock
	recorder *replay.Recorder
	store    *storage.Store
	logger   *log.Logger
	paused   bool
}

// New loads textures and the font and prepares a fresh game.
func New(opts Options) (*Window, error) {
	tex, err := loadTextures()
	if err != nil {
		return nil, err
	}
	face, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.PressStart2P_ttf))
	if err != nil {
		return nil, fmt.Errorf("window: font: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game := flappy.New(opts.Config)
	game.Reset(core.RuntimeConfig{
		ScreenW:  int(opts.Config.Screen.Width),
		ScreenH:  int(opts.Config.Screen.Height),
		TickRate: opts.Config.Screen.TargetFPS,
		Seed:     seed,
	})

	w := &Window{
		cfg:    opts.Config,
		game:   game,
		tex:    tex,
		face:   face,
		clock:  core.NewFrameClock(opts.Config.Screen.TargetFPS, opts.Config.Display.MaxFrameTime),
		store:  opts.Store,
		logger: logger,
	}
	if opts.Store != nil {
		rec, err := replay.NewRecorder(seed, opts.Config)
		if err != nil {
			logger.Warn("replay recording disabled", "error", err)
		} else {
			w.recorder = rec
		}
	}
	return w, nil
}

// readInput collects this frame's actions from the keyboard.
func readInput() core.InputFrame {
	in := core.NewInputFrame()
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		in.Set(core.ActionJump)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		in.Set(core.ActionPause)
	}
	return in
}

// Update advances the simulation by the time elapsed since the last frame.
func (w *Window) Update() error {
	if ebiten.IsWindowBeingClosed() {
		w.saveReplay()
		return ebiten.Termination
	}

	dt := w.clock.Advance(time.Now())
	in := readInput()

	if w.recorder != nil && (!w.paused || in.Has(core.ActionPause)) {
		w.recorder.Record(in, dt)
	}
	res := w.game.Step(in, dt)
	w.paused = res.State.Paused
	if res.Reset {
		w.logger.Debug("collision reset", "resets", res.State.Resets, "best", res.State.Best)
	}
	return nil
}

// saveReplay writes the session to the journal; failures are only logged.
func (w *Window) saveReplay() {
	if w.store == nil || w.recorder == nil || w.recorder.Len() == 0 {
		return
	}
	rec := w.recorder.Recording()
	if err := w.store.SaveReplay(rec); err != nil {
		w.logger.Error("could not save replay", "error", err)
		return
	}
	w.logger.Info("replay saved", "id", rec.ID, "frames", len(rec.Frames))
}

// Draw renders the current snapshot.
func (w *Window) Draw(screen *ebiten.Image) {
	snap := w.game.Snapshot()
	screen.Fill(backgroundColor)

	for _, p := range snap.Pipes {
		drawStretched(screen, w.tex.pipe, p.Top)
		drawStretched(screen, w.tex.pipe, p.Bottom)
	}
	drawTiled(screen, w.tex.ground, snap.Ground)
	drawStretched(screen, w.tex.bird, snap.Body)

	w.drawText(screen, fmt.Sprintf("%d", snap.Score), 40, snap.Width/2, 60)
	w.drawText(screen, fmt.Sprintf("BEST %d", snap.Best), 16, snap.Width/2, 110)

	if snap.Paused {
		vector.DrawFilledRect(screen, 0, 0, float32(snap.Width), float32(snap.Height), overlayColor, false)
		w.drawText(screen, "PAUSED", 32, snap.Width/2, snap.Height/2)
		w.drawText(screen, "Press P to resume", 14, snap.Width/2, snap.Height/2+50)
	}
}

// drawText draws centred text at (x, y).
func (w *Window) drawText(screen *ebiten.Image, msg string, size, x, y float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(hudColor)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(screen, msg, &text.GoTextFace{
		Source: w.face,
		Size:   size,
	}, op)
}

// Layout keeps the logical screen at the playfield size.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(w.cfg.Screen.Width), int(w.cfg.Screen.Height)
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	w, err := New(opts)
	if err != nil {
		return err
	}

	sw, sh := int(opts.Config.Screen.Width), int(opts.Config.Screen.Height)
	ebiten.SetWindowSize(sw, sh)
	ebiten.SetWindowSizeLimits(sw, sh, sw, sh)
	ebiten.SetWindowTitle(opts.Config.Screen.Title)
	ebiten.SetTPS(opts.Config.Screen.TargetFPS)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
