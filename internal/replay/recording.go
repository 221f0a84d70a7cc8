// Package replay records the inputs of a play session and plays them back.
//
// A recording holds the seed, a YAML snapshot of the configuration and one
// frame per simulated tick. The simulation is deterministic, so these are
// enough to rebuild every state the player saw.
package replay

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Errors returned when a recording cannot be played back.
var (
	ErrFingerprintMismatch = errors.New("replay: config fingerprint mismatch")
	ErrNoFrames            = errors.New("replay: recording has no frames")
)

// Frame is the input of one tick.
type Frame struct {
	DT    float64
	Jump  bool
	Pause bool
}

// Input converts the frame back into the input the game consumed.
func (f Frame) Input() core.InputFrame {
	in := core.JumpFrame(f.Jump)
	if f.Pause {
		in.Set(core.ActionPause)
	}
	return in
}

// FrameFrom captures the parts of an input frame the simulation reads.
func FrameFrom(in core.InputFrame, dt float64) Frame {
	return Frame{
		DT:    dt,
		Jump:  in.Has(core.ActionJump),
		Pause: in.Has(core.ActionPause),
	}
}

// Recording is one recorded session.
type Recording struct {
	ID          string
	Seed        int64
	ConfigYAML  []byte
	Fingerprint uint64
	CreatedAt   time.Time
	Frames      []Frame
}

// Fingerprint hashes a config document.
func Fingerprint(configYAML []byte) uint64 {
	return xxhash.Sum64(configYAML)
}

// Duration returns the simulated time covered by the recording.
func (r *Recording) Duration() time.Duration {
	var total float64
	for _, f := range r.Frames {
		total += f.DT
	}
	return time.Duration(total * float64(time.Second))
}

// Verify checks that the stored fingerprint matches the stored config.
func (r *Recording) Verify() error {
	if got := Fingerprint(r.ConfigYAML); got != r.Fingerprint {
		return fmt.Errorf("%w: stored %016x, computed %016x", ErrFingerprintMismatch, r.Fingerprint, got)
	}
	return nil
}

// Config decodes and validates the configuration the session ran with.
func (r *Recording) Config() (config.FlappyConfig, error) {
	if err := r.Verify(); err != nil {
		return config.FlappyConfig{}, err
	}
	cfg, err := config.Parse(r.ConfigYAML)
	if err != nil {
		return cfg, fmt.Errorf("replay: decode config: %w", err)
	}
	if err := config.Validate(cfg); err != nil {
		return cfg, fmt.Errorf("replay: %w", err)
	}
	return cfg, nil
}

// Recorder collects frames for a session as it is played. It is safe for
// concurrent use.
type Recorder struct {
	mu  sync.Mutex
	rec Recording
}

// NewRecorder starts a recording for a session with the given seed and
// configuration.
func NewRecorder(seed int64, cfg config.FlappyConfig) (*Recorder, error) {
	data, err := config.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	return &Recorder{
		rec: Recording{
			ID:          uuid.NewString(),
			Seed:        seed,
			ConfigYAML:  data,
			Fingerprint: Fingerprint(data),
			CreatedAt:   time.Now(),
		},
	}, nil
}

// Record appends the input of one tick.
func (r *Recorder) Record(in core.InputFrame, dt float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rec.Frames = append(r.rec.Frames, FrameFrom(in, dt))
}

// Len returns the number of recorded frames.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rec.Frames)
}

// Recording returns a copy of what has been recorded so far.
func (r *Recorder) Recording() Recording {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.rec
	out.ConfigYAML = append([]byte(nil), r.rec.ConfigYAML...)
	out.Frames = append([]Frame(nil), r.rec.Frames...)
	return out
}
