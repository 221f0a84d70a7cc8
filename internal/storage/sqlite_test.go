package storage

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/replay"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestRecording(t *testing.T, seed int64, frames int) replay.Recording {
	t.Helper()
	rec, err := replay.NewRecorder(seed, config.DefaultFlappyConfig())
	if err != nil {
		t.Fatalf("NewRecorder() failed: %v", err)
	}
	for i := 0; i < frames; i++ {
		in := core.JumpFrame(i%3 == 0)
		if i == 5 {
			in.Set(core.ActionPause)
		}
		rec.Record(in, 0.015+float64(i%4)*0.001)
	}
	return rec.Recording()
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndLoadReplay(t *testing.T) {
	store := openTestStore(t)
	rec := newTestRecording(t, -42, 50)

	if err := store.SaveReplay(rec); err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}

	got, err := store.Replay(rec.ID)
	if err != nil {
		t.Fatalf("Replay() failed: %v", err)
	}
	if got.ID != rec.ID || got.Seed != rec.Seed {
		t.Errorf("Replay() = %s/%d, expected %s/%d", got.ID, got.Seed, rec.ID, rec.Seed)
	}
	if got.Fingerprint != rec.Fingerprint {
		t.Errorf("Fingerprint = %x, expected %x", got.Fingerprint, rec.Fingerprint)
	}
	if string(got.ConfigYAML) != string(rec.ConfigYAML) {
		t.Error("config snapshot changed in storage")
	}
	if !reflect.DeepEqual(got.Frames, rec.Frames) {
		t.Error("frames changed in storage")
	}
	if err := got.Verify(); err != nil {
		t.Errorf("Verify() on loaded replay: %v", err)
	}
}

func TestStoreKeepsCreatedAt(t *testing.T) {
	store := openTestStore(t)
	rec := newTestRecording(t, 3, 5)
	rec.CreatedAt = time.Date(2020, 1, 2, 3, 4, 5, 678000000, time.UTC)

	if err := store.SaveReplay(rec); err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}

	got, err := store.Replay(rec.ID)
	if err != nil {
		t.Fatalf("Replay() failed: %v", err)
	}
	if !got.CreatedAt.Equal(rec.CreatedAt) {
		t.Errorf("CreatedAt = %v, expected %v", got.CreatedAt, rec.CreatedAt)
	}

	infos, err := store.RecentReplays(1)
	if err != nil {
		t.Fatalf("RecentReplays() failed: %v", err)
	}
	if len(infos) != 1 || !infos[0].CreatedAt.Equal(rec.CreatedAt) {
		t.Errorf("RecentReplays() = %+v, expected CreatedAt %v", infos, rec.CreatedAt)
	}
}

// A fingerprint with the high bit set must survive the signed INTEGER column.
func TestStoreFingerprintHighBit(t *testing.T) {
	store := openTestStore(t)
	rec := newTestRecording(t, 1, 1)
	rec.Fingerprint = 0xfedcba9876543210

	if err := store.SaveReplay(rec); err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}
	got, err := store.Replay(rec.ID)
	if err != nil {
		t.Fatalf("Replay() failed: %v", err)
	}
	if got.Fingerprint != rec.Fingerprint {
		t.Errorf("Fingerprint = %x, expected %x", got.Fingerprint, rec.Fingerprint)
	}
}

func TestStoreLoadedReplaySimulates(t *testing.T) {
	store := openTestStore(t)
	rec := newTestRecording(t, 9, 300)
	if err := store.SaveReplay(rec); err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}

	want, err := replay.Simulate(&rec)
	if err != nil {
		t.Fatalf("Simulate() on recorded replay failed: %v", err)
	}
	loaded, err := store.Replay(rec.ID)
	if err != nil {
		t.Fatalf("Replay() failed: %v", err)
	}
	got, err := replay.Simulate(loaded)
	if err != nil {
		t.Fatalf("Simulate() on loaded failed: %v", err)
	}
	if got != want {
		t.Errorf("Simulate() = %v, expected %v", got, want)
	}
}

func TestStoreReplayNotFound(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.Replay("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Replay() error = %v, expected ErrNotFound", err)
	}
}

func TestStoreDuplicateIDRejected(t *testing.T) {
	store := openTestStore(t)
	rec := newTestRecording(t, 1, 5)
	if err := store.SaveReplay(rec); err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}
	if err := store.SaveReplay(rec); err == nil {
		t.Error("expected error saving the same ID twice")
	}

	got, err := store.Replay(rec.ID)
	if err != nil {
		t.Fatalf("Replay() failed: %v", err)
	}
	if len(got.Frames) != 5 {
		t.Errorf("len(Frames) = %d, expected 5 after rejected duplicate", len(got.Frames))
	}
}

func TestStoreRecentReplays(t *testing.T) {
	store := openTestStore(t)

	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	var ids []string
	for i := 0; i < 5; i++ {
		rec := newTestRecording(t, int64(i), 10*(i+1))
		rec.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		if err := store.SaveReplay(rec); err != nil {
			t.Fatalf("SaveReplay() failed: %v", err)
		}
		ids = append(ids, rec.ID)
	}

	infos, err := store.RecentReplays(3)
	if err != nil {
		t.Fatalf("RecentReplays() failed: %v", err)
	}
	if len(infos) != 3 {
		t.Fatalf("Expected 3 replays with limit, got %d", len(infos))
	}

	// Newest first
	if infos[0].ID != ids[4] || infos[1].ID != ids[3] || infos[2].ID != ids[2] {
		t.Errorf("Replays not in expected order: %v", infos)
	}
	if infos[0].Frames != 50 {
		t.Errorf("Frames = %d, expected 50", infos[0].Frames)
	}
	if infos[0].Duration <= 0 {
		t.Errorf("Duration = %v, expected positive", infos[0].Duration)
	}
}

func TestStoreDeleteReplay(t *testing.T) {
	store := openTestStore(t)
	keep := newTestRecording(t, 1, 10)
	drop := newTestRecording(t, 2, 10)
	for _, rec := range []replay.Recording{keep, drop} {
		if err := store.SaveReplay(rec); err != nil {
			t.Fatalf("SaveReplay() failed: %v", err)
		}
	}

	if err := store.DeleteReplay(drop.ID); err != nil {
		t.Fatalf("DeleteReplay() failed: %v", err)
	}
	if _, err := store.Replay(drop.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("deleted replay still loads: %v", err)
	}
	if got, err := store.Replay(keep.ID); err != nil || len(got.Frames) != 10 {
		t.Errorf("other replay affected by delete: %v", err)
	}
	if err := store.DeleteReplay(drop.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second DeleteReplay() error = %v, expected ErrNotFound", err)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
