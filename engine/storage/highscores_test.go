package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/1siamBot/coop-invaders/engine/core"
)

func TestFileStoreMissingFileIsEmpty(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "nope", "scores.json"))
	scores, err := store.Load()
	if err != nil {
		t.Fatalf("Missing file should not be an error: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("Expected no scores, got %v", scores)
	}
}

func TestFileStoreKeepsBreakdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "scores.json")
	store := NewFileStore(path)

	gs := core.NewGameState(4, 3, true)
	gs.AddScore(0, 700)
	gs.AddScore(1, 300)
	gs.IncBulletsShot(1)
	gs.IncShipsDestroyed(1)
	in := []core.Score{
		core.NewScoreFromState("DUO", gs),
		core.NewScore("OLD", 250),
	}
	if err := store.Save(in); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !errors.Is(err, os.ErrNotExist) {
		t.Error("Temp file left behind")
	}

	out, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("Expected 2 scores, got %d", len(out))
	}
	duo := out[0]
	if duo.Name() != "DUO" || duo.Points() != 1000 || duo.LevelReached() != 4 || duo.LivesRemaining() != 6 {
		t.Errorf("Unexpected record %v", duo)
	}
	if !duo.HasBreakdown() || duo.PlayerScore(1) != 300 || duo.Accuracy(1) != 1 {
		t.Errorf("Breakdown lost: %v", duo)
	}
	if old := out[1]; old.HasBreakdown() || old.Points() != 250 {
		t.Errorf("Legacy record gained a breakdown: %v", old)
	}
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFileStore(path).Load(); err == nil {
		t.Error("Expected a parse error")
	}
}

func TestMemoryStore(t *testing.T) {
	m := NewMemoryStore(core.NewScore("AAA", 1))
	scores, err := m.Load()
	if err != nil || len(scores) != 1 {
		t.Fatalf("Expected seeded score, got %v %v", scores, err)
	}

	m.SaveErr = errors.New("full")
	if err := m.Save(nil); err == nil {
		t.Error("Expected injected save error")
	}
	if m.Saves() != 0 {
		t.Errorf("Failed save counted, %d", m.Saves())
	}

	m.SaveErr = nil
	if err := m.Save([]core.Score{core.NewScore("BBB", 2), core.NewScore("CCC", 3)}); err != nil {
		t.Fatal(err)
	}
	scores, _ = m.Load()
	if len(scores) != 2 || m.Saves() != 1 {
		t.Errorf("Expected 2 scores after 1 save, got %d after %d", len(scores), m.Saves())
	}
}
