package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/1siamBot/coop-invaders/engine/core"
)

// scoreRecord is the on-disk form of a leaderboard entry
type scoreRecord struct {
	Name           string `json:"name"`
	Points         int    `json:"points"`
	LevelReached   int    `json:"level,omitempty"`
	LivesRemaining int    `json:"lives,omitempty"`
	PlayerScores   []int  `json:"player_scores,omitempty"`
	PlayerBullets  []int  `json:"player_bullets,omitempty"`
	PlayerKills    []int  `json:"player_kills,omitempty"`
}

type highScoreFile struct {
	Version int           `json:"version"`
	Scores  []scoreRecord `json:"scores"`
}

const fileVersion = 1

func toRecord(s core.Score) scoreRecord {
	r := scoreRecord{
		Name:           s.Name(),
		Points:         s.Points(),
		LevelReached:   s.LevelReached(),
		LivesRemaining: s.LivesRemaining(),
	}
	if s.HasBreakdown() {
		for p := 0; p < core.NumPlayers; p++ {
			r.PlayerScores = append(r.PlayerScores, s.PlayerScore(p))
			r.PlayerBullets = append(r.PlayerBullets, s.PlayerBullets(p))
			r.PlayerKills = append(r.PlayerKills, s.PlayerKills(p))
		}
	}
	return r
}

func (r scoreRecord) score() core.Score {
	return core.NewScoreRecord(r.Name, r.Points, r.LevelReached, r.LivesRemaining,
		r.PlayerScores, r.PlayerBullets, r.PlayerKills)
}

// FileStore keeps the high score list in a JSON file
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Load reads the list. A missing file is an empty list, not an error.
func (s *FileStore) Load() ([]core.Score, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read high scores: %w", err)
	}
	var f highScoreFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse high scores %s: %w", s.Path, err)
	}
	scores := make([]core.Score, 0, len(f.Scores))
	for _, r := range f.Scores {
		scores = append(scores, r.score())
	}
	return scores, nil
}

// Save replaces the file through a temp file and a rename
func (s *FileStore) Save(scores []core.Score) error {
	if dir := filepath.Dir(s.Path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create high score dir: %w", err)
		}
	}
	f := highScoreFile{Version: fileVersion, Scores: make([]scoreRecord, 0, len(scores))}
	for _, sc := range scores {
		f.Scores = append(f.Scores, toRecord(sc))
	}
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("encode high scores: %w", err)
	}
	tmp := s.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write high scores: %w", err)
	}
	if err := os.Rename(tmp, s.Path); err != nil {
		return fmt.Errorf("replace high scores: %w", err)
	}
	return nil
}

// MemoryStore is an in-process store. LoadErr and SaveErr, when set, are
// returned instead of touching the list.
type MemoryStore struct {
	mu      sync.Mutex
	scores  []core.Score
	saves   int
	LoadErr error
	SaveErr error
}

func NewMemoryStore(scores ...core.Score) *MemoryStore {
	return &MemoryStore{scores: scores}
}

func (m *MemoryStore) Load() ([]core.Score, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return append([]core.Score(nil), m.scores...), nil
}

func (m *MemoryStore) Save(scores []core.Score) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.scores = append([]core.Score(nil), scores...)
	m.saves++
	return nil
}

// Saves counts successful saves
func (m *MemoryStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
