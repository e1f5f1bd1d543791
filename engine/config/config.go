package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/1siamBot/coop-invaders/engine/entity"
	"github.com/1siamBot/coop-invaders/engine/round"
	"github.com/1siamBot/coop-invaders/engine/ui"
)

// Duration is a time.Duration written as a string ("6s", "750ms") in TOML
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

func dur(d time.Duration) Duration { return Duration{d} }

type Window struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	TPS    int    `toml:"tps"`
	Title  string `toml:"title"`
}

type Round struct {
	LivesEach        int      `toml:"lives_each"`
	Coop             bool     `toml:"coop"`
	WarmUp           Duration `toml:"warm_up"`
	FinishDelay      Duration `toml:"finish_delay"`
	LifeBonus        int      `toml:"life_bonus"`
	SeparatorY       int      `toml:"separator_y"`
	SpecialInterval  Duration `toml:"special_interval"`
	SpecialVariance  Duration `toml:"special_variance"`
	SpecialExplosion Duration `toml:"special_explosion"`
	ExtraLifeEvery   int      `toml:"extra_life_every"` // 0 disables bonus lives
}

type Results struct {
	InputDelay    Duration `toml:"input_delay"`
	SelectionTime Duration `toml:"selection_time"`
}

type Leaderboard struct {
	Capacity int    `toml:"capacity"`
	Path     string `toml:"path"`
}

// Level is one entry of the [[levels]] progression
type Level struct {
	Columns       int      `toml:"columns"`
	Rows          int      `toml:"rows"`
	MoveInterval  Duration `toml:"move_interval"`
	ShootInterval Duration `toml:"shoot_interval"`
	ShootVariance Duration `toml:"shoot_variance"`
}

// Settings is the whole game configuration
type Settings struct {
	Window      Window      `toml:"window"`
	Round       Round       `toml:"round"`
	Results     Results     `toml:"results"`
	Leaderboard Leaderboard `toml:"leaderboard"`
	Levels      []Level     `toml:"levels"`
}

// Default returns the stock settings
func Default() Settings {
	rc := round.DefaultConfig(640, 480)
	uc := ui.DefaultResultsConfig()
	return Settings{
		Window: Window{Width: 640, Height: 480, TPS: 60, Title: "Coop Invaders"},
		Round: Round{
			LivesEach:        3,
			Coop:             true,
			WarmUp:           dur(rc.WarmUp),
			FinishDelay:      dur(rc.FinishDelay),
			LifeBonus:        rc.LifeBonus,
			SeparatorY:       rc.SeparatorY,
			SpecialInterval:  dur(rc.SpecialInterval),
			SpecialVariance:  dur(rc.SpecialVariance),
			SpecialExplosion: dur(rc.SpecialExplosion),
			ExtraLifeEvery:   3,
		},
		Results: Results{
			InputDelay:    dur(uc.InputDelay),
			SelectionTime: dur(uc.SelectionTime),
		},
		Leaderboard: Leaderboard{Capacity: uc.Capacity, Path: "highscores.json"},
		Levels: []Level{
			{Columns: 8, Rows: 4, MoveInterval: dur(800 * time.Millisecond), ShootInterval: dur(2500 * time.Millisecond), ShootVariance: dur(1500 * time.Millisecond)},
			{Columns: 10, Rows: 5, MoveInterval: dur(600 * time.Millisecond), ShootInterval: dur(1500 * time.Millisecond), ShootVariance: dur(1000 * time.Millisecond)},
			{Columns: 12, Rows: 5, MoveInterval: dur(400 * time.Millisecond), ShootInterval: dur(1000 * time.Millisecond), ShootVariance: dur(500 * time.Millisecond)},
		},
	}
}

// Load decodes path over the defaults. A missing file yields the defaults.
func Load(path string) (Settings, error) {
	s := Default()
	if path == "" {
		return s, nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	// Decoding into a fresh slice keeps defaults from leaking into [[levels]]
	levels := s.Levels
	s.Levels = nil
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return Default(), fmt.Errorf("decode config %s: %w", path, err)
	}
	if len(s.Levels) == 0 {
		s.Levels = levels
	}
	if err := s.Validate(); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return s, nil
}

// Save writes s to path as TOML
func Save(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config: %w", err)
	}
	return write(f, s)
}

// write encodes s into w and closes it. A failed close is reported, since
// that is where a buffered write can fail.
func write(w io.WriteCloser, s Settings) (err error) {
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close config: %w", cerr)
		}
	}()
	if err := toml.NewEncoder(w).Encode(s); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

// Validate checks the values the simulation cannot run with
func (s Settings) Validate() error {
	var errs []error
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", s.Window.Width, s.Window.Height))
	}
	if s.Window.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps %d must be positive", s.Window.TPS))
	}
	if s.Round.LivesEach <= 0 {
		errs = append(errs, fmt.Errorf("lives_each %d must be positive", s.Round.LivesEach))
	}
	if s.Round.SeparatorY < 0 || s.Round.SeparatorY >= s.Window.Height {
		errs = append(errs, fmt.Errorf("separator_y %d outside the window", s.Round.SeparatorY))
	}
	if s.Round.ExtraLifeEvery < 0 {
		errs = append(errs, fmt.Errorf("extra_life_every %d must not be negative", s.Round.ExtraLifeEvery))
	}
	if s.Leaderboard.Capacity <= 0 {
		errs = append(errs, fmt.Errorf("leaderboard capacity %d must be positive", s.Leaderboard.Capacity))
	}
	if len(s.Levels) == 0 {
		errs = append(errs, errors.New("at least one level is required"))
	}
	for i, l := range s.Levels {
		if l.Columns <= 0 || l.Rows <= 0 {
			errs = append(errs, fmt.Errorf("level %d: formation %dx%d must be positive", i+1, l.Columns, l.Rows))
		}
		if l.MoveInterval.Duration <= 0 || l.ShootInterval.Duration <= 0 {
			errs = append(errs, fmt.Errorf("level %d: intervals must be positive", i+1))
		}
	}
	return errors.Join(errs...)
}

// RoundConfig builds the round settings for a 1-based level. Every
// extra_life_every-th level grants a bonus life.
func (s Settings) RoundConfig(level int) round.Config {
	c := round.DefaultConfig(s.Window.Width, s.Window.Height)
	c.SeparatorY = s.Round.SeparatorY
	c.WarmUp = s.Round.WarmUp.Duration
	c.FinishDelay = s.Round.FinishDelay.Duration
	c.SpecialInterval = s.Round.SpecialInterval.Duration
	c.SpecialVariance = s.Round.SpecialVariance.Duration
	c.SpecialExplosion = s.Round.SpecialExplosion.Duration
	c.LifeBonus = s.Round.LifeBonus
	c.BonusLife = s.Round.ExtraLifeEvery > 0 && level > 1 && (level-1)%s.Round.ExtraLifeEvery == 0
	return c
}

// Formation returns the formation for a 1-based level. Levels past the end
// of the list reuse the last entry.
func (s Settings) Formation(level int) entity.FormationSettings {
	i := min(max(level-1, 0), len(s.Levels)-1)
	l := s.Levels[i]
	return entity.FormationSettings{
		Columns:       l.Columns,
		Rows:          l.Rows,
		MoveInterval:  l.MoveInterval.Duration,
		ShootInterval: l.ShootInterval.Duration,
		ShootVariance: l.ShootVariance.Duration,
	}
}

// LastLevel reports whether level is the final entry of the progression
func (s Settings) LastLevel(level int) bool {
	return level >= len(s.Levels)
}

func (s Settings) ResultsConfig() ui.ResultsConfig {
	return ui.ResultsConfig{
		InputDelay:    s.Results.InputDelay.Duration,
		SelectionTime: s.Results.SelectionTime.Duration,
		Capacity:      s.Leaderboard.Capacity,
	}
}
