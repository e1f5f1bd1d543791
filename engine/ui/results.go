package ui

import (
	"log"
	"time"

	"github.com/1siamBot/coop-invaders/engine/core"
	"github.com/1siamBot/coop-invaders/engine/input"
	"github.com/1siamBot/coop-invaders/engine/render"
)

// LeaderboardStore persists the high score list
type LeaderboardStore interface {
	Load() ([]core.Score, error)
	Save(scores []core.Score) error
}

// ResultsConfig holds the score screen timings
type ResultsConfig struct {
	InputDelay    time.Duration // keys ignored this long after the screen opens
	SelectionTime time.Duration // between two name edits
	Capacity      int           // leaderboard size
}

// DefaultResultsConfig returns the stock score screen timings
func DefaultResultsConfig() ResultsConfig {
	return ResultsConfig{
		InputDelay:    time.Second,
		SelectionTime: 200 * time.Millisecond,
		Capacity:      core.DefaultLeaderboardCapacity,
	}
}

// Deps are a screen's collaborators. Bus and Logger are optional.
type Deps struct {
	Input  input.KeyOracle
	Sink   render.DrawSink
	Clock  core.Clock
	Bus    *core.EventBus
	Logger *log.Logger
}

func (d *Deps) defaults() {
	if d.Clock == nil {
		d.Clock = core.SystemClock{}
	}
	if d.Logger == nil {
		d.Logger = log.Default()
	}
}

// ResultsScreen shows the outcome of a game and, for a new record, lets the
// players enter a name before the score goes on the leaderboard
type ResultsScreen struct {
	Deps
	state       *core.GameState
	store       LeaderboardStore
	leaderboard *core.Leaderboard
	results     render.Results

	isNewRecord bool
	name        *NameEditor
	inputDelay  *core.Cooldown
	selection   *core.Cooldown

	done       bool
	saved      bool
	returnCode int
}

// NewResultsScreen snapshots state and loads the leaderboard. A failed load
// counts as an empty board.
func NewResultsScreen(state *core.GameState, store LeaderboardStore, deps Deps, cfg ResultsConfig) *ResultsScreen {
	deps.defaults()
	s := &ResultsScreen{
		Deps:       deps,
		state:      state,
		store:      store,
		name:       NewNameEditor(),
		inputDelay: core.NewCooldown(deps.Clock, cfg.InputDelay),
		selection:  core.NewCooldown(deps.Clock, cfg.SelectionTime),
		returnCode: core.ResultMenu,
	}
	s.results = snapshotResults(state)

	scores, err := store.Load()
	if err != nil {
		s.Logger.Printf("Couldn't load high scores: %v", err)
		scores = nil
	}
	s.leaderboard = core.NewLeaderboard(cfg.Capacity, scores)
	s.isNewRecord = s.leaderboard.IsNewRecord(state.Score())

	s.inputDelay.Reset()
	s.selection.Reset()
	return s
}

func snapshotResults(gs *core.GameState) render.Results {
	snap := core.NewScoreFromState("", gs)
	r := render.Results{
		TeamScore:      gs.Score(),
		LivesRemaining: gs.LivesRemaining(),
		Level:          gs.Level(),
		Coins:          gs.Coins(),
		Coop:           gs.IsCoop(),
	}
	for p := 0; p < core.NumPlayers; p++ {
		r.Players[p] = render.PlayerResult{
			Score:    snap.PlayerScore(p),
			Kills:    snap.PlayerKills(p),
			Bullets:  snap.PlayerBullets(p),
			Accuracy: snap.Accuracy(p),
		}
	}
	return r
}

// Tick draws the screen and handles one frame of input
func (s *ResultsScreen) Tick() {
	if s.done {
		return
	}
	s.draw()
	if !s.inputDelay.Finished() {
		return
	}

	switch {
	case s.Input.IsKeyDown(input.KeyBack):
		s.finish(core.ResultMenu)
		return
	case s.Input.IsKeyDown(input.KeyConfirm):
		s.finish(core.ResultPlayAgain)
		return
	}

	if !s.isNewRecord || !s.selection.Finished() {
		return
	}
	if s.Input.IsKeyDown(input.KeyRight) {
		s.name.Next()
		s.selection.Reset()
	}
	if s.Input.IsKeyDown(input.KeyLeft) {
		s.name.Prev()
		s.selection.Reset()
	}
	if s.Input.IsKeyDown(input.KeyUp) {
		s.name.Up()
		s.selection.Reset()
	}
	if s.Input.IsKeyDown(input.KeyDown) {
		s.name.Down()
		s.selection.Reset()
	}
}

func (s *ResultsScreen) finish(code int) {
	s.returnCode = code
	s.done = true
	if s.isNewRecord {
		s.saveScore()
	}
}

// saveScore puts the game on the board and persists it. A failed save is
// logged and the in-memory board is kept.
func (s *ResultsScreen) saveScore() {
	s.leaderboard.Insert(core.NewScoreFromState(s.name.Name(), s.state))
	if err := s.store.Save(s.leaderboard.Entries()); err != nil {
		s.Logger.Printf("Couldn't save high scores: %v", err)
		return
	}
	s.saved = true
	s.Bus.Emit(core.Event{Type: core.EvtRecordSaved, Player: -1, Points: s.state.Score()})
}

func (s *ResultsScreen) draw() {
	if s.Sink == nil {
		return
	}
	s.Sink.Begin()
	s.Sink.DrawGameOver(s.inputDelay.Finished(), s.isNewRecord)
	s.Sink.DrawResults(s.results)
	if s.isNewRecord {
		s.Sink.DrawNameInput(s.name.Name(), s.name.Selected())
	}
	s.Sink.End()
}

func (s *ResultsScreen) Done() bool { return s.done }

// Result is ResultMenu or ResultPlayAgain once the screen is done
func (s *ResultsScreen) Result() int { return s.returnCode }

func (s *ResultsScreen) IsNewRecord() bool { return s.isNewRecord }

// Saved reports whether the record made it to the store
func (s *ResultsScreen) Saved() bool { return s.saved }

func (s *ResultsScreen) Name() string { return s.name.Name() }

func (s *ResultsScreen) Leaderboard() *core.Leaderboard { return s.leaderboard }

func (s *ResultsScreen) Results() render.Results { return s.results }
