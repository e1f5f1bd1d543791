package ui

import (
	"github.com/1siamBot/coop-invaders/engine/core"
	"github.com/1siamBot/coop-invaders/engine/input"
)

// TitleScreen waits for the players to start a game and shows the high scores
type TitleScreen struct {
	Deps
	Coop bool

	scores     []core.Score
	inputDelay *core.Cooldown
	selection  *core.Cooldown
	done       bool
	returnCode int
}

// NewTitleScreen loads the board for display; a failed load shows an empty one
func NewTitleScreen(store LeaderboardStore, coop bool, deps Deps, cfg ResultsConfig) *TitleScreen {
	deps.defaults()
	t := &TitleScreen{
		Deps:       deps,
		Coop:       coop,
		inputDelay: core.NewCooldown(deps.Clock, cfg.InputDelay),
		selection:  core.NewCooldown(deps.Clock, cfg.SelectionTime),
		returnCode: core.ResultExit,
	}
	if store != nil {
		scores, err := store.Load()
		if err != nil {
			t.Logger.Printf("Couldn't load high scores: %v", err)
		}
		t.scores = core.NewLeaderboard(cfg.Capacity, scores).Entries()
	}
	t.inputDelay.Reset()
	return t
}

// Tick draws the title and handles one frame of input
func (t *TitleScreen) Tick() {
	if t.done {
		return
	}
	t.draw()
	if !t.inputDelay.Finished() {
		return
	}
	switch {
	case t.Input.IsKeyDown(input.KeyConfirm):
		t.done = true
		t.returnCode = core.ResultPlayAgain
	case t.Input.IsKeyDown(input.KeyBack):
		t.done = true
		t.returnCode = core.ResultExit
	case t.selection.Finished() && (t.Input.IsKeyDown(input.KeyUp) || t.Input.IsKeyDown(input.KeyDown)):
		t.Coop = !t.Coop
		t.selection.Reset()
	}
}

func (t *TitleScreen) draw() {
	if t.Sink == nil {
		return
	}
	mode := "1 player"
	if t.Coop {
		mode = "2 players co-op"
	}
	t.Sink.Begin()
	t.Sink.DrawText("C O O P   I N V A D E R S", 60)
	t.Sink.DrawText("Mode: "+mode+"  (Up/Down to change)", 100)
	if t.inputDelay.Finished() {
		t.Sink.DrawText("Press Space to start, Escape to quit", 130)
	}
	t.Sink.DrawHighScores(t.scores)
	t.Sink.End()
}

func (t *TitleScreen) Done() bool { return t.done }

// Result is ResultPlayAgain to start a game or ResultExit to quit
func (t *TitleScreen) Result() int { return t.returnCode }
