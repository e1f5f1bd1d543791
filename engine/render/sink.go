package render

import (
	"github.com/1siamBot/coop-invaders/engine/core"
	"github.com/1siamBot/coop-invaders/engine/entity"
)

// HUDField identifies a value shown in the top bar
type HUDField uint8

const (
	HUDScore HUDField = iota
	HUDLives
	HUDCoins
)

// PlayerResult is one player's line on the score screen
type PlayerResult struct {
	Score    int
	Kills    int
	Bullets  int
	Accuracy float64 // 0 when the player never fired
}

// Results is what the score screen shows for a finished game
type Results struct {
	TeamScore      int
	LivesRemaining int
	Level          int
	Coins          int
	Coop           bool
	Players        [core.NumPlayers]PlayerResult
}

// DrawSink receives the draw calls of one frame. Calls between Begin and End
// make up a frame; nothing is returned to the caller.
type DrawSink interface {
	entity.Drawer
	Begin()
	DrawHUD(field HUDField, value int)
	DrawHorizontalLine(y int)
	DrawCountdown(level, seconds int, bonusLife bool)
	DrawGameOver(acceptsInput, newRecord bool)
	DrawResults(r Results)
	DrawNameInput(name string, selected int)
	DrawHighScores(scores []core.Score)
	DrawText(line string, y int)
	End()
}
