package render

import (
	"slices"

	"github.com/1siamBot/coop-invaders/engine/core"
	"github.com/1siamBot/coop-invaders/engine/entity"
)

// CommandKind tags a recorded draw call
type CommandKind uint8

const (
	CmdEntity CommandKind = iota
	CmdHUD
	CmdLine
	CmdCountdown
	CmdGameOver
	CmdResults
	CmdNameInput
	CmdHighScores
	CmdText
)

// Command is one recorded draw call. Only the fields of its kind are set.
type Command struct {
	Kind CommandKind

	Sprite entity.SpriteType
	Rect   entity.Rect

	Field HUDField
	Value int

	Y         int
	Level     int
	Seconds   int
	Flag      bool // bonus life / accepts input
	NewRecord bool
	Text      string
	Selected  int
	Results   Results
	Scores    []core.Score
}

// Frame records draw calls so simulation and presentation can run at
// different times. Update fills it, Draw replays it.
type Frame struct {
	building []Command
	done     []Command
}

func NewFrame() *Frame {
	return &Frame{}
}

func (f *Frame) Begin() {
	f.building = f.building[:0]
}

func (f *Frame) End() {
	f.done = append(f.done[:0], f.building...)
}

// Commands returns the last completed frame
func (f *Frame) Commands() []Command {
	return f.done
}

func (f *Frame) add(c Command) {
	f.building = append(f.building, c)
}

func (f *Frame) DrawEntity(sprite entity.SpriteType, r entity.Rect) {
	f.add(Command{Kind: CmdEntity, Sprite: sprite, Rect: r})
}

func (f *Frame) DrawHUD(field HUDField, value int) {
	f.add(Command{Kind: CmdHUD, Field: field, Value: value})
}

func (f *Frame) DrawHorizontalLine(y int) {
	f.add(Command{Kind: CmdLine, Y: y})
}

func (f *Frame) DrawCountdown(level, seconds int, bonusLife bool) {
	f.add(Command{Kind: CmdCountdown, Level: level, Seconds: seconds, Flag: bonusLife})
}

func (f *Frame) DrawGameOver(acceptsInput, newRecord bool) {
	f.add(Command{Kind: CmdGameOver, Flag: acceptsInput, NewRecord: newRecord})
}

func (f *Frame) DrawResults(r Results) {
	f.add(Command{Kind: CmdResults, Results: r})
}

func (f *Frame) DrawNameInput(name string, selected int) {
	f.add(Command{Kind: CmdNameInput, Text: name, Selected: selected})
}

func (f *Frame) DrawHighScores(scores []core.Score) {
	f.add(Command{Kind: CmdHighScores, Scores: slices.Clone(scores)})
}

func (f *Frame) DrawText(line string, y int) {
	f.add(Command{Kind: CmdText, Text: line, Y: y})
}

// Count returns how many commands of kind the last frame holds
func (f *Frame) Count(kind CommandKind) int {
	n := 0
	for _, c := range f.done {
		if c.Kind == kind {
			n++
		}
	}
	return n
}
