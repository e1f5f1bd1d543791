package render

import (
	"strings"
	"testing"

	"github.com/1siamBot/coop-invaders/engine/core"
	"github.com/1siamBot/coop-invaders/engine/entity"
)

func TestFrameKeepsLastCompletedFrame(t *testing.T) {
	f := NewFrame()
	f.Begin()
	f.DrawHUD(HUDScore, 10)
	f.DrawEntity(entity.SpriteShip, entity.Rect{X: 1, Y: 2, W: 3, H: 4})
	f.End()

	f.Begin()
	f.DrawHUD(HUDScore, 20)
	if got := f.Commands(); len(got) != 2 || got[0].Value != 10 {
		t.Fatalf("Frame in progress leaked into Commands(): %v", got)
	}
	f.End()

	got := f.Commands()
	if len(got) != 1 || got[0].Kind != CmdHUD || got[0].Value != 20 {
		t.Errorf("Expected only the second frame, got %v", got)
	}
	if f.Count(CmdEntity) != 0 || f.Count(CmdHUD) != 1 {
		t.Errorf("Unexpected counts entity=%d hud=%d", f.Count(CmdEntity), f.Count(CmdHUD))
	}
}

func TestFrameCopiesScores(t *testing.T) {
	scores := []core.Score{core.NewScore("AAA", 1)}
	f := NewFrame()
	f.Begin()
	f.DrawHighScores(scores)
	f.End()
	scores[0] = core.NewScore("ZZZ", 9)
	if f.Commands()[0].Scores[0].Name() != "AAA" {
		t.Error("Recorded scores follow the caller's slice")
	}
}

func TestCountdownText(t *testing.T) {
	lines := CountdownText(3, 2, true)
	if len(lines) != 3 || lines[0] != "Level 3" || lines[1] != "2" || lines[2] != "+1 LIFE" {
		t.Errorf("Unexpected countdown %q", lines)
	}
	if lines := CountdownText(1, 0, false); len(lines) != 2 || lines[1] != "GO!" {
		t.Errorf("Unexpected countdown %q", lines)
	}
}

func TestResultLines(t *testing.T) {
	r := Results{TeamScore: 300, Level: 2, LivesRemaining: 4, Coins: 3}
	r.Players[0] = PlayerResult{Score: 200, Kills: 5, Bullets: 10, Accuracy: 0.5}
	r.Players[1] = PlayerResult{Score: 100}

	if lines := ResultLines(r); len(lines) != 2 {
		t.Errorf("Solo results should show one player, got %q", lines)
	}

	r.Coop = true
	lines := ResultLines(r)
	if len(lines) != 3 {
		t.Fatalf("Co-op results should show both players, got %q", lines)
	}
	if !strings.Contains(lines[1], "accuracy 50.00%") {
		t.Errorf("Accuracy not formatted: %q", lines[1])
	}
	if !strings.Contains(lines[2], "accuracy 0.00%") {
		t.Errorf("Player who never fired should show 0: %q", lines[2])
	}
}

func TestGameOverText(t *testing.T) {
	if lines := GameOverText(false, false); len(lines) != 1 {
		t.Errorf("Expected banner only, got %q", lines)
	}
	if lines := GameOverText(true, true); len(lines) != 3 || lines[1] != "New Record!" {
		t.Errorf("Expected banner, record and hints, got %q", lines)
	}
}
