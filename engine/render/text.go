package render

import (
	"fmt"

	"github.com/1siamBot/coop-invaders/engine/core"
)

// HUDText formats a top bar value
func HUDText(field HUDField, value int) string {
	switch field {
	case HUDScore:
		return fmt.Sprintf("Score %04d", value)
	case HUDLives:
		return fmt.Sprintf("Lives %d", value)
	case HUDCoins:
		return fmt.Sprintf("Coins %d", value)
	}
	return ""
}

// CountdownText returns the warm-up banner lines
func CountdownText(level, seconds int, bonusLife bool) []string {
	lines := []string{fmt.Sprintf("Level %d", level)}
	if seconds > 0 {
		lines = append(lines, fmt.Sprintf("%d", seconds))
	} else {
		lines = append(lines, "GO!")
	}
	if bonusLife {
		lines = append(lines, "+1 LIFE")
	}
	return lines
}

// GameOverText returns the game over banner and the key hints
func GameOverText(acceptsInput, newRecord bool) []string {
	lines := []string{"Game Over"}
	if newRecord {
		lines = append(lines, "New Record!")
	}
	if acceptsInput {
		lines = append(lines, "Press Space to play again, Escape to exit")
	}
	return lines
}

// ResultLines formats the score screen statistics
func ResultLines(r Results) []string {
	lines := []string{
		fmt.Sprintf("Team score %d   level %d   lives %d   coins %d", r.TeamScore, r.Level, r.LivesRemaining, r.Coins),
	}
	players := 1
	if r.Coop {
		players = core.NumPlayers
	}
	for p := 0; p < players; p++ {
		pr := r.Players[p]
		lines = append(lines, fmt.Sprintf("P%d  score %d  kills %d  shots %d  accuracy %.2f%%",
			p+1, pr.Score, pr.Kills, pr.Bullets, pr.Accuracy*100))
	}
	return lines
}

// NameInputText returns the prompt for entering a record name
func NameInputText() string {
	return "Introduce name:"
}

// HighScoreLines formats the leaderboard table
func HighScoreLines(scores []core.Score) []string {
	lines := []string{"High Scores"}
	for i, s := range scores {
		lines = append(lines, fmt.Sprintf("%d. %s %6d  L%d", i+1, s.Name(), s.Points(), s.LevelReached()))
	}
	return lines
}
