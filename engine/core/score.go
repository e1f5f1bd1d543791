package core

import (
	"cmp"
	"fmt"
	"slices"
)

// NameLength is the number of letters in a high score name
const NameLength = 3

// Score is an immutable high score record
type Score struct {
	name           string
	points         int
	levelReached   int
	livesRemaining int

	// per-player breakdown, nil for legacy records
	playerScores  []int
	playerBullets []int
	playerKills   []int
}

// NewScore creates a legacy record without a per-player breakdown
func NewScore(name string, points int) Score {
	return Score{name: name, points: points}
}

// NewScoreFromState snapshots a finished game
func NewScoreFromState(name string, gs *GameState) Score {
	s := Score{
		name:           name,
		points:         gs.Score(),
		levelReached:   gs.Level(),
		livesRemaining: gs.LivesRemaining(),
		playerScores:   make([]int, NumPlayers),
		playerBullets:  make([]int, NumPlayers),
		playerKills:    make([]int, NumPlayers),
	}
	for p := 0; p < NumPlayers; p++ {
		s.playerScores[p] = gs.PlayerScore(p)
		s.playerBullets[p] = gs.PlayerBulletsShot(p)
		s.playerKills[p] = gs.PlayerShipsDestroyed(p)
	}
	return s
}

// NewScoreRecord rebuilds a stored record. Nil slices mark a legacy record.
func NewScoreRecord(name string, points, level, lives int, scores, bullets, kills []int) Score {
	return Score{
		name:           name,
		points:         points,
		levelReached:   level,
		livesRemaining: lives,
		playerScores:   slices.Clone(scores),
		playerBullets:  slices.Clone(bullets),
		playerKills:    slices.Clone(kills),
	}
}

func (s Score) Name() string { return s.name }

func (s Score) Points() int { return s.points }

func (s Score) LevelReached() int { return s.levelReached }

func (s Score) LivesRemaining() int { return s.livesRemaining }

// HasBreakdown reports whether the record carries per-player stats
func (s Score) HasBreakdown() bool { return s.playerScores != nil }

func at(v []int, p int) int {
	if p < 0 || p >= len(v) {
		return 0
	}
	return v[p]
}

func (s Score) PlayerScore(p int) int { return at(s.playerScores, p) }

func (s Score) PlayerBullets(p int) int { return at(s.playerBullets, p) }

func (s Score) PlayerKills(p int) int { return at(s.playerKills, p) }

// Accuracy returns kills per shot for player p, or 0 when p never fired
func (s Score) Accuracy(p int) float64 {
	shots := s.PlayerBullets(p)
	if shots == 0 {
		return 0
	}
	return float64(s.PlayerKills(p)) / float64(shots)
}

func (s Score) String() string {
	return fmt.Sprintf("Score{name=%q, score=%d, perPlayer=%v}", s.name, s.points, s.playerScores)
}

// CompareScores orders scores descending by points
func CompareScores(a, b Score) int {
	return cmp.Compare(b.points, a.points)
}

// DefaultLeaderboardCapacity is the number of high scores kept
const DefaultLeaderboardCapacity = 7

// Leaderboard is a capacity-bounded list of scores kept sorted descending
type Leaderboard struct {
	capacity int
	entries  []Score
}

// NewLeaderboard builds a board from loaded entries, sorting and truncating them
func NewLeaderboard(capacity int, entries []Score) *Leaderboard {
	if capacity <= 0 {
		capacity = DefaultLeaderboardCapacity
	}
	lb := &Leaderboard{
		capacity: capacity,
		entries:  slices.Clone(entries),
	}
	lb.normalize()
	return lb
}

func (lb *Leaderboard) normalize() {
	slices.SortStableFunc(lb.entries, CompareScores)
	if len(lb.entries) > lb.capacity {
		lb.entries = lb.entries[:lb.capacity]
	}
}

func (lb *Leaderboard) Capacity() int { return lb.capacity }

func (lb *Leaderboard) Len() int { return len(lb.entries) }

// IsNewRecord reports whether points would earn a place on the board
func (lb *Leaderboard) IsNewRecord(points int) bool {
	if len(lb.entries) < lb.capacity {
		return true
	}
	return points > lb.entries[len(lb.entries)-1].points
}

// Insert adds s and drops whatever falls past the capacity
func (lb *Leaderboard) Insert(s Score) {
	lb.entries = append(lb.entries, s)
	lb.normalize()
}

// Entries returns a copy of the ranked scores
func (lb *Leaderboard) Entries() []Score {
	return slices.Clone(lb.entries)
}
