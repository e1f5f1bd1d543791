package core

// NumPlayers is the number of player slots in a co-op game
const NumPlayers = 2

// GameState holds the state of a game between levels. It supports a co-op
// pair either sharing a team life pool or keeping separate life counters.
// It is owned by the active round and is not safe for concurrent use.
type GameState struct {
	level int
	coop  bool

	// when true lives live in the team pool and lives[] is unused
	sharedLives  bool
	teamLives    int
	teamLivesCap int

	coins int

	// per-player tallies, summed on read
	score          [NumPlayers]int
	lives          [NumPlayers]int
	bulletsShot    [NumPlayers]int
	shipsDestroyed [NumPlayers]int
}

// NewGameState creates the co-op aware state. In co-op the lives of both
// players form a shared pool of livesEach*NumPlayers; otherwise all livesEach
// lives go to player 0.
func NewGameState(level, livesEach int, coop bool) *GameState {
	gs := &GameState{
		level: level,
		coop:  coop,
	}
	if coop {
		gs.sharedLives = true
		gs.teamLives = max(0, livesEach*NumPlayers)
		gs.teamLivesCap = gs.teamLives
	} else {
		gs.lives[0] = max(0, livesEach)
	}
	return gs
}

// NewLegacyGameState creates a single-player state with player 0 slots
// filled. Negative counters are stored as zero.
func NewLegacyGameState(level, score, lives, bulletsShot, shipsDestroyed, coins int) *GameState {
	gs := &GameState{level: level}
	gs.score[0] = max(0, score)
	gs.lives[0] = max(0, lives)
	gs.bulletsShot[0] = max(0, bulletsShot)
	gs.shipsDestroyed[0] = max(0, shipsDestroyed)
	gs.coins = max(0, coins)
	return gs
}

func validPlayer(p int) bool {
	return p >= 0 && p < NumPlayers
}

func sum(v [NumPlayers]int) int {
	t := 0
	for _, n := range v {
		t += n
	}
	return t
}

// Score returns the team score
func (gs *GameState) Score() int { return sum(gs.score) }

// BulletsShot returns the total shots of both players
func (gs *GameState) BulletsShot() int { return sum(gs.bulletsShot) }

// ShipsDestroyed returns the total kills of both players
func (gs *GameState) ShipsDestroyed() int { return sum(gs.shipsDestroyed) }

// LivesRemaining returns the team pool when shared, else the sum of the
// per-player counters
func (gs *GameState) LivesRemaining() int {
	if gs.sharedLives {
		return gs.teamLives
	}
	return sum(gs.lives)
}

func (gs *GameState) Coins() int { return gs.coins }

// AddCoins credits n coins; negative amounts are ignored
func (gs *GameState) AddCoins(n int) {
	gs.coins += max(0, n)
}

// PlayerScore returns player p's score, or 0 for an unknown slot
func (gs *GameState) PlayerScore(p int) int {
	if !validPlayer(p) {
		return 0
	}
	return gs.score[p]
}

func (gs *GameState) PlayerBulletsShot(p int) int {
	if !validPlayer(p) {
		return 0
	}
	return gs.bulletsShot[p]
}

func (gs *GameState) PlayerShipsDestroyed(p int) int {
	if !validPlayer(p) {
		return 0
	}
	return gs.shipsDestroyed[p]
}

// PlayerLives returns player p's own counter (always 0 in shared mode)
func (gs *GameState) PlayerLives(p int) int {
	if !validPlayer(p) {
		return 0
	}
	return gs.lives[p]
}

// AddScore adds delta points to player p. Unknown slots and negative deltas
// are ignored so scores never decrease.
func (gs *GameState) AddScore(p, delta int) {
	if !validPlayer(p) || delta < 0 {
		return
	}
	gs.score[p] += delta
}

func (gs *GameState) IncBulletsShot(p int) {
	if validPlayer(p) {
		gs.bulletsShot[p]++
	}
}

func (gs *GameState) IncShipsDestroyed(p int) {
	if validPlayer(p) {
		gs.shipsDestroyed[p]++
	}
}

func (gs *GameState) IsCoop() bool { return gs.coop }

func (gs *GameState) IsSharedLives() bool { return gs.sharedLives }

func (gs *GameState) TeamLives() int { return gs.teamLives }

func (gs *GameState) TeamLivesCap() int { return gs.teamLivesCap }

// AddTeamLife refills the team pool by n, never past the cap
func (gs *GameState) AddTeamLife(n int) {
	if gs.sharedLives {
		gs.teamLives = min(gs.teamLivesCap, gs.teamLives+max(0, n))
	}
}

// DecTeamLife drains the team pool by n, never below zero
func (gs *GameState) DecTeamLife(n int) {
	if gs.sharedLives {
		gs.teamLives = max(0, gs.teamLives-max(0, n))
	}
}

// SetLivesRemaining maps "remaining lives" onto the team pool in shared mode
// and onto player 0 otherwise. Player 1's counter is left alone.
func (gs *GameState) SetLivesRemaining(v int) {
	if gs.sharedLives {
		gs.teamLives = max(0, min(gs.teamLivesCap, v))
		return
	}
	gs.lives[0] = max(0, v)
}

// LoseLife takes exactly one life from whichever strategy is active
func (gs *GameState) LoseLife() {
	gs.SetLivesRemaining(gs.LivesRemaining() - 1)
}

func (gs *GameState) Level() int { return gs.level }

// NextLevel advances the level; capping is the caller's concern
func (gs *GameState) NextLevel() { gs.level++ }

// TeamAlive reports whether the active life strategy has anything left
func (gs *GameState) TeamAlive() bool {
	if gs.sharedLives {
		return gs.teamLives > 0
	}
	for _, l := range gs.lives {
		if l > 0 {
			return true
		}
	}
	return false
}
