package entity

import (
	"time"

	"github.com/1siamBot/coop-invaders/engine/core"
)

const (
	ShipWidth  = 26
	ShipHeight = 16
	ShipSpeed  = 2

	ShipBulletSpeed = -6

	shootingInterval    = 750 * time.Millisecond
	destructionInterval = time.Second
)

// Ship is a player-controlled cannon
type Ship struct {
	Rect
	Speed    int
	PlayerID int // 1 or 2, carried on fired bullets

	shooting    *core.Cooldown
	destruction *core.Cooldown
	destroyed   bool
}

// NewShip creates a ship with its top-left corner at (x, y)
func NewShip(x, y, playerID int, clock core.Clock) *Ship {
	return &Ship{
		Rect:        Rect{X: x, Y: y, W: ShipWidth, H: ShipHeight},
		Speed:       ShipSpeed,
		PlayerID:    playerID,
		shooting:    core.NewCooldown(clock, shootingInterval),
		destruction: core.NewCooldown(clock, destructionInterval),
	}
}

func (s *Ship) MoveRight() { s.X += s.Speed }

func (s *Ship) MoveLeft() { s.X -= s.Speed }

// Shoot fires a bullet into set if the ship's weapon has cooled down.
// Returns whether the shot was accepted.
func (s *Ship) Shoot(set *BulletSet) bool {
	if s.destroyed || !s.shooting.Finished() {
		return false
	}
	s.shooting.Reset()
	b := set.Fire(s.CenterX(), s.Y, ShipBulletSpeed)
	b.OwnerPlayerID = s.PlayerID
	return true
}

// Update brings the ship back once its destruction time is over
func (s *Ship) Update() {
	if s.destroyed && s.destruction.Finished() {
		s.destroyed = false
	}
}

// Destroy blows up the ship; it respawns in place after a delay
func (s *Ship) Destroy() {
	s.destroyed = true
	s.destruction.Reset()
}

func (s *Ship) IsDestroyed() bool { return s.destroyed }

func (s *Ship) Sprite() SpriteType {
	if s.destroyed {
		return SpriteShipDestroyed
	}
	return SpriteShip
}
