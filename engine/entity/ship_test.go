package entity

import (
	"testing"
	"time"

	"github.com/1siamBot/coop-invaders/engine/core"
)

func TestShipShootingCooldown(t *testing.T) {
	clock := core.NewManualClock()
	ship := NewShip(100, 400, 2, clock)
	set := NewBulletSet(nil)

	if !ship.Shoot(set) {
		t.Fatal("First shot should be accepted")
	}
	b := set.Active()[0]
	if b.OwnerPlayerID != 2 || b.Speed != ShipBulletSpeed || b.CenterX() != ship.CenterX() {
		t.Errorf("Bullet not fired from the ship: %+v", b)
	}

	if ship.Shoot(set) {
		t.Error("Second shot accepted during cooldown")
	}
	clock.Advance(shootingInterval)
	if !ship.Shoot(set) {
		t.Error("Shot rejected after cooldown")
	}
	if set.Len() != 2 {
		t.Errorf("Expected 2 bullets, got %d", set.Len())
	}
}

func TestShipDestructionAndRespawn(t *testing.T) {
	clock := core.NewManualClock()
	ship := NewShip(100, 400, 1, clock)
	set := NewBulletSet(nil)

	ship.Destroy()
	if !ship.IsDestroyed() || ship.Sprite() != SpriteShipDestroyed {
		t.Fatal("Ship not destroyed")
	}
	if ship.Shoot(set) {
		t.Error("Destroyed ship fired")
	}

	clock.Advance(destructionInterval - time.Millisecond)
	ship.Update()
	if !ship.IsDestroyed() {
		t.Error("Ship came back early")
	}
	clock.Advance(time.Millisecond)
	ship.Update()
	if ship.IsDestroyed() || ship.Sprite() != SpriteShip {
		t.Error("Ship did not come back after its destruction time")
	}
}

func TestShipMoves(t *testing.T) {
	ship := NewShip(100, 400, 1, core.NewManualClock())
	ship.MoveRight()
	ship.MoveRight()
	ship.MoveLeft()
	if ship.X != 100+ShipSpeed {
		t.Errorf("Expected x=%d, got %d", 100+ShipSpeed, ship.X)
	}
}
