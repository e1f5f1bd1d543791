package systems

import (
	"testing"
	"time"

	"github.com/1siamBot/coop-invaders/engine/core"
	"github.com/1siamBot/coop-invaders/engine/entity"
)

func TestSpecialShipLifecycle(t *testing.T) {
	clock := core.NewManualClock()
	bus := core.NewEventBus()
	var spawned, escaped int
	bus.On(core.EvtSpecialSpawned, func(core.Event) { spawned++ })
	bus.On(core.EvtSpecialEscaped, func(core.Event) { escaped++ })

	s := NewSpecialShipSystem(100, 20*time.Second, 0, 500*time.Millisecond, clock, nil)
	s.Bus = bus

	s.Update(1)
	if s.Ship() != nil {
		t.Fatal("Special ship spawned before its interval")
	}

	clock.Advance(20 * time.Second)
	s.Update(2)
	ship := s.Ship()
	if ship == nil || ship.X != entity.SpecialStartX {
		t.Fatalf("Expected special ship at the left edge, got %+v", ship)
	}

	s.Update(3)
	if ship.X != entity.SpecialStartX+SpecialSpeed {
		t.Errorf("Expected ship to move %d, at %d", SpecialSpeed, ship.X)
	}

	for i := 0; i < 200 && s.Ship() != nil; i++ {
		s.Update(uint64(4 + i))
	}
	if s.Ship() != nil {
		t.Fatal("Special ship never left the field")
	}

	bus.Dispatch()
	if spawned != 1 || escaped != 1 {
		t.Errorf("Expected 1 spawn and 1 escape, got %d and %d", spawned, escaped)
	}
}

func TestSpecialShipExplosion(t *testing.T) {
	clock := core.NewManualClock()
	s := NewSpecialShipSystem(640, 0, 0, 500*time.Millisecond, clock, nil)
	s.Update(1)
	ship := s.Ship()
	s.Hit()
	if !ship.IsDestroyed() || ship.Sprite() != entity.SpriteExplosion {
		t.Fatal("Hit did not destroy the ship")
	}

	x := ship.X
	s.Update(2)
	if s.Ship() != ship || ship.X != x {
		t.Error("Exploding ship should stay in place")
	}

	clock.Advance(500 * time.Millisecond)
	s.Update(3)
	if s.Ship() == ship {
		t.Error("Explosion did not clear")
	}
}

func TestProjectileRetiresOutOfBounds(t *testing.T) {
	set := entity.NewBulletSet(nil)
	set.Fire(50, 45, entity.ShipBulletSpeed)
	set.Fire(50, 478, entity.EnemyBulletSpeed)
	mid := set.Fire(50, 200, entity.EnemyBulletSpeed)

	ps := &ProjectileSystem{Top: 40, Bottom: 480}
	if n := ps.Update(set); n != 2 {
		t.Errorf("Expected 2 retired, got %d", n)
	}
	if set.Len() != 1 || set.Active()[0] != mid {
		t.Errorf("Wrong bullet left live: %v", set.Active())
	}
	if mid.Y != 204 {
		t.Errorf("Expected bullet at y=204, got %d", mid.Y)
	}
}
