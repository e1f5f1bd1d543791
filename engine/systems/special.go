package systems

import (
	"log"
	"math/rand"
	"time"

	"github.com/1siamBot/coop-invaders/engine/core"
	"github.com/1siamBot/coop-invaders/engine/entity"
)

// SpecialSpeed is how far the bonus ship travels per tick
const SpecialSpeed = 2

// SpecialShipSystem runs the bonus ship's lifecycle: absent, flying across
// the field, exploding, gone
type SpecialShipSystem struct {
	FieldWidth int
	Bus        *core.EventBus
	Logger     *log.Logger

	ship      *entity.EnemyShip
	spawn     *core.Cooldown
	explosion *core.Cooldown
}

// NewSpecialShipSystem starts the spawn timer immediately
func NewSpecialShipSystem(fieldWidth int, interval, variance, explosion time.Duration, clock core.Clock, rng *rand.Rand) *SpecialShipSystem {
	s := &SpecialShipSystem{
		FieldWidth: fieldWidth,
		spawn:      core.NewVariableCooldown(clock, interval, variance, rng),
		explosion:  core.NewCooldown(clock, explosion),
	}
	s.spawn.Reset()
	return s
}

// Ship returns the bonus ship, or nil when none is around
func (s *SpecialShipSystem) Ship() *entity.EnemyShip { return s.ship }

// Update advances the bonus ship by one tick
func (s *SpecialShipSystem) Update(tick uint64) {
	if s.ship != nil {
		if !s.ship.IsDestroyed() {
			s.ship.Move(SpecialSpeed, 0)
		} else if s.explosion.Finished() {
			s.ship = nil
		}
	}
	if s.ship == nil && s.spawn.Finished() {
		s.ship = entity.NewSpecialShip()
		s.spawn.Reset()
		s.logf("A special ship appears")
		s.Bus.Emit(core.Event{Type: core.EvtSpecialSpawned, Tick: tick, Player: -1})
	}
	if s.ship != nil && s.ship.X > s.FieldWidth {
		s.ship = nil
		s.logf("The special ship has escaped")
		s.Bus.Emit(core.Event{Type: core.EvtSpecialEscaped, Tick: tick, Player: -1})
	}
}

// Hit destroys the bonus ship and starts its explosion
func (s *SpecialShipSystem) Hit() {
	if s.ship == nil {
		return
	}
	s.ship.Destroy()
	s.explosion.Reset()
}

// Draw shows the bonus ship or its explosion
func (s *SpecialShipSystem) Draw(d entity.Drawer) {
	if s.ship != nil {
		d.DrawEntity(s.ship.Sprite(), s.ship.Rect)
	}
}

func (s *SpecialShipSystem) logf(format string, args ...interface{}) {
	if s.Logger != nil {
		s.Logger.Printf(format, args...)
	}
}
