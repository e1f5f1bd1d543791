package systems

import (
	"log"

	"github.com/1siamBot/coop-invaders/engine/core"
	"github.com/1siamBot/coop-invaders/engine/entity"
)

// Collides reports whether two boxes overlap, comparing the distance between
// their centers against the sum of their integer half sizes
func Collides(a, b entity.Rect) bool {
	dx := abs(a.CenterX() - b.CenterX())
	dy := abs(a.CenterY() - b.CenterY())
	return dx < a.W/2+b.W/2 && dy < a.H/2+b.H/2
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Targets is what the collision pass needs from the enemy formation
type Targets interface {
	Enemies() []*entity.EnemyShip
	Destroy(e *entity.EnemyShip)
}

// CollisionReport counts what happened in one pass
type CollisionReport struct {
	PlayerHits int
	EnemyKills int
	SpecialHit bool
}

// CollisionSystem applies bullet hits to the game state
type CollisionSystem struct {
	State  *core.GameState
	Bus    *core.EventBus
	Logger *log.Logger
	Tick   uint64
}

// Resolve tests every live bullet once. Enemy bullets are checked against the
// ships in player order, player bullets against the formation and then the
// bonus ship; the first hit claims the bullet. Hit bullets are collected and
// recycled after the pass. Ship hits are ignored once the round is over.
func (s *CollisionSystem) Resolve(bullets *entity.BulletSet, ships []*entity.Ship, formation Targets, special *SpecialShipSystem, roundOver bool) CollisionReport {
	var report CollisionReport
	spent := make(map[*entity.Bullet]struct{})

	for _, b := range bullets.Active() {
		if b.IsEnemy() {
			if roundOver {
				continue
			}
			for p, ship := range ships {
				if ship == nil || ship.IsDestroyed() || !Collides(b.Rect, ship.Rect) {
					continue
				}
				spent[b] = struct{}{}
				ship.Destroy()
				s.State.LoseLife()
				report.PlayerHits++
				s.logf("Hit on player %d, team lives now: %d", p+1, s.State.LivesRemaining())
				s.Bus.Emit(core.Event{Type: core.EvtPlayerHit, Tick: s.Tick, Player: p})
				break
			}
			continue
		}

		p := b.OwnerIndex()
		hit := false
		if formation != nil {
			for _, enemy := range formation.Enemies() {
				if enemy.IsDestroyed() || !Collides(b.Rect, enemy.Rect) {
					continue
				}
				s.reward(p, enemy)
				formation.Destroy(enemy)
				spent[b] = struct{}{}
				report.EnemyKills++
				s.Bus.Emit(core.Event{Type: core.EvtEnemyDestroyed, Tick: s.Tick, Player: p, Points: enemy.PointValue})
				hit = true
				break
			}
		}
		if hit || special == nil {
			continue
		}
		if bonus := special.Ship(); bonus != nil && !bonus.IsDestroyed() && Collides(b.Rect, bonus.Rect) {
			s.reward(p, bonus)
			special.Hit()
			spent[b] = struct{}{}
			report.SpecialHit = true
			s.Bus.Emit(core.Event{Type: core.EvtSpecialDestroyed, Tick: s.Tick, Player: p, Points: bonus.PointValue})
		}
	}

	bullets.Recycle(spent)
	return report
}

func (s *CollisionSystem) reward(p int, enemy *entity.EnemyShip) {
	s.State.AddScore(p, enemy.PointValue)
	s.State.IncShipsDestroyed(p)
	s.State.AddCoins(enemy.CoinValue)
}

func (s *CollisionSystem) logf(format string, args ...interface{}) {
	if s.Logger != nil {
		s.Logger.Printf(format, args...)
	}
}
