package round

import (
	"log"
	"math/rand"
	"time"

	"github.com/1siamBot/coop-invaders/engine/core"
	"github.com/1siamBot/coop-invaders/engine/entity"
	"github.com/1siamBot/coop-invaders/engine/input"
	"github.com/1siamBot/coop-invaders/engine/render"
	"github.com/1siamBot/coop-invaders/engine/systems"
)

// Phase is where a round is in its lifecycle
type Phase uint8

const (
	PhaseWarmUp    Phase = iota // input frozen, countdown on screen
	PhaseActive                 // ships and enemies move
	PhaseFinishing              // formation cleared or team wiped, grace delay running
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseWarmUp:
		return "warm-up"
	case PhaseActive:
		return "active"
	case PhaseFinishing:
		return "finishing"
	case PhaseDone:
		return "done"
	}
	return "unknown"
}

// Config holds the round's play field and timings
type Config struct {
	Width, Height int
	SeparatorY    int // HUD separator; bullets above it are retired

	WarmUp      time.Duration
	FinishDelay time.Duration

	SpecialInterval  time.Duration
	SpecialVariance  time.Duration
	SpecialExplosion time.Duration

	LifeBonus int  // points per remaining life at round end
	BonusLife bool // grant one extra life this round
}

// DefaultConfig returns the stock timings for a field of the given size
func DefaultConfig(width, height int) Config {
	return Config{
		Width:            width,
		Height:           height,
		SeparatorY:       40,
		WarmUp:           6 * time.Second,
		FinishDelay:      1500 * time.Millisecond,
		SpecialInterval:  20 * time.Second,
		SpecialVariance:  10 * time.Second,
		SpecialExplosion: 500 * time.Millisecond,
		LifeBonus:        100,
	}
}

// Formation is what the round needs from the enemy formation
type Formation interface {
	systems.Targets
	Update()
	Shoot(set *entity.BulletSet)
	IsEmpty() bool
	Draw(d entity.Drawer)
}

// Deps are the round's collaborators. Bus, Logger, Rand and Pool are optional.
type Deps struct {
	Input  input.KeyOracle
	Sink   render.DrawSink
	Clock  core.Clock
	Rand   *rand.Rand
	Bus    *core.EventBus
	Logger *log.Logger
	Pool   *entity.BulletPool
}

// Round is the game screen: it advances one level of play a tick at a time
// and ends when the formation is cleared or the team runs out of lives
type Round struct {
	cfg       Config
	state     *core.GameState
	formation Formation

	in       input.KeyOracle
	sink     render.DrawSink
	bus      *core.EventBus
	logger   *log.Logger
	bindings [core.NumPlayers]input.Bindings

	ships       [core.NumPlayers]*entity.Ship
	bullets     *entity.BulletSet
	special     *systems.SpecialShipSystem
	collisions  *systems.CollisionSystem
	projectiles *systems.ProjectileSystem

	warmUp *core.Cooldown
	finish *core.Cooldown

	phase         Phase
	levelFinished bool
	bonusAwarded  bool
	tick          uint64
}

// New sets up a round over state. The warm-up starts right away.
func New(state *core.GameState, formation Formation, deps Deps, cfg Config) *Round {
	clock := deps.Clock
	if clock == nil {
		clock = core.SystemClock{}
	}
	logger := deps.Logger
	if logger == nil {
		logger = log.Default()
	}

	r := &Round{
		cfg:       cfg,
		state:     state,
		formation: formation,
		in:        deps.Input,
		sink:      deps.Sink,
		bus:       deps.Bus,
		logger:    logger,
		bindings:  input.PlayerBindings(),
		bullets:   entity.NewBulletSet(deps.Pool),
		special: systems.NewSpecialShipSystem(cfg.Width,
			cfg.SpecialInterval, cfg.SpecialVariance, cfg.SpecialExplosion, clock, deps.Rand),
		collisions:  &systems.CollisionSystem{State: state, Bus: deps.Bus, Logger: logger},
		projectiles: &systems.ProjectileSystem{Top: cfg.SeparatorY, Bottom: cfg.Height},
		warmUp:      core.NewCooldown(clock, cfg.WarmUp),
		finish:      core.NewCooldown(clock, cfg.FinishDelay),
	}
	r.special.Bus = deps.Bus
	r.special.Logger = logger

	// Player 2 only gets a ship in co-op
	y := cfg.Height - 30
	if state.IsCoop() {
		r.ships[0] = entity.NewShip(cfg.Width/2-60, y, 1, clock)
		r.ships[1] = entity.NewShip(cfg.Width/2+60, y, 2, clock)
	} else {
		r.ships[0] = entity.NewShip(cfg.Width/2-entity.ShipWidth/2, y, 1, clock)
	}

	if cfg.BonusLife {
		if state.IsSharedLives() {
			state.AddTeamLife(1)
		} else {
			state.SetLivesRemaining(state.LivesRemaining() + 1)
		}
	}

	r.warmUp.Reset()
	return r
}

// Tick advances the round by one frame
func (r *Round) Tick() {
	if r.phase == PhaseDone {
		return
	}
	r.tick++

	if r.phase == PhaseWarmUp && r.warmUp.Finished() {
		r.phase = PhaseActive
	}

	if r.phase == PhaseActive {
		r.updatePlayers()
		r.special.Update(r.tick)
		for _, s := range r.ships {
			if s != nil {
				s.Update()
			}
		}
		r.formation.Update()
		r.formation.Shoot(r.bullets)
	}

	r.collisions.Tick = r.tick
	r.collisions.Resolve(r.bullets, r.ships[:], r.formation, r.special, r.levelFinished)
	r.projectiles.Update(r.bullets)
	r.draw()

	if !r.levelFinished && (r.formation.IsEmpty() || !r.state.TeamAlive()) {
		r.levelFinished = true
		r.phase = PhaseFinishing
		r.finish.Reset()
	}
	if r.levelFinished && r.finish.Finished() {
		r.end()
	}
}

func (r *Round) updatePlayers() {
	for p, ship := range r.ships {
		if ship == nil || ship.IsDestroyed() {
			continue
		}
		b := r.bindings[p]
		moveRight := r.in.IsKeyDown(b.Right)
		moveLeft := r.in.IsKeyDown(b.Left)

		// Keep a one pixel margin on both edges
		isRightBorder := ship.X+ship.W+ship.Speed > r.cfg.Width-1
		isLeftBorder := ship.X-ship.Speed < 1

		if moveRight && !isRightBorder {
			ship.MoveRight()
		}
		if moveLeft && !isLeftBorder {
			ship.MoveLeft()
		}

		if r.in.IsKeyDown(b.Fire) && ship.Shoot(r.bullets) {
			r.state.IncBulletsShot(p)
			r.bus.Emit(core.Event{Type: core.EvtShotFired, Tick: r.tick, Player: p})
		}
	}
}

func (r *Round) draw() {
	if r.sink == nil {
		return
	}
	r.sink.Begin()

	r.sink.DrawHUD(render.HUDScore, r.state.Score())
	r.sink.DrawHUD(render.HUDLives, r.state.LivesRemaining())
	r.sink.DrawHUD(render.HUDCoins, r.state.Coins())
	r.sink.DrawHorizontalLine(r.cfg.SeparatorY - 1)

	for _, s := range r.ships {
		if s != nil {
			r.sink.DrawEntity(s.Sprite(), s.Rect)
		}
	}
	r.special.Draw(r.sink)
	r.formation.Draw(r.sink)
	for _, b := range r.bullets.Active() {
		r.sink.DrawEntity(b.Sprite(), b.Rect)
	}

	if r.phase == PhaseWarmUp {
		seconds := int(r.warmUp.Remaining() / time.Second)
		r.sink.DrawCountdown(r.state.Level(), seconds, r.cfg.BonusLife)
	}

	r.sink.End()
}

// end closes the round and pays the per-life bonus to player 0 once
func (r *Round) end() {
	r.phase = PhaseDone
	if r.bonusAwarded {
		return
	}
	r.bonusAwarded = true
	r.state.AddScore(0, r.cfg.LifeBonus*r.state.LivesRemaining())
	r.logger.Printf("Screen cleared with a score of %d", r.state.Score())
	r.bus.Emit(core.Event{Type: core.EvtRoundFinished, Tick: r.tick, Player: -1, Points: r.state.Score()})
}

func (r *Round) Phase() Phase { return r.phase }

// Done reports whether the round has finished its grace delay
func (r *Round) Done() bool { return r.phase == PhaseDone }

// Cleared reports whether the formation was wiped out with the team alive
func (r *Round) Cleared() bool {
	return r.formation.IsEmpty() && r.state.TeamAlive()
}

// Result returns the navigation code once the round is done
func (r *Round) Result() int { return core.ResultScore }

func (r *Round) State() *core.GameState { return r.state }

// Ship returns player p's ship, nil if the slot is empty
func (r *Round) Ship(p int) *entity.Ship {
	if p < 0 || p >= core.NumPlayers {
		return nil
	}
	return r.ships[p]
}

func (r *Round) Bullets() *entity.BulletSet { return r.bullets }

func (r *Round) Formation() Formation { return r.formation }

func (r *Round) Special() *systems.SpecialShipSystem { return r.special }

func (r *Round) CurrentTick() uint64 { return r.tick }
