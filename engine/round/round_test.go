package round

import (
	"io"
	"log"
	"math/rand"
	"testing"
	"time"

	"github.com/1siamBot/coop-invaders/engine/core"
	"github.com/1siamBot/coop-invaders/engine/entity"
	"github.com/1siamBot/coop-invaders/engine/input"
	"github.com/1siamBot/coop-invaders/engine/render"
)

const (
	testWidth  = 640
	testHeight = 480
)

// stubFormation holds hand-placed enemies that never move or fire
type stubFormation struct {
	enemies []*entity.EnemyShip
}

func (f *stubFormation) Enemies() []*entity.EnemyShip { return f.enemies }

func (f *stubFormation) Destroy(e *entity.EnemyShip) {
	for i, x := range f.enemies {
		if x == e {
			e.Destroy()
			f.enemies = append(f.enemies[:i], f.enemies[i+1:]...)
			return
		}
	}
}

func (f *stubFormation) Update()                     {}
func (f *stubFormation) Shoot(set *entity.BulletSet) {}
func (f *stubFormation) IsEmpty() bool               { return len(f.enemies) == 0 }

func (f *stubFormation) Draw(d entity.Drawer) {
	for _, e := range f.enemies {
		d.DrawEntity(e.Sprite(), e.Rect)
	}
}

type harness struct {
	clock *core.ManualClock
	keys  input.KeySet
	frame *render.Frame
	bus   *core.EventBus
	round *Round
}

func testConfig() Config {
	cfg := DefaultConfig(testWidth, testHeight)
	cfg.WarmUp = 0
	cfg.SpecialInterval = time.Hour
	cfg.SpecialVariance = 0
	return cfg
}

func newHarness(state *core.GameState, formation Formation, cfg Config) *harness {
	h := &harness{
		clock: core.NewManualClock(),
		keys:  input.KeySet{},
		frame: render.NewFrame(),
		bus:   core.NewEventBus(),
	}
	h.round = New(state, formation, Deps{
		Input:  h.keys,
		Sink:   h.frame,
		Clock:  h.clock,
		Rand:   rand.New(rand.NewSource(1)),
		Bus:    h.bus,
		Logger: log.New(io.Discard, "", 0),
	}, cfg)
	return h
}

// farEnemy keeps the formation non-empty without being in anyone's way
func farEnemy() *stubFormation {
	return &stubFormation{enemies: []*entity.EnemyShip{entity.NewEnemyShip(5, 60, entity.EnemyA)}}
}

// hit fires an enemy bullet straight onto ship p
func (h *harness) hit(p int) {
	ship := h.round.Ship(p)
	h.round.Bullets().Fire(ship.CenterX(), ship.Y, entity.EnemyBulletSpeed)
}

func TestCoopLivesDrainToGameOver(t *testing.T) {
	gs := core.NewGameState(1, 3, true)
	h := newHarness(gs, farEnemy(), testConfig())

	if gs.TeamLives() != 6 {
		t.Fatalf("Expected 6 team lives, got %d", gs.TeamLives())
	}

	for i := 0; i < 3; i++ {
		h.hit(i % 2)
		h.round.Tick()
		h.clock.Advance(time.Second)
		h.round.Tick()
	}
	if gs.TeamLives() != 3 || !gs.TeamAlive() {
		t.Fatalf("After 3 hits expected 3 lives and alive, got %d", gs.TeamLives())
	}
	if h.round.Phase() != PhaseActive {
		t.Fatalf("Round should still be active, is %v", h.round.Phase())
	}

	for i := 0; i < 3; i++ {
		h.hit(i % 2)
		h.round.Tick()
		h.clock.Advance(time.Second)
		h.round.Tick()
	}
	if gs.TeamLives() != 0 || gs.TeamAlive() {
		t.Fatalf("After 6 hits expected game over, got %d lives", gs.TeamLives())
	}
	if h.round.Phase() != PhaseFinishing && !h.round.Done() {
		t.Errorf("Round should be finishing, is %v", h.round.Phase())
	}

	h.clock.Advance(2 * time.Second)
	h.round.Tick()
	if !h.round.Done() || h.round.Cleared() {
		t.Errorf("Expected a lost round, done=%v cleared=%v", h.round.Done(), h.round.Cleared())
	}
	if h.round.Result() != core.ResultScore {
		t.Errorf("Expected result %d, got %d", core.ResultScore, h.round.Result())
	}
}

func TestKillRewardsShooterAndEndsRound(t *testing.T) {
	gs := core.NewGameState(1, 3, true)
	// straight above player 1's co-op starting spot
	shipCenter := testWidth/2 - 60 + entity.ShipWidth/2
	enemy := entity.NewEnemyShip(shipCenter-entity.EnemyWidth/2, 200, entity.EnemyA)
	enemy.PointValue, enemy.CoinValue = 50, 1
	h := newHarness(gs, &stubFormation{enemies: []*entity.EnemyShip{enemy}}, testConfig())

	h.keys.Press(input.KeyP1Fire)
	for i := 0; i < 100 && !enemy.IsDestroyed(); i++ {
		h.round.Tick()
	}
	if !enemy.IsDestroyed() {
		t.Fatal("Bullet never reached the enemy")
	}
	if gs.PlayerScore(0) != 50 || gs.PlayerShipsDestroyed(0) != 1 || gs.Coins() != 1 {
		t.Errorf("Expected +50 score +1 kill +1 coin, got %d %d %d",
			gs.PlayerScore(0), gs.PlayerShipsDestroyed(0), gs.Coins())
	}
	if gs.PlayerBulletsShot(0) != 1 || gs.PlayerBulletsShot(1) != 0 {
		t.Errorf("Holding fire during the cooldown should count one shot, got %d", gs.BulletsShot())
	}
	if h.round.Phase() != PhaseFinishing {
		t.Errorf("Cleared formation should start the finish delay, phase %v", h.round.Phase())
	}

	h.clock.Advance(testConfig().FinishDelay)
	h.round.Tick()
	if !h.round.Done() || !h.round.Cleared() {
		t.Error("Expected a cleared round")
	}
}

func TestLifeBonusPaidOnce(t *testing.T) {
	gs := core.NewGameState(1, 3, true)
	gs.DecTeamLife(2)
	h := newHarness(gs, &stubFormation{}, testConfig())

	h.round.Tick()
	h.clock.Advance(testConfig().FinishDelay)
	for i := 0; i < 5; i++ {
		h.round.Tick()
	}
	if !h.round.Done() {
		t.Fatal("Round with an empty formation did not finish")
	}
	if gs.PlayerScore(0) != 400 || gs.PlayerScore(1) != 0 {
		t.Errorf("Expected 400 bonus to player 1 only, got %d/%d", gs.PlayerScore(0), gs.PlayerScore(1))
	}

	finished := 0
	h.bus.On(core.EvtRoundFinished, func(core.Event) { finished++ })
	h.bus.Dispatch()
	if finished != 1 {
		t.Errorf("Expected one round finished event, got %d", finished)
	}
}

func TestWarmUpCountdown(t *testing.T) {
	gs := core.NewGameState(2, 3, true)
	cfg := testConfig()
	cfg.WarmUp = 6 * time.Second
	cfg.BonusLife = true
	h := newHarness(gs, farEnemy(), cfg)
	ship := h.round.Ship(0)
	x := ship.X

	h.keys.Press(input.KeyP1Right, input.KeyP1Fire)
	h.round.Tick()
	countdown := findCommand(h.frame, render.CmdCountdown)
	if countdown == nil {
		t.Fatal("No countdown drawn during warm-up")
	}
	if countdown.Level != 2 || countdown.Seconds != 6 || !countdown.Flag {
		t.Errorf("Unexpected countdown %+v", countdown)
	}
	if ship.X != x || gs.BulletsShot() != 0 {
		t.Error("Input applied during warm-up")
	}

	h.clock.Advance(2500 * time.Millisecond)
	h.round.Tick()
	if c := findCommand(h.frame, render.CmdCountdown); c == nil || c.Seconds != 3 {
		t.Errorf("Expected 3 seconds left, got %+v", c)
	}

	h.clock.Advance(3500 * time.Millisecond)
	h.round.Tick()
	if h.round.Phase() != PhaseActive {
		t.Fatalf("Expected active phase, got %v", h.round.Phase())
	}
	if findCommand(h.frame, render.CmdCountdown) != nil {
		t.Error("Countdown still drawn after warm-up")
	}
	if ship.X != x+entity.ShipSpeed || gs.BulletsShot() != 1 {
		t.Errorf("Input not applied after warm-up: x=%d shots=%d", ship.X, gs.BulletsShot())
	}
}

func TestShipStaysOnField(t *testing.T) {
	gs := core.NewGameState(1, 3, false)
	h := newHarness(gs, farEnemy(), testConfig())
	ship := h.round.Ship(0)

	h.keys.Press(input.KeyP1Right)
	for i := 0; i < 400; i++ {
		h.round.Tick()
	}
	if ship.X+ship.W > testWidth-1 {
		t.Errorf("Ship passed the right edge: x=%d", ship.X)
	}

	h.keys.Release(input.KeyP1Right)
	h.keys.Press(input.KeyP1Left)
	for i := 0; i < 400; i++ {
		h.round.Tick()
	}
	if ship.X < 1 {
		t.Errorf("Ship passed the left edge: x=%d", ship.X)
	}
}

func TestSoloRoundHasOneShip(t *testing.T) {
	gs := core.NewGameState(1, 3, false)
	cfg := testConfig()
	cfg.BonusLife = true
	h := newHarness(gs, farEnemy(), cfg)

	if h.round.Ship(0) == nil || h.round.Ship(1) != nil {
		t.Fatal("Solo round should only have player 1's ship")
	}
	if gs.LivesRemaining() != 4 {
		t.Errorf("Bonus life not granted, %d lives", gs.LivesRemaining())
	}

	// Player 2's keys do nothing without a ship
	h.keys.Press(input.KeyP2Fire)
	h.round.Tick()
	if gs.BulletsShot() != 0 {
		t.Errorf("Expected no shots, got %d", gs.BulletsShot())
	}
}

func TestCoopBonusLifeRespectsCap(t *testing.T) {
	gs := core.NewGameState(1, 3, true)
	gs.LoseLife()
	cfg := testConfig()
	cfg.BonusLife = true
	newHarness(gs, farEnemy(), cfg)
	if gs.TeamLives() != 6 {
		t.Errorf("Expected pool refilled to 6, got %d", gs.TeamLives())
	}

	full := core.NewGameState(1, 3, true)
	newHarness(full, farEnemy(), cfg)
	if full.TeamLives() != full.TeamLivesCap() {
		t.Errorf("Bonus life pushed pool past its cap: %d", full.TeamLives())
	}
}

func TestDrawOrder(t *testing.T) {
	gs := core.NewGameState(1, 3, true)
	h := newHarness(gs, farEnemy(), testConfig())
	h.round.Tick()

	cmds := h.frame.Commands()
	want := []render.CommandKind{render.CmdHUD, render.CmdHUD, render.CmdHUD, render.CmdLine}
	for i, k := range want {
		if cmds[i].Kind != k {
			t.Fatalf("Command %d is %v, want %v", i, cmds[i].Kind, k)
		}
	}
	if cmds[3].Y != testConfig().SeparatorY-1 {
		t.Errorf("Separator at y=%d", cmds[3].Y)
	}
	// two ships and one enemy
	if n := h.frame.Count(render.CmdEntity); n != 3 {
		t.Errorf("Expected 3 entities, got %d", n)
	}
}

func findCommand(f *render.Frame, kind render.CommandKind) *render.Command {
	for _, c := range f.Commands() {
		if c.Kind == kind {
			return &c
		}
	}
	return nil
}
