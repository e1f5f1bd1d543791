package core

import "time"

// LoopState is the run state of a GameLoop
type LoopState uint8

const (
	LoopStopped LoopState = iota
	LoopPlaying
	LoopPaused
)

// Result codes handed back to the caller's navigation when a screen ends
const (
	ResultExit      = 0
	ResultMenu      = 1
	ResultPlayAgain = 2
	ResultScore     = 3
)

// maxFrameTime caps a single frame to avoid the spiral of death
const maxFrameTime = 250 * time.Millisecond

// GameLoop runs a simulation at a fixed tick rate from a variable frame rate
type GameLoop struct {
	State       LoopState
	TickRate    float64 // fixed ticks per second
	clock       Clock
	accumulator time.Duration
	lastTime    time.Time
	tickCount   uint64
}

// NewGameLoop creates a game loop with fixed tick rate
func NewGameLoop(tickRate float64, clock Clock) *GameLoop {
	if clock == nil {
		clock = SystemClock{}
	}
	return &GameLoop{
		TickRate: tickRate,
		clock:    clock,
		lastTime: clock.Now(),
	}
}

// Update should be called every frame. It runs step once per elapsed fixed
// tick and returns the interpolation alpha for rendering.
func (gl *GameLoop) Update(step func()) float64 {
	now := gl.clock.Now()
	frameTime := now.Sub(gl.lastTime)
	gl.lastTime = now

	if frameTime > maxFrameTime {
		frameTime = maxFrameTime
	}

	dt := time.Duration(float64(time.Second) / gl.TickRate)
	gl.accumulator += frameTime

	for gl.accumulator >= dt {
		if gl.State == LoopPlaying {
			step()
			gl.tickCount++
		}
		gl.accumulator -= dt
	}

	return float64(gl.accumulator) / float64(dt)
}

// Play starts or resumes the loop
func (gl *GameLoop) Play() {
	gl.State = LoopPlaying
	gl.lastTime = gl.clock.Now()
}

// Pause pauses the loop
func (gl *GameLoop) Pause() {
	gl.State = LoopPaused
}

// CurrentTick returns the number of ticks run so far
func (gl *GameLoop) CurrentTick() uint64 {
	return gl.tickCount
}
