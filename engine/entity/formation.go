package entity

import (
	"math/rand"
	"slices"
	"time"

	"github.com/1siamBot/coop-invaders/engine/core"
)

const (
	formationStartX     = 20
	formationStartY     = 100
	formationSeparation = 40
	formationSideMargin = 20
	formationStepX      = 8
	formationStepY      = 4
	formationFloorGap   = 120

	EnemyBulletSpeed = 4
)

// FormationSettings is the per-level layout and pace of the formation
type FormationSettings struct {
	Columns       int
	Rows          int
	MoveInterval  time.Duration
	ShootInterval time.Duration
	ShootVariance time.Duration
}

type direction uint8

const (
	dirRight direction = iota
	dirDown
	dirLeft
)

// Formation is the grid of regular enemies for a level. Enemies are kept by
// column so the bottom survivor of each column is the one that fires.
type Formation struct {
	columns [][]*EnemyShip

	fieldWidth int
	floorY     int

	dir      direction
	nextDir  direction
	move     *core.Cooldown
	shooting *core.Cooldown
	rng      *rand.Rand
}

// NewFormation lays out a Columns x Rows grid. Row 0 is the toughest kind.
func NewFormation(s FormationSettings, fieldWidth, fieldHeight int, clock core.Clock, rng *rand.Rand) *Formation {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	f := &Formation{
		fieldWidth: fieldWidth,
		floorY:     fieldHeight - formationFloorGap,
		move:       core.NewCooldown(clock, s.MoveInterval),
		shooting:   core.NewVariableCooldown(clock, s.ShootInterval, s.ShootVariance, rng),
		rng:        rng,
	}
	for c := 0; c < s.Columns; c++ {
		col := make([]*EnemyShip, 0, s.Rows)
		for r := 0; r < s.Rows; r++ {
			kind := EnemyA
			switch {
			case r == 0:
				kind = EnemyC
			case r < 3:
				kind = EnemyB
			}
			col = append(col, NewEnemyShip(
				formationStartX+c*formationSeparation,
				formationStartY+r*formationSeparation,
				kind,
			))
		}
		if len(col) > 0 {
			f.columns = append(f.columns, col)
		}
	}
	f.shooting.Reset()
	return f
}

func (f *Formation) bounds() (minX, maxX, maxY int) {
	minX, maxX = f.fieldWidth, 0
	for _, col := range f.columns {
		for _, e := range col {
			minX = min(minX, e.X)
			maxX = max(maxX, e.X+e.W)
			maxY = max(maxY, e.Y+e.H)
		}
	}
	return minX, maxX, maxY
}

// Update steps the whole formation when its move timer elapses. It sweeps
// sideways and drops a row at each edge until it reaches the floor.
func (f *Formation) Update() {
	if f.IsEmpty() || !f.move.Finished() {
		return
	}
	f.move.Reset()

	minX, maxX, maxY := f.bounds()
	dx, dy := 0, 0
	switch f.dir {
	case dirRight:
		if maxX+formationStepX > f.fieldWidth-formationSideMargin {
			f.dir, f.nextDir = dirDown, dirLeft
		} else {
			dx = formationStepX
		}
	case dirLeft:
		if minX-formationStepX < formationSideMargin {
			f.dir, f.nextDir = dirDown, dirRight
		} else {
			dx = -formationStepX
		}
	}
	if f.dir == dirDown {
		if maxY+formationStepY <= f.floorY {
			dy = formationStepY
		}
		f.dir = f.nextDir
	}

	for _, col := range f.columns {
		for _, e := range col {
			e.Move(dx, dy)
		}
	}
}

// Shoot fires from the bottom enemy of a random column when ready
func (f *Formation) Shoot(set *BulletSet) {
	if f.IsEmpty() || !f.shooting.Finished() {
		return
	}
	f.shooting.Reset()
	col := f.columns[f.rng.Intn(len(f.columns))]
	shooter := col[len(col)-1]
	set.Fire(shooter.CenterX(), shooter.Y+shooter.H, EnemyBulletSpeed)
}

// Enemies returns the live enemies, column by column
func (f *Formation) Enemies() []*EnemyShip {
	var all []*EnemyShip
	for _, col := range f.columns {
		all = append(all, col...)
	}
	return all
}

// Destroy removes e from the formation
func (f *Formation) Destroy(e *EnemyShip) {
	for i, col := range f.columns {
		j := slices.Index(col, e)
		if j < 0 {
			continue
		}
		e.Destroy()
		col = slices.Delete(col, j, j+1)
		if len(col) == 0 {
			f.columns = slices.Delete(f.columns, i, i+1)
		} else {
			f.columns[i] = col
		}
		return
	}
}

// Len returns the number of enemies left
func (f *Formation) Len() int {
	n := 0
	for _, col := range f.columns {
		n += len(col)
	}
	return n
}

func (f *Formation) IsEmpty() bool { return len(f.columns) == 0 }

// Draw sends every enemy to the draw sink
func (f *Formation) Draw(d Drawer) {
	for _, col := range f.columns {
		for _, e := range col {
			d.DrawEntity(e.Sprite(), e.Rect)
		}
	}
}
