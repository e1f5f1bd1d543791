package entity

const (
	EnemyWidth  = 24
	EnemyHeight = 16

	SpecialWidth  = 32
	SpecialHeight = 14
	SpecialStartX = -SpecialWidth
	SpecialStartY = 65
)

// EnemyKind selects an enemy's look and value
type EnemyKind uint8

const (
	EnemyA EnemyKind = iota
	EnemyB
	EnemyC
	EnemySpecial
)

var enemyValues = map[EnemyKind]struct{ points, coins int }{
	EnemyA:       {10, 1},
	EnemyB:       {20, 1},
	EnemyC:       {30, 1},
	EnemySpecial: {100, 5},
}

// EnemyShip is a formation member or the bonus ship
type EnemyShip struct {
	Rect
	Kind       EnemyKind
	PointValue int
	CoinValue  int

	destroyed bool
}

// NewEnemyShip creates an enemy of the given kind at (x, y)
func NewEnemyShip(x, y int, kind EnemyKind) *EnemyShip {
	v := enemyValues[kind]
	e := &EnemyShip{
		Rect:       Rect{X: x, Y: y, W: EnemyWidth, H: EnemyHeight},
		Kind:       kind,
		PointValue: v.points,
		CoinValue:  v.coins,
	}
	if kind == EnemySpecial {
		e.W, e.H = SpecialWidth, SpecialHeight
	}
	return e
}

// NewSpecialShip creates the bonus ship just off the left edge
func NewSpecialShip() *EnemyShip {
	return NewEnemyShip(SpecialStartX, SpecialStartY, EnemySpecial)
}

func (e *EnemyShip) Move(dx, dy int) {
	e.X += dx
	e.Y += dy
}

func (e *EnemyShip) Destroy() { e.destroyed = true }

func (e *EnemyShip) IsDestroyed() bool { return e.destroyed }

func (e *EnemyShip) Sprite() SpriteType {
	if e.destroyed {
		return SpriteExplosion
	}
	switch e.Kind {
	case EnemyB:
		return SpriteEnemyB
	case EnemyC:
		return SpriteEnemyC
	case EnemySpecial:
		return SpriteEnemySpecial
	}
	return SpriteEnemyA
}
