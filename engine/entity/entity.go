package entity

// Rect is an axis-aligned bounding box in screen pixels
type Rect struct {
	X, Y int
	W, H int
}

// CenterX returns the horizontal center using integer half width
func (r Rect) CenterX() int { return r.X + r.W/2 }

// CenterY returns the vertical center using integer half height
func (r Rect) CenterY() int { return r.Y + r.H/2 }

// SpriteType tells the draw sink what an entity looks like
type SpriteType uint8

const (
	SpriteShip SpriteType = iota
	SpriteShipDestroyed
	SpriteBullet
	SpriteEnemyBullet
	SpriteEnemyA
	SpriteEnemyB
	SpriteEnemyC
	SpriteEnemySpecial
	SpriteExplosion
)

func (s SpriteType) String() string {
	switch s {
	case SpriteShip:
		return "ship"
	case SpriteShipDestroyed:
		return "ship-destroyed"
	case SpriteBullet:
		return "bullet"
	case SpriteEnemyBullet:
		return "enemy-bullet"
	case SpriteEnemyA:
		return "enemy-a"
	case SpriteEnemyB:
		return "enemy-b"
	case SpriteEnemyC:
		return "enemy-c"
	case SpriteEnemySpecial:
		return "enemy-special"
	case SpriteExplosion:
		return "explosion"
	}
	return "unknown"
}

// Drawer is the part of the draw sink entities need
type Drawer interface {
	DrawEntity(sprite SpriteType, r Rect)
}
