package entity

const (
	BulletWidth  = 6
	BulletHeight = 10
)

// Bullet is a projectile moving vertically. Positive speed means it was fired
// by an enemy.
type Bullet struct {
	Rect
	Speed int

	// OwnerPlayerID is the firing ship's PlayerID (1 or 2); 0 when unset
	OwnerPlayerID int
}

// Update moves the bullet one tick
func (b *Bullet) Update() {
	b.Y += b.Speed
}

// IsEnemy reports whether the bullet was fired by an enemy
func (b *Bullet) IsEnemy() bool { return b.Speed > 0 }

// OwnerIndex maps the owner id to a player slot, defaulting to player 0
func (b *Bullet) OwnerIndex() int {
	if b.OwnerPlayerID == 2 {
		return 1
	}
	return 0
}

func (b *Bullet) Sprite() SpriteType {
	if b.IsEnemy() {
		return SpriteEnemyBullet
	}
	return SpriteBullet
}

// BulletPool is a free list of spent bullets ready for reuse
type BulletPool struct {
	free []*Bullet
}

// Acquire returns a bullet centered on x with its top edge at y
func (p *BulletPool) Acquire(x, y, speed int) *Bullet {
	var b *Bullet
	if n := len(p.free); n > 0 {
		b = p.free[n-1]
		p.free[n-1] = nil
		p.free = p.free[:n-1]
	} else {
		b = &Bullet{}
	}
	*b = Bullet{
		Rect:  Rect{X: x - BulletWidth/2, Y: y, W: BulletWidth, H: BulletHeight},
		Speed: speed,
	}
	return b
}

// Release hands bullets back to the pool
func (p *BulletPool) Release(bullets ...*Bullet) {
	p.free = append(p.free, bullets...)
}

// Free returns the number of pooled bullets
func (p *BulletPool) Free() int { return len(p.free) }

// BulletSet is the collection of live bullets backed by a pool
type BulletSet struct {
	Pool   *BulletPool
	active []*Bullet
}

func NewBulletSet(pool *BulletPool) *BulletSet {
	if pool == nil {
		pool = &BulletPool{}
	}
	return &BulletSet{Pool: pool}
}

// Fire takes a bullet from the pool and makes it live
func (s *BulletSet) Fire(x, y, speed int) *Bullet {
	b := s.Pool.Acquire(x, y, speed)
	s.active = append(s.active, b)
	return b
}

// Active returns the live bullets in firing order. The slice must not be
// kept across a Recycle.
func (s *BulletSet) Active() []*Bullet { return s.active }

func (s *BulletSet) Len() int { return len(s.active) }

// Recycle removes the marked bullets from the live set and returns them to
// the pool, so no bullet is ever both live and pooled
func (s *BulletSet) Recycle(marked map[*Bullet]struct{}) {
	if len(marked) == 0 {
		return
	}
	kept := s.active[:0]
	for _, b := range s.active {
		if _, ok := marked[b]; ok {
			s.Pool.Release(b)
			continue
		}
		kept = append(kept, b)
	}
	for i := len(kept); i < len(s.active); i++ {
		s.active[i] = nil
	}
	s.active = kept
}

// Clear recycles every live bullet
func (s *BulletSet) Clear() {
	s.Pool.Release(s.active...)
	for i := range s.active {
		s.active[i] = nil
	}
	s.active = s.active[:0]
}
