package systems

import "github.com/1siamBot/coop-invaders/engine/entity"

// ProjectileSystem moves bullets and retires the ones that left the field
type ProjectileSystem struct {
	Top    int // HUD separator; bullets above it are gone
	Bottom int
}

// Update advances every live bullet and recycles the ones out of bounds.
// Returns how many were retired.
func (s *ProjectileSystem) Update(bullets *entity.BulletSet) int {
	gone := make(map[*entity.Bullet]struct{})
	for _, b := range bullets.Active() {
		b.Update()
		if b.Y < s.Top || b.Y > s.Bottom {
			gone[b] = struct{}{}
		}
	}
	bullets.Recycle(gone)
	return len(gone)
}
