package entity

import "testing"

func TestBulletPoolReusesBullets(t *testing.T) {
	pool := &BulletPool{}
	b := pool.Acquire(100, 50, -6)
	if b.X != 100-BulletWidth/2 || b.Y != 50 || b.W != BulletWidth || b.H != BulletHeight {
		t.Fatalf("Bullet not centered on x: %+v", b.Rect)
	}
	b.OwnerPlayerID = 2
	pool.Release(b)
	if pool.Free() != 1 {
		t.Fatalf("Expected 1 pooled bullet, got %d", pool.Free())
	}

	again := pool.Acquire(10, 20, 4)
	if again != b {
		t.Error("Pool handed out a new bullet instead of the released one")
	}
	if again.OwnerPlayerID != 0 || again.Speed != 4 || again.Y != 20 {
		t.Errorf("Reused bullet kept stale fields: %+v", again)
	}
	if pool.Free() != 0 {
		t.Errorf("Expected empty pool, got %d", pool.Free())
	}
}

func TestBulletOwnerAndSide(t *testing.T) {
	tests := []struct {
		owner, speed int
		index        int
		enemy        bool
		sprite       SpriteType
	}{
		{1, -6, 0, false, SpriteBullet},
		{2, -6, 1, false, SpriteBullet},
		{0, -6, 0, false, SpriteBullet},
		{0, 4, 0, true, SpriteEnemyBullet},
	}
	for _, tt := range tests {
		b := &Bullet{Speed: tt.speed, OwnerPlayerID: tt.owner}
		if b.OwnerIndex() != tt.index || b.IsEnemy() != tt.enemy || b.Sprite() != tt.sprite {
			t.Errorf("owner=%d speed=%d: got index %d enemy %v sprite %v",
				tt.owner, tt.speed, b.OwnerIndex(), b.IsEnemy(), b.Sprite())
		}
	}
}

func TestBulletSetRecycle(t *testing.T) {
	set := NewBulletSet(nil)
	a := set.Fire(10, 10, -6)
	b := set.Fire(20, 10, -6)
	c := set.Fire(30, 10, 4)

	set.Recycle(map[*Bullet]struct{}{b: {}})
	if set.Len() != 2 {
		t.Fatalf("Expected 2 live bullets, got %d", set.Len())
	}
	if act := set.Active(); act[0] != a || act[1] != c {
		t.Errorf("Recycle broke firing order: %v", act)
	}
	if set.Pool.Free() != 1 {
		t.Errorf("Expected 1 pooled bullet, got %d", set.Pool.Free())
	}

	// A bullet is never both live and pooled
	for _, live := range set.Active() {
		if live == b {
			t.Error("Recycled bullet still live")
		}
	}

	set.Clear()
	if set.Len() != 0 || set.Pool.Free() != 3 {
		t.Errorf("Expected all 3 bullets pooled, got live=%d free=%d", set.Len(), set.Pool.Free())
	}
}
