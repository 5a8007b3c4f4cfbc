package game

// Owner tells which side fired a bullet.
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

func (o Owner) String() string {
	if o == OwnerEnemy {
		return "enemy"
	}
	return "player"
}

// Bullet is a projectile fired by the player or by a shooter enemy.
type Bullet struct {
	X, Y   float64 // Position
	VX, VY float64 // Velocity, units per second
	Size   float64
	Life   float64 // Seconds remaining
	Owner  Owner
}

// NewBullet creates a bullet with the stock size and lifetime.
func NewBullet(x, y, vx, vy float64, owner Owner) *Bullet {
	return &Bullet{
		X:     x,
		Y:     y,
		VX:    vx,
		VY:    vy,
		Size:  BulletSize,
		Life:  BulletLife,
		Owner: owner,
	}
}

// GetPosition returns the bullet's world coordinates.
func (b *Bullet) GetPosition() (x, y float64) {
	return b.X, b.Y
}

// GetRadius returns the collision radius.
func (b *Bullet) GetRadius() float64 {
	return b.Size / 2
}

// Advance integrates the bullet's position and burns its lifetime.
func (b *Bullet) Advance(dt float64) {
	b.X += b.VX * dt
	b.Y += b.VY * dt
	b.Life -= dt
}

// Expired reports whether the bullet ran out of life or left the world
// by more than the bullet margin.
func (b *Bullet) Expired() bool {
	return b.Life <= 0 ||
		b.Y < -BulletMarginY || b.Y > Height+BulletMarginY ||
		b.X < -BulletMarginX || b.X > Width+BulletMarginX
}

// AudioPan returns a pan value (-1.0 to 1.0) based on the X position.
// Left edge = -1.0, center = 0.0, right edge = 1.0
func (b *Bullet) AudioPan() float64 {
	return AudioPan(b.X)
}

// AudioPan maps a world X coordinate to stereo pan.
func AudioPan(x float64) float64 {
	p := (x/Width)*2 - 1
	if p < -1 {
		return -1
	}
	if p > 1 {
		return 1
	}
	return p
}
