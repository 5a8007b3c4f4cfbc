package game

import "github.com/simukka/topdown-shooter/common"

// Particle is a cosmetic spark. It never collides.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64 // seconds remaining
	Size   float64
	Color  string
}

// Advance applies ballistic motion with gravity and burns lifetime.
func (p *Particle) Advance(dt float64) {
	p.X += p.VX * dt
	p.Y += p.VY * dt
	p.VY += ParticleGravity * dt
	p.Life -= dt
}

// Expired reports whether the particle has faded out.
func (p *Particle) Expired() bool {
	return p.Life <= 0
}

// Alpha returns the draw opacity, fading over the last second of life.
func (p *Particle) Alpha() float64 {
	return common.Clamp(p.Life, 0, 1)
}
