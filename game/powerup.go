package game

// PowerupKind is the closed set of pickup effects.
type PowerupKind int

const (
	PowerupHealth PowerupKind = iota
	PowerupFireRate
	PowerupShield
	PowerupWeapon
	PowerupScore

	powerupKindCount
)

var powerupNames = [...]string{
	PowerupHealth:   "health",
	PowerupFireRate: "firerate",
	PowerupShield:   "shield",
	PowerupWeapon:   "weapon",
	PowerupScore:    "score",
}

func (k PowerupKind) String() string {
	if k < 0 || k >= powerupKindCount {
		return "unknown"
	}
	return powerupNames[k]
}

// Powerup is a falling pickup dropped by a destroyed enemy.
type Powerup struct {
	X, Y  float64
	Kind  PowerupKind
	Size  float64
	Speed float64
}

// NewPowerup creates a pickup of the given kind at (x, y).
func NewPowerup(x, y float64, kind PowerupKind) *Powerup {
	return &Powerup{
		X:     x,
		Y:     y,
		Kind:  kind,
		Size:  PowerupSize,
		Speed: PowerupSpeed,
	}
}

// GetPosition returns the pickup's world coordinates.
func (p *Powerup) GetPosition() (x, y float64) {
	return p.X, p.Y
}

// GetRadius returns the collision radius.
func (p *Powerup) GetRadius() float64 {
	return p.Size / 2
}

// Advance lets the pickup fall.
func (p *Powerup) Advance(dt float64) {
	p.Y += p.Speed * dt
}

// Expired reports whether the pickup fell out of the world.
func (p *Powerup) Expired() bool {
	return p.Y > Height+PowerupExitMargin
}
