package game

import (
	"github.com/simukka/topdown-shooter/common"
	"github.com/simukka/topdown-shooter/config"
)

// Intent is the normalized per-frame input the simulation consumes.
// DX and DY form a vector of length at most 1.
type Intent struct {
	DX, DY float64
	Fire   bool
}

// Bounded returns the intent with a non-finite direction zeroed and a
// direction longer than 1 scaled down to unit length.
func (in Intent) Bounded() Intent {
	if !common.Finite(in.DX) || !common.Finite(in.DY) {
		in.DX, in.DY = 0, 0
	}
	in.DX, in.DY = common.LimitLength(in.DX, in.DY)
	return in
}

// fireBoost is one active firerate pickup. Delta is what was actually
// taken off the fire rate, so expiry gives back exactly that much.
type fireBoost struct {
	Delta     float64
	Remaining float64
}

// Player holds the ship's state. There is exactly one per session.
type Player struct {
	X, Y     float64
	Size     float64
	Speed    float64 // units per second
	Cooldown float64 // ms until the next shot
	FireRate float64 // ms between shots
	HP       int
	MaxHP    int
	Alive    bool

	WeaponLevel int
	WeaponTimer float64 // seconds until the weapon drops one level

	Multiplier      float64 // score multiplier
	MultiplierTimer float64

	Shield      bool
	ShieldTimer float64

	boosts   []fireBoost
	powerups config.PowerupTuning
}

// NewPlayer creates a player reset to the given tuning.
func NewPlayer(t config.Tuning) *Player {
	p := &Player{}
	p.Reset(t)
	return p
}

// Reset puts the player back at the spawn point with full health and no
// active effects.
func (p *Player) Reset(t config.Tuning) {
	*p = Player{
		X:           Width / 2,
		Y:           Height - 80,
		Size:        t.Player.Size,
		Speed:       t.Player.Speed,
		FireRate:    t.Player.FireRateMs,
		HP:          t.Player.MaxHP,
		MaxHP:       t.Player.MaxHP,
		Alive:       true,
		WeaponLevel: MinWeaponLevel,
		Multiplier:  1,
		boosts:      p.boosts[:0],
		powerups:    t.Powerups,
	}
}

// GetPosition returns the player's world coordinates.
func (p *Player) GetPosition() (x, y float64) {
	return p.X, p.Y
}

// GetRadius returns the collision radius.
func (p *Player) GetRadius() float64 {
	return p.Size / 2
}

// Advance moves the player by the intent, counts down every timed effect
// and fires if the intent asks for it and the cooldown has elapsed.
// It returns the bullets fired this frame, or nil.
func (p *Player) Advance(dt float64, in Intent, rng *common.SeededRNG) []*Bullet {
	if !p.Alive {
		return nil
	}

	in = in.Bounded()
	half := p.Size / 2
	p.X = common.Clamp(p.X+in.DX*p.Speed*dt, half, Width-half)
	p.Y = common.Clamp(p.Y+in.DY*p.Speed*dt, half, Height-half)

	p.tickEffects(dt)

	var fired []*Bullet
	p.Cooldown -= dt * 1000
	if in.Fire && p.Cooldown <= 0 {
		p.Cooldown = p.FireRate
		fired = p.Fire(rng)
	}

	if p.WeaponTimer > 0 {
		p.WeaponTimer -= dt
		if p.WeaponTimer <= 0 {
			p.WeaponTimer = 0
			p.WeaponLevel = common.ClampInt(p.WeaponLevel-1, MinWeaponLevel, MaxWeaponLevel)
		}
	}
	return fired
}

func (p *Player) tickEffects(dt float64) {
	if p.Shield {
		p.ShieldTimer -= dt
		if p.ShieldTimer <= 0 {
			p.Shield = false
			p.ShieldTimer = 0
		}
	}

	if p.MultiplierTimer > 0 {
		p.MultiplierTimer -= dt
		if p.MultiplierTimer <= 0 {
			p.Multiplier = 1
			p.MultiplierTimer = 0
		}
	}

	kept := p.boosts[:0]
	for _, b := range p.boosts {
		b.Remaining -= dt
		if b.Remaining <= 0 {
			p.FireRate += b.Delta
			continue
		}
		kept = append(kept, b)
	}
	p.boosts = kept
}

// Fire emits the bullet pattern of the current weapon level from the nose
// of the ship. Only level 4 and above uses the RNG.
func (p *Player) Fire(rng *common.SeededRNG) []*Bullet {
	px, py := p.X, p.Y-p.Size/2

	switch {
	case p.WeaponLevel <= 1:
		return []*Bullet{
			NewBullet(px, py, 0, -720, OwnerPlayer),
		}
	case p.WeaponLevel == 2:
		return []*Bullet{
			NewBullet(px-10, py, -60, -700, OwnerPlayer),
			NewBullet(px+10, py, 60, -700, OwnerPlayer),
		}
	case p.WeaponLevel == 3:
		return []*Bullet{
			NewBullet(px, py, 0, -820, OwnerPlayer),
			NewBullet(px-14, py+4, -120, -720, OwnerPlayer),
			NewBullet(px+14, py+4, 120, -720, OwnerPlayer),
		}
	}

	// Burst: jittered and staggered
	out := make([]*Bullet, 0, 3)
	for i := 0; i < 3; i++ {
		out = append(out, NewBullet(
			px+rng.RandomFloat(-8, 8),
			py+float64(i)*2,
			rng.RandomFloat(-30, 30),
			-720-float64(i)*40,
			OwnerPlayer,
		))
	}
	return out
}

// Damage takes n hit points off the player, never going below zero.
// It returns true when the player has no hit points left.
func (p *Player) Damage(n int) bool {
	p.HP = common.ClampInt(p.HP-n, 0, p.MaxHP)
	return p.HP <= 0
}

// ConsumeShield drops an active shield. It returns false if there was none.
func (p *Player) ConsumeShield() bool {
	if !p.Shield {
		return false
	}
	p.Shield = false
	p.ShieldTimer = 0
	return true
}

// ApplyPowerup applies a pickup's effect once.
func (p *Player) ApplyPowerup(kind PowerupKind) {
	t := p.powerups
	switch kind {
	case PowerupHealth:
		p.HP = common.ClampInt(p.HP+t.HealAmount, 0, p.MaxHP)
	case PowerupFireRate:
		next := p.FireRate - t.FireRateStepMs
		if next < t.FireRateFloorMs {
			next = t.FireRateFloorMs
		}
		delta := p.FireRate - next
		if delta > 0 {
			p.FireRate = next
			p.boosts = append(p.boosts, fireBoost{Delta: delta, Remaining: t.FireRateSeconds})
		}
	case PowerupShield:
		p.Shield = true
		p.ShieldTimer = t.ShieldSeconds
	case PowerupWeapon:
		p.WeaponLevel = common.ClampInt(p.WeaponLevel+1, MinWeaponLevel, MaxWeaponLevel)
		p.WeaponTimer += t.WeaponSeconds
	case PowerupScore:
		p.Multiplier = t.Multiplier
		p.MultiplierTimer = t.MultiplierSeconds
	}
}

// FireBoosts returns the number of firerate pickups still active.
func (p *Player) FireBoosts() int {
	return len(p.boosts)
}
