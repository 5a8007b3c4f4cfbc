package game

import (
	"math"

	"github.com/simukka/topdown-shooter/common"
)

// EnemyKind is the closed set of enemy behaviours.
type EnemyKind int

const (
	EnemyBasic EnemyKind = iota
	EnemyShooter
	EnemyBig
)

// EnemyKindNames maps EnemyKind to display names for logs and the UI
var EnemyKindNames = map[EnemyKind]string{
	EnemyBasic:   "basic",
	EnemyShooter: "shooter",
	EnemyBig:     "big",
}

func (k EnemyKind) String() string {
	if name, ok := EnemyKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// EnemyStats holds the per-kind base values an enemy is created with.
type EnemyStats struct {
	Size               float64
	SpeedMin, SpeedMax float64
	HP                 int
	Score              int
	SpawnY             float64 // y of a fresh wave member, above the world
	SpawnMarginX       float64 // keep this far from the side edges
}

// Standard enemy configurations
var enemyStats = map[EnemyKind]EnemyStats{
	EnemyBasic: {
		Size: 28, SpeedMin: 40, SpeedMax: 95, HP: 1, Score: 10,
		SpawnY: -40, SpawnMarginX: 40,
	},
	EnemyShooter: {
		Size: 36, SpeedMin: 35, SpeedMax: 70, HP: 2, Score: 30,
		SpawnY: -80, SpawnMarginX: 60,
	},
	EnemyBig: {
		Size: 48, SpeedMin: 18, SpeedMax: 45, HP: 6, Score: 120,
		SpawnY: -120, SpawnMarginX: 80,
	},
}

// StatsFor returns the base values of an enemy kind.
func StatsFor(kind EnemyKind) EnemyStats {
	return enemyStats[kind]
}

// Enemy represents an enemy entity.
type Enemy struct {
	X, Y       float64
	Kind       EnemyKind
	Size       float64
	Speed      float64
	HP         int
	ScoreValue int
	IsBoss     bool
	ShootTimer float64 // seconds until a shooter fires
	Angle      float64 // phase offset of the drift
	T          float64 // seconds alive
}

// NewEnemy creates an enemy of the given kind at (x, y).
func NewEnemy(x, y float64, kind EnemyKind, rng *common.SeededRNG) *Enemy {
	st := StatsFor(kind)
	return &Enemy{
		X:          x,
		Y:          y,
		Kind:       kind,
		Size:       st.Size,
		Speed:      rng.RandomFloat(st.SpeedMin, st.SpeedMax),
		HP:         st.HP,
		ScoreValue: st.Score,
		ShootTimer: rng.RandomFloat(1.2, 3.0),
		Angle:      rng.RandomFloat(0, 2*math.Pi),
	}
}

// GetPosition returns the enemy's world coordinates.
func (e *Enemy) GetPosition() (x, y float64) {
	return e.X, e.Y
}

// GetRadius returns the collision radius.
func (e *Enemy) GetRadius() float64 {
	return e.Size / 2
}

// AudioPan returns a pan value (-1.0 to 1.0) based on the enemy's X position.
func (e *Enemy) AudioPan() float64 {
	return AudioPan(e.X)
}

// Advance moves the enemy by its kind's motion rule. A shooter whose timer
// runs out fires one bullet at (targetX, targetY) and returns it.
func (e *Enemy) Advance(dt, targetX, targetY float64, rng *common.SeededRNG) *Bullet {
	e.T += dt

	switch e.Kind {
	case EnemyBasic:
		e.Y += e.Speed * dt
		e.X += math.Sin(e.Y/30+e.Angle) * 14 * dt
	case EnemyBig:
		e.Y += e.Speed * dt * 0.6
		e.X += math.Sin(e.T*0.4+e.Angle) * 26 * dt
	case EnemyShooter:
		e.Y += math.Cos(e.T*0.6+e.Angle) * 10 * dt
		e.X += math.Sin(e.T*0.8+e.Angle) * 18 * dt

		e.ShootTimer -= dt
		if e.ShootTimer <= 0 {
			e.ShootTimer = rng.RandomFloat(1.0, 2.2)
			return e.Fire(targetX, targetY, rng)
		}
	}
	return nil
}

// Fire creates an enemy bullet aimed at (targetX, targetY).
// A target sitting exactly on the enemy yields a bullet at rest.
func (e *Enemy) Fire(targetX, targetY float64, rng *common.SeededRNG) *Bullet {
	dx, dy := common.Normalize(targetX-e.X, targetY-e.Y)
	speed := rng.RandomFloat(EnemyBulletMinSpeed, EnemyBulletMaxSpeed)
	return NewBullet(e.X, e.Y, dx*speed, dy*speed, OwnerEnemy)
}

// ExitedBottom reports whether the enemy sank past the bottom margin.
func (e *Enemy) ExitedBottom() bool {
	return e.Y > Height+EnemyExitMargin
}

// TargetAngle returns the angle from the enemy to a target in radians.
func (e *Enemy) TargetAngle(targetX, targetY float64) float64 {
	return CalculateTargetAngle(e.X, e.Y, targetX, targetY)
}

// CalculateTargetAngle returns the angle from src to target in radians.
func CalculateTargetAngle(srcX, srcY, targetX, targetY float64) float64 {
	return math.Atan2(targetY-srcY, targetX-srcX)
}
