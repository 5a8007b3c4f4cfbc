package game

// World bounds. The simulation always runs in these units; renderers scale.
const (
	Width  = 800
	Height = 600

	// MaxFrameDelta caps dt so a stalled tab cannot tunnel entities.
	MaxFrameDelta = 0.05
)

// Bullet constants
const (
	BulletSize = 6
	BulletLife = 2.2 // seconds

	// Bullets leave play this far outside the world.
	BulletMarginY = 60
	BulletMarginX = 80
)

// Enemy constants
const (
	// EnemyExitMargin is how far below the world an enemy may sink before despawning.
	EnemyExitMargin = 120

	EnemyBulletMinSpeed = 220
	EnemyBulletMaxSpeed = 340

	BossHPBase        = 18
	BossHPPerLevel    = 6
	BossScoreBase     = 500
	BossScorePerLevel = 200
	BossSpeed         = 18
	BossSpawnY        = -140

	BodyDamage        = 2 // enemy rams the player
	EnemyBulletDamage = 1
)

// Weapon constants
const (
	MinWeaponLevel = 1
	MaxWeaponLevel = 5
)

// Particle constants
const (
	ParticleGravity = 300 // downward acceleration, units/s²
)

// Powerup constants
const (
	PowerupSize       = 22
	PowerupSpeed      = 80
	PowerupExitMargin = 40
)

// HighscoreKey is the persistence key for the best score.
const HighscoreKey = "topdown_highscore"
