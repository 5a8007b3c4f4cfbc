package game

import (
	"math"

	"github.com/simukka/topdown-shooter/audio"
	"github.com/simukka/topdown-shooter/config"
)

// SpawnInterval returns the delay in ms between enemy waves. It shrinks
// with score and level and never drops below the configured floor.
func SpawnInterval(t config.SpawnTuning, score float64, level int) float64 {
	interval := t.BaseIntervalMs - score*t.ScoreFactor - float64(level)*t.LevelFactor
	return math.Max(t.MinIntervalMs, interval)
}

// WaveSize returns how many enemies the next wave holds.
func WaveSize(t config.SpawnTuning, score float64, level int) int {
	n := 1 + level/2 + int(math.Floor(score/t.ScorePerExtraEnemy))
	if n > t.MaxWave {
		n = t.MaxWave
	}
	if n < 1 {
		n = 1
	}
	return n
}

// PickEnemyKind maps a uniform roll in [0,1) to a wave member's kind:
// 70% basic, 20% shooter, 10% big.
func PickEnemyKind(r float64) EnemyKind {
	switch {
	case r < 0.7:
		return EnemyBasic
	case r < 0.9:
		return EnemyShooter
	default:
		return EnemyBig
	}
}

// SpawnEnemyWave adds count enemies above the top edge.
func (g *Game) SpawnEnemyWave(count int) {
	spawned := 0
	for i := 0; i < count; i++ {
		kind := PickEnemyKind(g.GameRNG.Random())
		st := StatsFor(kind)
		x := g.GameRNG.RandomFloat(st.SpawnMarginX, Width-st.SpawnMarginX)
		if !g.Enemies.Add(NewEnemy(x, st.SpawnY, kind, g.GameRNG)) {
			break
		}
		spawned++
	}
	g.Log.Debug().Int("count", spawned).Int("level", g.Level).Msg("wave spawned")
}

// SpawnBoss adds a boss: a big enemy scaled by the current level.
func (g *Game) SpawnBoss() {
	boss := NewEnemy(Width/2, BossSpawnY, EnemyBig, g.GameRNG)
	boss.HP = BossHPBase + g.Level*BossHPPerLevel
	boss.ScoreValue = BossScoreBase + g.Level*BossScorePerLevel
	boss.Speed = BossSpeed
	boss.IsBoss = true

	if !g.Enemies.Add(boss) {
		g.Log.Warn().Int("level", g.Level).Msg("boss dropped: enemy pool full")
		return
	}
	g.Log.Debug().Int("level", g.Level).Int("hp", boss.HP).Msg("boss spawned")
}

// DropPowerup rolls the drop chance and, on success, drops a random pickup
// at (x, y). It reports whether a pickup was dropped.
func (g *Game) DropPowerup(x, y float64) bool {
	if g.GameRNG.Random() > g.Tuning.Powerups.DropChance {
		return false
	}
	kind := PowerupKind(g.GameRNG.RandomInt(0, int(powerupKindCount)))
	return g.Powerups.Add(NewPowerup(x, y, kind))
}

// Explode emits a burst of particles at (x, y) and plays the explosion cue.
// power is the particle count; fractional counts round up.
func (g *Game) Explode(x, y, power float64, color string) {
	n := int(math.Ceil(power))
	for i := 0; i < n; i++ {
		a := g.GameRNG.RandomFloat(0, 2*math.Pi)
		s := g.GameRNG.RandomFloat(80, 320)
		p := &Particle{
			X:     x,
			Y:     y,
			VX:    math.Cos(a) * s,
			VY:    math.Sin(a) * s * 0.9,
			Life:  g.GameRNG.RandomFloat(0.4, 1.2),
			Size:  g.GameRNG.RandomFloat(2, 5),
			Color: color,
		}
		if !g.Particles.Add(p) {
			break
		}
	}
	g.Sound.Play(audio.CueExplosion, AudioPan(x), explosionVolume(n))
}

// checkWaveSpawn accumulates the spawn timer and spawns a wave when the
// current interval has elapsed.
func (g *Game) checkWaveSpawn(dt float64) {
	g.SpawnTimer += dt * 1000
	if g.SpawnTimer > SpawnInterval(g.Tuning.Spawn, g.Score, g.Level) {
		g.SpawnTimer = 0
		g.SpawnEnemyWave(WaveSize(g.Tuning.Spawn, g.Score, g.Level))
	}
}

// checkLevelUp advances level and wave once the score passes the level
// threshold, spawning a boss on every BossEvery-th level.
func (g *Game) checkLevelUp() {
	if g.Score <= float64(g.Level)*g.Tuning.Level.ScorePerLevel {
		return
	}
	g.Level++
	g.Wave++
	g.hudDirty = true
	g.Log.Debug().Int("level", g.Level).Int("wave", g.Wave).Msg("level up")

	if g.Level%g.Tuning.Level.BossEvery == 0 {
		g.SpawnBoss()
	}
}
