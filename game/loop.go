package game

import (
	"math"

	"github.com/simukka/topdown-shooter/audio"
)

// clampDelta bounds a frame delta to [0, MaxFrameDelta].
func clampDelta(dt float64) float64 {
	if math.IsNaN(dt) || dt < 0 {
		return 0
	}
	return math.Min(dt, MaxFrameDelta)
}

// Tick runs one animation frame at timestamp now (ms): it updates the frame
// statistics, derives dt from the previous frame, steps the simulation and
// hands the result to the renderer. The first frame after Start or Resume
// has dt = 0.
func (g *Game) Tick(now float64, in Intent) {
	g.Stats.UpdateFPS(now)

	if !g.hasLastFrame {
		g.LastFrameTime = now
		g.hasLastFrame = true
	}
	dt := (now - g.LastFrameTime) / 1000
	g.LastFrameTime = now

	g.Step(dt, in)

	if g.Renderer != nil {
		g.Renderer.Render(g)
	}
}

// Step advances the simulation by dt seconds. It does nothing unless a run
// is active and not paused. Entities removed during the step are compacted
// out of their pools before it returns.
func (g *Game) Step(dt float64, in Intent) {
	if !g.Running || g.Paused {
		return
	}
	dt = clampDelta(dt)
	defer g.endFrame()

	// HP can be zeroed outside a step.
	if g.Player.HP <= 0 {
		g.GameOver(ReasonHP)
		return
	}

	// Wave Spawning
	g.checkWaveSpawn(dt)

	// Level Progression
	g.checkLevelUp()

	// Player Input Processing
	g.UpdatePlayer(dt, in)

	// Bullet Update
	g.UpdateBullets(dt)

	// Enemy Update and Collisions
	if g.UpdateEnemies(dt) {
		return
	}

	// Enemy Bullets vs Player
	if g.UpdateEnemyBullets() {
		return
	}

	// Explosion Update
	g.UpdateParticles(dt)

	// Powerup Update
	g.UpdatePowerups(dt)
}

// endFrame drops released entities and pushes a pending HUD refresh.
func (g *Game) endFrame() {
	g.Bullets.Compact()
	g.EnemyBullets.Compact()
	g.Enemies.Compact()
	g.Particles.Compact()
	g.Powerups.Compact()

	if g.hudDirty {
		g.hudDirty = false
		g.UI.UpdateHUD(g.HUD())
	}
}

// UpdatePlayer moves the player and queues any bullets it fires.
func (g *Game) UpdatePlayer(dt float64, in Intent) {
	fired := g.Player.Advance(dt, in, g.GameRNG)
	if len(fired) == 0 {
		return
	}
	for _, b := range fired {
		if !g.Bullets.Add(b) {
			break
		}
	}
	g.playFire()
}

// UpdateBullets advances player and enemy bullets and drops expired ones.
func (g *Game) UpdateBullets(dt float64) {
	for _, pool := range []*Pool[Bullet]{g.Bullets, g.EnemyBullets} {
		pool.ForEachReverse(func(b *Bullet, i int) {
			b.Advance(dt)
			if b.Expired() {
				pool.Release(i)
			}
		})
	}
}

// PopulateBulletGrid indexes the live player bullets for this frame.
func (g *Game) PopulateBulletGrid() {
	g.BulletGrid.Clear()
	g.Bullets.ForEach(func(b *Bullet, i int) {
		g.BulletGrid.Insert(i, b)
	})
}

// UpdateEnemies advances every enemy from newest to oldest and resolves its
// exit, bullet hits and body collision with the player. It returns true if
// the run ended.
func (g *Game) UpdateEnemies(dt float64) bool {
	g.PopulateBulletGrid()
	px, py := g.Player.X, g.Player.Y

	for i := g.Enemies.Len() - 1; i >= 0; i-- {
		if g.Enemies.Released(i) {
			continue
		}
		e := g.Enemies.At(i)

		if b := e.Advance(dt, px, py, g.GameRNG); b != nil {
			g.EnemyBullets.Add(b)
		}

		if e.ExitedBottom() {
			if e.IsBoss {
				g.GameOver(ReasonBoss)
				return true
			}
			g.Enemies.Release(i)
			continue
		}

		if g.resolveBulletHit(e, i) {
			continue
		}

		if g.resolveBodyCollision(e, i) {
			return true
		}
	}
	return false
}

// resolveBulletHit applies at most one player bullet to the enemy: the
// newest live bullet overlapping it. It returns true if the enemy died.
func (g *Game) resolveBulletHit(e *Enemy, i int) bool {
	g.nearby = g.BulletGrid.Nearby(e.X, e.Y, g.nearby[:0])

	hit := -1
	for _, j := range g.nearby {
		if j <= hit || g.Bullets.Released(j) {
			continue
		}
		if Collides(e, g.Bullets.At(j)) {
			hit = j
		}
	}
	if hit < 0 {
		return false
	}

	b := g.Bullets.At(hit)
	g.Bullets.Release(hit)
	e.HP--
	g.Explode(b.X, b.Y, 6, Theme.HitSparkColor)

	if e.HP > 0 {
		return false
	}

	g.addScore(float64(e.ScoreValue) * g.Player.Multiplier)
	g.Explode(e.X, e.Y, math.Min(36, e.Size*0.8), Theme.KillColor)
	g.DropPowerup(e.X, e.Y)
	g.Enemies.Release(i)

	if e.IsBoss {
		g.Log.Debug().Int("level", g.Level).Int("score", e.ScoreValue).Msg("boss destroyed")
	}
	return true
}

// resolveBodyCollision handles an enemy touching the player. The enemy is
// destroyed either way; a shield absorbs the hit. It returns true if the
// run ended.
func (g *Game) resolveBodyCollision(e *Enemy, i int) bool {
	p := g.Player
	if !p.Alive || !Collides(e, p) {
		return false
	}

	g.Enemies.Release(i)

	if p.ConsumeShield() {
		g.Explode(p.X, p.Y, 18, Theme.ShieldHitColor)
		g.hudDirty = true
		return false
	}

	dead := p.Damage(BodyDamage)
	g.Explode(p.X, p.Y, 12, Theme.DamageColor)
	g.hudDirty = true
	if dead {
		g.GameOver(ReasonHP)
		return true
	}
	return false
}

// UpdateEnemyBullets resolves enemy bullets hitting the player. It returns
// true if the run ended.
func (g *Game) UpdateEnemyBullets() bool {
	p := g.Player
	if !p.Alive {
		return false
	}

	for i := g.EnemyBullets.Len() - 1; i >= 0; i-- {
		if g.EnemyBullets.Released(i) {
			continue
		}
		b := g.EnemyBullets.At(i)
		if !Collides(b, p) {
			continue
		}

		g.EnemyBullets.Release(i)
		g.hudDirty = true

		if p.ConsumeShield() {
			g.Explode(p.X, p.Y, 10, Theme.ShieldHitColor)
			continue
		}

		dead := p.Damage(EnemyBulletDamage)
		g.Explode(p.X, p.Y, 8, Theme.DamageColor)
		if dead {
			g.GameOver(ReasonHP)
			return true
		}
	}
	return false
}

// UpdateParticles advances particles and drops faded ones.
func (g *Game) UpdateParticles(dt float64) {
	g.Particles.ForEachReverse(func(p *Particle, i int) {
		p.Advance(dt)
		if p.Expired() {
			g.Particles.Release(i)
		}
	})
}

// UpdatePowerups advances pickups, drops the ones that fell out and applies
// the ones the player touches.
func (g *Game) UpdatePowerups(dt float64) {
	p := g.Player
	g.Powerups.ForEachReverse(func(pu *Powerup, i int) {
		pu.Advance(dt)
		if pu.Expired() {
			g.Powerups.Release(i)
			return
		}
		if !Collides(pu, p) {
			return
		}

		p.ApplyPowerup(pu.Kind)
		if pu.Kind == PowerupHealth {
			g.Explode(p.X, p.Y, 8, Theme.HealColor)
		}
		g.Sound.Play(audio.CuePickup, AudioPan(p.X), 1)
		g.Powerups.Release(i)
		g.hudDirty = true
		g.Log.Debug().Stringer("powerup", pu.Kind).Msg("powerup collected")
	})
}
