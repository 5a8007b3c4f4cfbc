package game

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/simukka/topdown-shooter/audio"
	"github.com/simukka/topdown-shooter/config"
	"github.com/simukka/topdown-shooter/store"
)

const frame = 1.0 / 60

func TestNewGame_Defaults(t *testing.T) {
	g, err := NewGame(Options{})
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}

	if g.Phase() != PhaseIdle {
		t.Errorf("Expected idle, got %s", g.Phase())
	}
	if g.Highscore != 0 {
		t.Errorf("Expected highscore 0, got %d", g.Highscore)
	}
	if g.Level != 1 || g.Wave != 1 {
		t.Errorf("Expected level 1 wave 1, got %d/%d", g.Level, g.Wave)
	}

	// Nop collaborators accept calls
	g.Start()
	g.Step(frame, Intent{Fire: true})
	if g.Bullets.ActiveCount() != 1 {
		t.Errorf("Expected one bullet fired, got %d", g.Bullets.ActiveCount())
	}
}

func TestNewGame_InvalidTuning(t *testing.T) {
	tuning := config.Default()
	tuning.Level.BossEvery = 0

	if _, err := NewGame(Options{Tuning: &tuning}); err == nil {
		t.Error("Expected error for invalid tuning")
	}
}

func TestNewGame_LoadsHighscore(t *testing.T) {
	tests := []struct {
		name   string
		stored float64
		want   int
	}{
		{"stored", 1234, 1234},
		{"fractional", 99.9, 99},
		{"negative", -5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := store.NewMemory()
			s.Set(HighscoreKey, tt.stored)

			g, err := NewGame(Options{Store: s})
			if err != nil {
				t.Fatalf("NewGame failed: %v", err)
			}
			if g.Highscore != tt.want {
				t.Errorf("Expected highscore %d, got %d", tt.want, g.Highscore)
			}
		})
	}
}

func TestStart_ResetsSession(t *testing.T) {
	r := newRig(t, nil)
	g := r.g

	g.Score = 300
	g.Level = 4
	g.Wave = 6
	g.Player.HP = 1
	g.Player.X = 10
	r.addEnemy(100, 100, 1)
	r.addBullet(100, 300)
	g.EnemyBullets.Add(NewBullet(1, 1, 0, 0, OwnerEnemy))
	g.Powerups.Add(NewPowerup(1, 1, PowerupHealth))
	g.Explode(1, 1, 4, Theme.KillColor)

	g.GameOver(ReasonHP)
	g.Start()

	if g.Phase() != PhaseRunning {
		t.Fatalf("Expected running, got %s", g.Phase())
	}
	if g.Score != 0 || g.Level != 1 || g.Wave != 1 || g.SpawnTimer != 0 {
		t.Errorf("Expected fresh counters, got score=%f level=%d wave=%d timer=%f",
			g.Score, g.Level, g.Wave, g.SpawnTimer)
	}
	for name, n := range map[string]int{
		"bullets":       g.Bullets.ActiveCount(),
		"enemy bullets": g.EnemyBullets.ActiveCount(),
		"enemies":       g.Enemies.ActiveCount(),
		"particles":     g.Particles.ActiveCount(),
		"powerups":      g.Powerups.ActiveCount(),
	} {
		if n != 0 {
			t.Errorf("Expected no %s, got %d", name, n)
		}
	}
	if g.Player.HP != g.Player.MaxHP || g.Player.X != Width/2 || !g.Player.Alive {
		t.Errorf("Expected player reset, got hp=%d x=%f alive=%v", g.Player.HP, g.Player.X, g.Player.Alive)
	}
	if g.Highscore != 300 {
		t.Errorf("Expected highscore 300 kept, got %d", g.Highscore)
	}
}

func TestStart_WhileRunningIsNoop(t *testing.T) {
	r := newRig(t, nil)
	g := r.g

	id := g.RunID
	g.Score = 42
	g.Start()

	if g.RunID != id || g.Score != 42 {
		t.Error("Expected Start to be ignored while running")
	}
}

func TestStart_NotifiesUI(t *testing.T) {
	r := newRig(t, nil)

	if len(r.ui.paused) != 1 || r.ui.paused[0] {
		t.Errorf("Expected overlay hidden once, got %v", r.ui.paused)
	}
	if len(r.ui.huds) != 1 {
		t.Fatalf("Expected one HUD update, got %d", len(r.ui.huds))
	}
	h := r.ui.huds[0]
	if h.HP != 5 || h.MaxHP != 5 || h.Score != 0 || h.WeaponLevel != 1 || h.Multiplier != 1 {
		t.Errorf("Unexpected HUD %+v", h)
	}
}

func TestPause_BlocksStep(t *testing.T) {
	r := newRig(t, nil)
	g := r.g
	e := r.addEnemy(200, 100, 1)

	g.Pause()
	if g.Phase() != PhasePaused {
		t.Fatalf("Expected paused, got %s", g.Phase())
	}
	g.Step(frame, Intent{DX: 1, Fire: true})

	if e.Y != 100 || g.Player.X != Width/2 || g.Bullets.ActiveCount() != 0 {
		t.Error("Expected no simulation while paused")
	}

	g.TogglePause()
	if g.Phase() != PhaseRunning {
		t.Fatalf("Expected running, got %s", g.Phase())
	}
	g.Step(frame, Intent{DX: 1})
	if e.Y == 100 || g.Player.X == Width/2 {
		t.Error("Expected simulation after resume")
	}

	want := []bool{false, true, false}
	if len(r.ui.paused) != len(want) {
		t.Fatalf("Expected pause notifications %v, got %v", want, r.ui.paused)
	}
	for i := range want {
		if r.ui.paused[i] != want[i] {
			t.Errorf("Notification %d: expected %v, got %v", i, want[i], r.ui.paused[i])
		}
	}
}

func TestPause_OnlyWhileRunning(t *testing.T) {
	g, err := NewGame(Options{})
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}

	g.Pause()
	if g.Paused || g.Phase() != PhaseIdle {
		t.Error("Expected pause ignored while idle")
	}
}

func TestStep_IdleIsNoop(t *testing.T) {
	g, err := NewGame(Options{Seed: 1})
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}

	for i := 0; i < 200; i++ {
		g.Step(frame, Intent{Fire: true})
	}
	if g.Enemies.ActiveCount() != 0 || g.Bullets.ActiveCount() != 0 {
		t.Error("Expected no simulation while idle")
	}
}

func TestBulletHit_NewestBulletWins(t *testing.T) {
	r := newRig(t, func(c *config.Tuning) { c.Powerups.DropChance = 0 })
	g := r.g

	r.addEnemy(200, 200, 1)
	older := r.addBullet(200, 200)
	r.addBullet(200, 200)

	g.Step(frame, Intent{})

	if g.Enemies.ActiveCount() != 0 {
		t.Fatalf("Expected enemy destroyed, got %d", g.Enemies.ActiveCount())
	}
	if g.Score != 10 {
		t.Errorf("Expected score 10, got %f", g.Score)
	}
	if g.Bullets.ActiveCount() != 1 || g.Bullets.At(0) != older {
		t.Error("Expected the older bullet to survive")
	}
}

func TestBulletHit_OneBulletPerFrame(t *testing.T) {
	r := newRig(t, nil)
	g := r.g

	e := r.addEnemy(200, 200, 3)
	r.addBullet(200, 200)
	r.addBullet(200, 200)

	g.Step(frame, Intent{})

	if e.HP != 2 {
		t.Errorf("Expected hp 2, got %d", e.HP)
	}
	if g.Enemies.ActiveCount() != 1 || g.Bullets.ActiveCount() != 1 {
		t.Errorf("Expected 1 enemy and 1 bullet, got %d and %d",
			g.Enemies.ActiveCount(), g.Bullets.ActiveCount())
	}
	if g.Score != 0 {
		t.Errorf("Expected no score for a hit, got %f", g.Score)
	}
	if r.sound.count(audio.CueExplosion) != 1 {
		t.Errorf("Expected one hit spark, got %d", r.sound.count(audio.CueExplosion))
	}
}

func TestBulletHit_Multiplier(t *testing.T) {
	r := newRig(t, func(c *config.Tuning) { c.Powerups.DropChance = 0 })
	g := r.g
	g.Player.ApplyPowerup(PowerupScore)

	r.addEnemy(200, 200, 1)
	r.addBullet(200, 200)
	g.Step(frame, Intent{})

	if g.Score != 20 {
		t.Errorf("Expected doubled score 20, got %f", g.Score)
	}
	if last := r.ui.huds[len(r.ui.huds)-1]; last.Score != 20 {
		t.Errorf("Expected HUD refreshed with score 20, got %d", last.Score)
	}
}

func TestBodyCollision(t *testing.T) {
	tests := []struct {
		name       string
		shield     bool
		wantHP     int
		wantShield bool
	}{
		{"unshielded", false, 3, false},
		{"shielded", true, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig(t, nil)
			g := r.g
			if tt.shield {
				g.Player.ApplyPowerup(PowerupShield)
			}

			r.addEnemy(g.Player.X, g.Player.Y, 6)
			g.Step(frame, Intent{})

			if g.Enemies.ActiveCount() != 0 {
				t.Error("Expected rammed enemy destroyed")
			}
			if g.Player.HP != tt.wantHP {
				t.Errorf("Expected hp %d, got %d", tt.wantHP, g.Player.HP)
			}
			if g.Player.Shield != tt.wantShield {
				t.Errorf("Expected shield %v, got %v", tt.wantShield, g.Player.Shield)
			}
			if g.Score != 0 {
				t.Errorf("Expected no score for ramming, got %f", g.Score)
			}
			if g.Phase() != PhaseRunning {
				t.Errorf("Expected still running, got %s", g.Phase())
			}
		})
	}
}

func TestBodyCollision_KilledEnemySkipsBody(t *testing.T) {
	r := newRig(t, func(c *config.Tuning) { c.Powerups.DropChance = 0 })
	g := r.g

	r.addEnemy(g.Player.X, g.Player.Y, 1)
	r.addBullet(g.Player.X, g.Player.Y)
	g.Step(frame, Intent{})

	if g.Player.HP != g.Player.MaxHP {
		t.Errorf("Expected no body damage from a destroyed enemy, got hp %d", g.Player.HP)
	}
	if g.Score != 10 {
		t.Errorf("Expected kill score 10, got %f", g.Score)
	}
}

func TestEnemyBullets(t *testing.T) {
	tests := []struct {
		name       string
		shield     bool
		wantHP     int
		wantShield bool
	}{
		{"unshielded", false, 4, false},
		{"shielded", true, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig(t, nil)
			g := r.g
			if tt.shield {
				g.Player.ApplyPowerup(PowerupShield)
			}

			g.EnemyBullets.Add(NewBullet(g.Player.X, g.Player.Y, 0, 0, OwnerEnemy))
			g.Step(frame, Intent{})

			if g.EnemyBullets.ActiveCount() != 0 {
				t.Error("Expected enemy bullet consumed")
			}
			if g.Player.HP != tt.wantHP {
				t.Errorf("Expected hp %d, got %d", tt.wantHP, g.Player.HP)
			}
			if g.Player.Shield != tt.wantShield {
				t.Errorf("Expected shield %v, got %v", tt.wantShield, g.Player.Shield)
			}
		})
	}
}

func TestEnemyBullets_Lethal(t *testing.T) {
	r := newRig(t, nil)
	g := r.g
	g.Player.HP = 1

	g.EnemyBullets.Add(NewBullet(g.Player.X, g.Player.Y, 0, 0, OwnerEnemy))
	g.EnemyBullets.Add(NewBullet(g.Player.X, g.Player.Y, 0, 0, OwnerEnemy))
	g.Step(frame, Intent{})

	if g.Phase() != PhaseIdle || g.OverReason != ReasonHP {
		t.Errorf("Expected game over by hp, got %s %q", g.Phase(), g.OverReason)
	}
	if g.Player.HP != 0 {
		t.Errorf("Expected hp 0, got %d", g.Player.HP)
	}
	if len(r.ui.gameOvers) != 1 {
		t.Errorf("Expected one game over notification, got %d", len(r.ui.gameOvers))
	}
}

func TestGameOver_SingleHUDOnLethalFrame(t *testing.T) {
	r := newRig(t, nil)
	g := r.g
	g.Player.HP = 1
	before := len(r.ui.huds)

	g.EnemyBullets.Add(NewBullet(g.Player.X, g.Player.Y, 0, 0, OwnerEnemy))
	g.Step(frame, Intent{})

	if got := len(r.ui.huds) - before; got != 1 {
		t.Fatalf("Expected one HUD update on the lethal frame, got %d", got)
	}
	if last := r.ui.huds[len(r.ui.huds)-1]; last.HP != 0 {
		t.Errorf("Expected final HUD hp 0, got %d", last.HP)
	}

	g.Step(frame, Intent{})
	if got := len(r.ui.huds) - before; got != 1 {
		t.Errorf("Expected no HUD update after game over, got %d", got)
	}
}

func TestGameOver_Highscore(t *testing.T) {
	tests := []struct {
		name       string
		previous   int
		score      float64
		want       int
		wantStored float64
	}{
		{"new best", 100, 123.7, 123, 123},
		{"not beaten", 500, 123.7, 500, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig(t, nil)
			g := r.g
			g.Highscore = tt.previous
			g.Score = tt.score
			g.Player.HP = 2

			r.addEnemy(g.Player.X, g.Player.Y, 6)
			g.Step(frame, Intent{})

			if g.Phase() != PhaseIdle || g.OverReason != ReasonHP {
				t.Fatalf("Expected game over by hp, got %s %q", g.Phase(), g.OverReason)
			}
			if g.Highscore != tt.want {
				t.Errorf("Expected highscore %d, got %d", tt.want, g.Highscore)
			}
			if got := r.store.Get(HighscoreKey); got != tt.wantStored {
				t.Errorf("Expected stored %f, got %f", tt.wantStored, got)
			}
			if len(r.ui.gameOvers) != 1 {
				t.Fatalf("Expected one game over notification, got %d", len(r.ui.gameOvers))
			}
			if got := r.ui.gameOvers[0]; got.score != 123 || got.highscore != tt.want {
				t.Errorf("Expected game over (123, %d), got %+v", tt.want, got)
			}
		})
	}
}

func TestGameOver_ZeroHPAtFrameStart(t *testing.T) {
	r := newRig(t, nil)
	g := r.g
	r.addEnemy(100, 100, 1)
	g.Player.HP = 0

	g.Step(frame, Intent{})

	if g.Phase() != PhaseIdle {
		t.Fatalf("Expected idle, got %s", g.Phase())
	}
	if e := g.Enemies.At(0); e.Y != 100 {
		t.Error("Expected no simulation on the game over frame")
	}

	g.GameOver(ReasonBoss)
	if len(r.ui.gameOvers) != 1 || g.OverReason != ReasonHP {
		t.Error("Expected GameOver ignored once idle")
	}
}

func TestGameOver_BossEscapes(t *testing.T) {
	r := newRig(t, nil)
	g := r.g
	g.Level = 3
	g.SpawnBoss()
	boss := g.Enemies.At(0)
	boss.Y = Height + EnemyExitMargin - 0.1

	g.Step(0.05, Intent{})

	if g.Phase() != PhaseIdle || g.OverReason != ReasonBoss {
		t.Errorf("Expected game over by boss, got %s %q", g.Phase(), g.OverReason)
	}
}

func TestEnemyExit_Regular(t *testing.T) {
	r := newRig(t, nil)
	g := r.g
	e := r.addEnemy(100, Height+EnemyExitMargin-0.1, 1)
	e.Speed = 90

	g.Step(0.05, Intent{})

	if g.Enemies.ActiveCount() != 0 {
		t.Error("Expected enemy dropped past the bottom margin")
	}
	if g.Phase() != PhaseRunning || g.Player.HP != g.Player.MaxHP {
		t.Error("Expected no penalty for a regular enemy leaving")
	}
}

func TestGameOver_StoreFailure(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	g, err := NewGame(Options{
		Seed:   3,
		Store:  failingStore{store.NewMemory()},
		Logger: &logger,
	})
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	g.Start()
	g.Score = 50
	g.GameOver(ReasonHP)

	if g.Highscore != 50 {
		t.Errorf("Expected in-memory highscore 50, got %d", g.Highscore)
	}
	if !strings.Contains(buf.String(), "highscore not saved") {
		t.Errorf("Expected a warning in the log, got %s", buf.String())
	}
	if !strings.Contains(buf.String(), `"run":"`+g.RunID+`"`) {
		t.Error("Expected run id on session log lines")
	}
}

func TestPowerupPickup(t *testing.T) {
	r := newRig(t, nil)
	g := r.g

	g.Powerups.Add(NewPowerup(g.Player.X, g.Player.Y, PowerupShield))
	g.Powerups.Add(NewPowerup(100, 100, PowerupWeapon))
	g.Step(frame, Intent{})

	if !g.Player.Shield {
		t.Error("Expected shield from pickup")
	}
	if g.Player.WeaponLevel != 1 {
		t.Error("Expected distant pickup left alone")
	}
	if g.Powerups.ActiveCount() != 1 {
		t.Errorf("Expected one pickup left, got %d", g.Powerups.ActiveCount())
	}
	if r.sound.count(audio.CuePickup) != 1 {
		t.Errorf("Expected one pickup cue, got %d", r.sound.count(audio.CuePickup))
	}
	if last := r.ui.huds[len(r.ui.huds)-1]; !last.Shield {
		t.Error("Expected HUD to show the shield")
	}
}

func TestPowerupPickup_HealthSparkles(t *testing.T) {
	r := newRig(t, nil)
	g := r.g
	g.Player.HP = 2

	g.Powerups.Add(NewPowerup(g.Player.X, g.Player.Y, PowerupHealth))
	g.Step(frame, Intent{})

	if g.Player.HP != 4 {
		t.Errorf("Expected hp 4, got %d", g.Player.HP)
	}
	if g.Particles.ActiveCount() != 8 {
		t.Errorf("Expected 8 heal particles, got %d", g.Particles.ActiveCount())
	}
}

func TestFire_PlaysCue(t *testing.T) {
	r := newRig(t, nil)
	g := r.g
	g.Player.WeaponLevel = 3

	g.Step(frame, Intent{Fire: true})

	if g.Bullets.ActiveCount() != 3 {
		t.Errorf("Expected 3 bullets, got %d", g.Bullets.ActiveCount())
	}
	if r.sound.count(audio.CueFire3) != 1 {
		t.Errorf("Expected one level 3 fire cue, got %v", r.sound.cues)
	}
}

func TestFixedSeed_Deterministic(t *testing.T) {
	run := func() (float64, int, float64, float64) {
		g, err := NewGame(Options{Seed: 7})
		if err != nil {
			t.Fatalf("NewGame failed: %v", err)
		}
		g.Start()
		for i := 0; i < 1200 && g.Running; i++ {
			dx := 1.0
			if (i/90)%2 == 0 {
				dx = -1
			}
			g.Step(frame, Intent{DX: dx, Fire: true})
		}
		return g.Score, g.Enemies.ActiveCount(), g.Player.X, g.SpawnTimer
	}

	s1, n1, x1, t1 := run()
	s2, n2, x2, t2 := run()
	if s1 != s2 || n1 != n2 || x1 != x2 || t1 != t2 {
		t.Errorf("Expected identical runs, got (%f %d %f %f) and (%f %d %f %f)",
			s1, n1, x1, t1, s2, n2, x2, t2)
	}
}

func TestHUD(t *testing.T) {
	r := newRig(t, nil)
	g := r.g
	g.Score = 99.9
	g.Highscore = 500
	g.Player.ApplyPowerup(PowerupWeapon)
	g.Player.ApplyPowerup(PowerupScore)

	h := g.HUD()
	if h.Score != 99 || h.Highscore != 500 || h.WeaponLevel != 2 || h.Multiplier != 2 {
		t.Errorf("Unexpected HUD %+v", h)
	}
}
