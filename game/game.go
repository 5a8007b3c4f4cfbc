package game

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/simukka/topdown-shooter/common"
	"github.com/simukka/topdown-shooter/config"
	"github.com/simukka/topdown-shooter/store"
)

// Phase is the lifecycle state of a session.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	default:
		return "idle"
	}
}

// Game over reasons
const (
	ReasonHP   = "hp"
	ReasonBoss = "boss"
)

// UI receives HUD and overlay notifications.
type UI interface {
	UpdateHUD(h HUD)
	ShowPaused(paused bool)
	ShowGameOver(score, highscore int)
}

// NopUI ignores every notification.
type NopUI struct{}

func (NopUI) UpdateHUD(HUD)         {}
func (NopUI) ShowPaused(bool)       {}
func (NopUI) ShowGameOver(int, int) {}

// Renderer draws the session once per frame. It must not mutate it.
type Renderer interface {
	Render(g *Game)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(g *Game)

// Render implements Renderer.
func (f RendererFunc) Render(g *Game) { f(g) }

// Options configures a new session. Zero values pick defaults.
type Options struct {
	Seed     uint32 // 0 derives a fresh seed from each run id
	Tuning   *config.Tuning
	Logger   *zerolog.Logger
	Sound    Sound
	UI       UI
	Store    store.Store
	Renderer Renderer
}

// HUD is the snapshot shown to the player.
type HUD struct {
	Score       int
	Highscore   int
	HP          int
	MaxHP       int
	WeaponLevel int
	Shield      bool
	Multiplier  float64
	Level       int
	Wave        int
	FPS         float64
}

// Game holds the complete game state.
type Game struct {
	Tuning config.Tuning
	Player *Player

	// Object pools
	Bullets      *Pool[Bullet]
	EnemyBullets *Pool[Bullet]
	Enemies      *Pool[Enemy]
	Particles    *Pool[Particle]
	Powerups     *Pool[Powerup]

	Score      float64 // displayed floored
	Highscore  int
	Level      int
	Wave       int
	SpawnTimer float64 // ms since the last wave

	Running    bool
	Paused     bool
	OverReason string

	// Seeding
	RunID     string
	GameSeed  uint32
	GameRNG   *common.SeededRNG
	fixedSeed bool
	runs      int

	// Collaborators
	Sound    Sound
	UI       UI
	Store    store.Store
	Renderer Renderer
	Log      zerolog.Logger
	baseLog  zerolog.Logger

	// Frame clock
	Stats         *FrameStats
	LastFrameTime float64
	hasLastFrame  bool

	// Collision detection
	BulletGrid *SpatialGrid
	nearby     []int

	hudDirty bool
}

// NewGame creates an idle session. It fails only on invalid tuning.
func NewGame(opts Options) (*Game, error) {
	t := config.Default()
	if opts.Tuning != nil {
		if err := opts.Tuning.Validate(); err != nil {
			return nil, fmt.Errorf("new game: %w", err)
		}
		t = *opts.Tuning
	}

	g := &Game{
		Tuning:       t,
		Player:       NewPlayer(t),
		Bullets:      NewPool[Bullet](t.Limits.MaxBullets),
		EnemyBullets: NewPool[Bullet](t.Limits.MaxBullets),
		Enemies:      NewPool[Enemy](t.Limits.MaxEnemies),
		Particles:    NewPool[Particle](t.Limits.MaxParticles),
		Powerups:     NewPool[Powerup](0),
		Level:        1,
		Wave:         1,
		GameSeed:     opts.Seed,
		GameRNG:      common.NewSeededRNG(opts.Seed),
		fixedSeed:    opts.Seed != 0,
		Sound:        opts.Sound,
		UI:           opts.UI,
		Store:        opts.Store,
		Renderer:     opts.Renderer,
		Log:          zerolog.Nop(),
		Stats:        NewFrameStats(),
		BulletGrid: NewSpatialGrid(
			-BulletMarginX, -BulletMarginY,
			Width+BulletMarginX, Height+BulletMarginY,
			64,
		),
		nearby: make([]int, 0, 32),
	}

	if opts.Logger != nil {
		g.Log = *opts.Logger
	}
	g.baseLog = g.Log
	if g.Sound == nil {
		g.Sound = NopSound{}
	}
	if g.UI == nil {
		g.UI = NopUI{}
	}
	if g.Store == nil {
		g.Store = store.NewMemory()
	}

	g.Highscore = store.LoadHighscore(g.Store, HighscoreKey)
	return g, nil
}

// Phase returns the current lifecycle state.
func (g *Game) Phase() Phase {
	switch {
	case !g.Running:
		return PhaseIdle
	case g.Paused:
		return PhasePaused
	default:
		return PhaseRunning
	}
}

// Start begins a new run from Idle. It is a no-op while a run is active.
func (g *Game) Start() {
	if g.Running {
		return
	}

	id := uuid.New()
	g.RunID = id.String()
	g.runs++
	if !g.fixedSeed {
		g.GameSeed = binary.LittleEndian.Uint32(id[:4])
	}
	g.GameRNG.SetSeed(common.LevelSeed(g.GameSeed, g.runs))

	g.Bullets.Clear()
	g.EnemyBullets.Clear()
	g.Enemies.Clear()
	g.Particles.Clear()
	g.Powerups.Clear()

	g.Score = 0
	g.Level = 1
	g.Wave = 1
	g.SpawnTimer = 0
	g.OverReason = ""
	g.Player.Reset(g.Tuning)
	g.hasLastFrame = false

	g.Running = true
	g.Paused = false

	g.Log = g.baseLog.With().Str("run", g.RunID).Logger()
	g.Log.Info().
		Uint32("seed", g.GameSeed).
		Int("highscore", g.Highscore).
		Msg("game started")

	g.UI.ShowPaused(false)
	g.UI.UpdateHUD(g.HUD())
}

// Pause suspends the simulation. Only valid while running.
func (g *Game) Pause() {
	if !g.Running || g.Paused {
		return
	}
	g.Paused = true
	g.Log.Debug().Msg("paused")
	g.UI.ShowPaused(true)
}

// Resume continues a paused run. The next frame starts with dt = 0.
func (g *Game) Resume() {
	if !g.Running || !g.Paused {
		return
	}
	g.Paused = false
	g.hasLastFrame = false
	g.Log.Debug().Msg("resumed")
	g.UI.ShowPaused(false)
}

// TogglePause flips between Paused and Running.
func (g *Game) TogglePause() {
	if g.Paused {
		g.Resume()
	} else {
		g.Pause()
	}
}

// GameOver ends the run, records the highscore and tells the UI.
func (g *Game) GameOver(reason string) {
	if !g.Running {
		return
	}

	g.Running = false
	g.Paused = false
	g.Player.Alive = false
	g.OverReason = reason

	final := int(math.Floor(g.Score))
	if final > g.Highscore {
		g.Highscore = final
		if err := g.Store.Set(HighscoreKey, float64(final)); err != nil {
			g.Log.Warn().Err(err).Int("highscore", final).Msg("highscore not saved")
		}
	}

	g.Log.Info().
		Str("reason", reason).
		Int("score", final).
		Int("highscore", g.Highscore).
		Int("level", g.Level).
		Int("wave", g.Wave).
		Msg("game over")

	g.hudDirty = false
	g.UI.UpdateHUD(g.HUD())
	g.UI.ShowGameOver(final, g.Highscore)
}

// HUD returns the numbers the player sees.
func (g *Game) HUD() HUD {
	p := g.Player
	return HUD{
		Score:       int(math.Floor(g.Score)),
		Highscore:   g.Highscore,
		HP:          p.HP,
		MaxHP:       p.MaxHP,
		WeaponLevel: p.WeaponLevel,
		Shield:      p.Shield,
		Multiplier:  p.Multiplier,
		Level:       g.Level,
		Wave:        g.Wave,
		FPS:         g.Stats.CurrentFPS,
	}
}

// addScore credits points and marks the HUD for refresh.
func (g *Game) addScore(points float64) {
	if points <= 0 {
		return
	}
	g.Score += points
	g.hudDirty = true
}
