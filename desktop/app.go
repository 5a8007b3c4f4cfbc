//go:build !js

package main

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/simukka/topdown-shooter/game"
)

// App runs a session inside an ebiten window. It is the session's UI and
// draws it on every ebiten frame.
type App struct {
	g       *game.Game
	sound   *SpeakerSound
	started time.Time
	overlay string
}

// NewApp creates an idle app. Call SetGame before running it.
func NewApp(sound *SpeakerSound) *App {
	return &App{
		sound:   sound,
		started: time.Now(),
		overlay: "Arrows / WASD to move, X / Space to fire\nP pause, M mute, F10 stats\n\nPress Enter to start",
	}
}

// SetGame attaches the session.
func (a *App) SetGame(g *game.Game) {
	a.g = g
}

// UpdateHUD implements game.UI. The HUD is drawn from the session directly.
func (a *App) UpdateHUD(game.HUD) {}

// ShowPaused implements game.UI.
func (a *App) ShowPaused(paused bool) {
	if paused {
		a.overlay = "Paused\nPress P to resume"
		return
	}
	a.overlay = ""
}

// ShowGameOver implements game.UI.
func (a *App) ShowGameOver(score, highscore int) {
	a.overlay = fmt.Sprintf("Game Over - Score: %d\nHighscore: %d\n\nPress Enter to restart", score, highscore)
}

// intent reads the held movement and fire keys.
func intent() game.Intent {
	var k game.KeyState
	k.Left = ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA)
	k.Right = ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD)
	k.Up = ebiten.IsKeyPressed(ebiten.KeyUp) || ebiten.IsKeyPressed(ebiten.KeyW)
	k.Down = ebiten.IsKeyPressed(ebiten.KeyDown) || ebiten.IsKeyPressed(ebiten.KeyS)
	k.Fire = ebiten.IsKeyPressed(ebiten.KeyX) || ebiten.IsKeyPressed(ebiten.KeySpace) ||
		ebiten.IsKeyPressed(ebiten.KeyZ)
	return k.Intent()
}

// Update implements ebiten.Game.
func (a *App) Update() error {
	g := a.g

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		if !g.Running {
			g.Start()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyP), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.TogglePause()
	case inpututil.IsKeyJustPressed(ebiten.KeyF10):
		g.Stats.Toggle()
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		if a.sound != nil {
			muted := a.sound.ToggleMute()
			g.Log.Debug().Bool("muted", muted).Msg("sound toggled")
		}
	}

	now := float64(time.Since(a.started)) / float64(time.Millisecond)
	g.Tick(now, intent())
	return nil
}

// Draw implements ebiten.Game.
func (a *App) Draw(screen *ebiten.Image) {
	g := a.g
	screen.Fill(game.ParseColor(game.Theme.BackgroundColor))
	a.drawStars(screen)

	g.Bullets.ForEach(func(b *game.Bullet, _ int) { drawBullet(screen, b) })
	g.EnemyBullets.ForEach(func(b *game.Bullet, _ int) { drawBullet(screen, b) })
	g.Enemies.ForEach(func(e *game.Enemy, _ int) { drawEnemy(screen, e, g.Player) })
	g.Powerups.ForEach(func(p *game.Powerup, _ int) { drawPowerup(screen, p) })
	g.Particles.ForEach(func(p *game.Particle, _ int) {
		c := game.ParseColor(p.Color)
		c.A = uint8(float64(c.A) * p.Alpha())
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Size), premultiply(c), true)
	})

	if g.Player.Alive {
		drawShip(screen, g.Player)
	}

	a.drawHUD(screen, g.HUD())
	if g.Stats.Visible {
		for i, line := range g.Stats.Lines(g) {
			ebitenutil.DebugPrintAt(screen, line, game.Width-260, 16+i*16)
		}
	}
	if a.overlay != "" {
		vector.DrawFilledRect(screen, 0, 0, game.Width, game.Height, color.RGBA{5, 6, 10, 180}, false)
		ebitenutil.DebugPrintAt(screen, a.overlay, game.Width/2-120, game.Height/2-30)
	}
}

// Layout implements ebiten.Game. The world is drawn at its native size and
// ebiten scales it to the window.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return game.Width, game.Height
}

func (a *App) drawStars(screen *ebiten.Image) {
	offset := math.Mod(float64(time.Since(a.started).Milliseconds())/30, 40) - 40
	c := game.ParseColor(game.Theme.StarColor)
	c.A = uint8(255 * game.Theme.StarAlpha)
	for x := 0; x < game.Width; x += 60 {
		vector.DrawFilledRect(screen, float32(x), float32(offset), 2, game.Height+80, premultiply(c), false)
	}
}

func (a *App) drawHUD(screen *ebiten.Image, h game.HUD) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d  High: %d", h.Score, h.Highscore), 14, 8)

	const hpX, hpY, hpW, hpH = 14, 30, 160, 12
	vector.DrawFilledRect(screen, hpX, hpY, hpW, hpH, premultiply(game.ParseColor(game.Theme.HPBarBackground)), false)
	frac := 0.0
	if h.MaxHP > 0 {
		frac = math.Max(0, math.Min(1, float64(h.HP)/float64(h.MaxHP)))
	}
	vector.DrawFilledRect(screen, hpX, hpY, float32(hpW*frac), hpH, game.ParseColor(game.Theme.HPBarFill), false)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("HP %d/%d", h.HP, h.MaxHP), hpX+hpW+8, hpY-2)

	shield := "OFF"
	if h.Shield {
		shield = "ON"
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Weapon Lv: %d", h.WeaponLevel), 14, hpY+20)
	ebitenutil.DebugPrintAt(screen, "Shield: "+shield, 14, hpY+36)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Level %d  x%.0f", h.Level, h.Multiplier), 14, hpY+52)
}

func drawShip(screen *ebiten.Image, p *game.Player) {
	x, y := float32(p.X), float32(p.Y)
	if p.Shield {
		r := float32(p.Size * 0.8)
		vector.DrawFilledCircle(screen, x, y, r, premultiply(game.ParseColor(game.Theme.ShieldFillColor)), true)
		vector.StrokeCircle(screen, x, y, r, 2, premultiply(game.ParseColor(game.Theme.ShieldStrokeColor)), true)
	}

	var path vector.Path
	path.MoveTo(x, y-16)
	path.LineTo(x+12, y+12)
	path.LineTo(x+6, y+8)
	path.LineTo(x-6, y+8)
	path.LineTo(x-12, y+12)
	path.Close()

	c := game.ParseColor(game.Theme.ShipColor)
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = 1
	}
	screen.DrawTriangles(vs, is, whitePixel, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func drawBullet(screen *ebiten.Image, b *game.Bullet) {
	vector.DrawFilledCircle(screen, float32(b.X), float32(b.Y), float32(b.GetRadius()),
		game.ParseColor(game.BulletColor(b.Owner)), true)
}

func drawEnemy(screen *ebiten.Image, e *game.Enemy, p *game.Player) {
	x, y := float32(e.X), float32(e.Y)
	vector.DrawFilledCircle(screen, x, y, float32(e.Size*0.75), game.ParseColor(game.EnemyColor(e.Kind)), true)

	cx, cy := 0.0, 0.0
	if e.Kind == game.EnemyShooter {
		a := e.TargetAngle(p.X, p.Y)
		cx, cy = math.Cos(a)*e.Size*0.15, math.Sin(a)*e.Size*0.15
	}
	vector.DrawFilledCircle(screen, x+float32(cx), y+float32(cy), float32(e.Size*0.22),
		game.ParseColor(game.Theme.EnemyCoreColor), true)
}

func drawPowerup(screen *ebiten.Image, p *game.Powerup) {
	fill, letter := game.PowerupStyle(p.Kind)
	vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.GetRadius()), game.ParseColor(fill), true)
	ebitenutil.DebugPrintAt(screen, letter, int(p.X)-3, int(p.Y)-8)
}

// premultiply converts a straight-alpha color to the premultiplied form
// color.RGBA is defined to hold.
func premultiply(c color.RGBA) color.RGBA {
	a := uint32(c.A)
	return color.RGBA{
		R: uint8(uint32(c.R) * a / 255),
		G: uint8(uint32(c.G) * a / 255),
		B: uint8(uint32(c.B) * a / 255),
		A: c.A,
	}
}

var whitePixel = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}()
