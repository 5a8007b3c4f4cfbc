//go:build js

package game

import (
	"math"
	"strconv"

	"github.com/gopherjs/gopherjs/js"
)

// RenderToCanvas creates an off-screen canvas and renders to it.
func RenderToCanvas(width, height int, renderFn func(canvas, ctx *js.Object)) *js.Object {
	document := js.Global.Get("document")
	canvas := document.Call("createElement", "canvas")
	canvas.Set("width", width)
	canvas.Set("height", height)
	ctx := canvas.Call("getContext", "2d")
	renderFn(canvas, ctx)
	return canvas
}

// CanvasRenderer draws a session onto a 2D canvas sized Width x Height.
type CanvasRenderer struct {
	Canvas    *js.Object
	Ctx       *js.Object
	ShipImage *js.Object
}

// NewCanvasRenderer prepares a renderer for the canvas and pre-renders the
// ship sprite.
func NewCanvasRenderer(canvas *js.Object) *CanvasRenderer {
	canvas.Set("width", Width)
	canvas.Set("height", Height)
	r := &CanvasRenderer{
		Canvas: canvas,
		Ctx:    canvas.Call("getContext", "2d"),
	}
	r.ShipImage = RenderToCanvas(32, 32, func(canvas, ctx *js.Object) {
		ctx.Call("translate", 16, 16)
		ctx.Call("beginPath")
		ctx.Call("moveTo", 0, -16)
		ctx.Call("lineTo", 12, 12)
		ctx.Call("lineTo", 6, 8)
		ctx.Call("lineTo", -6, 8)
		ctx.Call("lineTo", -12, 12)
		ctx.Call("closePath")
		ctx.Set("fillStyle", Theme.ShipColor)
		ctx.Call("fill")
	})
	return r
}

// Render implements Renderer.
func (r *CanvasRenderer) Render(g *Game) {
	ctx := r.Ctx

	r.RenderBackground()

	if g.Player.Alive {
		r.RenderShip(g.Player)
	}

	g.Bullets.ForEach(func(b *Bullet, _ int) { r.RenderBullet(b) })
	g.EnemyBullets.ForEach(func(b *Bullet, _ int) { r.RenderBullet(b) })
	g.Enemies.ForEach(func(e *Enemy, _ int) { r.RenderEnemy(e, g.Player) })
	g.Powerups.ForEach(func(p *Powerup, _ int) { r.RenderPowerup(p) })

	g.Particles.ForEach(func(p *Particle, _ int) {
		ctx.Set("globalAlpha", p.Alpha())
		ctx.Call("beginPath")
		ctx.Call("arc", p.X, p.Y, p.Size, 0, math.Pi*2)
		ctx.Set("fillStyle", p.Color)
		ctx.Call("fill")
	})
	ctx.Set("globalAlpha", 1)

	r.RenderHUD(g.HUD(), g.Player)
	r.RenderStats(g)
}

// RenderBackground fills the world and draws the scrolling star streaks.
func (r *CanvasRenderer) RenderBackground() {
	ctx := r.Ctx
	ctx.Set("fillStyle", Theme.BackgroundColor)
	ctx.Call("fillRect", 0, 0, Width, Height)

	offset := math.Mod(js.Global.Get("Date").Call("now").Float()/30, 40) - 40
	ctx.Set("globalAlpha", Theme.StarAlpha)
	ctx.Set("fillStyle", Theme.StarColor)
	for x := 0; x < Width; x += 60 {
		ctx.Call("fillRect", x, offset, 2, Height+80)
	}
	ctx.Set("globalAlpha", 1)
}

// RenderShip draws the player and its shield bubble.
func (r *CanvasRenderer) RenderShip(p *Player) {
	ctx := r.Ctx
	ctx.Call("save")
	ctx.Call("translate", p.X, p.Y)

	if p.Shield {
		ctx.Call("beginPath")
		ctx.Call("arc", 0, 0, p.Size*0.8, 0, math.Pi*2)
		ctx.Set("fillStyle", Theme.ShieldFillColor)
		ctx.Call("fill")
		ctx.Set("strokeStyle", Theme.ShieldStrokeColor)
		ctx.Set("lineWidth", 2)
		ctx.Call("stroke")
	}

	ctx.Call("drawImage", r.ShipImage, -16, -16)
	ctx.Call("restore")
}

// RenderBullet draws one bullet.
func (r *CanvasRenderer) RenderBullet(b *Bullet) {
	ctx := r.Ctx
	ctx.Call("beginPath")
	ctx.Call("arc", b.X, b.Y, b.GetRadius(), 0, math.Pi*2)
	ctx.Set("fillStyle", BulletColor(b.Owner))
	ctx.Call("fill")
}

// RenderEnemy draws an enemy body and its core. Shooters turn their core
// toward the player.
func (r *CanvasRenderer) RenderEnemy(e *Enemy, p *Player) {
	ctx := r.Ctx
	ctx.Call("save")
	ctx.Call("translate", e.X, e.Y)

	ctx.Call("beginPath")
	ctx.Call("ellipse", 0, 0, e.Size*0.6, e.Size*0.9, 0, 0, math.Pi*2)
	ctx.Set("fillStyle", EnemyColor(e.Kind))
	ctx.Call("fill")

	cx, cy := 0.0, 0.0
	if e.Kind == EnemyShooter {
		a := e.TargetAngle(p.X, p.Y)
		cx, cy = math.Cos(a)*e.Size*0.15, math.Sin(a)*e.Size*0.15
	}
	ctx.Call("beginPath")
	ctx.Call("arc", cx, cy, e.Size*0.22, 0, math.Pi*2)
	ctx.Set("fillStyle", Theme.EnemyCoreColor)
	ctx.Call("fill")
	ctx.Call("restore")
}

// RenderPowerup draws a pickup with its letter.
func (r *CanvasRenderer) RenderPowerup(p *Powerup) {
	ctx := r.Ctx
	color, letter := PowerupStyle(p.Kind)

	ctx.Call("save")
	ctx.Call("translate", p.X, p.Y)
	ctx.Set("fillStyle", color)
	ctx.Call("beginPath")
	ctx.Call("arc", 0, 0, p.GetRadius(), 0, math.Pi*2)
	ctx.Call("fill")
	ctx.Set("fillStyle", Theme.PowerupTextColor)
	ctx.Set("font", Theme.PowerupFont)
	ctx.Set("textAlign", "center")
	ctx.Set("textBaseline", "middle")
	ctx.Call("fillText", letter, 0, 0)
	ctx.Call("restore")
}

// RenderHUD draws score, HP bar, weapon level, shield state and crosshair.
func (r *CanvasRenderer) RenderHUD(h HUD, p *Player) {
	ctx := r.Ctx
	ctx.Set("fillStyle", Theme.HUDTextColor)
	ctx.Set("font", Theme.HUDFont)
	ctx.Set("textAlign", "left")
	ctx.Set("textBaseline", "alphabetic")
	ctx.Call("fillText", "Score: "+strconv.Itoa(h.Score)+"  High: "+strconv.Itoa(h.Highscore), 14, 20)

	const hpX, hpY, hpW, hpH = 14, 36, 160, 12
	ctx.Set("fillStyle", Theme.HPBarBackground)
	ctx.Call("fillRect", hpX, hpY, hpW, hpH)
	frac := 0.0
	if h.MaxHP > 0 {
		frac = math.Max(0, math.Min(1, float64(h.HP)/float64(h.MaxHP)))
	}
	ctx.Set("fillStyle", Theme.HPBarFill)
	ctx.Call("fillRect", hpX, hpY, hpW*frac, hpH)
	ctx.Set("strokeStyle", Theme.HPBarBorder)
	ctx.Call("strokeRect", hpX, hpY, hpW, hpH)

	ctx.Set("fillStyle", "#fff")
	ctx.Call("fillText", "HP "+strconv.Itoa(h.HP)+"/"+strconv.Itoa(h.MaxHP), hpX+hpW+8, hpY+hpH-1)
	ctx.Call("fillText", "Weapon Lv: "+strconv.Itoa(h.WeaponLevel), 14, hpY+36)
	shield := "OFF"
	if h.Shield {
		shield = "ON"
	}
	ctx.Call("fillText", "Shield: "+shield, 14, hpY+56)
	ctx.Call("fillText", "Level "+strconv.Itoa(h.Level), 14, hpY+76)

	ctx.Call("beginPath")
	ctx.Call("arc", p.X, p.Y, 2.5, 0, math.Pi*2)
	ctx.Set("fillStyle", Theme.CrosshairColor)
	ctx.Call("fill")
}

// RenderStats draws the statistics panel when it is visible.
func (r *CanvasRenderer) RenderStats(g *Game) {
	if !g.Stats.Visible {
		return
	}
	ctx := r.Ctx
	lines := g.Stats.Lines(g)

	const panelX, panelY, panelW, lineH = Width - 280, 16, 264, 18
	panelH := len(lines)*lineH + 16

	ctx.Set("fillStyle", Theme.StatsPanelColor)
	ctx.Call("fillRect", panelX, panelY, panelW, panelH)
	ctx.Set("strokeStyle", Theme.StatsBorderColor)
	ctx.Set("lineWidth", 1)
	ctx.Call("strokeRect", panelX, panelY, panelW, panelH)

	ctx.Set("font", Theme.StatsFont)
	ctx.Set("fillStyle", Theme.HUDTextColor)
	ctx.Set("textAlign", "left")
	for i, line := range lines {
		ctx.Call("fillText", line, panelX+8, panelY+20+i*lineH)
	}
}
