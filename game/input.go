package game

import "math"

// Canonical control codes (browser keyCodes)
const (
	KeyEnter = 13
	KeyLeft  = 37
	KeyUp    = 38
	KeyRight = 39
	KeyDown  = 40
	KeyPause = 80 // P
	KeyFire  = 88 // X
)

// KeyMap maps alternative keys to canonical control codes.
var KeyMap = map[int]int{
	27: KeyPause, // Esc => P
	32: KeyFire,  // Space => X
	65: KeyLeft,  // A => Left
	68: KeyRight, // D => Right
	83: KeyDown,  // S => Down
	87: KeyUp,    // W => Up
	73: KeyUp,    // I => Up
	74: KeyLeft,  // J => Left
	75: KeyDown,  // K => Down
	76: KeyRight, // L => Right
	90: KeyFire,  // Z => X
}

// TranslateKey converts alternative key codes to canonical control codes.
func TranslateKey(keyCode int) int {
	if mapped, ok := KeyMap[keyCode]; ok {
		return mapped
	}
	return keyCode
}

// KeyState tracks which controls are held.
type KeyState struct {
	Left, Right, Up, Down bool
	Fire                  bool
}

// Set records a canonical control going down or up. It returns false for
// codes that are not held controls.
func (k *KeyState) Set(code int, down bool) bool {
	switch code {
	case KeyLeft:
		k.Left = down
	case KeyRight:
		k.Right = down
	case KeyUp:
		k.Up = down
	case KeyDown:
		k.Down = down
	case KeyFire:
		k.Fire = down
	default:
		return false
	}
	return true
}

// Intent turns held keys into a normalized intent. Diagonals are scaled
// to unit length so they are not faster than straight movement.
func (k KeyState) Intent() Intent {
	dx, dy := 0.0, 0.0
	if k.Right {
		dx++
	}
	if k.Left {
		dx--
	}
	if k.Down {
		dy++
	}
	if k.Up {
		dy--
	}
	if l := math.Hypot(dx, dy); l > 1 {
		dx /= l
		dy /= l
	}
	return Intent{DX: dx, DY: dy, Fire: k.Fire}
}

// Touch steering
const (
	TouchDeadZone   = 6   // no movement this close to the finger
	TouchSpeedScale = 0.9 // touch steering is slightly slower than keys
)

// TouchIntent steers the player toward a touch point at (tx, ty). Touching
// always fires.
func TouchIntent(p *Player, tx, ty float64) Intent {
	vx, vy := tx-p.X, ty-p.Y
	d := math.Hypot(vx, vy)
	if d <= TouchDeadZone || math.IsNaN(d) {
		return Intent{Fire: true}
	}
	return Intent{
		DX:   vx / d * TouchSpeedScale,
		DY:   vy / d * TouchSpeedScale,
		Fire: true,
	}
}

// HandleKey applies a raw key event to the session: held controls update
// keys, P toggles pause and Enter starts an idle game. It returns true when
// the key belongs to the game.
func (g *Game) HandleKey(rawKeyCode int, down bool, keys *KeyState) bool {
	code := TranslateKey(rawKeyCode)
	if keys.Set(code, down) {
		return true
	}
	if !down {
		return false
	}

	switch code {
	case KeyPause:
		g.TogglePause()
		return true
	case KeyEnter:
		if !g.Running {
			g.Start()
		}
		return true
	}
	return false
}
