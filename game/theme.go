package game

import (
	"fmt"
	"image/color"
	"strings"
)

// Theme holds all visual styling constants for easy customization.
var Theme = struct {
	// Background
	BackgroundColor string
	StarColor       string
	StarAlpha       float64

	// Player ship
	ShipColor         string
	ShieldFillColor   string
	ShieldStrokeColor string
	CrosshairColor    string

	// Bullets
	PlayerBulletColor string
	EnemyBulletColor  string

	// Enemies
	EnemyColors    map[EnemyKind]string
	EnemyCoreColor string

	// Explosion colors
	HitSparkColor  string
	KillColor      string
	ShieldHitColor string
	DamageColor    string
	HealColor      string

	// Powerups
	PowerupColors    map[PowerupKind]string
	PowerupLetters   map[PowerupKind]string
	PowerupTextColor string

	// UI/HUD
	HUDTextColor     string
	HPBarBackground  string
	HPBarFill        string
	HPBarBorder      string
	StatsPanelColor  string
	StatsBorderColor string

	// Fonts
	HUDFont     string
	PowerupFont string
	StatsFont   string
}{
	BackgroundColor: "#04060a",
	StarColor:       "#ffffff",
	StarAlpha:       0.06,

	ShipColor:         "#AEEFFF",
	ShieldFillColor:   "rgba(90,180,255,0.12)",
	ShieldStrokeColor: "rgba(90,180,255,0.35)",
	CrosshairColor:    "#fff",

	PlayerBulletColor: "#ffd7a6",
	EnemyBulletColor:  "#ffb3b3",

	EnemyColors: map[EnemyKind]string{
		EnemyBasic:   "#ff6b6b",
		EnemyShooter: "#ffa8d6",
		EnemyBig:     "#ffb86b",
	},
	EnemyCoreColor: "#2b2b2b",

	HitSparkColor:  "#ffd7a6",
	KillColor:      "#ffcc66",
	ShieldHitColor: "#5dcfff",
	DamageColor:    "#ff6b6b",
	HealColor:      "#3cff4a",

	PowerupColors: map[PowerupKind]string{
		PowerupHealth:   "#3cff4a",
		PowerupFireRate: "#a66bff",
		PowerupShield:   "#5dcfff",
		PowerupWeapon:   "#ffd36b",
		PowerupScore:    "#ff6bd6",
	},
	PowerupLetters: map[PowerupKind]string{
		PowerupHealth:   "H",
		PowerupFireRate: "F",
		PowerupShield:   "S",
		PowerupWeapon:   "W",
		PowerupScore:    "+",
	},
	PowerupTextColor: "#222",

	HUDTextColor:     "#E6F1FF",
	HPBarBackground:  "rgba(255,255,255,0.08)",
	HPBarFill:        "#3cff4a",
	HPBarBorder:      "#0008",
	StatsPanelColor:  "rgba(0, 0, 0, 0.75)",
	StatsBorderColor: "#00aaff",

	HUDFont:     "16px Inter, Arial",
	PowerupFont: "12px Arial",
	StatsFont:   "12px monospace",
}

// EnemyColor returns the body color of an enemy.
func EnemyColor(kind EnemyKind) string {
	if c, ok := Theme.EnemyColors[kind]; ok {
		return c
	}
	return "#fff"
}

// PowerupStyle returns the fill color and letter of a pickup.
func PowerupStyle(kind PowerupKind) (color, letter string) {
	color, ok := Theme.PowerupColors[kind]
	if !ok {
		color = "#fff"
	}
	letter, ok = Theme.PowerupLetters[kind]
	if !ok {
		letter = "?"
	}
	return color, letter
}

// BulletColor returns the color of a bullet by owner.
func BulletColor(o Owner) string {
	if o == OwnerEnemy {
		return Theme.EnemyBulletColor
	}
	return Theme.PlayerBulletColor
}

// ParseColor converts a Theme color to RGBA for non-canvas renderers.
// It accepts #rgb, #rgba, #rrggbb, #rrggbbaa and rgba(r,g,b,a).
// Unparseable input yields opaque white.
func ParseColor(s string) color.RGBA {
	white := color.RGBA{255, 255, 255, 255}
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "rgba(") {
		var r, g, b int
		var a float64
		if _, err := fmt.Sscanf(strings.ReplaceAll(s, " ", ""), "rgba(%d,%d,%d,%g)", &r, &g, &b, &a); err != nil {
			return white
		}
		return color.RGBA{uint8(r), uint8(g), uint8(b), uint8(a*255 + 0.5)}
	}

	if !strings.HasPrefix(s, "#") {
		return white
	}
	hex := s[1:]
	if len(hex) == 3 || len(hex) == 4 {
		var long strings.Builder
		for _, c := range hex {
			long.WriteRune(c)
			long.WriteRune(c)
		}
		hex = long.String()
	}
	if len(hex) == 6 {
		hex += "ff"
	}

	var c color.RGBA
	if _, err := fmt.Sscanf(hex, "%2x%2x%2x%2x", &c.R, &c.G, &c.B, &c.A); err != nil || len(hex) != 8 {
		return white
	}
	return c
}
