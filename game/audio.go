package game

import (
	"github.com/simukka/topdown-shooter/audio"
	"github.com/simukka/topdown-shooter/common"
)

// Sound receives fire-and-forget cue notifications from the simulation.
// pan: -1.0 = full left, 0.0 = center, 1.0 = full right
type Sound interface {
	Play(cue audio.Cue, pan, volume float64)
}

// NopSound discards every cue.
type NopSound struct{}

// Play implements Sound.
func (NopSound) Play(audio.Cue, float64, float64) {}

// explosionVolume maps an explosion's particle count to a cue volume.
// Hit sparks are quiet, kills and player hits are loud.
func explosionVolume(power int) float64 {
	return common.Clamp(float64(power)/36, 0.2, 1)
}

// playFire plays the fire cue of the player's weapon level.
func (g *Game) playFire() {
	g.Sound.Play(audio.FireCue(g.Player.WeaponLevel), AudioPan(g.Player.X), 1)
}
