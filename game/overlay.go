package game

import (
	"fmt"
	"strconv"
)

// FrameStats tracks frame rate and renders the debug statistics panel text.
type FrameStats struct {
	Visible bool

	// FPS tracking
	FrameCount    int
	LastFPSUpdate float64
	CurrentFPS    float64
}

// NewFrameStats creates a hidden stats tracker.
func NewFrameStats() *FrameStats {
	return &FrameStats{}
}

// Toggle toggles the stats panel visibility
func (s *FrameStats) Toggle() {
	s.Visible = !s.Visible
}

// UpdateFPS counts a frame at currentTime (ms) and refreshes the rate once
// per second.
func (s *FrameStats) UpdateFPS(currentTime float64) {
	s.FrameCount++

	elapsed := currentTime - s.LastFPSUpdate
	if elapsed >= 1000 {
		s.CurrentFPS = float64(s.FrameCount) / (elapsed / 1000)
		s.FrameCount = 0
		s.LastFPSUpdate = currentTime
	}
}

// Lines returns the statistics panel text for the session.
func (s *FrameStats) Lines(g *Game) []string {
	return []string{
		"FPS: " + strconv.FormatFloat(s.CurrentFPS, 'f', 1, 64),
		"Phase: " + g.Phase().String(),
		fmt.Sprintf("Seed: %d", g.GameSeed),
		fmt.Sprintf("Level: %d  Wave: %d", g.Level, g.Wave),
		fmt.Sprintf("Enemies: %d", g.Enemies.ActiveCount()),
		fmt.Sprintf("Bullets: %d / %d", g.Bullets.ActiveCount(), g.EnemyBullets.ActiveCount()),
		fmt.Sprintf("Particles: %d", g.Particles.ActiveCount()),
		fmt.Sprintf("Powerups: %d", g.Powerups.ActiveCount()),
		fmt.Sprintf("Fire rate: %.0f ms (%d boosts)", g.Player.FireRate, g.Player.FireBoosts()),
	}
}
