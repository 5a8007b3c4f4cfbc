package game

import (
	"errors"
	"testing"

	"github.com/simukka/topdown-shooter/audio"
	"github.com/simukka/topdown-shooter/config"
	"github.com/simukka/topdown-shooter/store"
)

// recordingSound remembers every cue played.
type recordingSound struct {
	cues []audio.Cue
}

func (s *recordingSound) Play(c audio.Cue, pan, volume float64) {
	s.cues = append(s.cues, c)
}

func (s *recordingSound) count(c audio.Cue) int {
	n := 0
	for _, got := range s.cues {
		if got == c {
			n++
		}
	}
	return n
}

type gameOverCall struct {
	score, highscore int
}

// recordingUI remembers every notification.
type recordingUI struct {
	huds      []HUD
	paused    []bool
	gameOvers []gameOverCall
}

func (u *recordingUI) UpdateHUD(h HUD)       { u.huds = append(u.huds, h) }
func (u *recordingUI) ShowPaused(p bool)     { u.paused = append(u.paused, p) }
func (u *recordingUI) ShowGameOver(s, h int) { u.gameOvers = append(u.gameOvers, gameOverCall{s, h}) }

// failingStore reads like a memory store but refuses writes.
type failingStore struct {
	*store.Memory
}

func (failingStore) Set(string, float64) error {
	return errors.New("disk full")
}

type testRig struct {
	g     *Game
	sound *recordingSound
	ui    *recordingUI
	store *store.Memory
}

// newRig creates a started game with recording collaborators and a fixed seed.
func newRig(t *testing.T, tune func(*config.Tuning)) *testRig {
	t.Helper()

	tuning := config.Default()
	if tune != nil {
		tune(&tuning)
	}

	r := &testRig{
		sound: &recordingSound{},
		ui:    &recordingUI{},
		store: store.NewMemory(),
	}
	g, err := NewGame(Options{
		Seed:   42,
		Tuning: &tuning,
		Sound:  r.sound,
		UI:     r.ui,
		Store:  r.store,
	})
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	g.Start()
	r.g = g
	return r
}

// addEnemy places a basic enemy with the given hp at (x, y).
func (r *testRig) addEnemy(x, y float64, hp int) *Enemy {
	e := NewEnemy(x, y, EnemyBasic, r.g.GameRNG)
	e.HP = hp
	r.g.Enemies.Add(e)
	return e
}

// addBullet places a motionless player bullet at (x, y).
func (r *testRig) addBullet(x, y float64) *Bullet {
	b := NewBullet(x, y, 0, 0, OwnerPlayer)
	r.g.Bullets.Add(b)
	return b
}
