//go:build !js

// Command desktop runs the shooter in a native window.
package main

import (
	"flag"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/simukka/topdown-shooter/audio"
	"github.com/simukka/topdown-shooter/common"
	"github.com/simukka/topdown-shooter/config"
	"github.com/simukka/topdown-shooter/game"
	"github.com/simukka/topdown-shooter/store"
)

func main() {
	tuningPath := flag.String("tuning", "", "YAML file overriding the default tuning")
	savePath := flag.String("save", defaultSavePath(), "File the highscore is kept in")
	seed := flag.Uint("seed", 0, "Fixed game seed (0 picks a new one per run)")
	mute := flag.Bool("mute", false, "Start with sound off")
	debug := flag.Bool("debug", false, "Log session details")
	flag.Parse()

	game.EnableDebug = *debug
	log := game.NewConsoleLogger(os.Stderr)

	tuning := config.Default()
	if *tuningPath != "" {
		t, err := config.LoadFile(*tuningPath)
		if err != nil {
			log.Fatal().Err(err).Msg("loading tuning")
		}
		tuning = t
	}

	highscores, err := store.OpenFile(*savePath)
	if err != nil {
		log.Warn().Err(err).Str("path", *savePath).Msg("highscore file unreadable, starting fresh")
	}

	cfg := audio.DefaultConfig()
	cfg.Muted = *mute
	audio.AudioConfig = cfg

	var sound game.Sound
	speakerSound, err := NewSpeakerSound(cfg, common.NewSeededRNG(uint32(time.Now().UnixNano())))
	if err != nil {
		log.Warn().Err(err).Msg("sound disabled")
	} else {
		defer speakerSound.Close()
		sound = speakerSound
	}

	app := NewApp(speakerSound)
	g, err := game.NewGame(game.Options{
		Seed:   uint32(*seed),
		Tuning: &tuning,
		Logger: &log,
		Sound:  sound,
		UI:     app,
		Store:  highscores,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("creating game")
	}
	app.SetGame(g)

	ebiten.SetWindowSize(game.Width, game.Height)
	ebiten.SetWindowTitle("Topdown Shooter")
	ebiten.SetWindowResizable(true)

	log.Info().Str("save", highscores.Path()).Int("highscore", g.Highscore).Msg("window open")
	if err := ebiten.RunGame(app); err != nil {
		log.Error().Err(err).Msg("game loop stopped")
	}
}

// defaultSavePath returns the highscore file under the user config dir,
// falling back to the working directory.
func defaultSavePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "topdown-highscore.yaml"
	}
	return filepath.Join(dir, "topdown-shooter", "highscore.yaml")
}
