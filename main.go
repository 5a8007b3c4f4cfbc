//go:build js
// +build js

package main

import (
	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/topdown-shooter/audio"
	"github.com/simukka/topdown-shooter/common"
	"github.com/simukka/topdown-shooter/game"
	"github.com/simukka/topdown-shooter/store"
)

func main() {
	// Get the canvas element
	doc := js.Global.Get("document")
	canvas := doc.Call("getElementById", "gameCanvas")
	if canvas == nil || canvas == js.Undefined {
		panic("canvas element not found")
	}

	game.EnableDebug = js.Global.Get("location").Get("search").String() == "?debug"
	logger := game.NewLogger(game.ConsoleWriter{})

	// Highscore survives reloads when localStorage is available
	var highscores store.Store
	if local, err := store.NewLocal(); err == nil {
		highscores = local
	} else {
		logger.Warn().Err(err).Msg("highscore will not persist")
		highscores = store.NewMemory()
	}

	sound := audio.NewAudioManager(common.NewSeededRNG(uint32(js.Global.Get("Date").Call("now").Int64())))

	g, err := game.NewGame(game.Options{
		Logger:   &logger,
		Sound:    sound,
		UI:       game.NewDOMUI(),
		Store:    highscores,
		Renderer: game.NewCanvasRenderer(canvas),
	})
	if err != nil {
		panic(err)
	}

	// Browsers only allow audio after a user gesture
	initAudio := func() {
		if err := sound.Init(); err != nil {
			logger.Warn().Err(err).Msg("audio disabled")
		}
	}
	in := &game.Input{OnFirstUser: initAudio}
	g.SetupInputHandlers(canvas, in)

	start := func() {
		initAudio()
		g.Start()
	}
	for _, id := range []string{"startBtn", "restartBtn"} {
		if btn := doc.Call("getElementById", id); btn != nil && btn != js.Undefined {
			btn.Call("addEventListener", "click", start)
		}
	}

	g.RunInBrowser(in)
}
