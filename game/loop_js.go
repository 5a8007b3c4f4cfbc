//go:build js

package game

import (
	"github.com/gopherjs/gopherjs/js"
)

// GameLoopRAF is the browser frame callback. It schedules the next frame,
// then ticks the session with the input of this frame.
func (g *Game) GameLoopRAF(in *Input) func(currentTime float64) {
	var loop func(currentTime float64)
	loop = func(currentTime float64) {
		js.Global.Call("requestAnimationFrame", loop)
		g.Tick(currentTime, in.Intent(g.Player))
	}
	return loop
}

// RunInBrowser starts the requestAnimationFrame loop.
func (g *Game) RunInBrowser(in *Input) {
	js.Global.Call("requestAnimationFrame", g.GameLoopRAF(in))
}
