//go:build js

package game

import (
	"github.com/gopherjs/gopherjs/js"
)

// Input collects keyboard and touch state from the browser and turns it
// into a per-frame Intent.
type Input struct {
	Keys        KeyState
	touching    bool
	touchX      float64
	touchY      float64
	OnFirstUser func() // called on the first key press or touch
}

// Intent returns the intent for this frame. An active touch overrides the
// keyboard.
func (in *Input) Intent(p *Player) Intent {
	if in.touching {
		return TouchIntent(p, in.touchX, in.touchY)
	}
	return in.Keys.Intent()
}

func (in *Input) userGesture() {
	if in.OnFirstUser != nil {
		in.OnFirstUser()
		in.OnFirstUser = nil
	}
}

// SetupInputHandlers installs keyboard and touch listeners that drive g.
func (g *Game) SetupInputHandlers(canvas *js.Object, in *Input) {
	document := js.Global.Get("document")

	// Keydown handler
	document.Call("addEventListener", "keydown", func(event *js.Object) {
		in.userGesture()
		rawKeyCode := event.Get("keyCode").Int()

		// Stats overlay toggle (F10 = 121)
		if rawKeyCode == 121 {
			g.Stats.Toggle()
			event.Call("preventDefault")
			return
		}

		if g.HandleKey(rawKeyCode, true, &in.Keys) {
			event.Call("preventDefault")
		}
	})

	// Keyup handler
	document.Call("addEventListener", "keyup", func(event *js.Object) {
		g.HandleKey(event.Get("keyCode").Int(), false, &in.Keys)
	})

	touchPos := func(event *js.Object) (float64, float64) {
		t := event.Get("changedTouches").Index(0)
		rect := canvas.Call("getBoundingClientRect")
		scaleX := Width / rect.Get("width").Float()
		scaleY := Height / rect.Get("height").Float()
		x := (t.Get("clientX").Float() - rect.Get("left").Float()) * scaleX
		y := (t.Get("clientY").Float() - rect.Get("top").Float()) * scaleY
		return x, y
	}

	canvas.Call("addEventListener", "touchstart", func(event *js.Object) {
		event.Call("preventDefault")
		in.userGesture()
		in.touching = true
		in.touchX, in.touchY = touchPos(event)
	})
	canvas.Call("addEventListener", "touchmove", func(event *js.Object) {
		event.Call("preventDefault")
		in.touchX, in.touchY = touchPos(event)
	})
	canvas.Call("addEventListener", "touchend", func(event *js.Object) {
		event.Call("preventDefault")
		in.touching = false
	})
}
