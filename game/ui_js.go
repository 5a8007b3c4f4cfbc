//go:build js

package game

import (
	"strconv"

	"github.com/gopherjs/gopherjs/js"
)

// DOMUI shows the score line and the pause / game over overlay.
type DOMUI struct {
	ScoreEl     *js.Object
	Overlay     *js.Object
	OverlayText *js.Object
}

// NewDOMUI looks up the page elements by id. A missing score element is
// created and appended to the body.
func NewDOMUI() *DOMUI {
	document := js.Global.Get("document")
	byID := func(id string) *js.Object {
		el := document.Call("getElementById", id)
		if el == nil || el == js.Undefined {
			return nil
		}
		return el
	}

	ui := &DOMUI{
		ScoreEl:     byID("score"),
		Overlay:     byID("overlay"),
		OverlayText: byID("overlayText"),
	}
	if ui.ScoreEl == nil {
		ui.ScoreEl = document.Call("createElement", "div")
		ui.ScoreEl.Set("id", "score")
		document.Get("body").Call("appendChild", ui.ScoreEl)
	}
	return ui
}

// UpdateHUD implements UI.
func (ui *DOMUI) UpdateHUD(h HUD) {
	ui.ScoreEl.Set("textContent", "Score: "+strconv.Itoa(h.Score)+
		" | Highscore: "+strconv.Itoa(h.Highscore)+
		" | HP: "+strconv.Itoa(h.HP)+"/"+strconv.Itoa(h.MaxHP))
}

// ShowPaused implements UI.
func (ui *DOMUI) ShowPaused(paused bool) {
	if paused {
		ui.show("Paused\nPress P to resume")
		return
	}
	ui.hide()
}

// ShowGameOver implements UI.
func (ui *DOMUI) ShowGameOver(score, highscore int) {
	ui.show("Game Over - Score: " + strconv.Itoa(score) + "\nHighscore: " + strconv.Itoa(highscore))
}

func (ui *DOMUI) show(text string) {
	if ui.Overlay == nil {
		return
	}
	if ui.OverlayText != nil {
		ui.OverlayText.Set("textContent", text)
	}
	ui.Overlay.Get("classList").Call("remove", "hidden")
}

func (ui *DOMUI) hide() {
	if ui.Overlay == nil {
		return
	}
	ui.Overlay.Get("classList").Call("add", "hidden")
}
