//go:build js

package game

import (
	"encoding/json"

	"github.com/gopherjs/gopherjs/js"
)

// ConsoleWriter forwards zerolog JSON lines to the browser console, using
// the console method that matches each line's level.
type ConsoleWriter struct{}

// Write implements io.Writer.
func (ConsoleWriter) Write(p []byte) (int, error) {
	var entry struct {
		Level string `json:"level"`
	}
	method := "log"
	if json.Unmarshal(p, &entry) == nil {
		switch entry.Level {
		case "debug", "trace":
			method = "debug"
		case "warn":
			method = "warn"
		case "error", "fatal", "panic":
			method = "error"
		}
	}
	js.Global.Get("console").Call(method, string(p))
	return len(p), nil
}
