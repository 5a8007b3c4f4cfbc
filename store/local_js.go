//go:build js

package store

import (
	"errors"
	"strconv"

	"github.com/gopherjs/gopherjs/js"
)

// Local is a Store backed by the browser's localStorage.
type Local struct {
	storage *js.Object
}

// NewLocal returns a store over window.localStorage, or an error when the
// browser does not expose it (private mode, sandboxed iframes).
func NewLocal() (*Local, error) {
	storage := js.Global.Get("localStorage")
	if storage == nil || storage == js.Undefined {
		return nil, errors.New("localStorage unavailable")
	}
	return &Local{storage: storage}, nil
}

// Get returns the value under key, or 0 when it is missing or not a number.
func (l *Local) Get(key string) float64 {
	item := l.storage.Call("getItem", key)
	if item == nil || item == js.Undefined {
		return 0
	}
	v, err := strconv.ParseFloat(item.String(), 64)
	if err != nil {
		return 0
	}
	return v
}

// Set stores v under key.
func (l *Local) Set(key string, v float64) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.New("localStorage write failed")
		}
	}()
	l.storage.Call("setItem", key, strconv.FormatFloat(v, 'f', -1, 64))
	return nil
}
