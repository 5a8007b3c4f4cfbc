//go:build !js
// +build !js

package main

import (
	_ "embed"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

//go:embed index.html
var indexHTML []byte

// Environment overrides for the command line defaults
const (
	envAddr   = "TOPDOWN_ADDR"
	envStatic = "TOPDOWN_STATIC"
)

// loadEnv reads an optional .env file. A missing file is not an error.
func loadEnv(log zerolog.Logger) {
	err := godotenv.Load()
	switch {
	case err == nil:
		log.Debug().Msg("loaded .env")
	case errors.Is(err, fs.ErrNotExist):
	default:
		log.Warn().Err(err).Msg("ignoring .env")
	}
}

// envOr returns the environment variable v, or def when it is unset.
func envOr(v, def string) string {
	if s := os.Getenv(v); s != "" {
		return s
	}
	return def
}

// newHandler serves the embedded page at / and everything else from staticDir.
func newHandler(staticDir string, log zerolog.Logger) http.Handler {
	mux := http.NewServeMux()
	files := http.FileServer(http.Dir(staticDir))

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" || r.URL.Path == "/index.html" {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write(indexHTML)
			return
		}
		files.ServeHTTP(w, r)
	})

	// Health check
	mux.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy"}`))
	})

	return logRequests(mux, log)
}

// statusRecorder remembers the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func logRequests(next http.Handler, log zerolog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("took", time.Since(start)).
			Msg("request")
	})
}

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()
	loadEnv(log)

	addr := flag.String("addr", envOr(envAddr, ":8080"), "HTTP listen address")
	staticDir := flag.String("static", envOr(envStatic, "."), "Directory to serve static files from (game.js)")
	debug := flag.Bool("debug", false, "Log every request")
	flag.Parse()

	level := zerolog.InfoLevel
	if *debug {
		level = zerolog.DebugLevel
	}
	log = log.Level(level)

	srv := &http.Server{
		Addr:              *addr,
		Handler:           newHandler(*staticDir, log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Info().Str("addr", *addr).Str("static", *staticDir).Msg("serving topdown shooter")
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal().Err(fmt.Errorf("http server: %w", err)).Msg("server stopped")
	}
}
