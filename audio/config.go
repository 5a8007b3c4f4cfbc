package audio

import "github.com/gopxl/beep"

// Config holds the mix settings shared by every playback backend.
type Config struct {
	MasterVolume float64         // 0.0 - 1.0
	SampleRate   beep.SampleRate // rate cues are synthesized at
	Muted        bool
}

// AudioConfig is the active configuration.
var AudioConfig = DefaultConfig()

// DefaultConfig returns the stock mix settings.
func DefaultConfig() Config {
	return Config{
		MasterVolume: 0.7,
		SampleRate:   beep.SampleRate(44100),
	}
}
