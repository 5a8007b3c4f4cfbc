package audio

import "github.com/simukka/topdown-shooter/common"

// Cue identifies a sound the simulation can ask for.
type Cue int

const (
	CueFire1 Cue = iota
	CueFire2
	CueFire3
	CueFire4
	CuePickup
	CueExplosion

	cueCount
)

// FireCue returns the fire cue for a weapon level. Levels above 4 share the
// burst sound.
func FireCue(level int) Cue {
	switch {
	case level <= 1:
		return CueFire1
	case level == 2:
		return CueFire2
	case level == 3:
		return CueFire3
	}
	return CueFire4
}

// Cues lists every cue in ID order.
func Cues() []Cue {
	out := make([]Cue, 0, cueCount)
	for c := Cue(0); c < cueCount; c++ {
		out = append(out, c)
	}
	return out
}

func (c Cue) String() string {
	if e, ok := SfxData[c]; ok {
		return e.Name
	}
	return "unknown"
}

// WaveType represents the oscillator waveform of a cue
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
)

func (w WaveType) String() string {
	switch w {
	case WaveSine:
		return "Sine"
	case WaveSquare:
		return "Square"
	case WaveNoise:
		return "Noise"
	default:
		return "Unknown"
	}
}

// SoundEffect describes how a cue is synthesized.
type SoundEffect struct {
	ID          Cue
	Name        string
	Category    string // Player, Pickup, World
	Description string

	Wave      WaveType
	Frequency float64 // Hz, ignored for noise
	Duration  float64 // seconds
	Gain      float64 // peak envelope gain
	Attack    float64 // seconds to reach peak

	// Playback rate range. Noise cues are pitched randomly per play.
	RateMin, RateMax float64
}

// PlaybackRate picks a playback rate for one play of the effect.
func (s SoundEffect) PlaybackRate(rng *common.SeededRNG) float64 {
	if s.RateMax <= s.RateMin || rng == nil {
		if s.RateMin > 0 {
			return s.RateMin
		}
		return 1
	}
	return rng.RandomFloat(s.RateMin, s.RateMax)
}

// SfxData maps each cue to its synthesis parameters.
var SfxData = map[Cue]SoundEffect{
	CueFire1: {
		ID: CueFire1, Name: "fire1", Category: "Player", Description: "Single shot",
		Wave: WaveSine, Frequency: 880, Duration: 0.04, Gain: 0.05, Attack: 0.005,
		RateMin: 1, RateMax: 1,
	},
	CueFire2: {
		ID: CueFire2, Name: "fire2", Category: "Player", Description: "Twin shot",
		Wave: WaveSine, Frequency: 920, Duration: 0.05, Gain: 0.06, Attack: 0.005,
		RateMin: 1, RateMax: 1,
	},
	CueFire3: {
		ID: CueFire3, Name: "fire3", Category: "Player", Description: "Spread shot",
		Wave: WaveSine, Frequency: 1000, Duration: 0.04, Gain: 0.07, Attack: 0.005,
		RateMin: 1, RateMax: 1,
	},
	CueFire4: {
		ID: CueFire4, Name: "fire4", Category: "Player", Description: "Rapid burst",
		Wave: WaveSquare, Frequency: 1200, Duration: 0.03, Gain: 0.05, Attack: 0.005,
		RateMin: 1, RateMax: 1,
	},
	CuePickup: {
		ID: CuePickup, Name: "pickup", Category: "Pickup", Description: "Powerup collected",
		Wave: WaveSine, Frequency: 1200, Duration: 0.06, Gain: 0.07, Attack: 0.005,
		RateMin: 1, RateMax: 1,
	},
	CueExplosion: {
		ID: CueExplosion, Name: "explosion", Category: "World", Description: "Decaying noise burst",
		Wave: WaveNoise, Duration: 0.2, Gain: 0.5,
		RateMin: 0.8, RateMax: 1.4,
	},
}
