package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/simukka/topdown-shooter/common"
)

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// CueBank holds every cue pre-rendered at one sample rate.
type CueBank struct {
	rate    beep.SampleRate
	buffers map[Cue][][2]float64
}

// NewCueBank renders every cue in SfxData.
func NewCueBank(sr beep.SampleRate, rng *common.SeededRNG) (*CueBank, error) {
	b := &CueBank{
		rate:    sr,
		buffers: make(map[Cue][][2]float64, len(SfxData)),
	}
	for _, c := range Cues() {
		s, err := Synthesize(sr, SfxData[c], rng)
		if err != nil {
			return nil, fmt.Errorf("render cue %s: %w", c, err)
		}
		b.buffers[c] = Render(s)
	}
	return b, nil
}

// SampleRate returns the rate the bank was rendered at.
func (b *CueBank) SampleRate() beep.SampleRate {
	return b.rate
}

// Samples returns the rendered samples of a cue, or nil.
func (b *CueBank) Samples(c Cue) [][2]float64 {
	return b.buffers[c]
}

// Streamer returns a one-shot stream of a cue, resampled by rate, scaled by
// volume and panned (-1.0 left, 1.0 right).
func (b *CueBank) Streamer(c Cue, pan, volume, rate float64) beep.Streamer {
	var s beep.Streamer = &sampleStreamer{samples: b.buffers[c]}
	if rate > 0 && rate != 1 {
		s = beep.ResampleRatio(3, rate, s)
	}
	s = newVolume(s, volume)
	return &effects.Pan{Streamer: s, Pan: common.Clamp(pan, -1, 1)}
}

// DataURL returns a cue encoded as a WAV data URL.
func (b *CueBank) DataURL(c Cue) (string, error) {
	samples, ok := b.buffers[c]
	if !ok {
		return "", fmt.Errorf("unknown cue %d", c)
	}
	return WAVDataURL(samples, int(b.rate))
}

// sampleStreamer plays a fixed slice once.
type sampleStreamer struct {
	samples [][2]float64
	pos     int
}

func (s *sampleStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.samples) {
		return 0, false
	}
	n = copy(samples, s.samples[s.pos:])
	s.pos += n
	return n, true
}

func (s *sampleStreamer) Err() error { return nil }
