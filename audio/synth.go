package audio

import (
	"fmt"
	"math"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/simukka/topdown-shooter/common"
)

// silence is the floor of the exponential envelope. An exponential ramp
// cannot start or end at zero.
const silence = 0.0001

// EnvelopeGain returns the gain of a beep envelope at time t: an exponential
// rise from silence to peak over attack, then an exponential fall back to
// silence at duration.
func EnvelopeGain(t, attack, duration, peak float64) float64 {
	switch {
	case t <= 0:
		return silence
	case t < attack:
		return silence * math.Pow(peak/silence, t/attack)
	case t < duration:
		span := duration - attack
		if span <= 0 {
			return peak
		}
		return peak * math.Pow(silence/peak, (t-attack)/span)
	}
	return silence
}

// squareOsc generates a square wave for a fixed number of samples.
type squareOsc struct {
	freq     float64
	phase    float64
	rate     beep.SampleRate
	position int
	duration int
}

func (o *squareOsc) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		val := -1.0
		if o.phase < 0.5 {
			val = 1.0
		}
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *squareOsc) Err() error { return nil }

// beepEnvelope shapes a stream with EnvelopeGain and ends it at duration.
type beepEnvelope struct {
	streamer beep.Streamer
	rate     beep.SampleRate
	position int
	total    int
	attack   float64
	duration float64
	peak     float64
}

func (e *beepEnvelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.total {
		return 0, false
	}
	if remaining := e.total - e.position; len(samples) > remaining {
		samples = samples[:remaining]
	}

	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		g := EnvelopeGain(e.rate.D(e.position).Seconds(), e.attack, e.duration, e.peak)
		samples[i][0] *= g
		samples[i][1] *= g
		e.position++
	}
	return n, ok
}

func (e *beepEnvelope) Err() error { return e.streamer.Err() }

// Tone returns a short enveloped tone. Sine tones come from beep's
// generators; square tones from a local oscillator.
func Tone(sr beep.SampleRate, wave WaveType, freq, duration, peak, attack float64) (beep.Streamer, error) {
	total := sr.N(secondsToDuration(duration))

	var osc beep.Streamer
	switch wave {
	case WaveSine:
		sine, err := generators.SineTone(sr, freq)
		if err != nil {
			return nil, fmt.Errorf("sine tone %.0f Hz: %w", freq, err)
		}
		osc = sine
	case WaveSquare:
		osc = &squareOsc{freq: freq, rate: sr, duration: total}
	default:
		return nil, fmt.Errorf("tone: unsupported wave %s", wave)
	}

	return &beepEnvelope{
		streamer: osc,
		rate:     sr,
		total:    total,
		attack:   attack,
		duration: duration,
		peak:     peak,
	}, nil
}

// noiseBurst is white noise fading linearly to zero.
type noiseBurst struct {
	rng      *common.SeededRNG
	gain     float64
	position int
	total    int
}

func (b *noiseBurst) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if b.position >= b.total {
			return i, i > 0
		}
		fade := 1 - float64(b.position)/float64(b.total)
		val := (b.rng.Random()*2 - 1) * fade * b.gain
		samples[i][0] = val
		samples[i][1] = val
		b.position++
	}
	return len(samples), true
}

func (b *noiseBurst) Err() error { return nil }

// NoiseBurst returns duration seconds of decaying white noise.
func NoiseBurst(sr beep.SampleRate, duration, gain float64, rng *common.SeededRNG) beep.Streamer {
	return &noiseBurst{
		rng:   rng,
		gain:  gain,
		total: sr.N(secondsToDuration(duration)),
	}
}

// Synthesize builds the streamer for a sound effect.
func Synthesize(sr beep.SampleRate, e SoundEffect, rng *common.SeededRNG) (beep.Streamer, error) {
	if e.Wave == WaveNoise {
		return NoiseBurst(sr, e.Duration, e.Gain, rng), nil
	}
	return Tone(sr, e.Wave, e.Frequency, e.Duration, e.Gain, e.Attack)
}

// Render drains a finite streamer into a sample slice.
func Render(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok || n == 0 {
			return out
		}
	}
}

// newVolume wraps s in a linear gain.
// math.Log2(0) is -Inf, so a zero gain is mapped to a silent stream.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
