//go:build js

package audio

import (
	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/topdown-shooter/common"
)

// AudioManager plays cues through the Web Audio API.
type AudioManager struct {
	ctx        *js.Object
	masterGain *js.Object
	buffers    map[Cue]*js.Object
	ready      bool
	AudioCtx   *js.Object // Exposed for state checking
	rng        *common.SeededRNG
	bank       *CueBank
}

// NewAudioManager creates a new audio manager. Nothing is allocated in the
// browser until Init.
func NewAudioManager(rng *common.SeededRNG) *AudioManager {
	return &AudioManager{
		buffers: make(map[Cue]*js.Object),
		rng:     rng,
	}
}

// Init creates the audio context, renders every cue and starts decoding
// them. Browsers only allow this after a user gesture.
func (am *AudioManager) Init() error {
	if am.ctx != nil {
		return nil
	}

	audioCtx := js.Global.Get("AudioContext")
	if audioCtx == nil || audioCtx == js.Undefined {
		audioCtx = js.Global.Get("webkitAudioContext")
	}
	if audioCtx == nil || audioCtx == js.Undefined {
		return nil
	}

	am.ctx = audioCtx.New()
	am.AudioCtx = am.ctx
	am.masterGain = am.ctx.Call("createGain")
	am.masterGain.Call("connect", am.ctx.Get("destination"))
	am.SetVolume(AudioConfig.MasterVolume)

	bank, err := NewCueBank(AudioConfig.SampleRate, am.rng)
	if err != nil {
		return err
	}
	am.bank = bank

	for _, c := range Cues() {
		url, err := bank.DataURL(c)
		if err != nil {
			return err
		}
		am.LoadSound(c, url)
	}

	am.ready = true
	return nil
}

// LoadSound loads and decodes a cue from a WAV data URL.
func (am *AudioManager) LoadSound(c Cue, dataURL string) {
	if am.ctx == nil {
		return
	}

	fetchPromise := js.Global.Call("fetch", dataURL)
	fetchPromise.Call("then", func(response *js.Object) {
		arrayBufferPromise := response.Call("arrayBuffer")
		arrayBufferPromise.Call("then", func(arrayBuffer *js.Object) {
			decodePromise := am.ctx.Call("decodeAudioData", arrayBuffer)
			decodePromise.Call("then", func(audioBuffer *js.Object) {
				am.buffers[c] = audioBuffer
			})
		})
	})
}

// Resume wakes a suspended audio context.
func (am *AudioManager) Resume() {
	if am.ctx != nil && am.ctx.Get("state").String() == "suspended" {
		am.ctx.Call("resume")
	}
}

// Play plays a cue with stereo panning and volume control.
// pan: -1.0 = full left, 0.0 = center, 1.0 = full right
func (am *AudioManager) Play(c Cue, pan, volume float64) {
	if !am.ready || AudioConfig.Muted {
		return
	}
	buffer, ok := am.buffers[c]
	if !ok || buffer == nil {
		return
	}

	am.Resume()

	panner := am.ctx.Call("createStereoPanner")
	panner.Get("pan").Set("value", common.Clamp(pan, -1, 1))

	gainNode := am.ctx.Call("createGain")
	gainNode.Get("gain").Set("value", common.Clamp(volume, 0, 2))

	source := am.ctx.Call("createBufferSource")
	source.Set("buffer", buffer)
	source.Get("playbackRate").Set("value", SfxData[c].PlaybackRate(am.rng))
	source.Call("connect", gainNode)
	gainNode.Call("connect", panner)
	panner.Call("connect", am.masterGain)

	source.Call("start", 0)
}

// SetVolume sets the master volume (0.0 to 1.0).
func (am *AudioManager) SetVolume(volume float64) {
	if am.masterGain == nil {
		return
	}
	am.masterGain.Get("gain").Set("value", common.Clamp(volume, 0, 1))
}
