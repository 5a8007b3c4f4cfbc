//go:build !js

package main

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/simukka/topdown-shooter/audio"
	"github.com/simukka/topdown-shooter/common"
)

// SpeakerSound plays cues on the default output device.
type SpeakerSound struct {
	mu    sync.Mutex
	bank  *audio.CueBank
	mixer *beep.Mixer
	rng   *common.SeededRNG
	muted bool
}

// NewSpeakerSound renders the cue bank and opens the speaker.
func NewSpeakerSound(cfg audio.Config, rng *common.SeededRNG) (*SpeakerSound, error) {
	bank, err := audio.NewCueBank(cfg.SampleRate, rng)
	if err != nil {
		return nil, fmt.Errorf("sound: %w", err)
	}

	if err := speaker.Init(cfg.SampleRate, cfg.SampleRate.N(time.Millisecond*100)); err != nil {
		return nil, fmt.Errorf("sound: open speaker: %w", err)
	}

	s := &SpeakerSound{
		bank:  bank,
		mixer: &beep.Mixer{},
		rng:   rng,
		muted: cfg.Muted,
	}
	speaker.Play(s.mixer)
	return s, nil
}

// Play implements game.Sound.
func (s *SpeakerSound) Play(c audio.Cue, pan, volume float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.muted {
		return
	}
	fx := audio.SfxData[c]
	streamer := s.bank.Streamer(c, pan, volume*audio.AudioConfig.MasterVolume, fx.PlaybackRate(s.rng))

	speaker.Lock()
	s.mixer.Add(streamer)
	speaker.Unlock()
}

// ToggleMute flips the mute state and returns it.
func (s *SpeakerSound) ToggleMute() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.muted = !s.muted
	return s.muted
}

// Close silences every cue still playing.
func (s *SpeakerSound) Close() {
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}
