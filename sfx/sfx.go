// Package sfx plays short synthesized cues for game events.
package sfx

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/pthm-cable/tiltsnake/systems"
)

const sampleRate = beep.SampleRate(44100)

// Cue is a single sine blip.
type Cue struct {
	Freq     float64
	Duration time.Duration
}

var (
	cueEat   = Cue{Freq: 880, Duration: 50 * time.Millisecond}
	cueGrow  = Cue{Freq: 660, Duration: 30 * time.Millisecond}
	cueBomb  = Cue{Freq: 110, Duration: 250 * time.Millisecond}
	cueCrash = Cue{Freq: 220, Duration: 180 * time.Millisecond}
	cueBest  = Cue{Freq: 1320, Duration: 120 * time.Millisecond}
)

// CuesFor returns the cues one controller update should trigger, loudest event first.
func CuesFor(out systems.Outcome) []Cue {
	var cues []Cue
	switch {
	case out.Hazard:
		cues = append(cues, cueBomb)
	case out.SelfCollision:
		cues = append(cues, cueCrash)
	case out.Ate:
		cues = append(cues, cueEat)
	case out.Sample == systems.SampleGrew:
		cues = append(cues, cueGrow)
	}
	if out.NewHighScore {
		cues = append(cues, cueBest)
	}
	return cues
}

// Player owns the speaker and mixes cues into it.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64 // log2 gain
	initialized bool
}

// NewPlayer creates a player. volume is a gain in log2 units, 0 leaves cues unchanged.
func NewPlayer(volume float64) *Player {
	return &Player{mixer: &beep.Mixer{}, volume: volume}
}

// Init opens the audio device. Failure is non-fatal to callers: an
// uninitialized player ignores Play.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("initializing speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues the cues for one update.
func (p *Player) Play(out systems.Outcome) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	for _, c := range CuesFor(out) {
		s, err := p.stream(c)
		if err != nil {
			continue
		}
		speaker.Lock()
		p.mixer.Add(s)
		speaker.Unlock()
	}
}

// stream renders a cue as a finite streamer.
func (p *Player) stream(c Cue) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, c.Freq)
	if err != nil {
		return nil, err
	}
	return &effects.Volume{
		Streamer: beep.Take(sampleRate.N(c.Duration), sine),
		Base:     2,
		Volume:   p.volume,
	}, nil
}

// Close silences the mixer and releases the device.
func (p *Player) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}
