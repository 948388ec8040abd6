// Package audio synthesizes the game's sound cues with gopxl/beep. There
// are no sample assets; every cue is an oscillator shaped by an envelope,
// mixed into a single speaker stream.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/typestorm/internal/engine"
)

const sampleRate = beep.SampleRate(44100)

// Player turns engine cues into synthesized sounds. It implements
// engine.CueSink. A Player whose Init failed, or that was never
// initialized, silently drops cues, so headless runs need no special
// casing.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      int // 0..100
	initialized bool
}

// NewPlayer creates an uninitialized player at the given volume.
func NewPlayer(volume int) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Init opens the speaker and starts the mix loop. Safe to call twice.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close silences and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

// SetVolume changes the cue volume, 0..100.
func (p *Player) SetVolume(volume int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.volume = volume
}

// Play implements engine.CueSink.
func (p *Player) Play(cue engine.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.volume <= 0 {
		return
	}

	streamer := Synthesize(cue)
	if streamer == nil {
		return
	}

	// map 0..100 onto an exponential gain, -4..0 in Base-2 volume units
	gained := &effects.Volume{
		Streamer: streamer,
		Base:     2,
		Volume:   (float64(p.volume)/100 - 1) * 4,
	}

	speaker.Lock()
	p.mixer.Add(gained)
	speaker.Unlock()
}

// Synthesize builds the streamer for one cue. Exposed for tests, which
// drain streamers without a speaker.
func Synthesize(cue engine.Cue) beep.Streamer {
	switch cue {
	case engine.CueLaser:
		// descending zap
		osc := NewSweep(1200, 220, 90*time.Millisecond, WaveSaw, sampleRate)
		return NewEnvelope(osc, 90*time.Millisecond, 2*time.Millisecond, 60*time.Millisecond, sampleRate)
	case engine.CueExplosion:
		osc := NewOscillator(0, 300*time.Millisecond, WaveNoise, sampleRate)
		return NewEnvelope(osc, 300*time.Millisecond, 5*time.Millisecond, 250*time.Millisecond, sampleRate)
	case engine.CueError:
		osc := NewOscillator(110, 150*time.Millisecond, WaveSquare, sampleRate)
		return NewEnvelope(osc, 150*time.Millisecond, 2*time.Millisecond, 40*time.Millisecond, sampleRate)
	case engine.CueSelect:
		osc := NewSweep(520, 660, 80*time.Millisecond, WaveSine, sampleRate)
		return NewEnvelope(osc, 80*time.Millisecond, 5*time.Millisecond, 30*time.Millisecond, sampleRate)
	default:
		return nil
	}
}
