package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/skyport/event"
)

const (
	sampleRate = beep.SampleRate(44100)

	pulseDuration = 60 * time.Millisecond
	pulseAttack   = 5 * time.Millisecond
	pulseRelease  = 40 * time.Millisecond

	// pulseGap throttles repeated pulses on one axis, held keys repeat every tick
	pulseGap = 80 * time.Millisecond
)

// Thruster renders short engine tones for accepted thrust commands
// Without Start it mixes offline, which lets tests pull samples directly
type Thruster struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
	live   bool
	last   map[event.Axis]time.Time
	now    func() time.Time
}

// NewThruster creates a thruster sink at the given master volume
func NewThruster(volume float64) *Thruster {
	return &Thruster{
		mixer:  &beep.Mixer{},
		volume: volume,
		last:   make(map[event.Axis]time.Time),
		now:    time.Now,
	}
}

// Start opens the audio device and plays the mixer
func (t *Thruster) Start() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.live {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("initializing speaker: %w", err)
	}
	speaker.Play(t.mixer)
	t.live = true
	return nil
}

// Close silences pending tones
func (t *Thruster) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.withMixer(func() { t.mixer.Clear() })
	if t.live {
		speaker.Close()
		t.live = false
	}
}

// Pulse queues a tone for the axis; positive sign plays a higher pitch
func (t *Thruster) Pulse(axis event.Axis, sign float64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	if last, ok := t.last[axis]; ok && now.Sub(last) < pulseGap {
		return
	}
	t.last[axis] = now

	tone := t.tone(axis, sign)
	if tone == nil {
		return
	}
	t.withMixer(func() { t.mixer.Add(tone) })
}

// Active returns the number of tones still playing
func (t *Thruster) Active() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	n := 0
	t.withMixer(func() { n = t.mixer.Len() })
	return n
}

// Stream pulls mixed samples, used when no device is attached
func (t *Thruster) Stream(samples [][2]float64) (int, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var n int
	var ok bool
	t.withMixer(func() { n, ok = t.mixer.Stream(samples) })
	return n, ok
}

// withMixer guards mixer access against the speaker goroutine when live
func (t *Thruster) withMixer(fn func()) {
	if t.live {
		speaker.Lock()
		defer speaker.Unlock()
	}
	fn()
}

func (t *Thruster) tone(axis event.Axis, sign float64) beep.Streamer {
	var freq float64
	var wave WaveType
	switch axis {
	case event.AxisForward:
		freq, wave = 110, WaveSaw
	case event.AxisVertical:
		freq, wave = 165, WaveSquare
	case event.AxisYaw:
		freq, wave = 220, WaveNoise
	default:
		return nil
	}
	if sign > 0 {
		freq *= 1.25
	}

	osc := NewOscillator(freq, pulseDuration, wave, sampleRate)
	shaped := NewEnvelope(osc, pulseDuration, pulseAttack, pulseRelease, sampleRate)
	return newVolume(shaped, t.volume)
}
