package audio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/skyport/event"
)

func TestThrusterPulseThrottleAndDrain(t *testing.T) {
	th := NewThruster(0.5)
	clock := time.Unix(0, 0)
	th.now = func() time.Time { return clock }

	th.Pulse(event.AxisForward, 1)
	th.Pulse(event.AxisForward, 1)
	assert.Equal(t, 1, th.Active(), "repeat within gap is throttled")

	th.Pulse(event.AxisBrake, 1)
	assert.Equal(t, 1, th.Active(), "brake has no tone")

	th.Pulse(event.AxisYaw, -1)
	assert.Equal(t, 2, th.Active())

	clock = clock.Add(pulseGap)
	th.Pulse(event.AxisForward, -1)
	assert.Equal(t, 3, th.Active())

	buf := make([][2]float64, sampleRate.N(pulseDuration)/2)
	th.Stream(buf)
	peak := 0.0
	for _, s := range buf {
		if s[0] > peak {
			peak = s[0]
		}
	}
	assert.Greater(t, peak, 0.0)

	for i := 0; i < 4; i++ {
		th.Stream(buf)
	}
	assert.Equal(t, 0, th.Active(), "finished tones leave the mixer")
	th.Close()
}

func TestOscillatorLength(t *testing.T) {
	osc := NewOscillator(440, 10*time.Millisecond, WaveSine, sampleRate)
	buf := make([][2]float64, 1024)

	total := 0
	for {
		n, ok := osc.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	assert.Equal(t, sampleRate.N(10*time.Millisecond), total)
}
