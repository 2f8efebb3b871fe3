package audio

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedGate bool

func (g fixedGate) SoundActive() bool { return bool(g) }

func readSamples(t *testing.T, tone *Tone, count int) []float32 {
	t.Helper()

	buf := make([]byte, count*4)
	n, err := tone.Read(buf)
	require.NoError(t, err)
	require.Equal(t, len(buf), n)

	samples := make([]float32, count)
	for i := range samples {
		samples[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
	}
	return samples
}

func TestTone_SilentWhenGateClosed(t *testing.T) {
	tone := NewTone(fixedGate(false))

	for _, s := range readSamples(t, tone, 256) {
		assert.Equal(t, float32(0), s)
	}
}

func TestTone_SquareWaveWhenGateOpen(t *testing.T) {
	tone := NewTone(fixedGate(true))

	samples := readSamples(t, tone, SampleRate/100)

	var high, low int
	for _, s := range samples {
		switch s {
		case Volume:
			high++
		case -Volume:
			low++
		default:
			t.Fatalf("unexpected sample value %v", s)
		}
	}

	// A square wave spends half its period on each rail.
	assert.InDelta(t, high, low, float64(len(samples))/10)
}
