package audio

import (
	"encoding/binary"
	"math"
)

const (
	// SampleRate is the output sample rate in Hz.
	SampleRate = 44100
	// ToneFrequency is the pitch of the beep in Hz.
	ToneFrequency = 440.0
	// Volume is the square wave amplitude, 0..1.
	Volume = 0.5
)

// Gate reports whether the sound timer currently wants tone output.
// The implementation must be safe to call from the audio goroutine;
// timer.Timer satisfies this with an atomic bool.
type Gate interface {
	SoundActive() bool
}

// Tone generates a fixed-frequency square wave while the gate is
// asserted and silence otherwise. It implements io.Reader producing
// 32-bit float little-endian mono samples, the format the oto player
// consumes.
type Tone struct {
	gate     Gate
	phase    float64
	phaseInc float64
}

func NewTone(gate Gate) *Tone {
	return &Tone{
		gate:     gate,
		phaseInc: ToneFrequency / SampleRate,
	}
}

func (t *Tone) Read(p []byte) (int, error) {
	const bytesPerSample = 4
	samples := len(p) / bytesPerSample

	active := t.gate.SoundActive()

	for i := 0; i < samples; i++ {
		var sample float32
		if active {
			if t.phase < 0.5 {
				sample = Volume
			} else {
				sample = -Volume
			}
			t.phase += t.phaseInc
			if t.phase >= 1.0 {
				t.phase -= 1.0
			}
		}
		binary.LittleEndian.PutUint32(p[i*bytesPerSample:], math.Float32bits(sample))
	}

	return samples * bytesPerSample, nil
}
