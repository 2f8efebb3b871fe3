package audio

import (
	"fmt"

	"github.com/ebitengine/oto/v3"
)

// Player owns the audio device and feeds it the gated square wave.
// The oto context pulls samples on its own goroutine; the sound timer
// gate is the only state shared across that boundary.
type Player struct {
	ctx    *oto.Context
	player *oto.Player
}

// NewPlayer opens the default audio device and starts playback of the
// (initially silent) tone.
func NewPlayer(gate Gate) (*Player, error) {
	op := &oto.NewContextOptions{
		SampleRate:   SampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio device: %w", err)
	}
	<-ready

	p := &Player{
		ctx:    ctx,
		player: ctx.NewPlayer(NewTone(gate)),
	}
	p.player.Play()
	return p, nil
}

func (p *Player) Close() error {
	if p.player != nil {
		return p.player.Close()
	}
	return nil
}
