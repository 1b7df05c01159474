//go:build oto

package play

import (
	"time"

	"github.com/airwaves/gendy"
	"github.com/ebitengine/oto/v3"
)

const backend = "oto"

type otoStream struct {
	ctx    *oto.Context
	player *oto.Player
}

func start(v gendy.Voice, p gendy.Params) (stream, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   int(p.SampleRate),
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
		BufferSize:   time.Duration(FramesPerBuffer * float64(time.Second) / p.SampleRate),
	})
	if err != nil {
		return nil, err
	}
	<-ready
	player := ctx.NewPlayer(NewReader(v))
	player.Play()
	return &otoStream{ctx, player}, nil
}

func (s *otoStream) stop() error {
	s.player.Pause()
	if err := s.player.Close(); err != nil {
		return err
	}
	return s.ctx.Suspend()
}
