//go:build !oto

package play

import (
	"errors"

	"github.com/airwaves/gendy"
	"github.com/gordonklaus/portaudio"
)

const backend = "portaudio"

type paStream struct {
	s *portaudio.Stream
}

func start(v gendy.Voice, p gendy.Params) (stream, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, err
	}
	buf := make(gendy.Audio, FramesPerBuffer)
	s, err := portaudio.OpenDefaultStream(0, 1, p.SampleRate, FramesPerBuffer, func(out []float32) {
		fill(v, buf, out)
	})
	if err != nil {
		return nil, errors.Join(err, portaudio.Terminate())
	}
	if err := s.Start(); err != nil {
		return nil, errors.Join(err, s.Close(), portaudio.Terminate())
	}
	return &paStream{s}, nil
}

func (s *paStream) stop() error {
	return errors.Join(s.s.Stop(), s.s.Close(), portaudio.Terminate())
}
