// Package play sends a voice to the default audio output.
//
// The portaudio backend is used by default.  Building with the oto tag
// selects the oto backend instead, which needs no C library on most
// platforms.
package play

import (
	"context"
	"log/slog"

	"github.com/airwaves/gendy"
)

// FramesPerBuffer is the block size requested from the output device.
const FramesPerBuffer = 512

type stream interface {
	stop() error
}

// Play renders v at p's sample rate until ctx is done.  v is initialized
// with p before the first block.
func Play(ctx context.Context, v gendy.Voice, p gendy.Params) error {
	gendy.Init(v, p)
	s, err := start(v, p)
	if err != nil {
		return err
	}
	slog.Info("play: started", "backend", backend, "rate", p.SampleRate)
	<-ctx.Done()
	slog.Info("play: stopping")
	return s.stop()
}
