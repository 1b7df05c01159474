// Package wavfile writes rendered audio to 16-bit mono WAV files.
package wavfile

import (
	"errors"
	"io"
	"math"
	"os"

	"github.com/airwaves/gendy"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const bitDepth = 16

// A Writer encodes blocks of samples as they are rendered.  Samples outside
// [-1, 1] are clipped.
type Writer struct {
	f   io.WriteCloser
	enc *wav.Encoder
	buf *audio.IntBuffer
}

// Create creates the file at path and writes a WAV header for sampleRate.
func Create(path string, sampleRate int) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &Writer{
		f:   f,
		enc: wav.NewEncoder(f, sampleRate, bitDepth, 1, 1),
		buf: &audio.IntBuffer{
			Format: &audio.Format{
				NumChannels: 1,
				SampleRate:  sampleRate,
			},
			SourceBitDepth: bitDepth,
		},
	}, nil
}

// Write appends x to the file.
func (w *Writer) Write(x gendy.Audio) error {
	if cap(w.buf.Data) < len(x) {
		w.buf.Data = make([]int, len(x))
	}
	w.buf.Data = w.buf.Data[:len(x)]
	for i, v := range x {
		w.buf.Data[i] = int(math.Round(max(-1, min(v, 1)) * math.MaxInt16))
	}
	return w.enc.Write(w.buf)
}

// Close finishes the header and closes the file.
func (w *Writer) Close() error {
	return errors.Join(w.enc.Close(), w.f.Close())
}

// Read decodes a mono WAV file written by Writer, returning its samples
// scaled to [-1, 1] and its sample rate.
func Read(path string) (gendy.Audio, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()
	d := wav.NewDecoder(f)
	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, 0, err
	}
	x := make(gendy.Audio, len(buf.Data))
	for i, v := range buf.Data {
		x[i] = float64(v) / math.MaxInt16
	}
	return x, buf.Format.SampleRate, nil
}
