package play

import (
	"encoding/binary"
	"math"

	"github.com/airwaves/gendy"
)

// A Reader renders a voice as little-endian float32 mono samples.  Reads
// never fail; a read shorter than one sample returns 0 bytes.
type Reader struct {
	v   gendy.Voice
	buf gendy.Audio
}

func NewReader(v gendy.Voice) *Reader {
	return &Reader{v: v, buf: make(gendy.Audio, FramesPerBuffer)}
}

func (r *Reader) Read(p []byte) (int, error) {
	n := len(p) / 4
	if cap(r.buf) < n {
		r.buf = make(gendy.Audio, n)
	}
	b := r.buf[:n]
	r.v.RenderBlock(b)
	for i, x := range b {
		binary.LittleEndian.PutUint32(p[4*i:], math.Float32bits(float32(x)))
	}
	return 4 * n, nil
}

// fill renders v into out in chunks of at most len(buf) samples.
func fill(v gendy.Voice, buf gendy.Audio, out []float32) {
	for len(out) > 0 {
		b := buf[:min(len(buf), len(out))]
		v.RenderBlock(b)
		b.Float32(out)
		out = out[len(b):]
	}
}
