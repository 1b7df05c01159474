package gendy

import (
	"math"
	"math/cmplx"

	"github.com/ktye/fft"
)

// A Spectrum analyzes blocks of audio with a Hann-windowed FFT.
type Spectrum struct {
	fft fft.FFT
	env []float64
	buf []complex128
	mag []float64
}

// NewSpectrum returns an analyzer for blocks of up to size samples.  The
// transform length is size rounded up to a power of two; shorter blocks are
// zero padded.
func NewSpectrum(size int) (*Spectrum, error) {
	n := 1
	for n < size {
		n <<= 1
	}
	f, err := fft.New(n)
	if err != nil {
		return nil, err
	}
	env := make([]float64, n)
	for i := range env {
		env[i] = (1 - math.Cos(2*math.Pi*float64(i)/float64(n))) / 2
	}
	return &Spectrum{
		fft: f,
		env: env,
		buf: make([]complex128, n),
		mag: make([]float64, n/2+1),
	}, nil
}

// Size is the transform length.
func (s *Spectrum) Size() int { return len(s.buf) }

// Magnitudes returns the magnitude of bins 0 through Size/2 of x.  The
// result is reused by the next call.
func (s *Spectrum) Magnitudes(x Audio) []float64 {
	for i := range s.buf {
		v := 0.0
		if i < len(x) {
			v = x[i] * s.env[i]
		}
		s.buf[i] = complex(v, 0)
	}
	s.buf = s.fft.Transform(s.buf)
	for i := range s.mag {
		s.mag[i] = cmplx.Abs(s.buf[i])
	}
	return s.mag
}

// Peak returns the bin with the largest magnitude, ignoring DC.
func (s *Spectrum) Peak(x Audio) int {
	mag := s.Magnitudes(x)
	peak := 1
	for i := 2; i < len(mag); i++ {
		if mag[i] > mag[peak] {
			peak = i
		}
	}
	return peak
}

// Centroid returns the magnitude-weighted mean frequency of x in Hz, or 0
// for silence.
func (s *Spectrum) Centroid(x Audio, sampleRate float64) float64 {
	mag := s.Magnitudes(x)
	binHz := sampleRate / float64(len(s.buf))
	var sum, weighted float64
	for i, m := range mag {
		sum += m
		weighted += m * float64(i) * binHz
	}
	if sum == 0 {
		return 0
	}
	return weighted / sum
}
