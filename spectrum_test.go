package gendy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSpectrumPeak(t *testing.T) {
	s, err := NewSpectrum(1000)
	require.NoError(t, err)
	require.Equal(t, 1024, s.Size())

	e := New(WithConfig(zeroStep(128, 8, Sine, Cubic)))
	x := render(e, 1024)
	require.Equal(t, 8, s.Peak(x))
	require.InDelta(t, 8*44100/1024.0, s.Centroid(x, 44100), 150)
}

func TestSpectrumZeroPads(t *testing.T) {
	s, err := NewSpectrum(256)
	require.NoError(t, err)
	x := make(Audio, 100)
	for i := range x {
		x[i] = math.Sin(2 * math.Pi * float64(i) / 8)
	}
	require.Equal(t, 32, s.Peak(x))
	require.Zero(t, s.Centroid(make(Audio, 256), 44100))
}

func TestDCFilter(t *testing.T) {
	f := &DCFilter{}
	Init(f, Params{SampleRate: 44100})
	x := make(Audio, 44100)
	for i := range x {
		x[i] = .5
	}
	f.FilterBlock(x)
	require.InDelta(t, 0, x[len(x)-1], 1e-3)
}

func TestAmpMeter(t *testing.T) {
	m := NewAmpMeter(.01)
	Init(m, Params{SampleRate: 44100})
	require.Len(t, m.buf, 441)
	e := New(WithConfig(zeroStep(147, 8, Square, Linear)))
	rms := m.Amplitude(render(e, 4410))
	require.Greater(t, rms, .7)
	require.LessOrEqual(t, rms, 1.0)
	require.InDelta(t, 0, m.Amplitude(make(Audio, 441)), 1e-6)
}

func TestMultiVoice(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StepHeight = .4
	m := &MultiVoice{Params: Params{SampleRate: 44100}, Gain: .5}
	m.Add(New(WithConfig(cfg), WithSeed(1)))
	m.Add(New(WithConfig(cfg), WithSeed(2)))
	require.Equal(t, 2, m.Len())

	a := render(New(WithConfig(cfg), WithSeed(1)), 300)
	b := render(New(WithConfig(cfg), WithSeed(2)), 300)
	want := make(Audio, 300).Add(a, b)
	want.MulX(want, .5)

	got := make(Audio, 300)
	m.RenderBlock(got[:100])
	m.RenderBlock(got[100:])
	require.InDeltaSlice(t, want, got, 1e-12)
}
