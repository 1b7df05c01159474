package gendy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func requireGuardsMirror(t *testing.T, s *Sequence) {
	t.Helper()
	n := s.NumReal()
	pre, post := s.Guards()
	for k := 0; k < pre; k++ {
		require.Equal(t, s.Real(((n-pre+k)%n+n)%n), s.At(k), "pre guard %d", k)
	}
	for k := 0; k < post; k++ {
		require.Equal(t, s.Real(k%n), s.At(s.RealEnd()+k), "post guard %d", k)
	}
}

func newTestSequence(n int, mode Interpolation, shape Waveshape) *Sequence {
	s := NewSequence(147, mode)
	s.Resize(n, 147, shape)
	s.ResetToCenter()
	return s
}

func TestNewSequence(t *testing.T) {
	for _, mode := range []Interpolation{Linear, Cubic} {
		s := NewSequence(147, mode)
		pre, post := mode.Guards()
		require.Equal(t, 1, s.NumReal())
		require.Equal(t, 1+pre+post, s.Len())
		require.Equal(t, 147.0, s.Wavelength())
		s.Check(mode)
		requireGuardsMirror(t, s)
	}
}

func TestSequenceGuardCountInvariant(t *testing.T) {
	r := NewRand(11)
	for _, mode := range []Interpolation{Linear, Cubic} {
		pre, post := mode.Guards()
		s := NewSequence(147, mode)
		for i := 0; i < 300; i++ {
			n := 1 + int(r.Uniform()*40)
			switch int(r.Uniform() * 3) {
			case 0:
				s.Resize(n, 147, Sine)
			case 1:
				s.AddBreakpoint()
				s.Recenter(147, Sine)
			case 2:
				s.RemoveBreakpoint()
				s.Recenter(147, Sine)
			}
			require.Equal(t, s.NumReal()+pre+post, s.Len())
			require.GreaterOrEqual(t, s.NumReal(), 1)
			s.Check(mode)
			requireGuardsMirror(t, s)
		}
	}
}

func TestSequenceResizePreservesWavelength(t *testing.T) {
	s := newTestSequence(8, Cubic, Sine)
	s.AdvanceCycle(NewRand(2), Motion{StepWidth: .3, StepHeight: .3, DurationPull: .2, AmplitudePull: .2})
	w := s.Wavelength()
	for _, n := range []int{3, 17, 1, 9} {
		s.Resize(n, 147, Sine)
		require.Equal(t, n, s.NumReal())
		require.InDelta(t, w, s.Wavelength(), 1e-9)
	}
}

func TestSequenceResizeRoundTrip(t *testing.T) {
	s := newTestSequence(8, Cubic, Square)
	s.Resize(3, 147, Square)
	require.Equal(t, 3, s.NumReal())
	s.Resize(8, 147, Square)
	require.Equal(t, 8, s.NumReal())
	require.Equal(t, 11, s.Len())
	s.Check(Cubic)
	requireGuardsMirror(t, s)
}

func TestSequenceResizeClamps(t *testing.T) {
	s := newTestSequence(4, Linear, Flat)
	s.Resize(0, 147, Flat)
	require.Equal(t, 1, s.NumReal())
	s.Resize(MaxBreakpoints+10, 147, Flat)
	require.Equal(t, MaxBreakpoints, s.NumReal())
	require.False(t, s.AddBreakpoint(), "sequence should be full")
}

func TestRecenterSumsToWavelength(t *testing.T) {
	for _, shape := range []Waveshape{Flat, Sine, Square} {
		for _, n := range []int{1, 3, 8, 13} {
			s := newTestSequence(n, Cubic, shape)
			s.Recenter(211.5, shape)
			sum := 0.0
			for i := 0; i < s.NumReal(); i++ {
				sum += s.Real(i).CenterDuration()
			}
			require.InDelta(t, 211.5, sum, 1e-9, "%v n=%d", shape, n)

			s.ResetToCenter()
			require.InDelta(t, 211.5, s.Wavelength(), 1e-9)
		}
	}
}

func TestRecenterShapes(t *testing.T) {
	s := newTestSequence(8, Linear, Square)
	for i := 0; i < 8; i++ {
		want := 1.0
		if i >= 4 {
			want = -1
		}
		require.Equal(t, want, s.Real(i).CenterAmplitude())
		require.Equal(t, 147.0/8, s.Real(i).CenterDuration())
		require.Equal(t, 10*147.0/8, s.Real(i).MaxDuration())
	}

	s.Recenter(147, Sine)
	require.InDelta(t, 0, s.Real(0).CenterAmplitude(), 1e-12)
	require.InDelta(t, 1, s.Real(2).CenterAmplitude(), 1e-12)
	require.InDelta(t, -1, s.Real(6).CenterAmplitude(), 1e-12)
}

func TestAddBreakpointSplitsLongest(t *testing.T) {
	s := newTestSequence(3, Linear, Flat)
	s.points[0].SetPosition(10, .2)
	s.points[1].SetPosition(40, .6)
	s.points[2].SetPosition(20, -.4)
	s.points[3].SetPosition(10, .2) // post guard

	require.True(t, s.AddBreakpoint())
	require.Equal(t, 4, s.NumReal())
	require.Equal(t, 20.0, s.Real(1).Duration())
	require.Equal(t, 20.0, s.Real(2).Duration())
	require.InDelta(t, .1, s.Real(2).Amplitude(), 1e-12)
	require.Equal(t, 70.0, s.Wavelength())
}

func TestAddBreakpointWrapsToPostGuard(t *testing.T) {
	s := newTestSequence(2, Linear, Flat)
	s.points[0].SetPosition(10, .2)
	s.points[1].SetPosition(40, .6)
	s.points[2].SetPosition(10, -.2) // post guard: head of next cycle

	s.AddBreakpoint()
	require.Equal(t, 20.0, s.Real(2).Duration())
	require.InDelta(t, .2, s.Real(2).Amplitude(), 1e-12)
}

func TestRemoveBreakpointMergesClosestPair(t *testing.T) {
	s := newTestSequence(4, Cubic, Flat)
	for i, d := range []float64{30, 5, 6, 40} {
		s.points[s.RealBegin()+i].SetDuration(d)
	}
	require.True(t, s.RemoveBreakpoint())
	require.Equal(t, 3, s.NumReal())
	require.Equal(t, []float64{30, 11, 40}, []float64{s.Real(0).Duration(), s.Real(1).Duration(), s.Real(2).Duration()})
}

func TestRemoveBreakpointKeepsOne(t *testing.T) {
	s := newTestSequence(1, Cubic, Flat)
	require.False(t, s.RemoveBreakpoint())
	require.Equal(t, 1, s.NumReal())
}

func TestSetGuardsSwitchesLayout(t *testing.T) {
	s := newTestSequence(5, Linear, Sine)
	real := make([]Breakpoint, 5)
	for i := range real {
		real[i] = s.Real(i)
	}
	s.SetGuards(Cubic.Guards())
	s.Check(Cubic)
	requireGuardsMirror(t, s)
	for i := range real {
		require.Equal(t, real[i], s.Real(i))
	}
	s.SetGuards(Linear.Guards())
	s.Check(Linear)
	for i := range real {
		require.Equal(t, real[i], s.Real(i))
	}
}

func TestAdvanceCycle(t *testing.T) {
	s := newTestSequence(6, Cubic, Sine)
	m := Motion{StepWidth: .5, StepHeight: .5, DurationPull: .1, AmplitudePull: .1}
	s.AdvanceCycle(NewRand(5), m)

	lastReal := s.Real(5)
	post0, post1 := s.At(s.RealEnd()), s.At(s.RealEnd()+1)
	s.AdvanceCycle(NewRand(6), m)

	require.Equal(t, lastReal, s.At(0), "pre guard is the end of the finished cycle")
	require.Equal(t, post0, s.Real(0), "next cycle starts where the lookahead said")
	require.Equal(t, post1, s.Real(1))
	for i := 0; i < s.Len(); i++ {
		b := s.At(i)
		require.True(t, b.Amplitude() >= -1 && b.Amplitude() <= 1)
		require.True(t, b.Duration() >= 0 && b.Duration() <= b.MaxDuration())
	}
}

func TestAdvanceCycleZeroStepKeepsCenters(t *testing.T) {
	s := newTestSequence(8, Linear, Square)
	for c := 0; c < 10; c++ {
		s.AdvanceCycle(NewRand(int64(c)), Motion{DurationPull: .7, AmplitudePull: .4})
	}
	for i := 0; i < s.Len(); i++ {
		b := s.At(i)
		require.Equal(t, b.CenterDuration(), b.Duration())
		require.Equal(t, b.CenterAmplitude(), b.Amplitude())
	}
}

func TestAdvanceCycleSingleBreakpoint(t *testing.T) {
	s := newTestSequence(1, Cubic, Flat)
	r := NewRand(9)
	for c := 0; c < 50; c++ {
		s.AdvanceCycle(r, Motion{StepWidth: .2, StepHeight: .2, DurationPull: .5, AmplitudePull: .5})
		s.Check(Cubic)
		require.Equal(t, 4, s.Len())
	}
}

func TestPinHead(t *testing.T) {
	s := newTestSequence(4, Linear, Square)
	s.AdvanceCycle(NewRand(1), Motion{StepHeight: .3, ConstrainEndpoints: true})
	require.Equal(t, 0.0, s.Real(0).Amplitude())
	require.Equal(t, 0.0, s.At(s.RealEnd()).Amplitude())
}

func TestCheckPanics(t *testing.T) {
	s := newTestSequence(4, Linear, Flat)
	require.Panics(t, func() { s.Check(Cubic) })
	require.NotPanics(t, func() { s.Check(Linear) })
}
