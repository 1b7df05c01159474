package gendy

import (
	"fmt"
	"math"
)

// A Sequence holds the breakpoints of one waveform cycle in a single slice
// laid out as
//
//	[pre guards | real breakpoints | post guards]
//
// Pre guards copy the tail of the previous cycle and post guards the head
// of the next one, so interpolation near either end of the cycle can look
// past it.  The region boundaries are plain indices derived from the guard
// counts; nothing else points into the slice.
//
// The slice is allocated once with room for MaxBreakpoints real points, so
// no method allocates after NewSequence.
type Sequence struct {
	points    []Breakpoint
	pre, post int
}

const maxGuards = 3

// NewSequence returns a sequence holding a single real breakpoint spanning
// the whole wavelength, with the guard points mode needs.
func NewSequence(wavelength float64, mode Interpolation) *Sequence {
	b := NewBreakpoint(wavelength, 0)
	b.SetCenter(wavelength, 0)
	s := &Sequence{points: make([]Breakpoint, 1, MaxBreakpoints+maxGuards)}
	s.points[0] = b
	s.SetGuards(mode.Guards())
	return s
}

func (s *Sequence) Len() int               { return len(s.points) }
func (s *Sequence) NumReal() int           { return len(s.points) - s.pre - s.post }
func (s *Sequence) Guards() (pre, post int) { return s.pre, s.post }

// RealBegin is the index of the first real breakpoint and RealEnd the index
// of the first post guard.
func (s *Sequence) RealBegin() int { return s.pre }
func (s *Sequence) RealEnd() int   { return len(s.points) - s.post }

// At returns the breakpoint at index i of the whole layout, guards included.
func (s *Sequence) At(i int) Breakpoint { return s.points[i] }

// Real returns the i'th real breakpoint.
func (s *Sequence) Real(i int) Breakpoint { return s.points[s.pre+i] }

// Wavelength is the sum of the real durations: the length of the cycle the
// sequence currently describes.
func (s *Sequence) Wavelength() float64 {
	w := 0.0
	for i := s.RealBegin(); i < s.RealEnd(); i++ {
		w += s.points[i].duration
	}
	return w
}

// SetGuards changes the number of guard points on either side and refills
// them from the real breakpoints.
func (s *Sequence) SetGuards(pre, post int) {
	n := s.NumReal()
	length := pre + n + post
	if pre < 0 || post < 0 || length > cap(s.points) {
		panic(fmt.Sprintf("gendy: cannot lay out %d+%d+%d breakpoints", pre, n, post))
	}
	if length > len(s.points) {
		s.points = s.points[:length]
	}
	copy(s.points[pre:pre+n], s.points[s.pre:s.pre+n])
	s.points = s.points[:length]
	s.pre, s.post = pre, post
	s.syncGuards()
}

// syncGuards mirrors the tail of the real region into the pre guards and
// its head into the post guards.  Short sequences wrap.
func (s *Sequence) syncGuards() {
	n := s.NumReal()
	b, e := s.RealBegin(), s.RealEnd()
	for k := 0; k < s.pre; k++ {
		s.points[k] = s.points[b+((n-s.pre+k)%n+n)%n]
	}
	for k := 0; k < s.post; k++ {
		s.points[e+k] = s.points[b+k%n]
	}
}

// AddBreakpoint splits the longest real segment in two.  The new breakpoint
// takes half the duration and the mean of the neighbouring amplitudes.  It
// reports false if the sequence already holds MaxBreakpoints.
//
// Centers are left stale; call Recenter afterwards.
func (s *Sequence) AddBreakpoint() bool {
	if s.NumReal() >= MaxBreakpoints || len(s.points) == cap(s.points) {
		return false
	}
	b, e := s.RealBegin(), s.RealEnd()
	longest := b
	for i := b + 1; i < e; i++ {
		if s.points[i].duration > s.points[longest].duration {
			longest = i
		}
	}
	next := longest + 1
	if next == len(s.points) {
		next = b
	}
	p := &s.points[longest]
	p.duration /= 2
	nb := *p
	nb.amplitude = (p.amplitude + s.points[next].amplitude) / 2

	i := longest + 1
	s.points = s.points[:len(s.points)+1]
	copy(s.points[i+1:], s.points[i:])
	s.points[i] = nb
	return true
}

// RemoveBreakpoint merges the adjacent pair of real breakpoints with the
// smallest combined duration: the second is dropped and its duration added
// to the first, so the wavelength is unchanged.  The last real breakpoint
// is never removed; RemoveBreakpoint reports whether it removed one.
//
// Centers are left stale; call Recenter afterwards.
func (s *Sequence) RemoveBreakpoint() bool {
	if s.NumReal() <= 1 {
		return false
	}
	b, e := s.RealBegin(), s.RealEnd()
	smallest := math.Inf(1)
	victim := b + 1
	for i := b; i+1 < e; i++ {
		if space := s.points[i].duration + s.points[i+1].duration; space < smallest {
			smallest = space
			victim = i + 1
		}
	}
	s.points[victim-1].duration += s.points[victim].duration
	copy(s.points[victim:], s.points[victim+1:])
	s.points = s.points[:len(s.points)-1]
	return true
}

// Resize adds or removes real breakpoints until there are n of them,
// recentering after each change.  n is clamped to [1, MaxBreakpoints].
func (s *Sequence) Resize(n int, wavelength float64, shape Waveshape) {
	n = max(1, min(n, MaxBreakpoints))
	for s.NumReal() < n && s.AddBreakpoint() {
		s.Recenter(wavelength, shape)
	}
	for s.NumReal() > n && s.RemoveBreakpoint() {
		s.Recenter(wavelength, shape)
	}
	s.Recenter(wavelength, shape)
}

// Recenter spreads the real breakpoint centers evenly over wavelength, with
// center amplitudes tracing shape, then refreshes the guard points.
func (s *Sequence) Recenter(wavelength float64, shape Waveshape) {
	n := s.NumReal()
	d := wavelength / float64(n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		s.points[s.pre+i].SetCenter(d, shape.CenterAmplitude(t))
	}
	s.syncGuards()
}

// ResetToCenter moves every breakpoint onto its center.
func (s *Sequence) ResetToCenter() {
	for i := range s.points {
		s.points[i].ResetToCenter()
	}
}

// PinHead sets the amplitude of the breakpoint that opens the cycle, and
// of the post guard that opens the next one, to 0.
func (s *Sequence) PinHead() {
	s.points[s.RealBegin()].amplitude = 0
	if s.post > 0 {
		s.points[s.RealEnd()].amplitude = 0
	}
}

// Motion holds the per-cycle random walk parameters.
type Motion struct {
	StepWidth, StepHeight       float64
	DurationPull, AmplitudePull float64
	ConstrainEndpoints          bool
}

// AdvanceCycle turns the sequence over to the next cycle.  The end of the
// finished cycle becomes the pre guards, the post guards become the head of
// the new cycle, and every breakpoint after that, post guards included, takes
// one elastic move.
func (s *Sequence) AdvanceCycle(r *Rand, m Motion) {
	b, e := s.RealBegin(), s.RealEnd()
	for k := 1; k <= s.pre; k++ {
		s.points[b-k] = s.points[e-k]
	}
	for k := 0; k < s.post; k++ {
		s.points[b+k] = s.points[e+k]
	}
	for i := b + s.post; i < len(s.points); i++ {
		s.points[i].ElasticMove(r, m.StepWidth, m.StepHeight, m.DurationPull, m.AmplitudePull)
	}
	if m.ConstrainEndpoints {
		s.PinHead()
	}
}

// Check panics unless the sequence has at least one real breakpoint and the
// guard layout mode needs.
func (s *Sequence) Check(mode Interpolation) {
	if s.NumReal() < 1 {
		panic("gendy: empty breakpoint sequence")
	}
	if pre, post := mode.Guards(); s.pre != pre || s.post != post {
		panic(fmt.Sprintf("gendy: %v interpolation needs %d+%d guard points, have %d+%d", mode, pre, post, s.pre, s.post))
	}
}
