package gendy

import (
	"errors"
	"fmt"
	"math"
)

// Interpolation selects how samples are drawn between breakpoints.
type Interpolation int

const (
	Linear Interpolation = iota
	Cubic
	Spline // not implemented
	Sinc   // not implemented
)

var interpolationNames = [...]string{"linear", "cubic", "spline", "sinc"}

func (i Interpolation) String() string {
	if i < 0 || int(i) >= len(interpolationNames) {
		return fmt.Sprintf("Interpolation(%d)", int(i))
	}
	return interpolationNames[i]
}

// Guards returns the number of guard points the mode needs before and after
// the real breakpoints.
func (i Interpolation) Guards() (pre, post int) {
	switch i {
	case Linear:
		return 0, 1
	case Cubic:
		return 1, 2
	}
	panic(fmt.Sprintf("gendy: no guard layout for %v interpolation", i))
}

func (i Interpolation) supported() bool { return i == Linear || i == Cubic }

// ParseInterpolation returns the Interpolation named s.
func ParseInterpolation(s string) (Interpolation, error) {
	for i, name := range interpolationNames {
		if name == s {
			return Interpolation(i), nil
		}
	}
	return Linear, fmt.Errorf("%w: %q", ErrUnsupportedInterpolation, s)
}

// Waveshape is the target shape traced by the breakpoint centers.
type Waveshape int

const (
	Flat Waveshape = iota
	Sine
	Square
	Triangle // not implemented
	Sawtooth // not implemented
)

var waveshapeNames = [...]string{"flat", "sine", "square", "triangle", "sawtooth"}

func (w Waveshape) String() string {
	if w < 0 || int(w) >= len(waveshapeNames) {
		return fmt.Sprintf("Waveshape(%d)", int(w))
	}
	return waveshapeNames[w]
}

func (w Waveshape) supported() bool { return w == Flat || w == Sine || w == Square }

// CenterAmplitude returns the target amplitude at normalized position t in
// [0, 1) of the cycle.
func (w Waveshape) CenterAmplitude(t float64) float64 {
	switch w {
	case Sine:
		return math.Sin(2 * math.Pi * t)
	case Square:
		if t < .5 {
			return 1
		}
		return -1
	}
	return 0
}

// ParseWaveshape returns the Waveshape named s.
func ParseWaveshape(s string) (Waveshape, error) {
	for i, name := range waveshapeNames {
		if name == s {
			return Waveshape(i), nil
		}
	}
	return Flat, fmt.Errorf("%w: %q", ErrUnsupportedWaveshape, s)
}

// MaxBreakpoints bounds the breakpoint count so that a sequence can be
// allocated once, up front.
const MaxBreakpoints = 1024

// Config holds the parameters of an Engine.
type Config struct {
	// Wavelength is the average cycle length in samples.
	Wavelength  float64
	Breakpoints int

	// StepWidth and StepHeight scale the gaussian step applied to
	// durations and amplitudes each cycle.
	StepWidth, StepHeight float64

	// DurationPull and AmplitudePull, in [0,1], set how strongly
	// breakpoints are drawn toward their centers.
	DurationPull, AmplitudePull float64

	Waveshape     Waveshape
	Interpolation Interpolation

	// ConstrainEndpoints pins the amplitude at the start of every cycle
	// to 0.
	ConstrainEndpoints bool
}

// DefaultConfig is 300 Hz at 44.1 kHz with eight breakpoints wandering
// around silence.
func DefaultConfig() Config {
	return Config{
		Wavelength:    147,
		Breakpoints:   8,
		StepWidth:     .1,
		StepHeight:    .1,
		DurationPull:  .7,
		AmplitudePull: .4,
		Waveshape:     Flat,
		Interpolation: Cubic,
	}
}

// Validate returns a copy of c with every out-of-range field replaced by a
// safe value, and an error describing each replacement.
func (c Config) Validate() (Config, error) {
	var errs []error
	collect := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}
	var err error
	c.Wavelength, err = validWavelength(c.Wavelength)
	collect(err)
	c.Breakpoints, err = validBreakpoints(c.Breakpoints)
	collect(err)
	c.StepWidth, err = validStep("step width", c.StepWidth)
	collect(err)
	c.StepHeight, err = validStep("step height", c.StepHeight)
	collect(err)
	c.DurationPull, err = validPull("duration pull", c.DurationPull)
	collect(err)
	c.AmplitudePull, err = validPull("amplitude pull", c.AmplitudePull)
	collect(err)
	c.Waveshape, err = validWaveshape(c.Waveshape)
	collect(err)
	c.Interpolation, err = validInterpolation(c.Interpolation)
	collect(err)
	return c, errors.Join(errs...)
}

func validWaveshape(w Waveshape) (Waveshape, error) {
	if !w.supported() {
		return Flat, fmt.Errorf("%w: %v, using %v", ErrUnsupportedWaveshape, w, Flat)
	}
	return w, nil
}

func validInterpolation(i Interpolation) (Interpolation, error) {
	if !i.supported() {
		return Linear, fmt.Errorf("%w: %v, defaulting to %v", ErrUnsupportedInterpolation, i, Linear)
	}
	return i, nil
}

func validWavelength(w float64) (float64, error) {
	if !(w > 0) || math.IsInf(w, 0) {
		return 1, fmt.Errorf("%w: %v, using 1 sample", ErrWavelength, w)
	}
	return w, nil
}

func validBreakpoints(n int) (int, error) {
	switch {
	case n < 1:
		return 1, fmt.Errorf("%w: cannot resize to %d, resizing to 1", ErrBreakpointCount, n)
	case n > MaxBreakpoints:
		return MaxBreakpoints, fmt.Errorf("%w: cannot resize to %d, resizing to %d", ErrBreakpointCount, n, MaxBreakpoints)
	}
	return n, nil
}

func validStep(name string, s float64) (float64, error) {
	if !(s >= 0) || math.IsInf(s, 0) {
		return 0, fmt.Errorf("%w: %s %v, using 0", ErrStep, name, s)
	}
	return s, nil
}

func validPull(name string, p float64) (float64, error) {
	switch {
	case p < 0:
		return 0, fmt.Errorf("%w: %s %v, using 0", ErrPull, name, p)
	case p > 1:
		return 1, fmt.Errorf("%w: %s %v, using 1", ErrPull, name, p)
	case math.IsNaN(p):
		return 0, fmt.Errorf("%w: %s %v, using 0", ErrPull, name, p)
	}
	return p, nil
}
