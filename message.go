package gendy

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// A Host drives an engine with named control messages and pulls rendered
// blocks from it.  *Engine is a Host.
type Host interface {
	Voice
	Configure(msg string, args ...float64) error
}

var _ Host = (*Engine)(nil)

// Configure applies a control message:
//
//	freq hz              wavelength = sample rate / hz
//	wavelength samples
//	breakpoints n
//	h_step s, v_step s   step width and height
//	h_pull p, v_pull p   duration and amplitude pull
//	linear, cubic, spline, sinc
//	flat, sine, square, triangle, sawtooth
//	constrain [on]       pin the cycle start to 0; on defaults to 1
//
// Like the setters, Configure applies a corrected value and reports the
// correction.  Messages with the wrong arguments change nothing.
func (e *Engine) Configure(msg string, args ...float64) error {
	if i, err := ParseInterpolation(msg); err == nil {
		return e.noArgs(msg, args, func() error { return e.SetInterpolation(i) })
	}
	if w, err := ParseWaveshape(msg); err == nil {
		return e.noArgs(msg, args, func() error { return e.SetWaveshape(w) })
	}

	var set func(float64) error
	switch msg {
	case "freq":
		set = e.SetFrequency
	case "wavelength":
		set = e.SetWavelength
	case "breakpoints":
		set = func(n float64) error {
			if math.IsNaN(n) {
				n = 0
			}
			return e.SetBreakpointCount(int(math.Round(max(-1, min(n, MaxBreakpoints+1)))))
		}
	case "h_step":
		set = e.SetStepWidth
	case "v_step":
		set = e.SetStepHeight
	case "h_pull":
		set = e.SetDurationPull
	case "v_pull":
		set = e.SetAmplitudePull
	case "constrain":
		if len(args) == 0 {
			return e.SetConstrainEndpoints(true)
		}
		set = func(on float64) error { return e.SetConstrainEndpoints(on != 0) }
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMessage, msg)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: %s takes 1, got %d", ErrMessageArgs, msg, len(args))
	}
	return set(args[0])
}

func (e *Engine) noArgs(msg string, args []float64, f func() error) error {
	if len(args) != 0 {
		return fmt.Errorf("%w: %s takes none, got %d", ErrMessageArgs, msg, len(args))
	}
	return f()
}

// ParseMessage splits a line such as "freq 220" into a message name and its
// numeric arguments.
func ParseMessage(line string) (msg string, args []float64, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil, fmt.Errorf("%w: empty message", ErrUnknownMessage)
	}
	msg = strings.ToLower(fields[0])
	for _, f := range fields[1:] {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return "", nil, fmt.Errorf("message %s: %w", msg, err)
		}
		args = append(args, x)
	}
	return msg, args, nil
}
