package gendy

import "errors"

// Configuration errors.  Setters that return one of these have already
// replaced the offending value with a safe one; the error only reports the
// correction.
var (
	ErrBreakpointCount          = errors.New("breakpoint count out of range")
	ErrUnsupportedInterpolation = errors.New("unsupported interpolation")
	ErrUnsupportedWaveshape     = errors.New("unsupported waveshape")
	ErrWavelength               = errors.New("wavelength must be positive")
	ErrStep                     = errors.New("step size must not be negative")
	ErrPull                     = errors.New("pull must be within [0, 1]")
	ErrSampleRate               = errors.New("sample rate not set")
	ErrUnknownMessage           = errors.New("unknown message")
	ErrMessageArgs              = errors.New("wrong number of message arguments")
)
