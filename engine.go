package gendy

import (
	"log/slog"
	"sync"
	"sync/atomic"
)

// An Engine renders a stream of Dynamic Stochastic Synthesis.  Every cycle
// of the waveform is drawn through a sequence of breakpoints, and at the end
// of each cycle every breakpoint takes one gaussian step.
//
// An Engine has two roles.  The render role (RenderBlock, RenderBlock32,
// Sing, RenderCycle, Display) must be confined to one goroutine at a time.
// The control role (the setters and Configure) may be called from any
// goroutine, concurrently with rendering.  Parameter changes take effect at
// the next cycle boundary; the render role never blocks on the control
// role.
type Engine struct {
	// control role
	mu      sync.Mutex
	params  Params
	control Config
	pending atomic.Pointer[Config]

	// render role
	cfg    Config
	seq    *Sequence
	cur    cursor
	rand   *Rand
	cycles uint64

	log *slog.Logger
}

// New returns an Engine whose first cycle lies exactly on the target shape.
func New(opts ...Option) *Engine {
	o := options{config: DefaultConfig()}
	for _, opt := range opts {
		opt(&o)
	}
	e := &Engine{rand: o.rand, log: o.logger}
	if e.rand == nil {
		e.rand = NewTimeRand()
	}
	if e.log == nil {
		e.log = newNopLogger()
	}

	cfg, err := o.config.Validate()
	if err != nil {
		e.log.Warn("gendy: corrected configuration", "err", err)
	}
	e.cfg, e.control = cfg, cfg
	e.seq = NewSequence(cfg.Wavelength, cfg.Interpolation)
	e.seq.Resize(cfg.Breakpoints, cfg.Wavelength, cfg.Waveshape)
	e.seq.ResetToCenter()
	if cfg.ConstrainEndpoints {
		e.seq.PinHead()
	}
	e.rewind()
	e.log.Info("gendy: engine created",
		"wavelength", cfg.Wavelength,
		"breakpoints", cfg.Breakpoints,
		"waveshape", cfg.Waveshape,
		"interpolation", cfg.Interpolation)
	return e
}

// InitAudio records the sample rate, which SetFrequency needs.
func (e *Engine) InitAudio(p Params) {
	e.mu.Lock()
	e.params = p
	e.mu.Unlock()
	e.log.Info("gendy: sample rate set", "rate", p.SampleRate)
}

// Config returns the most recently requested configuration.  It may not have
// reached the render role yet.
func (e *Engine) Config() Config {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.control
}

// update applies f to the requested configuration and publishes the result
// for the next cycle boundary.
func (e *Engine) update(f func(c *Config) error) error {
	e.mu.Lock()
	err := f(&e.control)
	c := e.control
	e.pending.Store(&c)
	e.mu.Unlock()
	if err != nil {
		e.log.Warn("gendy: corrected parameter", "err", err)
	}
	return err
}

// SetConfig replaces every parameter at once.
func (e *Engine) SetConfig(c Config) error {
	return e.update(func(dst *Config) (err error) {
		*dst, err = c.Validate()
		return
	})
}

// SetWavelength sets the average cycle length in samples.  A non-positive
// or non-finite wavelength is replaced by 1 and reported as ErrWavelength.
func (e *Engine) SetWavelength(samples float64) error {
	return e.update(func(c *Config) (err error) {
		c.Wavelength, err = validWavelength(samples)
		return
	})
}

// SetFrequency sets the wavelength to sampleRate/hz.  It returns
// ErrSampleRate, changing nothing, until InitAudio has been called.
func (e *Engine) SetFrequency(hz float64) error {
	e.mu.Lock()
	rate := e.params.SampleRate
	e.mu.Unlock()
	if !(rate > 0) {
		return ErrSampleRate
	}
	return e.SetWavelength(rate / hz)
}

// SetBreakpointCount sets the number of breakpoints per cycle, clamped to
// [1, MaxBreakpoints].  Clamping is reported as ErrBreakpointCount.
func (e *Engine) SetBreakpointCount(n int) error {
	return e.update(func(c *Config) (err error) {
		c.Breakpoints, err = validBreakpoints(n)
		return
	})
}

func (e *Engine) SetStepWidth(s float64) error {
	return e.update(func(c *Config) (err error) {
		c.StepWidth, err = validStep("step width", s)
		return
	})
}

func (e *Engine) SetStepHeight(s float64) error {
	return e.update(func(c *Config) (err error) {
		c.StepHeight, err = validStep("step height", s)
		return
	})
}

func (e *Engine) SetDurationPull(p float64) error {
	return e.update(func(c *Config) (err error) {
		c.DurationPull, err = validPull("duration pull", p)
		return
	})
}

func (e *Engine) SetAmplitudePull(p float64) error {
	return e.update(func(c *Config) (err error) {
		c.AmplitudePull, err = validPull("amplitude pull", p)
		return
	})
}

// SetWaveshape sets the target shape.  Unsupported shapes select Flat and
// return ErrUnsupportedWaveshape.
func (e *Engine) SetWaveshape(w Waveshape) error {
	return e.update(func(c *Config) (err error) {
		c.Waveshape, err = validWaveshape(w)
		return
	})
}

// SetInterpolation sets the interpolation mode.  Unsupported modes select
// Linear and return ErrUnsupportedInterpolation.
func (e *Engine) SetInterpolation(i Interpolation) error {
	return e.update(func(c *Config) (err error) {
		c.Interpolation, err = validInterpolation(i)
		return
	})
}

func (e *Engine) SetConstrainEndpoints(on bool) error {
	return e.update(func(c *Config) error {
		c.ConstrainEndpoints = on
		return nil
	})
}

// Reset applies any pending parameters immediately and restarts the stream
// from the target shape, as if the engine had just been created.  It belongs
// to the render role.
func (e *Engine) Reset() {
	if c := e.pending.Swap(nil); c != nil {
		e.apply(*c)
	}
	e.seq.ResetToCenter()
	if e.cfg.ConstrainEndpoints {
		e.seq.PinHead()
	}
	e.rewind()
}

// NumBreakpoints, Wavelength and Cycles describe the cycle being rendered.
// They belong to the render role.
func (e *Engine) NumBreakpoints() int { return e.seq.NumReal() }
func (e *Engine) Wavelength() float64 { return e.seq.Wavelength() }
func (e *Engine) Cycles() uint64      { return e.cycles }

// Sing renders one sample.
func (e *Engine) Sing() float64 {
	e.settle()
	y := e.cur.sample(e.cfg.Interpolation)
	e.cur.phase++
	return y
}

// RenderBlock fills out with consecutive samples and returns len(out).  The
// stream does not depend on how it is divided into blocks.
func (e *Engine) RenderBlock(out Audio) int {
	for i := range out {
		out[i] = e.Sing()
	}
	return len(out)
}

// RenderBlock32 is RenderBlock for hosts that work in float32.
func (e *Engine) RenderBlock32(out []float32) int {
	for i := range out {
		out[i] = float32(e.Sing())
	}
	return len(out)
}

// settle moves the cursor onto the segment containing its phase, turning
// the sequence over to the next cycle when it runs off the end.  Segments
// shorter than a sample are skipped.  The number of hops is bounded so that
// a cycle of zero-length segments cannot stall the render; the cursor then
// holds at the end of its segment and the unconsumed phase is dropped.
func (e *Engine) settle() {
	for hops := e.seq.Len(); e.cur.done() && hops > 0; hops-- {
		if !e.cur.next(e.seq, e.cfg.Interpolation) {
			phase := e.cur.phase
			e.advanceCycle()
			e.rewind()
			e.cur.phase = phase
		}
	}
	if e.cur.done() {
		e.cur.phase = e.cur.duration()
	}
}

// rewind puts the cursor at the start of the current cycle.
func (e *Engine) rewind() {
	e.cur = cursor{seg: e.seq.RealBegin()}
	e.cur.load(e.seq, e.cfg.Interpolation)
}

func (e *Engine) advanceCycle() {
	if c := e.pending.Swap(nil); c != nil {
		e.apply(*c)
	}
	e.seq.AdvanceCycle(e.rand, e.cfg.motion())
	e.seq.Check(e.cfg.Interpolation)
	e.cycles++
}

// apply brings the sequence in line with a new configuration.
func (e *Engine) apply(c Config) {
	old := e.cfg
	e.cfg = c
	if c.Interpolation != old.Interpolation {
		e.seq.SetGuards(c.Interpolation.Guards())
	}
	switch {
	case c.Breakpoints != e.seq.NumReal():
		e.seq.Resize(c.Breakpoints, c.Wavelength, c.Waveshape)
	case c.Wavelength != old.Wavelength || c.Waveshape != old.Waveshape:
		e.seq.Recenter(c.Wavelength, c.Waveshape)
	}
	if e.debugEnabled() {
		e.log.Debug("gendy: configuration applied", "cycle", e.cycles, "config", c)
	}
}

func (c Config) motion() Motion {
	return Motion{
		StepWidth:          c.StepWidth,
		StepHeight:         c.StepHeight,
		DurationPull:       c.DurationPull,
		AmplitudePull:      c.AmplitudePull,
		ConstrainEndpoints: c.ConstrainEndpoints,
	}
}

// RenderCycle draws the current cycle, from its first breakpoint, into out
// without advancing the engine.  It returns the number of samples written,
// at most the cycle's length rounded up, and the cycle's wavelength.
func (e *Engine) RenderCycle(out Audio) (n int, wavelength float64) {
	mode := e.cfg.Interpolation
	e.seq.Check(mode)
	c := cursor{seg: e.seq.RealBegin()}
	c.load(e.seq, mode)
	wavelength = e.seq.Wavelength()
	for n < len(out) {
		for c.done() {
			if !c.next(e.seq, mode) {
				return n, wavelength
			}
		}
		out[n] = c.sample(mode)
		c.phase++
		n++
	}
	return n, wavelength
}

// Display draws the current cycle like RenderCycle and zeroes the rest of
// out.
func (e *Engine) Display(out Audio) (wavelength float64) {
	n, wavelength := e.RenderCycle(out)
	out[n:].Zero()
	return wavelength
}
