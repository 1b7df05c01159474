package gendy

import "math"

// A soft limiter.  The RMS amplitude of the output (averaged over the attack
// time) will approach the supplied limit; this means that much of the signal
// will actually exceed the limit.
//
// Cubic interpolation lets a wandering waveform overshoot full scale, so a
// Limiter is useful at the end of a mix.
type Limiter struct {
	limit         float64
	attack, decay float64
	down, up      float64
	amp           float64
	rms           *AmpMeter
	delay         *ConstDelay
}

// NewLimiter returns a limiter holding the RMS level near limit.  attack and
// decay are in seconds; the output lags the input by attack.
func NewLimiter(limit, attack, decay float64) *Limiter {
	return &Limiter{limit: limit, attack: attack, decay: decay, rms: NewAmpMeter(attack), delay: NewConstDelay(attack)}
}

func (c *Limiter) InitAudio(p Params) {
	c.down = -1 / (c.attack * p.SampleRate)
	c.up = 1 / (c.decay * p.SampleRate)
	c.amp = 0
	c.rms.InitAudio(p)
	c.delay.InitAudio(p)
}

// Gain is the current gain factor, at most 1.
func (c *Limiter) Gain() float64 { return math.Exp2(c.amp) }

func (c *Limiter) Limit(x float64) float64 {
	gain := math.Exp2(c.amp)
	c.rms.add(x)
	if y := c.rms.rms() / c.limit; y > 0 && math.Tanh(y)/y < gain {
		c.amp += c.down
	} else {
		c.amp = min(0, c.amp+c.up)
	}
	return gain * c.delay.Delay(x)
}

func (c *Limiter) LimitBlock(z Audio) Audio {
	for i, x := range z {
		z[i] = c.Limit(x)
	}
	return z
}

// ConstDelay delays a signal by a fixed time.
type ConstDelay struct {
	delay float64
	buf   []float64
	i     int
}

func NewConstDelay(delay float64) *ConstDelay {
	return &ConstDelay{delay: delay}
}

func (d *ConstDelay) InitAudio(p Params) {
	d.buf = make([]float64, max(1, int(math.Round(d.delay*p.SampleRate))))
	d.i = 0
}

func (d *ConstDelay) Delay(x float64) float64 {
	y := d.buf[d.i]
	d.buf[d.i] = x
	d.i = (d.i + 1) % len(d.buf)
	return y
}
