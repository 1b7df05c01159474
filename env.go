package gendy

import "math"

// A Fade is an exponential envelope over a render of known length.  It
// rises from silence at the start and decays over the last Time seconds, so
// a file neither starts nor stops with a click.  Each ramp covers 99% of its
// distance in Time seconds.
type Fade struct {
	Time   float64
	length int

	coef      float64
	releaseAt int
	pos       int
	x         float64
}

// NewFade returns a fade for a render of length samples.
func NewFade(time float64, length int) *Fade {
	return &Fade{Time: time, length: length}
}

func (f *Fade) InitAudio(p Params) {
	n := max(1, int(math.Round(p.SampleRate*f.Time)))
	f.coef = math.Pow(.01, 1/float64(n))
	f.releaseAt = max(f.length/2, f.length-n)
	f.pos, f.x = 0, 0
}

// Released reports whether the fade has begun its final decay.  A render
// shorter than two fades starts its decay halfway through.
func (f *Fade) Released() bool { return f.pos >= f.releaseAt }

func (f *Fade) next() float64 {
	if f.Released() {
		f.x *= f.coef
	} else {
		f.x = 1 - (1-f.x)*f.coef
	}
	f.pos++
	return f.x
}

// Apply scales the next len(z) samples of the render.
func (f *Fade) Apply(z Audio) Audio {
	for i := range z {
		z[i] *= f.next()
	}
	return z
}
