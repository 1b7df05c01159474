package gendy

import "math"

// A Breakpoint is one (duration, amplitude) node of a waveform cycle.  The
// duration is the length in samples of the segment that starts at the
// breakpoint.  Each cycle the breakpoint drifts around its center position.
type Breakpoint struct {
	duration, amplitude             float64
	centerDuration, centerAmplitude float64
	maxDuration                     float64
}

func NewBreakpoint(duration, amplitude float64) Breakpoint {
	return Breakpoint{duration: duration, amplitude: amplitude}
}

func (b Breakpoint) Duration() float64        { return b.duration }
func (b Breakpoint) Amplitude() float64       { return b.amplitude }
func (b Breakpoint) CenterDuration() float64  { return b.centerDuration }
func (b Breakpoint) CenterAmplitude() float64 { return b.centerAmplitude }
func (b Breakpoint) MaxDuration() float64     { return b.maxDuration }

func (b *Breakpoint) SetDuration(d float64)  { b.duration = d }
func (b *Breakpoint) SetAmplitude(a float64) { b.amplitude = a }

func (b *Breakpoint) SetPosition(duration, amplitude float64) {
	b.duration = duration
	b.amplitude = amplitude
}

// SetCenter sets the position the breakpoint is pulled toward.  The
// duration bound follows the center at ten times its value.
func (b *Breakpoint) SetCenter(duration, amplitude float64) {
	b.centerDuration = duration
	b.centerAmplitude = amplitude
	b.maxDuration = 10 * duration
}

// ResetToCenter moves the breakpoint onto its center position.
func (b *Breakpoint) ResetToCenter() {
	b.duration = b.centerDuration
	b.amplitude = b.centerAmplitude
}

// ElasticMove takes one random step.  hStep and vStep scale the gaussian
// step in duration and amplitude; hPull and vPull in [0,1] blend that step
// with a deterministic pull toward the center, 1 meaning a jump straight to
// the center.
//
// Positions that leave their range are mirrored back in rather than
// clamped, however far they overshoot.
func (b *Breakpoint) ElasticMove(r *Rand, hStep, vStep, hPull, vPull float64) {
	d := b.duration + hStep*(hPull*(b.centerDuration-b.duration)+(1-hPull)*r.Gaussian()*b.centerDuration)
	a := b.amplitude + vStep*(vPull*(b.centerAmplitude-b.amplitude)+(1-vPull)*r.Gaussian())
	b.duration = fold(d, 0, b.maxDuration, b.duration)
	b.amplitude = fold(a, -1, 1, b.amplitude)
}

// Reflections needed before fold reduces the excursion arithmetically.
const maxFolds = 1 << 10

// fold mirrors x across lo and hi until it lies in [lo, hi].  Each pair of
// reflections brings x one period (2*(hi-lo)) closer, so the loop runs at
// most |x-lo|/(hi-lo)+2 times; larger excursions are first reduced modulo the
// period, which gives the same result.  A non-finite x yields prev.
func fold(x, lo, hi, prev float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		x = prev
	}
	w := hi - lo
	if !(w > 0) {
		return lo
	}
	if math.Abs(x-lo) > maxFolds*w {
		x = lo + math.Mod(x-lo, 2*w)
	}
	for i := 0; i < maxFolds+2; i++ {
		switch {
		case x > hi:
			x = 2*hi - x
		case x < lo:
			x = 2*lo - x
		default:
			return x
		}
	}
	return math.Max(lo, math.Min(hi, x))
}
