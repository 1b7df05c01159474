package gendy

// A cursor walks the segments of a Sequence.  It holds the segment being
// rendered, the phase in samples within it, and the interpolation window
// for that segment, arranged so the segment spans [x[1], x[2]] = [0, d].
type cursor struct {
	seg   int
	phase float64
	x, y  [4]float64
	coefs [4]float64
}

// load fills the window for the segment starting at c.seg.  Cubic mode reads
// one breakpoint before the segment and two after its start, which the guard
// points guarantee exist.
func (c *cursor) load(s *Sequence, mode Interpolation) {
	p := s.points
	switch mode {
	case Linear:
		c.x[1], c.x[2] = 0, p[c.seg].duration
		c.y[1], c.y[2] = p[c.seg].amplitude, p[c.seg+1].amplitude
	case Cubic:
		c.x[0] = -p[c.seg-1].duration
		c.y[0] = p[c.seg-1].amplitude
		for i := 1; i < 4; i++ {
			c.x[i] = c.x[i-1] + p[c.seg+i-2].duration
			c.y[i] = p[c.seg+i-1].amplitude
		}
		c.coefs = DeriveCoefficients(c.x, c.y)
	default:
		panic("gendy: cannot render " + mode.String() + " interpolation")
	}
}

func (c *cursor) duration() float64 { return c.x[2] }

// done reports whether the phase has run off the end of the segment.
func (c *cursor) done() bool { return c.phase >= c.x[2] }

func (c *cursor) sample(mode Interpolation) float64 {
	d := c.x[2]
	if d <= epsilon {
		return c.y[1]
	}
	p := min(c.phase, d)
	if mode == Cubic {
		return Evaluate(c.coefs, p)
	}
	return c.y[1] + p/d*(c.y[2]-c.y[1])
}

// next moves on to the following segment, carrying over the excess phase.
// It reports false, without loading a window, when the cursor has passed
// the last real segment.
func (c *cursor) next(s *Sequence, mode Interpolation) bool {
	c.phase -= c.x[2]
	c.seg++
	if c.seg >= s.RealEnd() {
		return false
	}
	c.load(s, mode)
	return true
}
