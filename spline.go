package gendy

// Segments no longer than this are treated as having no length.
const epsilon = 1e-9

// DeriveCoefficients fits a cubic through the middle segment [x[1], x[2]] of
// four knots.  The slope at each inner knot is a length-weighted average of
// the two neighbouring secants, so consecutive segments meet with matching
// slopes.  The cubic is expressed with x[1] as origin and is evaluated with
// Evaluate.
//
// A middle segment of no length yields the constant y[1].  An outer segment
// of no length contributes a flat secant.
func DeriveCoefficients(x, y [4]float64) (c [4]float64) {
	var h, d [3]float64
	for i := range h {
		h[i] = x[i+1] - x[i]
		if h[i] > epsilon {
			d[i] = (y[i+1] - y[i]) / h[i]
		}
	}
	if h[1] <= epsilon {
		return [4]float64{0, 0, 0, y[1]}
	}

	var yd [3]float64
	for i := 1; i < 3; i++ {
		if s := h[i-1] + h[i]; s > epsilon {
			yd[i] = (d[i]*h[i-1] + d[i-1]*h[i]) / s
		}
	}

	rise := y[2] - y[1] - h[1]*yd[1]
	c[0] = (h[1]*(yd[2]-yd[1]) - 2*rise) / (h[1] * h[1] * h[1])
	c[1] = (3*rise - h[1]*(yd[2]-yd[1])) / (h[1] * h[1])
	c[2] = yd[1]
	c[3] = y[1]
	return c
}

// Evaluate returns the cubic with coefficients c at offset x.
func Evaluate(c [4]float64, x float64) float64 {
	return c[3] + x*(c[2]+x*(c[1]+c[0]*x))
}
