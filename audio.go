package gendy

import "math"

// Audio is a block of mono samples.
type Audio []float64

func (z Audio) Zero() Audio {
	for i := range z {
		z[i] = 0
	}
	return z
}

func (z Audio) Add(x Audio, y Audio) Audio {
	for i := range z {
		z[i] = x[i] + y[i]
	}
	return z
}

func (z Audio) MulX(x Audio, f float64) Audio {
	for i := range z {
		z[i] = x[i] * f
	}
	return z
}

// Peak returns the largest absolute sample value.
func (z Audio) Peak() float64 {
	p := 0.0
	for _, x := range z {
		p = max(p, math.Abs(x))
	}
	return p
}

// Float32 converts z into out, which must be at least as long.
func (z Audio) Float32(out []float32) []float32 {
	out = out[:len(z)]
	for i, x := range z {
		out[i] = float32(x)
	}
	return out
}
