package gendy

import "math"

// DCFilter is a one-pole highpass that removes the offset a wandering
// waveform can build up.
type DCFilter struct {
	// Cutoff in Hz; 10 if zero.
	Cutoff  float64
	a, x, y float64
}

func (f *DCFilter) InitAudio(p Params) {
	fc := f.Cutoff
	if fc <= 0 {
		fc = 10
	}
	rc := 1 / (2 * math.Pi * fc)
	f.a = rc / (rc + 1/p.SampleRate)
}

func (f *DCFilter) Filter(x float64) float64 {
	f.y = f.a * (f.y + x - f.x)
	f.x = x
	return f.y
}

// FilterBlock filters z in place.
func (f *DCFilter) FilterBlock(z Audio) Audio {
	for i, x := range z {
		z[i] = f.Filter(x)
	}
	return z
}
