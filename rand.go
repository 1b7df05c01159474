package gendy

import (
	"math"
	"math/rand"
	"time"
)

// Rand supplies the uniform and gaussian variates that drive breakpoint
// motion.  Each engine owns its own Rand so that a fixed seed reproduces a
// rendering exactly.
type Rand struct {
	rand *rand.Rand
}

func NewRand(seed int64) *Rand {
	return &Rand{rand: rand.New(rand.NewSource(seed))}
}

// NewTimeRand returns a Rand seeded from the wall clock.
func NewTimeRand() *Rand {
	return NewRand(time.Now().UnixNano())
}

// Uniform returns a value in [0, 1).
func (r *Rand) Uniform() float64 {
	return r.rand.Float64()
}

// Gaussian returns a normally distributed value with mean 0 and standard
// deviation 1, using the polar form of the Box-Muller transform.
func (r *Rand) Gaussian() float64 {
	for {
		x := 2*r.Uniform() - 1
		y := 2*r.Uniform() - 1
		r2 := x*x + y*y
		if r2 > 1 || r2 == 0 {
			continue
		}
		return y * math.Sqrt(-2*math.Log(r2)/r2)
	}
}
