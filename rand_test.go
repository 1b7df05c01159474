package gendy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandUniformRange(t *testing.T) {
	r := NewRand(1)
	for i := 0; i < 10000; i++ {
		u := r.Uniform()
		require.GreaterOrEqual(t, u, 0.0)
		require.Less(t, u, 1.0)
	}
}

func TestRandGaussianMoments(t *testing.T) {
	const n = 100000
	r := NewRand(42)
	sum, sumSq := 0.0, 0.0
	for i := 0; i < n; i++ {
		g := r.Gaussian()
		require.False(t, math.IsNaN(g) || math.IsInf(g, 0), "gaussian produced %v", g)
		sum += g
		sumSq += g * g
	}
	mean := sum / n
	stddev := math.Sqrt(sumSq/n - mean*mean)
	require.InDelta(t, 0, mean, .05)
	require.InDelta(t, 1, stddev, .05)
}

func TestRandSeedReproducible(t *testing.T) {
	a, b := NewRand(7), NewRand(7)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Gaussian(), b.Gaussian())
	}
}

func BenchmarkGaussian(b *testing.B) {
	r := NewRand(1)
	for i := 0; i < b.N; i++ {
		r.Gaussian()
	}
}
