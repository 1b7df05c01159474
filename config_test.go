package gendy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	require.Equal(t, Config{
		Wavelength:    147,
		Breakpoints:   8,
		StepWidth:     .1,
		StepHeight:    .1,
		DurationPull:  .7,
		AmplitudePull: .4,
		Waveshape:     Flat,
		Interpolation: Cubic,
	}, c)
	require.False(t, c.ConstrainEndpoints)

	v, err := c.Validate()
	require.NoError(t, err)
	require.Equal(t, c, v)
}
