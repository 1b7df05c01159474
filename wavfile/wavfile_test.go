package wavfile

import (
	"path/filepath"
	"testing"

	"github.com/airwaves/gendy"
	"github.com/stretchr/testify/require"
)

func TestWriteEngine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gendy.wav")
	w, err := Create(path, 44100)
	require.NoError(t, err)

	cfg := gendy.DefaultConfig()
	cfg.Waveshape, cfg.StepHeight = gendy.Sine, .2
	e := gendy.New(gendy.WithConfig(cfg), gendy.WithSeed(1))
	want := make(gendy.Audio, 0, 4410)
	block := make(gendy.Audio, 441)
	for i := 0; i < 10; i++ {
		e.RenderBlock(block)
		require.NoError(t, w.Write(block))
		for _, x := range block {
			want = append(want, max(-1, min(x, 1)))
		}
	}
	require.NoError(t, w.Close())

	got, rate, err := Read(path)
	require.NoError(t, err)
	require.Equal(t, 44100, rate)
	require.InDeltaSlice(t, want, got, 1.0/(1<<14))
}

func TestWriteClips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip.wav")
	w, err := Create(path, 8000)
	require.NoError(t, err)
	require.NoError(t, w.Write(gendy.Audio{3, -3, .5}))
	require.NoError(t, w.Close())

	got, _, err := Read(path)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{1, -1, .5}, []float64(got), 1e-4)
}
