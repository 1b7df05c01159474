package gendy

import "math"

// AmpMeter measures RMS amplitude over a sliding window.
type AmpMeter struct {
	windowSize float64
	buf        Audio
	i          int
	sum        float64
}

// NewAmpMeter returns a meter with a window of windowSize seconds.
func NewAmpMeter(windowSize float64) *AmpMeter {
	return &AmpMeter{windowSize: windowSize}
}

func (a *AmpMeter) InitAudio(p Params) {
	a.buf = make(Audio, max(1, int(math.Round(p.SampleRate*a.windowSize))))
	a.i, a.sum = 0, 0
}

// Amplitude feeds x through the window and returns the RMS of the last
// window's worth of samples.
func (a *AmpMeter) Amplitude(x Audio) float64 {
	for _, x := range x {
		a.add(x)
	}
	return a.rms()
}

func (a *AmpMeter) add(x float64) {
	a.sum -= a.buf[a.i]
	a.buf[a.i] = x * x
	a.sum += a.buf[a.i]
	a.i = (a.i + 1) % len(a.buf)
}

func (a *AmpMeter) rms() float64 {
	return math.Sqrt(max(0, a.sum) / float64(len(a.buf)))
}
