package main

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log"
	"math"

	"github.com/airwaves/gendy"
	"github.com/airwaves/gendy/wavfile"
)

const analysisSize = 4096

// A renderer runs a voice offline for a fixed number of samples.
type renderer struct {
	voice   gendy.Voice
	params  gendy.Params
	block   int
	samples int
	wavPath string
	raw     bool
	analyze bool
	fade    float64
}

func (r *renderer) run(stdout io.Writer) (err error) {
	gendy.Init(r.voice, r.params)

	var wav *wavfile.Writer
	if r.wavPath != "" {
		if wav, err = wavfile.Create(r.wavPath, int(r.params.SampleRate)); err != nil {
			return err
		}
		defer func() { err = errors.Join(err, wav.Close()) }()
	}

	spectrum, err := gendy.NewSpectrum(analysisSize)
	if err != nil {
		return err
	}
	meter := gendy.NewAmpMeter(.1)
	gendy.Init(meter, r.params)
	window := make(gendy.Audio, 0, analysisSize+r.block)

	var fade *gendy.Fade
	if r.fade > 0 {
		fade = gendy.NewFade(r.fade, r.samples)
		gendy.Init(fade, r.params)
	}

	buf := make(gendy.Audio, r.block)
	buf32 := make([]float32, r.block)
	peak, level, analyzed := 0.0, 0.0, 0
	for done := 0; done < r.samples; {
		b := buf[:min(r.block, r.samples-done)]
		r.voice.RenderBlock(b)
		if fade != nil {
			fade.Apply(b)
		}
		peak = max(peak, b.Peak())
		level = meter.Amplitude(b)

		if wav != nil {
			if err := wav.Write(b); err != nil {
				return err
			}
		}
		if r.raw {
			if err := binary.Write(stdout, binary.LittleEndian, b.Float32(buf32)); err != nil {
				return err
			}
		}
		if r.analyze {
			window = append(window, b...)
			for len(window) >= analysisSize {
				log.Printf("%7.3fs  rms %.3f  centroid %7.1f Hz",
					float64(analyzed)/r.params.SampleRate, level, spectrum.Centroid(window[:analysisSize], r.params.SampleRate))
				analyzed += analysisSize
				window = window[:copy(window, window[analysisSize:])]
			}
		}
		done += len(b)
	}
	log.Printf("rendered %d samples, peak %.3f", r.samples, peak)
	if peak > 1 {
		log.Printf("output exceeds full scale by %.1f dB", 20*math.Log10(peak))
	}
	return nil
}

// printCycle writes the samples of e's current cycle, one per line.
func printCycle(w io.Writer, e *gendy.Engine) {
	out := make(gendy.Audio, int(math.Ceil(e.Wavelength()))+1)
	n, wavelength := e.RenderCycle(out)
	fmt.Fprintf(w, "# wavelength %.3f samples, %d breakpoints\n", wavelength, e.NumBreakpoints())
	for i, x := range out[:n] {
		fmt.Fprintf(w, "%d\t%.6f\n", i, x)
	}
}
