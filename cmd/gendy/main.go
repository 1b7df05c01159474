// Command gendy renders Dynamic Stochastic Synthesis.
//
// Arguments are control messages applied before rendering, for example
//
//	gendy -out drone.wav -seconds 10 "freq 110" "breakpoints 12" sine "v_step .05"
//
// With -play the sound goes to the default output device until interrupted,
// and -listen accepts further messages over UDP while it plays.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/airwaves/gendy"
	"github.com/airwaves/gendy/play"
)

func main() {
	log.SetFlags(log.Lshortfile)
	var (
		rate    = flag.Int("rate", 44100, "sample rate in Hz")
		seconds = flag.Float64("seconds", 2, "length of an offline render")
		fade    = flag.Float64("fade", .01, "fade time in seconds at either end of an offline render")
		block   = flag.Int("block", 512, "render block size in samples")
		seed    = flag.Int64("seed", 0, "random seed; 0 seeds from the clock")
		voices  = flag.Int("voices", 1, "number of engines mixed together")
		out     = flag.String("out", "", "write a 16-bit WAV file")
		raw     = flag.Bool("raw", false, "write float32 little-endian samples to stdout")
		playOut = flag.Bool("play", false, "play through the default output device until interrupted")
		listen  = flag.String("listen", "", "UDP address accepting control messages while playing")
		cycle   = flag.Bool("cycle", false, "print the samples of the first cycle and exit")
		analyze = flag.Bool("analyze", false, "print level and spectral centroid while rendering")
		dcblock = flag.Bool("dcblock", false, "remove DC offset from the output")
		limit   = flag.Float64("limit", 0, "soft-limit the output to this RMS level; 0 disables")
		verbose = flag.Bool("v", false, "log engine activity")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: gendy [flags] [message ...]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if *voices < 1 || *block < 1 || *rate < 1 {
		log.Fatal("-voices, -block and -rate must be positive")
	}

	p := gendy.Params{SampleRate: float64(*rate)}
	mix := &gendy.MultiVoice{Params: p, Gain: 1 / float64(*voices)}
	engines := make(ensemble, *voices)
	for i := range engines {
		opts := []gendy.Option{gendy.WithLogger(logger.With("voice", i))}
		if *seed != 0 {
			opts = append(opts, gendy.WithSeed(*seed+int64(i)))
		}
		engines[i] = gendy.New(opts...)
		mix.Add(engines[i])
	}
	for _, msg := range flag.Args() {
		if err := engines.configure(msg); err != nil {
			if errors.Is(err, gendy.ErrUnknownMessage) || errors.Is(err, gendy.ErrMessageArgs) {
				log.Fatal(err)
			}
			log.Print(err)
		}
	}
	engines.reset()

	v := &output{Voice: mix}
	if *dcblock {
		v.dc = &gendy.DCFilter{}
	}
	if *limit > 0 {
		v.limit = gendy.NewLimiter(*limit, .01, .5)
	}

	switch {
	case *cycle:
		printCycle(os.Stdout, engines[0])
	case *playOut:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if *listen != "" {
			go func() {
				if err := listenAndServe(ctx, *listen, engines); err != nil {
					log.Print(err)
					stop()
				}
			}()
		}
		if err := play.Play(ctx, v, p); err != nil {
			log.Fatal(err)
		}
	default:
		r := renderer{
			voice:   v,
			params:  p,
			block:   *block,
			samples: int(*seconds * p.SampleRate),
			wavPath: *out,
			raw:     *raw,
			analyze: *analyze,
			fade:    *fade,
		}
		if err := r.run(os.Stdout); err != nil {
			log.Fatal(err)
		}
	}
}

// An ensemble is the set of engines that share every control message.
type ensemble []*gendy.Engine

func (en ensemble) configure(line string) error {
	msg, args, err := gendy.ParseMessage(line)
	if err != nil {
		return err
	}
	var errs []error
	for _, e := range en {
		errs = append(errs, e.Configure(msg, args...))
	}
	return errors.Join(errs...)
}

func (en ensemble) reset() {
	for _, e := range en {
		e.Reset()
	}
}

// output applies the optional DC filter and limiter to a voice.
type output struct {
	gendy.Voice
	dc    *gendy.DCFilter
	limit *gendy.Limiter
}

func (o *output) InitAudio(p gendy.Params) {
	gendy.Init(o.Voice, p)
	if o.dc != nil {
		o.dc.InitAudio(p)
	}
	if o.limit != nil {
		o.limit.InitAudio(p)
	}
}

func (o *output) RenderBlock(out gendy.Audio) int {
	n := o.Voice.RenderBlock(out)
	if o.dc != nil {
		o.dc.FilterBlock(out[:n])
	}
	if o.limit != nil {
		o.limit.LimitBlock(out[:n])
	}
	return n
}
