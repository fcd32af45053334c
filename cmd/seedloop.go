package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/ingyamilmolinar/seedloop/core/beat"
	"github.com/ingyamilmolinar/seedloop/core/engine"
	"github.com/ingyamilmolinar/seedloop/internal/audio"
	"github.com/ingyamilmolinar/seedloop/internal/bridge"
	loop_log "github.com/ingyamilmolinar/seedloop/internal/log"
	"github.com/ingyamilmolinar/seedloop/internal/ui"
	"github.com/ingyamilmolinar/seedloop/internal/visual"
	"github.com/ingyamilmolinar/seedloop/internal/wavfile"
)

const (
	defaultSeed      uint64 = 0xCAFEBABE
	defaultMaxFrames        = 424000
)

type options struct {
	out        string
	maxFrames  int
	bars       int
	sampleRate int
	play       bool
	visual     bool
	logLevel   string
	seedArg    string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	def := beat.DefaultConfig()
	fs := flag.NewFlagSet("seedloop", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: seedloop [flags] [seed]\n\nseed is hex (0x...) or decimal, default 0x%X\n\n", defaultSeed)
		fs.PrintDefaults()
	}
	fs.StringVar(&o.out, "out", ".", "directory for the rendered WAV")
	fs.IntVar(&o.maxFrames, "max-frames", defaultMaxFrames, "frame capacity of the render buffer (0 = whole segment)")
	fs.IntVar(&o.bars, "bars", def.BarsPerSegment, "bars per segment")
	fs.IntVar(&o.sampleRate, "sr", def.SampleRate, "sample rate in Hz")
	fs.BoolVar(&o.play, "play", false, "play the segment after writing it")
	fs.BoolVar(&o.visual, "visual", false, "open the visualizer window")
	fs.StringVar(&o.logLevel, "log-level", "info", "debug|info|warn|error|none")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	o.seedArg = fs.Arg(0)
	return o, nil
}

// parseSeed accepts 0x-prefixed hex or decimal. ok is false when s was
// given but could not be parsed; the default seed is returned then.
func parseSeed(s string) (seed uint64, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return defaultSeed, true
	}
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return defaultSeed, false
	}
	return v, true
}

func outputName(seed uint64) string {
	return fmt.Sprintf("seed_0x%X.wav", seed)
}

func run(args []string, stdout, stderr io.Writer) int {
	o, err := parseFlags(args, stderr)
	if err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	level, err := loop_log.ParseLevel(o.logLevel)
	logger := loop_log.New(stderr, level)
	if err != nil {
		logger.Warnf("[MAIN] %v, using %s", err, level)
	}

	seed, ok := parseSeed(o.seedArg)
	if !ok {
		logger.Warnf("[MAIN] could not parse seed %q, using 0x%X", o.seedArg, seed)
	}

	cfg := engine.DefaultConfig()
	cfg.Beat.SampleRate = o.sampleRate
	cfg.Beat.BarsPerSegment = o.bars

	seg := engine.Render(seed, cfg, o.maxFrames, logger)
	if seg.Clamped {
		logger.Infof("[MAIN] segment clamped to %d of %d frames", seg.Frames, seg.Params.TotalFrames)
	}

	path := filepath.Join(o.out, outputName(seed))
	if err := wavfile.Write(path, seg.L, seg.R, seg.Frames, seg.SampleRate); err != nil {
		logger.Errorf("[MAIN] %v", err)
		return 1
	}
	fmt.Fprintf(stdout, "Wrote %s (%d frames, %d bpm, root %.2f Hz)\n",
		path, seg.Frames, seg.Params.BPM, seg.Params.RootFreq)

	if !o.play && !o.visual {
		return 0
	}
	if err := present(seg, o, logger); err != nil {
		logger.Errorf("[MAIN] %v", err)
		return 1
	}
	return 0
}

// present plays and/or shows the segment. The window must own the main
// goroutine, so playback waits only when there is no window.
func present(seg *engine.Segment, o options, logger *loop_log.Logger) error {
	var clock bridge.Clock
	if o.play {
		p, err := audio.NewPlayer(seg.L, seg.R, seg.Frames, seg.SampleRate)
		if err != nil {
			return fmt.Errorf("audio output: %w", err)
		}
		defer p.Close()
		p.Play()
		clock = p
		if !o.visual {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			if err := p.Wait(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		}
	} else {
		wc := bridge.NewWallClock(time.Duration(seg.DurationMs()) * time.Millisecond)
		wc.Start()
		clock = wc
	}

	b := bridge.New(seg.L, seg.R, seg.Frames, seg.SampleRate, clock)
	logger.Infof("[MAIN] visualizer: %d frames over %d ms", b.FrameCount(), b.SegmentDurationMs())
	g := ui.New(visual.NewScene(seg.Params.Seed, seg.Params.BPM), b, logger)
	if err := ui.Run(g); err != nil {
		return fmt.Errorf("visualizer: %w", err)
	}
	return nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
