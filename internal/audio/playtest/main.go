// Command playtest renders one hit of a single voice to a WAV file so it can
// be auditioned on its own.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ingyamilmolinar/seedloop/internal/audio"
	loop_log "github.com/ingyamilmolinar/seedloop/internal/log"
	"github.com/ingyamilmolinar/seedloop/internal/wavfile"
)

func main() {
	sr := flag.Int("sr", 44100, "sample rate in Hz")
	seed := flag.Uint64("seed", 0xCAFEBABE, "noise seed for snare and hat")
	freq := flag.Float64("freq", 0, "pitch in Hz for bass and lead (0 = voice default)")
	out := flag.String("out", "", "output file (default <voice>.wav)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: playtest [flags] kick|snare|hat|bass|lead\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	logger := loop_log.New(os.Stderr, loop_log.LevelInfo)

	id, ok := audio.ParseID(flag.Arg(0))
	if !ok {
		flag.Usage()
		os.Exit(2)
	}
	path := *out
	if path == "" {
		path = id.String() + ".wav"
	}
	l, r := Hit(id, *sr, *seed, *freq)
	if err := wavfile.Write(path, l, r, len(l), *sr); err != nil {
		logger.Errorf("[PLAYTEST] %v", err)
		os.Exit(1)
	}
	logger.Infof("[PLAYTEST] wrote %s (%d frames)", path, len(l))
}

// Hit triggers the voice once and renders until it falls silent.
func Hit(id audio.ID, sampleRate int, seed uint64, freq float64) (l, r []float32) {
	v := audio.NewVoice(id, float64(sampleRate), seed)
	if p, ok := v.(audio.Pitched); ok && freq > 0 {
		p.SetFreq(freq)
	}
	v.Trigger()
	const block = 512
	for v.Active() {
		l = append(l, make([]float32, block)...)
		r = append(r, make([]float32, block)...)
		off := len(l) - block
		v.Process(l[off:], r[off:], block)
	}
	// drop the silent tail of the last block
	for len(l) > 0 && l[len(l)-1] == 0 && r[len(r)-1] == 0 {
		l, r = l[:len(l)-1], r[:len(r)-1]
	}
	return l, r
}
