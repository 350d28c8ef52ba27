// Command phasersim renders a stereo phaser over raw interleaved float32
// PCM read from stdin and writes the result to stdout. It exists to
// exercise the plugin/process adapter layer end to end without any host
// plug-in binding, cgo, or audio device I/O.
package main

import (
	"bufio"
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"math"
	"os"

	fwdebug "github.com/vst3go/phasercore/pkg/framework/debug"
	"github.com/vst3go/phasercore/pkg/framework/process"
	phaserplugin "github.com/vst3go/phasercore/pkg/plugin"
)

func main() {
	sampleRate := flag.Float64("rate", 48000.0, "sample rate in Hz")
	rateHz := flag.Float64("lfo-rate", 0.5, "phaser LFO rate in Hz")
	depth := flag.Float64("depth", 75, "modulation depth, percent")
	intensity := flag.Float64("intensity", 60, "feedback intensity, percent")
	dry := flag.Float64("dry", 50, "dry mix, percent")
	wet := flag.Float64("wet", 50, "wet mix, percent")
	odd90 := flag.Bool("odd90", true, "drive odd channels in quadrature")
	blockSize := flag.Int("block", 512, "frames rendered per block")
	flag.Parse()

	pl := phaserplugin.NewPlugin()
	info := pl.GetInfo()
	fmt.Fprintf(os.Stderr, "phasersim: %s v%s (%s)\n", info.Name, info.Version, info.ID)

	sp, ok := pl.CreateProcessor().(*phaserplugin.StereoPhaser)
	if !ok {
		fmt.Fprintln(os.Stderr, "phasersim: unexpected processor type")
		os.Exit(1)
	}

	if err := sp.Initialize(*sampleRate, int32(*blockSize)); err != nil {
		fmt.Fprintln(os.Stderr, "phasersim:", err)
		os.Exit(1)
	}

	kernel := sp.Kernel()
	kernel.SetRate(*rateHz, 0)
	kernel.SetDepth(*depth, 0)
	kernel.SetIntensity(*intensity)
	kernel.SetDryMix(*dry, 0)
	kernel.SetWetMix(*wet, 0)
	kernel.SetOdd90(*odd90)

	analyzer := fwdebug.NewAudioAnalyzer()
	profiler := fwdebug.NewProfiler(1000)
	defer func() {
		fmt.Fprint(os.Stderr, profiler.Report())
	}()

	in := bufio.NewReaderSize(os.Stdin, 1<<20)
	out := bufio.NewWriterSize(os.Stdout, 1<<20)
	defer out.Flush()

	left := make([]float32, *blockSize)
	right := make([]float32, *blockSize)
	outLeft := make([]float32, *blockSize)
	outRight := make([]float32, *blockSize)

	ctx := process.NewContext(*blockSize, sp.GetParameters())

	frame := make([]byte, 8)
	for {
		n := 0
		for ; n < *blockSize; n++ {
			if _, err := io.ReadFull(in, frame); err != nil {
				if err == io.EOF || err == io.ErrUnexpectedEOF {
					break
				}
				fmt.Fprintln(os.Stderr, "phasersim: read:", err)
				os.Exit(1)
			}
			left[n] = math.Float32frombits(binary.LittleEndian.Uint32(frame[0:4]))
			right[n] = math.Float32frombits(binary.LittleEndian.Uint32(frame[4:8]))
		}
		if n == 0 {
			break
		}

		ctx.Input = [][]float32{left[:n], right[:n]}
		ctx.Output = [][]float32{outLeft[:n], outRight[:n]}

		profiler.Time("render", func() {
			sp.ProcessAudio(ctx)
		})

		if res := analyzer.Analyze(outLeft[:n]); res.HasNaN || res.Clipping {
			fmt.Fprintf(os.Stderr, "phasersim: left channel warning: clipping=%v nan=%v\n", res.Clipping, res.HasNaN)
		}

		for i := 0; i < n; i++ {
			binary.LittleEndian.PutUint32(frame[0:4], math.Float32bits(outLeft[i]))
			binary.LittleEndian.PutUint32(frame[4:8], math.Float32bits(outRight[i]))
			if _, err := out.Write(frame); err != nil {
				fmt.Fprintln(os.Stderr, "phasersim: write:", err)
				os.Exit(1)
			}
		}

		if n < *blockSize {
			break
		}
	}
}
