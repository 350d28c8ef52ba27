// Package engine implements the phaser's render path: the Kernel drives
// one LFO and one PhaseShifter per channel, and EventProcessor wraps it
// with sample-accurate parameter and MIDI event interleaving.
package engine

import (
	"fmt"

	dspdebug "github.com/vst3go/phasercore/pkg/dsp/debug"
	"github.com/vst3go/phasercore/pkg/dsp/modulation"
	"github.com/vst3go/phasercore/pkg/framework/param"
)

// Parameter IDs for the six host-facing controls.
const (
	ParamRate uint32 = iota
	ParamDepth
	ParamIntensity
	ParamDryMix
	ParamWetMix
	ParamOdd90
)

// defaultRampFrames is how many frames a generic (non-sample-accurate)
// parameter change ramps over when picked up at a block boundary.
const defaultRampFrames = 64

// samplesPerFilterUpdate is how often, in samples, each PhaseShifter
// recomputes its six APF1 coefficient sets from the LFO. Matches the
// original kernel's default of 10.
const samplesPerFilterUpdate = 10

// Kernel owns the LFO and per-channel PhaseShifter cascade and the six
// parameters that drive them. Its render path (RenderFrames) never
// allocates or logs.
type Kernel struct {
	bandTable BandTable

	sampleRate   float64
	channelCount int

	lfo           *modulation.LFO
	phaseShifters []*modulation.PhaseShifter

	rate      *param.Parameter
	depth     *param.Parameter
	intensity *param.Parameter
	dryMix    *param.Parameter
	wetMix    *param.Parameter
	odd90     *param.Parameter

	active bool
}

// NewKernel builds a Kernel with its six parameters registered at their
// default values. Call SetRenderingFormat before rendering.
func NewKernel(bandTable BandTable) *Kernel {
	k := &Kernel{
		bandTable: bandTable,
		lfo:       modulation.NewLFO(48000.0),
		rate: param.New(ParamRate, "Rate").Unit("Hz").Range(0.02, 20.0).
			Default(0.5).Formatter(param.FrequencyFormatter, param.FrequencyParser).Build(),
		depth: param.New(ParamDepth, "Depth").Unit("%").Range(0, 100).
			Default(50).Formatter(param.PercentFormatter, param.PercentParser).Build(),
		intensity: param.New(ParamIntensity, "Intensity").Unit("%").Range(0, 100).
			Default(50).Formatter(param.PercentFormatter, param.PercentParser).Build(),
		dryMix: param.New(ParamDryMix, "Dry").Unit("%").Range(0, 100).
			Default(100).Formatter(param.PercentFormatter, param.PercentParser).Build(),
		wetMix: param.New(ParamWetMix, "Wet").Unit("%").Range(0, 100).
			Default(100).Formatter(param.PercentFormatter, param.PercentParser).Build(),
		odd90: param.New(ParamOdd90, "Quadrature").Range(0, 1).Toggle().
			Formatter(param.OnOffFormatter, param.OnOffParser).Build(),
	}
	k.lfo.SetWaveform(modulation.WaveformTriangle)
	return k
}

// Parameters returns the six parameters in a fixed order, for registering
// with a param.Registry.
func (k *Kernel) Parameters() []*param.Parameter {
	return []*param.Parameter{k.rate, k.depth, k.intensity, k.dryMix, k.wetMix, k.odd90}
}

// SetRenderingFormat (re)configures the kernel for a channel count and
// sample rate. Allocates one PhaseShifter per channel; must be called
// before RenderFrames and again whenever the format changes.
func (k *Kernel) SetRenderingFormat(channelCount int, sampleRate float64) error {
	if channelCount <= 0 {
		return fmt.Errorf("engine: channelCount must be positive, got %d", channelCount)
	}
	if sampleRate <= 0 {
		return fmt.Errorf("engine: sampleRate must be positive, got %g", sampleRate)
	}

	k.sampleRate = sampleRate
	k.channelCount = channelCount
	k.lfo.SetSampleRate(sampleRate)
	k.lfo.SetFrequency(k.rate.GetPlainValue())
	k.lfo.Reset()

	bands := k.bandTable.Bands()
	k.phaseShifters = make([]*modulation.PhaseShifter, channelCount)
	for ch := range k.phaseShifters {
		k.phaseShifters[ch] = modulation.NewPhaseShifter(bands, sampleRate, k.intensity.GetPlainValue()/100.0, samplesPerFilterUpdate)
	}
	logger.Info("rendering format set: channels=%d sampleRate=%g", channelCount, sampleRate)
	return nil
}

// RenderingStateChanged is called when the host starts or stops
// rendering. Stopping halts any in-flight parameter ramps at their
// current values and resets filter history so the next render starts
// cleanly.
func (k *Kernel) RenderingStateChanged(rendering bool) {
	k.active = rendering
	logger.Debug("rendering state changed: rendering=%v", rendering)
	if rendering {
		return
	}
	for _, p := range k.Parameters() {
		p.StopRamp()
	}
	for _, ps := range k.phaseShifters {
		ps.Reset()
	}
	k.lfo.Reset()
}

// SetRate starts the rate parameter toward a new value (Hz) over
// rampFrames frames.
func (k *Kernel) SetRate(hz float64, rampFrames int) {
	k.rate.SetTarget(hz, rampFrames)
}

// SetDepth starts the depth parameter (percent, 0-100) toward a new value.
func (k *Kernel) SetDepth(percent float64, rampFrames int) {
	k.depth.SetTarget(percent, rampFrames)
}

// SetIntensity updates the feedback intensity immediately and propagates
// it to every channel's PhaseShifter without resetting filter state,
// since intensity changes far less often than depth or rate.
func (k *Kernel) SetIntensity(percent float64) {
	k.intensity.SetTarget(percent, 0)
	for _, ps := range k.phaseShifters {
		ps.SetIntensity(percent / 100.0)
	}
}

// SetDryMix starts the dry mix parameter (percent) toward a new value.
func (k *Kernel) SetDryMix(percent float64, rampFrames int) {
	k.dryMix.SetTarget(percent, rampFrames)
}

// SetWetMix starts the wet mix parameter (percent) toward a new value.
func (k *Kernel) SetWetMix(percent float64, rampFrames int) {
	k.wetMix.SetTarget(percent, rampFrames)
}

// SetOdd90 toggles quadrature modulation on odd channels.
func (k *Kernel) SetOdd90(enabled bool) {
	v := 0.0
	if enabled {
		v = 1.0
	}
	k.odd90.SetTarget(v, 0)
}

// ApplyPendingParameters picks up any control-thread parameter writes
// made via Parameter.SetValue (host automation outside the sample-accurate
// event path) and starts each a ramp over the default window, except
// intensity, which is applied at once and pushed to every PhaseShifter as
// SetIntensity does. Call once at the top of every render block before
// RenderFrames.
func (k *Kernel) ApplyPendingParameters() {
	if k.intensity.ApplyPending(0) {
		for _, ps := range k.phaseShifters {
			ps.SetIntensity(k.intensity.GetPlainValue() / 100.0)
		}
	}
	for _, p := range k.Parameters() {
		p.ApplyPending(defaultRampFrames)
	}
}

// RenderFrames renders frameCount frames from inputs into outputs, one
// slice per channel, each already sized to at least frameCount beyond the
// given offset. Frames are the outer loop and channels the inner loop, so
// the LFO advances once per frame and every channel reads the same
// modulation value for that frame (with quadrature offset only on odd
// channels when odd90 is enabled). This must never allocate.
func (k *Kernel) RenderFrames(offset, frameCount int, inputs, outputs [][]float32) {
	for ch := 0; ch < k.channelCount; ch++ {
		dspdebug.CheckAllocation(inputs[ch], "kernel.input")
		dspdebug.CheckAllocation(outputs[ch], "kernel.output")
	}

	odd90 := k.odd90.GetPlainValue() > 0.5

	for frame := 0; frame < frameCount; frame++ {
		depth := k.depth.FrameValue() / 100.0
		dryMix := k.dryMix.FrameValue() / 100.0
		wetMix := k.wetMix.FrameValue() / 100.0
		k.lfo.SetFrequency(k.rate.FrameValue())

		primary := k.lfo.Value() * depth
		var quad float64
		if odd90 {
			quad = k.lfo.QuadPhaseValue() * depth
		}
		k.lfo.Increment()

		for ch := 0; ch < k.channelCount; ch++ {
			mod := primary
			if odd90 && ch%2 == 1 {
				mod = quad
			}

			in := float64(inputs[ch][offset+frame])
			wet := k.phaseShifters[ch].Process(mod, in)
			outputs[ch][offset+frame] = float32(dryMix*in + wetMix*wet)
		}
	}
}
