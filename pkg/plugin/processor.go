package plugin

import (
	"github.com/vst3go/phasercore/pkg/engine"
	"github.com/vst3go/phasercore/pkg/framework/bus"
	fwplugin "github.com/vst3go/phasercore/pkg/framework/plugin"
	"github.com/vst3go/phasercore/pkg/framework/process"
)

// StereoPhaser adapts an engine.Kernel to the Processor interface a host
// binding drives. It owns no cgo or VST3 SDK surface of its own; a real
// host plug-in binding lives one layer up, naming this type as its
// processor implementation.
type StereoPhaser struct {
	*fwplugin.BaseProcessor
	kernel *engine.Kernel
	events *engine.EventProcessor

	// midiScratch is reused across ProcessAudio calls so the RenderEvent
	// list keeps its backing array between blocks. Draining staged MIDI
	// events still allocates: GetAllInputEvents returns a fresh copy.
	midiScratch []engine.RenderEvent
}

// NewStereoPhaser builds a stereo phaser processor with its six
// parameters registered and ready for a host to enumerate.
func NewStereoPhaser() *StereoPhaser {
	kernel := engine.NewKernel(engine.BandTableIdeal)
	base := fwplugin.NewBaseProcessor(bus.NewEffectStereo())
	for _, p := range kernel.Parameters() {
		_ = base.Parameters().Add(p)
	}

	sp := &StereoPhaser{
		BaseProcessor: base,
		kernel:        kernel,
		events:        engine.NewEventProcessor(kernel),
	}
	base.OnInitialize(sp.onInitialize)
	base.OnReset(sp.onReset)
	return sp
}

func (sp *StereoPhaser) onInitialize(sampleRate float64, maxBlockSize int32) error {
	return sp.kernel.SetRenderingFormat(2, sampleRate)
}

func (sp *StereoPhaser) onReset() {
	sp.kernel.RenderingStateChanged(false)
}

// Kernel exposes the underlying engine for callers that need direct
// sample-accurate event dispatch (RenderEvent lists) instead of the
// plain Processor interface.
func (sp *StereoPhaser) Kernel() *engine.Kernel {
	return sp.kernel
}

// Events exposes the EventProcessor wrapping the kernel.
func (sp *StereoPhaser) Events() *engine.EventProcessor {
	return sp.events
}

// ProcessAudio implements Processor. It drains any MIDI events a host
// staged on ctx for this block and carries them into the sample-accurate
// event path; callers that need sample-accurate parameter automation
// should drive sp.Events().ProcessAndRender directly instead of going
// through this generic entry point.
func (sp *StereoPhaser) ProcessAudio(ctx *process.Context) {
	frameCount := ctx.NumSamples()
	if frameCount == 0 {
		return
	}

	sp.midiScratch = sp.midiScratch[:0]
	if ctx.HasInputEvents() {
		for _, e := range ctx.GetAllInputEvents() {
			sp.midiScratch = append(sp.midiScratch, engine.RenderEvent{
				SampleOffset: int(e.SampleOffset()),
				Kind:         engine.RenderEventMIDI,
				MIDI:         e,
			})
		}
		ctx.ClearInputEvents()
	}

	sp.events.ProcessAndRender(ctx.Input, ctx.Output, frameCount, sp.midiScratch, false)
}

// Info returns the plugin metadata a host uses to identify this
// processor's class.
func Info() fwplugin.Info {
	return fwplugin.Info{
		ID:       "com.phasercore.examples.stereophaser",
		Name:     "Stereo Phaser",
		Version:  "1.0.0",
		Vendor:   "phasercore",
		Category: "Fx",
	}
}

// stereoPhaserPlugin implements the Plugin interface for registration
// with a host binding.
type stereoPhaserPlugin struct{}

// NewPlugin returns the Plugin implementation a host binding registers.
func NewPlugin() Plugin {
	return stereoPhaserPlugin{}
}

func (stereoPhaserPlugin) GetInfo() fwplugin.Info {
	return Info()
}

func (stereoPhaserPlugin) CreateProcessor() Processor {
	return NewStereoPhaser()
}
