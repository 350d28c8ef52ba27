package engine

import "github.com/vst3go/phasercore/pkg/midi"

// EventProcessor wraps a Kernel with sample-accurate event interleaving:
// a block render is split at each event's sample offset so parameter and
// MIDI changes land on the exact frame the host scheduled them for,
// instead of only at block boundaries.
type EventProcessor struct {
	kernel *Kernel
}

// NewEventProcessor wraps the given Kernel.
func NewEventProcessor(kernel *Kernel) *EventProcessor {
	return &EventProcessor{kernel: kernel}
}

// Kernel returns the wrapped Kernel.
func (ep *EventProcessor) Kernel() *Kernel {
	return ep.kernel
}

// ProcessAndRender renders frameCount frames from inputs into outputs,
// draining events at their scheduled sample offsets along the way.
//
// If outputs is nil, rendering happens in place: inputs is both read and
// overwritten, mirroring a host that handed back null output pointers
// because its input and output buffers already alias each other.
//
// If bypass is true, the dry signal passes straight through (a full copy
// when not already in place) and no events are applied to the kernel.
func (ep *EventProcessor) ProcessAndRender(inputs, outputs [][]float32, frameCount int, events []RenderEvent, bypass bool) {
	inPlace := outputs == nil
	dst := outputs
	if inPlace {
		dst = inputs
	}

	if bypass {
		if !inPlace {
			for ch := range inputs {
				copy(dst[ch][:frameCount], inputs[ch][:frameCount])
			}
		}
		return
	}

	ep.kernel.ApplyPendingParameters()

	now := 0
	idx := 0
	for now < frameCount {
		var delta int
		if idx < len(events) {
			delta = events[idx].SampleOffset - now
			if delta < 0 {
				delta = 0
			}
		} else {
			delta = frameCount - now
		}
		if delta > frameCount-now {
			delta = frameCount - now
		}

		if delta > 0 {
			ep.kernel.RenderFrames(now, delta, inputs, dst)
			now += delta
		}

		for idx < len(events) && events[idx].SampleOffset <= now {
			ep.dispatch(events[idx])
			idx++
		}
	}
}

func (ep *EventProcessor) dispatch(e RenderEvent) {
	switch e.Kind {
	case RenderEventParameter:
		ep.setParameter(e.ParamID, e.Value, 0)
	case RenderEventParameterRamp:
		ep.setParameter(e.ParamID, e.Value, e.RampFrames)
	case RenderEventMIDI:
		ep.handleMIDI(e.MIDI)
	}
}

func (ep *EventProcessor) setParameter(id uint32, value float64, rampFrames int) {
	switch id {
	case ParamRate:
		ep.kernel.SetRate(value, rampFrames)
	case ParamDepth:
		ep.kernel.SetDepth(value, rampFrames)
	case ParamIntensity:
		ep.kernel.SetIntensity(value)
	case ParamDryMix:
		ep.kernel.SetDryMix(value, rampFrames)
	case ParamWetMix:
		ep.kernel.SetWetMix(value, rampFrames)
	case ParamOdd90:
		ep.kernel.SetOdd90(value > 0.5)
	}
}

// handleMIDI is an intentionally empty hook: this engine is not an
// instrument and interprets no MIDI messages, but the event-interleaving
// machinery still needs somewhere to route them so a host binding can
// extend it later.
func (ep *EventProcessor) handleMIDI(event midi.Event) {
	_ = event
}
