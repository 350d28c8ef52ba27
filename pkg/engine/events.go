package engine

import "github.com/vst3go/phasercore/pkg/midi"

// RenderEventKind selects which variant a RenderEvent carries.
type RenderEventKind int

const (
	// RenderEventParameter sets a parameter to Value immediately at
	// SampleOffset, with no ramp.
	RenderEventParameter RenderEventKind = iota
	// RenderEventParameterRamp starts a linear ramp to Value over
	// RampFrames frames, beginning at SampleOffset.
	RenderEventParameterRamp
	// RenderEventMIDI carries a MIDI event through to the (currently
	// empty) MIDI hook.
	RenderEventMIDI
)

// RenderEvent is one entry in the sample-accurate event list a block
// render call interleaves with audio. Callers must supply events sorted
// ascending by SampleOffset and scoped to the current block
// (0 <= SampleOffset < frameCount). An event with a negative offset is
// applied before the first frame and one at exactly frameCount after the
// last; events past frameCount are not drained by this call.
type RenderEvent struct {
	SampleOffset int
	Kind         RenderEventKind

	ParamID    uint32
	Value      float64
	RampFrames int

	MIDI midi.Event
}
