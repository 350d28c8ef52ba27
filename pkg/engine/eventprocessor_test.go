package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestEventProcessor(t *testing.T, channels int) *EventProcessor {
	k := NewKernel(BandTableIdeal)
	assert.NoError(t, k.SetRenderingFormat(channels, 48000))
	return NewEventProcessor(k)
}

func TestEventProcessorBypassCopiesInputToOutput(t *testing.T) {
	ep := newTestEventProcessor(t, 1)
	ep.kernel.SetWetMix(100, 0)
	ep.kernel.SetDryMix(0, 0)

	input := []float32{0.1, 0.2, -0.3, 0.4, -0.5}
	output := make([]float32, len(input))

	ep.ProcessAndRender([][]float32{input}, [][]float32{output}, len(input), nil, true)

	assert.Equal(t, input, output)
}

func TestEventProcessorInPlaceRenderMatchesOutOfPlace(t *testing.T) {
	input := []float32{0.1, 0.2, -0.3, 0.4, -0.5, 0.25, -0.1, 0.0}

	epA := newTestEventProcessor(t, 1)
	epA.kernel.SetWetMix(100, 0)
	epA.kernel.SetDryMix(0, 0)
	epA.kernel.SetIntensity(70)
	outOfPlace := make([]float32, len(input))
	inCopyA := append([]float32(nil), input...)
	epA.ProcessAndRender([][]float32{inCopyA}, [][]float32{outOfPlace}, len(input), nil, false)

	epB := newTestEventProcessor(t, 1)
	epB.kernel.SetWetMix(100, 0)
	epB.kernel.SetDryMix(0, 0)
	epB.kernel.SetIntensity(70)
	inPlace := append([]float32(nil), input...)
	epB.ProcessAndRender([][]float32{inPlace}, nil, len(input), nil, false)

	assert.Equal(t, outOfPlace, inPlace)
}

func TestEventProcessorParameterEventAppliesAtExactSampleOffset(t *testing.T) {
	ep := newTestEventProcessor(t, 1)
	ep.kernel.SetWetMix(0, 0)
	ep.kernel.SetDryMix(0, 0)

	input := make([]float32, 20)
	output := make([]float32, 20)
	for i := range input {
		input[i] = 0.5
	}

	events := []RenderEvent{
		{SampleOffset: 10, Kind: RenderEventParameter, ParamID: ParamWetMix, Value: 100},
	}

	ep.ProcessAndRender([][]float32{input}, [][]float32{output}, 20, events, false)

	assert.Equal(t, 100.0, ep.kernel.wetMix.GetPlainValue())

	// A processor that is fully wet from the first frame renders the same
	// filtered signal, so the event's output must be silent before frame 10
	// and match the reference from frame 10 on.
	ref := newTestEventProcessor(t, 1)
	ref.kernel.SetWetMix(100, 0)
	ref.kernel.SetDryMix(0, 0)
	refOutput := make([]float32, 20)
	ref.ProcessAndRender([][]float32{append([]float32(nil), input...)}, [][]float32{refOutput}, 20, nil, false)

	for i := range output {
		if i < 10 {
			assert.Equal(t, float32(0), output[i], "frame %d", i)
		} else {
			assert.Equal(t, refOutput[i], output[i], "frame %d", i)
		}
	}
}

func TestEventProcessorParameterRampEventStartsRamp(t *testing.T) {
	ep := newTestEventProcessor(t, 1)

	input := make([]float32, 32)
	output := make([]float32, 32)

	events := []RenderEvent{
		{SampleOffset: 0, Kind: RenderEventParameterRamp, ParamID: ParamDepth, Value: 100, RampFrames: 16},
	}

	ep.ProcessAndRender([][]float32{input}, [][]float32{output}, 32, events, false)

	assert.Equal(t, 100.0, ep.kernel.depth.GetPlainValue())
}

func TestEventProcessorDrainsMultipleEventsAtSameSampleOffset(t *testing.T) {
	ep := newTestEventProcessor(t, 1)

	input := make([]float32, 16)
	output := make([]float32, 16)

	events := []RenderEvent{
		{SampleOffset: 5, Kind: RenderEventParameter, ParamID: ParamDryMix, Value: 0},
		{SampleOffset: 5, Kind: RenderEventParameter, ParamID: ParamWetMix, Value: 100},
	}

	ep.ProcessAndRender([][]float32{input}, [][]float32{output}, 16, events, false)

	assert.Equal(t, 0.0, ep.kernel.dryMix.GetPlainValue())
	assert.Equal(t, 100.0, ep.kernel.wetMix.GetPlainValue())
}

func TestEventProcessorSilenceStaysSilentAcrossEvents(t *testing.T) {
	ep := newTestEventProcessor(t, 2)

	inL := make([]float32, 50)
	inR := make([]float32, 50)
	outL := make([]float32, 50)
	outR := make([]float32, 50)

	events := []RenderEvent{
		{SampleOffset: 10, Kind: RenderEventParameterRamp, ParamID: ParamRate, Value: 3.0, RampFrames: 20},
		{SampleOffset: 30, Kind: RenderEventParameter, ParamID: ParamIntensity, Value: 90},
	}

	ep.ProcessAndRender([][]float32{inL, inR}, [][]float32{outL, outR}, 50, events, false)

	for i := range outL {
		assert.Equal(t, float32(0), outL[i])
		assert.Equal(t, float32(0), outR[i])
	}
}
