package param

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestParameter(min, max, defaultPlain float64) *Parameter {
	return New(1, "test").Range(min, max).Default(defaultPlain).Build()
}

func TestParameterBuildInitializesCurrentToDefault(t *testing.T) {
	p := newTestParameter(0, 100, 50)
	assert.Equal(t, 50.0, p.GetPlainValue())
	assert.False(t, p.IsRamping())
}

func TestParameterSetValueIsPickedUpByApplyPending(t *testing.T) {
	p := newTestParameter(0, 100, 0)
	p.SetValue(1.0) // normalized 1.0 -> plain 100
	picked := p.ApplyPending(10)
	assert.True(t, picked)
	assert.True(t, p.IsRamping())
}

func TestParameterApplyPendingNoopWithoutSetValue(t *testing.T) {
	p := newTestParameter(0, 100, 25)
	picked := p.ApplyPending(10)
	assert.False(t, picked)
}

func TestParameterRampMonotonic(t *testing.T) {
	p := newTestParameter(0, 100, 0)
	p.SetTarget(100, 10)

	prev := p.GetPlainValue()
	for i := 0; i < 10; i++ {
		v := p.FrameValue()
		assert.GreaterOrEqual(t, v, prev)
		prev = v
	}
	assert.Equal(t, 100.0, p.GetPlainValue())
	assert.False(t, p.IsRamping())
}

func TestParameterRampReachesExactTarget(t *testing.T) {
	p := newTestParameter(0, 1, 0)
	p.SetTarget(0.33333, 7)
	for i := 0; i < 7; i++ {
		p.FrameValue()
	}
	assert.InDelta(t, 0.33333, p.GetPlainValue(), 1e-12)
}

func TestParameterImmediateTargetSkipsRamp(t *testing.T) {
	p := newTestParameter(0, 100, 0)
	p.SetTarget(50, 0)
	assert.Equal(t, 50.0, p.GetPlainValue())
	assert.False(t, p.IsRamping())
}

func TestParameterStopRampHalts(t *testing.T) {
	p := newTestParameter(0, 100, 0)
	p.SetTarget(100, 100)
	for i := 0; i < 10; i++ {
		p.FrameValue()
	}
	p.StopRamp()
	held := p.GetPlainValue()
	for i := 0; i < 10; i++ {
		assert.Equal(t, held, p.FrameValue())
	}
}

func TestParameterRampSpansMultipleBlocks(t *testing.T) {
	p := newTestParameter(0, 100, 0)
	p.SetTarget(100, 20)

	for i := 0; i < 8; i++ {
		p.FrameValue()
	}
	assert.True(t, p.IsRamping())

	for i := 0; i < 12; i++ {
		p.FrameValue()
	}
	assert.Equal(t, 100.0, p.GetPlainValue())
	assert.False(t, p.IsRamping())
}

func TestParameterNormalizeDenormalizeRoundTrip(t *testing.T) {
	p := newTestParameter(-50, 50, 0)
	for _, plain := range []float64{-50, -12.5, 0, 37.25, 50} {
		n := p.Normalize(plain)
		assert.InDelta(t, plain, p.Denormalize(n), 1e-9)
	}
}
