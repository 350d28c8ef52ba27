package modulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLFOIncrementMatchesFrequencyOverSampleRate(t *testing.T) {
	l := NewLFO(48000.0)
	l.SetFrequency(120.0)
	assert.InDelta(t, 120.0/48000.0, l.increment(), 1e-12)
}

func TestLFOTrianglePeriodicity(t *testing.T) {
	l := NewLFO(1000.0)
	l.SetFrequency(10.0) // 100-sample period
	l.SetWaveform(WaveformTriangle)

	first := make([]float64, 100)
	for i := range first {
		first[i] = l.ValueAndIncrement()
	}

	second := make([]float64, 100)
	for i := range second {
		second[i] = l.ValueAndIncrement()
	}

	for i := range first {
		assert.InDelta(t, first[i], second[i], 1e-9, "sample %d should repeat after one period", i)
	}
}

func TestLFOTriangleRange(t *testing.T) {
	l := NewLFO(1000.0)
	l.SetFrequency(1.0)
	l.SetWaveform(WaveformTriangle)

	for i := 0; i < 1000; i++ {
		v := l.ValueAndIncrement()
		assert.GreaterOrEqual(t, v, -1.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}

func TestLFOQuadPhaseOffset(t *testing.T) {
	l := NewLFO(4000.0)
	l.SetFrequency(1.0) // 4000-sample period, quarter period = 1000 samples
	l.SetWaveform(WaveformTriangle)

	quad := l.QuadPhaseValue()

	for i := 0; i < 1000; i++ {
		l.Increment()
	}
	primaryAtQuarter := l.Value()

	assert.InDelta(t, quad, primaryAtQuarter, 1e-9)
}

func TestLFOSaveRestoreState(t *testing.T) {
	l := NewLFO(48000.0)
	l.SetFrequency(5.0)

	for i := 0; i < 37; i++ {
		l.Increment()
	}
	saved := l.SaveState()
	before := l.Value()

	for i := 0; i < 500; i++ {
		l.Increment()
	}

	l.RestoreState(saved)
	assert.InDelta(t, before, l.Value(), 1e-12)
}

func TestLFOValueDoesNotAdvancePhase(t *testing.T) {
	l := NewLFO(48000.0)
	l.SetFrequency(3.0)

	a := l.Value()
	b := l.Value()
	assert.Equal(t, a, b, "Value must be a pure read")
}

func TestLFOReset(t *testing.T) {
	l := NewLFO(48000.0)
	l.SetFrequency(2.0)
	for i := 0; i < 100; i++ {
		l.Increment()
	}
	l.Reset()
	assert.Equal(t, 0.0, l.phase)
}
