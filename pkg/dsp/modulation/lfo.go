// Package modulation provides the low-frequency oscillator and all-pass
// phaser cascade used to modulate the engine's biquad filters.
package modulation

import "math"

// Waveform selects the shape LFO.Value reads off the phase accumulator.
type Waveform int

const (
	// WaveformTriangle is the phaser's mandated waveform: linear ramp up
	// and down across one period.
	WaveformTriangle Waveform = iota
	WaveformSine
	WaveformSawtooth
)

// LFO is a phase-accumulator oscillator. Its phase lives in [0, 1); the
// render thread reads Value/QuadPhaseValue without side effects and calls
// Increment once per frame to advance.
type LFO struct {
	sampleRate float64
	frequency  float64
	phase      float64
	waveform   Waveform
}

// NewLFO creates an LFO at the given sample rate, triangle waveform,
// 1 Hz, zero phase.
func NewLFO(sampleRate float64) *LFO {
	return &LFO{
		sampleRate: sampleRate,
		frequency:  1.0,
		waveform:   WaveformTriangle,
	}
}

// SetSampleRate updates the sample rate the phase increment is derived from.
func (l *LFO) SetSampleRate(sampleRate float64) {
	l.sampleRate = sampleRate
}

// SetFrequency sets the oscillator frequency in Hz.
func (l *LFO) SetFrequency(hz float64) {
	l.frequency = hz
}

// SetWaveform selects the waveform Value reads.
func (l *LFO) SetWaveform(w Waveform) {
	l.waveform = w
}

// Reset zeroes the phase accumulator.
func (l *LFO) Reset() {
	l.phase = 0.0
}

// increment is the per-sample phase step: frequency/sampleRate.
func (l *LFO) increment() float64 {
	if l.sampleRate <= 0 {
		return 0.0
	}
	return l.frequency / l.sampleRate
}

func waveformAt(w Waveform, phase float64) float64 {
	switch w {
	case WaveformTriangle:
		if phase < 0.5 {
			return 4.0*phase - 1.0
		}
		return 3.0 - 4.0*phase
	case WaveformSine:
		return math.Sin(2.0 * math.Pi * phase)
	case WaveformSawtooth:
		return 2.0*phase - 1.0
	default:
		return 0.0
	}
}

// Value reads the bipolar (-1 to 1) waveform value at the current phase
// without advancing it.
func (l *LFO) Value() float64 {
	return waveformAt(l.waveform, l.phase)
}

// QuadPhaseValue reads the waveform value a quarter period ahead of the
// current phase, used to drive the odd channel in quadrature mode.
func (l *LFO) QuadPhaseValue() float64 {
	quad := l.phase + 0.25
	if quad >= 1.0 {
		quad -= 1.0
	}
	return waveformAt(l.waveform, quad)
}

// Increment advances the phase accumulator by one sample and wraps it
// into [0, 1).
func (l *LFO) Increment() {
	l.phase += l.increment()
	if l.phase >= 1.0 {
		l.phase -= 1.0
	}
}

// ValueAndIncrement reads the current value then advances the phase, the
// combined operation the render loop uses for the primary channel.
func (l *LFO) ValueAndIncrement() float64 {
	v := l.Value()
	l.Increment()
	return v
}

// State is a saved phase snapshot, used to re-synchronize the LFO across
// channels within the same frame.
type State struct {
	phase float64
}

// SaveState captures the current phase for later restoration.
func (l *LFO) SaveState() State {
	return State{phase: l.phase}
}

// RestoreState resets the phase to a previously saved snapshot.
func (l *LFO) RestoreState(s State) {
	l.phase = s.phase
}
