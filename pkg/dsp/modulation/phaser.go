package modulation

import "github.com/vst3go/phasercore/pkg/dsp/biquad"

// Band is one all-pass stage's modulation range: the LFO sweeps the
// stage's corner frequency between FrequencyMin and FrequencyMax.
type Band struct {
	FrequencyMin float64
	FrequencyMax float64
}

// bipolarModulation maps a bipolar LFO sample in [-1, 1] onto [lo, hi].
func bipolarModulation(modulation, lo, hi float64) float64 {
	return lo + (hi-lo)*(modulation*0.5+0.5)
}

// PhaseShifter cascades six first-order all-pass biquads (canonical
// transpose form) with a global feedback path, implementing the Pirkle
// phaser topology. One PhaseShifter runs per audio channel.
type PhaseShifter struct {
	bands                []Band
	sampleRate            float64
	intensity             float64
	samplesPerFilterUpdate int
	sampleCounter         int

	filters []biquad.CanonicalTransposeFilter
	gammas  []float64
}

// NewPhaseShifter builds a PhaseShifter over the given band table. bands is
// shared by reference with the caller (all channels read the same table).
func NewPhaseShifter(bands []Band, sampleRate, intensity float64, samplesPerFilterUpdate int) *PhaseShifter {
	p := &PhaseShifter{
		bands:                  bands,
		sampleRate:             sampleRate,
		intensity:              intensity,
		samplesPerFilterUpdate: samplesPerFilterUpdate,
		filters:                make([]biquad.CanonicalTransposeFilter, len(bands)),
		gammas:                 make([]float64, len(bands)+1),
	}
	for i := range p.gammas {
		p.gammas[i] = 1.0
	}
	p.updateCoefficients(0.0)
	return p
}

// SetIntensity changes the feedback weight without disturbing filter state.
func (p *PhaseShifter) SetIntensity(intensity float64) {
	p.intensity = intensity
}

// Reset clears filter history and the coefficient-update counter and
// restores the zero-modulation coefficients NewPhaseShifter starts with.
func (p *PhaseShifter) Reset() {
	p.sampleCounter = 0
	for i := range p.filters {
		p.filters[i].Reset()
	}
	p.updateCoefficients(0.0)
}

func (p *PhaseShifter) updateCoefficients(modulation float64) {
	for i, band := range p.bands {
		frequency := bipolarModulation(modulation, band.FrequencyMin, band.FrequencyMax)
		p.filters[i].SetCoefficients(biquad.APF1(p.sampleRate, frequency))
	}
}

// Process runs one sample through the cascade. modulation is the LFO
// sample (already scaled by depth) driving this channel; input is the dry
// sample.
func (p *PhaseShifter) Process(modulation, input float64) float64 {
	if p.sampleCounter >= p.samplesPerFilterUpdate {
		p.updateCoefficients(modulation)
		p.sampleCounter = 0
	}
	p.sampleCounter++

	n := len(p.filters)

	for i := 1; i <= n; i++ {
		p.gammas[i] = p.filters[n-i].GainValue() * p.gammas[i-1]
	}

	weightedSum := 0.0
	for i := 0; i < n; i++ {
		weightedSum += p.gammas[n-i-1] * p.filters[i].StorageComponent()
	}

	output := (input + p.intensity*weightedSum) / (1.0 + p.intensity*p.gammas[n])
	for i := range p.filters {
		output = p.filters[i].Process(output)
	}

	return output
}
