package engine

import "github.com/vst3go/phasercore/pkg/dsp/modulation"

// BandTable names one of the two fixed six-band frequency tables the
// engine ships, each reproducing the band edges of a particular hardware
// phaser design.
type BandTable int

const (
	// BandTableIdeal is the six-band table used at runtime.
	BandTableIdeal BandTable = iota
	// BandTableNationalSemiconductor reproduces the NatSemi reference
	// design's band edges. Not selected by default, but kept available
	// for callers that want it.
	BandTableNationalSemiconductor
)

var idealBands = []modulation.Band{
	{FrequencyMin: 16.0, FrequencyMax: 1600.0},
	{FrequencyMin: 33.0, FrequencyMax: 3300.0},
	{FrequencyMin: 48.0, FrequencyMax: 4800.0},
	{FrequencyMin: 98.0, FrequencyMax: 9800.0},
	{FrequencyMin: 160.0, FrequencyMax: 16000.0},
	{FrequencyMin: 260.0, FrequencyMax: 20480.0},
}

var nationalSemiconductorBands = []modulation.Band{
	{FrequencyMin: 32.0, FrequencyMax: 1500.0},
	{FrequencyMin: 68.0, FrequencyMax: 3400.0},
	{FrequencyMin: 96.0, FrequencyMax: 4800.0},
	{FrequencyMin: 212.0, FrequencyMax: 10000.0},
	{FrequencyMin: 320.0, FrequencyMax: 16000.0},
	{FrequencyMin: 636.0, FrequencyMax: 20480.0},
}

// Bands returns the band table's six stage ranges.
func (t BandTable) Bands() []modulation.Band {
	switch t {
	case BandTableNationalSemiconductor:
		return nationalSemiconductorBands
	default:
		return idealBands
	}
}
