package param

import (
	"fmt"
	"math"
	"strconv"
	"sync/atomic"
)

// Parameter represents a plugin parameter with a dual-value handoff: the
// control thread (host automation, UI) writes a pending normalized value
// lock-free; the render thread picks it up at a block boundary and ramps
// its plain value linearly toward the new target over a fixed number of
// frames, rather than jumping and causing zipper noise.
type Parameter struct {
	ID           uint32
	Name         string
	ShortName    string
	Unit         string
	Min          float64
	Max          float64
	DefaultValue float64
	StepCount    int32
	Flags        uint32
	UnitID       int32

	// Control-thread write, render-thread read. pending holds bits of a
	// normalized (0-1) value; dirty is 1 when pending hasn't been picked
	// up yet.
	pending uint64
	dirty   uint32

	// Render-thread owned exclusively; never touched by the control
	// thread.
	current       float64
	rampTarget    float64
	rampStep      float64
	rampRemaining int

	formatFunc func(float64) string
	parseFunc  func(string) (float64, error)
}

// Flags for parameters
const (
	CanAutomate     uint32 = 1 << 0
	IsReadOnly      uint32 = 1 << 1
	IsWrapAround    uint32 = 1 << 2
	IsList          uint32 = 1 << 3
	IsHidden        uint32 = 1 << 4
	IsProgramChange uint32 = 1 << 15
	IsBypass        uint32 = 1 << 16
)

// initialize sets both the pending and current value to a normalized
// default with no ramp in progress, bypassing the dirty handoff. Used by
// Builder.Build before the render thread has ever pulled this parameter.
func (p *Parameter) initialize(normalized float64) {
	normalized = clamp01(normalized)
	atomic.StoreUint64(&p.pending, math.Float64bits(normalized))
	atomic.StoreUint32(&p.dirty, 0)
	p.current = p.Denormalize(normalized)
	p.rampTarget = p.current
	p.rampStep = 0
	p.rampRemaining = 0
}

// SetValue is the control-thread entry point: it stores a new normalized
// target and marks it dirty. It never blocks and never touches
// render-thread state directly.
func (p *Parameter) SetValue(value float64) {
	value = clamp01(value)
	atomic.StoreUint64(&p.pending, math.Float64bits(value))
	atomic.StoreUint32(&p.dirty, 1)
}

// GetValue returns the last normalized value observed, approximating the
// render thread's current position for host UI purposes. It is safe to
// call from any thread but is not itself the render-thread's authority.
func (p *Parameter) GetValue() float64 {
	return p.Normalize(p.current)
}

// GetPlainValue returns the render thread's current plain value.
func (p *Parameter) GetPlainValue() float64 {
	return p.current
}

// SetPlainValue is equivalent to SetValue but takes a plain-range value.
func (p *Parameter) SetPlainValue(plain float64) {
	p.SetValue(p.Normalize(plain))
}

// ApplyPending is called once per render block, before any frame is
// rendered. If the control thread deposited a new value since the last
// call, it starts a linear ramp toward that value over rampFrames frames
// (0 applies it immediately). It returns whether a new target was picked
// up.
func (p *Parameter) ApplyPending(rampFrames int) bool {
	if !atomic.CompareAndSwapUint32(&p.dirty, 1, 0) {
		return false
	}
	bits := atomic.LoadUint64(&p.pending)
	normalized := math.Float64frombits(bits)
	p.SetTarget(p.Denormalize(normalized), rampFrames)
	return true
}

// SetTarget starts a linear ramp toward a plain-range target over the
// given number of frames (0 applies immediately). Render-thread only;
// EventProcessor calls this directly for sample-accurate Parameter and
// ParameterRamp events instead of going through the pending/dirty path.
func (p *Parameter) SetTarget(target float64, rampFrames int) {
	if rampFrames <= 0 {
		p.current = target
		p.rampTarget = target
		p.rampStep = 0
		p.rampRemaining = 0
		return
	}
	p.rampTarget = target
	p.rampStep = (target - p.current) / float64(rampFrames)
	p.rampRemaining = rampFrames
}

// FrameValue advances the ramp by one frame and returns the resulting
// plain value. Call exactly once per rendered frame.
func (p *Parameter) FrameValue() float64 {
	if p.rampRemaining > 0 {
		p.current += p.rampStep
		p.rampRemaining--
		if p.rampRemaining == 0 {
			p.current = p.rampTarget
		}
	}
	return p.current
}

// IsRamping reports whether a ramp is currently in progress.
func (p *Parameter) IsRamping() bool {
	return p.rampRemaining > 0
}

// StopRamp halts any in-flight ramp at the current value.
func (p *Parameter) StopRamp() {
	p.rampRemaining = 0
	p.rampStep = 0
	p.rampTarget = p.current
}

// SetFormatter sets custom value formatting
func (p *Parameter) SetFormatter(format func(float64) string, parse func(string) (float64, error)) {
	p.formatFunc = format
	p.parseFunc = parse
}

// FormatValue returns formatted parameter value
func (p *Parameter) FormatValue(normalized float64) string {
	plain := p.Denormalize(normalized)

	if p.formatFunc != nil {
		return p.formatFunc(plain)
	}

	if p.StepCount > 0 {
		return fmt.Sprintf("%.0f", plain)
	}
	return fmt.Sprintf("%.2f", plain)
}

// ParseValue parses string to normalized value
func (p *Parameter) ParseValue(str string) (float64, error) {
	if p.parseFunc != nil {
		plain, err := p.parseFunc(str)
		if err != nil {
			return 0, err
		}
		return p.Normalize(plain), nil
	}
	plain, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, err
	}
	return p.Normalize(plain), nil
}

// Normalize converts plain value to normalized (0-1)
func (p *Parameter) Normalize(plain float64) float64 {
	if p.Max <= p.Min {
		return 0
	}
	return clamp01((plain - p.Min) / (p.Max - p.Min))
}

// Denormalize converts normalized (0-1) to plain value
func (p *Parameter) Denormalize(normalized float64) float64 {
	return p.Min + normalized*(p.Max-p.Min)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
