package process

import (
	"github.com/vst3go/phasercore/pkg/midi"
)

// inputEvents and outputEvents buffer generic MIDI traffic a host binding
// hands to or collects from a block. The phaser engine itself does not
// consume MIDI, but a host layer sitting above Context still needs a
// place to stage note/CC/pitch-bend events alongside audio for plug-ins
// that do respond to them.
func (c *Context) ensureEventBuffers() {
	if c.inputEvents == nil {
		c.inputEvents = midi.NewEventQueue()
	}
	if c.outputEvents == nil {
		c.outputEvents = midi.NewEventQueue()
	}
}

// AddInputEvent stages an incoming MIDI event for this block.
func (c *Context) AddInputEvent(event midi.Event) {
	c.ensureEventBuffers()
	c.inputEvents.Add(event)
}

// AddOutputEvent stages an outgoing MIDI event produced during this block.
func (c *Context) AddOutputEvent(event midi.Event) {
	c.ensureEventBuffers()
	c.outputEvents.Add(event)
}

// GetAllInputEvents returns every staged input event for this block.
func (c *Context) GetAllInputEvents() []midi.Event {
	c.ensureEventBuffers()
	return c.inputEvents.GetAllEvents()
}

// GetInputEvents returns staged input events with a sample offset in
// [start, end).
func (c *Context) GetInputEvents(start, end int) []midi.Event {
	c.ensureEventBuffers()
	return c.inputEvents.GetEventsInRange(int32(start), int32(end))
}

// HasInputEvents reports whether any input event is staged for this block.
func (c *Context) HasInputEvents() bool {
	c.ensureEventBuffers()
	return !c.inputEvents.IsEmpty()
}

// ClearInputEvents discards all staged input events.
func (c *Context) ClearInputEvents() {
	c.ensureEventBuffers()
	c.inputEvents.Clear()
}

// GetOutputEvents returns every staged output event for this block.
func (c *Context) GetOutputEvents() []midi.Event {
	c.ensureEventBuffers()
	return c.outputEvents.GetAllEvents()
}

// ClearOutputEvents discards all staged output events.
func (c *Context) ClearOutputEvents() {
	c.ensureEventBuffers()
	c.outputEvents.Clear()
}

// ClearAllEvents discards both input and output events.
func (c *Context) ClearAllEvents() {
	c.ClearInputEvents()
	c.ClearOutputEvents()
}

// ProcessEvents dispatches staged input events with a sample offset in
// [start, end) to processor, in sample order.
func (c *Context) ProcessEvents(processor midi.EventProcessor, start, end int) {
	c.ensureEventBuffers()
	c.inputEvents.ProcessEvents(processor, int32(start), int32(end))
}
