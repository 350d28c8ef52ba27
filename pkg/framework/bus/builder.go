// Package bus provides audio bus configuration for a processor: how many
// input and output channels it declares, and under what name.
package bus

import "fmt"

// Builder provides a fluent API for building bus configurations.
type Builder struct {
	config *Configuration
}

// NewBuilder creates a new bus configuration builder.
func NewBuilder() *Builder {
	return &Builder{
		config: &Configuration{buses: []Info{}},
	}
}

// WithAudioInput adds an audio input bus.
func (b *Builder) WithAudioInput(name string, channels int32) *Builder {
	b.config.buses = append(b.config.buses, Info{
		Direction:    DirectionInput,
		ChannelCount: channels,
		Name:         name,
	})
	return b
}

// WithAudioOutput adds an audio output bus.
func (b *Builder) WithAudioOutput(name string, channels int32) *Builder {
	b.config.buses = append(b.config.buses, Info{
		Direction:    DirectionOutput,
		ChannelCount: channels,
		Name:         name,
	})
	return b
}

// WithStereoInput is a convenience method for adding a stereo input.
func (b *Builder) WithStereoInput(name string) *Builder {
	return b.WithAudioInput(name, 2)
}

// WithStereoOutput is a convenience method for adding a stereo output.
func (b *Builder) WithStereoOutput(name string) *Builder {
	return b.WithAudioOutput(name, 2)
}

// WithMonoInput is a convenience method for adding a mono input.
func (b *Builder) WithMonoInput(name string) *Builder {
	return b.WithAudioInput(name, 1)
}

// WithMonoOutput is a convenience method for adding a mono output.
func (b *Builder) WithMonoOutput(name string) *Builder {
	return b.WithAudioOutput(name, 1)
}

// Validate checks that the configuration is usable: at least one output
// bus, and every bus has a positive, sane channel count.
func (b *Builder) Validate() error {
	hasOutput := false
	for _, bus := range b.config.buses {
		if bus.Direction == DirectionOutput {
			hasOutput = true
		}
		if bus.ChannelCount <= 0 {
			return fmt.Errorf("invalid channel count %d for bus %s", bus.ChannelCount, bus.Name)
		}
		if bus.ChannelCount > 32 {
			return fmt.Errorf("channel count %d exceeds maximum of 32 for bus %s", bus.ChannelCount, bus.Name)
		}
	}

	if !hasOutput {
		return fmt.Errorf("configuration must have at least one output bus")
	}

	return nil
}

// Build returns the built configuration or an error.
func (b *Builder) Build() (*Configuration, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b.config, nil
}

// MustBuild returns the built configuration or panics on error.
func (b *Builder) MustBuild() *Configuration {
	config, err := b.Build()
	if err != nil {
		panic(err)
	}
	return config
}
