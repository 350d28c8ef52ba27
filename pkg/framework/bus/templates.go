// Package bus provides audio bus configuration for a processor: how many
// input and output channels it declares, and under what name.
package bus

// Common bus configuration templates for different processor shapes.

// NewEffectStereo creates a standard stereo effect configuration (1 stereo
// in, 1 stereo out).
func NewEffectStereo() *Configuration {
	return NewBuilder().
		WithStereoInput("Stereo In").
		WithStereoOutput("Stereo Out").
		MustBuild()
}

// NewEffectMono creates a mono effect configuration (1 mono in, 1 mono out).
func NewEffectMono() *Configuration {
	return NewBuilder().
		WithMonoInput("Mono In").
		WithMonoOutput("Mono Out").
		MustBuild()
}
