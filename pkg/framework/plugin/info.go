package plugin

import (
	"fmt"
	"hash/fnv"
)

// Info contains plugin metadata
type Info struct {
	ID       string // Unique plugin identifier (e.g., "com.example.myplugin")
	Name     string // Display name
	Version  string // Semantic version (e.g., "1.0.0")
	Vendor   string // Company/developer name
	Category string // Plugin category (e.g., "Fx", "Instrument")
}

// UID derives a deterministic 16-byte class identifier from the plugin ID.
// Two Info values with the same ID always produce the same UID; different
// IDs collide only in the FNV-128 hash's negligible collision space.
func (i Info) UID() [16]byte {
	h := fnv.New128a()
	_, _ = h.Write([]byte(i.ID))
	var uid [16]byte
	copy(uid[:], h.Sum(nil))
	return uid
}

// ValidateUID reports whether Info carries enough identity to derive a UID.
func (i Info) ValidateUID() error {
	if i.ID == "" {
		return fmt.Errorf("plugin: Info.ID must not be empty")
	}
	return nil
}
