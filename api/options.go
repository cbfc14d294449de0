// File: api/options.go
// Author: momentics <momentics@gmail.com>
//
// Per-container behavior switches, fixed at construction time.

package api

// Options selects optional container behaviors. The zero value is the
// strict contract: no resurrection after Free, Finalize leaves the
// buffer allocated.
type Options struct {
	// AutoAllocOnGrow lets a growth-triggering operation on a ZeroState
	// container allocate it implicitly instead of panicking.
	AutoAllocOnGrow bool

	// FreeOnFinalize makes Finalize release the buffer's storage after
	// copying, as a single combined operation.
	FreeOnFinalize bool
}
