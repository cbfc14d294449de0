// Package flexslice
// Author: momentics <momentics@gmail.com>
//
// Growable array of element references. A Slice[T] owns its slot
// storage only, never the referenced values: Free releases slots and
// leaves every pointee alone. Reads outside the populated range return
// the zero value of T as the absent sentinel, never an error.
// Single-threaded by design; see slice.go.
package flexslice
