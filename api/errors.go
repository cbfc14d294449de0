// File: api/errors.go
// Author: momentics <momentics@gmail.com>
//
// Common error values for the flexgrow library. The containers report
// precondition violations by panicking with one of these sentinels;
// bounds issues are never errors (sentinel reads, silent extension).

package api

import "fmt"

var (
	// ErrUseAfterFree is the panic value for a growth operation invoked
	// on a ZeroState container without AutoAllocOnGrow.
	ErrUseAfterFree = fmt.Errorf("flexgrow: container used after free")

	// ErrNegativeCount is the panic value for a negative amount, index,
	// or capacity, including growth arithmetic that wrapped around.
	ErrNegativeCount = fmt.Errorf("flexgrow: negative count")

	// ErrShortDestination is the panic value for a Finalize destination
	// smaller than size+1.
	ErrShortDestination = fmt.Errorf("flexgrow: destination too small for content and terminator")
)
