// File: api/step.go
// Author: momentics <momentics@gmail.com>
//
// Continuation signal returned by traversal callbacks.

package api

// Step tells a traversal whether to keep going.
type Step int

const (
	Continue Step = iota
	Stop
)

func (s Step) String() string {
	switch s {
	case Continue:
		return "continue"
	case Stop:
		return "stop"
	default:
		return "unknown"
	}
}
