// Package flexbuf
// Author: momentics <momentics@gmail.com>
//
// Growable byte buffer for incremental text assembly.
// A Buf separates allocated capacity from populated size, grows by the
// shared 1.5x+amount policy, and finalizes into a caller-owned array
// with a NUL terminator. Single-threaded by design; see buf.go.
package flexbuf
