// Package memzero wipes secret scalars and hash buffers once they are no
// longer needed.
package memzero

import "runtime"

// Zero overwrites b with zeros.
//
//go:noinline
func Zero(b []byte) {
	clear(b)
	runtime.KeepAlive(b)
}

// Key wipes a 32-byte key in place.
func Key(k *[32]byte) {
	Zero(k[:])
}
