package hazec

import "runtime"

// ZeroizeBytes overwrites the provided slice with zeros and prevents compiler
// dead store elimination using runtime.KeepAlive.
//
// This follows the pattern recommended in golang/go#33325 and used by
// security-focused libraries. It cannot guarantee complete memory
// sanitization given Go's garbage collector and copies made inside crypto
// libraries, but it represents current best practice in the Go ecosystem for
// sensitive memory.
func ZeroizeBytes(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
	// Prevent dead store elimination per golang/go#33325
	runtime.KeepAlive(buf)
}
