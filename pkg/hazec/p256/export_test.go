package p256

import "github.com/hazec/hazec-go/pkg/hazec/internal/backend"

// SetBackend installs a replacement backend for tests and returns a restore
// function.
func SetBackend(b backend.P256) (restore func()) {
	prev := be
	be = b
	return func() { be = prev }
}
