package x25519

import (
	"errors"

	"github.com/hazec/hazec-go/pkg/hazec/internal/backend"
)

// Sizes of the fixed-width X25519 byte encodings.
const (
	// ScalarSize is the length of a private scalar.
	ScalarSize = 32
	// PointSize is the length of a public point (u-coordinate).
	PointSize = 32
	// SharedSize is the length of a computed shared secret.
	SharedSize = 32
)

// ErrInvalidInput indicates the backend rejected the computation, typically
// because the peer point is low-order and the shared secret degenerated to
// all zeros.
var ErrInvalidInput = errors.New("x25519: invalid input")

var be = backend.NewX25519()

// ECDH multiplies public by private and returns the 32-byte shared secret.
//
// No validation is performed before the backend call. The backend detects
// low-order points through the all-zero result check mandated by RFC 7748;
// such inputs fail with ErrInvalidInput and no partial result.
func ECDH(private *[ScalarSize]byte, public *[PointSize]byte) ([SharedSize]byte, error) {
	shared, ok := be.ScalarMult(private, public)
	if !ok {
		return [SharedSize]byte{}, ErrInvalidInput
	}
	return shared, nil
}

// SecretToPublic multiplies the curve base point by private and returns the
// 32-byte public point. The base point cannot produce a degenerate result
// for a clamped scalar, so there is no error path.
func SecretToPublic(private *[ScalarSize]byte) [PointSize]byte {
	return be.BasePointMult(private)
}
