package backend

import (
	"crypto/subtle"

	"golang.org/x/crypto/curve25519"
)

// defaultX25519 is the backend handed to the public x25519 package. The
// baseline is the generic ladder; qualifying hardware swaps in an
// accelerated implementation at init with an identical contract.
var defaultX25519 X25519 = x25519Generic{}

// x25519PathName identifies the selected scalar multiplication path for
// version reporting.
var x25519PathName = "generic"

// NewX25519 returns the selected Curve25519 backend.
func NewX25519() X25519 {
	return defaultX25519
}

// X25519Path returns the name of the selected scalar multiplication path.
func X25519Path() string {
	return x25519PathName
}

var x25519Zero [32]byte

// x25519Generic runs the portable Montgomery ladder and gates the
// degenerate all-zero output locally.
type x25519Generic struct{}

func (x25519Generic) ScalarMult(scalar, point *[32]byte) ([32]byte, bool) {
	var shared [32]byte
	curve25519.ScalarMult(&shared, scalar, point) //nolint:staticcheck // zero output is gated below, matching the X25519 contract
	if subtle.ConstantTimeCompare(shared[:], x25519Zero[:]) == 1 {
		return [32]byte{}, false
	}
	return shared, true
}

func (x25519Generic) BasePointMult(scalar *[32]byte) [32]byte {
	var public [32]byte
	curve25519.ScalarBaseMult(&public, scalar)
	return public
}
