//go:build amd64

package backend

import (
	"golang.org/x/crypto/curve25519"
	"golang.org/x/sys/cpu"
)

func init() {
	if cpu.X86.HasADX && cpu.X86.HasBMI2 {
		defaultX25519 = x25519Accel{}
		x25519PathName = "adx"
	}
}

// x25519Accel routes through the X25519 entry point, which carries the
// optimized field arithmetic on ADX+BMI2 hardware. Observable behavior is
// bit-identical to x25519Generic; only the selection differs.
type x25519Accel struct{}

func (x25519Accel) ScalarMult(scalar, point *[32]byte) ([32]byte, bool) {
	var shared [32]byte
	out, err := curve25519.X25519(scalar[:], point[:])
	if err != nil {
		return shared, false
	}
	copy(shared[:], out)
	return shared, true
}

func (x25519Accel) BasePointMult(scalar *[32]byte) [32]byte {
	var public [32]byte
	curve25519.ScalarBaseMult(&public, scalar)
	return public
}
