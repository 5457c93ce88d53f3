package p256

import (
	"crypto/subtle"
	"errors"

	"github.com/hazec/hazec-go/pkg/hazec/internal/backend"
)

// Sizes of the fixed-width P-256 byte encodings.
const (
	// ScalarSize is the length of a private scalar or nonce.
	ScalarSize = 32
	// PointSize is the length of a raw point, X || Y.
	PointSize = 64
	// CompressedSize is the length of a compressed wire point.
	CompressedSize = 33
	// UncompressedSize is the length of an uncompressed wire point.
	UncompressedSize = 65
	// SharedSize is the length of a computed shared point, X || Y.
	SharedSize = 64
)

// Error kinds reported by this package. ErrNoCompressedPoint and
// ErrNoUncompressedPoint keep their historical identities: the first guards
// the length precondition of the uncompressed decoder, the second that of
// the compressed decoder.
var (
	// ErrInvalidInput indicates a malformed or backend-rejected buffer.
	ErrInvalidInput = errors.New("p256: invalid input")
	// ErrInvalidScalar indicates a scalar that is zero or outside [1, n-1].
	ErrInvalidScalar = errors.New("p256: invalid scalar")
	// ErrInvalidPoint indicates a point failing on-curve validation.
	ErrInvalidPoint = errors.New("p256: invalid point")
	// ErrNoCompressedPoint indicates an input too short to hold an
	// uncompressed wire point.
	ErrNoCompressedPoint = errors.New("p256: input shorter than an uncompressed point")
	// ErrNoUncompressedPoint indicates an input too short to hold a
	// compressed wire point.
	ErrNoUncompressedPoint = errors.New("p256: input shorter than a compressed point")
	// ErrSigningFailed indicates a backend-detected degenerate signing
	// outcome after all inputs passed validation.
	ErrSigningFailed = errors.New("p256: signing failed")
)

var be = backend.NewP256()

var zeroScalar [ScalarSize]byte

// UncompressedToCoordinates decodes an uncompressed wire point into the raw
// X || Y coordinate pair. Only the first 65 bytes of point are read; shorter
// inputs fail with ErrNoCompressedPoint before any parsing, and encodings
// that do not name a curve point fail with ErrInvalidInput.
func UncompressedToCoordinates(point []byte) ([PointSize]byte, error) {
	if len(point) < UncompressedSize {
		return [PointSize]byte{}, ErrNoCompressedPoint
	}
	var in [UncompressedSize]byte
	copy(in[:], point[:UncompressedSize])
	raw, ok := be.ParseUncompressed(&in)
	if !ok {
		return [PointSize]byte{}, ErrInvalidInput
	}
	return raw, nil
}

// CompressedToCoordinates decodes a compressed wire point, recovering Y from
// the X coordinate and the parity tag. Only the first 33 bytes of point are
// read; shorter inputs fail with ErrNoUncompressedPoint, and invalid tags or
// non-residue X coordinates fail with ErrInvalidInput.
func CompressedToCoordinates(point []byte) ([PointSize]byte, error) {
	if len(point) < CompressedSize {
		return [PointSize]byte{}, ErrNoUncompressedPoint
	}
	var in [CompressedSize]byte
	copy(in[:], point[:CompressedSize])
	raw, ok := be.ParseCompressed(&in)
	if !ok {
		return [PointSize]byte{}, ErrInvalidInput
	}
	return raw, nil
}

// CoordinatesToUncompressed encodes a raw point in the uncompressed wire
// form, 0x04 followed by X || Y.
func CoordinatesToUncompressed(point *[PointSize]byte) [UncompressedSize]byte {
	var out [UncompressedSize]byte
	out[0] = 0x04
	copy(out[1:], point[:])
	return out
}

// CoordinatesToCompressed encodes a raw point in the compressed wire form,
// a parity tag derived from Y's low bit followed by X.
func CoordinatesToCompressed(point *[PointSize]byte) [CompressedSize]byte {
	var out [CompressedSize]byte
	out[0] = 0x02 | (point[PointSize-1] & 1)
	copy(out[1:], point[:ScalarSize])
	return out
}

// ValidatePoint checks that point lies on the curve with in-range
// coordinates. P-256 has cofactor 1, so the subgroup check reduces to the
// on-curve check. Call this before using an externally supplied point in a
// Diffie-Hellman computation that does not itself re-validate.
func ValidatePoint(point *[PointSize]byte) error {
	if !be.IsValidPoint(point) {
		return ErrInvalidPoint
	}
	return nil
}

// ValidateScalar checks that scalar is a big-endian integer in [1, n-1].
// The all-zero buffer is rejected locally before consulting the backend's
// range check; both failures surface as the same ErrInvalidScalar so callers
// cannot distinguish which branch rejected the value.
func ValidateScalar(scalar *[ScalarSize]byte) error {
	if subtle.ConstantTimeCompare(scalar[:], zeroScalar[:]) == 1 {
		return ErrInvalidScalar
	}
	if !be.IsValidScalar(scalar) {
		return ErrInvalidScalar
	}
	return nil
}

// ValidateScalarSlice normalizes a variable-length big-endian scalar into a
// 32-byte buffer and validates it. The last 32 bytes of scalar are
// right-aligned into the output with leading zero fill; input longer than 32
// bytes has its most-significant excess silently dropped rather than
// rejected. Empty input fails with ErrInvalidScalar.
func ValidateScalarSlice(scalar []byte) ([ScalarSize]byte, error) {
	var private [ScalarSize]byte
	if len(scalar) == 0 {
		return private, ErrInvalidScalar
	}
	if n := len(scalar); n >= ScalarSize {
		copy(private[:], scalar[n-ScalarSize:])
	} else {
		copy(private[ScalarSize-n:], scalar)
	}
	if err := ValidateScalar(&private); err != nil {
		return [ScalarSize]byte{}, err
	}
	return private, nil
}

// ECDH multiplies public by private and returns the 64-byte shared point
// X || Y. The function performs no pre-validation of its own and trusts the
// backend responder to reject degenerate inputs with ErrInvalidInput; see
// the package comment on validating untrusted peer points first.
func ECDH(private *[ScalarSize]byte, public *[PointSize]byte) ([SharedSize]byte, error) {
	shared, ok := be.DHResponder(private, public)
	if !ok {
		return [SharedSize]byte{}, ErrInvalidInput
	}
	return shared, nil
}

// SecretToPublic multiplies the curve base point by scalar and returns the
// 64-byte public point. The scalar is validated first; a backend failure
// after successful validation is reported as ErrInvalidScalar, a surface
// kept distinct from ErrInvalidInput even though pre-validation makes it
// unreachable in practice.
func SecretToPublic(scalar *[ScalarSize]byte) ([PointSize]byte, error) {
	if err := ValidateScalar(scalar); err != nil {
		return [PointSize]byte{}, err
	}
	public, ok := be.DHInitiator(scalar)
	if !ok {
		return [PointSize]byte{}, ErrInvalidScalar
	}
	return public, nil
}
