package backend

// Hash selects which digest an ECDSA signing routine applies to the message
// before reduction modulo the curve order.
type Hash int

// Supported digest widths for P-256 ECDSA signing.
const (
	SHA256 Hash = iota
	SHA384
	SHA512
)

// X25519 is the capability surface required from a Curve25519 backend.
//
// ScalarMult multiplies point by scalar and reports success. The backend
// detects low-order inputs producing an all-zero shared secret and reports
// them as failure; the caller performs no pre-validation.
//
// BasePointMult multiplies the canonical base point by scalar. It is total
// over the 32-byte input domain and has no failure mode.
type X25519 interface {
	ScalarMult(scalar, point *[32]byte) (shared [32]byte, ok bool)
	BasePointMult(scalar *[32]byte) (public [32]byte)
}

// P256 is the capability surface required from a NIST P-256 backend.
//
// Raw points are 64 bytes, the big-endian X coordinate followed by Y. Wire
// points carry a leading tag byte (0x04 uncompressed, 0x02/0x03 compressed).
// Scalars are 32-byte big-endian integers.
type P256 interface {
	// ParseUncompressed decodes a tagged uncompressed point into raw
	// coordinates, rejecting encodings that do not name a curve point.
	ParseUncompressed(in *[65]byte) (raw [64]byte, ok bool)

	// ParseCompressed recovers Y from the X coordinate and parity tag.
	ParseCompressed(in *[33]byte) (raw [64]byte, ok bool)

	// IsValidPoint reports whether raw lies on the curve with in-range
	// coordinates and is not the point at infinity.
	IsValidPoint(raw *[64]byte) bool

	// IsValidScalar reports whether scalar is in [1, n-1].
	IsValidScalar(scalar *[32]byte) bool

	// DHResponder computes scalar * point, rejecting degenerate inputs.
	DHResponder(scalar *[32]byte, point *[64]byte) (shared [64]byte, ok bool)

	// DHInitiator computes scalar * G.
	DHInitiator(scalar *[32]byte) (public [64]byte, ok bool)

	// Sign produces a raw r||s ECDSA signature over msg using the
	// caller-supplied nonce. The message is digested with the selected
	// hash before reduction. Degenerate outcomes (zero r or s, unknown
	// hash selector) are reported as failure.
	Sign(h Hash, msg []byte, scalar, nonce *[32]byte) (sig [64]byte, ok bool)
}
