package p256

import (
	"github.com/hazec/hazec-go/pkg/hazec"
	"github.com/hazec/hazec-go/pkg/hazec/internal/backend"
)

const (
	// SignatureSize is the length of a raw ECDSA signature, r || s.
	SignatureSize = 64
	// NonceSize is the length of an ECDSA signing nonce.
	NonceSize = 32
)

// Hash selects the digest applied to the message before signing.
type Hash int

// Digest widths supported by the signing backend.
const (
	SHA256 Hash = iota
	SHA384
	SHA512
)

func (h Hash) backendHash() (backend.Hash, bool) {
	switch h {
	case SHA256:
		return backend.SHA256, true
	case SHA384:
		return backend.SHA384, true
	case SHA512:
		return backend.SHA512, true
	default:
		return 0, false
	}
}

// Sign produces a raw r || s ECDSA signature over msg with the selected
// digest. The nonce is validated before any key material is touched, then
// sk is normalized and validated through ValidateScalarSlice; either check
// failing yields ErrInvalidScalar with the nonce checked first. A
// backend-detected degenerate outcome after validation, or an unknown hash
// selector, yields ErrSigningFailed.
//
// Signing is deterministic for a fixed (msg, sk, nonce) tuple. Nonce
// generation is the caller's responsibility; reusing a nonce across
// distinct messages reveals the private key.
func Sign(h Hash, msg, sk []byte, nonce *[NonceSize]byte) ([SignatureSize]byte, error) {
	if err := ValidateScalar(nonce); err != nil {
		return [SignatureSize]byte{}, err
	}
	private, err := ValidateScalarSlice(sk)
	if err != nil {
		return [SignatureSize]byte{}, err
	}
	defer hazec.ZeroizeBytes(private[:])

	bh, ok := h.backendHash()
	if !ok {
		return [SignatureSize]byte{}, ErrSigningFailed
	}
	sig, ok := be.Sign(bh, msg, &private, nonce)
	if !ok {
		return [SignatureSize]byte{}, ErrSigningFailed
	}
	return sig, nil
}

// SignSHA256 signs msg with the message digested by SHA-256.
func SignSHA256(msg, sk []byte, nonce *[NonceSize]byte) ([SignatureSize]byte, error) {
	return Sign(SHA256, msg, sk, nonce)
}

// SignSHA384 signs msg with the message digested by SHA-384.
func SignSHA384(msg, sk []byte, nonce *[NonceSize]byte) ([SignatureSize]byte, error) {
	return Sign(SHA384, msg, sk, nonce)
}

// SignSHA512 signs msg with the message digested by SHA-512.
func SignSHA512(msg, sk []byte, nonce *[NonceSize]byte) ([SignatureSize]byte, error) {
	return Sign(SHA512, msg, sk, nonce)
}
