// Package p256 provides validated marshaling for NIST P-256 Diffie-Hellman
// and ECDSA signing over a trusted arithmetic backend.
//
// Raw points are 64 bytes, the big-endian X coordinate concatenated with Y.
// Wire points carry a leading tag byte: 65 bytes uncompressed (0x04), 33
// bytes compressed (0x02/0x03). Scalars are 32-byte big-endian integers that
// must lie in [1, n-1] where n is the curve order.
//
// Every externally supplied buffer is format- and range-checked before it
// crosses into the backend. Failures are reported through the package's
// sentinel errors; no partial result is ever returned alongside an error.
//
// Callers computing a shared secret from an untrusted peer public key should
// call ValidatePoint first: ECDH itself trusts the backend's responder
// routine and performs no point validation of its own.
package p256
