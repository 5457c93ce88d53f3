// Package hazec is the root of a validated marshaling boundary for
// elliptic-curve primitives. The curve packages underneath accept externally
// supplied byte buffers, verify that they encode mathematically valid
// scalars and points, and only then hand them to a trusted arithmetic
// backend:
//
//   - x25519: Diffie-Hellman key agreement over Curve25519
//   - p256: Diffie-Hellman and ECDSA signing over NIST P-256
//
// This package itself carries only the shared plumbing: version reporting
// and secure zeroization helpers.
package hazec
