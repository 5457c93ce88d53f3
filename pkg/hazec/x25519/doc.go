// Package x25519 provides Diffie-Hellman key agreement over Curve25519.
//
// The package is a thin validated boundary over a trusted scalar
// multiplication backend. X25519 multiplication is total over the full
// 32-byte input domain except for the degenerate all-zero-output case, so no
// input pre-validation is performed here; the backend's built-in check is the
// sole gate and surfaces as ErrInvalidInput.
//
// On amd64 hardware with ADX and BMI2, an accelerated scalar multiplication
// path with a bit-identical contract is selected at init. The selection is
// not observable through this API.
package x25519
