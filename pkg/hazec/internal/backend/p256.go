package backend

import (
	"crypto/elliptic"
	"crypto/sha256"
	"crypto/sha512"
	"math/big"
)

// NewP256 returns the NIST P-256 backend.
func NewP256() P256 {
	return nistP256{}
}

// nistP256 implements the P256 capability on the standard library curve
// with big.Int modular arithmetic for the signing equation.
type nistP256 struct{}

func p256() elliptic.Curve {
	return elliptic.P256()
}

func (nistP256) ParseUncompressed(in *[65]byte) ([64]byte, bool) {
	var raw [64]byte
	x, y := elliptic.Unmarshal(p256(), in[:]) //nolint:staticcheck // raw coordinate boundary, on-curve checked by Unmarshal
	if x == nil {
		return raw, false
	}
	x.FillBytes(raw[:32])
	y.FillBytes(raw[32:])
	return raw, true
}

func (nistP256) ParseCompressed(in *[33]byte) ([64]byte, bool) {
	var raw [64]byte
	x, y := elliptic.UnmarshalCompressed(p256(), in[:])
	if x == nil {
		return raw, false
	}
	x.FillBytes(raw[:32])
	y.FillBytes(raw[32:])
	return raw, true
}

func (nistP256) IsValidPoint(raw *[64]byte) bool {
	x, _ := validP256Point(raw)
	return x != nil
}

// validP256Point returns the decoded coordinates when raw names an affine
// point on the curve, nil otherwise. The point at infinity has no affine
// encoding, so the all-zero buffer is rejected.
func validP256Point(raw *[64]byte) (x, y *big.Int) {
	curve := p256()
	p := curve.Params().P
	x = new(big.Int).SetBytes(raw[:32])
	y = new(big.Int).SetBytes(raw[32:])
	if x.Cmp(p) >= 0 || y.Cmp(p) >= 0 {
		return nil, nil
	}
	if x.Sign() == 0 && y.Sign() == 0 {
		return nil, nil
	}
	if !curve.IsOnCurve(x, y) { //nolint:staticcheck // range checked above
		return nil, nil
	}
	return x, y
}

func (nistP256) IsValidScalar(scalar *[32]byte) bool {
	k := new(big.Int).SetBytes(scalar[:])
	return k.Sign() != 0 && k.Cmp(p256().Params().N) < 0
}

func (b nistP256) DHResponder(scalar *[32]byte, point *[64]byte) ([64]byte, bool) {
	var shared [64]byte
	if !b.IsValidScalar(scalar) {
		return shared, false
	}
	px, py := validP256Point(point)
	if px == nil {
		return shared, false
	}
	sx, sy := p256().ScalarMult(px, py, scalar[:]) //nolint:staticcheck // X||Y shared secret layout requires both coordinates
	if sx.Sign() == 0 && sy.Sign() == 0 {
		return shared, false
	}
	sx.FillBytes(shared[:32])
	sy.FillBytes(shared[32:])
	return shared, true
}

func (b nistP256) DHInitiator(scalar *[32]byte) ([64]byte, bool) {
	var public [64]byte
	if !b.IsValidScalar(scalar) {
		return public, false
	}
	x, y := p256().ScalarBaseMult(scalar[:]) //nolint:staticcheck // X||Y public key layout requires both coordinates
	x.FillBytes(public[:32])
	y.FillBytes(public[32:])
	return public, true
}

func (b nistP256) Sign(h Hash, msg []byte, scalar, nonce *[32]byte) ([64]byte, bool) {
	var sig [64]byte
	digest, ok := digestMessage(h, msg)
	if !ok {
		return sig, false
	}
	if !b.IsValidScalar(scalar) || !b.IsValidScalar(nonce) {
		return sig, false
	}

	curve := p256()
	n := curve.Params().N
	d := new(big.Int).SetBytes(scalar[:])
	k := new(big.Int).SetBytes(nonce[:])

	// z takes the leftmost 256 bits of the digest, as in hash-to-int.
	z := new(big.Int).SetBytes(digest[:32])

	rx, _ := curve.ScalarBaseMult(nonce[:]) //nolint:staticcheck // fixed-nonce signing has no stdlib entry point
	r := rx.Mod(rx, n)
	if r.Sign() == 0 {
		return sig, false
	}

	kInv := new(big.Int).ModInverse(k, n)
	if kInv == nil {
		return sig, false
	}

	s := new(big.Int).Mul(r, d)
	s.Add(s, z)
	s.Mul(s, kInv)
	s.Mod(s, n)
	if s.Sign() == 0 {
		return sig, false
	}

	r.FillBytes(sig[:32])
	s.FillBytes(sig[32:])
	return sig, true
}

// digestMessage hashes msg with the selected digest and returns at least 32
// bytes of output.
func digestMessage(h Hash, msg []byte) ([]byte, bool) {
	switch h {
	case SHA256:
		d := sha256.Sum256(msg)
		return d[:], true
	case SHA384:
		d := sha512.Sum384(msg)
		return d[:], true
	case SHA512:
		d := sha512.Sum512(msg)
		return d[:], true
	default:
		return nil, false
	}
}

// Version identifies the compiled-in backends.
func Version() string {
	return "curve25519:" + x25519PathName + " p256:stdlib"
}
