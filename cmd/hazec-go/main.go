// Command hazec-go prints the library and backend versions and runs a quick
// self-check of both curve modules against fixed inputs.
package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/hazec/hazec-go/pkg/hazec"
	"github.com/hazec/hazec-go/pkg/hazec/logging"
	"github.com/hazec/hazec-go/pkg/hazec/p256"
	"github.com/hazec/hazec-go/pkg/hazec/x25519"
)

func main() {
	ctx := context.Background()
	logger := logging.New(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	logger.Info(ctx, "hazec-go",
		"version", hazec.WrapperVersion(),
		"backend", hazec.BackendVersion(),
	)

	if err := selfCheck(); err != nil {
		logger.Error(ctx, "self-check failed", "err", err)
		os.Exit(1)
	}
	logger.Info(ctx, "self-check passed")
}

// selfCheck exercises key derivation, key agreement, and signing with fixed
// scalars. It proves the selected backends are wired, not that they are
// correct; the test suite carries the real vectors.
func selfCheck() error {
	var a, b [32]byte
	for i := range a {
		a[i] = byte(i + 1)
		b[i] = byte(0x40 + i)
	}

	pubA := x25519.SecretToPublic(&a)
	pubB := x25519.SecretToPublic(&b)
	sharedA, err := x25519.ECDH(&a, &pubB)
	if err != nil {
		return fmt.Errorf("x25519 ecdh: %w", err)
	}
	sharedB, err := x25519.ECDH(&b, &pubA)
	if err != nil {
		return fmt.Errorf("x25519 ecdh: %w", err)
	}
	if !bytes.Equal(sharedA[:], sharedB[:]) {
		return errors.New("x25519 shared secrets differ")
	}

	qA, err := p256.SecretToPublic(&a)
	if err != nil {
		return fmt.Errorf("p256 secret to public: %w", err)
	}
	if err := p256.ValidatePoint(&qA); err != nil {
		return fmt.Errorf("p256 derived point invalid: %w", err)
	}
	qB, err := p256.SecretToPublic(&b)
	if err != nil {
		return fmt.Errorf("p256 secret to public: %w", err)
	}
	pSharedA, err := p256.ECDH(&a, &qB)
	if err != nil {
		return fmt.Errorf("p256 ecdh: %w", err)
	}
	pSharedB, err := p256.ECDH(&b, &qA)
	if err != nil {
		return fmt.Errorf("p256 ecdh: %w", err)
	}
	if !bytes.Equal(pSharedA[:], pSharedB[:]) {
		return errors.New("p256 shared points differ")
	}

	var nonce [p256.NonceSize]byte
	nonce[p256.NonceSize-1] = 0x7F
	if _, err := p256.SignSHA256([]byte("hazec self-check"), a[:], &nonce); err != nil {
		return fmt.Errorf("p256 sign: %w", err)
	}
	return nil
}
