// Package internalcheck carries source-level policy tests for the hazec
// curve packages: byte material must be compared through crypto/subtle and
// must never be hex-formatted into messages.
//
// This package is part of the internal implementation and should not be
// imported by applications. The checks run as ordinary tests.
package internalcheck
