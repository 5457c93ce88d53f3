// Package logging provides a minimal logging facade for tooling built around
// the hazec curve packages.
//
// The Logger interface wraps a subset of log/slog so applications can swap in
// custom implementations for testing or redaction. The curve packages
// themselves never log; this facade exists for the command-line tool and
// example programs.
//
// Never log private scalars, nonces, or shared secrets. Use Redacted to mark
// attributes whose values were intentionally removed:
//
//	logger := logging.New(nil)
//	logger.Info(ctx, "derived public key", logging.Redacted("private"), "curve", "P-256")
package logging
