package hazec

import "github.com/hazec/hazec-go/pkg/hazec/internal/backend"

// Version is the semantic version populated at build time via ldflags. In
// development it defaults to v0.0.0-in-progress.
var Version = "v0.0.0-in-progress"

// WrapperVersion returns the library version.
func WrapperVersion() string {
	return Version
}

// BackendVersion identifies the arithmetic backends selected for this build,
// including the active X25519 scalar multiplication path.
func BackendVersion() string {
	return backend.Version()
}
