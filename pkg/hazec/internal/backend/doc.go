// Package backend holds the trusted computational backends consumed by the
// public curve packages. The validation and marshaling layers above treat
// these capabilities as opaque: every buffer crossing into this package has
// already been bounds-checked by the caller.
package backend
