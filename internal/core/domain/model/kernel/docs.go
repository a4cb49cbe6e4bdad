// Package kernel contains value objects shared by every aggregate of the
// rental domain: caller-supplied entity identifiers and the injected clock.
//
// Types in this package are immutable and safe for concurrent use. Their zero
// values are invalid; construct them through the provided factory functions.
package kernel
