// Copyright 2025 The go-gemm Authors. SPDX-License-Identifier: Apache-2.0

package gemm

import "fmt"

// All failures surface synchronously at the point they occur and are fatal
// to the single in-progress call; the engine never retries and never
// returns a partial result. Misuse of the API (short slices, negative
// dimensions) is a programmer error and panics instead.

// ConfigurationError reports a Multiply call whose configuration cannot
// select a pipeline: an algorithm value outside the closed enum, or
// non-positive block sizes.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "gemm: configuration: " + e.Reason
}

func configErrorf(format string, args ...any) error {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}

// ResourceError reports a failed acquisition of aligned scratch or operand
// storage.
type ResourceError struct {
	Op  string
	Err error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("gemm: resource: %s: %v", e.Op, e.Err)
}

func (e *ResourceError) Unwrap() error { return e.Err }

// UnavailableBackendError reports a request for the external-library
// algorithm on a build that did not link the backend.
type UnavailableBackendError struct {
	Backend string
}

func (e *UnavailableBackendError) Error() string {
	return fmt.Sprintf("gemm: backend %q not linked into this build", e.Backend)
}
