package network

import "errors"

// Common errors.
var (
	// ErrShapeMismatch reports a value vector whose length does not match the
	// layer it is addressed to. Mismatched vectors are never truncated or
	// padded; the call fails outright.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrInvalidTopology reports a construction request with a non-positive
	// layer size.
	ErrInvalidTopology = errors.New("invalid topology")
)
