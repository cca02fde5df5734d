package serialization

import "errors"

// Common errors.
var (
	ErrInvalidMagic       = errors.New("invalid magic token")
	ErrUnsupportedVersion = errors.New("unsupported format version")
	ErrCorruptRecord      = errors.New("corrupt record")
)
