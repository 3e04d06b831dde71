package display

import "errors"

var (
	// ErrPathTooLong indicates a path or its quoted form exceeds MaxPathLen.
	ErrPathTooLong = errors.New("path too long")
	// ErrInvalidUTF8 indicates a path is not a complete, well-formed UTF-8 string.
	ErrInvalidUTF8 = errors.New("invalid UTF-8")
	// ErrConverterClosed indicates Decode was called after Close.
	ErrConverterClosed = errors.New("converter closed")
)
