package timefmt

import "errors"

var (
	// ErrTemplateBufferExhausted indicates an expanded template or its
	// formatted result would exceed MaxTimeLen.
	ErrTemplateBufferExhausted = errors.New("time format too long")
	// ErrInvalidCalendarValue indicates a timestamp that cannot be broken
	// down into calendar fields.
	ErrInvalidCalendarValue = errors.New("invalid calendar value")
)
