package qoir

import "errors"

// Sentinel errors returned by the public API. Match with errors.Is.
var (
	// ErrInvalidArgument is returned for nil or malformed call parameters.
	ErrInvalidArgument = errors.New("qoir: invalid argument")
	// ErrInvalidData is returned for a malformed or truncated header,
	// a bad magic identifier, or nonsensical dimensions.
	ErrInvalidData = errors.New("qoir: invalid data")
	// ErrOutOfMemory is returned when the decoded pixel buffer would
	// exceed the addressable size this implementation will allocate.
	ErrOutOfMemory = errors.New("qoir: out of memory")
	// ErrUnsupportedPixelFormat is returned for pixel formats outside the
	// supported set (e.g. premultiplied-alpha destinations).
	ErrUnsupportedPixelFormat = errors.New("qoir: unsupported pixfmt")
	// ErrUnsupportedPixelBuffer is returned when a source buffer's stride
	// is not width times bytes-per-pixel (rows must be tightly packed).
	ErrUnsupportedPixelBuffer = errors.New("qoir: unsupported pixbuf")
)
