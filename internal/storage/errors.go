package storage

import "errors"

var (
	// ErrCorruptDocument is returned when the event document exists but
	// cannot be decoded. The original bytes are kept next to it.
	ErrCorruptDocument  = errors.New("corrupt event document")
	ErrUnsupportedImage = errors.New("unsupported image data")
	ErrInvalidFilename  = errors.New("invalid image filename")
)
