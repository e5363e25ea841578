package acf

import "errors"

// Error taxonomy per the core's error handling design: InputNotFound,
// TruncatedChunk, StreamOverrun, and a compressor-variant gate.
var (
	ErrInputNotFound         = errors.New("acf: input not found")
	ErrTruncatedChunk        = errors.New("acf: chunk header claims more bytes than remain")
	ErrStreamOverrun         = errors.New("acf: aligned or unaligned cursor left the frame payload")
	ErrBadPalette            = errors.New("acf: palette chunk has the wrong size")
	ErrUnsupportedCompressor = errors.New("acf: compressor variant is not supported by this decoder")
)
