package buffer

import "errors"

var (
	// ErrIndexOutOfRange reports a line index outside the document.
	ErrIndexOutOfRange = errors.New("line index out of range")

	// ErrInvalidOperation reports a mutation that would break a document
	// invariant: removing the only line, or storing a newline inside a line.
	ErrInvalidOperation = errors.New("invalid operation")
)

// ErrInvalidUTF8 reports file content that is not valid UTF-8 and so could
// not be written back byte for byte.
var ErrInvalidUTF8 = errors.New("content is not valid UTF-8")
