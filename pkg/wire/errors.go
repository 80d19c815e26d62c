package wire

import "fmt"

// BinaryDataSizeMismatch indicates a length-prefixed payload's declared
// length could not be fully read from the reader: a short read on a
// stream that claimed to carry more bytes than it delivered.
type BinaryDataSizeMismatch struct {
	Expected uint64
	Read     int
}

func (e *BinaryDataSizeMismatch) Error() string {
	return fmt.Sprintf("wire: binary data size mismatch: expected %d bytes, read %d", e.Expected, e.Read)
}
