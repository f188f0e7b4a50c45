package compose

import "github.com/pkg/errors"

const BufferCap = 64

var ErrOverflow = errors.New("composition buffer overflow")

// Fixed capacity composition buffer. Meant to live on the stack of a single translation;
// contents are undefined after a lookup fails.
type Buffer struct {
	b [BufferCap]byte
	n int
}

func (buf *Buffer) Len() int {
	return buf.n
}
func (buf *Buffer) Cap() int {
	return len(buf.b)
}
func (buf *Buffer) Bytes() []byte {
	return buf.b[:buf.n]
}
func (buf *Buffer) Reset() {
	buf.n = 0
}

// Replaces the contents. Fails without changes if p does not fit.
func (buf *Buffer) SetBytes(p []byte) error {
	if len(p) > len(buf.b) {
		return ErrOverflow
	}
	buf.n = copy(buf.b[:], p)
	return nil
}

// Inserts c at the start, shifting the contents right.
func (buf *Buffer) Prefix(c byte) error {
	if buf.n+1 > len(buf.b) {
		return ErrOverflow
	}
	copy(buf.b[1:buf.n+1], buf.b[:buf.n])
	buf.b[0] = c
	buf.n++
	return nil
}

// Whole backing array, for lookups that write directly into it.
func (buf *Buffer) space() []byte {
	return buf.b[:]
}

func (buf *Buffer) setLen(n int) {
	if n < 0 || n > len(buf.b) {
		panic(errors.Errorf("bad composition length: %v", n))
	}
	buf.n = n
}
