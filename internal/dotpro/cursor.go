package dotpro

import (
	"errors"
	"io"
)

// cursor reads fixed-size blocks from a stream and tracks the byte offset so
// short reads can be reported against the layout field they interrupted.
type cursor struct {
	r   io.Reader
	off int64
}

func newCursor(r io.Reader) *cursor {
	return &cursor{r: r}
}

// read fills buf completely. A short read yields a *DecodeError wrapping
// ErrIncompleteData that names the field at the first missing byte.
func (c *cursor) read(buf []byte, layout []field) error {
	n, err := io.ReadFull(c.r, buf)
	start := c.off
	c.off += int64(n)
	if err == nil {
		return nil
	}
	if !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return &DecodeError{Field: fieldAt(layout, start+int64(n)).name, Offset: start + int64(n), Err: err}
	}
	f := fieldAt(layout, start+int64(n))
	return &DecodeError{Field: f.name, Offset: f.offset, Err: ErrIncompleteData}
}

// skip discards n bytes belonging to the named block.
func (c *cursor) skip(n int64, name string) error {
	start := c.off
	got, err := io.CopyN(io.Discard, c.r, n)
	c.off += got
	if err == nil {
		return nil
	}
	if errors.Is(err, io.EOF) {
		err = ErrIncompleteData
	}
	return &DecodeError{Field: name, Offset: start, Err: err}
}
