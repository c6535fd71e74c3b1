package mpdu

import "encoding/binary"

// Cursor is a position-tracking reader over a borrowed byte slice. Every
// read advances the offset; reads past the end of the slice fail with a
// ShortRead DecodeError carrying the attempted field size and the number of
// bytes actually remaining. Multi-byte reads are little-endian, matching
// the wire layout fixed by spec.md regardless of host byte order.
type Cursor struct {
	b   []byte
	pos int
}

// NewCursor wraps b for sequential reading starting at offset 0.
func NewCursor(b []byte) *Cursor {
	return &Cursor{b: b}
}

// Position returns the current read offset.
func (c *Cursor) Position() int {
	return c.pos
}

// Len returns the number of bytes remaining to be read.
func (c *Cursor) Len() int {
	return len(c.b) - c.pos
}

func (c *Cursor) need(field string, n int) error {
	if c.Len() < n {
		return errShortRead(field, n, c.Len())
	}
	return nil
}

// ReadU8 reads one byte.
func (c *Cursor) ReadU8(field string) (byte, error) {
	if err := c.need(field, 1); err != nil {
		return 0, err
	}
	v := c.b[c.pos]
	c.pos++
	return v, nil
}

// ReadU16LE reads a little-endian uint16.
func (c *Cursor) ReadU16LE(field string) (uint16, error) {
	if err := c.need(field, 2); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint16(c.b[c.pos:])
	c.pos += 2
	return v, nil
}

// ReadU32LE reads a little-endian uint32.
func (c *Cursor) ReadU32LE(field string) (uint32, error) {
	if err := c.need(field, 4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(c.b[c.pos:])
	c.pos += 4
	return v, nil
}

// ReadU64LE reads a little-endian uint64.
func (c *Cursor) ReadU64LE(field string) (uint64, error) {
	if err := c.need(field, 8); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint64(c.b[c.pos:])
	c.pos += 8
	return v, nil
}

// ReadBytes reads and returns a copy of the next n bytes.
func (c *Cursor) ReadBytes(field string, n int) ([]byte, error) {
	if err := c.need(field, n); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, c.b[c.pos:c.pos+n])
	c.pos += n
	return out, nil
}

// Peek returns a copy of the next n bytes without advancing the cursor. It
// fails with ShortRead if fewer than n bytes remain.
func (c *Cursor) Peek(field string, n int) ([]byte, error) {
	if err := c.need(field, n); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, c.b[c.pos:c.pos+n])
	return out, nil
}

// TakeRemaining reads and returns a copy of every byte left in the cursor,
// advancing to the end.
func (c *Cursor) TakeRemaining() []byte {
	out := make([]byte, c.Len())
	copy(out, c.b[c.pos:])
	c.pos = len(c.b)
	return out
}
