package packet

import "io"

// FrameReader reads fields out of one packet payload held in memory.
// Reads past the end fail with io.ErrUnexpectedEOF and leave the offset
// untouched.
type FrameReader struct {
	buf []byte
	off int
}

func NewFrameReader(buf []byte) FrameReader {
	return FrameReader{
		buf: buf,
		off: 0,
	}
}

func (r FrameReader) Remaining() int {
	return len(r.buf) - r.off
}

// Offset reports how many bytes have been consumed so far.
func (r FrameReader) Offset() int {
	return r.off
}

func (r *FrameReader) ReadByte() (byte, error) {
	if r.off >= len(r.buf) {
		return 0, io.ErrUnexpectedEOF
	}
	b := r.buf[r.off]
	r.off++
	return b, nil
}

// PeekByte returns the next byte without consuming it.
func (r *FrameReader) PeekByte() (byte, error) {
	if r.off >= len(r.buf) {
		return 0, io.ErrUnexpectedEOF
	}
	return r.buf[r.off], nil
}

// Read returns the next n bytes. The slice aliases the payload buffer.
func (r *FrameReader) Read(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrNegativeLength
	}
	if r.off+n > len(r.buf) {
		return nil, io.ErrUnexpectedEOF
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b, nil
}

// Rest consumes and returns every remaining byte.
func (r *FrameReader) Rest() []byte {
	b := r.buf[r.off:]
	r.off = len(r.buf)
	return b
}
