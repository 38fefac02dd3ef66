package mcwire

import (
	"errors"
	"io"

	"github.com/gstoney/mcwire/packet"
)

var (
	ErrNotExhausted        = errors.New("not exhausted")
	ErrInvalidFrameLength  = errors.New("invalid frame length")
	ErrInvalidDataLength   = errors.New("invalid data length")
	ErrZlibPayloadOverrun  = errors.New("zlib stream exceeds declared payload length")
	ErrZlibPayloadUnderrun = errors.New("zlib stream shorter than declared payload length")
	ErrZlibTrailingData    = errors.New("trailing data in frame after zlib stream ends")
)

// frameStream splits a byte stream into length-prefixed frames and bounds
// reads to the current one.
type frameStream struct {
	src       byteReader
	remaining int32
}

// readBounded reads at most *remaining bytes from src into b. An early EOF
// becomes short.
func readBounded(src io.Reader, b []byte, remaining *int32, short error) (n int, err error) {
	if *remaining <= 0 {
		return 0, io.EOF
	}
	if int32(len(b)) > *remaining {
		b = b[:*remaining]
	}
	n, err = src.Read(b)
	*remaining -= int32(n)

	if err == io.EOF && *remaining > 0 {
		err = short
	}
	return
}

// drain reads and drops the rest of r, which must stop at its own bound.
func drain(r io.Reader, remaining int32) (int32, error) {
	n, err := io.CopyN(io.Discard, r, int64(remaining))
	return int32(n), err
}

func (f *frameStream) Read(p []byte) (int, error) {
	return readBounded(f.src, p, &f.remaining, io.ErrUnexpectedEOF)
}

func (f *frameStream) ReadByte() (byte, error) {
	if f.remaining <= 0 {
		return 0, io.EOF
	}
	v, err := f.src.ReadByte()
	switch {
	case err == nil:
		f.remaining--
	case err == io.EOF:
		err = io.ErrUnexpectedEOF
	}
	return v, err
}

// Next reads the length prefix of the following frame. The current frame
// must have been consumed.
func (f *frameStream) Next() (int32, error) {
	if f.remaining > 0 {
		return f.remaining, ErrNotExhausted
	}

	length, err := packet.ReadVarIntFromReader(f.src)
	if err != nil {
		return 0, err
	}
	if length <= 0 {
		return length, ErrInvalidFrameLength
	}
	f.remaining = length
	return length, nil
}

func (f *frameStream) Skip() (int32, error) {
	return drain(f, f.remaining)
}

func (f *frameStream) Remaining() int32 {
	return f.remaining
}

// PayloadReader provides access to a single packet's payload.
//
// Read returns payload bytes. Remaining reports unread payload bytes.
//
// Skip discards remaining payload bytes, enabling validation on Close.
//
// Close validates payload exhaustion and frame integrity, returning an error
// if the payload was not fully consumed or the frame is malformed.
// Close does not realign on error.
//
// Discard abandons the current frame and realigns to the next frame boundary.
// Use Discard to recover from malformed frames or when validation is not needed.
type PayloadReader interface {
	io.ReadCloser
	Skip() (n int32, err error)
	Discard() (n int32, err error)
	Remaining() int32
}

// ReadPayload reads the whole payload of r and validates it with Close. On
// failure the frame is discarded so the stream stays aligned.
func ReadPayload(r PayloadReader) ([]byte, error) {
	b := make([]byte, r.Remaining())
	if _, err := io.ReadFull(r, b); err != nil {
		r.Discard()
		return nil, err
	}
	if err := r.Close(); err != nil {
		r.Discard()
		return nil, err
	}
	return b, nil
}

type plainPayload struct {
	*frameStream
}

func (p plainPayload) Close() (err error) {
	if p.remaining > 0 {
		err = ErrNotExhausted
	}
	return
}

func (p plainPayload) Discard() (n int32, err error) {
	return p.Skip()
}

// compressedPayload inflates one frame. remaining counts decompressed
// bytes still owed by the declared data length.
type compressedPayload struct {
	zr        io.ReadCloser
	fr        *frameStream
	remaining int32
}

func (p *compressedPayload) Read(b []byte) (int, error) {
	return readBounded(p.zr, b, &p.remaining, ErrZlibPayloadUnderrun)
}

func (p *compressedPayload) Skip() (int32, error) {
	return drain(p, p.remaining)
}

func (p *compressedPayload) Discard() (n int32, err error) {
	p.remaining = 0
	return p.fr.Skip()
}

func (p *compressedPayload) Close() (err error) {
	if p.remaining > 0 {
		return ErrNotExhausted
	}

	var buf [1]byte
	n, err := p.zr.Read(buf[:])
	if err == nil || n > 0 {
		return ErrZlibPayloadOverrun
	} else if err != io.EOF {
		return err
	}

	if p.fr.remaining > 0 {
		return ErrZlibTrailingData
	}
	return p.zr.Close()
}

func (p *compressedPayload) Remaining() int32 {
	return p.remaining
}
