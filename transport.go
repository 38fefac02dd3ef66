package mcwire

import (
	"bufio"
	"bytes"
	"compress/zlib"
	"errors"
	"fmt"
	"io"

	"github.com/gstoney/mcwire/packet"
)

var (
	ErrPacketTooBig    = errors.New("packet too big")
	ErrBadlyCompressed = errors.New("compressed packet below compression threshold")
)

// CompressionDisabled is the threshold of a transport that does not
// compress.
const CompressionDisabled = -1

type TransportConfig struct {
	MaxPacketLen       int32
	MaxDecompressedLen int32
}

// DefaultTransportConfig allows the largest frame a VarInt length of three
// bytes can describe, and the vanilla decompressed limit.
func DefaultTransportConfig() TransportConfig {
	return TransportConfig{
		MaxPacketLen:       1<<21 - 1,
		MaxDecompressedLen: 1 << 23,
	}
}

type byteReader interface {
	io.Reader
	io.ByteReader
}

type byteWriter interface {
	io.Writer
	io.ByteWriter
}

// Transport provides read and write access to a framed stream, with
// compression handled internally. Transport does not deserialize packets.
type Transport struct {
	reader byteReader
	writer byteWriter

	fReader frameStream
	zReader io.ReadCloser

	zBuffer bytes.Buffer
	zWriter *zlib.Writer

	threshold int
	cfg       TransportConfig
}

// NewTransport creates a Transport.
//
// For readers/writers that perform syscalls (e.g. net.Conn), buffering is
// required. Indicate buffered I/O by implementing io.ByteReader/io.ByteWriter.
// If these interfaces are not implemented, the reader/writer will be wrapped
// with bufio.
func NewTransport(r io.Reader, w io.Writer, cfg TransportConfig) *Transport {
	var br byteReader
	var bw byteWriter

	if b, ok := r.(byteReader); ok {
		br = b
	} else if r != nil {
		br = bufio.NewReader(r)
	}

	if b, ok := w.(byteWriter); ok {
		bw = b
	} else if w != nil {
		bw = bufio.NewWriter(w)
	}

	return &Transport{
		reader:    br,
		writer:    bw,
		fReader:   frameStream{src: br},
		threshold: CompressionDisabled,
		cfg:       cfg,
	}
}

// SetCompression switches the frame format. A negative threshold disables
// compression; otherwise payloads of at least threshold bytes are
// compressed on Send.
func (t *Transport) SetCompression(threshold int) {
	if threshold < 0 {
		threshold = CompressionDisabled
	}
	t.threshold = threshold
}

func (t *Transport) CompressionThreshold() int {
	return t.threshold
}

func (t *Transport) Recv() (r PayloadReader, err error) {
	frameLength, err := t.fReader.Next()
	if err != nil {
		return nil, err
	}

	if frameLength > t.cfg.MaxPacketLen {
		return nil, fmt.Errorf("%w: frame of %d bytes", ErrPacketTooBig, frameLength)
	}

	r = plainPayload{&t.fReader}

	if t.threshold < 0 {
		return r, nil
	}

	decompressedLen, err := packet.ReadVarIntFromReader(&t.fReader)
	if err != nil {
		return nil, err
	}

	switch {
	case decompressedLen < 0:
		t.fReader.Skip()
		return nil, ErrInvalidDataLength
	case decompressedLen == 0:
		return r, nil
	case decompressedLen > t.cfg.MaxDecompressedLen:
		t.fReader.Skip()
		return nil, fmt.Errorf("%w: %d bytes decompressed", ErrPacketTooBig, decompressedLen)
	case int(decompressedLen) < t.threshold:
		t.fReader.Skip()
		return nil, fmt.Errorf("%w: %d < %d", ErrBadlyCompressed, decompressedLen, t.threshold)
	}

	if t.zReader == nil {
		t.zReader, err = zlib.NewReader(&t.fReader)
	} else {
		err = t.zReader.(zlib.Resetter).Reset(&t.fReader, nil)
	}
	if err != nil {
		t.fReader.Skip()
		return nil, err
	}

	return &compressedPayload{t.zReader, &t.fReader, decompressedLen}, nil
}

// Send frames b and flushes the underlying writer if Transport buffered it.
func (t *Transport) Send(b []byte) (err error) {
	length := len(b)

	switch {
	case t.threshold < 0:
		if err = packet.WriteVarInt(t.writer, int32(length)); err != nil {
			return
		}
		if _, err = t.writer.Write(b); err != nil {
			return
		}

	case length >= t.threshold:
		t.zBuffer.Reset()
		if t.zWriter == nil {
			t.zWriter = zlib.NewWriter(&t.zBuffer)
		} else {
			t.zWriter.Reset(&t.zBuffer)
		}
		if _, err = t.zWriter.Write(b); err != nil {
			return
		}
		if err = t.zWriter.Close(); err != nil {
			return
		}

		frameLen := packet.VarIntSize(int32(length)) + t.zBuffer.Len()
		if err = packet.WriteVarInt(t.writer, int32(frameLen)); err != nil {
			return
		}
		if err = packet.WriteVarInt(t.writer, int32(length)); err != nil {
			return
		}
		if _, err = t.zBuffer.WriteTo(t.writer); err != nil {
			return
		}

	default:
		if err = packet.WriteVarInt(t.writer, int32(length+1)); err != nil {
			return
		}
		if err = t.writer.WriteByte(0); err != nil {
			return
		}
		if _, err = t.writer.Write(b); err != nil {
			return
		}
	}

	if bw, ok := t.writer.(*bufio.Writer); ok {
		err = bw.Flush()
	}
	return
}
