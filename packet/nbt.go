package packet

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/Tnze/go-mc/nbt"
)

// NBT holds one network NBT tag exactly as it appeared on the wire: type
// byte, root name and payload. A nil NBT is the empty tag (TAG_End).
type NBT []byte

const (
	tagEnd byte = iota
	tagByte
	tagShort
	tagInt
	tagLong
	tagFloat
	tagDouble
	tagByteArray
	tagString
	tagList
	tagCompound
	tagIntArray
	tagLongArray
)

// EmptyCompound is an unnamed compound tag with no entries.
var EmptyCompound = NBT{tagCompound, 0, 0, tagEnd}

// Type returns the root tag type, or 0 for the empty tag.
func (n NBT) Type() byte {
	if len(n) == 0 {
		return tagEnd
	}
	return n[0]
}

// Unmarshal decodes the tag into v with the go-mc nbt rules.
func (n NBT) Unmarshal(v any) error {
	if len(n) == 0 {
		return fmt.Errorf("%w: empty tag", ErrInvalidNBT)
	}
	_, err := nbt.NewDecoder(bytes.NewReader(n)).Decode(v)
	return err
}

func WriteNBT(w io.Writer, v NBT) (err error) {
	if len(v) == 0 {
		return WriteByte(w, tagEnd)
	}
	_, err = w.Write(v)
	return
}

// ReadNBT validates one tag with the go-mc decoder and keeps the bytes it
// consumed.
func ReadNBT(r *FrameReader) (v NBT, err error) {
	typ, err := r.PeekByte()
	if err != nil {
		return
	}
	if typ == tagEnd {
		_, err = r.ReadByte()
		return nil, err
	}

	rest := r.buf[r.off:]
	src := bytes.NewReader(rest)
	var raw nbt.RawMessage
	if _, err = nbt.NewDecoder(src).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrTruncated
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidNBT, err)
	}

	b, err := r.Read(len(rest) - src.Len())
	if err != nil {
		return
	}
	return append(NBT{}, b...), nil
}
