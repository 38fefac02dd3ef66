package packet

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

// levelCompound is an unnamed compound holding a byte, a list of two ints,
// a nested compound with a string and an empty long array.
var levelCompound = []byte{
	tagCompound, 0x00, 0x00,
	tagByte, 0x00, 0x01, 'b', 0x7f,
	tagList, 0x00, 0x01, 'l', tagInt, 0x00, 0x00, 0x00, 0x02,
	0x00, 0x00, 0x00, 0x01,
	0x00, 0x00, 0x00, 0x02,
	tagCompound, 0x00, 0x01, 'c',
	tagString, 0x00, 0x01, 's', 0x00, 0x02, 'h', 'i',
	tagEnd,
	tagLongArray, 0x00, 0x01, 'a', 0x00, 0x00, 0x00, 0x00,
	tagEnd,
}

func TestReadNBT(t *testing.T) {
	testCases := []struct {
		desc      string
		ser       []byte
		want      NBT
		expectErr error
	}{
		{
			desc: "Empty tag",
			ser:  []byte{tagEnd},
		},
		{
			desc: "Empty compound",
			ser:  EmptyCompound,
			want: EmptyCompound,
		},
		{
			desc: "Nested compound",
			ser:  levelCompound,
			want: levelCompound,
		},
		{
			desc:      "Truncated compound",
			ser:       levelCompound[:15],
			expectErr: io.ErrUnexpectedEOF,
		},
		{
			desc:      "Unknown tag type",
			ser:       []byte{tagCompound, 0x00, 0x00, 0x0d, 0x00, 0x00},
			expectErr: ErrInvalidNBT,
		},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			// trailing byte must be left for the next field
			r := NewFrameReader(append(append([]byte{}, tC.ser...), 0x42))
			got, err := ReadNBT(&r)
			if tC.expectErr != nil {
				if !errors.Is(err, tC.expectErr) {
					t.Errorf("ReadNBT expected %v, got %v", tC.expectErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadNBT failed: %v", err)
			}
			if !bytes.Equal(got, tC.want) {
				t.Errorf("ReadNBT expected %x, got %x", tC.want, got)
			}
			if r.Remaining() != 1 {
				t.Errorf("ReadNBT expected 1 byte left, got %d", r.Remaining())
			}

			var buf bytes.Buffer
			if err = WriteNBT(&buf, got); err != nil {
				t.Fatalf("WriteNBT failed: %v", err)
			}
			if !bytes.Equal(buf.Bytes(), tC.ser) {
				t.Errorf("WriteNBT expected %x, got %x", tC.ser, buf.Bytes())
			}
		})
	}
}

func TestNBTUnmarshal(t *testing.T) {
	var level struct {
		B byte    `nbt:"b"`
		L []int32 `nbt:"l"`
		C struct {
			S string `nbt:"s"`
		} `nbt:"c"`
	}
	if err := NBT(levelCompound).Unmarshal(&level); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if level.B != 0x7f || len(level.L) != 2 || level.L[1] != 2 || level.C.S != "hi" {
		t.Errorf("Unmarshal got %+v", level)
	}
	if err := NBT(nil).Unmarshal(&level); !errors.Is(err, ErrInvalidNBT) {
		t.Errorf("expected %v for the empty tag, got %v", ErrInvalidNBT, err)
	}
}

func TestNBTType(t *testing.T) {
	if NBT(nil).Type() != tagEnd {
		t.Error("empty NBT should report TAG_End")
	}
	if EmptyCompound.Type() != tagCompound {
		t.Error("EmptyCompound should report TAG_Compound")
	}
}
