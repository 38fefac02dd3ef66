package packet

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

type TestCase[T any] struct {
	desc      string
	expectErr error
	v         T
	ser       []byte
}

var varintTc = []TestCase[int32]{
	{
		desc: "Zero",
		v:    0,
		ser:  []byte{0x00},
	},
	{
		desc: "One",
		v:    1,
		ser:  []byte{0x01},
	},
	{
		desc: "Two",
		v:    2,
		ser:  []byte{0x02},
	},
	{
		desc: "Max single byte (127)",
		v:    127,
		ser:  []byte{0x7f},
	},
	{
		desc: "Min two bytes (128)",
		v:    128,
		ser:  []byte{0x80, 0x01},
	},
	{
		desc: "Max two bytes (255)", // The largest value that fits in the first 14 bits (0x3FFF) is 16383, but 255 is a standard boundary test.
		v:    255,
		ser:  []byte{0xff, 0x01},
	},
	{
		desc: "Small three bytes (25565)",
		v:    25565,
		ser:  []byte{0xdd, 0xc7, 0x01},
	},
	{
		desc: "Max three bytes (2097151)",
		v:    2097151,
		ser:  []byte{0xff, 0xff, 0x7f},
	},
	{
		desc: "Max positive int32 (2147483647)",
		v:    2147483647,
		ser:  []byte{0xff, 0xff, 0xff, 0xff, 0x07},
	},
	{
		desc: "Negative one (-1)",
		v:    -1,
		ser:  []byte{0xff, 0xff, 0xff, 0xff, 0x0f},
	},
	{
		desc: "Min negative int32 (-2147483648)",
		v:    -2147483648,
		ser:  []byte{0x80, 0x80, 0x80, 0x80, 0x08},
	},
	{
		desc:      "VarInt too long",
		expectErr: ErrVarIntTooLong,
		v:         2147483647,
		ser:       []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0x07},
	},
	{
		desc:      "Unexpected EOF",
		expectErr: io.ErrUnexpectedEOF,
		v:         2147483647,
		ser:       []byte{0xff, 0xff, 0xff, 0xff},
	},
}

func TestWriteVarInt(t *testing.T) {
	buf := bytes.NewBuffer(make([]byte, 0, 5))
	for _, tC := range varintTc {
		if tC.expectErr != nil {
			continue
		}

		t.Run(tC.desc, func(t *testing.T) {
			err := WriteVarInt(buf, tC.v)
			if err != nil {
				t.Fatalf("WriteVarInt failed: %v", err)
			}

			if !bytes.Equal(buf.Bytes(), tC.ser) {
				t.Errorf("WriteVarInt expected %x, got %x", tC.ser, buf.Bytes())
			}
		})
		buf.Reset()
	}
}

func TestReadVarInt(t *testing.T) {
	for _, tC := range varintTc {
		t.Run(tC.desc, func(t *testing.T) {
			// Create a buffer initialized with the serialized bytes (tC.ser)
			r := NewFrameReader(tC.ser)

			// Assume ReadVarInt reads from the io.Reader and returns the decoded int32 and an error
			got, err := ReadVarInt(&r)

			if tC.expectErr != nil {
				if err == nil {
					t.Fatalf("ReadVarInt expected error %v, but succeeded and returned value %d", tC.expectErr, got)
				}
				if !errors.Is(err, tC.expectErr) {
					t.Errorf("ReadVarInt expected error %v, but got error %v", tC.expectErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("ReadVarInt failed: %v", err)
			}

			if got != tC.v {
				t.Errorf("ReadVarInt expected %d, got %d", tC.v, got)
			}

			// Ensure the reader consumed exactly all expected bytes (tC.ser)
			if r.Remaining() != 0 {
				t.Errorf("Reader did not consume all bytes. %d bytes remaining.", r.Remaining())
			}
		})
	}
}

var stringTc = []TestCase[string]{
	{
		desc: "Empty string",
		v:    "",
		ser:  []byte{0x00}, // Length 0, encoded as 0x00
	},
	{
		desc: "ASCII string",
		v:    "Hello",
		ser:  []byte{0x05, 0x48, 0x65, 0x6c, 0x6c, 0x6f}, // Length 5 (0x05) + ASCII bytes
	},
	{
		desc: "Unicode string",
		v:    "Go 🎉",                                                 // The emoji is 4 bytes in UTF-8. Total length: 2 + 1 + 4 = 7 bytes
		ser:  []byte{0x07, 0x47, 0x6f, 0x20, 0xf0, 0x9f, 0x8e, 0x89}, // Length 7 (0x07) + UTF-8 bytes
	},
	{
		desc: "Multi byte length (128 bytes)",
		v:    string(bytes.Repeat([]byte{'a'}, 128)),
		ser:  append([]byte{0x80, 0x01}, bytes.Repeat([]byte{'a'}, 128)...),
	},
	{
		desc:      "Read fail: EOF on length VarInt (Length is 0x80)",
		expectErr: io.ErrUnexpectedEOF,
		v:         "",
		ser:       []byte{0x80}, // Missing the second byte of the VarInt length (e.g., length 128)
	},
	{
		desc:      "Read fail: EOF reading string content",
		expectErr: io.ErrUnexpectedEOF,
		v:         "",
		ser:       []byte{0x05, 0x48, 0x65, 0x6c}, // Length 5 (0x05), but only 3 bytes of data follow
	},
	{
		desc:      "Read fail: Negative length prefix",
		expectErr: ErrNegativeLength,
		v:         "",
		ser:       []byte{0xff, 0xff, 0xff, 0xff, 0x0f}, // VarInt encoding for -1
	},
}

func TestWriteString(t *testing.T) {
	buf := bytes.NewBuffer(make([]byte, 0))
	for _, tC := range stringTc {
		if tC.expectErr != nil {
			continue
		}

		t.Run(tC.desc, func(t *testing.T) {
			err := WriteString(buf, tC.v)
			if err != nil {
				t.Fatalf("WriteString failed: %v", err)
			}

			if !bytes.Equal(buf.Bytes(), tC.ser) {
				t.Errorf("WriteString expected %x, got %x", tC.ser, buf.Bytes())
			}
		})
		buf.Reset()
	}
}

func TestReadString(t *testing.T) {
	for _, tC := range stringTc {
		t.Run(tC.desc, func(t *testing.T) {
			// Create a buffer initialized with the serialized bytes (tC.ser)
			r := NewFrameReader(tC.ser)

			got, err := ReadString(&r)

			if tC.expectErr != nil {
				if err == nil {
					t.Fatalf("ReadString expected error %v, but succeeded and returned value %s", tC.expectErr, got)
				}
				if !errors.Is(err, tC.expectErr) {
					t.Errorf("ReadString expected error %v, but got error %v", tC.expectErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("ReadString failed: %v", err)
			}

			if got != tC.v {
				t.Errorf("ReadString expected %s, got %s", tC.v, got)
			}

			// Ensure the reader consumed exactly all expected bytes (tC.ser)
			if r.Remaining() != 0 {
				t.Errorf("Reader did not consume all bytes. %d bytes remaining.", r.Remaining())
			}
		})
	}
}

var pArrayTc = []TestCase[[]byte]{
	{
		desc: "Empty array",
		v:    []byte{},
		ser:  []byte{0x00}, // Length 0, encoded as 0x00
	},
	{
		desc: "Small array (Length 3)",
		v:    []byte{10, 20, 30},
		ser:  []byte{0x03, 10, 20, 30}, // Length 3 (0x03) + data
	},
	{
		desc: "Large array (Length 128)",
		v:    bytes.Repeat([]byte{0xAA}, 128),
		ser:  append([]byte{0x80, 0x01}, bytes.Repeat([]byte{0xAA}, 128)...), // Length 128 (0x80 0x01) + data
	},
	{
		desc:      "Read fail: EOF on length VarInt (Length is 0x80)",
		expectErr: io.ErrUnexpectedEOF,
		ser:       []byte{0x80}, // Missing the second byte of the VarInt length (e.g., length 128)
	},
	{
		desc:      "Read fail: EOF reading array elements",
		expectErr: io.ErrUnexpectedEOF,
		v:         []byte{10, 20, 30},   // Expected array, but stream will be incomplete
		ser:       []byte{0x03, 10, 20}, // Length 3 (0x03), but only 2 bytes of data follow
	},
}

func TestWritePrefixedArray(t *testing.T) {
	buf := bytes.NewBuffer(make([]byte, 0))
	for _, tC := range pArrayTc {
		if tC.expectErr != nil {
			continue
		}

		t.Run(tC.desc, func(t *testing.T) {
			err := WritePrefixedArray(buf, tC.v, WriteByte)
			if err != nil {
				t.Fatalf("WritePrefixedArray failed: %v", err)
			}

			if !bytes.Equal(buf.Bytes(), tC.ser) {
				t.Errorf("WritePrefixedArray expected %x, got %x", tC.ser, buf.Bytes())
			}
		})
		buf.Reset()
	}
}

func TestReadPrefixedArray(t *testing.T) {
	for _, tC := range pArrayTc {
		t.Run(tC.desc, func(t *testing.T) {
			// Create a buffer initialized with the serialized bytes (tC.ser)
			r := NewFrameReader(tC.ser)

			got, err := ReadPrefixedArray(&r, ReadByte)

			if tC.expectErr != nil {
				if err == nil {
					t.Fatalf("ReadPrefixedArray expected error %v, but succeeded and returned value %x", tC.expectErr, got)
				}
				if !errors.Is(err, tC.expectErr) {
					t.Errorf("ReadPrefixedArray expected error %v, but got error %v", tC.expectErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("ReadPrefixedArray failed: %v", err)
			}

			if !bytes.Equal(got, tC.v) {
				t.Errorf("ReadPrefixedArray expected %x, got %x", tC.v, got)
			}

			// Ensure the reader consumed exactly all expected bytes (tC.ser)
			if r.Remaining() != 0 {
				t.Errorf("Reader did not consume all bytes. %d bytes remaining.", r.Remaining())
			}
		})
	}
}

var optionalTc = []TestCase[Optional[byte]]{
	{
		desc: "Value is Present",
		v:    Optional[byte]{Exists: true, Item: 0x42},
		ser:  []byte{0x01, 0x42}, // True (0x01) + Item (0x42)
	},
	{
		desc: "Value is Absent",
		v:    Optional[byte]{Exists: false, Item: 0x00}, // Item value is ignored when Exists is false
		ser:  []byte{0x00},                              // False (0x00)
	},
	{
		desc:      "Read fail: EOF on Boolean prefix",
		expectErr: io.ErrUnexpectedEOF,
		ser:       []byte{},
	},
	{
		desc:      "Read fail: EOF reading Item when Exists is true",
		expectErr: io.ErrUnexpectedEOF,
		ser:       []byte{0x01}, // True (0x01), but no item byte follows
	},
}

func TestWriteOptional(t *testing.T) {
	buf := bytes.NewBuffer(make([]byte, 0))
	for _, tC := range optionalTc {
		if tC.expectErr != nil {
			continue
		}

		t.Run(tC.desc, func(t *testing.T) {
			err := WriteOptional(buf, tC.v, WriteByte)
			if err != nil {
				t.Fatalf("WriteOptional failed: %v", err)
			}

			if !bytes.Equal(buf.Bytes(), tC.ser) {
				t.Errorf("WriteOptional expected %x, got %x", tC.ser, buf.Bytes())
			}
		})
		buf.Reset()
	}
}

func TestReadOptional(t *testing.T) {
	for _, tC := range optionalTc {
		t.Run(tC.desc, func(t *testing.T) {
			// Create a buffer initialized with the serialized bytes (tC.ser)
			r := NewFrameReader(tC.ser)

			got, err := ReadOptional(&r, ReadByte)

			if tC.expectErr != nil {
				if err == nil {
					t.Fatalf("ReadOptional expected error %v, but succeeded and returned value %v", tC.expectErr, got)
				}
				if !errors.Is(err, tC.expectErr) {
					t.Errorf("ReadOptional expected error %v, but got error %v", tC.expectErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("ReadOptional failed: %v", err)
			}

			if got.Exists != tC.v.Exists {
				t.Errorf("Exists flag mismatch. Expected: %t, Got: %t", tC.v.Exists, got.Exists)
			}

			if got.Exists && got.Item != tC.v.Item {
				t.Errorf("Item mismatch. Expected: %v, Got: %v", tC.v.Item, got.Item)
			}

			// Ensure the reader consumed exactly all expected bytes (tC.ser)
			if r.Remaining() != 0 {
				t.Errorf("Reader did not consume all bytes. %d bytes remaining.", r.Remaining())
			}
		})
	}
}

var varlongTc = []TestCase[int64]{
	{
		desc: "Zero",
		v:    0,
		ser:  []byte{0x00},
	},
	{
		desc: "Max positive int32 (2147483647)",
		v:    2147483647,
		ser:  []byte{0xff, 0xff, 0xff, 0xff, 0x07},
	},
	{
		desc: "Max positive int64",
		v:    9223372036854775807,
		ser:  []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f},
	},
	{
		desc: "Negative one (-1)",
		v:    -1,
		ser:  []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01},
	},
	{
		desc: "Min negative int64",
		v:    -9223372036854775808,
		ser:  []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x01},
	},
	{
		desc:      "VarLong too long",
		expectErr: ErrVarLongTooLong,
		ser:       []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01},
	},
	{
		desc:      "Unexpected EOF",
		expectErr: io.ErrUnexpectedEOF,
		ser:       []byte{0xff, 0xff},
	},
}

func TestVarLong(t *testing.T) {
	for _, tC := range varlongTc {
		t.Run(tC.desc, func(t *testing.T) {
			r := NewFrameReader(tC.ser)
			got, err := ReadVarLong(&r)

			if tC.expectErr != nil {
				if !errors.Is(err, tC.expectErr) {
					t.Fatalf("ReadVarLong expected error %v, got %v (value %d)", tC.expectErr, err, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadVarLong failed: %v", err)
			}
			if got != tC.v {
				t.Errorf("ReadVarLong expected %d, got %d", tC.v, got)
			}

			var buf bytes.Buffer
			if err = WriteVarLong(&buf, tC.v); err != nil {
				t.Fatalf("WriteVarLong failed: %v", err)
			}
			if !bytes.Equal(buf.Bytes(), tC.ser) {
				t.Errorf("WriteVarLong expected %x, got %x", tC.ser, buf.Bytes())
			}
		})
	}
}

func TestVarIntFromReader(t *testing.T) {
	for _, tC := range varintTc {
		t.Run(tC.desc, func(t *testing.T) {
			// bufio-less reader exercises the single byte fallback
			got, err := ReadVarIntFromReader(io.MultiReader(bytes.NewReader(tC.ser)))

			if tC.expectErr != nil {
				if !errors.Is(err, tC.expectErr) {
					t.Fatalf("ReadVarIntFromReader expected error %v, got %v", tC.expectErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadVarIntFromReader failed: %v", err)
			}
			if got != tC.v {
				t.Errorf("ReadVarIntFromReader expected %d, got %d", tC.v, got)
			}
		})
	}

	if _, err := ReadVarIntFromReader(bytes.NewReader(nil)); err != io.EOF {
		t.Errorf("expected io.EOF on an empty stream, got %v", err)
	}
}

func TestVarIntSize(t *testing.T) {
	for _, tC := range varintTc {
		if tC.expectErr != nil {
			continue
		}
		if got := VarIntSize(tC.v); got != len(tC.ser) {
			t.Errorf("VarIntSize(%d) expected %d, got %d", tC.v, len(tC.ser), got)
		}
	}
}

var boundedStringTc = []TestCase[string]{
	{
		desc: "At the bound",
		v:    "abcd",
		ser:  []byte{0x04, 'a', 'b', 'c', 'd'},
	},
	{
		desc: "Surrogate pairs count twice",
		v:    "\U0001F389\U0001F389",
		ser:  []byte{0x08, 0xf0, 0x9f, 0x8e, 0x89, 0xf0, 0x9f, 0x8e, 0x89},
	},
	{
		desc:      "Over the bound",
		expectErr: ErrStringTooLong,
		v:         "abcde",
		ser:       []byte{0x05, 'a', 'b', 'c', 'd', 'e'},
	},
	{
		desc:      "Surrogate pair over the bound",
		expectErr: ErrStringTooLong,
		v:         "\U0001F389\U0001F389a",
		ser:       []byte{0x09, 0xf0, 0x9f, 0x8e, 0x89, 0xf0, 0x9f, 0x8e, 0x89, 'a'},
	},
	{
		desc:      "Byte length beyond any valid string",
		expectErr: ErrStringTooLong,
		ser:       []byte{0x0d},
	},
}

func TestBoundedString(t *testing.T) {
	const max = 4
	for _, tC := range boundedStringTc {
		t.Run(tC.desc, func(t *testing.T) {
			r := NewFrameReader(tC.ser)
			got, err := ReadBoundedString(&r, max)
			if tC.expectErr != nil {
				if !errors.Is(err, tC.expectErr) {
					t.Errorf("ReadBoundedString expected error %v, got %v", tC.expectErr, err)
				}
			} else if err != nil {
				t.Fatalf("ReadBoundedString failed: %v", err)
			} else if got != tC.v {
				t.Errorf("ReadBoundedString expected %q, got %q", tC.v, got)
			}

			if tC.v == "" {
				return
			}
			var buf bytes.Buffer
			err = WriteBoundedString(&buf, tC.v, max)
			if tC.expectErr != nil {
				if !errors.Is(err, tC.expectErr) {
					t.Errorf("WriteBoundedString expected error %v, got %v", tC.expectErr, err)
				}
				if buf.Len() != 0 {
					t.Errorf("WriteBoundedString wrote %d bytes before failing", buf.Len())
				}
				return
			}
			if err != nil {
				t.Fatalf("WriteBoundedString failed: %v", err)
			}
			if !bytes.Equal(buf.Bytes(), tC.ser) {
				t.Errorf("WriteBoundedString expected %x, got %x", tC.ser, buf.Bytes())
			}
		})
	}
}

func TestReadBooleanInvalid(t *testing.T) {
	r := NewFrameReader([]byte{0x02})
	if _, err := ReadBoolean(&r); err == nil {
		t.Error("ReadBoolean accepted 0x02")
	}
}

func TestIdentifier(t *testing.T) {
	testCases := []struct {
		in        string
		id        Identifier
		namespace string
		path      string
	}{
		{"stone", "minecraft:stone", "minecraft", "stone"},
		{"minecraft:stone", "minecraft:stone", "minecraft", "stone"},
		{"mymod:widget/blue", "mymod:widget/blue", "mymod", "widget/blue"},
	}
	for _, tC := range testCases {
		id := NewIdentifier(tC.in)
		if id != tC.id {
			t.Errorf("NewIdentifier(%q) expected %q, got %q", tC.in, tC.id, id)
		}
		if id.Namespace() != tC.namespace || id.Path() != tC.path {
			t.Errorf("%q split into %q and %q", id, id.Namespace(), id.Path())
		}
	}
}

func TestFixedArray(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteFixedArray(&buf, []byte{1, 2}, WriteByte, 3); err == nil {
		t.Error("WriteFixedArray accepted 2 items for a length of 3")
	}
	if err := WriteFixedArray(&buf, []byte{1, 2, 3}, WriteByte, 3); err != nil {
		t.Fatalf("WriteFixedArray failed: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), []byte{1, 2, 3}) {
		t.Errorf("WriteFixedArray expected 010203, got %x", buf.Bytes())
	}

	r := NewFrameReader(buf.Bytes())
	got, err := ReadFixedArray(&r, ReadByte, 3)
	if err != nil {
		t.Fatalf("ReadFixedArray failed: %v", err)
	}
	if !bytes.Equal(got, []byte{1, 2, 3}) {
		t.Errorf("ReadFixedArray expected 010203, got %x", got)
	}

	r = NewFrameReader([]byte{1, 2})
	if _, err = ReadFixedArray(&r, ReadByte, 3); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadFixedArray expected %v, got %v", io.ErrUnexpectedEOF, err)
	}
}

var optionalUnsignedIntTc = []TestCase[Optional[int32]]{
	{
		desc: "Absent",
		ser:  []byte{0x00},
	},
	{
		desc: "Zero",
		v:    Some[int32](0),
		ser:  []byte{0x01},
	},
	{
		desc: "Entity id 300",
		v:    Some[int32](300),
		ser:  []byte{0xad, 0x02},
	},
}

func TestOptionalUnsignedInt(t *testing.T) {
	for _, tC := range optionalUnsignedIntTc {
		t.Run(tC.desc, func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteOptionalUnsignedInt(&buf, tC.v); err != nil {
				t.Fatalf("WriteOptionalUnsignedInt failed: %v", err)
			}
			if !bytes.Equal(buf.Bytes(), tC.ser) {
				t.Errorf("WriteOptionalUnsignedInt expected %x, got %x", tC.ser, buf.Bytes())
			}

			r := NewFrameReader(tC.ser)
			got, err := ReadOptionalUnsignedInt(&r)
			if err != nil {
				t.Fatalf("ReadOptionalUnsignedInt failed: %v", err)
			}
			if got != tC.v {
				t.Errorf("ReadOptionalUnsignedInt expected %+v, got %+v", tC.v, got)
			}
		})
	}
}

func TestBitSet(t *testing.T) {
	var b BitSet
	b = b.Set(0).Set(65)
	if len(b) != 2 {
		t.Fatalf("expected 2 words, got %d", len(b))
	}
	for i, want := range map[int]bool{0: true, 1: false, 64: false, 65: true, 200: false, -1: false} {
		if b.Get(i) != want {
			t.Errorf("bit %d expected %t", i, want)
		}
	}

	var buf bytes.Buffer
	if err := WriteBitSet(&buf, b); err != nil {
		t.Fatalf("WriteBitSet failed: %v", err)
	}
	want := []byte{0x02, 0, 0, 0, 0, 0, 0, 0, 0x01, 0, 0, 0, 0, 0, 0, 0, 0x02}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("WriteBitSet expected %x, got %x", want, buf.Bytes())
	}
}

func TestAngle(t *testing.T) {
	testCases := []struct {
		deg  float32
		want Angle
	}{
		{0, 0},
		{90, 64},
		{180, 128},
		{-90, 192},
		{360, 0},
	}
	for _, tC := range testCases {
		if got := AngleFromDegrees(tC.deg); got != tC.want {
			t.Errorf("AngleFromDegrees(%v) expected %d, got %d", tC.deg, tC.want, got)
		}
	}
	if d := Angle(64).Degrees(); d != 90 {
		t.Errorf("Angle(64).Degrees() expected 90, got %v", d)
	}
}

func TestReadByteArrayCopies(t *testing.T) {
	payload := []byte{0x02, 0xAA, 0xBB}
	r := NewFrameReader(payload)
	got, err := ReadByteArray(&r)
	if err != nil {
		t.Fatalf("ReadByteArray failed: %v", err)
	}
	payload[1] = 0
	if got[0] != 0xAA {
		t.Error("ReadByteArray result aliases the payload")
	}
}
