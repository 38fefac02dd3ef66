package packet

import (
	"bytes"
	"encoding/binary"
	"testing"
)

var positionTc = []TestCase[Position]{
	{
		desc: "Origin",
		v:    Position{},
		ser:  []byte{0, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		desc: "Far positive X, negative Z",
		v:    Position{X: 18357644, Y: 831, Z: -20882616},
		ser:  []byte{0x46, 0x07, 0x63, 0x2c, 0x15, 0xb4, 0x83, 0x3f},
	},
	{
		desc: "Every component negative",
		v:    Position{X: -1, Y: -64, Z: -1},
		ser:  []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xc0},
	},
	{
		desc: "Extremes",
		v:    Position{X: -33554432, Y: 2047, Z: 33554431},
		ser:  []byte{0x80, 0x00, 0x00, 0x1f, 0xff, 0xff, 0xf7, 0xff},
	},
}

func TestPosition(t *testing.T) {
	for _, tC := range positionTc {
		t.Run(tC.desc, func(t *testing.T) {
			var buf bytes.Buffer
			if err := WritePosition(&buf, tC.v); err != nil {
				t.Fatalf("WritePosition failed: %v", err)
			}
			if !bytes.Equal(buf.Bytes(), tC.ser) {
				t.Errorf("WritePosition expected %x, got %x", tC.ser, buf.Bytes())
			}

			r := NewFrameReader(tC.ser)
			got, err := ReadPosition(&r)
			if err != nil {
				t.Fatalf("ReadPosition failed: %v", err)
			}
			if got != tC.v {
				t.Errorf("ReadPosition expected %+v, got %+v", tC.v, got)
			}
		})
	}
}

func TestPositionOutOfRangeTruncates(t *testing.T) {
	// 1<<25 does not fit 26 signed bits and wraps to the minimum.
	p := Position{X: 1 << 25}
	if got := UnpackPosition(p.Pack()); got.X != -(1 << 25) {
		t.Errorf("expected X to wrap to %d, got %d", -(1 << 25), got.X)
	}
}

func TestSectionPosition(t *testing.T) {
	testCases := []struct {
		v      SectionPosition
		packed uint64
	}{
		{SectionPosition{}, 0},
		{SectionPosition{X: -2, Y: -4, Z: 3}, 0xfffff800003ffffc},
		{SectionPosition{X: 1, Y: 1, Z: 1}, 1<<42 | 1<<20 | 1},
		{SectionPosition{X: -5, Y: 10, Z: 1000}, 0xffffec003e80000a},
	}
	for _, tC := range testCases {
		if got := tC.v.Pack(); got != tC.packed {
			t.Errorf("%+v: expected %#x, got %#x", tC.v, tC.packed, got)
		}
		if got := UnpackSectionPosition(tC.packed); got != tC.v {
			t.Errorf("%#x: expected %+v, got %+v", tC.packed, tC.v, got)
		}

		var buf bytes.Buffer
		if err := WriteSectionPosition(&buf, tC.v); err != nil {
			t.Fatal(err)
		}
		if got := binary.BigEndian.Uint64(buf.Bytes()); got != tC.packed {
			t.Errorf("WriteSectionPosition expected %#x, got %#x", tC.packed, got)
		}
	}
}

func TestBlockChange(t *testing.T) {
	c := BlockChange{State: 9, X: 15, Y: 7, Z: 3}
	if got := c.Pack(); got != 0x9f37 {
		t.Errorf("expected 0x9f37, got %#x", got)
	}

	var buf bytes.Buffer
	if err := WriteBlockChange(&buf, c); err != nil {
		t.Fatal(err)
	}
	r := NewFrameReader(buf.Bytes())
	got, err := ReadBlockChange(&r)
	if err != nil {
		t.Fatal(err)
	}
	if got != c {
		t.Errorf("expected %+v, got %+v", c, got)
	}

	big := BlockChange{State: 24134, X: 1, Y: 2, Z: 3}
	if got := UnpackBlockChange(big.Pack()); got != big {
		t.Errorf("expected %+v, got %+v", big, got)
	}
}
