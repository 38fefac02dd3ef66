package packet

import (
	"bytes"
	"errors"
	"io"
	"reflect"
	"testing"

	"github.com/google/uuid"
)

func TestEntityMetadataBytes(t *testing.T) {
	m := EntityMetadata{}.
		Set(0, DataByte(0x20)).
		Set(2, DataOptChat{})
	want := []byte{
		0x00, 0x00, 0x20, // index 0, byte, flags
		0x02, 0x05, 0x00, // index 2, optional chat, absent
		0xff,
	}

	var buf bytes.Buffer
	if err := WriteEntityMetadata(&buf, m); err != nil {
		t.Fatalf("WriteEntityMetadata failed: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("WriteEntityMetadata expected %x, got %x", want, buf.Bytes())
	}

	r := NewFrameReader(want)
	got, err := ReadEntityMetadata(&r)
	if err != nil {
		t.Fatalf("ReadEntityMetadata failed: %v", err)
	}
	if !reflect.DeepEqual(got, m) {
		t.Errorf("ReadEntityMetadata expected %+v, got %+v", m, got)
	}
}

func TestEntityMetadataEveryType(t *testing.T) {
	values := []EntityDataValue{
		DataByte(-3),
		DataVarInt(300),
		DataFloat(1.5),
		DataString("Dinnerbone"),
		DataChat(TextChat("hi")),
		DataOptChat(Some(TextChat("name"))),
		DataSlot(ItemStack(1, 64)),
		DataBoolean(true),
		DataRotation{X: 1, Y: 2, Z: 3},
		DataPosition(Position{X: 1, Y: -2, Z: 3}),
		DataOptPosition(Some(Position{X: 10})),
		DataDirection(West),
		DataOptUUID(Some(uuid.MustParse("069a79f4-44e9-4726-a5be-fca90e38aaf5"))),
		DataBlockState(1),
		DataNBT(EmptyCompound),
		DataParticle{Particle: DustParticle{Red: 1, Scale: 2}},
		DataVillager{Type: "plains", Profession: "librarian", Level: 2},
		DataOptVarInt(Some[int32](0)),
		DataPose("sleeping"),
		DataCatVariant("tabby"),
		DataFrogVariant("cold"),
		DataOptGlobalPos(Some(GlobalPos{Dimension: "minecraft:overworld", Pos: Position{Y: 64}})),
		DataPaintingVariant(7),
	}

	var m EntityMetadata
	for i, v := range values {
		if got := v.entityDataType(); got != int32(i) {
			t.Errorf("%T: expected serializer %d, got %d", v, i, got)
		}
		m = m.Set(byte(i), v)
	}

	var buf bytes.Buffer
	if err := WriteEntityMetadata(&buf, m); err != nil {
		t.Fatalf("WriteEntityMetadata failed: %v", err)
	}
	r := NewFrameReader(buf.Bytes())
	got, err := ReadEntityMetadata(&r)
	if err != nil {
		t.Fatalf("ReadEntityMetadata failed: %v", err)
	}
	if r.Remaining() != 0 {
		t.Errorf("%d bytes left over", r.Remaining())
	}
	if !reflect.DeepEqual(got, m) {
		t.Errorf("round trip mismatch:\nwant %+v\ngot  %+v", m, got)
	}
}

func TestEntityMetadataSetReplaces(t *testing.T) {
	m := EntityMetadata{}.Set(4, DataBoolean(false)).Set(4, DataBoolean(true))
	if len(m) != 1 {
		t.Fatalf("expected one entry, got %d", len(m))
	}
	if v, ok := m.Get(4); !ok || v != DataBoolean(true) {
		t.Errorf("expected the replacement value, got %v", v)
	}
	if _, ok := m.Get(5); ok {
		t.Error("Get found a missing index")
	}
}

func TestEntityMetadataErrors(t *testing.T) {
	testCases := []struct {
		desc      string
		ser       []byte
		expectErr error
	}{
		{"Missing terminator", []byte{0x00, 0x00, 0x01}, io.ErrUnexpectedEOF},
		{"Unknown serializer", []byte{0x00, 0x17}, ErrUnknownDiscriminant},
		{"Unknown direction", []byte{0x00, 0x0b, 0x06, 0xff}, ErrUnknownDiscriminant},
		{"Duplicate index", []byte{0x01, 0x07, 0x01, 0x01, 0x07, 0x00, 0xff}, nil},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			r := NewFrameReader(tC.ser)
			got, err := ReadEntityMetadata(&r)
			if err == nil {
				t.Fatalf("expected an error, got %+v", got)
			}
			if tC.expectErr != nil && !errors.Is(err, tC.expectErr) {
				t.Errorf("expected %v, got %v", tC.expectErr, err)
			}
		})
	}

	var buf bytes.Buffer
	if err := WriteEntityMetadata(&buf, EntityMetadata{{Index: 0xff, Value: DataByte(0)}}); err == nil {
		t.Error("WriteEntityMetadata accepted the terminator as an index")
	}
}

func TestEquipment(t *testing.T) {
	v := []Equipment{
		{Slot: SlotMainHand, Item: ItemStack(1, 1)},
		{Slot: SlotHead, Item: Slot{}},
	}
	want := []byte{
		0x80, 0x01, 0x01, 0x01, 0x00, // main hand, more follow
		0x05, 0x00,                   // head, empty
	}

	var buf bytes.Buffer
	if err := WriteEquipment(&buf, v); err != nil {
		t.Fatalf("WriteEquipment failed: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("WriteEquipment expected %x, got %x", want, buf.Bytes())
	}

	r := NewFrameReader(want)
	got, err := ReadEquipment(&r)
	if err != nil {
		t.Fatalf("ReadEquipment failed: %v", err)
	}
	if !reflect.DeepEqual(got, v) {
		t.Errorf("ReadEquipment expected %+v, got %+v", v, got)
	}

	if err = WriteEquipment(&buf, nil); !errors.Is(err, ErrEmptyEquipment) {
		t.Errorf("expected %v, got %v", ErrEmptyEquipment, err)
	}

	// the continuation bit promises another entry
	r = NewFrameReader([]byte{0x80, 0x00})
	if _, err = ReadEquipment(&r); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("expected %v, got %v", io.ErrUnexpectedEOF, err)
	}
}

var previousGameModeTc = []TestCase[Optional[GameMode]]{
	{
		desc: "Absent",
		ser:  []byte{0xff},
	},
	{
		desc: "Creative",
		v:    Some(Creative),
		ser:  []byte{0x01},
	},
	{
		desc:      "Out of range",
		expectErr: ErrUnknownDiscriminant,
		ser:       []byte{0x04},
	},
}

func TestPreviousGameMode(t *testing.T) {
	for _, tC := range previousGameModeTc {
		t.Run(tC.desc, func(t *testing.T) {
			r := NewFrameReader(tC.ser)
			got, err := ReadPreviousGameMode(&r)
			if tC.expectErr != nil {
				if !errors.Is(err, tC.expectErr) {
					t.Errorf("ReadPreviousGameMode expected %v, got %v", tC.expectErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadPreviousGameMode failed: %v", err)
			}
			if got != tC.v {
				t.Errorf("ReadPreviousGameMode expected %+v, got %+v", tC.v, got)
			}
			if r.Remaining() != 0 {
				t.Errorf("%d bytes left over", r.Remaining())
			}

			var buf bytes.Buffer
			if err = WritePreviousGameMode(&buf, tC.v); err != nil {
				t.Fatalf("WritePreviousGameMode failed: %v", err)
			}
			if !bytes.Equal(buf.Bytes(), tC.ser) {
				t.Errorf("WritePreviousGameMode expected %x, got %x", tC.ser, buf.Bytes())
			}
		})
	}
}
