package packet

import (
	"errors"
	"io"
)

// equipmentMore marks an equipment entry that is followed by another.
const equipmentMore byte = 0x80

var ErrEmptyEquipment = errors.New("equipment list must hold at least one entry")

type Equipment struct {
	Slot EquipmentSlot
	Item Slot
}

// WriteEquipment writes the entries with the continuation bit set on all
// but the last one.
func WriteEquipment(w io.Writer, v []Equipment) (err error) {
	if len(v) == 0 {
		return ErrEmptyEquipment
	}
	for i, e := range v {
		b := byte(EquipmentSlots.ToID(e.Slot))
		if i < len(v)-1 {
			b |= equipmentMore
		}
		if err = WriteByte(w, b); err != nil {
			return
		}
		if err = WriteSlot(w, e.Item); err != nil {
			return
		}
	}
	return
}

// ReadEquipment reads entries until one arrives without the continuation
// bit. The first entry is always read.
func ReadEquipment(r *FrameReader) (v []Equipment, err error) {
	for {
		var b byte
		if b, err = r.ReadByte(); err != nil {
			return nil, err
		}

		var e Equipment
		if e.Slot, err = EquipmentSlots.FromID(int32(b &^ equipmentMore)); err != nil {
			return nil, err
		}
		if e.Item, err = ReadSlot(r); err != nil {
			return nil, err
		}
		v = append(v, e)

		if b&equipmentMore == 0 {
			return v, nil
		}
	}
}
