package packet

import "io"

// Slot is an item stack. An empty slot has Present false and no other
// fields on the wire.
type Slot struct {
	Present bool
	ItemID  int32
	Count   int8
	NBT     NBT
}

// ItemStack returns a present slot.
func ItemStack(item int32, count int8) Slot {
	return Slot{Present: true, ItemID: item, Count: count}
}

func WriteSlot(w io.Writer, v Slot) (err error) {
	if err = WriteBoolean(w, v.Present); err != nil || !v.Present {
		return
	}
	if err = WriteVarInt(w, v.ItemID); err != nil {
		return
	}
	if err = WriteSignedByte(w, v.Count); err != nil {
		return
	}
	return WriteNBT(w, v.NBT)
}

func ReadSlot(r *FrameReader) (v Slot, err error) {
	if v.Present, err = ReadBoolean(r); err != nil || !v.Present {
		return
	}
	if v.ItemID, err = ReadVarInt(r); err != nil {
		return
	}
	if v.Count, err = ReadSignedByte(r); err != nil {
		return
	}
	v.NBT, err = ReadNBT(r)
	return
}

// Ingredient is the set of stacks accepted by one recipe input.
type Ingredient []Slot

func WriteIngredient(w io.Writer, v Ingredient) error {
	return WritePrefixedArray(w, v, WriteSlot)
}

func ReadIngredient(r *FrameReader) (Ingredient, error) {
	return ReadPrefixedArray(r, ReadSlot)
}
