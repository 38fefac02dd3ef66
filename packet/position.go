package packet

import "io"

// Bit layouts of the packed coordinate fields. These are fixed by the
// protocol.
const (
	positionXBits = 26
	positionZBits = 26
	positionYBits = 12

	sectionXBits = 22
	sectionZBits = 22
	sectionYBits = 20

	blockLocalBits = 4
)

func mask(bits uint) uint64 {
	return 1<<bits - 1
}

// signExtend interprets the low bits of v as a two's complement integer.
func signExtend(v uint64, bits uint) int64 {
	shift := 64 - bits
	return int64(v<<shift) >> shift
}

func (p Position) Pack() uint64 {
	return (uint64(p.X)&mask(positionXBits))<<(positionZBits+positionYBits) |
		(uint64(p.Z)&mask(positionZBits))<<positionYBits |
		uint64(p.Y)&mask(positionYBits)
}

func UnpackPosition(packed uint64) Position {
	return Position{
		X: int32(signExtend(packed>>(positionZBits+positionYBits), positionXBits)),
		Z: int32(signExtend(packed>>positionYBits, positionZBits)),
		Y: int16(signExtend(packed, positionYBits)),
	}
}

// SectionPosition addresses a 16x16x16 chunk section.
// Serialized as X (22 bits), Z (22 bits), Y (20 bits) from the high end.
type SectionPosition struct {
	X int32
	Y int32
	Z int32
}

func (p SectionPosition) Pack() uint64 {
	return (uint64(p.X)&mask(sectionXBits))<<(sectionZBits+sectionYBits) |
		(uint64(p.Z)&mask(sectionZBits))<<sectionYBits |
		uint64(p.Y)&mask(sectionYBits)
}

func UnpackSectionPosition(packed uint64) SectionPosition {
	return SectionPosition{
		X: int32(signExtend(packed>>(sectionZBits+sectionYBits), sectionXBits)),
		Z: int32(signExtend(packed>>sectionYBits, sectionZBits)),
		Y: int32(signExtend(packed, sectionYBits)),
	}
}

func WriteSectionPosition(w io.Writer, v SectionPosition) error {
	return WriteLong(w, int64(v.Pack()))
}

func ReadSectionPosition(r *FrameReader) (v SectionPosition, err error) {
	packed, err := ReadLong(r)
	if err != nil {
		return
	}
	return UnpackSectionPosition(uint64(packed)), nil
}

// BlockState is a global block state id.
type BlockState int32

func WriteBlockState(w io.Writer, v BlockState) error {
	return WriteVarInt(w, int32(v))
}

func ReadBlockState(r *FrameReader) (BlockState, error) {
	v, err := ReadVarInt(r)
	return BlockState(v), err
}

// BlockChange is one entry of a section update. X, Y and Z are relative to
// the section origin and range over 0..15.
type BlockChange struct {
	State   BlockState
	X, Y, Z uint8
}

func (c BlockChange) Pack() int64 {
	local := (uint64(c.X)&mask(blockLocalBits))<<(2*blockLocalBits) |
		(uint64(c.Z)&mask(blockLocalBits))<<blockLocalBits |
		uint64(c.Y)&mask(blockLocalBits)
	return int64(uint64(c.State)<<(3*blockLocalBits) | local)
}

func UnpackBlockChange(packed int64) BlockChange {
	u := uint64(packed)
	return BlockChange{
		State: BlockState(u >> (3 * blockLocalBits)),
		X:     uint8(u >> (2 * blockLocalBits) & mask(blockLocalBits)),
		Z:     uint8(u >> blockLocalBits & mask(blockLocalBits)),
		Y:     uint8(u & mask(blockLocalBits)),
	}
}

func WriteBlockChange(w io.Writer, v BlockChange) error {
	return WriteVarLong(w, v.Pack())
}

func ReadBlockChange(r *FrameReader) (v BlockChange, err error) {
	packed, err := ReadVarLong(r)
	if err != nil {
		return
	}
	return UnpackBlockChange(packed), nil
}
