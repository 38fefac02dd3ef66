package packet

import (
	"fmt"
	"io"

	"github.com/google/uuid"
)

// metadataEnd terminates an entity metadata list in place of an index.
const metadataEnd byte = 0xFF

// EntityDataValue is one typed entity metadata value. The concrete type
// selects the serializer id written before the value.
type EntityDataValue interface {
	entityDataType() int32
}

type (
	DataByte            int8
	DataVarInt          int32
	DataFloat           float32
	DataString          string
	DataChat            Chat
	DataOptChat         Optional[Chat]
	DataSlot            Slot
	DataBoolean         bool
	DataRotation        struct{ X, Y, Z float32 }
	DataPosition        Position
	DataOptPosition     Optional[Position]
	DataDirection       BlockFace
	DataOptUUID         Optional[uuid.UUID]
	DataBlockState      BlockState // 0 (air) means absent
	DataNBT             NBT
	DataParticle        struct{ Particle ParticleOptions }
	DataVillager        VillagerData
	DataOptVarInt       Optional[int32]
	DataPose            Pose
	DataCatVariant      CatVariant
	DataFrogVariant     FrogVariant
	DataOptGlobalPos    Optional[GlobalPos]
	DataPaintingVariant int32
)

func (DataByte) entityDataType() int32            { return 0 }
func (DataVarInt) entityDataType() int32          { return 1 }
func (DataFloat) entityDataType() int32           { return 2 }
func (DataString) entityDataType() int32          { return 3 }
func (DataChat) entityDataType() int32            { return 4 }
func (DataOptChat) entityDataType() int32         { return 5 }
func (DataSlot) entityDataType() int32            { return 6 }
func (DataBoolean) entityDataType() int32         { return 7 }
func (DataRotation) entityDataType() int32        { return 8 }
func (DataPosition) entityDataType() int32        { return 9 }
func (DataOptPosition) entityDataType() int32     { return 10 }
func (DataDirection) entityDataType() int32       { return 11 }
func (DataOptUUID) entityDataType() int32         { return 12 }
func (DataBlockState) entityDataType() int32      { return 13 }
func (DataNBT) entityDataType() int32             { return 14 }
func (DataParticle) entityDataType() int32        { return 15 }
func (DataVillager) entityDataType() int32        { return 16 }
func (DataOptVarInt) entityDataType() int32       { return 17 }
func (DataPose) entityDataType() int32            { return 18 }
func (DataCatVariant) entityDataType() int32      { return 19 }
func (DataFrogVariant) entityDataType() int32     { return 20 }
func (DataOptGlobalPos) entityDataType() int32    { return 21 }
func (DataPaintingVariant) entityDataType() int32 { return 22 }

type VillagerData struct {
	Type       VillagerType
	Profession VillagerProfession
	Level      int32
}

// GlobalPos is a block position in a named dimension.
type GlobalPos struct {
	Dimension Identifier
	Pos       Position
}

func writeGlobalPos(w io.Writer, v GlobalPos) (err error) {
	if err = WriteIdentifier(w, v.Dimension); err != nil {
		return
	}
	return WritePosition(w, v.Pos)
}

func readGlobalPos(r *FrameReader) (v GlobalPos, err error) {
	if v.Dimension, err = ReadIdentifier(r); err != nil {
		return
	}
	v.Pos, err = ReadPosition(r)
	return
}

func WriteEntityDataValue(w io.Writer, v EntityDataValue) (err error) {
	if err = WriteVarInt(w, v.entityDataType()); err != nil {
		return
	}

	switch d := v.(type) {
	case DataByte:
		return WriteSignedByte(w, int8(d))
	case DataVarInt:
		return WriteVarInt(w, int32(d))
	case DataFloat:
		return WriteFloat(w, float32(d))
	case DataString:
		return WriteString(w, string(d))
	case DataChat:
		return WriteChat(w, Chat(d))
	case DataOptChat:
		return WriteOptional(w, Optional[Chat](d), WriteChat)
	case DataSlot:
		return WriteSlot(w, Slot(d))
	case DataBoolean:
		return WriteBoolean(w, bool(d))
	case DataRotation:
		for _, f := range []float32{d.X, d.Y, d.Z} {
			if err = WriteFloat(w, f); err != nil {
				return
			}
		}
		return nil
	case DataPosition:
		return WritePosition(w, Position(d))
	case DataOptPosition:
		return WriteOptional(w, Optional[Position](d), WritePosition)
	case DataDirection:
		return WriteVarIntEnum(w, BlockFace(d), BlockFaces)
	case DataOptUUID:
		return WriteOptional(w, Optional[uuid.UUID](d), WriteUUID)
	case DataBlockState:
		return WriteVarInt(w, int32(d))
	case DataNBT:
		return WriteNBT(w, NBT(d))
	case DataParticle:
		return WriteParticle(w, d.Particle)
	case DataVillager:
		if err = WriteVarIntEnum(w, d.Type, VillagerTypes); err != nil {
			return
		}
		if err = WriteVarIntEnum(w, d.Profession, VillagerProfessions); err != nil {
			return
		}
		return WriteVarInt(w, d.Level)
	case DataOptVarInt:
		return WriteOptionalUnsignedInt(w, Optional[int32](d))
	case DataPose:
		return WriteVarIntEnum(w, Pose(d), Poses)
	case DataCatVariant:
		return WriteVarIntEnum(w, CatVariant(d), CatVariants)
	case DataFrogVariant:
		return WriteVarIntEnum(w, FrogVariant(d), FrogVariants)
	case DataOptGlobalPos:
		return WriteOptional(w, Optional[GlobalPos](d), writeGlobalPos)
	case DataPaintingVariant:
		return WriteVarInt(w, int32(d))
	}
	return fmt.Errorf("unsupported entity data value %T", v)
}

func ReadEntityDataValue(r *FrameReader) (v EntityDataValue, err error) {
	typ, err := ReadVarInt(r)
	if err != nil {
		return
	}

	switch typ {
	case 0:
		var b int8
		b, err = ReadSignedByte(r)
		v = DataByte(b)
	case 1:
		var n int32
		n, err = ReadVarInt(r)
		v = DataVarInt(n)
	case 2:
		var f float32
		f, err = ReadFloat(r)
		v = DataFloat(f)
	case 3:
		var s string
		s, err = ReadString(r)
		v = DataString(s)
	case 4:
		var c Chat
		c, err = ReadChat(r)
		v = DataChat(c)
	case 5:
		var c Optional[Chat]
		c, err = ReadOptional(r, ReadChat)
		v = DataOptChat(c)
	case 6:
		var s Slot
		s, err = ReadSlot(r)
		v = DataSlot(s)
	case 7:
		var b bool
		b, err = ReadBoolean(r)
		v = DataBoolean(b)
	case 8:
		var d DataRotation
		for _, f := range []*float32{&d.X, &d.Y, &d.Z} {
			if *f, err = ReadFloat(r); err != nil {
				return
			}
		}
		v = d
	case 9:
		var p Position
		p, err = ReadPosition(r)
		v = DataPosition(p)
	case 10:
		var p Optional[Position]
		p, err = ReadOptional(r, ReadPosition)
		v = DataOptPosition(p)
	case 11:
		var d BlockFace
		d, err = ReadVarIntEnum(r, BlockFaces)
		v = DataDirection(d)
	case 12:
		var u Optional[uuid.UUID]
		u, err = ReadOptional(r, ReadUUID)
		v = DataOptUUID(u)
	case 13:
		var n int32
		n, err = ReadVarInt(r)
		v = DataBlockState(n)
	case 14:
		var n NBT
		n, err = ReadNBT(r)
		v = DataNBT(n)
	case 15:
		var p ParticleOptions
		p, err = ReadParticle(r)
		v = DataParticle{Particle: p}
	case 16:
		var d DataVillager
		if d.Type, err = ReadVarIntEnum(r, VillagerTypes); err != nil {
			return
		}
		if d.Profession, err = ReadVarIntEnum(r, VillagerProfessions); err != nil {
			return
		}
		d.Level, err = ReadVarInt(r)
		v = d
	case 17:
		var n Optional[int32]
		n, err = ReadOptionalUnsignedInt(r)
		v = DataOptVarInt(n)
	case 18:
		var p Pose
		p, err = ReadVarIntEnum(r, Poses)
		v = DataPose(p)
	case 19:
		var c CatVariant
		c, err = ReadVarIntEnum(r, CatVariants)
		v = DataCatVariant(c)
	case 20:
		var f FrogVariant
		f, err = ReadVarIntEnum(r, FrogVariants)
		v = DataFrogVariant(f)
	case 21:
		var g Optional[GlobalPos]
		g, err = ReadOptional(r, readGlobalPos)
		v = DataOptGlobalPos(g)
	case 22:
		var n int32
		n, err = ReadVarInt(r)
		v = DataPaintingVariant(n)
	default:
		err = unknown("entity data type", typ)
	}
	if err != nil {
		v = nil
	}
	return
}

// EntityDataItem is one indexed metadata value.
type EntityDataItem struct {
	Index byte
	Value EntityDataValue
}

// EntityMetadata is a set of metadata values keyed by index. The slice
// keeps wire order; indices are unique.
type EntityMetadata []EntityDataItem

// Get returns the value stored under index.
func (m EntityMetadata) Get(index byte) (EntityDataValue, bool) {
	for _, it := range m {
		if it.Index == index {
			return it.Value, true
		}
	}
	return nil, false
}

// Set stores v under index, replacing any previous value.
func (m EntityMetadata) Set(index byte, v EntityDataValue) EntityMetadata {
	for i := range m {
		if m[i].Index == index {
			m[i].Value = v
			return m
		}
	}
	return append(m, EntityDataItem{Index: index, Value: v})
}

func WriteEntityMetadata(w io.Writer, v EntityMetadata) (err error) {
	for _, it := range v {
		if it.Index == metadataEnd {
			return fmt.Errorf("entity data index %d is reserved", metadataEnd)
		}
		if err = WriteByte(w, it.Index); err != nil {
			return
		}
		if err = WriteEntityDataValue(w, it.Value); err != nil {
			return
		}
	}
	return WriteByte(w, metadataEnd)
}

func ReadEntityMetadata(r *FrameReader) (v EntityMetadata, err error) {
	v = EntityMetadata{}
	for {
		var index byte
		if index, err = r.ReadByte(); err != nil {
			return nil, err
		}
		if index == metadataEnd {
			return v, nil
		}
		if _, dup := v.Get(index); dup {
			return nil, fmt.Errorf("duplicate entity data index %d", index)
		}

		var value EntityDataValue
		if value, err = ReadEntityDataValue(r); err != nil {
			return nil, err
		}
		v = append(v, EntityDataItem{Index: index, Value: value})
	}
}
