package packet

import (
	"errors"
	"io"
)

// @gen:r,w,cb=0x05
type AcknowledgeBlockChange struct {
	Sequence int32 `field:"VarInt"`
}

// @gen:r,w,cb=0x06
type SetBlockDestroyStage struct {
	EntityID     int32    `field:"VarInt"`
	Location     Position `field:"Position"`
	DestroyStage int8     `field:"SignedByte"`
}

// @gen:r,w,cb=0x07
type BlockEntityData struct {
	Location Position `field:"Position"`
	Type     int32    `field:"VarInt"`
	Data     NBT      `field:"NBT"`
}

// @gen:r,w,cb=0x08
type BlockAction struct {
	Location    Position `field:"Position"`
	ActionID    byte     `field:"Byte"`
	ActionParam byte     `field:"Byte"`
	BlockType   int32    `field:"VarInt"`
}

// @gen:r,w,cb=0x09
type BlockUpdate struct {
	Location Position   `field:"Position"`
	State    BlockState `field:"BlockState"`
}

// ExplosionRecord is a destroyed block, as an offset from the explosion
// center.
type ExplosionRecord struct {
	X, Y, Z int8
}

func writeExplosionRecord(w io.Writer, v ExplosionRecord) error {
	_, err := w.Write([]byte{byte(v.X), byte(v.Y), byte(v.Z)})
	return err
}

func readExplosionRecord(r *FrameReader) (v ExplosionRecord, err error) {
	b, err := r.Read(3)
	if err != nil {
		return
	}
	return ExplosionRecord{X: int8(b[0]), Y: int8(b[1]), Z: int8(b[2])}, nil
}

// @gen:r,w,cb=0x1B
type Explosion struct {
	X          float32           `field:"Float"`
	Y          float32           `field:"Float"`
	Z          float32           `field:"Float"`
	Strength   float32           `field:"Float"`
	Records    []ExplosionRecord `field:"PrefixedArray" write:"writeExplosionRecord" read:"readExplosionRecord"`
	PlayerVelX float32           `field:"Float"`
	PlayerVelY float32           `field:"Float"`
	PlayerVelZ float32           `field:"Float"`
}

// @gen:r,w,cb=0x1C
type UnloadChunk struct {
	ChunkX int32 `field:"Int"`
	ChunkZ int32 `field:"Int"`
}

// @gen:r,w,cb=0x1D
type GameEvent struct {
	Event GameEventType `field:"ByteEnum" args:"GameEventTypes"`
	Value float32       `field:"Float"`
}

// @gen:r,w,cb=0x1F
type InitializeWorldBorder struct {
	X                      float64 `field:"Double"`
	Z                      float64 `field:"Double"`
	OldDiameter            float64 `field:"Double"`
	NewDiameter            float64 `field:"Double"`
	Speed                  int64   `field:"VarLong"`
	PortalTeleportBoundary int32   `field:"VarInt"`
	WarningBlocks          int32   `field:"VarInt"`
	WarningTime            int32   `field:"VarInt"`
}

// BlockEntity is a block entity sent along with its chunk.
type BlockEntity struct {
	PackedXZ byte // section-relative x<<4 | z
	Y        int16
	Type     int32
	Data     NBT
}

func (b BlockEntity) X() uint8 { return b.PackedXZ >> 4 }
func (b BlockEntity) Z() uint8 { return b.PackedXZ & 0x0F }

func writeBlockEntity(w io.Writer, v BlockEntity) (err error) {
	if err = WriteByte(w, v.PackedXZ); err != nil {
		return
	}
	if err = WriteShort(w, v.Y); err != nil {
		return
	}
	if err = WriteVarInt(w, v.Type); err != nil {
		return
	}
	return WriteNBT(w, v.Data)
}

func readBlockEntity(r *FrameReader) (v BlockEntity, err error) {
	if v.PackedXZ, err = ReadByte(r); err != nil {
		return
	}
	if v.Y, err = ReadShort(r); err != nil {
		return
	}
	if v.Type, err = ReadVarInt(r); err != nil {
		return
	}
	v.Data, err = ReadNBT(r)
	return
}

// LightData holds the light of a chunk column. Each array is 2048 bytes of
// nibbles for one section whose bit is set in the matching mask.
type LightData struct {
	TrustEdges          bool
	SkyLightMask        BitSet
	BlockLightMask      BitSet
	EmptySkyLightMask   BitSet
	EmptyBlockLightMask BitSet
	SkyLight            [][]byte
	BlockLight          [][]byte
}

func writeLightData(w io.Writer, v LightData) (err error) {
	if err = WriteBoolean(w, v.TrustEdges); err != nil {
		return
	}
	for _, m := range []BitSet{v.SkyLightMask, v.BlockLightMask, v.EmptySkyLightMask, v.EmptyBlockLightMask} {
		if err = WriteBitSet(w, m); err != nil {
			return
		}
	}
	if err = WritePrefixedArray(w, v.SkyLight, WriteByteArray); err != nil {
		return
	}
	return WritePrefixedArray(w, v.BlockLight, WriteByteArray)
}

func readLightData(r *FrameReader) (v LightData, err error) {
	if v.TrustEdges, err = ReadBoolean(r); err != nil {
		return
	}
	for _, m := range []*BitSet{&v.SkyLightMask, &v.BlockLightMask, &v.EmptySkyLightMask, &v.EmptyBlockLightMask} {
		if *m, err = ReadBitSet(r); err != nil {
			return
		}
	}
	if v.SkyLight, err = ReadPrefixedArray(r, ReadByteArray); err != nil {
		return
	}
	v.BlockLight, err = ReadPrefixedArray(r, ReadByteArray)
	return
}

// @gen:r,w,cb=0x21
type ChunkDataAndUpdateLight struct {
	ChunkX        int32         `field:"Int"`
	ChunkZ        int32         `field:"Int"`
	Heightmaps    NBT           `field:"NBT"`
	Data          []byte        `field:"ByteArray"`
	BlockEntities []BlockEntity `field:"PrefixedArray" write:"writeBlockEntity" read:"readBlockEntity"`
	Light         LightData     `write:"writeLightData" read:"readLightData"`
}

// @gen:r,w,cb=0x22
type WorldEvent struct {
	Event                 int32    `field:"Int"`
	Location              Position `field:"Position"`
	Data                  int32    `field:"Int"`
	DisableRelativeVolume bool     `field:"Boolean"`
}

// SpawnParticle spawns Count particles around a point. The options are
// written last, after the particle kind and placement.
//
// @gen:cb=0x23
type SpawnParticle struct {
	Options      ParticleOptions
	LongDistance bool
	X, Y, Z      float64
	OffsetX      float32
	OffsetY      float32
	OffsetZ      float32
	MaxSpeed     float32
	Count        int32
}

func (p SpawnParticle) Encode(w io.Writer) (err error) {
	if p.Options == nil {
		return errors.New("particle options are required")
	}
	if err = WriteVarIntEnum(w, p.Options.ParticleKind(), ParticleKinds); err != nil {
		return
	}
	if err = WriteBoolean(w, p.LongDistance); err != nil {
		return
	}
	for _, d := range []float64{p.X, p.Y, p.Z} {
		if err = WriteDouble(w, d); err != nil {
			return
		}
	}
	for _, f := range []float32{p.OffsetX, p.OffsetY, p.OffsetZ, p.MaxSpeed} {
		if err = WriteFloat(w, f); err != nil {
			return
		}
	}
	if err = WriteInt(w, p.Count); err != nil {
		return
	}
	return WriteParticleOptions(w, p.Options)
}

func (p *SpawnParticle) Decode(r *FrameReader) (err error) {
	kind, err := ReadVarIntEnum(r, ParticleKinds)
	if err != nil {
		return
	}
	if p.LongDistance, err = ReadBoolean(r); err != nil {
		return
	}
	for _, d := range []*float64{&p.X, &p.Y, &p.Z} {
		if *d, err = ReadDouble(r); err != nil {
			return
		}
	}
	for _, f := range []*float32{&p.OffsetX, &p.OffsetY, &p.OffsetZ, &p.MaxSpeed} {
		if *f, err = ReadFloat(r); err != nil {
			return
		}
	}
	if p.Count, err = ReadInt(r); err != nil {
		return
	}
	p.Options, err = ReadParticleOptions(r, kind)
	return
}

// @gen:r,w,cb=0x24
type UpdateLight struct {
	ChunkX int32     `field:"VarInt"`
	ChunkZ int32     `field:"VarInt"`
	Light  LightData `write:"writeLightData" read:"readLightData"`
}

type MapIcon struct {
	Type        int32
	X, Z        int8
	Direction   int8 // 0..15
	DisplayName Optional[Chat]
}

func writeMapIcon(w io.Writer, v MapIcon) (err error) {
	if err = WriteVarInt(w, v.Type); err != nil {
		return
	}
	if _, err = w.Write([]byte{byte(v.X), byte(v.Z), byte(v.Direction)}); err != nil {
		return
	}
	return WriteOptional(w, v.DisplayName, WriteChat)
}

func readMapIcon(r *FrameReader) (v MapIcon, err error) {
	if v.Type, err = ReadVarInt(r); err != nil {
		return
	}
	b, err := r.Read(3)
	if err != nil {
		return
	}
	v.X, v.Z, v.Direction = int8(b[0]), int8(b[1]), int8(b[2])
	v.DisplayName, err = ReadOptional(r, ReadChat)
	return
}

func writeMapIcons(w io.Writer, v []MapIcon) error {
	return WritePrefixedArray(w, v, writeMapIcon)
}

func readMapIcons(r *FrameReader) ([]MapIcon, error) {
	return ReadPrefixedArray(r, readMapIcon)
}

// MapPatch is a rectangle of updated map colors.
type MapPatch struct {
	Columns, Rows uint8
	X, Z          uint8
	Data          []byte
}

var ErrEmptyMapPatch = errors.New("map patch must have at least one column")

// writeMapPatch writes a zero column count for an absent patch.
func writeMapPatch(w io.Writer, v Optional[MapPatch]) (err error) {
	if !v.Exists {
		return WriteByte(w, 0)
	}
	if v.Item.Columns == 0 {
		return ErrEmptyMapPatch
	}
	if _, err = w.Write([]byte{v.Item.Columns, v.Item.Rows, v.Item.X, v.Item.Z}); err != nil {
		return
	}
	return WriteByteArray(w, v.Item.Data)
}

func readMapPatch(r *FrameReader) (v Optional[MapPatch], err error) {
	columns, err := r.ReadByte()
	if err != nil || columns == 0 {
		return
	}
	b, err := r.Read(3)
	if err != nil {
		return
	}
	v = Some(MapPatch{Columns: columns, Rows: b[0], X: b[1], Z: b[2]})
	v.Item.Data, err = ReadByteArray(r)
	return
}

// @gen:r,w,cb=0x26
type MapData struct {
	MapID  int32               `field:"VarInt"`
	Scale  int8                `field:"SignedByte"`
	Locked bool                `field:"Boolean"`
	Icons  Optional[[]MapIcon] `field:"Optional" write:"writeMapIcons" read:"readMapIcons"`
	Patch  Optional[MapPatch]  `write:"writeMapPatch" read:"readMapPatch"`
}

// @gen:r,w,cb=0x2E
type OpenSignEditor struct {
	Location Position `field:"Position"`
}

// @gen:r,w,cb=0x40
type UpdateSectionBlocks struct {
	Section              SectionPosition `field:"SectionPosition"`
	SuppressLightUpdates bool            `field:"Boolean"`
	Blocks               []BlockChange   `field:"PrefixedArray" inner:"BlockChange"`
}

// @gen:r,w,cb=0x44
type SetBorderCenter struct {
	X float64 `field:"Double"`
	Z float64 `field:"Double"`
}

// @gen:r,w,cb=0x45
type SetBorderLerpSize struct {
	OldDiameter float64 `field:"Double"`
	NewDiameter float64 `field:"Double"`
	Speed       int64   `field:"VarLong"`
}

// @gen:r,w,cb=0x46
type SetBorderSize struct {
	Diameter float64 `field:"Double"`
}

// @gen:r,w,cb=0x47
type SetBorderWarningDelay struct {
	WarningTime int32 `field:"VarInt"`
}

// @gen:r,w,cb=0x48
type SetBorderWarningDistance struct {
	WarningBlocks int32 `field:"VarInt"`
}

// @gen:r,w,cb=0x4B
type SetCenterChunk struct {
	ChunkX int32 `field:"VarInt"`
	ChunkZ int32 `field:"VarInt"`
}

// @gen:r,w,cb=0x4C
type SetRenderDistance struct {
	ViewDistance int32 `field:"VarInt"`
}

// @gen:r,w,cb=0x4D
type SetDefaultSpawnPosition struct {
	Location Position `field:"Position"`
	Angle    float32  `field:"Float"`
}

// @gen:r,w,cb=0x5A
type SetSimulationDistance struct {
	SimulationDistance int32 `field:"VarInt"`
}

// @gen:r,w,cb=0x5C
type UpdateTime struct {
	WorldAge  int64 `field:"Long"`
	TimeOfDay int64 `field:"Long"`
}

// @gen:r,w,cb=0x64
type TagQueryResponse struct {
	TransactionID int32 `field:"VarInt"`
	Data          NBT   `field:"NBT"`
}

// @gen:r,w,sb=0x01
type QueryBlockEntityTag struct {
	TransactionID int32    `field:"VarInt"`
	Location      Position `field:"Position"`
}

// @gen:r,w,sb=0x0F
type QueryEntityTag struct {
	TransactionID int32 `field:"VarInt"`
	EntityID      int32 `field:"VarInt"`
}

// @gen:r,w,sb=0x11
type JigsawGenerate struct {
	Location    Position `field:"Position"`
	Levels      int32    `field:"VarInt"`
	KeepJigsaws bool     `field:"Boolean"`
}

// @gen:r,w,sb=0x1D
type PlayerAction struct {
	Status   PlayerActionStatus `field:"VarIntEnum" args:"PlayerActionStatuses"`
	Location Position           `field:"Position"`
	Face     BlockFace          `field:"ByteEnum" args:"BlockFaces"`
	Sequence int32              `field:"VarInt"`
}

// Command block flags.
const (
	CommandBlockTrackOutput byte = 0x01
	CommandBlockConditional byte = 0x02
	CommandBlockAutomatic   byte = 0x04
)

// @gen:r,w,sb=0x29
type ProgramCommandBlock struct {
	Location Position         `field:"Position"`
	Command  string           `field:"String"`
	Mode     CommandBlockMode `field:"VarIntEnum" args:"CommandBlockModes"`
	Flags    byte             `field:"Byte"`
}

// @gen:r,w,sb=0x2A
type ProgramCommandBlockMinecart struct {
	EntityID    int32  `field:"VarInt"`
	Command     string `field:"String"`
	TrackOutput bool   `field:"Boolean"`
}

// @gen:r,w,sb=0x2C
type ProgramJigsawBlock struct {
	Location   Position   `field:"Position"`
	Name       Identifier `field:"Identifier"`
	Target     Identifier `field:"Identifier"`
	Pool       Identifier `field:"Identifier"`
	FinalState string     `field:"String"`
	JointType  string     `field:"String"`
}

// Structure block flags.
const (
	StructureIgnoreEntities  byte = 0x01
	StructureShowAir         byte = 0x02
	StructureShowBoundingBox byte = 0x04
)

// @gen:r,w,sb=0x2D
type ProgramStructureBlock struct {
	Location  Position             `field:"Position"`
	Action    StructureBlockAction `field:"VarIntEnum" args:"StructureBlockActions"`
	Mode      StructureBlockMode   `field:"VarIntEnum" args:"StructureBlockModes"`
	Name      string               `field:"String"`
	OffsetX   int8                 `field:"SignedByte"`
	OffsetY   int8                 `field:"SignedByte"`
	OffsetZ   int8                 `field:"SignedByte"`
	SizeX     int8                 `field:"SignedByte"`
	SizeY     int8                 `field:"SignedByte"`
	SizeZ     int8                 `field:"SignedByte"`
	Mirror    Mirror               `field:"VarIntEnum" args:"Mirrors"`
	Rotation  Rotation             `field:"VarIntEnum" args:"Rotations"`
	Metadata  string               `field:"BoundedString" args:"128"`
	Integrity float32              `field:"Float"`
	Seed      int64                `field:"VarLong"`
	Flags     byte                 `field:"Byte"`
}

// SignLineMax bounds the length of one line of sign text.
const SignLineMax = 384

func writeSignLine(w io.Writer, v string) error {
	return WriteBoundedString(w, v, SignLineMax)
}

func readSignLine(r *FrameReader) (string, error) {
	return ReadBoundedString(r, SignLineMax)
}

// @gen:r,w,sb=0x2E
type UpdateSign struct {
	Location Position `field:"Position"`
	Lines    []string `field:"FixedArray" write:"writeSignLine" read:"readSignLine" args:"4"`
}

// @gen:r,w,sb=0x31
type UseItemOn struct {
	Hand        Hand      `field:"VarIntEnum" args:"Hands"`
	Location    Position  `field:"Position"`
	Face        BlockFace `field:"VarIntEnum" args:"BlockFaces"`
	CursorX     float32   `field:"Float"`
	CursorY     float32   `field:"Float"`
	CursorZ     float32   `field:"Float"`
	InsideBlock bool      `field:"Boolean"`
	Sequence    int32     `field:"VarInt"`
}
