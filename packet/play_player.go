package packet

import (
	"fmt"
	"io"

	"github.com/google/uuid"
)

// noGameMode is the byte standing for an absent previous game mode.
const noGameMode byte = 0xFF

// WritePreviousGameMode writes the game mode id as a byte, or -1 when
// there is none.
func WritePreviousGameMode(w io.Writer, v Optional[GameMode]) error {
	if !v.Exists {
		return WriteByte(w, noGameMode)
	}
	return WriteByteEnum(w, v.Item, GameModes)
}

// ReadPreviousGameMode peeks at the next byte: -1 is consumed as absent,
// anything else is decoded as a game mode.
func ReadPreviousGameMode(r *FrameReader) (v Optional[GameMode], err error) {
	b, err := r.PeekByte()
	if err != nil {
		return
	}
	if b == noGameMode {
		_, err = r.ReadByte()
		return
	}

	mode, err := ReadByteEnum(r, GameModes)
	if err != nil {
		return
	}
	return Some(mode), nil
}

// @gen:r,w,cb=0x0B
type ChangeDifficulty struct {
	Difficulty Difficulty `field:"ByteEnum" args:"Difficulties"`
	Locked     bool       `field:"Boolean"`
}

// @gen:r,w,cb=0x16
type PluginMessage struct {
	Channel Identifier `field:"Identifier"`
	Data    []byte     `field:"RestBytes"`
}

// @gen:r,w,cb=0x19
type Disconnect struct {
	Reason Chat `field:"Chat"`
}

// @gen:r,w,cb=0x20
type KeepAlive struct {
	ID int64 `field:"Long"`
}

// JoinGame starts the play state.
//
// @gen:r,w,cb=0x25
type JoinGame struct {
	EntityID            int32               `field:"Int"`
	Hardcore            bool                `field:"Boolean"`
	GameMode            GameMode            `field:"ByteEnum" args:"GameModes"`
	PreviousGameMode    Optional[GameMode]  `field:"PreviousGameMode"`
	DimensionNames      []Identifier        `field:"PrefixedArray" inner:"Identifier"`
	RegistryCodec       NBT                 `field:"NBT"`
	DimensionType       Identifier          `field:"Identifier"`
	DimensionName       Identifier          `field:"Identifier"`
	HashedSeed          int64               `field:"Long"`
	MaxPlayers          int32               `field:"VarInt"`
	ViewDistance        int32               `field:"VarInt"`
	SimulationDistance  int32               `field:"VarInt"`
	ReducedDebugInfo    bool                `field:"Boolean"`
	EnableRespawnScreen bool                `field:"Boolean"`
	Debug               bool                `field:"Boolean"`
	Flat                bool                `field:"Boolean"`
	DeathLocation       Optional[GlobalPos] `field:"Optional" write:"writeGlobalPos" read:"readGlobalPos"`
}

// @gen:r,w,cb=0x2B
type MoveVehicle struct {
	X     float64 `field:"Double"`
	Y     float64 `field:"Double"`
	Z     float64 `field:"Double"`
	Yaw   float32 `field:"Float"`
	Pitch float32 `field:"Float"`
}

// @gen:r,w,cb=0x2F
type Ping struct {
	ID int32 `field:"Int"`
}

// Player ability flags.
const (
	AbilityInvulnerable byte = 0x01
	AbilityFlying       byte = 0x02
	AbilityAllowFlying  byte = 0x04
	AbilityInstantBreak byte = 0x08
)

// @gen:r,w,cb=0x31
type PlayerAbilities struct {
	Flags               byte    `field:"Byte"`
	FlyingSpeed         float32 `field:"Float"`
	FieldOfViewModifier float32 `field:"Float"`
}

// @gen:r,w,cb=0x34
type EndCombat struct {
	Duration int32 `field:"VarInt"`
	EntityID int32 `field:"Int"`
}

// @gen:r,w,cb=0x35
type EnterCombat struct{}

// @gen:r,w,cb=0x36
type CombatDeath struct {
	PlayerID int32 `field:"VarInt"`
	EntityID int32 `field:"Int"`
	Message  Chat  `field:"Chat"`
}

// PlayerInfoAdd describes a player joining the tab list.
type PlayerInfoAdd struct {
	UUID        uuid.UUID
	Name        string
	Properties  []ProfileProperty
	GameMode    GameMode
	Ping        int32
	DisplayName Optional[Chat]
	Key         Optional[PlayerKey]
}

type PlayerGameMode struct {
	UUID     uuid.UUID
	GameMode GameMode
}

type PlayerLatency struct {
	UUID uuid.UUID
	Ping int32
}

type PlayerDisplayName struct {
	UUID        uuid.UUID
	DisplayName Optional[Chat]
}

// PlayerInfoAction is one tab list update applied to a list of players.
type PlayerInfoAction interface {
	playerInfoAction() int32
}

type (
	AddPlayers         []PlayerInfoAdd
	UpdateGameModes    []PlayerGameMode
	UpdateLatencies    []PlayerLatency
	UpdateDisplayNames []PlayerDisplayName
	RemovePlayers      []uuid.UUID
)

func (AddPlayers) playerInfoAction() int32         { return 0 }
func (UpdateGameModes) playerInfoAction() int32    { return 1 }
func (UpdateLatencies) playerInfoAction() int32    { return 2 }
func (UpdateDisplayNames) playerInfoAction() int32 { return 3 }
func (RemovePlayers) playerInfoAction() int32      { return 4 }

func writePlayerInfoAdd(w io.Writer, v PlayerInfoAdd) (err error) {
	if err = WriteUUID(w, v.UUID); err != nil {
		return
	}
	if err = WriteBoundedString(w, v.Name, 16); err != nil {
		return
	}
	if err = WritePrefixedArray(w, v.Properties, writeProfileProperty); err != nil {
		return
	}
	if err = WriteVarIntEnum(w, v.GameMode, GameModes); err != nil {
		return
	}
	if err = WriteVarInt(w, v.Ping); err != nil {
		return
	}
	if err = WriteOptional(w, v.DisplayName, WriteChat); err != nil {
		return
	}
	return WriteOptional(w, v.Key, writePlayerKey)
}

func readPlayerInfoAdd(r *FrameReader) (v PlayerInfoAdd, err error) {
	if v.UUID, err = ReadUUID(r); err != nil {
		return
	}
	if v.Name, err = ReadBoundedString(r, 16); err != nil {
		return
	}
	if v.Properties, err = ReadPrefixedArray(r, readProfileProperty); err != nil {
		return
	}
	if v.GameMode, err = ReadVarIntEnum(r, GameModes); err != nil {
		return
	}
	if v.Ping, err = ReadVarInt(r); err != nil {
		return
	}
	if v.DisplayName, err = ReadOptional(r, ReadChat); err != nil {
		return
	}
	v.Key, err = ReadOptional(r, readPlayerKey)
	return
}

func writePlayerGameMode(w io.Writer, v PlayerGameMode) (err error) {
	if err = WriteUUID(w, v.UUID); err != nil {
		return
	}
	return WriteVarIntEnum(w, v.GameMode, GameModes)
}

func readPlayerGameMode(r *FrameReader) (v PlayerGameMode, err error) {
	if v.UUID, err = ReadUUID(r); err != nil {
		return
	}
	v.GameMode, err = ReadVarIntEnum(r, GameModes)
	return
}

func writePlayerLatency(w io.Writer, v PlayerLatency) (err error) {
	if err = WriteUUID(w, v.UUID); err != nil {
		return
	}
	return WriteVarInt(w, v.Ping)
}

func readPlayerLatency(r *FrameReader) (v PlayerLatency, err error) {
	if v.UUID, err = ReadUUID(r); err != nil {
		return
	}
	v.Ping, err = ReadVarInt(r)
	return
}

func writePlayerDisplayName(w io.Writer, v PlayerDisplayName) (err error) {
	if err = WriteUUID(w, v.UUID); err != nil {
		return
	}
	return WriteOptional(w, v.DisplayName, WriteChat)
}

func readPlayerDisplayName(r *FrameReader) (v PlayerDisplayName, err error) {
	if v.UUID, err = ReadUUID(r); err != nil {
		return
	}
	v.DisplayName, err = ReadOptional(r, ReadChat)
	return
}

func writePlayerInfoAction(w io.Writer, v PlayerInfoAction) (err error) {
	if v == nil {
		return fmt.Errorf("player info action is required")
	}
	if err = WriteVarInt(w, v.playerInfoAction()); err != nil {
		return
	}

	switch a := v.(type) {
	case AddPlayers:
		return WritePrefixedArray(w, a, writePlayerInfoAdd)
	case UpdateGameModes:
		return WritePrefixedArray(w, a, writePlayerGameMode)
	case UpdateLatencies:
		return WritePrefixedArray(w, a, writePlayerLatency)
	case UpdateDisplayNames:
		return WritePrefixedArray(w, a, writePlayerDisplayName)
	case RemovePlayers:
		return WritePrefixedArray(w, a, WriteUUID)
	}
	return fmt.Errorf("unsupported player info action %T", v)
}

func readPlayerInfoAction(r *FrameReader) (v PlayerInfoAction, err error) {
	action, err := ReadVarInt(r)
	if err != nil {
		return
	}

	switch action {
	case 0:
		var a []PlayerInfoAdd
		a, err = ReadPrefixedArray(r, readPlayerInfoAdd)
		v = AddPlayers(a)
	case 1:
		var a []PlayerGameMode
		a, err = ReadPrefixedArray(r, readPlayerGameMode)
		v = UpdateGameModes(a)
	case 2:
		var a []PlayerLatency
		a, err = ReadPrefixedArray(r, readPlayerLatency)
		v = UpdateLatencies(a)
	case 3:
		var a []PlayerDisplayName
		a, err = ReadPrefixedArray(r, readPlayerDisplayName)
		v = UpdateDisplayNames(a)
	case 4:
		var a []uuid.UUID
		a, err = ReadPrefixedArray(r, ReadUUID)
		v = RemovePlayers(a)
	default:
		return nil, unknown("player info action", action)
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

// @gen:r,w,cb=0x37
type PlayerInfo struct {
	Action PlayerInfoAction `write:"writePlayerInfoAction" read:"readPlayerInfoAction"`
}

// LookAtEntity makes the player face a part of an entity rather than the
// target point.
type LookAtEntity struct {
	EntityID int32
	Anchor   AnchorPoint
}

func writeLookAtEntity(w io.Writer, v LookAtEntity) (err error) {
	if err = WriteVarInt(w, v.EntityID); err != nil {
		return
	}
	return WriteVarIntEnum(w, v.Anchor, AnchorPoints)
}

func readLookAtEntity(r *FrameReader) (v LookAtEntity, err error) {
	if v.EntityID, err = ReadVarInt(r); err != nil {
		return
	}
	v.Anchor, err = ReadVarIntEnum(r, AnchorPoints)
	return
}

// @gen:r,w,cb=0x38
type LookAt struct {
	Anchor  AnchorPoint            `field:"VarIntEnum" args:"AnchorPoints"`
	TargetX float64                `field:"Double"`
	TargetY float64                `field:"Double"`
	TargetZ float64                `field:"Double"`
	Entity  Optional[LookAtEntity] `field:"Optional" write:"writeLookAtEntity" read:"readLookAtEntity"`
}

// Flags marking the fields of SynchronizePlayerPosition that are relative.
const (
	RelativeX     byte = 0x01
	RelativeY     byte = 0x02
	RelativeZ     byte = 0x04
	RelativeYaw   byte = 0x08
	RelativePitch byte = 0x10
)

// @gen:r,w,cb=0x39
type SynchronizePlayerPosition struct {
	X               float64 `field:"Double"`
	Y               float64 `field:"Double"`
	Z               float64 `field:"Double"`
	Yaw             float32 `field:"Float"`
	Pitch           float32 `field:"Float"`
	Flags           byte    `field:"Byte"`
	TeleportID      int32   `field:"VarInt"`
	DismountVehicle bool    `field:"Boolean"`
}

// @gen:r,w,cb=0x3D
type ResourcePack struct {
	URL           string         `field:"String"`
	Hash          string         `field:"BoundedString" args:"40"`
	Forced        bool           `field:"Boolean"`
	PromptMessage Optional[Chat] `field:"Optional" inner:"Chat"`
}

// @gen:r,w,cb=0x3E
type Respawn struct {
	DimensionType    Identifier          `field:"Identifier"`
	DimensionName    Identifier          `field:"Identifier"`
	HashedSeed       int64               `field:"Long"`
	GameMode         GameMode            `field:"ByteEnum" args:"GameModes"`
	PreviousGameMode Optional[GameMode]  `field:"PreviousGameMode"`
	Debug            bool                `field:"Boolean"`
	Flat             bool                `field:"Boolean"`
	CopyMetadata     bool                `field:"Boolean"`
	DeathLocation    Optional[GlobalPos] `field:"Optional" write:"writeGlobalPos" read:"readGlobalPos"`
}

// @gen:r,w,cb=0x42
type ServerData struct {
	MOTD               Optional[Chat]   `field:"Optional" inner:"Chat"`
	Icon               Optional[string] `field:"Optional" inner:"String"`
	PreviewsChat       bool             `field:"Boolean"`
	EnforcesSecureChat bool             `field:"Boolean"`
}

// @gen:r,w,cb=0x4A
type SetHeldItem struct {
	Slot byte `field:"Byte"`
}

// @gen:r,w,cb=0x54
type SetExperience struct {
	ExperienceBar   float32 `field:"Float"`
	Level           int32   `field:"VarInt"`
	TotalExperience int32   `field:"VarInt"`
}

// @gen:r,w,cb=0x55
type SetHealth struct {
	Health         float32 `field:"Float"`
	Food           int32   `field:"VarInt"`
	FoodSaturation float32 `field:"Float"`
}

// @gen:r,w,sb=0x00
type ConfirmTeleportation struct {
	TeleportID int32 `field:"VarInt"`
}

// @gen:r,w,sb=0x02
type ServerboundChangeDifficulty struct {
	Difficulty Difficulty `field:"ByteEnum" args:"Difficulties"`
}

// @gen:r,w,sb=0x07
type ClientCommand struct {
	Action ClientCommandAction `field:"VarIntEnum" args:"ClientCommandActions"`
}

// Displayed skin part flags.
const (
	SkinCape        byte = 0x01
	SkinJacket      byte = 0x02
	SkinLeftSleeve  byte = 0x04
	SkinRightSleeve byte = 0x08
	SkinLeftPants   byte = 0x10
	SkinRightPants  byte = 0x20
	SkinHat         byte = 0x40
)

// @gen:r,w,sb=0x08
type ClientInformation struct {
	Locale              string   `field:"BoundedString" args:"16"`
	ViewDistance        int8     `field:"SignedByte"`
	ChatMode            ChatMode `field:"VarIntEnum" args:"ChatModes"`
	ChatColors          bool     `field:"Boolean"`
	DisplayedSkinParts  byte     `field:"Byte"`
	MainHand            Arm      `field:"VarIntEnum" args:"Arms"`
	EnableTextFiltering bool     `field:"Boolean"`
	AllowServerListings bool     `field:"Boolean"`
}

// @gen:r,w,sb=0x0D
type ServerboundPluginMessage struct {
	Channel Identifier `field:"Identifier"`
	Data    []byte     `field:"RestBytes"`
}

// @gen:r,w,sb=0x12
type ServerboundKeepAlive struct {
	ID int64 `field:"Long"`
}

// @gen:r,w,sb=0x13
type LockDifficulty struct {
	Locked bool `field:"Boolean"`
}

// @gen:r,w,sb=0x14
type SetPlayerPosition struct {
	X        float64 `field:"Double"`
	FeetY    float64 `field:"Double"`
	Z        float64 `field:"Double"`
	OnGround bool    `field:"Boolean"`
}

// @gen:r,w,sb=0x15
type SetPlayerPositionAndRotation struct {
	X        float64 `field:"Double"`
	FeetY    float64 `field:"Double"`
	Z        float64 `field:"Double"`
	Yaw      float32 `field:"Float"`
	Pitch    float32 `field:"Float"`
	OnGround bool    `field:"Boolean"`
}

// @gen:r,w,sb=0x16
type SetPlayerRotation struct {
	Yaw      float32 `field:"Float"`
	Pitch    float32 `field:"Float"`
	OnGround bool    `field:"Boolean"`
}

// @gen:r,w,sb=0x17
type SetPlayerOnGround struct {
	OnGround bool `field:"Boolean"`
}

// @gen:r,w,sb=0x18
type ServerboundMoveVehicle struct {
	X     float64 `field:"Double"`
	Y     float64 `field:"Double"`
	Z     float64 `field:"Double"`
	Yaw   float32 `field:"Float"`
	Pitch float32 `field:"Float"`
}

// @gen:r,w,sb=0x19
type PaddleBoat struct {
	LeftTurning  bool `field:"Boolean"`
	RightTurning bool `field:"Boolean"`
}

// @gen:r,w,sb=0x1C
type ServerboundPlayerAbilities struct {
	Flags byte `field:"Byte"`
}

// @gen:r,w,sb=0x1E
type PlayerCommand struct {
	EntityID  int32               `field:"VarInt"`
	Action    PlayerCommandAction `field:"VarIntEnum" args:"PlayerCommandActions"`
	JumpBoost int32               `field:"VarInt"`
}

// Player input flags.
const (
	InputJump    byte = 0x01
	InputUnmount byte = 0x02
)

// @gen:r,w,sb=0x1F
type PlayerInput struct {
	Sideways float32 `field:"Float"`
	Forward  float32 `field:"Float"`
	Flags    byte    `field:"Byte"`
}

// @gen:r,w,sb=0x20
type Pong struct {
	ID int32 `field:"Int"`
}

// @gen:r,w,sb=0x24
type ResourcePackResponse struct {
	Result ResourcePackStatus `field:"VarIntEnum" args:"ResourcePackStatuses"`
}

// @gen:r,w,sb=0x2F
type SwingArm struct {
	Hand Hand `field:"VarIntEnum" args:"Hands"`
}

// @gen:r,w,sb=0x30
type TeleportToEntity struct {
	Target uuid.UUID `field:"UUID"`
}

// @gen:r,w,sb=0x32
type UseItem struct {
	Hand     Hand  `field:"VarIntEnum" args:"Hands"`
	Sequence int32 `field:"VarInt"`
}
