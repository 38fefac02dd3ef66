package packet

import (
	"fmt"
	"io"

	"github.com/google/uuid"
)

// @gen:r,w,cb=0x00
type SpawnEntity struct {
	EntityID  int32     `field:"VarInt"`
	UUID      uuid.UUID `field:"UUID"`
	Type      int32     `field:"VarInt"`
	X         float64   `field:"Double"`
	Y         float64   `field:"Double"`
	Z         float64   `field:"Double"`
	Pitch     Angle     `field:"Angle"`
	Yaw       Angle     `field:"Angle"`
	HeadYaw   Angle     `field:"Angle"`
	Data      int32     `field:"VarInt"`
	VelocityX int16     `field:"Short"`
	VelocityY int16     `field:"Short"`
	VelocityZ int16     `field:"Short"`
}

// @gen:r,w,cb=0x01
type SpawnExperienceOrb struct {
	EntityID int32   `field:"VarInt"`
	X        float64 `field:"Double"`
	Y        float64 `field:"Double"`
	Z        float64 `field:"Double"`
	Count    int16   `field:"Short"`
}

// @gen:r,w,cb=0x02
type SpawnPlayer struct {
	EntityID   int32     `field:"VarInt"`
	PlayerUUID uuid.UUID `field:"UUID"`
	X          float64   `field:"Double"`
	Y          float64   `field:"Double"`
	Z          float64   `field:"Double"`
	Yaw        Angle     `field:"Angle"`
	Pitch      Angle     `field:"Angle"`
}

// @gen:r,w,cb=0x03
type AnimateEntity struct {
	EntityID  int32           `field:"VarInt"`
	Animation EntityAnimation `field:"ByteEnum" args:"EntityAnimations"`
}

// @gen:r,w,cb=0x1A
type EntityEvent struct {
	EntityID int32 `field:"Int"`
	Status   int8  `field:"SignedByte"`
}

// @gen:r,w,cb=0x28
type UpdateEntityPosition struct {
	EntityID int32 `field:"VarInt"`
	DeltaX   int16 `field:"Short"`
	DeltaY   int16 `field:"Short"`
	DeltaZ   int16 `field:"Short"`
	OnGround bool  `field:"Boolean"`
}

// @gen:r,w,cb=0x29
type UpdateEntityPositionAndRotation struct {
	EntityID int32 `field:"VarInt"`
	DeltaX   int16 `field:"Short"`
	DeltaY   int16 `field:"Short"`
	DeltaZ   int16 `field:"Short"`
	Yaw      Angle `field:"Angle"`
	Pitch    Angle `field:"Angle"`
	OnGround bool  `field:"Boolean"`
}

// @gen:r,w,cb=0x2A
type UpdateEntityRotation struct {
	EntityID int32 `field:"VarInt"`
	Yaw      Angle `field:"Angle"`
	Pitch    Angle `field:"Angle"`
	OnGround bool  `field:"Boolean"`
}

// @gen:r,w,cb=0x3B
type RemoveEntities struct {
	EntityIDs []int32 `field:"PrefixedArray" inner:"VarInt"`
}

// @gen:r,w,cb=0x3C
type RemoveEntityEffect struct {
	EntityID int32 `field:"VarInt"`
	EffectID int32 `field:"VarInt"`
}

// @gen:r,w,cb=0x3F
type SetHeadRotation struct {
	EntityID int32 `field:"VarInt"`
	HeadYaw  Angle `field:"Angle"`
}

// @gen:r,w,cb=0x49
type SetCamera struct {
	CameraID int32 `field:"VarInt"`
}

// @gen:r,w,cb=0x50
type SetEntityMetadata struct {
	EntityID int32          `field:"VarInt"`
	Metadata EntityMetadata `field:"EntityMetadata"`
}

// @gen:r,w,cb=0x51
type LinkEntities struct {
	AttachedEntityID int32 `field:"Int"`
	HoldingEntityID  int32 `field:"Int"`
}

// @gen:r,w,cb=0x52
type SetEntityVelocity struct {
	EntityID  int32 `field:"VarInt"`
	VelocityX int16 `field:"Short"`
	VelocityY int16 `field:"Short"`
	VelocityZ int16 `field:"Short"`
}

// @gen:r,w,cb=0x53
type SetEquipment struct {
	EntityID  int32       `field:"VarInt"`
	Equipment []Equipment `field:"Equipment"`
}

// @gen:r,w,cb=0x57
type SetPassengers struct {
	EntityID   int32   `field:"VarInt"`
	Passengers []int32 `field:"PrefixedArray" inner:"VarInt"`
}

// @gen:r,w,cb=0x65
type PickupItem struct {
	CollectedEntityID int32 `field:"VarInt"`
	CollectorEntityID int32 `field:"VarInt"`
	Count             int32 `field:"VarInt"`
}

// @gen:r,w,cb=0x66
type TeleportEntity struct {
	EntityID int32   `field:"VarInt"`
	X        float64 `field:"Double"`
	Y        float64 `field:"Double"`
	Z        float64 `field:"Double"`
	Yaw      Angle   `field:"Angle"`
	Pitch    Angle   `field:"Angle"`
	OnGround bool    `field:"Boolean"`
}

type AttributeModifier struct {
	UUID      uuid.UUID
	Amount    float64
	Operation AttributeOperation
}

type AttributeProperty struct {
	Key       Identifier
	Value     float64
	Modifiers []AttributeModifier
}

func writeAttributeModifier(w io.Writer, v AttributeModifier) (err error) {
	if err = WriteUUID(w, v.UUID); err != nil {
		return
	}
	if err = WriteDouble(w, v.Amount); err != nil {
		return
	}
	return WriteByteEnum(w, v.Operation, AttributeOperations)
}

func readAttributeModifier(r *FrameReader) (v AttributeModifier, err error) {
	if v.UUID, err = ReadUUID(r); err != nil {
		return
	}
	if v.Amount, err = ReadDouble(r); err != nil {
		return
	}
	v.Operation, err = ReadByteEnum(r, AttributeOperations)
	return
}

func writeAttributeProperty(w io.Writer, v AttributeProperty) (err error) {
	if err = WriteIdentifier(w, v.Key); err != nil {
		return
	}
	if err = WriteDouble(w, v.Value); err != nil {
		return
	}
	return WritePrefixedArray(w, v.Modifiers, writeAttributeModifier)
}

func readAttributeProperty(r *FrameReader) (v AttributeProperty, err error) {
	if v.Key, err = ReadIdentifier(r); err != nil {
		return
	}
	if v.Value, err = ReadDouble(r); err != nil {
		return
	}
	v.Modifiers, err = ReadPrefixedArray(r, readAttributeModifier)
	return
}

// @gen:r,w,cb=0x68
type UpdateAttributes struct {
	EntityID   int32               `field:"VarInt"`
	Properties []AttributeProperty `field:"PrefixedArray" write:"writeAttributeProperty" read:"readAttributeProperty"`
}

// Effect flags.
const (
	EffectAmbient       byte = 0x01
	EffectShowParticles byte = 0x02
	EffectShowIcon      byte = 0x04
)

// @gen:r,w,cb=0x69
type EntityEffect struct {
	EntityID    int32         `field:"VarInt"`
	EffectID    int32         `field:"VarInt"`
	Amplifier   int8          `field:"SignedByte"`
	Duration    int32         `field:"VarInt"`
	Flags       byte          `field:"Byte"`
	FactorCodec Optional[NBT] `field:"Optional" inner:"NBT"`
}

// InteractAction is what a player did to an entity.
type InteractAction interface {
	isInteractAction()
}

type InteractEntity struct {
	Hand Hand
}

type AttackEntity struct{}

// InteractAtEntity interacts with a point on the entity's hitbox, relative
// to its position.
type InteractAtEntity struct {
	TargetX, TargetY, TargetZ float32
	Hand                      Hand
}

func (InteractEntity) isInteractAction()   {}
func (AttackEntity) isInteractAction()     {}
func (InteractAtEntity) isInteractAction() {}

const (
	interactID int32 = iota
	attackID
	interactAtID
)

func writeInteractAction(w io.Writer, v InteractAction) (err error) {
	switch a := v.(type) {
	case InteractEntity:
		if err = WriteVarInt(w, interactID); err != nil {
			return
		}
		return WriteVarIntEnum(w, a.Hand, Hands)
	case AttackEntity:
		return WriteVarInt(w, attackID)
	case InteractAtEntity:
		if err = WriteVarInt(w, interactAtID); err != nil {
			return
		}
		for _, f := range []float32{a.TargetX, a.TargetY, a.TargetZ} {
			if err = WriteFloat(w, f); err != nil {
				return
			}
		}
		return WriteVarIntEnum(w, a.Hand, Hands)
	}
	return fmt.Errorf("unsupported interact action %T", v)
}

func readInteractAction(r *FrameReader) (v InteractAction, err error) {
	typ, err := ReadVarInt(r)
	if err != nil {
		return
	}

	switch typ {
	case interactID:
		var a InteractEntity
		if a.Hand, err = ReadVarIntEnum(r, Hands); err != nil {
			return nil, err
		}
		return a, nil
	case attackID:
		return AttackEntity{}, nil
	case interactAtID:
		var a InteractAtEntity
		for _, f := range []*float32{&a.TargetX, &a.TargetY, &a.TargetZ} {
			if *f, err = ReadFloat(r); err != nil {
				return nil, err
			}
		}
		if a.Hand, err = ReadVarIntEnum(r, Hands); err != nil {
			return nil, err
		}
		return a, nil
	}
	return nil, unknown("interact action", typ)
}

// @gen:r,w,sb=0x10
type Interact struct {
	EntityID int32          `field:"VarInt"`
	Action   InteractAction `write:"writeInteractAction" read:"readInteractAction"`
	Sneaking bool           `field:"Boolean"`
}
