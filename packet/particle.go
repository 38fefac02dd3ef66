package packet

import (
	"fmt"
	"io"
)

type ParticleKind string

// Particle kinds that carry data. Every other kind is a SimpleParticle.
const (
	ParticleBlock               ParticleKind = "block"
	ParticleBlockMarker         ParticleKind = "block_marker"
	ParticleDust                ParticleKind = "dust"
	ParticleDustColorTransition ParticleKind = "dust_color_transition"
	ParticleFallingDust         ParticleKind = "falling_dust"
	ParticleSculkCharge         ParticleKind = "sculk_charge"
	ParticleItem                ParticleKind = "item"
	ParticleVibration           ParticleKind = "vibration"
	ParticleShriek              ParticleKind = "shriek"
)

var ParticleKinds = NewMapper[ParticleKind]("particle",
	"ambient_entity_effect", "angry_villager", ParticleBlock, ParticleBlockMarker,
	"bubble", "cloud", "crit", "damage_indicator", "dragon_breath",
	"dripping_lava", "falling_lava", "landing_lava", "dripping_water",
	"falling_water", ParticleDust, ParticleDustColorTransition, "effect",
	"elder_guardian", "enchanted_hit", "enchant", "end_rod", "entity_effect",
	"explosion_emitter", "explosion", "sonic_boom", ParticleFallingDust,
	"firework", "fishing", "flame", "sculk_soul", ParticleSculkCharge,
	"sculk_charge_pop", "soul_fire_flame", "soul", "flash", "happy_villager",
	"composter", "heart", "instant_effect", ParticleItem, ParticleVibration,
	"item_slime", "item_snowball", "large_smoke", "lava", "mycelium", "note",
	"poof", "portal", "rain", "smoke", "sneeze", "spit", "squid_ink",
	"sweep_attack", "totem_of_undying", "underwater", "splash", "witch",
	"bubble_pop", "current_down", "bubble_column_up", "nautilus", "dolphin",
	"campfire_cosy_smoke", "campfire_signal_smoke", "dripping_honey",
	"falling_honey", "landing_honey", "falling_nectar", "falling_spore_blossom",
	"ash", "crimson_spore", "warped_spore", "spore_blossom_air",
	"dripping_obsidian_tear", "falling_obsidian_tear", "landing_obsidian_tear",
	"reverse_portal", "white_ash", "small_flame", "snowflake",
	"dripping_dripstone_lava", "falling_dripstone_lava",
	"dripping_dripstone_water", "falling_dripstone_water", "glow_squid_ink",
	"glow", "wax_on", "wax_off", "electric_spark", "scrape", ParticleShriek,
)

// ParticleOptions is one particle kind together with its options.
type ParticleOptions interface {
	ParticleKind() ParticleKind
}

// SimpleParticle is any kind without options.
type SimpleParticle struct {
	Kind ParticleKind
}

// BlockParticle is block, block_marker or falling_dust.
type BlockParticle struct {
	Kind  ParticleKind
	State BlockState
}

type DustParticle struct {
	Red, Green, Blue float32
	Scale            float32
}

type DustColorTransitionParticle struct {
	FromRed, FromGreen, FromBlue float32
	Scale                        float32
	ToRed, ToGreen, ToBlue       float32
}

type ItemParticle struct {
	Item Slot
}

type VibrationParticle struct {
	Source PositionSource
	Ticks  int32
}

type SculkChargeParticle struct {
	Roll float32
}

type ShriekParticle struct {
	Delay int32
}

func (p SimpleParticle) ParticleKind() ParticleKind            { return p.Kind }
func (p BlockParticle) ParticleKind() ParticleKind             { return p.Kind }
func (DustParticle) ParticleKind() ParticleKind                { return ParticleDust }
func (DustColorTransitionParticle) ParticleKind() ParticleKind { return ParticleDustColorTransition }
func (ItemParticle) ParticleKind() ParticleKind                { return ParticleItem }
func (VibrationParticle) ParticleKind() ParticleKind           { return ParticleVibration }
func (SculkChargeParticle) ParticleKind() ParticleKind         { return ParticleSculkCharge }
func (ShriekParticle) ParticleKind() ParticleKind              { return ParticleShriek }

// WriteParticle writes the VarInt kind followed by the options.
func WriteParticle(w io.Writer, v ParticleOptions) (err error) {
	if err = WriteVarIntEnum(w, v.ParticleKind(), ParticleKinds); err != nil {
		return
	}
	return WriteParticleOptions(w, v)
}

func ReadParticle(r *FrameReader) (v ParticleOptions, err error) {
	kind, err := ReadVarIntEnum(r, ParticleKinds)
	if err != nil {
		return
	}
	return ReadParticleOptions(r, kind)
}

// ReadParticleOptions reads the options of an already decoded kind.
func ReadParticleOptions(r *FrameReader, kind ParticleKind) (v ParticleOptions, err error) {
	switch kind {
	case ParticleBlock, ParticleBlockMarker, ParticleFallingDust:
		p := BlockParticle{Kind: kind}
		var state int32
		state, err = ReadVarInt(r)
		p.State = BlockState(state)
		v = p
	case ParticleDust:
		var p DustParticle
		if p.Red, err = ReadFloat(r); err != nil {
			return
		}
		if p.Green, err = ReadFloat(r); err != nil {
			return
		}
		if p.Blue, err = ReadFloat(r); err != nil {
			return
		}
		p.Scale, err = ReadFloat(r)
		v = p
	case ParticleDustColorTransition:
		var p DustColorTransitionParticle
		for _, f := range []*float32{&p.FromRed, &p.FromGreen, &p.FromBlue, &p.Scale, &p.ToRed, &p.ToGreen, &p.ToBlue} {
			if *f, err = ReadFloat(r); err != nil {
				return
			}
		}
		v = p
	case ParticleItem:
		var p ItemParticle
		p.Item, err = ReadSlot(r)
		v = p
	case ParticleVibration:
		var p VibrationParticle
		if p.Source, err = ReadPositionSource(r); err != nil {
			return
		}
		p.Ticks, err = ReadVarInt(r)
		v = p
	case ParticleSculkCharge:
		var p SculkChargeParticle
		p.Roll, err = ReadFloat(r)
		v = p
	case ParticleShriek:
		var p ShriekParticle
		p.Delay, err = ReadVarInt(r)
		v = p
	default:
		v = SimpleParticle{Kind: kind}
	}
	return
}

// WriteParticleOptions writes only the options; the kind is written by the
// caller.
func WriteParticleOptions(w io.Writer, v ParticleOptions) (err error) {
	switch p := v.(type) {
	case SimpleParticle:
		if particleHasOptions(p.Kind) {
			return fmt.Errorf("particle %s requires options", p.Kind)
		}
		return nil
	case BlockParticle:
		if p.Kind != ParticleBlock && p.Kind != ParticleBlockMarker && p.Kind != ParticleFallingDust {
			return fmt.Errorf("particle %s does not take a block state", p.Kind)
		}
		return WriteVarInt(w, int32(p.State))
	case DustParticle:
		for _, f := range []float32{p.Red, p.Green, p.Blue, p.Scale} {
			if err = WriteFloat(w, f); err != nil {
				return
			}
		}
	case DustColorTransitionParticle:
		for _, f := range []float32{p.FromRed, p.FromGreen, p.FromBlue, p.Scale, p.ToRed, p.ToGreen, p.ToBlue} {
			if err = WriteFloat(w, f); err != nil {
				return
			}
		}
	case ItemParticle:
		return WriteSlot(w, p.Item)
	case VibrationParticle:
		if err = WritePositionSource(w, p.Source); err != nil {
			return
		}
		return WriteVarInt(w, p.Ticks)
	case SculkChargeParticle:
		return WriteFloat(w, p.Roll)
	case ShriekParticle:
		return WriteVarInt(w, p.Delay)
	default:
		return fmt.Errorf("unsupported particle options %T", v)
	}
	return
}

func particleHasOptions(k ParticleKind) bool {
	switch k {
	case ParticleBlock, ParticleBlockMarker, ParticleFallingDust, ParticleDust,
		ParticleDustColorTransition, ParticleItem, ParticleVibration,
		ParticleSculkCharge, ParticleShriek:
		return true
	}
	return false
}

// PositionSource is the target of a vibration: a block or an entity.
type PositionSource interface {
	PositionSourceType() Identifier
}

const (
	BlockPositionSourceType  Identifier = "minecraft:block"
	EntityPositionSourceType Identifier = "minecraft:entity"
)

type BlockPositionSource struct {
	Pos Position
}

type EntityPositionSource struct {
	EntityID  int32
	EyeHeight float32
}

func (BlockPositionSource) PositionSourceType() Identifier  { return BlockPositionSourceType }
func (EntityPositionSource) PositionSourceType() Identifier { return EntityPositionSourceType }

func WritePositionSource(w io.Writer, v PositionSource) (err error) {
	if err = WriteIdentifier(w, v.PositionSourceType()); err != nil {
		return
	}
	switch s := v.(type) {
	case BlockPositionSource:
		return WritePosition(w, s.Pos)
	case EntityPositionSource:
		if err = WriteVarInt(w, s.EntityID); err != nil {
			return
		}
		return WriteFloat(w, s.EyeHeight)
	}
	return fmt.Errorf("unsupported position source %T", v)
}

func ReadPositionSource(r *FrameReader) (v PositionSource, err error) {
	typ, err := ReadIdentifier(r)
	if err != nil {
		return
	}
	switch typ {
	case BlockPositionSourceType:
		var s BlockPositionSource
		s.Pos, err = ReadPosition(r)
		v = s
	case EntityPositionSourceType:
		var s EntityPositionSource
		if s.EntityID, err = ReadVarInt(r); err != nil {
			return
		}
		s.EyeHeight, err = ReadFloat(r)
		v = s
	default:
		err = unknown("position source", typ)
	}
	return
}
