package packet

import "io"

// Sound positions are fixed-point with three fractional bits.
func SoundCoordinate(v float64) int32 {
	return int32(v * 8)
}

// @gen:r,w,cb=0x17
type CustomSoundEffect struct {
	Sound    Identifier  `field:"Identifier"`
	Category SoundSource `field:"VarIntEnum" args:"SoundSources"`
	X        int32       `field:"Int"`
	Y        int32       `field:"Int"`
	Z        int32       `field:"Int"`
	Volume   float32     `field:"Float"`
	Pitch    float32     `field:"Float"`
	Seed     int64       `field:"Long"`
}

// @gen:r,w,cb=0x5F
type EntitySoundEffect struct {
	SoundID  int32       `field:"VarInt"`
	Category SoundSource `field:"VarIntEnum" args:"SoundSources"`
	EntityID int32       `field:"VarInt"`
	Volume   float32     `field:"Float"`
	Pitch    float32     `field:"Float"`
	Seed     int64       `field:"Long"`
}

// @gen:r,w,cb=0x60
type SoundEffect struct {
	SoundID  int32       `field:"VarInt"`
	Category SoundSource `field:"VarIntEnum" args:"SoundSources"`
	X        int32       `field:"Int"`
	Y        int32       `field:"Int"`
	Z        int32       `field:"Int"`
	Volume   float32     `field:"Float"`
	Pitch    float32     `field:"Float"`
	Seed     int64       `field:"Long"`
}

const (
	stopSoundSource byte = 0x01
	stopSoundName   byte = 0x02
)

// StopSound stops matching sounds; with neither field set it stops all of
// them.
//
// @gen:cb=0x61
type StopSound struct {
	Source Optional[SoundSource]
	Sound  Optional[Identifier]
}

func (p StopSound) Encode(w io.Writer) (err error) {
	var flags byte
	if p.Source.Exists {
		flags |= stopSoundSource
	}
	if p.Sound.Exists {
		flags |= stopSoundName
	}
	if err = WriteByte(w, flags); err != nil {
		return
	}
	if p.Source.Exists {
		if err = WriteVarIntEnum(w, p.Source.Item, SoundSources); err != nil {
			return
		}
	}
	if p.Sound.Exists {
		if err = WriteIdentifier(w, p.Sound.Item); err != nil {
			return
		}
	}
	return
}

func (p *StopSound) Decode(r *FrameReader) (err error) {
	flags, err := r.ReadByte()
	if err != nil {
		return
	}
	if err = checkFlags("stop sound flags", flags, stopSoundSource|stopSoundName); err != nil {
		return
	}
	*p = StopSound{}
	if flags&stopSoundSource != 0 {
		var s SoundSource
		if s, err = ReadVarIntEnum(r, SoundSources); err != nil {
			return
		}
		p.Source = Some(s)
	}
	if flags&stopSoundName != 0 {
		var id Identifier
		if id, err = ReadIdentifier(r); err != nil {
			return
		}
		p.Sound = Some(id)
	}
	return nil
}
