package packet

import (
	"bytes"
	"errors"
	"reflect"
	"testing"
)

func TestParticleKindIDs(t *testing.T) {
	testCases := []struct {
		kind ParticleKind
		id   int32
	}{
		{"ambient_entity_effect", 0},
		{ParticleBlock, 2},
		{ParticleDust, 14},
		{ParticleFallingDust, 25},
		{ParticleSculkCharge, 30},
		{ParticleItem, 39},
		{ParticleVibration, 40},
		{ParticleShriek, 92},
	}
	for _, tC := range testCases {
		if got := ParticleKinds.ToID(tC.kind); got != tC.id {
			t.Errorf("%s: expected id %d, got %d", tC.kind, tC.id, got)
		}
	}
}

func TestParticleBytes(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteParticle(&buf, DustParticle{Red: 1, Scale: 1}); err != nil {
		t.Fatal(err)
	}
	want := []byte{
		0x0e,
		0x3f, 0x80, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x3f, 0x80, 0x00, 0x00,
	}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("expected %x, got %x", want, buf.Bytes())
	}

	buf.Reset()
	if err := WriteParticle(&buf, SimpleParticle{Kind: "flame"}); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf.Bytes(), []byte{0x1c}) {
		t.Errorf("expected 1c, got %x", buf.Bytes())
	}
}

func TestParticleRoundTrip(t *testing.T) {
	testCases := []ParticleOptions{
		SimpleParticle{Kind: "heart"},
		BlockParticle{Kind: ParticleBlock, State: 1},
		BlockParticle{Kind: ParticleBlockMarker, State: 8},
		BlockParticle{Kind: ParticleFallingDust, State: 66},
		DustParticle{Red: 0.5, Green: 0.25, Blue: 1, Scale: 4},
		DustColorTransitionParticle{FromRed: 1, Scale: 1, ToBlue: 1},
		ItemParticle{Item: ItemStack(20, 1)},
		VibrationParticle{Source: BlockPositionSource{Pos: Position{X: 1, Y: 2, Z: 3}}, Ticks: 20},
		VibrationParticle{Source: EntityPositionSource{EntityID: 7, EyeHeight: 1.62}, Ticks: 5},
		SculkChargeParticle{Roll: 3.14},
		ShriekParticle{Delay: 10},
	}
	for _, p := range testCases {
		t.Run(string(p.ParticleKind()), func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteParticle(&buf, p); err != nil {
				t.Fatalf("WriteParticle failed: %v", err)
			}
			r := NewFrameReader(buf.Bytes())
			got, err := ReadParticle(&r)
			if err != nil {
				t.Fatalf("ReadParticle failed: %v", err)
			}
			if !reflect.DeepEqual(got, p) {
				t.Errorf("expected %+v, got %+v", p, got)
			}
			if r.Remaining() != 0 {
				t.Errorf("%d bytes left over", r.Remaining())
			}
		})
	}
}

func TestParticleErrors(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteParticle(&buf, SimpleParticle{Kind: ParticleDust}); err == nil {
		t.Error("a dust particle without options was accepted")
	}
	if err := WriteParticleOptions(&buf, BlockParticle{Kind: "flame"}); err == nil {
		t.Error("a block state was accepted for flame")
	}

	r := NewFrameReader([]byte{93})
	if _, err := ReadParticle(&r); !errors.Is(err, ErrUnknownDiscriminant) {
		t.Errorf("expected unknown particle, got %v", err)
	}

	buf.Reset()
	_ = WriteVarIntEnum(&buf, ParticleVibration, ParticleKinds)
	_ = WriteIdentifier(&buf, "minecraft:nowhere")
	r = NewFrameReader(buf.Bytes())
	_, err := ReadParticle(&r)
	var ud *UnknownDiscriminantError
	if !errors.As(err, &ud) || ud.Value != Identifier("minecraft:nowhere") {
		t.Errorf("expected unknown position source, got %v", err)
	}
}
