package packet

import (
	"bytes"
	"errors"
	"testing"
)

func TestMapperBijection(t *testing.T) {
	for _, m := range []*Mapper[ParticleKind]{ParticleKinds} {
		if m.Len() != 93 {
			t.Errorf("%s: expected 93 symbols, got %d", m.Name(), m.Len())
		}
		for i, s := range m.Symbols() {
			id := m.ToID(s)
			if id != int32(i) {
				t.Errorf("%s: %s expected id %d, got %d", m.Name(), s, i, id)
			}
			back, err := m.FromID(id)
			if err != nil || back != s {
				t.Errorf("%s: FromID(%d) expected %s, got %s (%v)", m.Name(), id, s, back, err)
			}
		}
	}

	if n := ArgumentParsers.Len(); n != 48 {
		t.Errorf("argument parser: expected 48 symbols, got %d", n)
	}
	if n := RecipeSerializers.Len(); n != 22 {
		t.Errorf("recipe serializer: expected 22 symbols, got %d", n)
	}
}

func TestMapperUnknownID(t *testing.T) {
	testCases := []struct {
		desc string
		read func() error
	}{
		{"hand", func() error { _, err := Hands.FromID(2); return err }},
		{"negative game mode", func() error { _, err := GameModes.FromID(-1); return err }},
		{"particle", func() error { _, err := ParticleKinds.FromID(93); return err }},
		{"handshake gap", func() error { _, err := HandshakeIntents.FromID(0); return err }},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			err := tC.read()
			if !errors.Is(err, ErrUnknownDiscriminant) {
				t.Fatalf("expected %v, got %v", ErrUnknownDiscriminant, err)
			}
			var ud *UnknownDiscriminantError
			if !errors.As(err, &ud) || ud.Family == "" {
				t.Errorf("expected a family in %v", err)
			}
		})
	}
}

func TestMapperFromTableMatchesPositional(t *testing.T) {
	positional := NewMapper("color", "red", "green", "blue")
	table := NewMapperFromTable("color", map[string]int32{"red": 0, "green": 1, "blue": 2})

	for _, s := range positional.Symbols() {
		if positional.ToID(s) != table.ToID(s) {
			t.Errorf("%s: positional id %d, table id %d", s, positional.ToID(s), table.ToID(s))
		}
	}
	if got := table.Symbols(); len(got) != 3 || got[0] != "red" || got[2] != "blue" {
		t.Errorf("table symbols expected id order, got %v", got)
	}

	sparse := NewMapperFromTable("sparse", map[string]int32{"a": 1, "b": 5})
	if got := sparse.Symbols(); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("sparse symbols expected [a b], got %v", got)
	}
	if _, err := sparse.FromID(3); !errors.Is(err, ErrUnknownDiscriminant) {
		t.Errorf("expected unknown discriminant for a gap, got %v", err)
	}
}

func TestMapperRejectsNonBijection(t *testing.T) {
	testCases := []struct {
		desc  string
		build func()
	}{
		{"duplicate symbol", func() { NewMapper("dup", "a", "b", "a") }},
		{"shared id", func() { NewMapperFromTable("shared", map[string]int32{"a": 0, "b": 0}) }},
		{"negative id", func() { NewMapperFromTable("negative", map[string]int32{"a": -1}) }},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected a panic")
				}
			}()
			tC.build()
		})
	}
}

func TestMapperToIDUndeclared(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("ToID accepted an undeclared symbol")
		}
	}()
	Hands.ToID(Hand("third_hand"))
}

func TestEnumWire(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteVarIntEnum(&buf, IntentLogin, HandshakeIntents); err != nil {
		t.Fatal(err)
	}
	if err := WriteByteEnum(&buf, East, BlockFaces); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf.Bytes(), []byte{0x02, 0x05}) {
		t.Fatalf("expected 0205, got %x", buf.Bytes())
	}

	r := NewFrameReader(buf.Bytes())
	intent, err := ReadVarIntEnum(&r, HandshakeIntents)
	if err != nil || intent != IntentLogin {
		t.Errorf("ReadVarIntEnum expected %s, got %s (%v)", IntentLogin, intent, err)
	}
	face, err := ReadByteEnum(&r, BlockFaces)
	if err != nil || face != East {
		t.Errorf("ReadByteEnum expected %s, got %s (%v)", East, face, err)
	}

	r = NewFrameReader([]byte{0x06, 0x01, 0x02})
	if _, err = ReadByteEnum(&r, BlockFaces); !errors.Is(err, ErrUnknownDiscriminant) {
		t.Errorf("expected unknown block face, got %v", err)
	}
	if r.Remaining() != 2 {
		t.Errorf("unknown discriminant consumed %d bytes, expected 1", 3-r.Remaining())
	}
}
