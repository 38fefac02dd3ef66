package packet

import (
	"bytes"
	"context"
	"errors"
	"testing"
)

func TestHandshakeBytes(t *testing.T) {
	p := &Handshake{
		ProtocolVersion: ProtocolVersion,
		ServerAddress:   "localhost",
		ServerPort:      25565,
		NextState:       IntentLogin,
	}
	want := []byte{
		0x00,       // opcode
		0xf8, 0x05, // 760
		0x09, 'l', 'o', 'c', 'a', 'l', 'h', 'o', 's', 't',
		0x63, 0xdd, // 25565
		0x02,       // login
	}

	got, err := ProtocolFor(Handshaking).Marshal(Serverbound, p)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Marshal expected %x, got %x", want, got)
	}

	decoded, err := ProtocolFor(Handshaking).Unmarshal(Serverbound, want)
	if err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	hs, ok := decoded.(*Handshake)
	if !ok || *hs != *p {
		t.Errorf("Unmarshal expected %+v, got %+v", p, decoded)
	}
	if hs.State() != Login {
		t.Errorf("expected next state %s, got %s", Login, hs.State())
	}
}

func TestRegistryDecodeErrors(t *testing.T) {
	testCases := []struct {
		desc      string
		state     State
		dir       Direction
		opcode    int32
		payload   []byte
		expectErr error
		malformed bool
	}{
		{
			desc:      "Unknown opcode",
			state:     Status,
			dir:       Serverbound,
			opcode:    0x05,
			expectErr: ErrUnknownOpcode,
		},
		{
			desc:      "Opcode of the other direction",
			state:     Handshaking,
			dir:       Clientbound,
			opcode:    0x00,
			expectErr: ErrUnknownOpcode,
		},
		{
			desc:      "Truncated payload",
			state:     Status,
			dir:       Serverbound,
			opcode:    0x01,
			payload:   []byte{0, 0, 0, 0},
			expectErr: ErrTruncated,
			malformed: true,
		},
		{
			desc:      "Trailing data",
			state:     Play,
			dir:       Serverbound,
			opcode:    0x00,
			payload:   []byte{0x01, 0x02},
			expectErr: ErrTrailingData,
			malformed: true,
		},
		{
			desc:      "Unknown discriminant",
			state:     Play,
			dir:       Serverbound,
			opcode:    0x07,
			payload:   []byte{0x02},
			expectErr: ErrUnknownDiscriminant,
			malformed: true,
		},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			p, err := ProtocolFor(tC.state).Decode(tC.dir, tC.opcode, tC.payload)
			if !errors.Is(err, tC.expectErr) {
				t.Fatalf("expected %v, got %v (%+v)", tC.expectErr, err, p)
			}
			var me *MalformedError
			if errors.As(err, &me) != tC.malformed {
				t.Errorf("malformed wrapping expected %t, got %v", tC.malformed, err)
			}
			if tC.malformed && me.Opcode != tC.opcode {
				t.Errorf("expected opcode %#x in the error, got %#x", tC.opcode, me.Opcode)
			}
		})
	}
}

func TestRegistryDuplicates(t *testing.T) {
	r := NewRegistry(Play)
	if err := r.Register(Clientbound, 0x20, func() Packet { return &KeepAlive{} }); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	err := r.Register(Clientbound, 0x20, func() Packet { return &Disconnect{} })
	if !errors.Is(err, ErrDuplicateRegistration) {
		t.Errorf("reused opcode: expected %v, got %v", ErrDuplicateRegistration, err)
	}
	err = r.Register(Clientbound, 0x21, func() Packet { return &KeepAlive{} })
	if !errors.Is(err, ErrDuplicateRegistration) {
		t.Errorf("reused type: expected %v, got %v", ErrDuplicateRegistration, err)
	}

	// directions are numbered independently
	if err = r.Register(Serverbound, 0x20, func() Packet { return &KeepAlive{} }); err != nil {
		t.Errorf("other direction: %v", err)
	}
}

func TestRegistryCatalog(t *testing.T) {
	testCases := []struct {
		state State
		dir   Direction
		count int
	}{
		{Handshaking, Serverbound, 1},
		{Handshaking, Clientbound, 0},
		{Status, Serverbound, 2},
		{Status, Clientbound, 2},
		{Login, Serverbound, 3},
		{Login, Clientbound, 5},
		{Play, Serverbound, 0x33},
		{Play, Clientbound, 0x6c},
	}
	sampled := sampledOpcodes(t)
	for _, tC := range testCases {
		r := ProtocolFor(tC.state)
		ops := r.Opcodes(tC.dir)
		if len(ops) != tC.count {
			t.Errorf("%s %s: expected %d opcodes, got %d", tC.state, tC.dir, tC.count, len(ops))
		}
		for i, op := range ops {
			// the 1.19.2 tables are contiguous from zero
			if op != int32(i) {
				t.Errorf("%s %s: expected opcode %#x at %d, got %#x", tC.state, tC.dir, i, i, op)
				break
			}

			p, err := r.New(tC.dir, op)
			if err != nil {
				t.Fatalf("New(%#x) failed: %v", op, err)
			}
			back, err := r.Opcode(tC.dir, p)
			if err != nil || back != op {
				t.Errorf("%T: expected opcode %#x, got %#x (%v)", p, op, back, err)
			}
			if !sampled[catalogKey{tC.state, tC.dir, op}] {
				t.Errorf("%s %s %T: no round-trip sample", tC.state, tC.dir, p)
			}
		}
	}
}

func TestRegistryUnregisteredType(t *testing.T) {
	_, err := ProtocolFor(Status).Marshal(Serverbound, &Handshake{})
	if !errors.Is(err, ErrUnregisteredPacket) {
		t.Errorf("expected %v, got %v", ErrUnregisteredPacket, err)
	}
	_, err = ProtocolFor(Play).Marshal(Serverbound, &KeepAlive{})
	if !errors.Is(err, ErrUnregisteredPacket) {
		t.Errorf("clientbound type sent serverbound: expected %v, got %v", ErrUnregisteredPacket, err)
	}
}

type keepAliveRecorder struct {
	ctxSeen context.Context
	ids     []int64
	err     error
}

func (h *keepAliveRecorder) HandleKeepAlive(ctx context.Context, p *KeepAlive) error {
	h.ctxSeen = ctx
	h.ids = append(h.ids, p.ID)
	return h.err
}

func (h *keepAliveRecorder) HandleDisconnect(ctx context.Context, p *Disconnect) error {
	return errors.New("disconnected: " + p.Reason.PlainText())
}

type ctxKey struct{}

func TestDispatch(t *testing.T) {
	h := &keepAliveRecorder{}
	ctx := context.WithValue(context.Background(), ctxKey{}, "conn-1")

	if err := Dispatch(ctx, &KeepAlive{ID: 42}, h); err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}
	if len(h.ids) != 1 || h.ids[0] != 42 {
		t.Errorf("expected one call with 42, got %v", h.ids)
	}
	if h.ctxSeen.Value(ctxKey{}) != "conn-1" {
		t.Error("handler did not receive the dispatch context")
	}

	// no HandleSetHealth: silently dropped
	if err := Dispatch(ctx, &SetHealth{Health: 20}, h); err != nil {
		t.Errorf("unhandled packet returned %v", err)
	}
	if err := Dispatch(ctx, &KeepAlive{}, nil); err != nil {
		t.Errorf("nil handler returned %v", err)
	}

	sentinel := errors.New("stop")
	h.err = sentinel
	if err := Dispatch(ctx, &KeepAlive{ID: 1}, h); err != sentinel {
		t.Errorf("expected the handler error unchanged, got %v", err)
	}

	err := Dispatch(ctx, &Disconnect{Reason: TextChat("bye")}, h)
	if err == nil || err.Error() != "disconnected: bye" {
		t.Errorf("expected the disconnect callback, got %v", err)
	}
}

func TestDirectionOpposite(t *testing.T) {
	if Serverbound.Opposite() != Clientbound || Clientbound.Opposite() != Serverbound {
		t.Error("Opposite does not swap directions")
	}
}
