package packet

import (
	"bytes"
	"fmt"
	"reflect"
	"slices"
)

type registration struct {
	opcode int32
	new    func() Packet
}

type table struct {
	byOpcode map[int32]registration
	byType   map[reflect.Type]int32
}

// Registry binds opcodes to packet types for one connection state, with an
// independent numbering per direction. Registries are built once and are
// safe for concurrent use afterwards.
type Registry struct {
	state  State
	tables [2]table
}

func NewRegistry(state State) *Registry {
	r := &Registry{state: state}
	for i := range r.tables {
		r.tables[i] = table{
			byOpcode: make(map[int32]registration),
			byType:   make(map[reflect.Type]int32),
		}
	}
	return r
}

func (r *Registry) State() State {
	return r.state
}

// Register binds opcode to the packet type produced by newFn. Reusing an
// opcode or a type within one direction fails.
func (r *Registry) Register(dir Direction, opcode int32, newFn func() Packet) error {
	t := &r.tables[dir]
	typ := reflect.TypeOf(newFn())

	if _, dup := t.byOpcode[opcode]; dup {
		return &DuplicateRegistrationError{State: r.state, Direction: dir, Opcode: opcode, Type: typ.String()}
	}
	if prev, dup := t.byType[typ]; dup {
		return &DuplicateRegistrationError{State: r.state, Direction: dir, Opcode: prev, Type: typ.String()}
	}

	t.byOpcode[opcode] = registration{opcode: opcode, new: newFn}
	t.byType[typ] = opcode
	return nil
}

func (r *Registry) mustRegister(dir Direction, opcode int32, newFn func() Packet) {
	if err := r.Register(dir, opcode, newFn); err != nil {
		panic(err)
	}
}

// New returns a zero packet for opcode.
func (r *Registry) New(dir Direction, opcode int32) (Packet, error) {
	reg, ok := r.tables[dir].byOpcode[opcode]
	if !ok {
		return nil, &UnknownOpcodeError{State: r.state, Direction: dir, Opcode: opcode}
	}
	return reg.new(), nil
}

// Opcode returns the opcode p is registered under.
func (r *Registry) Opcode(dir Direction, p Packet) (int32, error) {
	opcode, ok := r.tables[dir].byType[reflect.TypeOf(p)]
	if !ok {
		return 0, fmt.Errorf("%w: %T in %s %s", ErrUnregisteredPacket, p, r.state, dir)
	}
	return opcode, nil
}

// Opcodes returns the registered opcodes of dir in ascending order.
func (r *Registry) Opcodes(dir Direction) []int32 {
	out := make([]int32, 0, len(r.tables[dir].byOpcode))
	for op := range r.tables[dir].byOpcode {
		out = append(out, op)
	}
	slices.Sort(out)
	return out
}

// Decode decodes payload as the packet registered under opcode. The payload
// must be consumed exactly.
func (r *Registry) Decode(dir Direction, opcode int32, payload []byte) (Packet, error) {
	p, err := r.New(dir, opcode)
	if err != nil {
		return nil, err
	}

	fr := NewFrameReader(payload)
	if err = p.Decode(&fr); err == nil && fr.Remaining() > 0 {
		err = fmt.Errorf("%w: %d bytes", ErrTrailingData, fr.Remaining())
	}
	if err != nil {
		return nil, &MalformedError{State: r.state, Direction: dir, Opcode: opcode, Err: err}
	}
	return p, nil
}

// Unmarshal decodes a VarInt opcode followed by its payload.
func (r *Registry) Unmarshal(dir Direction, b []byte) (Packet, error) {
	fr := NewFrameReader(b)
	opcode, err := ReadVarInt(&fr)
	if err != nil {
		return nil, err
	}
	return r.Decode(dir, opcode, fr.Rest())
}

// Marshal encodes p prefixed with its VarInt opcode.
func (r *Registry) Marshal(dir Direction, p Packet) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.MarshalTo(&buf, dir, p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *Registry) MarshalTo(buf *bytes.Buffer, dir Direction, p Packet) error {
	opcode, err := r.Opcode(dir, p)
	if err != nil {
		return err
	}
	if err = WriteVarInt(buf, opcode); err != nil {
		return err
	}
	return p.Encode(buf)
}

var registries = [...]*Registry{
	Handshaking: NewRegistry(Handshaking),
	Status:      NewRegistry(Status),
	Login:       NewRegistry(Login),
	Play:        NewRegistry(Play),
}

func init() {
	registerHandshaking(registries[Handshaking])
	registerStatus(registries[Status])
	registerLogin(registries[Login])
	registerPlay(registries[Play])
}

// ProtocolFor returns the shared registry of a connection state.
func ProtocolFor(s State) *Registry {
	return registries[s]
}
