package packet

import (
	"fmt"
	"io"
)

// Mapper is an immutable bijection between a closed set of symbols and
// their wire ids. Mappers are built at package init and are safe for
// concurrent reads.
type Mapper[T comparable] struct {
	name  string
	toID  map[T]int32
	byID  map[int32]T
	order []T
}

// NewMapper assigns ids 0..n-1 to symbols in the given order.
func NewMapper[T comparable](name string, symbols ...T) *Mapper[T] {
	table := make(map[T]int32, len(symbols))
	for i, s := range symbols {
		if _, dup := table[s]; dup {
			panic(fmt.Sprintf("packet: %s mapper: duplicate symbol %v", name, s))
		}
		table[s] = int32(i)
	}
	m := NewMapperFromTable(name, table)
	m.order = append([]T(nil), symbols...)
	return m
}

// NewMapperFromTable builds a mapper from explicit, possibly sparse, ids.
func NewMapperFromTable[T comparable](name string, table map[T]int32) *Mapper[T] {
	m := &Mapper[T]{
		name: name,
		toID: make(map[T]int32, len(table)),
		byID: make(map[int32]T, len(table)),
	}
	for s, id := range table {
		if id < 0 {
			panic(fmt.Sprintf("packet: %s mapper: negative id %d for %v", name, id, s))
		}
		if prev, dup := m.byID[id]; dup {
			panic(fmt.Sprintf("packet: %s mapper: id %d bound to both %v and %v", name, id, prev, s))
		}
		m.toID[s] = id
		m.byID[id] = s
	}
	return m
}

func (m *Mapper[T]) Name() string {
	return m.name
}

func (m *Mapper[T]) Len() int {
	return len(m.toID)
}

// FromID returns the symbol bound to id.
func (m *Mapper[T]) FromID(id int32) (v T, err error) {
	v, ok := m.byID[id]
	if !ok {
		err = unknown(m.name, id)
	}
	return
}

// ToID returns the wire id of v. v must be a declared symbol.
func (m *Mapper[T]) ToID(v T) int32 {
	id, ok := m.toID[v]
	if !ok {
		panic(fmt.Sprintf("packet: %s mapper: undeclared symbol %v", m.name, v))
	}
	return id
}

// Has reports whether v is a declared symbol.
func (m *Mapper[T]) Has(v T) bool {
	_, ok := m.toID[v]
	return ok
}

// Symbols returns the declared symbols ordered by id.
func (m *Mapper[T]) Symbols() []T {
	if m.order != nil {
		return append([]T(nil), m.order...)
	}
	out := make([]T, 0, len(m.byID))
	for id := int32(0); len(out) < len(m.byID); id++ {
		if s, ok := m.byID[id]; ok {
			out = append(out, s)
		}
	}
	return out
}

func WriteVarIntEnum[T comparable](w io.Writer, v T, m *Mapper[T]) error {
	return WriteVarInt(w, m.ToID(v))
}

func ReadVarIntEnum[T comparable](r *FrameReader, m *Mapper[T]) (v T, err error) {
	id, err := ReadVarInt(r)
	if err != nil {
		return
	}
	return m.FromID(id)
}

func WriteByteEnum[T comparable](w io.Writer, v T, m *Mapper[T]) error {
	return WriteByte(w, byte(m.ToID(v)))
}

func ReadByteEnum[T comparable](r *FrameReader, m *Mapper[T]) (v T, err error) {
	b, err := r.ReadByte()
	if err != nil {
		return
	}
	return m.FromID(int32(b))
}

// varIntEnum adapts a mapper to the WriteFn/ReadFn shape used by the
// array and optional combinators.
func varIntEnum[T comparable](m *Mapper[T]) (WriteFn[T], ReadFn[T]) {
	return func(w io.Writer, v T) error { return WriteVarIntEnum(w, v, m) },
		func(r *FrameReader) (T, error) { return ReadVarIntEnum(r, m) }
}
