//go:generate go run ../codegen/gen_packet_codec.go -- .
package packet

import (
	"context"
	"io"
)

// ProtocolVersion is the protocol number of Minecraft 1.19.2.
const ProtocolVersion = 760

// Packet is one message of the protocol. Encode and Decode handle the
// payload only; the opcode belongs to the Registry.
type Packet interface {
	Encode(w io.Writer) error
	Decode(r *FrameReader) error
	// Dispatch invokes the matching callback of h, if h has one.
	Dispatch(ctx context.Context, h Handler) error
}

// Handler is any value implementing some of the generated XxxHandler
// interfaces. A packet without a matching callback is dropped.
type Handler any

// Dispatch hands p to its callback on h and returns the callback's error.
func Dispatch(ctx context.Context, p Packet, h Handler) error {
	if h == nil {
		return nil
	}
	return p.Dispatch(ctx, h)
}

// State is the connection phase selecting which registry applies.
type State uint8

const (
	Handshaking State = iota
	Status
	Login
	Play
)

func (s State) String() string {
	switch s {
	case Handshaking:
		return "handshaking"
	case Status:
		return "status"
	case Login:
		return "login"
	case Play:
		return "play"
	}
	return "invalid"
}

type Direction uint8

const (
	Serverbound Direction = iota
	Clientbound
)

func (d Direction) String() string {
	if d == Serverbound {
		return "serverbound"
	}
	return "clientbound"
}

// Opposite returns the other direction.
func (d Direction) Opposite() Direction {
	return 1 - d
}
