package mcwire

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/gstoney/mcwire/packet"
	"github.com/rs/zerolog"
)

// Conn reads and writes whole packets over a Transport. Packets are
// decoded with the registry of the current state; Conn is not safe for
// concurrent use.
type Conn struct {
	t        *Transport
	state    packet.State
	reg      *packet.Registry
	inbound  packet.Direction
	log      zerolog.Logger
	metrics  *Metrics
	writeBuf bytes.Buffer
}

type ConnOption func(*Conn)

func WithLogger(l zerolog.Logger) ConnOption {
	return func(c *Conn) {
		c.log = l
	}
}

func WithMetrics(m *Metrics) ConnOption {
	return func(c *Conn) {
		c.metrics = m
	}
}

// NewConn wraps rw. inbound is the direction of the packets this end
// receives: Serverbound for a server, Clientbound for a client. The
// connection starts in the Handshaking state.
func NewConn(rw io.ReadWriter, inbound packet.Direction, cfg TransportConfig, opts ...ConnOption) *Conn {
	c := &Conn{
		t:       NewTransport(rw, rw, cfg),
		state:   packet.Handshaking,
		reg:     packet.ProtocolFor(packet.Handshaking),
		inbound: inbound,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Conn) State() packet.State {
	return c.state
}

// SetState switches the registry used for the following packets in both
// directions.
func (c *Conn) SetState(s packet.State) {
	c.log.Debug().Stringer("from", c.state).Stringer("to", s).Msg("state change")
	c.state = s
	c.reg = packet.ProtocolFor(s)
}

// SetCompression applies a SetCompression threshold to the frame format.
func (c *Conn) SetCompression(threshold int) {
	c.log.Debug().Int("threshold", threshold).Msg("compression")
	c.t.SetCompression(threshold)
}

// ReadPacket receives one frame and decodes it.
func (c *Conn) ReadPacket() (packet.Packet, error) {
	pr, err := c.t.Recv()
	if err != nil {
		c.metrics.recordDecodeError(c.state, err)
		return nil, err
	}
	b, err := ReadPayload(pr)
	if err != nil {
		c.metrics.recordDecodeError(c.state, err)
		return nil, err
	}

	p, err := c.reg.Unmarshal(c.inbound, b)
	if err != nil {
		c.metrics.recordDecodeError(c.state, err)
		return nil, err
	}
	c.metrics.recordDecoded(c.state, c.inbound)
	c.log.Debug().Stringer("state", c.state).Type("packet", p).Int("len", len(b)).Msg("recv")
	return p, nil
}

// WritePacket encodes p for the opposite direction and sends it.
func (c *Conn) WritePacket(p packet.Packet) error {
	out := c.inbound.Opposite()

	c.writeBuf.Reset()
	if err := c.reg.MarshalTo(&c.writeBuf, out, p); err != nil {
		return err
	}
	if err := c.t.Send(c.writeBuf.Bytes()); err != nil {
		return err
	}
	c.metrics.recordEncoded(c.state, out)
	c.log.Debug().Stringer("state", c.state).Type("packet", p).Int("len", c.writeBuf.Len()).Msg("send")
	return nil
}

// Serve reads packets and dispatches each one to h, waiting for the
// handler before reading the next. It stops at the first read or handler
// error, or when ctx is done. Handlers may call SetState and
// SetCompression; the change applies from the next packet.
func (c *Conn) Serve(ctx context.Context, h packet.Handler) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		p, err := c.ReadPacket()
		if err != nil {
			return err
		}

		state := c.state
		start := time.Now()
		err = packet.Dispatch(ctx, p, h)
		c.metrics.observeHandler(state, start)
		if err != nil {
			return err
		}
	}
}
