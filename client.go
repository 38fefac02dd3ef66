package mcwire

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/gstoney/mcwire/packet"
)

// Dial connects to a server and returns a client side Conn in the
// Handshaking state.
func Dial(ctx context.Context, addr string, cfg TransportConfig, opts ...ConnOption) (*Conn, net.Conn, error) {
	var d net.Dialer
	nc, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, nil, err
	}
	return NewConn(nc, packet.Clientbound, cfg, opts...), nc, nil
}

// QueryStatus runs the server list ping on a fresh client connection: it
// requests the status document, then measures one ping round trip.
func QueryStatus(c *Conn, addr string) (s packet.ServerStatus, latency time.Duration, err error) {
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return
	}
	port, err := strconv.ParseUint(portStr, 10, 16)
	if err != nil {
		return s, 0, fmt.Errorf("invalid port %q: %w", portStr, err)
	}

	err = c.WritePacket(&packet.Handshake{
		ProtocolVersion: packet.ProtocolVersion,
		ServerAddress:   host,
		ServerPort:      uint16(port),
		NextState:       packet.IntentStatus,
	})
	if err != nil {
		return
	}
	c.SetState(packet.Status)

	if err = c.WritePacket(&packet.StatusRequest{}); err != nil {
		return
	}
	p, err := c.ReadPacket()
	if err != nil {
		return
	}
	resp, ok := p.(*packet.StatusResponse)
	if !ok {
		return s, 0, fmt.Errorf("expected status response, got %T", p)
	}
	if s, err = resp.Status(); err != nil {
		return
	}

	start := time.Now()
	if err = c.WritePacket(&packet.PingRequest{Payload: start.UnixMilli()}); err != nil {
		return
	}
	if p, err = c.ReadPacket(); err != nil {
		return
	}
	pong, ok := p.(*packet.PongResponse)
	if !ok {
		return s, 0, fmt.Errorf("expected pong, got %T", p)
	}
	if pong.Payload != start.UnixMilli() {
		return s, 0, fmt.Errorf("pong payload %d does not match ping %d", pong.Payload, start.UnixMilli())
	}
	return s, time.Since(start), nil
}
