// Package endpoint answers server list pings and turns players away at
// login with a configured message.
package endpoint

import (
	"context"
	"errors"

	"github.com/gstoney/mcwire"
	"github.com/gstoney/mcwire/packet"
	"github.com/rs/zerolog"
)

// errDone ends a session once its last packet has been sent.
var errDone = errors.New("session done")

type Config struct {
	Description packet.Chat
	VersionName string
	MaxPlayers  int
	Favicon     string

	DisconnectMessage packet.Chat
	// CompressionThreshold is announced before the disconnect; negative
	// leaves compression off.
	CompressionThreshold int
}

type Endpoint struct {
	cfg Config
	log zerolog.Logger
}

func New(cfg Config, log zerolog.Logger) *Endpoint {
	return &Endpoint{cfg: cfg, log: log}
}

// Status returns the document sent in answer to a status request.
func (e *Endpoint) Status() packet.ServerStatus {
	return packet.ServerStatus{
		Version: packet.StatusVersion{
			Name:     e.cfg.VersionName,
			Protocol: packet.ProtocolVersion,
		},
		Players: packet.StatusPlayers{
			Max: e.cfg.MaxPlayers,
		},
		Description: e.cfg.Description,
		Favicon:     e.cfg.Favicon,
	}
}

// Serve is a mcwire.SessionHandler.
func (e *Endpoint) Serve(ctx context.Context, s *mcwire.Session, c *mcwire.Conn) error {
	err := c.Serve(ctx, &session{e: e, s: s, c: c})
	if errors.Is(err, errDone) {
		return nil
	}
	return err
}

type session struct {
	e *Endpoint
	s *mcwire.Session
	c *mcwire.Conn
}

func (h *session) HandleStatusRequest(ctx context.Context, p *packet.StatusRequest) error {
	resp, err := packet.NewStatusResponse(h.e.Status())
	if err != nil {
		return err
	}
	return h.c.WritePacket(resp)
}

func (h *session) HandlePingRequest(ctx context.Context, p *packet.PingRequest) error {
	if err := h.c.WritePacket(&packet.PongResponse{Payload: p.Payload}); err != nil {
		return err
	}
	return errDone
}

func (h *session) HandleLoginStart(ctx context.Context, p *packet.LoginStart) error {
	h.s.Name = p.Name
	if p.PlayerUUID.Exists {
		h.s.PlayerUUID = p.PlayerUUID.Item
	} else {
		h.s.PlayerUUID = packet.OfflineUUID(p.Name)
	}

	if t := h.e.cfg.CompressionThreshold; t >= 0 {
		if err := h.c.WritePacket(&packet.SetCompression{Threshold: int32(t)}); err != nil {
			return err
		}
		h.c.SetCompression(t)
	}

	h.e.log.Info().
		Str("player", h.s.Name).
		Str("uuid", h.s.PlayerUUID.String()).
		Str("remote", h.s.RemoteAddr.String()).
		Msg("login refused")

	if err := h.c.WritePacket(&packet.LoginDisconnect{Reason: h.e.cfg.DisconnectMessage}); err != nil {
		return err
	}
	return errDone
}
