package mcwire

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gstoney/mcwire/packet"
	"github.com/rs/zerolog"
)

var ErrServerClosed = errors.New("mcwire: server closed")

// Accept failures are retried after a delay that doubles up to maxAcceptDelay.
const (
	minAcceptDelay = 5 * time.Millisecond
	maxAcceptDelay = time.Second
)

// A Server defines parameters for running a Minecraft protocol endpoint.
type Server struct {
	Addr      string
	Transport TransportConfig

	// SessionEstablisher reads the handshake of a new connection. Defaults
	// to Handshake.
	SessionEstablisher SessionEstablisher
	SessionHandler     SessionHandler

	Logger  zerolog.Logger
	Metrics *Metrics

	mu       sync.Mutex
	listener net.Listener
	closed   bool
	conns    sync.WaitGroup
}

// SessionEstablisher is given a new connection in the Handshaking state.
// It fills the Session and leaves the Conn in the state the client asked
// for.
type SessionEstablisher func(ctx context.Context, s *Session, c *Conn) error

// SessionHandler runs a connection after its session is established. The
// connection is closed when it returns.
type SessionHandler func(ctx context.Context, s *Session, c *Conn) error

// A Session stores connection and states of a client.
type Session struct {
	LocalAddr  net.Addr
	RemoteAddr net.Addr

	ProtocolVersion int32
	ServerAddr      string
	ServerPort      uint16
	Intent          packet.HandshakeIntent
	Name            string
	PlayerUUID      uuid.UUID
}

// Handshake reads the opening Handshake packet and switches c to the
// requested state.
func Handshake(ctx context.Context, s *Session, c *Conn) error {
	p, err := c.ReadPacket()
	if err != nil {
		return err
	}
	hs, ok := p.(*packet.Handshake)
	if !ok {
		return fmt.Errorf("expected handshake, got %T", p)
	}

	s.ProtocolVersion = hs.ProtocolVersion
	s.ServerAddr = hs.ServerAddress
	s.ServerPort = hs.ServerPort
	s.Intent = hs.NextState
	c.SetState(hs.State())
	return nil
}

// ListenAndServe listens on s.Addr and calls Serve.
func (s *Server) ListenAndServe(ctx context.Context) error {
	l, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, l)
}

// Serve accepts incoming connections on the Listener l, creating a new
// goroutine for each. It returns ErrServerClosed after Shutdown or when
// ctx is done, once every connection has finished.
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		l.Close()
		return ErrServerClosed
	}
	s.listener = l
	s.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		<-ctx.Done()
		s.Shutdown()
	}()

	log := s.Logger.With().Str("addr", l.Addr().String()).Logger()
	log.Info().Msg("listening")

	var delay time.Duration
	for {
		c, err := l.Accept()
		if err != nil {
			if s.isClosed() {
				cancel()
				s.conns.Wait()
				return ErrServerClosed
			}
			if delay == 0 {
				delay = minAcceptDelay
			} else {
				delay = min(2*delay, maxAcceptDelay)
			}
			log.Warn().Err(err).Dur("retry_in", delay).Msg("accept")
			select {
			case <-time.After(delay):
			case <-ctx.Done():
			}
			continue
		}
		delay = 0

		s.conns.Add(1)
		go func() {
			defer s.conns.Done()
			s.serveConn(ctx, c)
		}()
	}
}

func (s *Server) serveConn(ctx context.Context, nc net.Conn) {
	defer nc.Close()

	// unblock reads once the server shuts down
	stop := context.AfterFunc(ctx, func() { nc.Close() })
	defer stop()

	log := s.Logger.With().Str("remote", nc.RemoteAddr().String()).Logger()
	s.Metrics.sessionOpened()
	defer s.Metrics.sessionClosed()

	session := &Session{
		LocalAddr:  nc.LocalAddr(),
		RemoteAddr: nc.RemoteAddr(),
	}
	c := NewConn(nc, packet.Serverbound, s.Transport, WithLogger(log), WithMetrics(s.Metrics))

	establish := s.SessionEstablisher
	if establish == nil {
		establish = Handshake
	}
	if err := establish(ctx, session, c); err != nil {
		log.Debug().Err(err).Msg("handshake failed")
		return
	}
	log.Debug().Int32("protocol", session.ProtocolVersion).Stringer("state", c.State()).Msg("session established")

	if s.SessionHandler == nil {
		return
	}
	if err := s.SessionHandler(ctx, session, c); err != nil && ctx.Err() == nil {
		log.Warn().Err(err).Str("reason", ErrorReason(err)).Msg("session ended")
		return
	}
	log.Debug().Str("player", session.Name).Msg("session closed")
}

func (s *Server) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Shutdown closes the listener. Serve then closes the open connections and
// waits for their handlers.
func (s *Server) Shutdown() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	if s.listener != nil {
		return s.listener.Close()
	}
	return nil
}
