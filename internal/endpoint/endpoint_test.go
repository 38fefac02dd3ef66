package endpoint

import (
	"context"
	"net"
	"testing"

	"github.com/gstoney/mcwire"
	"github.com/gstoney/mcwire/packet"
	"github.com/rs/zerolog"
)

func testConfig() Config {
	return Config{
		Description:          packet.TextChat("A Minecraft Server"),
		VersionName:          "1.19.2",
		MaxPlayers:           20,
		DisconnectMessage:    packet.TextChat("Come back later"),
		CompressionThreshold: 64,
	}
}

// serve runs the endpoint on the server end of a pipe and returns the client
// end along with the session error.
func serve(t *testing.T, e *Endpoint) (*mcwire.Conn, *mcwire.Session, <-chan error) {
	t.Helper()
	server, client := net.Pipe()
	t.Cleanup(func() {
		client.Close()
		server.Close()
	})

	s := &mcwire.Session{LocalAddr: server.LocalAddr(), RemoteAddr: server.RemoteAddr()}
	done := make(chan error, 1)
	go func() {
		defer server.Close()
		ctx := context.Background()
		c := mcwire.NewConn(server, packet.Serverbound, mcwire.DefaultTransportConfig())
		if err := mcwire.Handshake(ctx, s, c); err != nil {
			done <- err
			return
		}
		done <- e.Serve(ctx, s, c)
	}()

	return mcwire.NewConn(client, packet.Clientbound, mcwire.DefaultTransportConfig()), s, done
}

func TestStatusExchange(t *testing.T) {
	e := New(testConfig(), zerolog.Nop())
	c, s, done := serve(t, e)

	status, _, err := mcwire.QueryStatus(c, "play.example.com:25565")
	if err != nil {
		t.Fatalf("QueryStatus: %v", err)
	}
	if err := <-done; err != nil {
		t.Fatalf("Serve: %v", err)
	}

	if status.Version.Protocol != packet.ProtocolVersion {
		t.Errorf("protocol = %d, want %d", status.Version.Protocol, packet.ProtocolVersion)
	}
	if status.Players.Max != 20 {
		t.Errorf("max players = %d, want 20", status.Players.Max)
	}
	if got := status.Description.PlainText(); got != "A Minecraft Server" {
		t.Errorf("description = %q", got)
	}
	if s.ServerAddr != "play.example.com" || s.ServerPort != 25565 {
		t.Errorf("session address = %s:%d", s.ServerAddr, s.ServerPort)
	}
	if s.Intent != packet.IntentStatus {
		t.Errorf("intent = %v, want %v", s.Intent, packet.IntentStatus)
	}
}

func TestLoginRefused(t *testing.T) {
	e := New(testConfig(), zerolog.Nop())
	c, s, done := serve(t, e)

	err := c.WritePacket(&packet.Handshake{
		ProtocolVersion: packet.ProtocolVersion,
		ServerAddress:   "localhost",
		ServerPort:      25565,
		NextState:       packet.IntentLogin,
	})
	if err != nil {
		t.Fatal(err)
	}
	c.SetState(packet.Login)
	if err := c.WritePacket(&packet.LoginStart{Name: "Steve"}); err != nil {
		t.Fatal(err)
	}

	p, err := c.ReadPacket()
	if err != nil {
		t.Fatalf("ReadPacket: %v", err)
	}
	sc, ok := p.(*packet.SetCompression)
	if !ok || sc.Threshold != 64 {
		t.Fatalf("got %#v, want SetCompression 64", p)
	}
	c.SetCompression(int(sc.Threshold))

	p, err = c.ReadPacket()
	if err != nil {
		t.Fatalf("ReadPacket: %v", err)
	}
	d, ok := p.(*packet.LoginDisconnect)
	if !ok {
		t.Fatalf("got %T, want LoginDisconnect", p)
	}
	if got := d.Reason.PlainText(); got != "Come back later" {
		t.Errorf("reason = %q", got)
	}

	if err := <-done; err != nil {
		t.Fatalf("Serve: %v", err)
	}
	if s.Name != "Steve" {
		t.Errorf("name = %q", s.Name)
	}
	if s.PlayerUUID != packet.OfflineUUID("Steve") {
		t.Errorf("uuid = %s, want offline uuid", s.PlayerUUID)
	}
}
