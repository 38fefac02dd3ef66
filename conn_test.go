package mcwire

import (
	"bytes"
	"context"
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/gstoney/mcwire/packet"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
)

type duplex struct {
	io.Reader
	io.Writer
}

// pair returns a client and a server Conn joined by one in-memory buffer
// per direction.
func pair(opts ...ConnOption) (client, server *Conn) {
	toServer, toClient := new(bytes.Buffer), new(bytes.Buffer)
	client = NewConn(duplex{toClient, toServer}, packet.Clientbound, defaultConfig())
	server = NewConn(duplex{toServer, toClient}, packet.Serverbound, defaultConfig(), opts...)
	return
}

func TestConnReadWrite(t *testing.T) {
	client, server := pair()

	hs := &packet.Handshake{
		ProtocolVersion: packet.ProtocolVersion,
		ServerAddress:   "localhost",
		ServerPort:      25565,
		NextState:       packet.IntentStatus,
	}
	if err := client.WritePacket(hs); err != nil {
		t.Fatalf("WritePacket: %v", err)
	}
	p, err := server.ReadPacket()
	if err != nil {
		t.Fatalf("ReadPacket: %v", err)
	}
	if !reflect.DeepEqual(p, hs) {
		t.Errorf("got %#v, want %#v", p, hs)
	}

	client.SetState(packet.Status)
	server.SetState(packet.Status)
	if err := server.WritePacket(&packet.PongResponse{Payload: 99}); err != nil {
		t.Fatalf("WritePacket: %v", err)
	}
	p, err = client.ReadPacket()
	if err != nil {
		t.Fatalf("ReadPacket: %v", err)
	}
	if pong, ok := p.(*packet.PongResponse); !ok || pong.Payload != 99 {
		t.Errorf("got %#v, want PongResponse 99", p)
	}
}

func TestConnWrongDirection(t *testing.T) {
	client, _ := pair()
	client.SetState(packet.Play)

	// a client cannot send a clientbound-only packet
	err := client.WritePacket(&packet.SetHealth{Health: 20})
	if !errors.Is(err, packet.ErrUnregisteredPacket) {
		t.Errorf("WritePacket: got %v, want ErrUnregisteredPacket", err)
	}
}

func TestConnLogsPacketType(t *testing.T) {
	var logs bytes.Buffer
	client, server := pair(WithLogger(zerolog.New(&logs).Level(zerolog.DebugLevel)))

	if err := client.WritePacket(&packet.Handshake{NextState: packet.IntentStatus}); err != nil {
		t.Fatal(err)
	}
	if _, err := server.ReadPacket(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(logs.String(), `"packet":"*packet.Handshake"`) {
		t.Errorf("recv log = %s", logs.String())
	}

	logs.Reset()
	server.SetState(packet.Status)
	if err := server.WritePacket(&packet.PongResponse{Payload: 1}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(logs.String(), `"packet":"*packet.PongResponse"`) {
		t.Errorf("send log = %s", logs.String())
	}
}

type recorder struct {
	conn  *Conn
	seen  []string
	fail  error
	state packet.State
}

func (r *recorder) HandleHandshake(ctx context.Context, p *packet.Handshake) error {
	r.seen = append(r.seen, "handshake")
	r.conn.SetState(p.State())
	return nil
}

func (r *recorder) HandleStatusRequest(ctx context.Context, p *packet.StatusRequest) error {
	r.seen = append(r.seen, "status")
	r.state = r.conn.State()
	return nil
}

func (r *recorder) HandlePingRequest(ctx context.Context, p *packet.PingRequest) error {
	r.seen = append(r.seen, "ping")
	return r.fail
}

func TestConnServe(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(WithRegistry(reg))
	client, server := pair(WithMetrics(m))

	errStop := errors.New("stop")
	h := &recorder{conn: server, fail: errStop}

	if err := client.WritePacket(&packet.Handshake{ServerAddress: "localhost", NextState: packet.IntentStatus}); err != nil {
		t.Fatal(err)
	}
	client.SetState(packet.Status)
	for _, p := range []packet.Packet{
		&packet.StatusRequest{},
		&packet.PingRequest{Payload: 1},
		&packet.PingRequest{Payload: 2},
	} {
		if err := client.WritePacket(p); err != nil {
			t.Fatal(err)
		}
	}

	err := server.Serve(context.Background(), h)
	if err != errStop {
		t.Fatalf("Serve: got %v, want the handler error", err)
	}
	want := []string{"handshake", "status", "ping"}
	if !reflect.DeepEqual(h.seen, want) {
		t.Errorf("handled %v, want %v", h.seen, want)
	}
	if h.state != packet.Status {
		t.Errorf("state during status request = %v, want status", h.state)
	}

	if got := testutil.ToFloat64(m.decoded.WithLabelValues("handshaking", "serverbound")); got != 1 {
		t.Errorf("handshaking packets decoded = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.decoded.WithLabelValues("status", "serverbound")); got != 2 {
		t.Errorf("status packets decoded = %v, want 2", got)
	}
}

func TestConnServeStopsOnDecodeError(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(WithRegistry(reg))
	client, server := pair(WithMetrics(m))

	// opcode 0x05 is not a handshaking packet
	if err := client.t.Send([]byte{0x05, 0x00}); err != nil {
		t.Fatal(err)
	}
	if err := client.WritePacket(&packet.Handshake{NextState: packet.IntentLogin}); err != nil {
		t.Fatal(err)
	}

	h := &recorder{conn: server}
	err := server.Serve(context.Background(), h)
	if !errors.Is(err, packet.ErrUnknownOpcode) {
		t.Fatalf("Serve: got %v, want ErrUnknownOpcode", err)
	}
	if len(h.seen) != 0 {
		t.Errorf("handled %v after a decode error", h.seen)
	}
	if got := testutil.ToFloat64(m.decodeErrors.WithLabelValues("handshaking", "unknown_opcode")); got != 1 {
		t.Errorf("decode errors = %v, want 1", got)
	}
}

func TestConnServeContext(t *testing.T) {
	client, server := pair()
	if err := client.WritePacket(&packet.Handshake{NextState: packet.IntentStatus}); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	h := &recorder{conn: server}
	if err := server.Serve(ctx, h); !errors.Is(err, context.Canceled) {
		t.Errorf("Serve: got %v, want context.Canceled", err)
	}
	if len(h.seen) != 0 {
		t.Errorf("handled %v with a done context", h.seen)
	}
}

func TestConnCompression(t *testing.T) {
	client, server := pair()
	client.SetState(packet.Play)
	server.SetState(packet.Play)
	client.SetCompression(16)
	server.SetCompression(16)

	msg := &packet.Disconnect{Reason: packet.TextChat("The server is restarting, come back in five minutes")}
	if err := server.WritePacket(msg); err != nil {
		t.Fatal(err)
	}
	p, err := client.ReadPacket()
	if err != nil {
		t.Fatalf("ReadPacket: %v", err)
	}
	if !reflect.DeepEqual(p, msg) {
		t.Errorf("got %#v, want %#v", p, msg)
	}
}

func TestErrorReason(t *testing.T) {
	type TestCase struct {
		err  error
		want string
	}
	tcs := []TestCase{
		{nil, "none"},
		{&packet.UnknownOpcodeError{Opcode: 0x7f}, "unknown_opcode"},
		{&packet.MalformedError{Err: &packet.UnknownDiscriminantError{Family: "hand", Value: int32(5)}}, "unknown_discriminant"},
		{&packet.MalformedError{Err: packet.ErrTrailingData}, "trailing_data"},
		{&packet.MalformedError{Err: packet.ErrTruncated}, "truncated"},
		{&packet.MalformedError{Err: packet.ErrInvalidJSON}, "malformed"},
		{ErrPacketTooBig, "too_big"},
		{ErrZlibTrailingData, "transport"},
	}
	for _, tc := range tcs {
		if got := ErrorReason(tc.err); got != tc.want {
			t.Errorf("ErrorReason(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}
