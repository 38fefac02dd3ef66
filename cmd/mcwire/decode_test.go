package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/gstoney/mcwire/packet"
)

func TestDecodeCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := decodeCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--state", "handshaking", "--direction", "serverbound", "00 f805 09 6c6f63616c686f7374 63dd 02"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	for _, want := range []string{
		`"type": "Handshake"`,
		`"opcode": "0x00"`,
		`"ServerAddress": "localhost"`,
		`"ServerPort": 25565`,
		`"NextState": "login"`,
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output lacks %s:\n%s", want, out.String())
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	var out bytes.Buffer

	err := decode(&out, packet.Play, packet.Clientbound, []byte{0x7f})
	if !errors.Is(err, packet.ErrUnknownOpcode) {
		t.Errorf("unknown opcode: got %v", err)
	}

	// KeepAlive with a truncated id
	err = decode(&out, packet.Play, packet.Clientbound, []byte{0x20, 0x00, 0x01})
	var merr *packet.MalformedError
	if !errors.As(err, &merr) {
		t.Errorf("truncated packet: got %v, want MalformedError", err)
	}

	cmd := decodeCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--state", "config", "00"})
	if err := cmd.Execute(); err == nil {
		t.Error("unknown state accepted")
	}
}
