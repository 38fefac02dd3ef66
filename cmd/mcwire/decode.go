package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/gstoney/mcwire/packet"
	"github.com/spf13/cobra"
)

var states = map[string]packet.State{
	"handshaking": packet.Handshaking,
	"status":      packet.Status,
	"login":       packet.Login,
	"play":        packet.Play,
}

var directions = map[string]packet.Direction{
	"serverbound": packet.Serverbound,
	"clientbound": packet.Clientbound,
}

type decoded struct {
	State     string        `json:"state"`
	Direction string        `json:"direction"`
	Opcode    string        `json:"opcode"`
	Type      string        `json:"type"`
	Packet    packet.Packet `json:"packet"`
}

func decodeCmd() *cobra.Command {
	var stateName, dirName string

	cmd := &cobra.Command{
		Use:   "decode <hex>",
		Short: "Decode one packet (opcode and payload) and print it as JSON",
		Long: `Decode one packet given as hex: the VarInt opcode followed by the
payload, without the frame length. Whitespace in the input is ignored.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, ok := states[strings.ToLower(stateName)]
			if !ok {
				return fmt.Errorf("unknown state %q", stateName)
			}
			dir, ok := directions[strings.ToLower(dirName)]
			if !ok {
				return fmt.Errorf("unknown direction %q", dirName)
			}
			b, err := hex.DecodeString(strings.Join(strings.Fields(args[0]), ""))
			if err != nil {
				return fmt.Errorf("invalid hex: %w", err)
			}
			return decode(cmd.OutOrStdout(), state, dir, b)
		},
	}

	cmd.Flags().StringVarP(&stateName, "state", "s", "play", "connection state: handshaking, status, login or play")
	cmd.Flags().StringVarP(&dirName, "direction", "d", "clientbound", "serverbound or clientbound")

	return cmd
}

func decode(w io.Writer, state packet.State, dir packet.Direction, b []byte) error {
	reg := packet.ProtocolFor(state)
	p, err := reg.Unmarshal(dir, b)
	if err != nil {
		return err
	}
	opcode, err := reg.Opcode(dir, p)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(decoded{
		State:     state.String(),
		Direction: dir.String(),
		Opcode:    fmt.Sprintf("0x%02X", opcode),
		Type:      strings.TrimPrefix(fmt.Sprintf("%T", p), "*packet."),
		Packet:    p,
	}, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
