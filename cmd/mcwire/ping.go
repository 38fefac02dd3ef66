package main

import (
	"context"
	"fmt"
	"net"
	"time"

	json "github.com/goccy/go-json"
	"github.com/gstoney/mcwire"
	"github.com/spf13/cobra"
)

func pingCmd() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "ping <host[:port]>",
		Short: "Query the status of a server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr := args[0]
			if _, _, err := net.SplitHostPort(addr); err != nil {
				addr = net.JoinHostPort(addr, "25565")
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			c, nc, err := mcwire.Dial(ctx, addr, mcwire.DefaultTransportConfig())
			if err != nil {
				return err
			}
			defer nc.Close()
			if deadline, ok := ctx.Deadline(); ok {
				nc.SetDeadline(deadline)
			}

			status, latency, err := mcwire.QueryStatus(c, addr)
			if err != nil {
				return err
			}

			b, err := json.MarshalIndent(status, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(b))
			fmt.Fprintf(cmd.OutOrStdout(), "latency: %s\n", latency.Round(time.Millisecond))
			return nil
		},
	}

	cmd.Flags().DurationVarP(&timeout, "timeout", "t", 5*time.Second, "dial and exchange timeout")

	return cmd
}
