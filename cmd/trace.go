// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Mira Voss, Glintwerk

package cmd

import (
	"fmt"
	"log"

	"github.com/glintwerk/pendant/pkg/hlink"
	"github.com/spf13/cobra"
)

var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Annotate link traffic byte by byte",
	Long: `Continuously read link bytes from the connection and print what each one
does to the pendant's protocol state machine: handshakes, mode changes,
store writes with their offsets, escapes, and resets.

Wire the host side of the link into the connection (or point --url at a
served emulator) to watch a programming session as the device sees it.`,
	RunE: runTrace,
}

func init() {
	rootCmd.AddCommand(traceCmd)
}

func runTrace(cmd *cobra.Command, args []string) error {
	conn, connInfo, err := OpenConnection()
	if err != nil {
		return err
	}
	defer conn.Close()

	fmt.Printf("Glint - Link Tracer\n")
	fmt.Printf("Connection: %s\n", connInfo)
	fmt.Printf("Press Ctrl+C to exit\n\n")

	tracer := hlink.NewTracer()
	buf := make([]byte, 128)

	for {
		n, err := conn.Read(buf)
		if err != nil {
			if err == ErrConnectionClosed {
				log.Printf("Connection closed")
				return nil
			}
			log.Printf("Read error: %v", err)
			continue
		}

		for i := 0; i < n; i++ {
			b := buf[i]
			if b >= ' ' && b < 127 {
				fmt.Printf("%02X %q  %s\n", b, b, tracer.Trace(b))
			} else {
				fmt.Printf("%02X      %s\n", b, tracer.Trace(b))
			}
		}
	}
}
