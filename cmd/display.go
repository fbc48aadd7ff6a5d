// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Mira Voss, Glintwerk

package cmd

import (
	"fmt"
	"strconv"

	"github.com/glintwerk/pendant/pkg/hlink"
	"github.com/spf13/cobra"
)

var displayClear bool

var displayCmd = &cobra.Command{
	Use:   "display MODE TEXT",
	Short: "Show text live on a pendant's display",
	Long: `Put the pendant in live display mode and show TEXT without touching the
message store. MODE is the mode byte in hex, as for the program command.

The text stays on the display until the device is reset or another link
command takes over; pass --clear to blank the display again afterwards.

  glint display --port /dev/ttyUSB0 05 "HELLO"`,
	Args: cobra.ExactArgs(2),
	RunE: runDisplay,
}

func init() {
	displayCmd.Flags().BoolVar(&displayClear, "clear", false, "Blank the display after sending the text")
	rootCmd.AddCommand(displayCmd)
}

func runDisplay(cmd *cobra.Command, args []string) error {
	mode, err := strconv.ParseUint(args[0], 16, 8)
	if err != nil {
		return fmt.Errorf("invalid mode byte %q: %v", args[0], err)
	}

	stream := hlink.DisplayStream(hlink.DecodeMode(byte(mode)), args[1])
	if displayClear {
		stream = append(stream, '\r')
	}

	conn, connInfo, err := OpenConnection()
	if err != nil {
		return err
	}
	defer conn.Close()

	fmt.Printf("Connection: %s\n", connInfo)
	if _, err := conn.Write(stream); err != nil {
		return fmt.Errorf("failed to send display stream: %w", err)
	}
	fmt.Printf("Sent %d link byte(s)\n", len(stream))
	return nil
}
