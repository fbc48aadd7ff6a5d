// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Mira Voss, Glintwerk

package cmd

import (
	"github.com/spf13/cobra"
)

var (
	// Serial connection flags
	portName string
	baudRate int

	// WebSocket connection flags
	wsURL         string
	wsUsername    string
	wsNoSSLVerify bool
)

var rootCmd = &cobra.Command{
	Use:   "glint",
	Short: "Glint pixel-pendant toolkit",
	Long: `Glint - programmer, tracer, and emulator for the Glint pixel pendant.

Provides commands for programming messages into a pendant's store over its
serial link, tracing and decoding link traffic, dumping store images, and
running a fully emulated pendant in the terminal.

Connection modes:
  Serial:    --port /dev/ttyUSB0 [--baud 2400]
  WebSocket: --url ws://host/path [--username user]

The pendant's link runs at 2400 baud so EEPROM writes finish between bytes;
leave --baud alone unless you know the hardware differs. For WebSocket
authentication the password is read from the GLINT_PASSWORD environment
variable, or prompted interactively if not set.`,
	Version: "1.2.0",
}

func init() {
	// Serial connection flags
	rootCmd.PersistentFlags().StringVarP(&portName, "port", "p", "", "Serial port device")
	rootCmd.PersistentFlags().IntVarP(&baudRate, "baud", "b", 2400, "Baud rate (serial only)")

	// WebSocket connection flags
	rootCmd.PersistentFlags().StringVarP(&wsURL, "url", "u", "", "WebSocket URL (ws:// or wss://)")
	rootCmd.PersistentFlags().StringVar(&wsUsername, "username", "", "Username for HTTP Basic auth")
	rootCmd.PersistentFlags().BoolVar(&wsNoSSLVerify, "no-ssl-verify", false, "Skip TLS certificate verification (wss:// only)")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
