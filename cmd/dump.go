// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Mira Voss, Glintwerk

package cmd

import (
	"fmt"

	"github.com/glintwerk/pendant/pkg/hlink"
	"github.com/spf13/cobra"
)

var dumpCmd = &cobra.Command{
	Use:   "dump IMAGE",
	Short: "Decode a store image file",
	Long: `Decode a saved store image and list its messages in human-readable form.

Store images are CBOR snapshot files written by the emulator (emulate
--store, serve --store). Each message is shown with its decoded mode
fields and its body with escape sequences expanded.`,
	Args: cobra.ExactArgs(1),
	RunE: runDump,
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}

func runDump(cmd *cobra.Command, args []string) error {
	data, err := hlink.LoadImage(args[0])
	if err != nil {
		return err
	}
	out, err := hlink.FormatStore(data)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}
