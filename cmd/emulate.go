// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Mira Voss, Glintwerk

package cmd

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/glintwerk/pendant/pkg/emulator"
	"github.com/glintwerk/pendant/pkg/hlink"
	"github.com/glintwerk/pendant/pkg/pendant"
	"github.com/spf13/cobra"
)

var emulateStore string

var emulateCmd = &cobra.Command{
	Use:   "emulate",
	Short: "Run an emulated pendant in the terminal",
	Long: `Run a fully emulated pendant in an interactive terminal UI.

The TUI shows the 5x7 matrix, the protocol state, both store cursors, and
link statistics. The emulated button hangs off the keyboard: tap it to
step through messages, hold it to put the device to sleep (and to wake it
again). The input line feeds bytes straight into the serial state machine,
so a full programming session can be typed by hand:

  H L A B <enter>        program "AB" as a message body
  ctrl+r                 send the abort byte (link reset)

With --store, the message store is loaded from the given snapshot at
startup and written back on exit.`,
	RunE: runEmulate,
}

func init() {
	emulateCmd.Flags().StringVar(&emulateStore, "store", "", "Store snapshot file to load and save")
	rootCmd.AddCommand(emulateCmd)
}

func runEmulate(cmd *cobra.Command, args []string) error {
	store := emulator.NewStore(hlink.StoreSize)
	if emulateStore != "" {
		if data, err := hlink.LoadImage(emulateStore); err == nil {
			if err := store.Load(data); err != nil {
				return err
			}
		}
	}

	matrix := emulator.NewMatrix()
	button := emulator.NewButton()
	dev := pendant.New(pendant.DefaultConfig(), matrix, store, button, button)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go dev.Run(ctx)

	// Tap the button once so the device wakes out of its power-up halt.
	go func() {
		time.Sleep(100 * time.Millisecond)
		button.Press()
		time.Sleep(100 * time.Millisecond)
		button.Release()
	}()

	p := tea.NewProgram(newEmulateModel(dev, matrix, button), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	cancel()

	if emulateStore != "" {
		if err := hlink.SaveImage(emulateStore, store.Snapshot()); err != nil {
			return err
		}
		fmt.Printf("Saved store snapshot to %s\n", emulateStore)
	}
	return nil
}
