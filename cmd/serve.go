// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Mira Voss, Glintwerk

package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/glintwerk/pendant/pkg/emulator"
	"github.com/glintwerk/pendant/pkg/hlink"
	"github.com/glintwerk/pendant/pkg/pendant"
	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"
)

var (
	serveAddr  string
	serveStore string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve an emulated pendant's link over WebSocket",
	Long: `Run a headless emulated pendant and expose its serial link on a WebSocket
endpoint. Binary messages received on the socket are fed byte by byte into
the pendant's protocol state machine, so the program and trace commands can
target it with --url ws://host:port/.

The emulated button is pressed once at startup so the device runs through
its wake sequence and starts playing. With --store, the store is loaded
from the given snapshot at startup and written back on shutdown.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveAddr, "listen", "l", ":8473", "Listen address")
	serveCmd.Flags().StringVar(&serveStore, "store", "", "Store snapshot file to load and save")
	rootCmd.AddCommand(serveCmd)
}

var upgrader = websocket.Upgrader{
	// The link carries no credentials and the emulator is a local tool;
	// accept any origin.
	CheckOrigin: func(r *http.Request) bool { return true },
}

func runServe(cmd *cobra.Command, args []string) error {
	store := emulator.NewStore(hlink.StoreSize)
	if serveStore != "" {
		if data, err := hlink.LoadImage(serveStore); err == nil {
			if err := store.Load(data); err != nil {
				return err
			}
			fmt.Printf("Loaded store snapshot from %s\n", serveStore)
		} else {
			fmt.Printf("Starting with an empty store (%v)\n", err)
		}
	}

	matrix := emulator.NewMatrix()
	button := emulator.NewButton()
	dev := pendant.New(pendant.DefaultConfig(), matrix, store, button, button)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := dev.Run(ctx); err != nil && ctx.Err() == nil {
			log.Printf("device stopped: %v", err)
		}
	}()

	// Tap the button once so the device wakes out of its power-up halt.
	go func() {
		time.Sleep(100 * time.Millisecond)
		button.Press()
		time.Sleep(100 * time.Millisecond)
		button.Release()
	}()

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("upgrade failed: %v", err)
			return
		}
		defer conn.Close()
		log.Printf("link attached: %s", r.RemoteAddr)

		for {
			messageType, data, err := conn.ReadMessage()
			if err != nil {
				log.Printf("link detached: %s", r.RemoteAddr)
				return
			}
			if messageType != websocket.BinaryMessage {
				continue
			}
			for _, b := range data {
				dev.Receive(b)
			}
		}
	})

	server := &http.Server{Addr: serveAddr, Handler: mux}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	fmt.Printf("Glint - Emulated Pendant\n")
	fmt.Printf("Link endpoint: ws://%s/\n", serveAddr)
	fmt.Printf("Press Ctrl+C to exit\n\n")

	err := server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		return err
	}

	if serveStore != "" {
		if err := hlink.SaveImage(serveStore, store.Snapshot()); err != nil {
			return err
		}
		fmt.Printf("Saved store snapshot to %s\n", serveStore)
	}

	st := dev.Stats()
	fmt.Printf("Link bytes: %d, programmed: %d, resets: %d\n",
		st.BytesReceived, st.BytesProgrammed, st.Resets)
	return nil
}
