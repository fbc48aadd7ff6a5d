// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Mira Voss, Glintwerk

package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/glintwerk/pendant/pkg/hlink"
	"github.com/spf13/cobra"
)

var (
	programFile   string
	programRaw    bool
	programNoRst  bool
	programDryRun bool
)

var programCmd = &cobra.Command{
	Use:   "program [mode:text ...]",
	Short: "Program messages into a pendant's store",
	Long: `Program messages into the pendant's message store over its serial link.

Each message is given as MODE:TEXT, where MODE is the mode byte in hex
(direction, repetition delay, step increment, and speed packed into one
byte) and TEXT is the message body. Example:

  glint program --port /dev/ttyUSB0 "05:HELLO WORLD"
  glint program --port /dev/ttyUSB0 --raw "8C:~A"

Messages can also come from a file (--file) with one MODE:TEXT entry per
line; blank lines and lines starting with '#' are skipped.

Text is escaped for the link automatically; pass --raw when TEXT already
contains wire escapes ('^', '~', '$'-style bodies built by hand). Unless
--no-reset is given, the abort byte is sent first so both store cursors
start from the beginning.`,
	Args: cobra.ArbitraryArgs,
	RunE: runProgram,
}

func init() {
	programCmd.Flags().StringVarP(&programFile, "file", "f", "", "Read MODE:TEXT entries from a file")
	programCmd.Flags().BoolVar(&programRaw, "raw", false, "Treat TEXT as raw message body bytes")
	programCmd.Flags().BoolVar(&programNoRst, "no-reset", false, "Do not send the abort byte before programming")
	programCmd.Flags().BoolVar(&programDryRun, "dry-run", false, "Print the link bytes instead of sending them")
	rootCmd.AddCommand(programCmd)
}

func runProgram(cmd *cobra.Command, args []string) error {
	entries := args
	if programFile != "" {
		fileEntries, err := readMessageFile(programFile)
		if err != nil {
			return err
		}
		entries = append(fileEntries, entries...)
	}
	if len(entries) == 0 {
		return fmt.Errorf("no messages given (arguments or --file)")
	}

	msgs := make([]hlink.Message, 0, len(entries))
	for _, e := range entries {
		m, err := parseMessageEntry(e)
		if err != nil {
			return err
		}
		msgs = append(msgs, m)
	}

	// Fail early if the result would not fit the store.
	if _, err := hlink.EncodeStore(msgs, hlink.StoreSize); err != nil {
		return err
	}

	stream, err := hlink.ProgramStream(msgs)
	if err != nil {
		return err
	}
	if !programNoRst {
		stream = hlink.WithReset(stream)
	}

	if programDryRun {
		fmt.Printf("%d message(s), %d link byte(s)\n", len(msgs), len(stream))
		for i, b := range stream {
			if i > 0 && i%16 == 0 {
				fmt.Println()
			}
			fmt.Printf("%02X ", b)
		}
		fmt.Println()
		return nil
	}

	conn, connInfo, err := OpenConnection()
	if err != nil {
		return err
	}
	defer conn.Close()

	fmt.Printf("Connection: %s\n", connInfo)
	if _, err := conn.Write(stream); err != nil {
		return fmt.Errorf("failed to send programming stream: %w", err)
	}
	fmt.Printf("Programmed %d message(s) (%d link bytes)\n", len(msgs), len(stream))
	return nil
}

// parseMessageEntry parses one MODE:TEXT entry.
func parseMessageEntry(entry string) (hlink.Message, error) {
	modeStr, text, ok := strings.Cut(entry, ":")
	if !ok {
		return hlink.Message{}, fmt.Errorf("invalid message %q: expected MODE:TEXT", entry)
	}
	mode, err := strconv.ParseUint(modeStr, 16, 8)
	if err != nil {
		return hlink.Message{}, fmt.Errorf("invalid mode byte %q: %v", modeStr, err)
	}
	if mode == 0 {
		return hlink.Message{}, fmt.Errorf("mode byte 0 is the end-of-store marker")
	}

	body := []byte(text)
	if !programRaw {
		body = hlink.EncodeText(text)
	}
	return hlink.Message{Mode: hlink.DecodeMode(byte(mode)), Body: body}, nil
}

func readMessageFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open message file: %w", err)
	}
	defer f.Close()

	var entries []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entries = append(entries, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read message file: %w", err)
	}
	return entries, nil
}
