// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/ecto/main.go
// Summary: Terminal text viewer entry point.
// Usage: Run `ecto [file]`; Ctrl-Q quits.

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/framegrace/ecto/config"
	"github.com/framegrace/ecto/internal/editor"
	"github.com/framegrace/ecto/view"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("ecto", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: ecto [file]\n")
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() > 1 {
		return fmt.Errorf("expected at most one file, got %d", fs.NArg())
	}

	closer := startLogging(config.Config{})
	cfg := config.Get()
	if custom := cfg.GetString("log", "file", ""); custom != "" {
		closeQuietly(closer)
		closer = startLogging(cfg)
	}
	defer closeQuietly(closer)
	if err := config.Err(); err != nil {
		log.Printf("Config: continuing with defaults: %v", err)
	}

	return editor.Run(editor.Options{
		Path: fs.Arg(0),
		View: view.Options{
			Filler:         cfg.GetString("view", "filler", "~"),
			ClearStaleRows: cfg.GetBool("view", "clear_stale_rows", false),
		},
		PanicLog: cfg.GetString("log", "panic_file", ""),
		Output:   os.Stdout,
	})
}

func startLogging(cfg config.Config) io.Closer {
	path, err := cfg.LogPath()
	if err != nil {
		log.SetOutput(io.Discard)
		fmt.Fprintf(os.Stderr, "logging disabled: %v\n", err)
		return nil
	}
	closer, err := editor.SetupLogging(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging disabled: %v\n", err)
		return nil
	}
	return closer
}

func closeQuietly(c io.Closer) {
	if c != nil {
		c.Close()
	}
}
