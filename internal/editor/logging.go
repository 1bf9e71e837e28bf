// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/editor/logging.go
// Summary: Routes the standard logger to a file so it never touches the screen.

package editor

import (
	"io"
	"log"
	"os"
	"path/filepath"
)

// SetupLogging sends log output to path, creating its directory. On failure
// the logger is silenced and the error returned.
func SetupLogging(path string) (io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		log.SetOutput(io.Discard)
		return nil, err
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o640)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil, err
	}
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return file, nil
}
