// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: buffer/buffer.go
// Summary: Read-only, in-memory document shown by the viewer.
// Usage: Loaded once at startup; owned by the viewport renderer afterwards.

package buffer

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/go-enry/go-enry/v2"
)

// Greeting is the single line of the default buffer.
const Greeting = "Hello, friends!"

// ErrInvalidEncoding is returned when a file is binary or not valid UTF-8.
var ErrInvalidEncoding = errors.New("invalid encoding")

// Buffer is an ordered list of lines. Line order is document order and
// display order.
type Buffer struct {
	lines    []string
	language string
}

// Default returns the placeholder buffer used when no file is loaded.
func Default() *Buffer {
	return &Buffer{lines: []string{Greeting}}
}

// FromLines builds a buffer over a copy of the given lines.
func FromLines(lines []string) *Buffer {
	out := make([]string, len(lines))
	copy(out, lines)
	return &Buffer{lines: out}
}

// Load reads the whole file at path and splits it into lines. A final newline
// does not introduce a trailing empty line, and CRLF endings are stripped.
func Load(path string) (*Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if enry.IsBinary(data) || !utf8.Valid(data) {
		return nil, fmt.Errorf("load %s: %w", path, ErrInvalidEncoding)
	}

	lines, err := splitLines(data)
	if err != nil {
		return nil, fmt.Errorf("split %s: %w", path, err)
	}
	language := enry.GetLanguage(filepath.Base(path), data)
	log.Printf("Buffer: loaded %s (%d lines, language %q)", path, len(lines), language)
	return &Buffer{lines: lines, language: language}, nil
}

// LoadOrDefault loads path, falling back to the default buffer on any error.
// An empty path selects the default buffer without touching the filesystem.
func LoadOrDefault(path string) *Buffer {
	if path == "" {
		return Default()
	}
	buf, err := Load(path)
	if err != nil {
		log.Printf("Buffer: falling back to default: %v", err)
		return Default()
	}
	return buf
}

func splitLines(data []byte) ([]string, error) {
	lines := make([]string, 0, bytes.Count(data, []byte{'\n'})+1)
	scanner := bufio.NewScanner(bytes.NewReader(data))
	// A single line may be as long as the whole file.
	scanner.Buffer(make([]byte, 0, 64*1024), len(data)+1)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// IsEmpty reports whether the buffer has no lines at all.
func (b *Buffer) IsEmpty() bool {
	return len(b.lines) == 0
}

// Len returns the number of lines.
func (b *Buffer) Len() int {
	return len(b.lines)
}

// Line returns the line at index and whether it exists.
func (b *Buffer) Line(index int) (string, bool) {
	if index < 0 || index >= len(b.lines) {
		return "", false
	}
	return b.lines[index], true
}

// Lines returns a copy of all lines.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// Language is the detected language of a loaded file, or "" when unknown.
func (b *Buffer) Language() string {
	return b.language
}
