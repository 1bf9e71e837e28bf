// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: view/view.go
// Summary: Viewport renderer that paints the line buffer onto a terminal surface.
// Usage: Owned by the session loop; RenderFull runs once per frame.
// Notes: A dirty flag keeps per-frame rendering free when nothing changed.

package view

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/framegrace/ecto/buffer"
	"github.com/framegrace/ecto/terminal"
)

const (
	EditorName    = "Ecto"
	EditorVersion = "0.0"

	defaultFiller = "~"
)

// Options tunes rendering.
type Options struct {
	// Filler marks rows with no document content. Defaults to "~".
	Filler string
	// ClearStaleRows blanks rows past the end of the buffer on a full
	// repaint. When false those rows keep whatever was painted before.
	ClearStaleRows bool
}

// View tracks the viewport size and whether the next frame must repaint.
type View struct {
	surface     terminal.Surface
	buffer      *buffer.Buffer
	size        terminal.Coordinate
	needsRedraw bool
	opts        Options
}

// New creates a view over the default buffer sized to the surface's current
// size.
func New(surface terminal.Surface, opts Options) *View {
	if opts.Filler == "" {
		opts.Filler = defaultFiller
	}
	return &View{
		surface:     surface,
		buffer:      buffer.Default(),
		size:        surface.Size(),
		needsRedraw: true,
		opts:        opts,
	}
}

// Size is the last known viewport size.
func (v *View) Size() terminal.Coordinate {
	return v.size
}

// NeedsRedraw reports whether the next RenderFull will paint.
func (v *View) NeedsRedraw() bool {
	return v.needsRedraw
}

// Buffer returns the document being displayed.
func (v *View) Buffer() *buffer.Buffer {
	return v.buffer
}

// Resize records a new size and marks the view dirty, even when the size is
// unchanged. No output is produced.
func (v *View) Resize(to terminal.Coordinate) {
	v.size = to
	v.needsRedraw = true
}

// Load replaces the displayed buffer. A nil buffer is ignored.
func (v *View) Load(buf *buffer.Buffer) {
	if buf == nil {
		return
	}
	v.buffer = buf
	v.needsRedraw = true
}

// Initialize performs the first paint of a session: filler on every row, then
// the welcome block or the document.
func (v *View) Initialize() {
	v.drawEmptyScreen()
	if v.buffer.IsEmpty() {
		v.drawWelcome()
		return
	}
	v.RenderFull()
}

// RenderFull repaints the viewport if it is dirty. A zero-sized viewport is
// skipped and stays dirty until a usable size arrives.
func (v *View) RenderFull() {
	if !v.needsRedraw {
		return
	}
	if v.size.IsZeroArea() {
		return
	}

	if v.buffer.IsEmpty() {
		v.drawEmptyScreen()
		v.drawWelcome()
		v.needsRedraw = false
		return
	}

	width := int(v.size.X)
	for row := 0; row < int(v.size.Y); row++ {
		line, ok := v.buffer.Line(row)
		if !ok {
			if !v.opts.ClearStaleRows {
				break
			}
			v.RenderLine(row, "")
			continue
		}
		v.RenderLine(row, Truncate(line, width))
	}
	v.needsRedraw = false
}

// RenderLine clears row and writes text from its first column.
func (v *View) RenderLine(row int, text string) {
	v.surface.MoveCursor(terminal.FromNative(0, row))
	v.surface.ClearCurrentLine()
	v.surface.Write(text)
}

func (v *View) drawEmptyScreen() {
	for row := 0; row < int(v.size.Y); row++ {
		v.RenderLine(row, v.opts.Filler)
	}
}

func (v *View) drawWelcome() {
	width, height := v.size.Native()
	nameRow := height / 3
	versionRow := nameRow + 1

	padding := strings.Repeat(" ", welcomePadding(width, runewidth.StringWidth(EditorName)))
	if nameRow < height {
		v.RenderLine(nameRow, v.opts.Filler+padding+EditorName)
	}
	if versionRow < height {
		v.RenderLine(versionRow, v.opts.Filler+padding+"v"+EditorVersion)
	}
}

// welcomePadding centres text of the given display width, rounding left and
// leaving room for the filler column.
func welcomePadding(width, textWidth int) int {
	return max((width-textWidth)/2-1, 0)
}

// Truncate returns at most width leading characters of line.
func Truncate(line string, width int) string {
	if width <= 0 {
		return ""
	}
	count := 0
	for i := range line {
		if count == width {
			return line[:i]
		}
		count++
	}
	return line
}
