// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package view

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/ecto/buffer"
	"github.com/framegrace/ecto/terminal"
)

// gridSurface is an in-memory Surface that keeps one string per row and
// counts calls to Write.
type gridSurface struct {
	size   terminal.Coordinate
	rows   []string
	pen    terminal.Coordinate
	writes int
}

func newGridSurface(width, height uint16) *gridSurface {
	return &gridSurface{
		size: terminal.Coordinate{X: width, Y: height},
		rows: make([]string, height),
	}
}

func (s *gridSurface) Enter() error                      { return nil }
func (s *gridSurface) Exit()                             {}
func (s *gridSurface) Size() terminal.Coordinate         { return s.size }
func (s *gridSurface) MoveCursor(to terminal.Coordinate) { s.pen = to }
func (s *gridSurface) HideCursor()                       {}
func (s *gridSurface) ShowCursor()                       {}
func (s *gridSurface) Flush()                            {}
func (s *gridSurface) PollEvent() tcell.Event            { return nil }
func (s *gridSurface) ClearScreen()                      { s.rows = make([]string, s.size.Y) }
func (s *gridSurface) ClearCurrentLine()                 { s.rows[s.pen.Y] = "" }

func (s *gridSurface) Write(text string) {
	s.writes++
	s.rows[s.pen.Y] += text
}

func (s *gridSurface) fill(text string) {
	for i := range s.rows {
		s.rows[i] = text
	}
}

func newView(surface *gridSurface, lines []string, opts Options) *View {
	v := New(surface, opts)
	v.Load(buffer.FromLines(lines))
	return v
}

func TestRenderFullIsIdempotent(t *testing.T) {
	surface := newGridSurface(10, 4)
	v := newView(surface, []string{"one", "two"}, Options{})

	v.RenderFull()
	first := surface.writes
	if first == 0 {
		t.Fatal("first render wrote nothing")
	}
	if v.NeedsRedraw() {
		t.Fatal("render should clear the dirty flag")
	}

	v.RenderFull()
	if surface.writes != first {
		t.Fatalf("second render wrote %d more times", surface.writes-first)
	}
}

func TestResizeMarksDirtyEvenForSameSize(t *testing.T) {
	surface := newGridSurface(10, 4)
	v := newView(surface, []string{"one"}, Options{})
	v.RenderFull()
	before := surface.writes

	v.Resize(v.Size())
	if !v.NeedsRedraw() {
		t.Fatal("resize should mark the view dirty")
	}
	v.RenderFull()
	if surface.writes == before {
		t.Fatal("render after resize should repaint")
	}
}

func TestLoadMarksDirty(t *testing.T) {
	surface := newGridSurface(10, 4)
	v := newView(surface, []string{"one"}, Options{})
	v.RenderFull()

	v.Load(buffer.FromLines([]string{"two"}))
	if !v.NeedsRedraw() {
		t.Fatal("load should mark the view dirty")
	}
	v.RenderFull()
	if surface.rows[0] != "two" {
		t.Fatalf("row 0 = %q, want two", surface.rows[0])
	}
}

func TestLoadNilKeepsBuffer(t *testing.T) {
	surface := newGridSurface(10, 4)
	v := New(surface, Options{})
	v.Load(nil)
	if v.Buffer().Len() != 1 {
		t.Fatal("nil load should keep the default buffer")
	}
}

func TestZeroSizeStaysDirty(t *testing.T) {
	for _, size := range []terminal.Coordinate{{X: 0, Y: 3}, {X: 5, Y: 0}} {
		surface := newGridSurface(5, 3)
		v := newView(surface, []string{"abc"}, Options{})
		v.Resize(size)
		v.RenderFull()
		if surface.writes != 0 {
			t.Fatalf("size %+v: expected no writes, got %d", size, surface.writes)
		}
		if !v.NeedsRedraw() {
			t.Fatalf("size %+v: view should stay dirty", size)
		}

		v.Resize(terminal.Coordinate{X: 5, Y: 3})
		v.RenderFull()
		if surface.rows[0] != "abc" {
			t.Fatalf("size %+v: row 0 after recovery = %q", size, surface.rows[0])
		}
	}
}

func TestTruncationLaw(t *testing.T) {
	line := "Hello, friends!"
	for width := 0; width <= len(line)+3; width++ {
		got := Truncate(line, width)
		want := line[:min(len(line), width)]
		if got != want {
			t.Fatalf("Truncate(%q, %d) = %q, want %q", line, width, got, want)
		}
	}
}

func TestTruncateCountsCharacters(t *testing.T) {
	if got := Truncate("héllo", 2); got != "hé" {
		t.Fatalf("got %q, want hé", got)
	}
	if got := Truncate("日本語", 5); got != "日本語" {
		t.Fatalf("got %q", got)
	}
}

func TestEmptyBufferShowsWelcome(t *testing.T) {
	surface := newGridSurface(20, 6)
	v := newView(surface, nil, Options{})
	v.RenderFull()

	// padding = (20-4)/2 - 1 = 7
	padding := strings.Repeat(" ", 7)
	want := []string{"~", "~", "~" + padding + "Ecto", "~" + padding + "v0.0", "~", "~"}
	for row, text := range want {
		if surface.rows[row] != text {
			t.Fatalf("row %d = %q, want %q", row, surface.rows[row], text)
		}
	}
}

func TestNonEmptyBufferNeverShowsWelcome(t *testing.T) {
	for _, lines := range [][]string{{""}, {"Ecto"}, {"", "", ""}} {
		surface := newGridSurface(20, 6)
		v := newView(surface, lines, Options{})
		v.RenderFull()
		for row, text := range surface.rows {
			if strings.Contains(text, "v"+EditorVersion) {
				t.Fatalf("lines %q: welcome painted on row %d", lines, row)
			}
		}
	}
}

func TestWelcomeOnSmallViewport(t *testing.T) {
	surface := newGridSurface(2, 1)
	v := newView(surface, nil, Options{})
	v.RenderFull()
	if surface.rows[0] != "~Ecto" {
		t.Fatalf("row 0 = %q", surface.rows[0])
	}
	if v.NeedsRedraw() {
		t.Fatal("welcome render should clear the dirty flag")
	}
}

func TestEndToEndTruncationLeavesStaleRows(t *testing.T) {
	surface := newGridSurface(8, 3)
	surface.fill("old")
	v := New(surface, Options{})
	v.RenderFull()

	want := []string{"Hello, f", "old", "old"}
	for row, text := range want {
		if surface.rows[row] != text {
			t.Fatalf("row %d = %q, want %q", row, surface.rows[row], text)
		}
	}
}

func TestClearStaleRows(t *testing.T) {
	surface := newGridSurface(8, 3)
	surface.fill("old")
	v := New(surface, Options{ClearStaleRows: true})
	v.RenderFull()

	want := []string{"Hello, f", "", ""}
	for row, text := range want {
		if surface.rows[row] != text {
			t.Fatalf("row %d = %q, want %q", row, surface.rows[row], text)
		}
	}
}

func TestInitializeFillsThenPaintsDocument(t *testing.T) {
	surface := newGridSurface(8, 3)
	v := New(surface, Options{Filler: "."})
	v.Initialize()

	want := []string{"Hello, f", ".", "."}
	for row, text := range want {
		if surface.rows[row] != text {
			t.Fatalf("row %d = %q, want %q", row, surface.rows[row], text)
		}
	}
	if v.NeedsRedraw() {
		t.Fatal("initialize should leave the view clean")
	}
}

func TestWelcomePadding(t *testing.T) {
	tests := []struct{ width, text, want int }{
		{80, 4, 37},
		{21, 4, 7},
		{6, 4, 0},
		{4, 4, 0},
		{0, 4, 0},
	}
	for _, tt := range tests {
		if got := welcomePadding(tt.width, tt.text); got != tt.want {
			t.Fatalf("welcomePadding(%d, %d) = %d, want %d", tt.width, tt.text, got, tt.want)
		}
	}
}
