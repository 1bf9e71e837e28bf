// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: terminal/tcell_surface.go
// Summary: Implements the Surface capability on top of a tcell.Screen.
// Usage: Created by the session loop; tests wrap a tcell simulation screen.

package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const tabWidth = 8

// TcellSurface adapts a tcell.Screen to the Surface interface. tcell has no
// notion of a write position, so the surface keeps a pen that MoveCursor
// places and Write advances.
type TcellSurface struct {
	screen tcell.Screen
	style  tcell.Style
	pen    Coordinate

	exitOnce sync.Once
}

// NewTcellSurface wraps the provided screen. The screen is initialised by Enter.
func NewTcellSurface(screen tcell.Screen) *TcellSurface {
	return &TcellSurface{
		screen: screen,
		style:  tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset),
	}
}

func (s *TcellSurface) Enter() error {
	if err := s.screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	s.screen.SetStyle(s.style)
	s.ClearScreen()
	s.MoveCursor(Coordinate{})
	s.Flush()
	return nil
}

func (s *TcellSurface) Exit() {
	s.exitOnce.Do(s.screen.Fini)
}

func (s *TcellSurface) Size() Coordinate {
	return FromNative(s.screen.Size())
}

func (s *TcellSurface) MoveCursor(to Coordinate) {
	s.pen = to
}

func (s *TcellSurface) ClearScreen() {
	s.screen.Clear()
}

// ClearCurrentLine blanks the whole row the pen is on.
func (s *TcellSurface) ClearCurrentLine() {
	width, _ := s.screen.Size()
	row := int(s.pen.Y)
	for x := 0; x < width; x++ {
		s.screen.SetContent(x, row, ' ', nil, s.style)
	}
}

func (s *TcellSurface) HideCursor() {
	s.screen.HideCursor()
}

// ShowCursor places the visible cursor at the pen position.
func (s *TcellSurface) ShowCursor() {
	x, y := s.pen.Native()
	s.screen.ShowCursor(x, y)
}

// Write paints text from the pen position and advances the pen by the display
// width of each rune. Zero-width runes combine with the previous cell, tabs
// pad to the next tab stop, and cells past the right edge are dropped.
func (s *TcellSurface) Write(text string) {
	width, _ := s.screen.Size()
	x, y := s.pen.Native()

	lastX := -1
	var lastMain rune
	var lastComb []rune
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if r != '\t' && w == 0 && lastX >= 0 {
			lastComb = append(lastComb, r)
			s.screen.SetContent(lastX, y, lastMain, lastComb, s.style)
			continue
		}
		if x >= width {
			break
		}
		if r == '\t' {
			next := (x/tabWidth + 1) * tabWidth
			for ; x < next && x < width; x++ {
				s.screen.SetContent(x, y, ' ', nil, s.style)
			}
			x = next
			lastX = -1
			continue
		}
		if w < 1 {
			w = 1
		}
		s.screen.SetContent(x, y, r, nil, s.style)
		lastX, lastMain, lastComb = x, r, nil
		x += w
	}
	s.pen = FromNative(x, y)
}

func (s *TcellSurface) Flush() {
	s.screen.Show()
}

func (s *TcellSurface) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}
