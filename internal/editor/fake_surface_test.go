// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package editor

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/ecto/terminal"
)

// scriptedSurface replays a fixed list of events and records what the
// session did with the terminal.
type scriptedSurface struct {
	size     terminal.Coordinate
	rows     []string
	pen      terminal.Coordinate
	events   []tcell.Event
	enterErr error

	entered  bool
	exits    int
	flushes  int
	shown    terminal.Coordinate
	onPoll   func()
	pollsFed int
}

func newScriptedSurface(width, height uint16, events ...tcell.Event) *scriptedSurface {
	return &scriptedSurface{
		size:   terminal.Coordinate{X: width, Y: height},
		rows:   make([]string, height),
		events: events,
	}
}

func (s *scriptedSurface) Enter() error {
	if s.enterErr != nil {
		return s.enterErr
	}
	s.entered = true
	return nil
}

func (s *scriptedSurface) Exit()                             { s.exits++ }
func (s *scriptedSurface) Size() terminal.Coordinate         { return s.size }
func (s *scriptedSurface) MoveCursor(to terminal.Coordinate) { s.pen = to }
func (s *scriptedSurface) ClearScreen()                      { s.rows = make([]string, s.size.Y) }
func (s *scriptedSurface) HideCursor()                       {}
func (s *scriptedSurface) ShowCursor()                       { s.shown = s.pen }
func (s *scriptedSurface) Flush()                            { s.flushes++ }

func (s *scriptedSurface) ClearCurrentLine() {
	if int(s.pen.Y) < len(s.rows) {
		s.rows[s.pen.Y] = ""
	}
}

func (s *scriptedSurface) Write(text string) {
	if int(s.pen.Y) < len(s.rows) {
		s.rows[s.pen.Y] += text
	}
}

func (s *scriptedSurface) PollEvent() tcell.Event {
	if s.onPoll != nil {
		s.onPoll()
	}
	if s.pollsFed >= len(s.events) {
		return nil
	}
	ev := s.events[s.pollsFed]
	s.pollsFed++
	return ev
}

func key(k tcell.Key) tcell.Event {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func repeat(ev tcell.Event, n int) []tcell.Event {
	out := make([]tcell.Event, n)
	for i := range out {
		out[i] = ev
	}
	return out
}

func ctrlQ() tcell.Event {
	return tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl)
}
