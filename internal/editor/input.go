// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/editor/input.go
// Summary: Decodes tcell events into the session loop's abstract actions.
// Notes: This is the only place tcell key vocabulary is interpreted.

package editor

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/ecto/caret"
	"github.com/framegrace/ecto/terminal"
)

type actionKind int

const (
	actionNone actionKind = iota
	actionQuit
	actionMove
	actionResize
	actionFail
)

type action struct {
	kind actionKind
	key  caret.NavigationKey
	size terminal.Coordinate
	err  error
}

var navigationKeys = map[tcell.Key]caret.NavigationKey{
	tcell.KeyUp:    caret.KeyUp,
	tcell.KeyDown:  caret.KeyDown,
	tcell.KeyLeft:  caret.KeyLeft,
	tcell.KeyRight: caret.KeyRight,
	tcell.KeyPgUp:  caret.KeyPageUp,
	tcell.KeyPgDn:  caret.KeyPageDown,
	tcell.KeyHome:  caret.KeyHome,
	tcell.KeyEnd:   caret.KeyEnd,
}

func decodeEvent(ev tcell.Event) action {
	switch tev := ev.(type) {
	case *tcell.EventKey:
		if isQuit(tev) {
			return action{kind: actionQuit}
		}
		if key, ok := navigationKeys[tev.Key()]; ok {
			return action{kind: actionMove, key: key}
		}
	case *tcell.EventResize:
		return action{kind: actionResize, size: terminal.FromNative(tev.Size())}
	case *tcell.EventError:
		return action{kind: actionFail, err: tev}
	}
	return action{kind: actionNone}
}

// isQuit matches Ctrl+Q with no other modifier, whether the terminal reports
// it as a control key or as a rune with the Ctrl modifier.
func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlQ:
		return ev.Modifiers()&^tcell.ModCtrl == 0
	case tcell.KeyRune:
		return ev.Modifiers() == tcell.ModCtrl && (ev.Rune() == 'q' || ev.Rune() == 'Q')
	}
	return false
}
