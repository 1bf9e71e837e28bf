// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: terminal/surface.go
// Summary: Capability interface the renderer and session loop paint through.

package terminal

import "github.com/gdamore/tcell/v2"

// Surface is the terminal capability consumed by the viewer. Output calls are
// queued and only become visible after Flush.
type Surface interface {
	// Enter switches the terminal into the raw session, clears it and homes
	// the cursor.
	Enter() error
	// Exit restores the terminal. Calling it more than once is harmless.
	Exit()
	Size() Coordinate
	MoveCursor(to Coordinate)
	ClearScreen()
	ClearCurrentLine()
	HideCursor()
	ShowCursor()
	Write(text string)
	Flush()
	// PollEvent blocks for the next input event. It returns nil once the
	// surface has been exited.
	PollEvent() tcell.Event
}
