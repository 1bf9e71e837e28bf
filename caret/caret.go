// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: caret/caret.go
// Summary: Clamped caret navigation over the visible terminal grid.

package caret

import "github.com/framegrace/ecto/terminal"

// NavigationKey is a logical navigation command, decoded from raw input at
// the session boundary.
type NavigationKey int

const (
	KeyNone NavigationKey = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
)

var keyNames = map[NavigationKey]string{
	KeyNone:     "none",
	KeyUp:       "up",
	KeyDown:     "down",
	KeyLeft:     "left",
	KeyRight:    "right",
	KeyPageUp:   "pageup",
	KeyPageDown: "pagedown",
	KeyHome:     "home",
	KeyEnd:      "end",
}

func (k NavigationKey) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// Move returns the caret position after applying key inside bounds. Both axes
// end up within [0, max(bound-1, 0)], even when current lies outside a bounds
// that shrank since the last move. Unknown keys return current unchanged.
func Move(current terminal.Coordinate, key NavigationKey, bounds terminal.Coordinate) terminal.Coordinate {
	x, y := current.X, current.Y
	maxX, maxY := lastIndex(bounds.X), lastIndex(bounds.Y)

	switch key {
	case KeyUp:
		y = saturatingDec(y)
	case KeyDown:
		y = min(saturatingInc(y), maxY)
	case KeyLeft:
		x = saturatingDec(x)
	case KeyRight:
		x = min(saturatingInc(x), maxX)
	case KeyPageUp:
		y = 0
	case KeyPageDown:
		y = maxY
	case KeyHome:
		x = 0
	case KeyEnd:
		x = maxX
	default:
		return current
	}
	return terminal.Coordinate{X: min(x, maxX), Y: min(y, maxY)}
}

func lastIndex(size uint16) uint16 {
	return saturatingDec(size)
}

func saturatingDec(v uint16) uint16 {
	if v == 0 {
		return 0
	}
	return v - 1
}

func saturatingInc(v uint16) uint16 {
	if v == ^uint16(0) {
		return v
	}
	return v + 1
}

// Controller owns the caret position for a session.
type Controller struct {
	position terminal.Coordinate
}

// NewController starts the caret at the top-left cell.
func NewController() *Controller {
	return &Controller{}
}

// Position returns the current caret.
func (c *Controller) Position() terminal.Coordinate {
	return c.position
}

// Move applies key against bounds, which must be the live terminal size, and
// stores the result.
func (c *Controller) Move(key NavigationKey, bounds terminal.Coordinate) terminal.Coordinate {
	c.position = Move(c.position, key, bounds)
	return c.position
}
