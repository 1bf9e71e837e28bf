// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: terminal/coordinate.go
// Summary: Screen cell coordinates shared by every component of the viewer.

package terminal

import "math"

// Coordinate is a terminal cell. X is the column and Y the row; (0, 0) is the
// top-left corner and both axes grow towards the bottom-right.
type Coordinate struct {
	X uint16
	Y uint16
}

// FromNative converts a size or position reported by the terminal backend.
// Negative values become zero and values above the representable range are
// truncated to it. The conversion never fails.
func FromNative(x, y int) Coordinate {
	return Coordinate{X: clampNative(x), Y: clampNative(y)}
}

// Native widens the coordinate back to the backend's integer type.
func (c Coordinate) Native() (int, int) {
	return int(c.X), int(c.Y)
}

// IsZeroArea reports whether a size has no paintable cells.
func (c Coordinate) IsZeroArea() bool {
	return c.X == 0 || c.Y == 0
}

func clampNative(v int) uint16 {
	switch {
	case v < 0:
		return 0
	case v > math.MaxUint16:
		return math.MaxUint16
	default:
		return uint16(v)
	}
}
