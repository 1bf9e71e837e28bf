// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package terminal

import (
	"math"
	"testing"
)

func TestFromNativeClampsIntoRange(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		want Coordinate
	}{
		{name: "origin", x: 0, y: 0, want: Coordinate{}},
		{name: "typical terminal", x: 80, y: 24, want: Coordinate{X: 80, Y: 24}},
		{name: "negative becomes zero", x: -3, y: -1, want: Coordinate{}},
		{name: "upper bound kept", x: math.MaxUint16, y: 1, want: Coordinate{X: math.MaxUint16, Y: 1}},
		{name: "overflow truncated", x: math.MaxUint16 + 10, y: 1 << 20, want: Coordinate{X: math.MaxUint16, Y: math.MaxUint16}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromNative(tt.x, tt.y); got != tt.want {
				t.Fatalf("FromNative(%d, %d) = %+v, want %+v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestNativeRoundTrip(t *testing.T) {
	c := Coordinate{X: 12, Y: 7}
	x, y := c.Native()
	if FromNative(x, y) != c {
		t.Fatalf("round trip of %+v gave (%d, %d)", c, x, y)
	}
}

func TestIsZeroArea(t *testing.T) {
	if !(Coordinate{X: 0, Y: 5}).IsZeroArea() {
		t.Fatal("zero width should have no area")
	}
	if !(Coordinate{X: 5, Y: 0}).IsZeroArea() {
		t.Fatal("zero height should have no area")
	}
	if (Coordinate{X: 1, Y: 1}).IsZeroArea() {
		t.Fatal("1x1 should have area")
	}
}
