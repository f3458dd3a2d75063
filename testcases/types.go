// seehuhn.de/go/blockglyph - box drawing characters as rectangles
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package testcases

import (
	"math"
	"unicode/utf8"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
)

// TestCase defines a block of text drawn on a grid of character cells.
type TestCase struct {
	Name       string   // lowercase a-z and _ only
	Lines      []string // text rows, from top to bottom
	CellWidth  float64  // cell width in points
	CellHeight float64  // cell height in points

	// CTM maps the text block to the page.  The zero value means identity.
	CTM matrix.Matrix
}

// Matrix returns the CTM of the test case, with the zero value replaced
// by the identity matrix.
func (tc TestCase) Matrix() matrix.Matrix {
	if tc.CTM == (matrix.Matrix{}) {
		return matrix.Identity
	}
	return tc.CTM
}

// Columns returns the number of cells in the longest line.
func (tc TestCase) Columns() int {
	cols := 0
	for _, line := range tc.Lines {
		cols = max(cols, utf8.RuneCountInString(line))
	}
	return cols
}

// Width returns the width of the text block in points.
func (tc TestCase) Width() float64 {
	return float64(tc.Columns()) * tc.CellWidth
}

// Height returns the height of the text block in points.
func (tc TestCase) Height() float64 {
	return float64(len(tc.Lines)) * tc.CellHeight
}

// Bounds returns the bounding box of the text block on the page, after the
// CTM has been applied.
func (tc TestCase) Bounds() rect.Rect {
	m := tc.Matrix()
	b := rect.Rect{
		LLx: math.Inf(1),
		LLy: math.Inf(1),
		URx: math.Inf(-1),
		URy: math.Inf(-1),
	}
	for _, x := range []float64{0, tc.Width()} {
		for _, y := range []float64{0, tc.Height()} {
			px := m[0]*x + m[2]*y + m[4]
			py := m[1]*x + m[3]*y + m[5]
			b.LLx = min(b.LLx, px)
			b.LLy = min(b.LLy, py)
			b.URx = max(b.URx, px)
			b.URy = max(b.URy, py)
		}
	}
	return b
}

// Terminal-like cells are twice as high as they are wide.
const (
	narrowW = 10
	narrowH = 20
	squareW = 16
	squareH = 16
)
