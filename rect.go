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

package blockglyph

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
)

// Rect is an axis-aligned rectangle in the unit cell.  The origin is the
// bottom left corner of the cell, with y increasing upwards.
type Rect struct {
	Left, Bottom  float32
	Width, Height float32
}

// Bounds returns r as a rectangle in unit cell coordinates.
func (r Rect) Bounds() rect.Rect {
	return rect.Rect{
		LLx: float64(r.Left),
		LLy: float64(r.Bottom),
		URx: float64(r.Left) + float64(r.Width),
		URy: float64(r.Bottom) + float64(r.Height),
	}
}

// Place maps r into the given device space cell.
func (r Rect) Place(cell rect.Rect) rect.Rect {
	M := CellMatrix(cell)
	b := r.Bounds()
	return rect.Rect{
		LLx: M[0]*b.LLx + M[2]*b.LLy + M[4],
		LLy: M[1]*b.LLx + M[3]*b.LLy + M[5],
		URx: M[0]*b.URx + M[2]*b.URy + M[4],
		URy: M[1]*b.URx + M[3]*b.URy + M[5],
	}
}

// CellMatrix returns the transformation which maps the unit cell onto cell.
func CellMatrix(cell rect.Rect) matrix.Matrix {
	return matrix.Matrix{
		cell.URx - cell.LLx, 0,
		0, cell.URy - cell.LLy,
		cell.LLx, cell.LLy,
	}
}
