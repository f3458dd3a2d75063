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
	"errors"
	"fmt"
	"unicode"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/blockglyph/testcases"
)

// Painter receives the rectangles of block glyphs in device space.
// The content stream builders of seehuhn.de/go/pdf implement this interface.
type Painter interface {
	SetFillColor(c color.Color)
	Rectangle(x, y, width, height float64)
	Fill()
}

var errEmptyCell = errors.New("cell has zero area")

// DrawRune draws c into the given device space cell, using the current
// fill color of p.
//
// If c has no rectangles, nothing is drawn and false is returned; the
// caller should then use the font to show c.  This includes the reserved
// block glyphs (arcs, diagonals and shades) as well as all characters
// outside the box drawing and block element ranges.
func DrawRune(p Painter, c rune, cell rect.Rect) (bool, error) {
	if !HasInk(c) {
		return false, nil
	}
	if !(cell.URx > cell.LLx && cell.URy > cell.LLy) {
		return false, errEmptyCell
	}

	for _, r := range toRects(boxDrawing[c-firstRune]) {
		b := r.Place(cell)
		p.Rectangle(b.LLx, b.LLy, b.URx-b.LLx, b.URy-b.LLy)
	}
	p.Fill()
	return true, nil
}

// Fallback describes a character which must be drawn using the font.
type Fallback struct {
	Rune rune
	Cell rect.Rect
}

// Grid places text on a grid of equally sized character cells.
type Grid struct {
	// X and Y give the top left corner of the first cell, in device space.
	X, Y float64

	CellWidth  float64
	CellHeight float64

	// Ink, if set, is used as the fill color for all block glyphs.
	// Otherwise the current fill color of the painter is used.
	Ink color.Color
}

// Cell returns the device space rectangle of the cell at the given row
// and column.  Rows are counted from the top.
func (g *Grid) Cell(row, col int) rect.Rect {
	llx := g.X + float64(col)*g.CellWidth
	ury := g.Y - float64(row)*g.CellHeight
	return rect.Rect{
		LLx: llx,
		LLy: ury - g.CellHeight,
		URx: llx + g.CellWidth,
		URy: ury,
	}
}

// DrawText draws the block glyphs in lines, one rune per cell, and returns
// the remaining characters for the caller to draw with a font.  White space
// is skipped.
func (g *Grid) DrawText(p Painter, lines []string) ([]Fallback, error) {
	if !(g.CellWidth > 0 && g.CellHeight > 0) {
		return nil, fmt.Errorf("invalid cell size %gx%g: %w",
			g.CellWidth, g.CellHeight, errEmptyCell)
	}
	if g.Ink != nil {
		p.SetFillColor(g.Ink)
	}

	var fallback []Fallback
	for row, line := range lines {
		col := 0
		for _, c := range line {
			cell := g.Cell(row, col)
			col++

			if unicode.IsSpace(c) {
				continue
			}
			ok, err := DrawRune(p, c, cell)
			if err != nil {
				return nil, err
			}
			if !ok {
				fallback = append(fallback, Fallback{Rune: c, Cell: cell})
			}
		}
	}
	return fallback, nil
}

// Transformer is implemented by painters which can change the mapping
// from user space to device space, like the content stream builders of
// seehuhn.de/go/pdf.
type Transformer interface {
	Transform(m matrix.Matrix)
}

var errNoTransform = errors.New("painter cannot apply a transformation")

// RenderExample draws a test case with the bottom left corner of the text
// block at the origin, using the current fill color of p.
//
// If the test case has a CTM, it is applied to p before drawing, so p must
// implement [Transformer].  The returned fallback cells are in the
// coordinates of the text block, before the CTM is applied.
func RenderExample(tc testcases.TestCase, p Painter) ([]Fallback, error) {
	if m := tc.Matrix(); m != matrix.Identity {
		t, ok := p.(Transformer)
		if !ok {
			return nil, errNoTransform
		}
		t.Transform(m)
	}

	g := &Grid{
		Y:          tc.Height(),
		CellWidth:  tc.CellWidth,
		CellHeight: tc.CellHeight,
	}
	return g.DrawText(p, tc.Lines)
}
