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

import "seehuhn.de/go/geom/matrix"

// ctmCases draw text blocks under a scaled or rotated CTM.  The cell
// geometry is unchanged; only the mapping to the page differs.
var ctmCases = []TestCase{
	{
		Name:       "scale_2x",
		Lines:      []string{"┌─┐", "└─┘"},
		CellWidth:  narrowW,
		CellHeight: narrowH,
		CTM:        matrix.Scale(2, 2),
	},
	{
		Name:       "scale_wide",
		Lines:      []string{"▁▂▃▄▅▆▇█"},
		CellWidth:  narrowW,
		CellHeight: narrowH,
		CTM:        matrix.Scale(2, 1),
	},
	{
		Name:       "rotate_90deg",
		Lines:      []string{"━┳━", " ┃ "},
		CellWidth:  squareW,
		CellHeight: squareH,
		CTM:        matrix.RotateDeg(90),
	},
	{
		Name:       "rotate_30deg",
		Lines:      []string{"╔═╗", "╚═╝"},
		CellWidth:  squareW,
		CellHeight: squareH,
		CTM:        matrix.RotateDeg(30),
	},
}
