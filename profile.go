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

// Stroke positions in the unit cell.  Lines are centred between start and
// end; "over" is the length of an arm which starts at the line and runs to
// the far edge of the cell.
const (
	thinStart  = 0.45
	thinEnd    = 0.55
	thinAcross = thinEnd - thinStart
	thinOver   = 1 - thinStart

	wideStart  = 0.4
	wideEnd    = 0.6
	wideAcross = wideEnd - wideStart
	wideOver   = 1 - wideStart

	twinStart1 = 0.35
	twinEnd1   = 0.45
	twinStart2 = 0.55
	twinEnd2   = 0.65
	twinAcross = twinEnd1 - twinStart1
	twinOver1  = 1 - twinStart1
	twinOver2  = 1 - twinStart2
)

// Stroke describes the position of a straight line across the unit cell.
type Stroke struct {
	Start  float32 // lower (or left) edge of the line
	End    float32 // upper (or right) edge of the line
	Across float32 // line thickness, End - Start
	Over   float32 // distance from Start to the far edge of the cell, 1 - Start
}

// The stroke profiles used in the rectangle table.  Light lines use Thin,
// heavy lines use Wide, and double lines use the pair Twin1, Twin2.
var (
	Thin  = Stroke{Start: thinStart, End: thinEnd, Across: thinAcross, Over: thinOver}
	Wide  = Stroke{Start: wideStart, End: wideEnd, Across: wideAcross, Over: wideOver}
	Twin1 = Stroke{Start: twinStart1, End: twinEnd1, Across: twinAcross, Over: twinOver1}
	Twin2 = Stroke{Start: twinStart2, End: twinEnd2, Across: twinAcross, Over: twinOver2}
)
