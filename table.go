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

const (
	firstRune = '\u2500'
	lastRune  = '\u259F'
)

// boxDrawing lists the rectangles for every character from U+2500 to
// U+259F, as groups of four numbers (left, bottom, width, height) in the
// unit cell.  Entries for reserved characters are nil.
var boxDrawing = [lastRune - firstRune + 1][]float32{
	// light and heavy lines, corners and junctions
	'─' - firstRune: {0, thinStart, 1, thinAcross},
	'━' - firstRune: {0, wideStart, 1, wideAcross},
	'│' - firstRune: {thinStart, 0, thinAcross, 1},
	'┃' - firstRune: {wideStart, 0, wideAcross, 1},
	'┄' - firstRune: {0, thinStart, 0.2, thinAcross, 0.4, thinStart, 0.2, thinAcross, 0.8, thinStart, 0.2, thinAcross},
	'┅' - firstRune: {0, wideStart, 0.2, wideAcross, 0.4, wideStart, 0.2, wideAcross, 0.8, wideStart, 0.2, wideAcross},
	'┆' - firstRune: {thinStart, 0, thinAcross, 0.2, thinStart, 0.4, thinAcross, 0.2, thinStart, 0.8, thinAcross, 0.2},
	'┇' - firstRune: {wideStart, 0, wideAcross, 0.2, wideStart, 0.4, wideAcross, 0.2, wideStart, 0.8, wideAcross, 0.2},
	'┈' - firstRune: {0, thinStart, 1.0 / 7, thinAcross, 2.0 / 7, thinStart, 1.0 / 7, thinAcross, 4.0 / 7, thinStart, 1.0 / 7, thinAcross, 6.0 / 7, thinStart, 1.0 / 7, thinAcross},
	'┉' - firstRune: {0, wideStart, 1.0 / 7, wideAcross, 2.0 / 7, wideStart, 1.0 / 7, wideAcross, 4.0 / 7, wideStart, 1.0 / 7, wideAcross, 6.0 / 7, wideStart, 1.0 / 7, wideAcross},
	'┊' - firstRune: {thinStart, 0, thinAcross, 1.0 / 7, thinStart, 2.0 / 7, thinAcross, 1.0 / 7, thinStart, 4.0 / 7, thinAcross, 1.0 / 7, thinStart, 6.0 / 7, thinAcross, 1.0 / 7},
	'┋' - firstRune: {wideStart, 0, wideAcross, 1.0 / 7, wideStart, 2.0 / 7, wideAcross, 1.0 / 7, wideStart, 4.0 / 7, wideAcross, 1.0 / 7, wideStart, 6.0 / 7, wideAcross, 1.0 / 7},
	'┌' - firstRune: {thinStart, thinStart, thinOver, thinAcross, thinStart, 0, thinAcross, thinOver},
	'┍' - firstRune: {thinStart, wideStart, thinOver, wideAcross, thinStart, 0, thinAcross, wideOver},
	'┎' - firstRune: {wideStart, thinStart, wideOver, thinAcross, wideStart, 0, wideAcross, thinOver},
	'┏' - firstRune: {wideStart, wideStart, wideOver, wideAcross, wideStart, 0, wideAcross, wideOver},
	'┐' - firstRune: {0, thinStart, thinOver, thinAcross, thinStart, 0, thinAcross, thinOver},
	'┑' - firstRune: {0, wideStart, thinOver, wideAcross, thinStart, 0, thinAcross, wideOver},
	'┒' - firstRune: {0, thinStart, wideOver, thinAcross, wideStart, 0, wideAcross, thinOver},
	'┓' - firstRune: {0, wideStart, wideOver, wideAcross, wideStart, 0, wideAcross, wideOver},
	'└' - firstRune: {thinStart, thinStart, thinOver, thinAcross, thinStart, thinStart, thinAcross, thinOver},
	'┕' - firstRune: {thinStart, wideStart, thinOver, wideAcross, thinStart, wideStart, thinAcross, wideOver},
	'┖' - firstRune: {wideStart, thinStart, wideOver, thinAcross, wideStart, thinStart, wideAcross, thinOver},
	'┗' - firstRune: {wideStart, wideStart, wideOver, wideAcross, wideStart, wideStart, wideAcross, wideOver},
	'┘' - firstRune: {0, thinStart, thinOver, thinAcross, thinStart, thinStart, thinAcross, thinOver},
	'┙' - firstRune: {0, wideStart, thinOver, wideAcross, thinStart, wideStart, thinAcross, wideOver},
	'┚' - firstRune: {0, thinStart, wideOver, thinAcross, wideStart, thinStart, wideAcross, thinOver},
	'┛' - firstRune: {0, wideStart, wideOver, wideAcross, wideStart, wideStart, wideAcross, wideOver},
	'├' - firstRune: {thinStart, thinStart, thinOver, thinAcross, thinStart, 0, thinAcross, 1},
	'┝' - firstRune: {thinStart, wideStart, thinOver, wideAcross, thinStart, 0, thinAcross, 1},
	'┞' - firstRune: {thinStart, thinStart, thinOver, thinAcross, thinStart, 0, thinAcross, thinOver, wideStart, thinStart, wideAcross, thinOver},
	'┟' - firstRune: {thinStart, thinStart, thinOver, thinAcross, thinStart, thinStart, thinAcross, thinOver, wideStart, 0, wideAcross, wideOver},
	'┠' - firstRune: {thinStart, thinStart, thinOver, thinAcross, wideStart, 0, wideAcross, 1},
	'┡' - firstRune: {wideStart, wideStart, wideOver, wideAcross, wideStart, wideStart, wideAcross, wideOver, thinStart, 0, thinAcross, thinOver},
	'┢' - firstRune: {wideStart, wideStart, wideOver, wideAcross, wideStart, 0, wideAcross, wideOver, thinStart, thinStart, thinAcross, thinOver},
	'┣' - firstRune: {wideStart, wideStart, wideOver, wideAcross, wideStart, 0, wideAcross, 1},
	'┤' - firstRune: {0, thinStart, thinOver, thinAcross, thinStart, 0, thinAcross, 1},
	'┥' - firstRune: {0, wideStart, thinOver, wideAcross, thinStart, 0, thinAcross, 1},
	'┦' - firstRune: {0, thinStart, thinOver, thinAcross, thinStart, 0, thinAcross, thinOver, wideStart, thinStart, wideAcross, thinOver},
	'┧' - firstRune: {0, thinStart, thinOver, thinAcross, thinStart, thinStart, thinAcross, thinOver, wideStart, 0, wideAcross, wideOver},
	'┨' - firstRune: {0, thinStart, thinOver, thinAcross, wideStart, 0, wideAcross, 1},
	'┩' - firstRune: {0, wideStart, wideOver, wideAcross, wideStart, wideStart, wideAcross, wideOver, thinStart, 0, thinAcross, thinOver},
	'┪' - firstRune: {0, wideStart, wideOver, wideAcross, wideStart, 0, wideAcross, wideOver, thinStart, thinStart, thinAcross, thinOver},
	'┫' - firstRune: {0, wideStart, wideOver, wideAcross, wideStart, 0, wideAcross, 1},
	'┬' - firstRune: {0, thinStart, 1, thinAcross, thinStart, 0, thinAcross, thinOver},
	'┭' - firstRune: {0, wideStart, wideOver, wideAcross, thinStart, thinStart, thinOver, thinAcross, thinStart, 0, thinAcross, thinOver},
	'┮' - firstRune: {0, thinStart, thinOver, thinAcross, wideStart, wideStart, wideOver, wideAcross, thinStart, 0, thinAcross, thinOver},
	'┯' - firstRune: {0, wideStart, 1, wideAcross, thinStart, 0, thinAcross, thinOver},
	'┰' - firstRune: {0, thinStart, 1, thinAcross, wideStart, 0, wideAcross, wideOver},
	'┱' - firstRune: {0, wideStart, wideOver, wideAcross, thinStart, thinStart, thinOver, thinAcross, wideStart, 0, wideAcross, wideOver},
	'┲' - firstRune: {0, thinStart, thinOver, thinAcross, wideStart, wideStart, wideOver, wideAcross, wideStart, 0, wideAcross, wideOver},
	'┳' - firstRune: {0, wideStart, 1, wideAcross, wideStart, 0, wideAcross, wideOver},
	'┴' - firstRune: {0, thinStart, 1, thinAcross, thinStart, thinStart, thinAcross, thinOver},
	'┵' - firstRune: {0, wideStart, wideOver, wideAcross, thinStart, thinStart, thinOver, thinAcross, thinStart, thinStart, thinAcross, thinOver},
	'┶' - firstRune: {0, thinStart, thinOver, thinAcross, wideStart, wideStart, wideOver, wideAcross, thinStart, thinStart, thinAcross, thinOver},
	'┷' - firstRune: {0, wideStart, 1, wideAcross, thinStart, thinStart, thinAcross, thinOver},
	'┸' - firstRune: {0, thinStart, 1, thinAcross, wideStart, wideStart, wideAcross, wideOver},
	'┹' - firstRune: {0, wideStart, wideOver, wideAcross, thinStart, thinStart, thinOver, thinAcross, wideStart, wideStart, wideAcross, wideOver},
	'┺' - firstRune: {0, thinStart, thinOver, thinAcross, wideStart, wideStart, wideOver, wideAcross, wideStart, wideStart, wideAcross, wideOver},
	'┻' - firstRune: {0, wideStart, 1, wideAcross, wideStart, wideStart, wideAcross, wideOver},
	'┼' - firstRune: {0, thinStart, 1, thinAcross, thinStart, 0, thinAcross, 1},
	'┽' - firstRune: {0, wideStart, wideOver, wideAcross, thinStart, thinStart, thinOver, thinAcross, thinStart, 0, thinAcross, 1},
	'┾' - firstRune: {0, thinStart, thinOver, thinAcross, wideStart, wideStart, wideOver, wideAcross, thinStart, 0, thinAcross, 1},
	'┿' - firstRune: {0, wideStart, 1, wideAcross, thinStart, 0, thinAcross, 1},
	'╀' - firstRune: {0, thinStart, 1, thinAcross, wideStart, wideStart, wideAcross, wideOver, thinStart, 0, thinAcross, thinOver},
	'╁' - firstRune: {0, thinStart, 1, thinAcross, thinStart, thinStart, thinAcross, thinOver, wideStart, 0, wideAcross, wideOver},
	'╂' - firstRune: {0, thinStart, 1, thinAcross, wideStart, 0, wideAcross, 1},
	'╃' - firstRune: {0, wideStart, wideOver, wideAcross, thinStart, thinStart, thinOver, thinAcross, wideStart, wideStart, wideAcross, wideOver, thinStart, 0, thinAcross, thinOver},
	'╄' - firstRune: {0, thinStart, thinOver, thinAcross, wideStart, wideStart, wideOver, wideAcross, wideStart, wideStart, wideAcross, wideOver, thinStart, 0, thinAcross, thinOver},
	'╅' - firstRune: {0, wideStart, wideOver, wideAcross, thinStart, thinStart, thinOver, thinAcross, thinStart, thinStart, thinAcross, thinOver, wideStart, 0, wideAcross, wideOver},
	'╆' - firstRune: {0, thinStart, thinOver, thinAcross, wideStart, wideStart, wideOver, wideAcross, thinStart, thinStart, thinAcross, thinOver, wideStart, 0, wideAcross, wideOver},
	'╇' - firstRune: {0, wideStart, 1, wideAcross, wideStart, wideStart, wideAcross, wideOver, thinStart, 0, thinAcross, thinOver},
	'╈' - firstRune: {0, wideStart, 1, wideAcross, thinStart, thinStart, thinAcross, thinOver, wideStart, 0, wideAcross, wideOver},
	'╉' - firstRune: {0, wideStart, wideOver, wideAcross, thinStart, thinStart, thinOver, thinAcross, wideStart, 0, wideAcross, 1},
	'╊' - firstRune: {0, thinStart, thinOver, thinAcross, wideStart, wideStart, wideOver, wideAcross, wideStart, 0, wideAcross, 1},
	'╋' - firstRune: {0, wideStart, 1, wideAcross, wideStart, 0, wideAcross, 1},

	// two-part dashes
	'╌' - firstRune: {0.125, thinStart, 0.25, thinAcross, 0.625, thinStart, 0.25, thinAcross},
	'╍' - firstRune: {0.125, wideStart, 0.25, wideAcross, 0.625, wideStart, 0.25, wideAcross},
	'╎' - firstRune: {thinStart, 0.125, thinAcross, 0.25, thinStart, 0.625, thinAcross, 0.25},
	'╏' - firstRune: {wideStart, 0.125, wideAcross, 0.25, wideStart, 0.625, wideAcross, 0.25},

	// double lines
	'═' - firstRune: {0, twinStart1, 1, twinAcross, 0, twinStart2, 1, twinAcross},
	'║' - firstRune: {twinStart1, 0, twinAcross, 1, twinStart2, 0, twinAcross, 1},
	'╒' - firstRune: {thinStart, 0, thinAcross, twinOver1, thinStart, twinStart1, thinOver, twinAcross, thinStart, twinStart2, thinOver, twinAcross},
	'╓' - firstRune: {twinStart1, 0, twinAcross, thinOver, twinStart2, 0, twinAcross, thinOver, twinStart1, thinStart, twinOver1, thinAcross},
	'╔' - firstRune: {twinStart1, 0, twinAcross, twinOver1, twinStart2, 0, twinAcross, twinOver2, twinStart2, twinStart1, twinOver2, twinAcross, twinStart1, twinStart2, twinOver1, twinAcross},
	'╕' - firstRune: {thinStart, 0, thinAcross, twinOver1, 0, twinStart1, thinOver, twinAcross, 0, twinStart2, thinOver, twinAcross},
	'╖' - firstRune: {twinStart1, 0, twinAcross, thinOver, twinStart2, 0, twinAcross, thinOver, 0, thinStart, twinOver1, thinAcross},
	'╗' - firstRune: {twinStart1, 0, twinAcross, twinOver2, twinStart2, 0, twinAcross, twinOver1, 0, twinStart1, twinOver2, twinAcross, 0, twinStart2, twinOver1, twinAcross},
	'╘' - firstRune: {thinStart, twinStart1, thinOver, twinAcross, thinStart, twinStart2, thinOver, twinAcross, thinStart, twinStart1, thinAcross, twinOver1},
	'╙' - firstRune: {twinStart1, thinStart, twinAcross, thinOver, twinStart2, thinStart, twinAcross, thinOver, twinStart1, thinStart, twinOver1, thinAcross},
	'╚' - firstRune: {twinStart1, twinStart1, twinAcross, twinOver1, twinStart2, twinStart2, twinAcross, twinOver2, twinStart1, twinStart1, twinOver1, twinAcross, twinStart2, twinStart2, twinOver2, twinAcross},
	'╛' - firstRune: {thinStart, twinStart1, thinAcross, twinOver1, 0, twinStart1, thinOver, twinAcross, 0, twinStart2, thinOver, twinAcross},
	'╜' - firstRune: {twinStart1, thinStart, twinAcross, thinOver, twinStart2, thinStart, twinAcross, thinOver, 0, thinStart, twinOver1, thinAcross},
	'╝' - firstRune: {twinStart1, twinStart2, twinAcross, twinOver2, twinStart2, twinStart1, twinAcross, twinOver1, 0, twinStart1, twinOver1, twinAcross, 0, twinStart2, twinOver2, twinAcross},
	'╞' - firstRune: {thinStart, 0, thinAcross, 1, thinStart, twinStart1, thinOver, twinAcross, thinStart, twinStart2, thinOver, twinAcross},
	'╟' - firstRune: {twinStart1, 0, twinAcross, 1, twinStart2, 0, twinAcross, 1, twinStart2, thinStart, twinOver2, thinAcross},
	'╠' - firstRune: {twinStart1, 0, twinAcross, 1, twinStart2, twinStart2, twinAcross, twinOver2, twinStart2, twinStart2, twinOver2, twinAcross, twinStart2, 0, twinAcross, twinOver2, twinStart2, twinStart1, twinOver2, twinAcross},
	'╡' - firstRune: {thinStart, 0, thinAcross, 1, 0, twinStart1, thinOver, twinAcross, 0, twinStart2, thinOver, twinAcross},
	'╢' - firstRune: {twinStart1, 0, twinAcross, 1, twinStart2, 0, twinAcross, 1, 0, thinStart, twinStart1, thinAcross},
	'╣' - firstRune: {twinStart2, 0, twinAcross, 1, twinStart1, 0, twinAcross, twinOver2, 0, twinStart1, twinOver2, twinAcross, twinStart1, twinStart2, twinAcross, twinOver2, 0, twinStart2, twinOver2, twinAcross},
	'╤' - firstRune: {thinStart, 0, thinAcross, twinStart1, 0, twinStart1, 1, twinAcross, 0, twinStart2, 1, twinAcross},
	'╥' - firstRune: {twinStart1, 0, twinAcross, thinOver, twinStart2, 0, twinAcross, thinOver, 0, thinStart, 1, thinAcross},
	'╦' - firstRune: {0, twinStart2, 1, twinAcross, twinStart2, 0, twinAcross, twinOver2, twinStart2, twinStart1, twinOver2, twinAcross, twinStart1, 0, twinAcross, twinOver2, 0, twinStart1, twinOver2, twinAcross},
	'╧' - firstRune: {thinStart, twinStart2, thinAcross, twinOver2, 0, twinStart1, 1, twinAcross, 0, twinStart2, 1, twinAcross},
	'╨' - firstRune: {twinStart1, thinStart, twinAcross, thinOver, twinStart2, thinStart, twinAcross, thinOver, 0, thinStart, 1, thinAcross},
	'╩' - firstRune: {0, twinStart1, 1, twinAcross, twinStart2, twinStart2, twinAcross, twinOver2, twinStart2, twinStart2, twinOver2, twinAcross, twinStart1, twinStart2, twinAcross, twinOver2, 0, twinStart2, twinOver2, twinAcross},
	'╪' - firstRune: {thinStart, 0, thinAcross, 1, 0, twinStart1, 1, twinAcross, 0, twinStart2, 1, twinAcross},
	'╫' - firstRune: {twinStart1, 0, twinAcross, 1, twinStart2, 0, twinAcross, 1, 0, thinStart, 1, thinAcross},
	'╬' - firstRune: {twinStart2, twinStart2, twinAcross, twinOver2, twinStart2, twinStart2, twinOver2, twinAcross, twinStart2, 0, twinAcross, twinOver2, twinStart2, twinStart1, twinOver2, twinAcross, twinStart1, 0, twinAcross, twinOver2, 0, twinStart1, twinOver2, twinAcross, twinStart1, twinStart2, twinAcross, twinOver2, 0, twinStart2, twinOver2, twinAcross},

	// arcs and diagonals have no rectangle decomposition
	'╭' - firstRune: nil,
	'╮' - firstRune: nil,
	'╯' - firstRune: nil,
	'╰' - firstRune: nil,
	'╱' - firstRune: nil,
	'╲' - firstRune: nil,
	'╳' - firstRune: nil,

	// half lines
	'╴' - firstRune: {0, thinStart, thinOver, thinAcross},
	'╵' - firstRune: {thinStart, thinStart, thinAcross, thinOver},
	'╶' - firstRune: {thinStart, thinStart, thinOver, thinAcross},
	'╷' - firstRune: {thinStart, 0, thinAcross, thinOver},
	'╸' - firstRune: {0, wideStart, wideOver, wideAcross},
	'╹' - firstRune: {wideStart, wideStart, wideAcross, wideOver},
	'╺' - firstRune: {wideStart, wideStart, wideOver, wideAcross},
	'╻' - firstRune: {wideStart, 0, wideAcross, wideOver},
	'╼' - firstRune: {0, thinStart, thinOver, thinAcross, wideStart, wideStart, wideOver, wideAcross},
	'╽' - firstRune: {thinStart, thinStart, thinAcross, thinOver, wideStart, 0, wideAcross, wideOver},
	'╾' - firstRune: {0, wideStart, wideOver, wideAcross, thinStart, thinStart, thinOver, thinAcross},
	'╿' - firstRune: {wideStart, wideStart, wideAcross, wideOver, thinStart, 0, thinAcross, thinOver},

	// eighth blocks
	'▀' - firstRune: {0, 0.5, 1, 0.5},
	'▁' - firstRune: {0, 0, 1, 0.125},
	'▂' - firstRune: {0, 0, 1, 0.25},
	'▃' - firstRune: {0, 0, 1, 0.375},
	'▄' - firstRune: {0, 0, 1, 0.5},
	'▅' - firstRune: {0, 0, 1, 0.625},
	'▆' - firstRune: {0, 0, 1, 0.75},
	'▇' - firstRune: {0, 0, 1, 0.875},
	'█' - firstRune: {0, 0, 1, 1},
	'▉' - firstRune: {0, 0, 0.875, 1},
	'▊' - firstRune: {0, 0, 0.75, 1},
	'▋' - firstRune: {0, 0, 0.625, 1},
	'▌' - firstRune: {0, 0, 0.5, 1},
	'▍' - firstRune: {0, 0, 0.375, 1},
	'▎' - firstRune: {0, 0, 0.25, 1},
	'▏' - firstRune: {0, 0, 0.125, 1},
	'▐' - firstRune: {0.5, 0, 0.5, 1},

	// shades have no rectangle decomposition
	'░' - firstRune: nil,
	'▒' - firstRune: nil,
	'▓' - firstRune: nil,

	// remaining eighths and quadrants
	'▔' - firstRune: {0, 0.875, 1, 0.125},
	'▕' - firstRune: {0.875, 0, 0.125, 1},
	'▖' - firstRune: {0, 0, 0.5, 0.5},
	'▗' - firstRune: {0.5, 0, 0.5, 0.5},
	'▘' - firstRune: {0, 0.5, 0.5, 0.5},
	'▙' - firstRune: {0, 0, 0.5, 1, 0.5, 0, 0.5, 0.5},
	'▚' - firstRune: {0, 0.5, 0.5, 0.5, 0.5, 0, 0.5, 0.5},
	'▛' - firstRune: {0, 0, 0.5, 1, 0.5, 0.5, 0.5, 0.5},
	'▜' - firstRune: {0.5, 0, 0.5, 1, 0, 0.5, 0.5, 0.5},
	'▝' - firstRune: {0.5, 0.5, 0.5, 0.5},
	'▞' - firstRune: {0, 0, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5},
	'▟' - firstRune: {0.5, 0, 0.5, 1, 0, 0, 0.5, 0.5},
}
