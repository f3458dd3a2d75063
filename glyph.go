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
	"iter"
	"slices"
)

// AllBlockChars contains every character covered by the rectangle table,
// in increasing order.  The i-th rune of the string corresponds to the
// i-th table entry.
const AllBlockChars = "─━│┃┄┅┆┇┈┉┊┋┌┍┎┏┐┑┒┓└┕┖┗┘┙┚┛├┝┞┟┠┡┢┣┤┥┦┧┨┩┪┫┬┭┮┯┰┱┲┳┴┵┶┷┸┹┺┻┼┽┾┿╀╁╂╃╄╅╆╇╈╉╊╋╌╍╎╏═║╒╓╔╕╖╗╘╙╚╛╜╝╞╟╠╡╢╣╤╥╦╧╨╩╪╫╬╭╮╯╰╱╲╳╴╵╶╷╸╹╺╻╼╽╾╿▀▁▂▃▄▅▆▇█▉▊▋▌▍▎▏▐░▒▓▔▕▖▗▘▙▚▛▜▝▞▟"

// IsBlockGlyph reports whether c is a box drawing or block element
// character handled by this package.  If IsBlockGlyph returns false, the
// font should draw the character itself.
//
// The result is true for the arcs, diagonals and shades, even though no
// rectangles are stored for these.  Use [HasInk] to distinguish these.
func IsBlockGlyph(c rune) bool {
	return (c >= '─' && c <= '╳') || // lines, corners, junctions, arcs, diagonals
		(c >= '╴' && c <= '▐') || // half lines, eighth blocks, halves
		(c >= '░' && c <= '▟') // shades, eighths and quadrants
}

// HasInk reports whether c is a block glyph with at least one rectangle.
func HasInk(c rune) bool {
	return IsBlockGlyph(c) && len(boxDrawing[c-firstRune]) > 0
}

// Data returns the rectangles for c as a flat list of numbers.  Each group
// of four numbers gives left, bottom, width and height of one rectangle in
// the unit cell, with the origin in the bottom left corner.  The returned
// slice is a copy and may be modified by the caller.
//
// For reserved characters, Data returns an empty slice.  If c is not a
// block glyph, a [*LookupError] is returned.
func Data(c rune) ([]float32, error) {
	if !IsBlockGlyph(c) {
		return nil, &LookupError{Rune: c}
	}
	data := boxDrawing[c-firstRune]
	if data == nil {
		return []float32{}, nil
	}
	return slices.Clone(data), nil
}

// Rects returns the rectangles used to draw c.  The rectangles may
// overlap; the glyph is their union.
//
// For reserved characters, Rects returns an empty slice.  If c is not a
// block glyph, a [*LookupError] is returned.
func Rects(c rune) ([]Rect, error) {
	if !IsBlockGlyph(c) {
		return nil, &LookupError{Rune: c}
	}
	return toRects(boxDrawing[c-firstRune]), nil
}

// Supported returns all characters covered by the table, in increasing
// order.
func Supported() []rune {
	return []rune(AllBlockChars)
}

// All iterates over the table in increasing order of the characters.
// Reserved characters are included, with an empty rectangle list.
func All() iter.Seq2[rune, []Rect] {
	return func(yield func(rune, []Rect) bool) {
		for i, data := range boxDrawing {
			if !yield(firstRune+rune(i), toRects(data)) {
				return
			}
		}
	}
}

func toRects(data []float32) []Rect {
	res := make([]Rect, 0, len(data)/4)
	for i := 0; i+4 <= len(data); i += 4 {
		res = append(res, Rect{
			Left:   data[i],
			Bottom: data[i+1],
			Width:  data[i+2],
			Height: data[i+3],
		})
	}
	return res
}
