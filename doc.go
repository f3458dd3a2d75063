// Package blockglyph describes box drawing and block element characters
// (U+2500 to U+259F) as lists of axis-aligned rectangles.
//
// Drawing these characters as filled rectangles, instead of using the
// glyphs of the current font, gives crisp lines at every cell size and
// guarantees that lines in adjacent cells meet without gaps.  All
// rectangles are given in a unit cell with the origin at the bottom left
// corner; [CellMatrix] maps the unit cell to a cell in device space.
//
// Use [IsBlockGlyph] to decide whether a character is handled here, and
// [Rects] or [Data] to get the rectangles.  The arcs, diagonals and shades
// in this range are recognised but have no rectangles.  [HasInk] reports
// whether a character has rectangles; all other characters are left to the
// font, and [DrawRune] and [Grid.DrawText] hand them back to the caller.
//
// All data in this package is read-only and safe for concurrent use.
package blockglyph
