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
)

// ErrNotBlockGlyph indicates that a character is not covered by the
// rectangle table.  Callers should draw such characters using the font.
var ErrNotBlockGlyph = errors.New("not a box drawing or block element character")

// LookupError is returned when rectangles are requested for a character
// which is not a block glyph.
type LookupError struct {
	Rune rune
}

func (err *LookupError) Error() string {
	return fmt.Sprintf("U+%04X: %s", err.Rune, ErrNotBlockGlyph)
}

func (err *LookupError) Unwrap() error {
	return ErrNotBlockGlyph
}
