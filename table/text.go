// seehuhn.de/go/tablepdf - lay out tables on PDF pages
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

package table

import "seehuhn.de/go/tablepdf/render"

// TextAttribute changes the styling of the text in a cell.
//
// Column attributes are applied first, followed by the attributes of the
// cell, so that for overlapping ranges the cell attributes win.
//
// The implementations are [Align], [FontWeight], [FontSize] and [FontScale].
type TextAttribute interface {
	isTextAttribute()
}

// Range selects characters of the cell text, counted in runes.
// A negative Len extends the range to the end of the text.
type Range struct {
	Start, Len int
}

// All is the range covering the whole text.
var All = Range{Start: 0, Len: -1}

// Clip returns the range as start and end indices into a text of n runes.
func (r Range) Clip(n int) (start, end int) {
	start = max(r.Start, 0)
	if start > n {
		start = n
	}
	if r.Len < 0 {
		return start, n
	}
	end = min(start+r.Len, n)
	return start, end
}

// Align sets the alignment of the whole text.
type Align struct {
	Value render.Alignment
}

// FontWeight selects normal, italic or bold text for a range.
type FontWeight struct {
	Value render.Weight
	Range Range
}

// FontSize sets an absolute font size, in points, for a range.
type FontSize struct {
	Size  float64
	Range Range
}

// FontScale sets the font size for a range to a multiple of the base font
// size of the document.
type FontScale struct {
	Factor float64
	Range  Range
}

func (Align) isTextAttribute()      {}
func (FontWeight) isTextAttribute() {}
func (FontSize) isTextAttribute()   {}
func (FontScale) isTextAttribute()  {}
