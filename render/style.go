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

package render

// Color is an RGB colour with components in the range [0, 1].
type Color struct {
	R, G, B float64
}

// Black is the default colour for frames and text.
var Black = Color{}

// LineWidth describes the outline of a frame.  The zero value requests the
// default frame width of the document.
type LineWidth struct {
	kind  lineKind
	value float64
}

type lineKind int

const (
	lineDefault lineKind = iota
	lineNone
	lineFixed
)

// NoLine suppresses the outline.
var NoLine = LineWidth{kind: lineNone}

// FixedLine returns an outline of the given width.
func FixedLine(w float64) LineWidth {
	return LineWidth{kind: lineFixed, value: w}
}

// IsDefault reports whether the document default should be used.
func (l LineWidth) IsDefault() bool {
	return l.kind == lineDefault
}

// Width returns the line width and whether an outline is drawn at all.
// For the default line width, ok is true and w is zero.
func (l LineWidth) Width() (w float64, ok bool) {
	switch l.kind {
	case lineNone:
		return 0, false
	case lineFixed:
		return l.value, true
	default:
		return 0, true
	}
}

// FrameStyle describes how DrawFrame paints a rectangle.
type FrameStyle struct {
	// Line is the outline width.  Backends treat the default value like
	// NoLine; the layout code always resolves it before drawing.
	Line LineWidth

	// LineColor is the colour of the outline.
	LineColor Color

	// Fill, if non-nil, is used to fill the rectangle.
	Fill *Color
}
