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

import (
	"errors"
	"image"
)

// Backend is implemented by output formats.
//
// A Backend is used by one document at a time.  Methods are called
// sequentially and never concurrently.
type Backend interface {
	// BeginDocument starts a new document.  The output target is
	// configured when the backend is constructed.
	BeginDocument(meta *Metadata) error

	// BeginPage starts a new page of the given size.
	// Any previously open page is finished first.
	BeginPage(width, height float64) error

	// MeasureText returns the height needed to typeset the text, with lines
	// broken to fit into maxWidth.
	MeasureText(text StyledText, maxWidth float64) (float64, error)

	// DrawFrame fills and outlines a rectangle.
	// If a fill colour is set, the fill is painted before the outline.
	DrawFrame(r Rect, style *FrameStyle) error

	// DrawText typesets text into the rectangle, using the same line breaks
	// as MeasureText would for a maximum width of r.Width.
	DrawText(text StyledText, r Rect) error

	// DrawImage paints an image so that it exactly fills r.
	// The caller is responsible for preserving the aspect ratio.
	DrawImage(img image.Image, r Rect) error

	// EndDocument finishes the last page and writes out the document.
	EndDocument() error
}

// Resolution is implemented by backends which can only address positions in
// multiples of a minimum unit.
type Resolution interface {
	// Unit returns the minimum addressable distance, in PDF points.
	Unit() float64
}

// Metadata holds the document information entries.
// Empty fields are omitted from the output.
type Metadata struct {
	Title    string
	Author   string
	Subject  string
	Keywords string
}

// ErrUnknownFont is returned (possibly wrapped) by backends which cannot
// resolve the font needed for a piece of text.
var ErrUnknownFont = errors.New("unknown font")
