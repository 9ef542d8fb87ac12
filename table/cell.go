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

import (
	"image"

	"seehuhn.de/go/tablepdf/render"
)

// Cell is the content of one table slot.
//
// The implementations are [Empty], [Text], [Image] and [Custom]; no other
// types can implement this interface.
type Cell interface {
	// Attributes returns the frame and merge attributes of the cell.
	Attributes() []CellAttribute

	isCell()
}

// Empty is a cell without content.  Only its frame is drawn.
type Empty struct {
	Attr []CellAttribute
}

// Text is a cell containing styled text.
type Text struct {
	Text string

	// Style is applied after the text attributes of the column.
	Style []TextAttribute

	Attr []CellAttribute
}

// Image is a cell containing a picture.  The picture is scaled to the
// width of the cell, preserving its aspect ratio.
type Image struct {
	Image image.Image
	Attr  []CellAttribute
}

// DrawFunc draws the content of a custom cell.  The function is called
// after the frame of the cell has been drawn.  It must restrict its marks
// to the given frame.
type DrawFunc func(frame render.Rect, b render.Backend) error

// Custom is a cell whose content is drawn by a callback.
// Custom cells do not contribute to the row height.
type Custom struct {
	Draw DrawFunc
	Attr []CellAttribute
}

// Attributes implements the [Cell] interface.
func (c *Empty) Attributes() []CellAttribute { return c.Attr }

// Attributes implements the [Cell] interface.
func (c *Text) Attributes() []CellAttribute { return c.Attr }

// Attributes implements the [Cell] interface.
func (c *Image) Attributes() []CellAttribute { return c.Attr }

// Attributes implements the [Cell] interface.
func (c *Custom) Attributes() []CellAttribute { return c.Attr }

func (*Empty) isCell()  {}
func (*Text) isCell()   {}
func (*Image) isCell()  {}
func (*Custom) isCell() {}

// CellAttribute changes the frame of a cell or merges it with the cells to
// its right.  When an attribute occurs more than once, the last occurrence
// wins.
//
// The implementations are [FrameWidth], [FrameColor], [FillColor] and
// [MergeColumns].
type CellAttribute interface {
	isCellAttribute()
}

// FrameWidth sets the outline of the cell.  Use [render.NoLine] to omit the
// outline, or [render.FixedLine] for a specific width.
type FrameWidth struct {
	Width render.LineWidth
}

// FrameColor sets the colour of the cell outline.
type FrameColor struct {
	Color render.Color
}

// FillColor sets the background colour of the cell.
type FillColor struct {
	Color render.Color
}

// MergeColumns makes the cell span this many column slots, including its
// own.  The cells in the covered slots are ignored.
// The value must be positive and must not reach past the last column.
type MergeColumns int

func (FrameWidth) isCellAttribute()   {}
func (FrameColor) isCellAttribute()   {}
func (FillColor) isCellAttribute()    {}
func (MergeColumns) isCellAttribute() {}
