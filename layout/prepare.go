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

package layout

import (
	"errors"
	"fmt"
	"image"

	"seehuhn.de/go/tablepdf/internal/float"
	"seehuhn.de/go/tablepdf/render"
	"seehuhn.de/go/tablepdf/table"
)

type cellKind int

const (
	kindEmpty cellKind = iota
	kindText
	kindImage
	kindCustom
)

// preparedCell is a cell which is ready to be drawn.
type preparedCell struct {
	// Width is the sum of the widths of the columns covered by the cell.
	// The frame is one frame width wider, so that neighbouring frames
	// share their borders.
	Width float64

	Kind  cellKind
	Text  render.StyledText
	Image image.Image
	Draw  table.DrawFunc

	Frame render.FrameStyle
}

type preparedRow struct {
	Cells  []preparedCell
	Height float64
}

// preparer turns rows into prepared cells.  Apart from text measurement,
// preparing a row has no side effects.
type preparer struct {
	measure    func(text render.StyledText, maxWidth float64) (float64, error)
	fontSize   float64
	frameWidth float64
	padding    float64
	unit       float64
}

// prepareRow matches the cells of row with the columns, applies merges
// and computes the row height.  The row must have one cell per column.
// The Section and Row fields of returned errors are left at zero.
func (p *preparer) prepareRow(row table.Row, cols []table.Column, widths []float64) (*preparedRow, error) {
	if len(row.Cells) != len(cols) {
		return nil, &MalformedRowError{Cells: len(row.Cells), Columns: len(cols)}
	}

	res := &preparedRow{}
	for i := 0; i < len(cols); {
		cell := row.Cells[i]
		var attrs []table.CellAttribute
		if cell != nil {
			attrs = cell.Attributes()
		}
		frame, span := p.cellStyle(attrs)
		if span <= 0 || i+span > len(cols) {
			return nil, &InvalidMergeError{Column: i, Span: span, Columns: len(cols)}
		}

		pc := preparedCell{Frame: frame}
		for j := i; j < i+span; j++ {
			pc.Width += widths[j]
		}
		innerWidth := pc.Width + p.frameWidth - 2*p.padding

		var height float64
		switch c := cell.(type) {
		case nil, *table.Empty:
			pc.Kind = kindEmpty
		case *table.Text:
			pc.Kind = kindText
			text, err := styleText(c.Text, p.fontSize, render.AlignCenter, cols[i].Text, c.Style)
			if err != nil {
				return nil, err
			}
			pc.Text = text
			if !text.IsEmpty() {
				h, err := p.measureText(text, innerWidth)
				if err != nil {
					return nil, err
				}
				height = float.CeilTo(h+2*p.padding, p.unit)
			}
		case *table.Image:
			pc.Kind = kindImage
			pc.Image = c.Image
			if c.Image != nil {
				b := c.Image.Bounds()
				if b.Dx() > 0 && b.Dy() > 0 {
					h := float64(b.Dy()) * innerWidth / float64(b.Dx())
					height = float.CeilTo(h+2*p.padding, p.unit)
				}
			}
		case *table.Custom:
			pc.Kind = kindCustom
			pc.Draw = c.Draw
		default:
			panic(fmt.Sprintf("unexpected cell type %T", cell))
		}
		res.Height = max(res.Height, height)
		res.Cells = append(res.Cells, pc)

		i += span
	}
	return res, nil
}

// cellStyle resolves the cell attributes into a frame style and the
// number of columns covered by the cell.
func (p *preparer) cellStyle(attrs []table.CellAttribute) (render.FrameStyle, int) {
	style := render.FrameStyle{
		Line:      render.FixedLine(p.frameWidth),
		LineColor: render.Black,
	}
	span := 1
	for _, attr := range attrs {
		switch a := attr.(type) {
		case table.FrameWidth:
			if a.Width.IsDefault() {
				style.Line = render.FixedLine(p.frameWidth)
			} else {
				style.Line = a.Width
			}
		case table.FrameColor:
			style.LineColor = a.Color
		case table.FillColor:
			fill := a.Color
			style.Fill = &fill
		case table.MergeColumns:
			span = int(a)
		}
	}
	return style, span
}

func (p *preparer) measureText(text render.StyledText, maxWidth float64) (float64, error) {
	h, err := p.measure(text, maxWidth)
	if err != nil {
		var missing *MissingMeasurementError
		if errors.As(err, &missing) {
			return 0, err
		}
		return 0, &MissingMeasurementError{Text: text.String(), Err: err}
	}
	return h, nil
}
