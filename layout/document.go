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

	"github.com/charmbracelet/log"
	"golang.org/x/exp/slices"

	"seehuhn.de/go/tablepdf/internal/float"
	"seehuhn.de/go/tablepdf/render"
	"seehuhn.de/go/tablepdf/table"
)

// Document lays out content onto the pages of one output document.
//
// A Document is not safe for concurrent use.
type Document struct {
	b      render.Backend
	opt    Options
	flow   *flow
	prep   *preparer
	logger *log.Logger
	obs    Observer

	// report collects statistics for the table which is currently being
	// laid out.
	report *Report
}

// Report summarises one table layout pass.
type Report struct {
	// Rows is the number of rows drawn, not counting header rows.
	Rows int

	// PageBreaks is the number of pages started during the pass.
	PageBreaks int

	// Skipped lists the malformed rows which were left out.
	Skipped []*MalformedRowError
}

// NewDocument starts a new document on the given backend.
// On return, the first page has been started and the cursor is at the top
// margin.
func NewDocument(b render.Backend, opt *Options) (*Document, error) {
	if err := opt.check(); err != nil {
		return nil, err
	}

	logger := opt.Logger
	if logger == nil {
		logger = log.Default()
	}
	obs := opt.Observer
	if obs == nil {
		obs = nopObserver{}
	}
	unit := opt.Unit
	if unit == 0 {
		if res, ok := b.(render.Resolution); ok {
			unit = res.Unit()
		}
	}

	d := &Document{
		b:      b,
		opt:    *opt,
		logger: logger,
		obs:    obs,
		flow:   newFlow(b, opt.PageWidth, opt.PageHeight, opt.Margins),
		prep: &preparer{
			measure:    b.MeasureText,
			fontSize:   opt.FontSize,
			frameWidth: opt.FrameWidth,
			padding:    opt.Padding,
			unit:       unit,
		},
	}
	d.flow.onBreak = d.pageBreak

	meta := opt.Metadata
	err := b.BeginDocument(&meta)
	if err != nil {
		return nil, err
	}
	err = d.flow.start()
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Document) pageBreak(pageNo int) {
	d.logger.Debug("page break", "page", pageNo)
	if d.report != nil {
		d.report.PageBreaks++
	}
	d.obs.PageBreak(pageNo)
}

// Y returns the distance of the cursor from the top edge of the page.
func (d *Document) Y() float64 {
	return d.flow.page.Y
}

// PageNumber returns the number of the current page, starting at 1.
func (d *Document) PageNumber() int {
	return d.flow.page.Number
}

// ContentWidth returns the width between the left and right margins.
// Tables always span the full content width.
func (d *Document) ContentWidth() float64 {
	return d.flow.page.contentWidth()
}

// AddSpace moves the cursor down by h.  If there is not enough space left
// on the page, a new page is started instead.
func (d *Document) AddSpace(h float64) error {
	if d.flow.state == stateClosed {
		return ErrDocumentClosed
	}
	_, err := d.flow.reserve(h)
	return err
}

// DrawTitle draws a centred title across the content width, followed by
// the block spacing.  An empty title draws nothing.
func (d *Document) DrawTitle(title string) error {
	if d.flow.state == stateClosed {
		return ErrDocumentClosed
	}
	if title == "" {
		return nil
	}

	text := plainText(title, d.opt.TitleFontSize, render.Normal)
	width := d.ContentWidth()
	h, err := d.prep.measureText(text, width)
	if err != nil {
		return err
	}
	h = float.CeilTo(h, d.prep.unit)

	_, err = d.flow.breakIfNeeded(h)
	if err != nil {
		return err
	}
	rect := render.Rect{
		X:      d.opt.Margins.Left,
		Y:      d.flow.page.Y,
		Width:  width,
		Height: h,
	}
	err = d.b.DrawText(text, rect)
	if err != nil {
		return err
	}
	d.flow.advance(h)
	_, err = d.flow.reserve(d.opt.BlockSpacing)
	return err
}

// Close finishes the last page and the document.
func (d *Document) Close() error {
	return d.flow.finish()
}

// DrawTable lays out a table, starting at the current cursor position.
//
// Malformed rows are skipped and listed in the returned report.  Other
// problems abort the table and are returned as an error; in this case the
// report describes the work done before the error occurred.
func (d *Document) DrawTable(src table.Source) (*Report, error) {
	report := &Report{}
	if d.flow.state == stateClosed {
		return report, ErrDocumentClosed
	}

	cols := src.Columns()
	err := checkColumns(cols)
	if err != nil {
		return report, err
	}
	widths := newWidthResolver(d.ContentWidth(), cols, d.logger).all()
	if i := slices.IndexFunc(widths, func(w float64) bool { return !(w > 0) }); i >= 0 {
		return report, &InvalidTableError{
			Reason: fmt.Sprintf("column %q has width %g", cols[i].ID, widths[i]),
		}
	}

	d.report = report
	defer func() { d.report = nil }()
	d.obs.TableStarted(len(cols))

	t := &tablePass{
		Document: d,
		cols:     cols,
		widths:   widths,
	}
	err = t.drawColumnHeader()
	if err != nil {
		return report, err
	}

	numSections := src.NumSections()
	link := src.LinkHeight()
	for s := 0; s < numSections; s++ {
		if title, ok := src.SectionTitle(s); ok {
			err = t.drawSectionHeader(title)
			if err != nil {
				return report, err
			}
		}

		numRows := src.NumRows(s)
		for i := 0; i < numRows; i++ {
			row := src.Row(s, i)
			if len(row.Cells) != len(cols) {
				skipped := &MalformedRowError{
					Section: s,
					Row:     i,
					Cells:   len(row.Cells),
					Columns: len(cols),
				}
				d.logger.Warn("skipping malformed row",
					"section", s, "row", i, "cells", len(row.Cells), "columns", len(cols))
				report.Skipped = append(report.Skipped, skipped)
				d.obs.RowSkipped(skipped)
				continue
			}

			var extra float64
			if s == numSections-1 && i == numRows-1 {
				extra = link
			}
			err = t.drawRow(row, extra)
			var merge *InvalidMergeError
			if errors.As(err, &merge) {
				merge.Section = s
				merge.Row = i
			}
			if err != nil {
				return report, err
			}
		}
	}
	return report, nil
}

func checkColumns(cols []table.Column) error {
	if len(cols) == 0 {
		return &InvalidTableError{Reason: "no columns"}
	}
	seen := make(map[table.ColumnID]bool, len(cols))
	for i := range cols {
		id := cols[i].ID
		if id == "" {
			return &InvalidTableError{Reason: fmt.Sprintf("column %d has no ID", i)}
		}
		if seen[id] {
			return &InvalidTableError{Reason: fmt.Sprintf("duplicate column ID %q", id)}
		}
		seen[id] = true
	}
	return nil
}

// tablePass holds the state for laying out one table.
type tablePass struct {
	*Document
	cols   []table.Column
	widths []float64
}

func (t *tablePass) defaultFrame() *render.FrameStyle {
	return &render.FrameStyle{
		Line:      render.FixedLine(t.opt.FrameWidth),
		LineColor: render.Black,
	}
}

// advanceRow moves the cursor below a row of height h.  The bottom border
// of the row is shared with the next row, but the cursor never moves up.
func (t *tablePass) advanceRow(h float64) {
	t.flow.advance(max(h-t.opt.FrameWidth, 0))
}

// drawColumnHeader draws one row with the column titles.
func (t *tablePass) drawColumnHeader() error {
	h := t.opt.HeaderHeight
	_, err := t.flow.breakIfNeeded(h)
	if err != nil {
		return err
	}

	x := t.opt.Margins.Left
	y := t.flow.page.Y
	for i := range t.cols {
		frame := render.Rect{X: x, Y: y, Width: t.widths[i] + t.opt.FrameWidth, Height: h}
		err := t.b.DrawFrame(frame, t.defaultFrame())
		if err != nil {
			return err
		}
		text := plainText(t.cols[i].Title, t.opt.FontSize, render.Bold)
		if text != nil {
			err = t.b.DrawText(text, frame.Inset(t.opt.Padding))
			if err != nil {
				return err
			}
		}
		x += t.widths[i]
	}
	t.advanceRow(h)
	return nil
}

// drawSectionHeader draws a row with a single cell, spanning the whole
// table width.
func (t *tablePass) drawSectionHeader(title string) error {
	width := t.ContentWidth() + t.opt.FrameWidth
	text := plainText(title, t.opt.FontSize, render.Normal)
	var h float64
	if text != nil {
		textHeight, err := t.prep.measureText(text, width-2*t.opt.Padding)
		if err != nil {
			return err
		}
		h = textHeight
	}
	h = float.CeilTo(h+2*t.opt.Padding, t.prep.unit)

	broken, err := t.flow.breakIfNeeded(h)
	if err != nil {
		return err
	}
	if broken {
		err = t.drawColumnHeader()
		if err != nil {
			return err
		}
	}

	frame := render.Rect{X: t.opt.Margins.Left, Y: t.flow.page.Y, Width: width, Height: h}
	err = t.b.DrawFrame(frame, t.defaultFrame())
	if err != nil {
		return err
	}
	if text != nil {
		err = t.b.DrawText(text, frame.Inset(t.opt.Padding))
		if err != nil {
			return err
		}
	}
	t.advanceRow(h)
	return nil
}

// drawRow prepares and draws one table row.  If link is positive, the row
// is only placed on the current page if a block of height link fits below
// it as well.
func (t *tablePass) drawRow(row table.Row, link float64) error {
	prepared, err := t.prep.prepareRow(row, t.cols, t.widths)
	if err != nil {
		return err
	}

	broken, err := t.flow.breakIfNeeded(prepared.Height + link)
	if err != nil {
		return err
	}
	if broken {
		err = t.drawColumnHeader()
		if err != nil {
			return err
		}
	}

	x := t.opt.Margins.Left
	y := t.flow.page.Y
	for i := range prepared.Cells {
		cell := &prepared.Cells[i]
		frame := render.Rect{
			X:      x,
			Y:      y,
			Width:  cell.Width + t.opt.FrameWidth,
			Height: prepared.Height,
		}
		err = t.drawCell(cell, frame)
		if err != nil {
			return err
		}
		x += cell.Width
	}
	t.advanceRow(prepared.Height)

	t.report.Rows++
	t.obs.RowDrawn(prepared.Height)
	return nil
}

// drawCell draws the frame of a cell, followed by the cell contents.
func (t *tablePass) drawCell(cell *preparedCell, frame render.Rect) error {
	err := t.b.DrawFrame(frame, &cell.Frame)
	if err != nil {
		return err
	}

	switch cell.Kind {
	case kindText:
		if cell.Text.IsEmpty() {
			return nil
		}
		return t.b.DrawText(cell.Text, frame.Inset(t.opt.Padding))
	case kindImage:
		if cell.Image == nil {
			return nil
		}
		r, ok := fitImage(cell.Image.Bounds(), frame.Inset(t.opt.Padding))
		if !ok {
			return nil
		}
		return t.b.DrawImage(cell.Image, r)
	case kindCustom:
		if cell.Draw == nil {
			return nil
		}
		return cell.Draw(frame, t.b)
	}
	return nil
}

// fitImage returns the largest rectangle with the aspect ratio of the
// image which fits into box.  The rectangle is aligned with the top of
// the box and centred horizontally.
func fitImage(bounds image.Rectangle, box render.Rect) (render.Rect, bool) {
	w, h := float64(bounds.Dx()), float64(bounds.Dy())
	if w <= 0 || h <= 0 || box.Width <= 0 || box.Height <= 0 {
		return render.Rect{}, false
	}
	scale := min(box.Width/w, box.Height/h)
	res := render.Rect{
		Width:  w * scale,
		Height: h * scale,
	}
	res.X = box.X + (box.Width-res.Width)/2
	res.Y = box.Y
	return res, true
}
