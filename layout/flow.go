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
	"seehuhn.de/go/tablepdf/render"
)

type flowState int

const (
	stateIdle flowState = iota
	stateActive
	stateTransitioning
	stateClosed
)

// page is the geometry of the current page, together with the vertical
// position where the next content will be placed.
type page struct {
	Width, Height float64
	Margins       Margins

	// Y is the distance of the cursor from the top edge of the page.
	Y float64

	// Number counts pages, starting at 1.
	Number int
}

func (p *page) contentWidth() float64 {
	return p.Width - p.Margins.Left - p.Margins.Right
}

// limit returns the lowest position content may reach.
func (p *page) limit() float64 {
	return p.Height - p.Margins.Bottom
}

func (p *page) remaining() float64 {
	return p.limit() - p.Y
}

func (p *page) atTop() bool {
	return p.Y <= p.Margins.Top
}

// flow moves the cursor down the page and starts new pages when content
// does not fit.
type flow struct {
	b     render.Backend
	page  page
	state flowState

	// onBreak is called after a page break, once the new page has been
	// started.
	onBreak func(pageNo int)
}

func newFlow(b render.Backend, width, height float64, margins Margins) *flow {
	return &flow{
		b: b,
		page: page{
			Width:   width,
			Height:  height,
			Margins: margins,
		},
	}
}

// start begins the first page.
func (f *flow) start() error {
	if f.state != stateIdle {
		return ErrNoPage
	}
	f.state = stateTransitioning
	err := f.b.BeginPage(f.page.Width, f.page.Height)
	if err != nil {
		return err
	}
	f.page.Number = 1
	f.page.Y = f.page.Margins.Top
	f.state = stateActive
	return nil
}

// newPage ends the current page and begins the next one.
func (f *flow) newPage() error {
	if f.state != stateActive {
		return ErrNoPage
	}
	f.state = stateTransitioning
	err := f.b.BeginPage(f.page.Width, f.page.Height)
	if err != nil {
		return err
	}
	f.page.Number++
	f.page.Y = f.page.Margins.Top
	f.state = stateActive
	if f.onBreak != nil {
		f.onBreak(f.page.Number)
	}
	return nil
}

// breakIfNeeded starts a new page if content of the given height does not
// fit below the cursor.  The cursor is not advanced.  The return value
// indicates whether a page break occurred.
//
// On a fresh page no break is made, even if the content is taller than the
// page, since the next page would not have more space.
func (f *flow) breakIfNeeded(height float64) (bool, error) {
	if f.state != stateActive {
		return false, ErrNoPage
	}
	if height <= f.page.remaining() || f.page.atTop() {
		return false, nil
	}
	err := f.newPage()
	if err != nil {
		return false, err
	}
	return true, nil
}

// reserve advances the cursor by height, if the space is available on the
// current page.  Otherwise a new page is started and the cursor is left at
// the top margin.  The return value indicates whether a page break
// occurred.  On a fresh page the cursor is always advanced.
func (f *flow) reserve(height float64) (bool, error) {
	if f.state != stateActive {
		return false, ErrNoPage
	}
	if height > f.page.remaining() && !f.page.atTop() {
		err := f.newPage()
		if err != nil {
			return false, err
		}
		return true, nil
	}
	f.page.Y += height
	return false, nil
}

// advance moves the cursor down, after content has been drawn.
func (f *flow) advance(dy float64) {
	f.page.Y += dy
}

// finish ends the document.
func (f *flow) finish() error {
	if f.state == stateClosed {
		return ErrDocumentClosed
	}
	f.state = stateClosed
	return f.b.EndDocument()
}
