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

	"github.com/charmbracelet/log"

	"seehuhn.de/go/tablepdf/render"
)

// Margins give the distances between the page edges and the content area.
type Margins struct {
	Top, Right, Bottom, Left float64
}

// Options control the layout of a document.
// All lengths are in PDF points.
type Options struct {
	PageWidth, PageHeight float64
	Margins               Margins

	// FontSize is the base text size for cells and headers.
	FontSize float64

	// TitleFontSize is used by [Document.DrawTitle].
	TitleFontSize float64

	// FrameWidth is the default line width for cell frames.
	FrameWidth float64

	// Padding is the space between a cell frame and the cell contents.
	Padding float64

	// HeaderHeight is the height of the column header row.
	HeaderHeight float64

	// BlockSpacing is the space left below a title.
	BlockSpacing float64

	// Unit, if positive, is the smallest vertical distance the output can
	// represent.  Measured row heights are rounded up to multiples of Unit.
	// If Unit is zero, the value reported by the backend is used, if it
	// implements [render.Resolution].
	Unit float64

	Metadata render.Metadata

	// Logger receives diagnostics.  If this is nil, log.Default() is used.
	Logger *log.Logger

	// Observer, if set, is notified about layout progress.
	Observer Observer
}

func (opt *Options) check() error {
	switch {
	case opt.PageWidth <= 0 || opt.PageHeight <= 0:
		return errors.New("page size must be positive")
	case opt.Margins.Top < 0 || opt.Margins.Right < 0 ||
		opt.Margins.Bottom < 0 || opt.Margins.Left < 0:
		return errors.New("margins must not be negative")
	case opt.Margins.Left+opt.Margins.Right >= opt.PageWidth:
		return errors.New("margins leave no horizontal space")
	case opt.Margins.Top+opt.Margins.Bottom >= opt.PageHeight:
		return errors.New("margins leave no vertical space")
	case opt.FontSize <= 0:
		return errors.New("font size must be positive")
	case opt.FrameWidth < 0 || opt.Padding < 0 || opt.HeaderHeight < 0 ||
		opt.BlockSpacing < 0 || opt.Unit < 0:
		return errors.New("lengths must not be negative")
	}
	return nil
}

// Observer is notified about the progress of a layout pass.
// This can be used to collect statistics.
type Observer interface {
	TableStarted(columns int)
	RowDrawn(height float64)
	RowSkipped(err *MalformedRowError)
	PageBreak(pageNo int)
}

type nopObserver struct{}

func (nopObserver) TableStarted(int)              {}
func (nopObserver) RowDrawn(float64)              {}
func (nopObserver) RowSkipped(*MalformedRowError) {}
func (nopObserver) PageBreak(int)                 {}
