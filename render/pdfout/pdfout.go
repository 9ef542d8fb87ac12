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

// Package pdfout implements a [render.Backend] which writes PDF files.
//
// Text is set in TrueType fonts from a [textmetrics.Family], which are
// embedded into the output.  Line breaks are computed by the same
// [textmetrics.Measurer] which answers MeasureText queries.
package pdfout

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"time"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/font"
	"seehuhn.de/go/pdf/font/truetype"
	"seehuhn.de/go/pdf/graphics/color"
	"seehuhn.de/go/pdf/graphics/content"
	"seehuhn.de/go/pdf/graphics/content/builder"
	pdfimage "seehuhn.de/go/pdf/graphics/image"
	"seehuhn.de/go/pdf/page"
	"seehuhn.de/go/pdf/pagetree"
	"seehuhn.de/go/sfnt"

	"seehuhn.de/go/tablepdf/render"
	"seehuhn.de/go/tablepdf/render/measurecache"
	"seehuhn.de/go/tablepdf/render/textmetrics"
)

// Options control the PDF output.
type Options struct {
	// Version is the PDF version of the output.  The default is PDF 1.7.
	Version pdf.Version

	// Producer is stored in the document metadata, if set.
	Producer string

	// Time, if non-zero, is stored as the creation date.
	Time time.Time

	// CacheSize is the number of text measurements to remember.
	CacheSize int
}

// Backend writes a PDF document to an io.Writer.
type Backend struct {
	w   io.Writer
	opt Options

	measurer *textmetrics.Measurer
	cache    *measurecache.Cache

	out   *pdf.Writer
	rm    *pdf.ResourceManager
	tree  *pagetree.Writer
	fonts map[render.Weight]font.Instance

	images map[image.Image]*pdfimage.Dict
	meta   render.Metadata

	// current page, nil between pages
	b      *builder.Builder
	pg     *page.Page
	height float64
	pages  int
}

var _ render.Backend = (*Backend)(nil)

// New returns a backend which writes to w.
// If opt is nil, default options are used.
func New(w io.Writer, m *textmetrics.Measurer, opt *Options) *Backend {
	b := &Backend{
		w:        w,
		measurer: m,
		images:   make(map[image.Image]*pdfimage.Dict),
	}
	if opt != nil {
		b.opt = *opt
	}
	if b.opt.Version == 0 {
		b.opt.Version = pdf.V1_7
	}
	b.cache = measurecache.New(m.MeasureText, b.opt.CacheSize)
	return b
}

// BeginDocument implements the [render.Backend] interface.
func (b *Backend) BeginDocument(meta *render.Metadata) error {
	if b.out != nil {
		return errors.New("pdfout: document already started")
	}
	out, err := pdf.NewWriter(b.w, b.opt.Version, nil)
	if err != nil {
		return err
	}
	b.out = out
	b.rm = pdf.NewResourceManager(out)
	b.tree = pagetree.NewWriter(out, b.rm)

	if meta != nil {
		b.meta = *meta
	}

	b.fonts = make(map[render.Weight]font.Instance)
	for _, w := range []render.Weight{render.Normal, render.Italic, render.Bold} {
		data, err := b.measurer.Family().TTF(w)
		if err != nil {
			return err
		}
		info, err := sfnt.Read(bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("pdfout: %s font: %w", w, err)
		}
		F, err := truetype.NewSimple(info, nil)
		if err != nil {
			return fmt.Errorf("pdfout: %s font: %w", w, err)
		}
		b.fonts[w] = F
	}
	return nil
}

// BeginPage implements the [render.Backend] interface.
func (b *Backend) BeginPage(width, height float64) error {
	if b.out == nil {
		return errors.New("pdfout: document not started")
	}
	err := b.closePage()
	if err != nil {
		return err
	}

	res := &content.Resources{}
	b.b = builder.New(content.Page, res)
	b.pg = &page.Page{
		MediaBox:  &pdf.Rectangle{URx: width, URy: height},
		Resources: res,
	}
	b.height = height
	b.pages++
	return nil
}

func (b *Backend) closePage() error {
	if b.b == nil {
		return nil
	}
	if b.b.Err != nil {
		return b.b.Err
	}
	b.pg.Contents = []*page.Content{{Operators: b.b.Stream}}
	ref := b.out.Alloc()
	err := b.tree.AppendPageRef(ref, b.pg)
	if err != nil {
		return err
	}
	b.b = nil
	b.pg = nil
	return nil
}

// MeasureText implements the [render.Backend] interface.
func (b *Backend) MeasureText(text render.StyledText, maxWidth float64) (float64, error) {
	return b.cache.MeasureText(text, maxWidth)
}

// toPDF converts a rectangle to PDF coordinates, with the origin in the
// bottom-left corner.  The result is the lower-left corner.
func (b *Backend) toPDF(r render.Rect) (x, y float64) {
	return r.X, b.height - r.Y - r.Height
}

// DrawFrame implements the [render.Backend] interface.
func (b *Backend) DrawFrame(r render.Rect, style *render.FrameStyle) error {
	if b.b == nil {
		return errNoPage
	}
	x, y := b.toPDF(r)

	if style.Fill != nil {
		c := style.Fill
		b.b.PushGraphicsState()
		b.b.SetFillColor(color.DeviceRGB{c.R, c.G, c.B})
		b.b.Rectangle(x, y, r.Width, r.Height)
		b.b.Fill()
		b.b.PopGraphicsState()
	}

	if lw, ok := style.Line.Width(); ok && lw > 0 {
		c := style.LineColor
		b.b.PushGraphicsState()
		b.b.SetLineWidth(lw)
		b.b.SetStrokeColor(color.DeviceRGB{c.R, c.G, c.B})
		b.b.Rectangle(x, y, r.Width, r.Height)
		b.b.Stroke()
		b.b.PopGraphicsState()
	}
	return b.b.Err
}

// DrawText implements the [render.Backend] interface.
func (b *Backend) DrawText(text render.StyledText, r render.Rect) error {
	if b.b == nil {
		return errNoPage
	}
	l, err := b.measurer.Layout(text, r.Width)
	if err != nil {
		return err
	}

	b.b.TextBegin()
	for i, line := range l.Lines {
		x0 := r.X + l.Offset(i, r.Width)
		baseline := b.height - (r.Y + line.Y + line.Ascent)
		for _, seg := range line.Segments {
			F, ok := b.fonts[seg.Weight]
			if !ok {
				return fmt.Errorf("%w: weight %s", render.ErrUnknownFont, seg.Weight)
			}
			b.b.TextSetFont(F, seg.Size)
			b.b.TextSetMatrix(matrix.Translate(x0+seg.X, baseline))
			gg := b.b.TextLayout(nil, seg.Text)
			b.b.TextShowGlyphs(gg)
		}
	}
	b.b.TextEnd()
	return b.b.Err
}

// DrawImage implements the [render.Backend] interface.
// Images are embedded once, even if they are drawn several times.
func (b *Backend) DrawImage(img image.Image, r render.Rect) error {
	if b.b == nil {
		return errNoPage
	}
	dict, ok := b.images[img]
	if !ok {
		dict = pdfimage.FromImage(img, color.SpaceDeviceRGB, 8)
		b.images[img] = dict
	}

	x, y := b.toPDF(r)
	b.b.PushGraphicsState()
	b.b.Transform(matrix.Translate(x, y))
	b.b.Transform(matrix.Scale(r.Width, r.Height))
	b.b.DrawXObject(dict)
	b.b.PopGraphicsState()
	return b.b.Err
}

// EndDocument implements the [render.Backend] interface.
func (b *Backend) EndDocument() error {
	if b.out == nil {
		return errors.New("pdfout: document not started")
	}
	err := b.closePage()
	if err != nil {
		return err
	}
	if b.pages == 0 {
		return errors.New("pdfout: document has no pages")
	}

	ref, err := b.tree.Close()
	if err != nil {
		return err
	}
	b.out.GetMeta().Catalog.Pages = ref

	err = b.writeMetadata()
	if err != nil {
		return err
	}

	err = b.rm.Close()
	if err != nil {
		return err
	}
	err = b.out.Close()
	b.out = nil
	return err
}

// Pages returns the number of pages started so far.
func (b *Backend) Pages() int {
	return b.pages
}

// CacheStats returns the hit and miss counts of the measurement cache.
func (b *Backend) CacheStats() (hits, misses int) {
	return b.cache.Stats()
}

var errNoPage = errors.New("pdfout: no page started")
