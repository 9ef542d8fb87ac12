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

// Package raster implements a [render.Backend] which draws pages into
// RGBA images.
//
// Pages are handed to a [PageFunc] as soon as they are complete.  This is
// useful for previews and for checking layouts without a PDF viewer.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"seehuhn.de/go/tablepdf/render"
	"seehuhn.de/go/tablepdf/render/measurecache"
	"seehuhn.de/go/tablepdf/render/textmetrics"
)

// PageFunc receives every finished page.  Page numbers start at 1.
type PageFunc func(pageNo int, img *image.RGBA) error

// WritePNG returns a PageFunc which writes every page to a PNG file.
// The file name is obtained by formatting the page number with pattern,
// for example "table-%02d.png".
func WritePNG(pattern string) PageFunc {
	return func(pageNo int, img *image.RGBA) error {
		fd, err := os.Create(fmt.Sprintf(pattern, pageNo))
		if err != nil {
			return err
		}
		err = png.Encode(fd, img)
		if err != nil {
			fd.Close()
			return err
		}
		return fd.Close()
	}
}

// Backend draws pages into images.
type Backend struct {
	dpi   float64
	scale float64 // pixels per point

	measurer *textmetrics.Measurer
	cache    *measurecache.Cache
	emit     PageFunc

	img    *image.RGBA
	raster *vector.Rasterizer
	pageNo int
}

var (
	_ render.Backend    = (*Backend)(nil)
	_ render.Resolution = (*Backend)(nil)
)

// New returns a backend which renders at the given resolution.
func New(m *textmetrics.Measurer, dpi float64, emit PageFunc) *Backend {
	if dpi <= 0 {
		dpi = 72
	}
	return &Backend{
		dpi:      dpi,
		scale:    dpi / 72,
		measurer: m,
		cache:    measurecache.New(m.MeasureText, 0),
		emit:     emit,
	}
}

// Unit implements the [render.Resolution] interface.
// One pixel is the smallest distance the backend can represent.
func (b *Backend) Unit() float64 {
	return 72 / b.dpi
}

// BeginDocument implements the [render.Backend] interface.
func (b *Backend) BeginDocument(*render.Metadata) error {
	b.pageNo = 0
	return nil
}

// BeginPage implements the [render.Backend] interface.
func (b *Backend) BeginPage(width, height float64) error {
	err := b.flush()
	if err != nil {
		return err
	}

	w := int(math.Ceil(width * b.scale))
	h := int(math.Ceil(height * b.scale))
	b.img = image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(b.img, b.img.Bounds(), image.White, image.Point{}, draw.Src)
	b.raster = vector.NewRasterizer(w, h)
	b.pageNo++
	return nil
}

func (b *Backend) flush() error {
	if b.img == nil {
		return nil
	}
	img := b.img
	b.img = nil
	if b.emit == nil {
		return nil
	}
	return b.emit(b.pageNo, img)
}

// MeasureText implements the [render.Backend] interface.
func (b *Backend) MeasureText(text render.StyledText, maxWidth float64) (float64, error) {
	return b.cache.MeasureText(text, maxWidth)
}

// DrawFrame implements the [render.Backend] interface.
func (b *Backend) DrawFrame(r render.Rect, style *render.FrameStyle) error {
	if b.img == nil {
		return errNoPage
	}
	x0, y0 := r.X*b.scale, r.Y*b.scale
	x1, y1 := r.Right()*b.scale, r.Bottom()*b.scale

	if style.Fill != nil {
		b.fillRect(x0, y0, x1, y1, toRGBA(*style.Fill))
	}

	if lw, ok := style.Line.Width(); ok && lw > 0 {
		// strokes are centred on the rectangle edges
		d := max(lw*b.scale, 1) / 2
		c := toRGBA(style.LineColor)
		b.fillRect(x0-d, y0-d, x1+d, y0+d, c)
		b.fillRect(x0-d, y1-d, x1+d, y1+d, c)
		b.fillRect(x0-d, y0+d, x0+d, y1-d, c)
		b.fillRect(x1-d, y0+d, x1+d, y1-d, c)
	}
	return nil
}

func (b *Backend) fillRect(x0, y0, x1, y1 float64, c color.Color) {
	if x1 <= x0 || y1 <= y0 {
		return
	}
	bounds := b.img.Bounds()
	b.raster.Reset(bounds.Dx(), bounds.Dy())
	b.raster.MoveTo(float32(x0), float32(y0))
	b.raster.LineTo(float32(x1), float32(y0))
	b.raster.LineTo(float32(x1), float32(y1))
	b.raster.LineTo(float32(x0), float32(y1))
	b.raster.ClosePath()
	b.raster.Draw(b.img, bounds, image.NewUniform(c), image.Point{})
}

// DrawText implements the [render.Backend] interface.
func (b *Backend) DrawText(text render.StyledText, r render.Rect) error {
	if b.img == nil {
		return errNoPage
	}
	l, err := b.measurer.Layout(text, r.Width)
	if err != nil {
		return err
	}

	d := &font.Drawer{
		Dst: b.img,
		Src: image.Black,
	}
	for i, line := range l.Lines {
		x0 := r.X + l.Offset(i, r.Width)
		baseline := r.Y + line.Y + line.Ascent
		for _, seg := range line.Segments {
			face, err := b.measurer.Face(seg.Weight, seg.Size*b.scale)
			if err != nil {
				return err
			}
			d.Face = face
			d.Dot = fixed.Point26_6{
				X: toFixed((x0 + seg.X) * b.scale),
				Y: toFixed(baseline * b.scale),
			}
			d.DrawString(seg.Text)
		}
	}
	return nil
}

// DrawImage implements the [render.Backend] interface.
func (b *Backend) DrawImage(img image.Image, r render.Rect) error {
	if b.img == nil {
		return errNoPage
	}
	dst := image.Rect(
		int(math.Round(r.X*b.scale)), int(math.Round(r.Y*b.scale)),
		int(math.Round(r.Right()*b.scale)), int(math.Round(r.Bottom()*b.scale)))
	if dst.Empty() {
		return nil
	}
	xdraw.BiLinear.Scale(b.img, dst, img, img.Bounds(), xdraw.Over, nil)
	return nil
}

// EndDocument implements the [render.Backend] interface.
func (b *Backend) EndDocument() error {
	if b.pageNo == 0 {
		return errors.New("raster: document has no pages")
	}
	return b.flush()
}

func toRGBA(c render.Color) color.RGBA {
	conv := func(x float64) uint8 {
		return uint8(math.Round(min(max(x, 0), 1) * 255))
	}
	return color.RGBA{R: conv(c.R), G: conv(c.G), B: conv(c.B), A: 255}
}

func toFixed(x float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(x * 64))
}

var errNoPage = errors.New("raster: no page started")
