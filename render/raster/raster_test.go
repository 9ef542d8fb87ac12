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

package raster

import (
	"image"
	"image/color"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"seehuhn.de/go/tablepdf/layout"
	"seehuhn.de/go/tablepdf/render"
	"seehuhn.de/go/tablepdf/render/textmetrics"
	"seehuhn.de/go/tablepdf/table"
)

func newBackend(t *testing.T, dpi float64, emit PageFunc) *Backend {
	t.Helper()
	family, err := textmetrics.GoFamily()
	if err != nil {
		t.Fatal(err)
	}
	return New(textmetrics.New(family), dpi, emit)
}

func TestFrame(t *testing.T) {
	var pages []*image.RGBA
	b := newBackend(t, 144, func(_ int, img *image.RGBA) error {
		pages = append(pages, img)
		return nil
	})

	if err := b.BeginDocument(nil); err != nil {
		t.Fatal(err)
	}
	if err := b.BeginPage(100, 50); err != nil {
		t.Fatal(err)
	}
	red := render.Color{R: 1}
	err := b.DrawFrame(render.Rect{X: 10, Y: 10, Width: 40, Height: 20}, &render.FrameStyle{
		Line: render.FixedLine(1),
		Fill: &red,
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := b.EndDocument(); err != nil {
		t.Fatal(err)
	}

	if len(pages) != 1 {
		t.Fatalf("got %d pages", len(pages))
	}
	img := pages[0]
	if got := img.Bounds().Size(); got != image.Pt(200, 100) {
		t.Errorf("page size %v", got)
	}

	check := func(x, y int, want color.RGBA) {
		t.Helper()
		if got := img.RGBAAt(x, y); got != want {
			t.Errorf("pixel (%d, %d) = %v, want %v", x, y, got, want)
		}
	}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	black := color.RGBA{A: 255}
	check(5, 5, white)
	check(60, 40, color.RGBA{R: 255, A: 255}) // inside
	check(20, 20, black)                      // top-left corner of the frame
	check(99, 59, black)                      // bottom-right corner
	check(150, 80, white)

	if b.Unit() != 0.5 {
		t.Errorf("Unit() = %g, want 0.5", b.Unit())
	}
}

func TestTable(t *testing.T) {
	numPages := 0
	b := newBackend(t, 72, func(pageNo int, img *image.RGBA) error {
		numPages++
		if pageNo != numPages {
			t.Errorf("page %d delivered as number %d", numPages, pageNo)
		}
		return nil
	})

	opt := &layout.Options{
		PageWidth:    200,
		PageHeight:   150,
		Margins:      layout.Margins{Top: 10, Right: 10, Bottom: 10, Left: 10},
		FontSize:     9,
		FrameWidth:   0.5,
		Padding:      2,
		HeaderHeight: 15,
		Logger:       log.New(io.Discard),
	}
	doc, err := layout.NewDocument(b, opt)
	if err != nil {
		t.Fatal(err)
	}
	var rows []table.Row
	for i := 0; i < 20; i++ {
		rows = append(rows, table.Texts("left", "right"))
	}
	report, err := doc.DrawTable(&table.Static{
		Cols:     []table.Column{{ID: "l", Title: "L"}, {ID: "r", Title: "R"}},
		Sections: []table.Section{{Rows: rows}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := doc.Close(); err != nil {
		t.Fatal(err)
	}
	if numPages != report.PageBreaks+1 || numPages < 2 {
		t.Errorf("%d pages, %d page breaks", numPages, report.PageBreaks)
	}
}

func TestNoPage(t *testing.T) {
	b := newBackend(t, 72, nil)
	if err := b.DrawText(render.StyledText{{Text: "x", Size: 10}}, render.Rect{Width: 10}); err == nil {
		t.Error("DrawText without a page succeeded")
	}
	if err := b.EndDocument(); err == nil {
		t.Error("EndDocument without pages succeeded")
	}
}
