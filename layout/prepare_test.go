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
	"image"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/tablepdf/render"
	"seehuhn.de/go/tablepdf/render/recorder"
	"seehuhn.de/go/tablepdf/table"
)

func testPreparer() *preparer {
	return &preparer{
		measure: func(text render.StyledText, maxWidth float64) (float64, error) {
			return recorder.Measure(text, maxWidth), nil
		},
		fontSize:   10,
		frameWidth: 0,
		padding:    2,
	}
}

var testColumns = []table.Column{
	{ID: "a", Width: 100},
	{ID: "b", Width: 150},
	{ID: "c", Width: 150},
}

func TestPrepareMerge(t *testing.T) {
	p := testPreparer()
	row := table.Row{Cells: []table.Cell{
		&table.Text{Text: "a", Attr: []table.CellAttribute{table.MergeColumns(2)}},
		&table.Empty{},
		&table.Text{Text: "b"},
	}}
	res, err := p.prepareRow(row, testColumns, []float64{100, 150, 150})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Cells) != 2 {
		t.Fatalf("got %d cells, want 2", len(res.Cells))
	}
	if res.Cells[0].Width != 250 || res.Cells[1].Width != 150 {
		t.Errorf("widths %g, %g; want 250, 150", res.Cells[0].Width, res.Cells[1].Width)
	}
	if res.Height != 14 {
		t.Errorf("height = %g, want 14", res.Height)
	}
}

func TestPrepareInvalidMerge(t *testing.T) {
	p := testPreparer()
	widths := []float64{100, 150, 150}
	for _, span := range []table.MergeColumns{0, -1, 2} {
		row := table.Row{Cells: []table.Cell{
			nil,
			&table.Empty{},
			&table.Text{Text: "x", Attr: []table.CellAttribute{span}},
		}}
		_, err := p.prepareRow(row, testColumns, widths)
		var merge *InvalidMergeError
		if !errors.As(err, &merge) {
			t.Errorf("span %d: got error %v, want InvalidMergeError", span, err)
			continue
		}
		if merge.Column != 2 || merge.Span != int(span) {
			t.Errorf("span %d: wrong error details %v", span, merge)
		}
	}
}

func TestPrepareMalformed(t *testing.T) {
	p := testPreparer()
	_, err := p.prepareRow(table.Texts("a", "b"), testColumns, []float64{100, 150, 150})
	var malformed *MalformedRowError
	if !errors.As(err, &malformed) || malformed.Cells != 2 || malformed.Columns != 3 {
		t.Errorf("got error %v", err)
	}
}

func TestPrepareHeights(t *testing.T) {
	p := testPreparer()
	cols := testColumns[:1]
	widths := []float64{100}

	cases := []struct {
		name string
		cell table.Cell
		want float64
	}{
		{"empty", &table.Empty{}, 0},
		{"nil", nil, 0},
		{"custom", &table.Custom{}, 0},
		{"empty text", &table.Text{}, 0},
		{"one line", &table.Text{Text: "hello"}, 14},
		{"two paragraphs", &table.Text{Text: "hello\nworld"}, 24},
		{"scaled", &table.Text{Text: "x", Style: []table.TextAttribute{table.FontScale{Factor: 2, Range: table.All}}}, 24},
		// 96 wide, 20x10 pixels: 48 high plus padding
		{"image", &table.Image{Image: image.NewGray(image.Rect(0, 0, 20, 10))}, 52},
		{"empty image", &table.Image{Image: image.NewGray(image.Rectangle{})}, 0},
	}
	for _, test := range cases {
		t.Run(test.name, func(t *testing.T) {
			res, err := p.prepareRow(table.Row{Cells: []table.Cell{test.cell}}, cols, widths)
			if err != nil {
				t.Fatal(err)
			}
			if res.Height != test.want {
				t.Errorf("height = %g, want %g", res.Height, test.want)
			}
		})
	}
}

func TestPrepareUnit(t *testing.T) {
	p := testPreparer()
	p.unit = 4
	res, err := p.prepareRow(table.Texts("x"), testColumns[:1], []float64{100})
	if err != nil {
		t.Fatal(err)
	}
	if res.Height != 16 {
		t.Errorf("height = %g, want 16", res.Height)
	}
}

// TestPrepareMonotone checks that adding text to a cell never makes the
// row lower.
func TestPrepareMonotone(t *testing.T) {
	p := testPreparer()
	cols := []table.Column{{ID: "a", Width: 40}, {ID: "b", Width: 40}}
	widths := []float64{40, 40}

	var last float64
	for n := 0; n < 50; n++ {
		row := table.Texts(strings.Repeat("x", n), "abc")
		res, err := p.prepareRow(row, cols, widths)
		if err != nil {
			t.Fatal(err)
		}
		if res.Height < last {
			t.Fatalf("%d characters: height %g < %g", n, res.Height, last)
		}
		last = res.Height
	}
}

func TestCellStyle(t *testing.T) {
	p := testPreparer()
	p.frameWidth = 0.5

	red := render.Color{R: 1}
	blue := render.Color{B: 1}
	style, span := p.cellStyle([]table.CellAttribute{
		table.FrameWidth{Width: render.NoLine},
		table.FrameColor{Color: red},
		table.FillColor{Color: red},
		table.FrameWidth{},
		table.FillColor{Color: blue},
		table.MergeColumns(3),
	})
	want := render.FrameStyle{
		Line:      render.FixedLine(0.5),
		LineColor: red,
		Fill:      &blue,
	}
	if d := cmp.Diff(want, style, cmp.AllowUnexported(render.LineWidth{})); d != "" {
		t.Error(d)
	}
	if span != 3 {
		t.Errorf("span = %d, want 3", span)
	}
}
