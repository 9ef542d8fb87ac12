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
	"testing"
)

func TestRangeClip(t *testing.T) {
	cases := []struct {
		r          Range
		n          int
		start, end int
	}{
		{All, 5, 0, 5},
		{Range{Start: 1, Len: 2}, 5, 1, 3},
		{Range{Start: 3, Len: 10}, 5, 3, 5},
		{Range{Start: 7, Len: 1}, 5, 5, 5},
		{Range{Start: -2, Len: 3}, 5, 0, 3},
		{Range{Start: 2, Len: 0}, 5, 2, 2},
		{All, 0, 0, 0},
	}
	for _, test := range cases {
		start, end := test.r.Clip(test.n)
		if start != test.start || end != test.end {
			t.Errorf("%v.Clip(%d) = %d, %d; want %d, %d",
				test.r, test.n, start, end, test.start, test.end)
		}
	}
}

func TestStatic(t *testing.T) {
	tab := &Static{
		Cols: []Column{{ID: "a", Width: Auto}, {ID: "b", Width: 20}},
		Sections: []Section{
			{Rows: []Row{Texts("1", "2")}},
			{Title: "second", Rows: []Row{Texts("3", "4"), Texts("5", "6")}},
		},
		Link: 12,
	}

	if n := tab.NumSections(); n != 2 {
		t.Errorf("NumSections() = %d", n)
	}
	if _, ok := tab.SectionTitle(0); ok {
		t.Error("untitled section has a title")
	}
	if title, ok := tab.SectionTitle(1); !ok || title != "second" {
		t.Errorf("SectionTitle(1) = %q, %t", title, ok)
	}
	if n := tab.NumRows(1); n != 2 {
		t.Errorf("NumRows(1) = %d", n)
	}
	cell, ok := tab.Row(1, 1).Cells[0].(*Text)
	if !ok || cell.Text != "5" {
		t.Errorf("unexpected cell %v", tab.Row(1, 1).Cells[0])
	}
	if tab.LinkHeight() != 12 {
		t.Errorf("LinkHeight() = %g", tab.LinkHeight())
	}

	cols := tab.Columns()
	if !cols[0].IsAuto() || cols[1].IsAuto() {
		t.Error("wrong auto-width columns")
	}
}
