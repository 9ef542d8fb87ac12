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
	"testing"

	"seehuhn.de/go/tablepdf/render/recorder"
)

func TestFlowReserve(t *testing.T) {
	rec := &recorder.Recorder{}
	f := newFlow(rec, 100, 100, Margins{Top: 10, Right: 10, Bottom: 10, Left: 10})
	err := f.start()
	if err != nil {
		t.Fatal(err)
	}
	if f.page.Y != 10 || f.page.Number != 1 {
		t.Fatalf("after start: Y=%g, page %d", f.page.Y, f.page.Number)
	}

	broken, err := f.reserve(50)
	if err != nil {
		t.Fatal(err)
	}
	if broken || f.page.Y != 60 {
		t.Errorf("reserve(50): broken=%t, Y=%g", broken, f.page.Y)
	}

	// exactly fits
	broken, _ = f.reserve(30)
	if broken || f.page.Y != 90 {
		t.Errorf("reserve(30): broken=%t, Y=%g", broken, f.page.Y)
	}

	// does not fit: new page, cursor at the top margin
	broken, _ = f.reserve(1)
	if !broken || f.page.Y != 10 || f.page.Number != 2 {
		t.Errorf("reserve(1): broken=%t, Y=%g, page %d", broken, f.page.Y, f.page.Number)
	}
	if rec.Pages != 2 {
		t.Errorf("backend saw %d pages, want 2", rec.Pages)
	}
}

func TestFlowFreshPage(t *testing.T) {
	rec := &recorder.Recorder{}
	f := newFlow(rec, 100, 100, Margins{Top: 10, Right: 10, Bottom: 10, Left: 10})
	if err := f.start(); err != nil {
		t.Fatal(err)
	}

	var breaks []int
	f.onBreak = func(pageNo int) { breaks = append(breaks, pageNo) }

	// content taller than the page does not break a fresh page
	broken, err := f.breakIfNeeded(500)
	if err != nil {
		t.Fatal(err)
	}
	if broken {
		t.Error("unexpected page break on a fresh page")
	}
	f.advance(500)

	broken, _ = f.breakIfNeeded(1)
	if !broken || f.page.Y != f.page.Margins.Top {
		t.Errorf("breakIfNeeded(1): broken=%t, Y=%g", broken, f.page.Y)
	}
	if len(breaks) != 1 || breaks[0] != 2 {
		t.Errorf("onBreak calls: %v", breaks)
	}
}

func TestFlowClosed(t *testing.T) {
	rec := &recorder.Recorder{}
	f := newFlow(rec, 100, 100, Margins{})
	if _, err := f.reserve(1); err != ErrNoPage {
		t.Errorf("reserve before start: %v", err)
	}
	if err := f.start(); err != nil {
		t.Fatal(err)
	}
	if err := f.finish(); err != nil {
		t.Fatal(err)
	}
	if err := f.finish(); err != ErrDocumentClosed {
		t.Errorf("second finish: %v", err)
	}
	if _, err := f.breakIfNeeded(1); err != ErrNoPage {
		t.Errorf("breakIfNeeded after finish: %v", err)
	}
}
