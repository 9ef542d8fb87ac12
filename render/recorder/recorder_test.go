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

package recorder

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/tablepdf/render"
)

func TestMeasure(t *testing.T) {
	plain := func(s string, size float64) render.StyledText {
		return render.StyledText{{Text: s, Size: size}}
	}
	cases := []struct {
		text     render.StyledText
		maxWidth float64
		want     float64
	}{
		{nil, 100, 0},
		{plain("", 10), 100, 0},
		{plain("abc", 10), 100, 10},
		{plain("abcd", 10), 20, 10},
		{plain("abcde", 10), 20, 20},
		{plain("ab\ncd", 10), 100, 20},
		{plain("ab\n", 10), 100, 20},
		{plain("x", 10), 1, 10}, // a single character never wraps
		{render.StyledText{{Text: "ab", Size: 8}, {Text: "cd", Size: 12}}, 100, 12},
	}
	for i, test := range cases {
		got := Measure(test.text, test.maxWidth)
		if got != test.want {
			t.Errorf("%d: Measure(%q, %g) = %g, want %g",
				i, test.text.String(), test.maxWidth, got, test.want)
		}
	}
}

func TestRecorder(t *testing.T) {
	r := &Recorder{}
	r.BeginDocument(&render.Metadata{Title: "test"})
	r.BeginPage(200, 100)
	r.DrawFrame(render.Rect{X: 1, Y: 2, Width: 3, Height: 4}, &render.FrameStyle{})
	r.DrawText(render.StyledText{{Text: "hi", Size: 10}}, render.Rect{X: 1.5, Y: 2, Width: 3, Height: 4})
	r.EndDocument()

	want := "BeginDocument\n" +
		"BeginPage 200 100\n" +
		"DrawFrame [1 2 3 4]\n" +
		"DrawText [1.5 2 3 4] \"hi\"\n" +
		"EndDocument\n"
	if d := cmp.Diff(want, r.String()); d != "" {
		t.Error(d)
	}
	if r.Meta == nil || r.Meta.Title != "test" {
		t.Errorf("metadata not recorded: %v", r.Meta)
	}
	if r.Pages != 1 {
		t.Errorf("Pages = %d, want 1", r.Pages)
	}
	if n := len(r.Filter(OpDrawFrame, OpDrawText)); n != 2 {
		t.Errorf("Filter returned %d calls, want 2", n)
	}
}
