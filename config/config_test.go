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

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"seehuhn.de/go/tablepdf/layout"
	"seehuhn.de/go/tablepdf/render"
)

func TestPaperSize(t *testing.T) {
	cases := []struct {
		paper Paper
		o     Orientation
		w, h  float64
	}{
		{A4, Portrait, 595.276, 841.890},
		{A4, Landscape, 841.890, 595.276},
		{A5, Portrait, 419.528, 595.276},
		{Letter, Portrait, 612.283, 790.866},
	}
	approx := cmpopts.EquateApprox(0, 0.001)
	for _, test := range cases {
		w, h := test.paper.Size(test.o)
		if d := cmp.Diff([]float64{test.w, test.h}, []float64{w, h}, approx); d != "" {
			t.Errorf("%s %s: %s", test.paper.Name, test.o, d)
		}
	}
}

func TestLookupPaper(t *testing.T) {
	p, ok := LookupPaper("a5")
	if !ok || p != A5 {
		t.Errorf("LookupPaper(a5) = %v, %t", p, ok)
	}
	if _, ok := LookupPaper("B4"); ok {
		t.Error("found unknown paper B4")
	}
}

func TestDefault(t *testing.T) {
	s := Default()
	if err := s.Validate(); err != nil {
		t.Fatal(err)
	}
	opt := s.LayoutOptions(nil, nil)
	want := &layout.Options{
		PageWidth:     595.276,
		PageHeight:    841.890,
		Margins:       layout.Margins{Top: 28.346, Right: 28.346, Bottom: 28.346, Left: 70.866},
		FontSize:      9,
		TitleFontSize: 12,
		FrameWidth:    0.567,
		Padding:       2,
		HeaderHeight:  15,
		BlockSpacing:  14.173,
	}
	if d := cmp.Diff(want, opt, cmpopts.EquateApprox(0, 0.001)); d != "" {
		t.Error(d)
	}
}

func TestParse(t *testing.T) {
	s, err := Parse(`
paper = "letter"
orientation = "landscape"
font_size = 10
frame_width = 0.5

[margins]
left = 20

[fonts]
regular = "/fonts/regular.ttf"

[metadata]
title = "Prices"
author = "Shop"
`)
	if err != nil {
		t.Fatal(err)
	}

	want := Default()
	want.Paper = Letter
	want.Orientation = Landscape
	want.FontSize = 10
	want.FrameWidth = PointsFromMM(0.5)
	want.Margins.Left = PointsFromMM(20)
	want.Fonts.Regular = "/fonts/regular.ttf"
	want.Metadata = render.Metadata{Title: "Prices", Author: "Shop"}
	if d := cmp.Diff(want, s); d != "" {
		t.Error(d)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name, data, msg string
	}{
		{"unknown key", "colour = \"red\"", "unknown keys colour"},
		{"unknown paper", "paper = \"A0\"", "unknown paper size"},
		{"orientation", "orientation = \"sideways\"", "invalid orientation"},
		{"margins", "[margins]\nleft = 300", "no space for content"},
		{"font size", "font_size = 0", "font sizes"},
		{"syntax", "paper = ", ""},
	}
	for _, test := range cases {
		t.Run(test.name, func(t *testing.T) {
			_, err := Parse(test.data)
			if err == nil {
				t.Fatal("missing error")
			}
			if !strings.Contains(err.Error(), test.msg) {
				t.Errorf("error %q does not mention %q", err, test.msg)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	name := filepath.Join(t.TempDir(), "tablepdf.toml")
	err := os.WriteFile(name, []byte("paper = \"A5\"\n"), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	s, err := Load(name)
	if err != nil {
		t.Fatal(err)
	}
	if s.Paper != A5 {
		t.Errorf("paper = %v", s.Paper)
	}

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Error("missing error for a missing file")
	}
}
