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

package float

import "testing"

func TestFormat(t *testing.T) {
	cases := []struct {
		in   float64
		prec int
		out  string
	}{
		{0, 2, "0"},
		{1, 2, "1"},
		{1.5, 2, "1.5"},
		{0.25, 2, ".25"},
		{-0.25, 2, "-.25"},
		{12.3456, 2, "12.35"},
		{100, 0, "100"},
		{-0.001, 2, "0"},
	}
	for _, c := range cases {
		got := Format(c.in, c.prec)
		if got != c.out {
			t.Errorf("Format(%g, %d) = %q, want %q", c.in, c.prec, got, c.out)
		}
	}
}

func TestCeilTo(t *testing.T) {
	cases := []struct {
		x, unit, want float64
	}{
		{10.2, 1, 11},
		{10, 1, 10},
		{10.000000000001, 1, 10},
		{0.26, 0.25, 0.5},
		{7.3, 0, 7.3},
		{7.3, -1, 7.3},
	}
	for _, c := range cases {
		got := CeilTo(c.x, c.unit)
		if got != c.want {
			t.Errorf("CeilTo(%g, %g) = %g, want %g", c.x, c.unit, got, c.want)
		}
	}
}
