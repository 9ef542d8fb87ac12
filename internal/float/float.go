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

// Package float contains helpers for rounding and printing coordinates.
package float

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Format prints x with at most the given number of digits after the
// decimal point.  Trailing zeros, a trailing decimal point and a leading
// zero are removed.
func Format(x float64, precision int) string {
	out := strconv.FormatFloat(x, 'f', precision, 64)
	if m := tailRegexp.FindStringSubmatchIndex(out); m != nil {
		if m[2] > 0 {
			out = out[:m[2]]
		} else if m[4] > 0 {
			out = out[:m[4]]
		}
	}
	if strings.HasPrefix(out, "0.") {
		out = out[1:]
	} else if strings.HasPrefix(out, "-0.") {
		out = "-" + out[2:]
	}
	if out == "-0" {
		out = "0"
	}
	return out
}

// CeilTo rounds x up to the next multiple of unit.  Values which are
// within rounding noise of a multiple are not moved to the next one.
// If unit is not positive, x is returned unchanged.
func CeilTo(x, unit float64) float64 {
	if unit <= 0 {
		return x
	}
	const ε = 1e-9
	return math.Ceil(x/unit-ε) * unit
}

var (
	tailRegexp = regexp.MustCompile(`(?:\..*[1-9](0+)|(\.0+))$`)
)
