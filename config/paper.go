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
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// PointsFromMM converts millimetres to PDF points.
func PointsFromMM(mm float64) float64 {
	return mm / 25.4 * 72
}

// Paper is a page size preset.  Sizes are in millimetres, for portrait
// orientation.
type Paper struct {
	Name          string
	Width, Height float64
}

// The supported page size presets.
var (
	A4     = Paper{Name: "A4", Width: 210, Height: 297}
	A5     = Paper{Name: "A5", Width: 148, Height: 210}
	Letter = Paper{Name: "Letter", Width: 216, Height: 279}
)

// Papers lists all page size presets.
var Papers = []Paper{A4, A5, Letter}

// LookupPaper finds a preset by name.  Case is ignored.
func LookupPaper(name string) (Paper, bool) {
	i := slices.IndexFunc(Papers, func(p Paper) bool {
		return strings.EqualFold(p.Name, name)
	})
	if i < 0 {
		return Paper{}, false
	}
	return Papers[i], true
}

// Size returns the page size in PDF points.
func (p Paper) Size(o Orientation) (width, height float64) {
	width, height = PointsFromMM(p.Width), PointsFromMM(p.Height)
	if o == Landscape {
		width, height = height, width
	}
	return width, height
}

// Orientation selects portrait or landscape pages.
type Orientation int

// These are the supported orientations.
const (
	Portrait Orientation = iota
	Landscape
)

func (o Orientation) String() string {
	switch o {
	case Portrait:
		return "portrait"
	case Landscape:
		return "landscape"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (o *Orientation) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "portrait":
		*o = Portrait
	case "landscape":
		*o = Landscape
	default:
		return fmt.Errorf("invalid orientation %q", text)
	}
	return nil
}
