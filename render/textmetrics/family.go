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

// Package textmetrics measures and breaks styled text into lines, using
// TrueType fonts.
//
// The same line breaking is used for measuring text and for drawing it,
// so that the drawn text always fits into the measured height.
package textmetrics

import (
	"fmt"
	"os"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"seehuhn.de/go/tablepdf/render"
)

// Family holds one font for each of the supported weights.
type Family struct {
	data  map[render.Weight][]byte
	fonts map[render.Weight]*opentype.Font
}

// GoFamily returns the Go fonts: Go Regular, Go Italic and Go Bold.
func GoFamily() (*Family, error) {
	return NewFamily(goregular.TTF, goitalic.TTF, gobold.TTF)
}

// NewFamily parses the given TrueType fonts.  If italic or bold is nil,
// the regular font is used for this weight.
func NewFamily(regular, italic, bold []byte) (*Family, error) {
	if italic == nil {
		italic = regular
	}
	if bold == nil {
		bold = regular
	}
	f := &Family{
		data: map[render.Weight][]byte{
			render.Normal: regular,
			render.Italic: italic,
			render.Bold:   bold,
		},
		fonts: make(map[render.Weight]*opentype.Font),
	}
	for w, data := range f.data {
		font, err := opentype.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("textmetrics: %s font: %w", w, err)
		}
		f.fonts[w] = font
	}
	return f, nil
}

// ReadFamily loads a font family from TrueType files.  Empty file names
// for italic or bold select the regular font.  If all names are empty,
// the Go fonts are used.
func ReadFamily(regular, italic, bold string) (*Family, error) {
	if regular == "" && italic == "" && bold == "" {
		return GoFamily()
	}
	if regular == "" {
		return nil, fmt.Errorf("textmetrics: no regular font given")
	}

	read := func(name string) ([]byte, error) {
		if name == "" {
			return nil, nil
		}
		return os.ReadFile(name)
	}
	r, err := read(regular)
	if err != nil {
		return nil, err
	}
	i, err := read(italic)
	if err != nil {
		return nil, err
	}
	b, err := read(bold)
	if err != nil {
		return nil, err
	}
	return NewFamily(r, i, b)
}

// TTF returns the font file data for the given weight.
func (f *Family) TTF(w render.Weight) ([]byte, error) {
	data, ok := f.data[w]
	if !ok {
		return nil, fmt.Errorf("%w: weight %s", render.ErrUnknownFont, w)
	}
	return data, nil
}

func (f *Family) font(w render.Weight) (*opentype.Font, error) {
	font, ok := f.fonts[w]
	if !ok {
		return nil, fmt.Errorf("%w: weight %s", render.ErrUnknownFont, w)
	}
	return font, nil
}
