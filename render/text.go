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

package render

import (
	"strconv"
	"strings"
)

// Weight selects a face within the base font family.
type Weight int

// These are the supported font weight classes.
const (
	Normal Weight = iota
	Italic
	Bold
)

func (w Weight) String() string {
	switch w {
	case Normal:
		return "normal"
	case Italic:
		return "italic"
	case Bold:
		return "bold"
	default:
		return "Weight(" + strconv.Itoa(int(w)) + ")"
	}
}

// Alignment gives the horizontal placement of lines within a text box.
type Alignment int

// These are the supported alignments.
const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "Alignment(" + strconv.Itoa(int(a)) + ")"
	}
}

// Run is a piece of text with uniform styling.
type Run struct {
	Text   string
	Align  Alignment
	Weight Weight
	Size   float64
}

// StyledText is a sequence of runs which together form one paragraph
// (or several, if the text contains newline characters).
type StyledText []Run

// String returns the plain text, without styling.
func (t StyledText) String() string {
	var b strings.Builder
	for _, run := range t {
		b.WriteString(run.Text)
	}
	return b.String()
}

// IsEmpty reports whether the text contains no characters.
func (t StyledText) IsEmpty() bool {
	for _, run := range t {
		if run.Text != "" {
			return false
		}
	}
	return true
}

// Alignment returns the alignment of the paragraph.  Backends align whole
// lines, so the alignment of the first run is used.
func (t StyledText) Alignment() Alignment {
	if len(t) == 0 {
		return AlignLeft
	}
	return t[0].Align
}
