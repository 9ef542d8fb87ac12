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

package textmetrics

import (
	"unicode"

	"golang.org/x/image/font"
	"golang.org/x/text/unicode/norm"

	"seehuhn.de/go/tablepdf/render"
)

// Layout is a piece of text, broken into lines.
type Layout struct {
	Lines []Line

	// Height is the sum of the line heights.
	Height float64

	Align render.Alignment
}

// Line is one line of a [Layout].
type Line struct {
	Segments []Segment

	// Y is the distance from the top of the layout to the top of the line.
	Y float64

	Width  float64
	Ascent float64
	Height float64
}

// Segment is a piece of a line with uniform styling.
type Segment struct {
	Text   string
	Weight render.Weight
	Size   float64

	// X is the distance from the start of the line.
	X     float64
	Width float64
}

// Offset returns the horizontal position of the given line within a box
// of the given width, according to the alignment of the layout.
func (l *Layout) Offset(line int, boxWidth float64) float64 {
	extra := boxWidth - l.Lines[line].Width
	switch l.Align {
	case render.AlignCenter:
		return extra / 2
	case render.AlignRight:
		return extra
	default:
		return 0
	}
}

// Layout breaks text into lines of at most maxWidth.
//
// Lines are broken at white space.  Words which are too wide for a line
// on their own are broken between characters.  Newline characters always
// start a new line.  The text is converted to Unicode normalization form
// NFC before layout.
func (m *Measurer) Layout(text render.StyledText, maxWidth float64) (*Layout, error) {
	tokens, err := m.tokenize(text)
	if err != nil {
		return nil, err
	}

	lb := &lineBuilder{
		m:        m,
		maxWidth: maxWidth,
		res:      &Layout{Align: text.Alignment()},
	}
	open := false
	for _, tok := range tokens {
		if len(tok.frags) > 0 {
			lb.last = tok.frags[len(tok.frags)-1].style
		}
		switch tok.kind {
		case tokenNewline:
			lb.last = tok.style
			err = lb.finishLine()
		case tokenSpace:
			lb.pending = append(lb.pending, tok.frags...)
		case tokenWord:
			err = lb.addWord(tok.frags)
		}
		if err != nil {
			return nil, err
		}
		open = true
	}
	if open {
		err = lb.finishLine()
		if err != nil {
			return nil, err
		}
	}
	return lb.res, nil
}

type style struct {
	weight render.Weight
	size   float64
}

type fragment struct {
	text  string
	style style
	face  font.Face
	width float64
}

type tokenKind int

const (
	tokenWord tokenKind = iota
	tokenSpace
	tokenNewline
)

type token struct {
	kind  tokenKind
	frags []fragment
	style style // for newlines
}

// tokenize splits the text into words, white space and newlines.
// Words may consist of fragments from several runs.
func (m *Measurer) tokenize(text render.StyledText) ([]token, error) {
	var tokens []token
	add := func(kind tokenKind, f fragment) {
		if n := len(tokens); n > 0 && tokens[n-1].kind == kind && kind != tokenNewline {
			tokens[n-1].frags = append(tokens[n-1].frags, f)
			return
		}
		tokens = append(tokens, token{kind: kind, frags: []fragment{f}})
	}

	for _, run := range text {
		if run.Text == "" {
			continue
		}
		st := style{weight: run.Weight, size: run.Size}
		face, err := m.Face(run.Weight, run.Size)
		if err != nil {
			return nil, err
		}

		s := []rune(norm.NFC.String(run.Text))
		for start := 0; start < len(s); {
			kind := classify(s[start])
			if kind == tokenNewline {
				tokens = append(tokens, token{kind: tokenNewline, style: st})
				start++
				continue
			}
			end := start + 1
			for end < len(s) && classify(s[end]) == kind {
				end++
			}
			piece := string(s[start:end])
			add(kind, fragment{
				text:  piece,
				style: st,
				face:  face,
				width: toFloat(font.MeasureString(face, piece)),
			})
			start = end
		}
	}
	return tokens, nil
}

func classify(r rune) tokenKind {
	switch {
	case r == '\n':
		return tokenNewline
	case unicode.IsSpace(r):
		return tokenSpace
	default:
		return tokenWord
	}
}

// lineBuilder fills lines greedily.
type lineBuilder struct {
	m        *Measurer
	maxWidth float64
	res      *Layout

	frags   []fragment
	width   float64
	pending []fragment // white space after the last word of the line

	// last is the most recently seen style, used for the height of empty
	// lines.
	last style
}

func (lb *lineBuilder) addWord(word []fragment) error {
	var w float64
	for _, f := range word {
		w += f.width
	}

	if len(lb.frags) > 0 {
		var space float64
		for _, f := range lb.pending {
			space += f.width
		}
		if lb.width+space+w <= lb.maxWidth {
			lb.place(lb.pending...)
			lb.place(word...)
			lb.pending = lb.pending[:0]
			return nil
		}
		err := lb.finishLine()
		if err != nil {
			return err
		}
	}
	lb.pending = lb.pending[:0]

	if w <= lb.maxWidth {
		lb.place(word...)
		return nil
	}
	return lb.breakWord(word)
}

// breakWord places a word which is too wide for a line, breaking it
// between characters.  Every line receives at least one character.
func (lb *lineBuilder) breakWord(word []fragment) error {
	for _, f := range word {
		for _, r := range f.text {
			piece := string(r)
			w := toFloat(font.MeasureString(f.face, piece))
			if len(lb.frags) > 0 && lb.width+w > lb.maxWidth {
				err := lb.finishLine()
				if err != nil {
					return err
				}
			}
			lb.place(fragment{text: piece, style: f.style, face: f.face, width: w})
		}
	}
	return nil
}

func (lb *lineBuilder) place(frags ...fragment) {
	for _, f := range frags {
		lb.frags = append(lb.frags, f)
		lb.width += f.width
	}
}

// finishLine appends the current line to the layout and starts a new one.
func (lb *lineBuilder) finishLine() error {
	line := Line{Y: lb.res.Height}

	if len(lb.frags) == 0 {
		face, err := lb.m.Face(lb.last.weight, lb.last.size)
		if err != nil {
			return err
		}
		metrics := face.Metrics()
		line.Ascent = toFloat(metrics.Ascent)
		line.Height = toFloat(metrics.Height)
	}

	var x float64
	for _, f := range lb.frags {
		metrics := f.face.Metrics()
		line.Ascent = max(line.Ascent, toFloat(metrics.Ascent))
		line.Height = max(line.Height, toFloat(metrics.Height))

		n := len(line.Segments)
		if n > 0 && line.Segments[n-1].Weight == f.style.weight && line.Segments[n-1].Size == f.style.size {
			line.Segments[n-1].Text += f.text
			line.Segments[n-1].Width += f.width
		} else {
			line.Segments = append(line.Segments, Segment{
				Text:   f.text,
				Weight: f.style.weight,
				Size:   f.style.size,
				X:      x,
				Width:  f.width,
			})
		}
		x += f.width
	}
	line.Width = x

	lb.res.Lines = append(lb.res.Lines, line)
	lb.res.Height += line.Height

	lb.frags = lb.frags[:0]
	lb.width = 0
	lb.pending = lb.pending[:0]
	return nil
}
