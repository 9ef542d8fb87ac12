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

// Package recorder implements a [render.Backend] which records all calls.
//
// The recorder is used to test layout code: the recorded calls can be
// compared with the expected sequence, or printed in a compact text form.
package recorder

import (
	"fmt"
	"image"
	"strings"

	"seehuhn.de/go/tablepdf/internal/float"
	"seehuhn.de/go/tablepdf/render"
)

// Op identifies the recorded backend method.
type Op int

// These are the recorded operations.
const (
	OpBeginDocument Op = iota
	OpBeginPage
	OpMeasureText
	OpDrawFrame
	OpDrawText
	OpDrawImage
	OpEndDocument
)

func (op Op) String() string {
	switch op {
	case OpBeginDocument:
		return "BeginDocument"
	case OpBeginPage:
		return "BeginPage"
	case OpMeasureText:
		return "MeasureText"
	case OpDrawFrame:
		return "DrawFrame"
	case OpDrawText:
		return "DrawText"
	case OpDrawImage:
		return "DrawImage"
	case OpEndDocument:
		return "EndDocument"
	default:
		return fmt.Sprintf("Op(%d)", int(op))
	}
}

// Call is one recorded backend call.  Only the fields relevant for the
// operation are set.
type Call struct {
	Op    Op
	Rect  render.Rect
	Style *render.FrameStyle
	Text  render.StyledText
	Image image.Image
}

// Recorder records backend calls.
// The zero value is ready to use and records measurements as well as
// drawing operations.
type Recorder struct {
	// Measure, if set, replaces the built-in text measurement.
	Measure func(text render.StyledText, maxWidth float64) (float64, error)

	// Resolution, if positive, is reported by the Unit method.
	Resolution float64

	// SkipMeasure suppresses recording of MeasureText calls.
	SkipMeasure bool

	Meta  *render.Metadata
	Calls []Call
	Pages int
}

var (
	_ render.Backend    = (*Recorder)(nil)
	_ render.Resolution = (*Recorder)(nil)
)

// BeginDocument implements the [render.Backend] interface.
func (r *Recorder) BeginDocument(meta *render.Metadata) error {
	if meta != nil {
		m := *meta
		r.Meta = &m
	}
	r.Calls = append(r.Calls, Call{Op: OpBeginDocument})
	return nil
}

// BeginPage implements the [render.Backend] interface.
func (r *Recorder) BeginPage(width, height float64) error {
	r.Pages++
	r.Calls = append(r.Calls, Call{
		Op:   OpBeginPage,
		Rect: render.Rect{Width: width, Height: height},
	})
	return nil
}

// MeasureText implements the [render.Backend] interface.
func (r *Recorder) MeasureText(text render.StyledText, maxWidth float64) (float64, error) {
	if !r.SkipMeasure {
		r.Calls = append(r.Calls, Call{
			Op:   OpMeasureText,
			Rect: render.Rect{Width: maxWidth},
			Text: text,
		})
	}
	if r.Measure != nil {
		return r.Measure(text, maxWidth)
	}
	return Measure(text, maxWidth), nil
}

// DrawFrame implements the [render.Backend] interface.
func (r *Recorder) DrawFrame(rect render.Rect, style *render.FrameStyle) error {
	var s *render.FrameStyle
	if style != nil {
		c := *style
		s = &c
	}
	r.Calls = append(r.Calls, Call{Op: OpDrawFrame, Rect: rect, Style: s})
	return nil
}

// DrawText implements the [render.Backend] interface.
func (r *Recorder) DrawText(text render.StyledText, rect render.Rect) error {
	r.Calls = append(r.Calls, Call{Op: OpDrawText, Rect: rect, Text: text})
	return nil
}

// DrawImage implements the [render.Backend] interface.
func (r *Recorder) DrawImage(img image.Image, rect render.Rect) error {
	r.Calls = append(r.Calls, Call{Op: OpDrawImage, Rect: rect, Image: img})
	return nil
}

// EndDocument implements the [render.Backend] interface.
func (r *Recorder) EndDocument() error {
	r.Calls = append(r.Calls, Call{Op: OpEndDocument})
	return nil
}

// Unit implements the [render.Resolution] interface.
func (r *Recorder) Unit() float64 {
	return r.Resolution
}

// Filter returns the recorded calls with the given operations.
func (r *Recorder) Filter(ops ...Op) []Call {
	var res []Call
	for _, c := range r.Calls {
		for _, op := range ops {
			if c.Op == op {
				res = append(res, c)
				break
			}
		}
	}
	return res
}

// String lists the recorded calls, one per line.
func (r *Recorder) String() string {
	b := &strings.Builder{}
	for _, c := range r.Calls {
		b.WriteString(c.Op.String())
		switch c.Op {
		case OpBeginPage:
			fmt.Fprintf(b, " %s %s", float.Format(c.Rect.Width, 2), float.Format(c.Rect.Height, 2))
		case OpMeasureText:
			fmt.Fprintf(b, " %q %s", c.Text.String(), float.Format(c.Rect.Width, 2))
		case OpDrawFrame, OpDrawImage:
			b.WriteString(" " + formatRect(c.Rect))
		case OpDrawText:
			fmt.Fprintf(b, " %s %q", formatRect(c.Rect), c.Text.String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func formatRect(r render.Rect) string {
	return fmt.Sprintf("[%s %s %s %s]",
		float.Format(r.X, 2), float.Format(r.Y, 2),
		float.Format(r.Width, 2), float.Format(r.Height, 2))
}

// Measure is the built-in text measurement of the recorder.  Every
// character is half as wide as its font size, every line is as tall as the
// largest font size in the text, and lines are broken at the character
// which would overflow maxWidth.  Newline characters start a new line.
func Measure(text render.StyledText, maxWidth float64) float64 {
	var size float64
	for _, run := range text {
		size = max(size, run.Size)
	}
	if size <= 0 || text.IsEmpty() {
		return 0
	}

	lines := 1
	var lineWidth float64
	for _, run := range text {
		for _, c := range run.Text {
			if c == '\n' {
				lines++
				lineWidth = 0
				continue
			}
			w := run.Size / 2
			if lineWidth > 0 && lineWidth+w > maxWidth {
				lines++
				lineWidth = 0
			}
			lineWidth += w
		}
	}
	return float64(lines) * size
}
