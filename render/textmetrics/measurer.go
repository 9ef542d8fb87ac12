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
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/tablepdf/render"
)

// Measurer breaks text into lines and measures the result.
//
// Font sizes are in PDF points.  Faces are created at 72 DPI, so that
// one pixel of the face corresponds to one point.
type Measurer struct {
	family *Family

	mu    sync.Mutex
	faces map[faceKey]font.Face
}

type faceKey struct {
	weight render.Weight
	size   float64
}

// New returns a Measurer for the given font family.
func New(family *Family) *Measurer {
	return &Measurer{
		family: family,
		faces:  make(map[faceKey]font.Face),
	}
}

// Family returns the fonts used by the Measurer.
func (m *Measurer) Family() *Family {
	return m.family
}

// Face returns a font face for the given weight and size.
// Faces are cached and shared between calls.
func (m *Measurer) Face(w render.Weight, size float64) (font.Face, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := faceKey{w, size}
	if face, ok := m.faces[key]; ok {
		return face, nil
	}

	f, err := m.family.font(w)
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("textmetrics: %s font at %gpt: %w", w, size, err)
	}
	m.faces[key] = face
	return face, nil
}

// MeasureText returns the height of the text, broken into lines of at most
// maxWidth.  This has the signature of [render.Backend.MeasureText].
func (m *Measurer) MeasureText(text render.StyledText, maxWidth float64) (float64, error) {
	l, err := m.Layout(text, maxWidth)
	if err != nil {
		return 0, err
	}
	return l.Height, nil
}

func toFloat(x fixed.Int26_6) float64 {
	return float64(x) / 64
}
