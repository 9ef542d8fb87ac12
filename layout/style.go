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

package layout

import (
	"fmt"

	"seehuhn.de/go/tablepdf/render"
	"seehuhn.de/go/tablepdf/table"
)

type runeStyle struct {
	weight render.Weight
	size   float64
}

// styleText applies text attributes to text.  Every character starts out
// in the normal weight at the base size, with the given alignment.  The
// attribute lists are applied in order, so that later attributes override
// earlier ones where their ranges overlap.
func styleText(text string, base float64, align render.Alignment, lists ...[]table.TextAttribute) (render.StyledText, error) {
	rr := []rune(text)
	styles := make([]runeStyle, len(rr))
	for i := range styles {
		styles[i] = runeStyle{weight: render.Normal, size: base}
	}

	for _, list := range lists {
		for _, attr := range list {
			switch a := attr.(type) {
			case table.Align:
				align = a.Value
			case table.FontWeight:
				start, end := a.Range.Clip(len(rr))
				for i := start; i < end; i++ {
					styles[i].weight = a.Value
				}
			case table.FontSize:
				if !(a.Size > 0) {
					return nil, &InvalidTableError{Reason: fmt.Sprintf("font size %g", a.Size)}
				}
				start, end := a.Range.Clip(len(rr))
				for i := start; i < end; i++ {
					styles[i].size = a.Size
				}
			case table.FontScale:
				if !(a.Factor > 0) {
					return nil, &InvalidTableError{Reason: fmt.Sprintf("font scale %g", a.Factor)}
				}
				start, end := a.Range.Clip(len(rr))
				for i := start; i < end; i++ {
					styles[i].size = base * a.Factor
				}
			case nil:
				// ignore
			default:
				panic(fmt.Sprintf("unexpected text attribute %T", attr))
			}
		}
	}

	var res render.StyledText
	start := 0
	for i := 1; i <= len(rr); i++ {
		if i < len(rr) && styles[i] == styles[start] {
			continue
		}
		res = append(res, render.Run{
			Text:   string(rr[start:i]),
			Align:  align,
			Weight: styles[start].weight,
			Size:   styles[start].size,
		})
		start = i
	}
	return res, nil
}

// plainText returns text with uniform styling.
func plainText(text string, size float64, weight render.Weight) render.StyledText {
	if text == "" {
		return nil
	}
	return render.StyledText{{
		Text:   text,
		Align:  render.AlignCenter,
		Weight: weight,
		Size:   size,
	}}
}
