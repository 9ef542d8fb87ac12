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

// Package config holds the settings which control the appearance of the
// generated documents.
//
// Settings can be read from TOML files.  In files, page margins, frame
// width and block spacing are given in millimetres, all other lengths in
// PDF points.
package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"seehuhn.de/go/tablepdf/layout"
	"seehuhn.de/go/tablepdf/render"
)

// Settings describe the page geometry and typography of a document.
// All lengths are in PDF points.
type Settings struct {
	Paper       Paper
	Orientation Orientation
	Margins     layout.Margins

	FontSize      float64
	TitleFontSize float64
	FrameWidth    float64
	BlockSpacing  float64
	Padding       float64
	HeaderHeight  float64

	// Fonts gives TrueType files for the three weights.  If all names are
	// empty, the Go fonts are used.
	Fonts Fonts

	Metadata render.Metadata
}

// Fonts names TrueType font files.
type Fonts struct {
	Regular string `toml:"regular"`
	Italic  string `toml:"italic"`
	Bold    string `toml:"bold"`
}

// Default returns the default settings: A4 portrait pages with a wide left
// margin for binding, 9pt text and thin frames.
func Default() *Settings {
	return &Settings{
		Paper:       A4,
		Orientation: Portrait,
		Margins: layout.Margins{
			Top:    PointsFromMM(10),
			Right:  PointsFromMM(10),
			Bottom: PointsFromMM(10),
			Left:   PointsFromMM(25),
		},
		FontSize:      9,
		TitleFontSize: 12,
		FrameWidth:    PointsFromMM(0.2),
		BlockSpacing:  PointsFromMM(5),
		Padding:       2,
		HeaderHeight:  15,
	}
}

// PageSize returns the page width and height in PDF points.
func (s *Settings) PageSize() (width, height float64) {
	return s.Paper.Size(s.Orientation)
}

// Validate checks that the settings describe a usable page.
func (s *Settings) Validate() error {
	w, h := s.PageSize()
	m := s.Margins
	switch {
	case !(w > 0 && h > 0):
		return errors.New("page size must be positive")
	case m.Top < 0 || m.Right < 0 || m.Bottom < 0 || m.Left < 0:
		return errors.New("margins must not be negative")
	case m.Left+m.Right >= w || m.Top+m.Bottom >= h:
		return errors.New("margins leave no space for content")
	case !(s.FontSize > 0) || !(s.TitleFontSize > 0):
		return errors.New("font sizes must be positive")
	case s.FrameWidth < 0 || s.BlockSpacing < 0 || s.Padding < 0 || s.HeaderHeight < 0:
		return errors.New("lengths must not be negative")
	}
	return nil
}

// LayoutOptions converts the settings into options for
// [layout.NewDocument].  The logger and observer may be nil.
func (s *Settings) LayoutOptions(logger *log.Logger, obs layout.Observer) *layout.Options {
	w, h := s.PageSize()
	return &layout.Options{
		PageWidth:     w,
		PageHeight:    h,
		Margins:       s.Margins,
		FontSize:      s.FontSize,
		TitleFontSize: s.TitleFontSize,
		FrameWidth:    s.FrameWidth,
		Padding:       s.Padding,
		HeaderHeight:  s.HeaderHeight,
		BlockSpacing:  s.BlockSpacing,
		Metadata:      s.Metadata,
		Logger:        logger,
		Observer:      obs,
	}
}

// file is the TOML representation of the settings.  Unset fields keep
// their default values.
type file struct {
	Paper         string       `toml:"paper"`
	Orientation   *Orientation `toml:"orientation"`
	Margins       *fileMargins `toml:"margins"`
	FontSize      *float64     `toml:"font_size"`
	TitleFontSize *float64     `toml:"title_font_size"`
	FrameWidth    *float64     `toml:"frame_width"`
	BlockSpacing  *float64     `toml:"block_spacing"`
	Padding       *float64     `toml:"padding"`
	HeaderHeight  *float64     `toml:"header_height"`
	Fonts         *Fonts       `toml:"fonts"`
	Metadata      *fileMeta    `toml:"metadata"`
}

type fileMargins struct {
	Top    *float64 `toml:"top"`
	Right  *float64 `toml:"right"`
	Bottom *float64 `toml:"bottom"`
	Left   *float64 `toml:"left"`
}

type fileMeta struct {
	Title    string `toml:"title"`
	Author   string `toml:"author"`
	Subject  string `toml:"subject"`
	Keywords string `toml:"keywords"`
}

// Load reads settings from a TOML file.  Values not given in the file are
// taken from [Default].
func Load(path string) (*Settings, error) {
	var f file
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return fromFile(&f, md, path)
}

// Parse reads settings from TOML data.
func Parse(data string) (*Settings, error) {
	var f file
	md, err := toml.Decode(data, &f)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return fromFile(&f, md, "config")
}

func fromFile(f *file, md toml.MetaData, name string) (*Settings, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("%s: unknown keys %s", name, strings.Join(keys, ", "))
	}

	s := Default()
	if f.Paper != "" {
		p, ok := LookupPaper(f.Paper)
		if !ok {
			return nil, fmt.Errorf("%s: unknown paper size %q", name, f.Paper)
		}
		s.Paper = p
	}
	if f.Orientation != nil {
		s.Orientation = *f.Orientation
	}
	if m := f.Margins; m != nil {
		setMM(&s.Margins.Top, m.Top)
		setMM(&s.Margins.Right, m.Right)
		setMM(&s.Margins.Bottom, m.Bottom)
		setMM(&s.Margins.Left, m.Left)
	}
	set(&s.FontSize, f.FontSize)
	set(&s.TitleFontSize, f.TitleFontSize)
	setMM(&s.FrameWidth, f.FrameWidth)
	setMM(&s.BlockSpacing, f.BlockSpacing)
	set(&s.Padding, f.Padding)
	set(&s.HeaderHeight, f.HeaderHeight)
	if f.Fonts != nil {
		s.Fonts = *f.Fonts
	}
	if m := f.Metadata; m != nil {
		s.Metadata = render.Metadata{
			Title:    m.Title,
			Author:   m.Author,
			Subject:  m.Subject,
			Keywords: m.Keywords,
		}
	}

	err := s.Validate()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return s, nil
}

func set(dst *float64, val *float64) {
	if val != nil {
		*dst = *val
	}
}

func setMM(dst *float64, val *float64) {
	if val != nil {
		*dst = PointsFromMM(*val)
	}
}
