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

package tablefile

import (
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"os"
	"path/filepath"
	"strconv"
	"strings"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder

	"seehuhn.de/go/tablepdf/render"
	"seehuhn.de/go/tablepdf/table"
)

// Document is the content of a table file.
type Document struct {
	Title string
	Table *table.Static
}

type fileDoc struct {
	Title      string        `yaml:"title" toml:"title" json:"title"`
	LinkHeight float64       `yaml:"link_height" toml:"link_height" json:"link_height"`
	Columns    []fileColumn  `yaml:"columns" toml:"columns" json:"columns"`
	Sections   []fileSection `yaml:"sections" toml:"sections" json:"sections"`
}

type fileColumn struct {
	ID     string      `yaml:"id" toml:"id" json:"id"`
	Title  string      `yaml:"title" toml:"title" json:"title"`
	Width  float64     `yaml:"width" toml:"width" json:"width"`
	Align  string      `yaml:"align" toml:"align" json:"align"`
	Styles []fileStyle `yaml:"styles" toml:"styles" json:"styles"`
}

type fileSection struct {
	Title string    `yaml:"title" toml:"title" json:"title"`
	Rows  []fileRow `yaml:"rows" toml:"rows" json:"rows"`
}

// fileRow gives either a list of plain texts, or a list of cells.
type fileRow struct {
	Texts []string   `yaml:"texts" toml:"texts" json:"texts"`
	Cells []fileCell `yaml:"cells" toml:"cells" json:"cells"`
}

type fileCell struct {
	// A cell without text and image is empty.
	Text  *string `yaml:"text" toml:"text" json:"text"`
	Image string  `yaml:"image" toml:"image" json:"image"`

	Align  string      `yaml:"align" toml:"align" json:"align"`
	Styles []fileStyle `yaml:"styles" toml:"styles" json:"styles"`

	Merge      *int   `yaml:"merge" toml:"merge" json:"merge"`
	Fill       string `yaml:"fill" toml:"fill" json:"fill"`
	Frame      string `yaml:"frame" toml:"frame" json:"frame"`
	FrameColor string `yaml:"frame_color" toml:"frame_color" json:"frame_color"`
}

// fileStyle applies to a range of characters.  Without start and length,
// the whole text is affected.
type fileStyle struct {
	Weight string  `yaml:"weight" toml:"weight" json:"weight"`
	Size   float64 `yaml:"size" toml:"size" json:"size"`
	Scale  float64 `yaml:"scale" toml:"scale" json:"scale"`
	Start  int     `yaml:"start" toml:"start" json:"start"`
	Len    *int    `yaml:"len" toml:"len" json:"len"`
}

type converter struct {
	dir    string
	images map[string]*loadedImage
}

type loadedImage struct {
	img image.Image
	err error
}

func (c *converter) document(f *fileDoc) (*Document, error) {
	tab := &table.Static{Link: f.LinkHeight}
	for i, fc := range f.Columns {
		col, err := c.column(i, &fc)
		if err != nil {
			return nil, err
		}
		tab.Cols = append(tab.Cols, col)
	}
	for s, fs := range f.Sections {
		sec := table.Section{Title: fs.Title}
		for r, fr := range fs.Rows {
			row, err := c.row(&fr)
			if err != nil {
				return nil, fmt.Errorf("section %d, row %d: %w", s+1, r+1, err)
			}
			sec.Rows = append(sec.Rows, row)
		}
		tab.Sections = append(tab.Sections, sec)
	}
	return &Document{Title: f.Title, Table: tab}, nil
}

func (c *converter) column(i int, fc *fileColumn) (table.Column, error) {
	col := table.Column{
		ID:    table.ColumnID(fc.ID),
		Title: fc.Title,
		Width: fc.Width,
	}
	if col.ID == "" {
		col.ID = table.ColumnID("col" + strconv.Itoa(i+1))
	}
	attrs, err := textAttributes(fc.Align, fc.Styles)
	if err != nil {
		return col, fmt.Errorf("column %q: %w", col.ID, err)
	}
	col.Text = attrs
	return col, nil
}

func (c *converter) row(fr *fileRow) (table.Row, error) {
	if fr.Texts != nil && fr.Cells != nil {
		return table.Row{}, fmt.Errorf("both texts and cells given")
	}
	if fr.Texts != nil {
		return table.Texts(fr.Texts...), nil
	}

	row := table.Row{Cells: make([]table.Cell, len(fr.Cells))}
	for i := range fr.Cells {
		cell, err := c.cell(&fr.Cells[i])
		if err != nil {
			return row, fmt.Errorf("cell %d: %w", i+1, err)
		}
		row.Cells[i] = cell
	}
	return row, nil
}

func (c *converter) cell(fc *fileCell) (table.Cell, error) {
	attrs, err := cellAttributes(fc)
	if err != nil {
		return nil, err
	}

	switch {
	case fc.Image != "" && fc.Text != nil:
		return nil, fmt.Errorf("both text and image given")
	case fc.Image != "":
		img, err := c.loadImage(fc.Image)
		if err != nil {
			return nil, err
		}
		return &table.Image{Image: img, Attr: attrs}, nil
	case fc.Text != nil:
		style, err := textAttributes(fc.Align, fc.Styles)
		if err != nil {
			return nil, err
		}
		return &table.Text{Text: *fc.Text, Style: style, Attr: attrs}, nil
	default:
		return &table.Empty{Attr: attrs}, nil
	}
}

func cellAttributes(fc *fileCell) ([]table.CellAttribute, error) {
	var attrs []table.CellAttribute
	if fc.Merge != nil {
		attrs = append(attrs, table.MergeColumns(*fc.Merge))
	}
	if fc.Fill != "" {
		col, err := ParseColor(fc.Fill)
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, table.FillColor{Color: col})
	}
	switch fc.Frame {
	case "":
		// default frame
	case "none":
		attrs = append(attrs, table.FrameWidth{Width: render.NoLine})
	default:
		w, err := strconv.ParseFloat(fc.Frame, 64)
		if err != nil || w < 0 {
			return nil, fmt.Errorf("invalid frame width %q", fc.Frame)
		}
		attrs = append(attrs, table.FrameWidth{Width: render.FixedLine(w)})
	}
	if fc.FrameColor != "" {
		col, err := ParseColor(fc.FrameColor)
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, table.FrameColor{Color: col})
	}
	return attrs, nil
}

func textAttributes(align string, styles []fileStyle) ([]table.TextAttribute, error) {
	var attrs []table.TextAttribute
	if align != "" {
		a, err := parseAlign(align)
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, table.Align{Value: a})
	}
	for _, st := range styles {
		rng := table.Range{Start: st.Start, Len: -1}
		if st.Len != nil {
			rng.Len = *st.Len
		}
		if st.Weight != "" {
			w, err := parseWeight(st.Weight)
			if err != nil {
				return nil, err
			}
			attrs = append(attrs, table.FontWeight{Value: w, Range: rng})
		}
		if st.Size != 0 {
			attrs = append(attrs, table.FontSize{Size: st.Size, Range: rng})
		}
		if st.Scale != 0 {
			attrs = append(attrs, table.FontScale{Factor: st.Scale, Range: rng})
		}
	}
	return attrs, nil
}

func parseAlign(s string) (render.Alignment, error) {
	switch strings.ToLower(s) {
	case "left":
		return render.AlignLeft, nil
	case "center", "centre":
		return render.AlignCenter, nil
	case "right":
		return render.AlignRight, nil
	default:
		return 0, fmt.Errorf("invalid alignment %q", s)
	}
}

func parseWeight(s string) (render.Weight, error) {
	switch strings.ToLower(s) {
	case "normal", "regular":
		return render.Normal, nil
	case "italic":
		return render.Italic, nil
	case "bold":
		return render.Bold, nil
	default:
		return 0, fmt.Errorf("invalid font weight %q", s)
	}
}

// ParseColor parses colours of the form "#rrggbb" or "#rgb".
func ParseColor(s string) (render.Color, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if !ok || len(hex) != 6 {
		return render.Color{}, fmt.Errorf("invalid colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return render.Color{}, fmt.Errorf("invalid colour %q", s)
	}
	return render.Color{
		R: float64(v>>16&0xff) / 255,
		G: float64(v>>8&0xff) / 255,
		B: float64(v&0xff) / 255,
	}, nil
}

// loadImage decodes an image file.  Every file is read only once.
func (c *converter) loadImage(name string) (image.Image, error) {
	if !filepath.IsAbs(name) {
		name = filepath.Join(c.dir, name)
	}
	if li, ok := c.images[name]; ok {
		return li.img, li.err
	}

	li := &loadedImage{}
	li.img, li.err = decodeImage(name)
	c.images[name] = li
	return li.img, li.err
}

func decodeImage(name string) (image.Image, error) {
	fd, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer fd.Close()
	img, _, err := image.Decode(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return img, nil
}
