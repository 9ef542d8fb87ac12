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

package table

// ColumnID identifies a column within a table.
// IDs must be non-empty and unique within one table.
type ColumnID string

// Auto is the column width which requests an equal share of the table
// width left over after all explicit column widths are taken out.
const Auto = -1

// Column describes one column of a table.
type Column struct {
	ID    ColumnID
	Title string

	// Width is the width of the column in PDF points.  Values less than or
	// equal to zero make the column an auto-width column.
	Width float64

	// Text is applied to the text of every cell in this column, before the
	// text attributes of the cell itself.
	Text []TextAttribute
}

// IsAuto reports whether the column width is computed by the layout engine.
func (c *Column) IsAuto() bool {
	return c.Width <= 0
}

// Source is the data source for one table.
type Source interface {
	// Columns returns the columns of the table, from left to right.
	Columns() []Column

	// NumSections returns the number of sections.
	NumSections() int

	// NumRows returns the number of rows in the given section.
	NumRows(section int) int

	// SectionTitle returns the title of a section.  If ok is false, the
	// section has no header.
	SectionTitle(section int) (title string, ok bool)

	// Row returns a row of the given section.
	Row(section, row int) Row

	// LinkHeight returns the height of the block which must stay on the
	// same page as the last row of the table.  Zero means that there is no
	// such block.
	LinkHeight() float64
}

// Row holds one cell per column.  A nil cell is treated like [Empty].
type Row struct {
	Cells []Cell
}

// Section is a group of rows with an optional title.
type Section struct {
	Title string
	Rows  []Row
}

// Static is a [Source] backed by Go slices.
type Static struct {
	Cols     []Column
	Sections []Section

	// Link is returned by LinkHeight.
	Link float64
}

var _ Source = (*Static)(nil)

// Columns implements the [Source] interface.
func (t *Static) Columns() []Column {
	return t.Cols
}

// NumSections implements the [Source] interface.
func (t *Static) NumSections() int {
	return len(t.Sections)
}

// NumRows implements the [Source] interface.
func (t *Static) NumRows(section int) int {
	return len(t.Sections[section].Rows)
}

// SectionTitle implements the [Source] interface.
// Sections with an empty title have no header.
func (t *Static) SectionTitle(section int) (string, bool) {
	title := t.Sections[section].Title
	return title, title != ""
}

// Row implements the [Source] interface.
func (t *Static) Row(section, row int) Row {
	return t.Sections[section].Rows[row]
}

// LinkHeight implements the [Source] interface.
func (t *Static) LinkHeight() float64 {
	return t.Link
}

// Texts is a convenience function which makes a row of plain text cells.
func Texts(texts ...string) Row {
	cells := make([]Cell, len(texts))
	for i, s := range texts {
		cells[i] = &Text{Text: s}
	}
	return Row{Cells: cells}
}
