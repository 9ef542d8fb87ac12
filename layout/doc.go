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

// Package layout breaks tables into pages.
//
// A [Document] owns the vertical cursor of the current page and decides
// where page breaks occur.  [Document.DrawTable] lays out one table: the
// column header, optional section headers and all rows.  Column widths are
// resolved once per table; auto-width columns share the space left over by
// the columns with explicit widths.  Cells may be merged across several
// columns.  When a row does not fit on the current page, a new page is
// started and the column header is repeated.
//
// The last row of a table can be tied to a block which follows the table
// (see [table.Source.LinkHeight]).  That row is then moved to the next page
// unless both the row and the block fit onto the current page.
//
// Each row is processed in two stages.  First the row is prepared: cells
// are matched with columns, merges are applied and the row height is
// measured.  Only then are the frames and contents drawn.
package layout
