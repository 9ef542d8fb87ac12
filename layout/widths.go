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
	"github.com/charmbracelet/log"

	"seehuhn.de/go/tablepdf/table"
)

// widthResolver computes column widths for one table.
//
// Explicit widths are returned as they are.  Auto-width columns share
// the remaining table width equally; the shared value is computed on
// first use and then cached by column ID.  A new resolver is used for
// every table, so that cached widths never leak from one table into
// another.
type widthResolver struct {
	tableWidth float64
	columns    []table.Column
	cache      map[table.ColumnID]float64
	logger     *log.Logger
}

func newWidthResolver(tableWidth float64, columns []table.Column, logger *log.Logger) *widthResolver {
	return &widthResolver{
		tableWidth: tableWidth,
		columns:    columns,
		cache:      make(map[table.ColumnID]float64),
		logger:     logger,
	}
}

// widthFor returns the width of col, which must be one of the columns of
// the table.
func (r *widthResolver) widthFor(col *table.Column) float64 {
	if !col.IsAuto() {
		return col.Width
	}
	if w, ok := r.cache[col.ID]; ok {
		return w
	}

	w := r.tableWidth
	numAuto := 0
	for i := range r.columns {
		if r.columns[i].IsAuto() {
			numAuto++
		} else {
			w -= r.columns[i].Width
		}
	}
	if numAuto > 1 {
		w /= float64(numAuto)
	}

	r.logger.Debug("column width", "column", col.ID, "width", w)
	r.cache[col.ID] = w
	return w
}

// all returns the widths of all columns, from left to right.
func (r *widthResolver) all() []float64 {
	res := make([]float64, len(r.columns))
	for i := range r.columns {
		res[i] = r.widthFor(&r.columns[i])
	}
	return res
}
