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
	"errors"
	"fmt"
)

var (
	// ErrDocumentClosed is returned by operations on a closed document.
	ErrDocumentClosed = errors.New("document closed")

	// ErrNoPage is returned when drawing is attempted after a failed
	// page break.
	ErrNoPage = errors.New("no active page")
)

// MalformedRowError reports a row whose number of cells does not match the
// number of columns.  Such rows are skipped; the error is reported in
// [Report.Skipped] and does not abort the table.
type MalformedRowError struct {
	Section, Row int
	Cells        int
	Columns      int
}

func (err *MalformedRowError) Error() string {
	return fmt.Sprintf("section %d, row %d: %d cells for %d columns",
		err.Section, err.Row, err.Cells, err.Columns)
}

// InvalidMergeError reports a merge count which is not positive or which
// reaches past the last column.  This aborts the table.
type InvalidMergeError struct {
	Section, Row int
	Column       int
	Span         int
	Columns      int
}

func (err *InvalidMergeError) Error() string {
	return fmt.Sprintf("section %d, row %d, column %d: invalid merge of %d columns (table has %d)",
		err.Section, err.Row, err.Column, err.Span, err.Columns)
}

// MissingMeasurementError indicates that the backend could not measure a
// piece of text, for example because a font could not be resolved.
// This aborts the table.
type MissingMeasurementError struct {
	Text string
	Err  error
}

func (err *MissingMeasurementError) Error() string {
	return fmt.Sprintf("cannot measure %q: %v", err.Text, err.Err)
}

func (err *MissingMeasurementError) Unwrap() error {
	return err.Err
}

// InvalidTableError reports a table which cannot be laid out at all,
// for example because it has no columns.
type InvalidTableError struct {
	Reason string
}

func (err *InvalidTableError) Error() string {
	return "invalid table: " + err.Reason
}
