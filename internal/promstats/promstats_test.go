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

package promstats

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"seehuhn.de/go/tablepdf/layout"
)

func TestStats(t *testing.T) {
	s := New()
	s.TableStarted(3)
	s.RowDrawn(12)
	s.RowDrawn(30)
	s.RowSkipped(&layout.MalformedRowError{})
	s.PageBreak(2)
	s.SetCacheStats(5, 2)

	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"tables", testutil.ToFloat64(s.tables), 1},
		{"rows", testutil.ToFloat64(s.rows), 2},
		{"skipped", testutil.ToFloat64(s.skipped), 1},
		{"page breaks", testutil.ToFloat64(s.pageBreaks), 1},
		{"cache hits", testutil.ToFloat64(s.cacheLookup.WithLabelValues("hit")), 5},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %g, want %g", c.name, c.got, c.want)
		}
	}
}

func TestWriteTextfile(t *testing.T) {
	s := New()
	s.RowDrawn(10)

	name := filepath.Join(t.TempDir(), "tablepdf.prom")
	err := s.WriteTextfile(name)
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"tablepdf_rows_total 1",
		"tablepdf_row_height_points_count 1",
	} {
		if !strings.Contains(string(data), want) {
			t.Errorf("output does not contain %q", want)
		}
	}
}
