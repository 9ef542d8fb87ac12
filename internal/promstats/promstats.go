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

// Package promstats collects layout statistics as Prometheus metrics.
//
// The metrics are kept in a private registry and can be written to a
// file in the text exposition format, for example for the node exporter
// textfile collector.
package promstats

import (
	"github.com/prometheus/client_golang/prometheus"

	"seehuhn.de/go/tablepdf/layout"
)

// Stats implements [layout.Observer].
type Stats struct {
	reg *prometheus.Registry

	tables      prometheus.Counter
	rows        prometheus.Counter
	skipped     prometheus.Counter
	pageBreaks  prometheus.Counter
	rowHeight   prometheus.Histogram
	cacheLookup *prometheus.GaugeVec
}

var _ layout.Observer = (*Stats)(nil)

// New creates a new set of metrics.
func New() *Stats {
	s := &Stats{
		reg: prometheus.NewRegistry(),
		tables: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tablepdf_tables_total",
			Help: "Number of tables laid out.",
		}),
		rows: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tablepdf_rows_total",
			Help: "Number of table rows drawn.",
		}),
		skipped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tablepdf_rows_skipped_total",
			Help: "Number of malformed table rows which were skipped.",
		}),
		pageBreaks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tablepdf_page_breaks_total",
			Help: "Number of page breaks.",
		}),
		rowHeight: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "tablepdf_row_height_points",
			Help:    "Height of drawn table rows, in PDF points.",
			Buckets: prometheus.ExponentialBuckets(4, 2, 8),
		}),
		cacheLookup: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "tablepdf_measure_cache_lookups",
			Help: "Text measurement cache lookups by result.",
		}, []string{"result"}),
	}
	s.reg.MustRegister(s.tables, s.rows, s.skipped, s.pageBreaks, s.rowHeight, s.cacheLookup)
	return s
}

// TableStarted implements the [layout.Observer] interface.
func (s *Stats) TableStarted(int) {
	s.tables.Inc()
}

// RowDrawn implements the [layout.Observer] interface.
func (s *Stats) RowDrawn(height float64) {
	s.rows.Inc()
	s.rowHeight.Observe(height)
}

// RowSkipped implements the [layout.Observer] interface.
func (s *Stats) RowSkipped(*layout.MalformedRowError) {
	s.skipped.Inc()
}

// PageBreak implements the [layout.Observer] interface.
func (s *Stats) PageBreak(int) {
	s.pageBreaks.Inc()
}

// SetCacheStats records the state of a text measurement cache.
func (s *Stats) SetCacheStats(hits, misses int) {
	s.cacheLookup.WithLabelValues("hit").Set(float64(hits))
	s.cacheLookup.WithLabelValues("miss").Set(float64(misses))
}

// Registry returns the registry holding the metrics.
func (s *Stats) Registry() *prometheus.Registry {
	return s.reg
}

// WriteTextfile writes all metrics to the named file.
func (s *Stats) WriteTextfile(filename string) error {
	return prometheus.WriteToTextfile(filename, s.reg)
}
