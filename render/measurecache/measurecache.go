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

// Package measurecache memoizes text measurements.
//
// Table layout measures the same cell texts repeatedly, for example when
// the same table is drawn several times or when many cells share a value.
package measurecache

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"

	"seehuhn.de/go/tablepdf/render"
)

// DefaultSize is the number of measurements kept by [New] if a
// non-positive size is given.
const DefaultSize = 4096

// MeasureFunc has the signature of [render.Backend.MeasureText].
type MeasureFunc func(text render.StyledText, maxWidth float64) (float64, error)

// Cache remembers the results of a MeasureFunc.  Failed measurements are
// not cached.
type Cache struct {
	measure MeasureFunc
	entries *lru.Cache[uint64, float64]

	hits, misses int
}

// New returns a cache for the given function, holding at most size
// entries.
func New(measure MeasureFunc, size int) *Cache {
	if size <= 0 {
		size = DefaultSize
	}
	entries, err := lru.New[uint64, float64](size)
	if err != nil {
		// only happens for non-positive sizes
		panic(err)
	}
	return &Cache{
		measure: measure,
		entries: entries,
	}
}

// MeasureText returns the cached height for the text, calling the
// underlying function on a cache miss.
func (c *Cache) MeasureText(text render.StyledText, maxWidth float64) (float64, error) {
	key := Key(text, maxWidth)
	if h, ok := c.entries.Get(key); ok {
		c.hits++
		return h, nil
	}
	c.misses++

	h, err := c.measure(text, maxWidth)
	if err != nil {
		return 0, err
	}
	c.entries.Add(key, h)
	return h, nil
}

// Stats returns the number of cache hits and misses so far.
func (c *Cache) Stats() (hits, misses int) {
	return c.hits, c.misses
}

// Key returns a hash of all inputs which influence a measurement.
// Alignment does not change the height and is not included.
func Key(text render.StyledText, maxWidth float64) uint64 {
	h := xxhash.New()
	var buf [8]byte
	writeFloat := func(x float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(x))
		h.Write(buf[:])
	}

	writeFloat(maxWidth)
	for _, run := range text {
		binary.LittleEndian.PutUint64(buf[:], uint64(run.Weight))
		h.Write(buf[:])
		writeFloat(run.Size)
		binary.LittleEndian.PutUint64(buf[:], uint64(len(run.Text)))
		h.Write(buf[:])
		h.WriteString(run.Text)
	}
	return h.Sum64()
}
