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

// Package render defines the drawing and measuring capabilities which the
// table layout code needs from an output format.
//
// A [Backend] receives the whole life cycle of one document: BeginDocument,
// a sequence of pages started by BeginPage, marks on those pages, and
// finally EndDocument.  A page implicitly ends when the next page begins or
// when the document ends.
//
// All coordinates are in PDF points, measured from the top-left corner of
// the page with y growing downwards.  Backends for formats with a different
// origin convert on output.
package render
