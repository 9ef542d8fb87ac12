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

// Package tablefile reads table descriptions from YAML, TOML or JSON
// files.
//
// A table file has a title, a list of columns and a list of sections:
//
//	title: Price list
//	link_height: 40
//	columns:
//	  - {id: item, title: Item, width: 120, align: left}
//	  - {id: price, title: Price}
//	sections:
//	  - title: Fruit
//	    rows:
//	      - texts: [Apple, "1.20"]
//	      - cells:
//	          - {text: Banana, fill: "#eeeeee"}
//	          - {text: "0.80", styles: [{weight: bold}]}
//
// Column widths are in PDF points; columns without a width share the
// remaining space.  Image cells name a PNG, JPEG, GIF, BMP, TIFF or WebP
// file, relative to the table file.
package tablefile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format identifies the syntax of a table file.
type Format int

// These are the supported file formats.
const (
	YAML Format = iota
	TOML
	JSON
)

func (f Format) String() string {
	switch f {
	case YAML:
		return "YAML"
	case TOML:
		return "TOML"
	case JSON:
		return "JSON"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFromName guesses the file format from the file name extension.
func FormatFromName(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	case ".json":
		return JSON, nil
	default:
		return 0, fmt.Errorf("%s: unknown table file format", name)
	}
}

// ReadFile reads a table file.  The format is chosen by the file name
// extension.  Image paths are resolved relative to the directory of the
// file.
func ReadFile(name string) (*Document, error) {
	format, err := FormatFromName(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	doc, err := Decode(bytes.NewReader(data), format, filepath.Dir(name))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return doc, nil
}

// Decode reads a table description from r.  Relative image paths are
// resolved against dir.  Unknown keys are an error.
func Decode(r io.Reader, format Format, dir string) (*Document, error) {
	var f fileDoc
	switch format {
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err := dec.Decode(&f)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	case TOML:
		md, err := toml.NewDecoder(r).Decode(&f)
		if err != nil {
			return nil, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			sort.Strings(keys)
			return nil, fmt.Errorf("unknown keys %s", strings.Join(keys, ", "))
		}
	case JSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		err := dec.Decode(&f)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported format %s", format)
	}

	c := &converter{dir: dir, images: make(map[string]*loadedImage)}
	return c.document(&f)
}
