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

package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testTable = `
title: Inventory
columns:
  - {id: item, title: Item, width: 120}
  - {id: count, title: Count}
sections:
  - title: Tools
    rows:
      - texts: [Hammer, "3"]
      - texts: [Saw, "1"]
      - texts: [Broken]
`

func writeTable(t *testing.T) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "inventory.yaml")
	err := os.WriteFile(name, []byte(testTable), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	return name
}

func runCLI(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	outBuf := &bytes.Buffer{}
	errBuf := &bytes.Buffer{}
	c := New(outBuf, errBuf)
	c.IsTerminal = func(io.Writer) bool { return false }
	err = c.Execute(context.Background(), args)
	return outBuf.String(), errBuf.String(), err
}

func TestRenderTrace(t *testing.T) {
	in := writeTable(t)
	stdout, stderr, err := runCLI(t, "render", "--format", "trace", in)
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	if lines[0] != "BeginDocument" || lines[len(lines)-1] != "EndDocument" {
		t.Errorf("unexpected trace:\n%s", stdout)
	}
	for _, want := range []string{`"Inventory"`, `"Tools"`, `"Hammer"`, `"Saw"`} {
		if !strings.Contains(stdout, want) {
			t.Errorf("trace does not mention %s", want)
		}
	}
	if strings.Contains(stdout, `"Broken"`) {
		t.Error("malformed row was drawn")
	}
	if !strings.Contains(stderr, "skipped") {
		t.Errorf("no warning about the skipped row in %q", stderr)
	}
}

func TestRenderTitleFlag(t *testing.T) {
	in := writeTable(t)
	stdout, _, err := runCLI(t, "render", "-f", "trace", "--title", "Stock", in)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout, `"Stock"`) || strings.Contains(stdout, `"Inventory"`) {
		t.Errorf("title not replaced:\n%s", stdout)
	}
}

func TestRenderPDF(t *testing.T) {
	in := writeTable(t)
	metrics := filepath.Join(t.TempDir(), "tablepdf.prom")
	_, _, err := runCLI(t, "render", "--metrics-file", metrics, in)
	if err != nil {
		t.Fatal(err)
	}

	out := strings.TrimSuffix(in, ".yaml") + ".pdf"
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("output does not look like a PDF file")
	}

	prom, err := os.ReadFile(metrics)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"tablepdf_rows_total 2", "tablepdf_rows_skipped_total 1"} {
		if !strings.Contains(string(prom), want) {
			t.Errorf("metrics do not contain %q", want)
		}
	}
}

func TestRenderPNG(t *testing.T) {
	in := writeTable(t)
	out := filepath.Join(t.TempDir(), "page.png")
	_, _, err := runCLI(t, "render", "-f", "png", "--dpi", "36", "-o", out, in)
	if err != nil {
		t.Fatal(err)
	}
	_, err = os.Stat(filepath.Join(filepath.Dir(out), "page-1.png"))
	if err != nil {
		t.Error(err)
	}
}

func TestRenderErrors(t *testing.T) {
	in := writeTable(t)

	_, _, err := runCLI(t, "render", "--format", "svg", in)
	if err == nil {
		t.Error("unknown format accepted")
	}

	_, _, err = runCLI(t, "render", "-f", "png", "-o", "-", in)
	if err == nil {
		t.Error("PNG output to stdout accepted")
	}

	_, _, err = runCLI(t, "render", filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("missing input accepted")
	}

	c := New(&bytes.Buffer{}, io.Discard)
	c.IsTerminal = func(io.Writer) bool { return true }
	err = c.Execute(context.Background(), []string{"render", "-o", "-", in})
	if err == nil || !strings.Contains(err.Error(), "terminal") {
		t.Errorf("PDF output to a terminal: got %v", err)
	}
}

func TestRenderCancelled(t *testing.T) {
	in := writeTable(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := New(io.Discard, io.Discard)
	err := c.Execute(ctx, []string{"render", "-f", "trace", in})
	if err != context.Canceled {
		t.Errorf("got %v, want %v", err, context.Canceled)
	}
}

func TestPapers(t *testing.T) {
	stdout, _, err := runCLI(t, "papers")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"A4", "A5", "Letter", "595.28x841.89"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("papers output does not contain %q:\n%s", want, stdout)
		}
	}
}

func TestOutputNames(t *testing.T) {
	cases := []struct {
		input, format, output, pattern string
	}{
		{"data/table.yaml", formatPDF, "data/table.pdf", "data/table-%d.pdf"},
		{"table.toml", formatPNG, "table.png", "table-%d.png"},
		{"50%.json", formatPNG, "50%.png", "50%%-%d.png"},
		{"table.yaml", formatTrace, "-", "--%d.png"},
	}
	for _, c := range cases {
		output := defaultOutput(c.input, c.format)
		if output != c.output {
			t.Errorf("defaultOutput(%q, %q) = %q, want %q", c.input, c.format, output, c.output)
		}
		if pattern := pngPattern(output); pattern != c.pattern {
			t.Errorf("pngPattern(%q) = %q, want %q", output, pattern, c.pattern)
		}
	}
}
