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
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"

	"seehuhn.de/go/tablepdf/config"
	"seehuhn.de/go/tablepdf/internal/promstats"
	"seehuhn.de/go/tablepdf/layout"
	"seehuhn.de/go/tablepdf/render"
	"seehuhn.de/go/tablepdf/render/pdfout"
	"seehuhn.de/go/tablepdf/render/raster"
	"seehuhn.de/go/tablepdf/render/recorder"
	"seehuhn.de/go/tablepdf/render/textmetrics"
	"seehuhn.de/go/tablepdf/tablefile"
)

// Output formats of the render command.
const (
	formatPDF   = "pdf"
	formatPNG   = "png"
	formatTrace = "trace"
)

var formats = []string{formatPDF, formatPNG, formatTrace}

type renderOptions struct {
	config      string
	output      string
	format      string
	dpi         float64
	metricsFile string
	title       string
}

func (c *CLI) newRenderCmd() *cobra.Command {
	opts := &renderOptions{}
	cmd := &cobra.Command{
		Use:   "render <table file>",
		Short: "Lay out a table file as PDF, PNG or a trace of drawing operations",
		Long: `Lay out a table read from a YAML, TOML or JSON file.

The output name defaults to the input name with the extension replaced.
For PNG output, every page is written to its own file with the page number
appended to the name.  The trace format lists the drawing operations and
is written to standard output by default.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args[0], opts)
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&opts.config, "config", "c", "", "TOML file with page settings")
	flags.StringVarP(&opts.output, "output", "o", "", `output file, "-" for standard output`)
	flags.StringVarP(&opts.format, "format", "f", formatPDF, "output format: "+strings.Join(formats, ", "))
	flags.Float64Var(&opts.dpi, "dpi", 150, "resolution for PNG output")
	flags.StringVar(&opts.metricsFile, "metrics-file", "", "write layout metrics in Prometheus text format")
	flags.StringVar(&opts.title, "title", "", "document title, overrides the title from the table file")
	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, input string, opts *renderOptions) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	if !slices.Contains(formats, opts.format) {
		return fmt.Errorf("unknown output format %q", opts.format)
	}

	settings := config.Default()
	if opts.config != "" {
		var err error
		settings, err = config.Load(opts.config)
		if err != nil {
			return err
		}
		logger.Debug("loaded settings", "file", opts.config, "paper", settings.Paper.Name)
	}

	p := newProgress(logger)
	doc, err := tablefile.ReadFile(input)
	if err != nil {
		return err
	}
	title := doc.Title
	if opts.title != "" {
		title = opts.title
	}
	if settings.Metadata.Title == "" {
		settings.Metadata.Title = title
	}
	p.done("read table", "file", input, "sections", len(doc.Table.Sections))

	if err := ctx.Err(); err != nil {
		return err
	}

	fonts := settings.Fonts
	family, err := textmetrics.ReadFamily(fonts.Regular, fonts.Italic, fonts.Bold)
	if err != nil {
		return err
	}
	measurer := textmetrics.New(family)

	output := opts.output
	if output == "" {
		output = defaultOutput(input, opts.format)
	}

	var stats *promstats.Stats
	var obs layout.Observer
	if opts.metricsFile != "" {
		stats = promstats.New()
		obs = stats
	}

	p = newProgress(logger)
	out := &target{cli: c, name: output, format: opts.format}
	var backend render.Backend
	var finish func() error
	switch opts.format {
	case formatPDF:
		w, err := out.open()
		if err != nil {
			return err
		}
		pb := pdfout.New(w, measurer, &pdfout.Options{Producer: "tablepdf"})
		backend = pb
		finish = func() error {
			if stats != nil {
				stats.SetCacheStats(pb.CacheStats())
			}
			return nil
		}
	case formatPNG:
		if output == "-" {
			return errors.New("PNG output needs a file name")
		}
		backend = raster.New(measurer, opts.dpi, raster.WritePNG(pngPattern(output)))
	case formatTrace:
		rec := &recorder.Recorder{Measure: measurer.MeasureText, SkipMeasure: true}
		backend = rec
		finish = func() error {
			w, err := out.open()
			if err != nil {
				return err
			}
			_, err = io.WriteString(w, rec.String())
			return err
		}
	}

	err = layoutTable(backend, settings.LayoutOptions(logger, obs), title, doc, logger)
	if err == nil && finish != nil {
		err = finish()
	}
	err = errors.Join(err, out.close(err != nil))
	if err != nil {
		return err
	}
	p.done("wrote output", "file", output, "format", opts.format)

	if stats != nil {
		err = stats.WriteTextfile(opts.metricsFile)
		if err != nil {
			return err
		}
		logger.Debug("wrote metrics", "file", opts.metricsFile)
	}
	return nil
}

func layoutTable(b render.Backend, opt *layout.Options, title string, doc *tablefile.Document, logger *log.Logger) error {
	d, err := layout.NewDocument(b, opt)
	if err != nil {
		return err
	}
	if title != "" {
		err = d.DrawTitle(title)
		if err != nil {
			return err
		}
	}
	report, err := d.DrawTable(doc.Table)
	if err != nil {
		return err
	}
	pages := d.PageNumber()
	err = d.Close()
	if err != nil {
		return err
	}
	if n := len(report.Skipped); n > 0 {
		logger.Warn("some rows were skipped", "count", n)
	}
	logger.Info("laid out table", "rows", report.Rows, "pages", pages)
	return nil
}

// target is an output file, or standard output if the name is "-".
type target struct {
	cli    *CLI
	name   string
	format string
	fd     *os.File
}

func (t *target) open() (io.Writer, error) {
	if t.name == "-" {
		if t.format != formatTrace && t.cli.IsTerminal != nil && t.cli.IsTerminal(t.cli.Stdout) {
			return nil, fmt.Errorf("refusing to write %s data to a terminal", strings.ToUpper(t.format))
		}
		return t.cli.Stdout, nil
	}
	fd, err := os.Create(t.name)
	if err != nil {
		return nil, err
	}
	t.fd = fd
	return fd, nil
}

// close closes the output file.  If failed is set, the partial output is
// removed.
func (t *target) close(failed bool) error {
	if t.fd == nil {
		return nil
	}
	err := t.fd.Close()
	t.fd = nil
	if failed {
		os.Remove(t.name)
		return nil
	}
	return err
}

// defaultOutput derives the output name from the input file name.
func defaultOutput(input, format string) string {
	if format == formatTrace {
		return "-"
	}
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + "." + format
}

// pngPattern turns an output name like "table.png" into a pattern for
// per-page file names, "table-%d.png".
func pngPattern(output string) string {
	ext := filepath.Ext(output)
	if ext == "" {
		ext = ".png"
	}
	base := strings.TrimSuffix(output, filepath.Ext(output))
	return strings.ReplaceAll(base, "%", "%%") + "-%d" + ext
}
