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
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"seehuhn.de/go/tablepdf/config"
	"seehuhn.de/go/tablepdf/internal/float"
)

func (c *CLI) newPapersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "papers",
		Short: "List the available page sizes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := tablewriter.NewWriter(c.Stdout)
			t.SetHeader([]string{"Name", "mm", "Points"})
			t.SetAutoFormatHeaders(false)
			t.SetAlignment(tablewriter.ALIGN_LEFT)
			t.SetAutoWrapText(false)
			for _, p := range config.Papers {
				pw, ph := p.Size(config.Portrait)
				t.Append([]string{
					p.Name,
					float.Format(p.Width, 1) + "x" + float.Format(p.Height, 1),
					float.Format(pw, 2) + "x" + float.Format(ph, 2),
				})
			}
			t.Render()
			return nil
		},
	}
}
