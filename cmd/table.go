package cmd

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

// newTable returns a borderless table writing to w. Headers are printed as
// given instead of upper-cased.
func newTable(w io.Writer, headers ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	if len(headers) > 0 {
		table.SetHeader(headers)
		table.SetAutoFormatHeaders(false)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	}
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.SetRowLine(false)
	return table
}
