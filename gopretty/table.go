// Package gopretty renders result sets as text tables using go-pretty.
package gopretty

import (
	"context"
	"fmt"
	"io"

	"github.com/fwojciec/pepparse"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

var _ pepparse.Sink = (*TableSink)(nil)

// TableSink writes a result set as a left-aligned ASCII table.
type TableSink struct {
	w io.Writer
}

// NewTableSink creates a new TableSink writing to w.
func NewTableSink(w io.Writer) *TableSink {
	return &TableSink{w: w}
}

// WriteResults renders results with the first row as the table header.
func (s *TableSink) WriteResults(ctx context.Context, mode pepparse.Mode, results *pepparse.ResultSet) error {
	if err := results.Validate(); err != nil {
		return err
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleDefault)
	tw.Style().Format.Header = text.FormatDefault

	header := results.Header()
	tw.AppendHeader(toTableRow(header))
	for _, row := range results.Rows() {
		tw.AppendRow(toTableRow(row))
	}

	configs := make([]table.ColumnConfig, len(header))
	for i := range header {
		configs[i] = table.ColumnConfig{
			Number:      i + 1,
			Align:       text.AlignLeft,
			AlignHeader: text.AlignLeft,
		}
	}
	tw.SetColumnConfigs(configs)

	_, err := fmt.Fprintln(s.w, tw.Render())
	return err
}

func toTableRow(row pepparse.Row) table.Row {
	r := make(table.Row, len(row))
	for i, col := range row {
		r[i] = col
	}
	return r
}
