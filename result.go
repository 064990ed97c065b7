package pepparse

import "context"

// Row is one output record.
type Row []string

// ResultSet is the ordered output of one mode invocation.
// The first row is always the header; every data row must have the
// header's arity.
type ResultSet struct {
	header Row
	rows   []Row
}

// NewResultSet creates an empty result set with the given column names.
func NewResultSet(header ...string) *ResultSet {
	return &ResultSet{header: Row(header)}
}

// Append adds a data row.
func (s *ResultSet) Append(cols ...string) {
	s.rows = append(s.rows, Row(cols))
}

// Header returns the column names.
func (s *ResultSet) Header() Row {
	return s.header
}

// Rows returns the data rows in insertion order.
func (s *ResultSet) Rows() []Row {
	return s.rows
}

// All returns the header followed by the data rows.
func (s *ResultSet) All() []Row {
	all := make([]Row, 0, len(s.rows)+1)
	all = append(all, s.header)
	return append(all, s.rows...)
}

// Len returns the number of data rows.
func (s *ResultSet) Len() int {
	return len(s.rows)
}

// Validate returns an error if the header is empty or a row's arity
// differs from the header's.
func (s *ResultSet) Validate() error {
	if len(s.header) == 0 {
		return Errorf(EINVALID, "result set header required")
	}
	for i, row := range s.rows {
		if len(row) != len(s.header) {
			return Errorf(EINVALID, "row %d has %d columns, header has %d", i+1, len(row), len(s.header))
		}
	}
	return nil
}

// Sink renders a result set.
type Sink interface {
	WriteResults(ctx context.Context, mode Mode, results *ResultSet) error
}
