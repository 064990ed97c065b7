package pepparse

import (
	"fmt"
	"slices"
	"sort"
	"strconv"
	"strings"
)

// ExpectedStatus maps a PEP index preview code to the statuses a PEP page
// may show for it. The empty code is used by drafts and active PEPs.
var ExpectedStatus = map[string][]string{
	"A": {"Active", "Accepted"},
	"D": {"Deferred"},
	"F": {"Final"},
	"P": {"Provisional"},
	"R": {"Rejected"},
	"S": {"Superseded"},
	"W": {"Withdrawn"},
	"":  {"Draft", "Active"},
}

// ExpectedStatuses returns the acceptable statuses for a preview code.
// Returns EINVALID for a code missing from ExpectedStatus.
func ExpectedStatuses(code string) ([]string, error) {
	statuses, ok := ExpectedStatus[code]
	if !ok {
		return nil, Errorf(EINVALID, "unknown preview status code %q", code)
	}
	return statuses, nil
}

// StatusCensus counts confirmed PEP statuses and collects the PEPs whose
// confirmed status disagrees with the index preview.
type StatusCensus struct {
	counts     map[string]int
	mismatches []string
}

// NewStatusCensus creates an empty census.
func NewStatusCensus() *StatusCensus {
	return &StatusCensus{counts: make(map[string]int)}
}

// Record adds the confirmed status of the PEP at link.
// A status outside the expected set of previewCode is recorded as a
// mismatch, not an error. An unknown previewCode returns EINVALID and
// leaves the census unchanged.
func (c *StatusCensus) Record(link, previewCode, status string) error {
	expected, err := ExpectedStatuses(previewCode)
	if err != nil {
		return err
	}

	if !slices.Contains(expected, status) {
		c.mismatches = append(c.mismatches, fmt.Sprintf(
			"mismatched statuses: %s. Status on page: %s. Expected statuses: %s",
			link, status, strings.Join(expected, ", "),
		))
	}
	c.counts[status]++
	return nil
}

// Mismatches returns the mismatch messages in the order they were recorded.
func (c *StatusCensus) Mismatches() []string {
	return c.mismatches
}

// Count returns how many PEPs were recorded with status.
func (c *StatusCensus) Count(status string) int {
	return c.counts[status]
}

// Total returns the number of recorded PEPs.
func (c *StatusCensus) Total() int {
	var total int
	for _, n := range c.counts {
		total += n
	}
	return total
}

// ResultSet returns one (status, count) row per status sorted by status,
// followed by a ("Total", sum) row.
func (c *StatusCensus) ResultSet() *ResultSet {
	statuses := make([]string, 0, len(c.counts))
	for status := range c.counts {
		statuses = append(statuses, status)
	}
	sort.Strings(statuses)

	results := NewResultSet("Status", "Count")
	for _, status := range statuses {
		results.Append(status, strconv.Itoa(c.counts[status]))
	}
	results.Append("Total", strconv.Itoa(c.Total()))
	return results
}
