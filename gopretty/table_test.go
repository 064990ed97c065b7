package gopretty_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fwojciec/pepparse"
	"github.com/fwojciec/pepparse/gopretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableSink_WriteResults(t *testing.T) {
	t.Parallel()

	t.Run("renders a left-aligned table with header", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		results := pepparse.NewResultSet("Status", "Count")
		results.Append("Final", "2")
		results.Append("Total", "12")

		err := gopretty.NewTableSink(&buf).WriteResults(context.Background(), pepparse.ModePEP, results)

		require.NoError(t, err)
		output := buf.String()
		assert.Contains(t, output, "| Status | Count |")
		assert.Contains(t, output, "| Final  | 2     |")
		assert.Contains(t, output, "| Total  | 12    |")
		assert.True(t, strings.HasPrefix(output, "+--------+-------+"))
	})

	t.Run("rejects invalid result sets", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		results := pepparse.NewResultSet("Status", "Count")
		results.Append("Final", "2", "extra")

		err := gopretty.NewTableSink(&buf).WriteResults(context.Background(), pepparse.ModePEP, results)

		require.Error(t, err)
		assert.Equal(t, pepparse.EINVALID, pepparse.ErrorCode(err))
		assert.Empty(t, buf.String())
	})
}
