package pepparse_test

import (
	"testing"

	"github.com/fwojciec/pepparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultSet(t *testing.T) {
	t.Parallel()

	t.Run("keeps header first and rows in insertion order", func(t *testing.T) {
		t.Parallel()

		results := pepparse.NewResultSet("Link", "Version", "Status")
		results.Append("https://docs.python.org/3.12/", "3.12", "stable")
		results.Append("https://docs.python.org/3.13/", "3.13", "in development")

		assert.Equal(t, 2, results.Len())
		assert.Equal(t, []pepparse.Row{
			{"Link", "Version", "Status"},
			{"https://docs.python.org/3.12/", "3.12", "stable"},
			{"https://docs.python.org/3.13/", "3.13", "in development"},
		}, results.All())
	})

	t.Run("validate rejects rows with different arity", func(t *testing.T) {
		t.Parallel()

		results := pepparse.NewResultSet("Status", "Count")
		results.Append("Final", "2", "extra")

		err := results.Validate()

		require.Error(t, err)
		assert.Equal(t, pepparse.EINVALID, pepparse.ErrorCode(err))
	})

	t.Run("validate rejects empty header", func(t *testing.T) {
		t.Parallel()

		err := pepparse.NewResultSet().Validate()

		require.Error(t, err)
		assert.Equal(t, pepparse.EINVALID, pepparse.ErrorCode(err))
	})
}

func TestParseMode(t *testing.T) {
	t.Parallel()

	t.Run("accepts every supported mode", func(t *testing.T) {
		t.Parallel()

		for _, m := range pepparse.Modes() {
			got, err := pepparse.ParseMode(string(m))
			require.NoError(t, err)
			assert.Equal(t, m, got)
		}
	})

	t.Run("rejects unknown mode", func(t *testing.T) {
		t.Parallel()

		_, err := pepparse.ParseMode("sitemap")

		require.Error(t, err)
		assert.Equal(t, pepparse.EINVALID, pepparse.ErrorCode(err))
	})
}
