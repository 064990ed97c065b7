package crawl_test

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/fwojciec/pepparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pepRow struct {
	abbr string
	num  int
}

func pepIndex(rows ...pepRow) string {
	var b strings.Builder
	b.WriteString(`<section id="numerical-index"><table><thead><tr><th>Type</th><th>PEP</th></tr></thead><tbody>`)
	for _, r := range rows {
		fmt.Fprintf(&b, `<tr><td><abbr>%s</abbr></td><td><a href="pep-%04d/">%d</a></td></tr>`, r.abbr, r.num, r.num)
	}
	b.WriteString(`</tbody></table></section>`)
	return b.String()
}

func pepPage(status string) string {
	return `<dl class="rfc2822 field-list simple">
<dt class="field-odd">Author<span class="colon">:</span></dt><dd class="field-odd">Someone</dd>
<dt class="field-even">Status<span class="colon">:</span></dt><dd class="field-even"><abbr title="x">` + status + `</abbr></dd>
</dl>`
}

func pepURL(num int) string {
	return fmt.Sprintf("%spep-%04d/", pepsURL, num)
}

func TestCrawler_PEP(t *testing.T) {
	t.Parallel()

	t.Run("tallies confirmed statuses sorted with a total", func(t *testing.T) {
		t.Parallel()

		var logs bytes.Buffer
		c := newCrawler(site(map[string]string{
			pepsURL:   pepIndex(pepRow{"SF", 1}, pepRow{"SF", 2}, pepRow{"S", 3}),
			pepURL(1): pepPage("Final"),
			pepURL(2): pepPage("Final"),
			pepURL(3): pepPage("Draft"),
		}), &logs)

		results, err := c.PEP(context.Background())

		require.NoError(t, err)
		require.NoError(t, results.Validate())
		assert.Equal(t, pepparse.Row{"Status", "Count"}, results.Header())
		assert.Equal(t, []pepparse.Row{
			{"Draft", "1"},
			{"Final", "2"},
			{"Total", "3"},
		}, results.Rows())
		assert.NotContains(t, logs.String(), "mismatched statuses")
	})

	t.Run("logs mismatches after the crawl without failing", func(t *testing.T) {
		t.Parallel()

		var logs bytes.Buffer
		var progress []pepparse.Progress
		c := newCrawler(site(map[string]string{
			pepsURL:   pepIndex(pepRow{"PA", 1}, pepRow{"IA", 2}),
			pepURL(1): pepPage("Rejected"),
			pepURL(2): pepPage("Active"),
		}), &logs)
		c.Progress = func(p pepparse.Progress) {
			// Mismatches are flushed only after every row was processed.
			if p.Completed < p.Total {
				assert.NotContains(t, logs.String(), "mismatched statuses")
			}
			progress = append(progress, p)
		}

		results, err := c.PEP(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []pepparse.Row{
			{"Active", "1"},
			{"Rejected", "1"},
			{"Total", "2"},
		}, results.Rows())
		assert.Equal(t, 1, strings.Count(logs.String(), "mismatched statuses"))
		assert.Contains(t, logs.String(), pepURL(1))
		assert.Len(t, progress, 2)
	})

	t.Run("skips PEPs whose page is unavailable", func(t *testing.T) {
		t.Parallel()

		var logs bytes.Buffer
		c := newCrawler(site(map[string]string{
			pepsURL:   pepIndex(pepRow{"SF", 1}, pepRow{"SF", 2}),
			pepURL(2): pepPage("Final"),
		}), &logs)

		results, err := c.PEP(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []pepparse.Row{{"Final", "1"}, {"Total", "1"}}, results.Rows())
	})

	t.Run("missing status term terminates the crawl", func(t *testing.T) {
		t.Parallel()

		var logs bytes.Buffer
		c := newCrawler(site(map[string]string{
			pepsURL:   pepIndex(pepRow{"SF", 1}, pepRow{"SF", 2}),
			pepURL(1): `<dl><dt>Author:</dt><dd>Someone</dd></dl>`,
			pepURL(2): pepPage("Final"),
		}), &logs)

		results, err := c.PEP(context.Background())

		require.Error(t, err)
		assert.Nil(t, results)
		assert.Equal(t, pepparse.ENOTFOUND, pepparse.ErrorCode(err))
		assert.Contains(t, err.Error(), pepURL(1))
	})

	t.Run("unknown preview code terminates the crawl", func(t *testing.T) {
		t.Parallel()

		var logs bytes.Buffer
		c := newCrawler(site(map[string]string{
			pepsURL:   pepIndex(pepRow{"SX", 1}),
			pepURL(1): pepPage("Final"),
		}), &logs)

		_, err := c.PEP(context.Background())

		require.Error(t, err)
		assert.Equal(t, pepparse.EINVALID, pepparse.ErrorCode(err))
	})
}
