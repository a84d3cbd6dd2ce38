package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginate_SinglePage(t *testing.T) {
	spans := paginate(5, 10, 20)
	require.Len(t, spans, 1)
	assert.Equal(t, pageSpan{0, 5}, spans[0])
}

func TestPaginate_EmptyTableStillOnePage(t *testing.T) {
	spans := paginate(0, 10, 20)
	require.Len(t, spans, 1)
	assert.Equal(t, pageSpan{0, 0}, spans[0])
}

func TestPaginate_ExactFit(t *testing.T) {
	spans := paginate(10, 10, 20)
	require.Len(t, spans, 1)
	assert.Equal(t, pageSpan{0, 10}, spans[0])
}

func TestPaginate_Overflow(t *testing.T) {
	// 47 rows, 10 on page 1, 20 per continuation page:
	// pages = ceil((47-10)/20)+1 = 3.
	spans := paginate(47, 10, 20)

	require.Len(t, spans, 3)
	assert.Equal(t, pageSpan{0, 10}, spans[0])
	assert.Equal(t, pageSpan{10, 30}, spans[1])
	assert.Equal(t, pageSpan{30, 47}, spans[2])
}

func TestPaginate_NoRowSplitAcrossPages(t *testing.T) {
	for _, rows := range []int{1, 9, 10, 11, 30, 31, 100} {
		spans := paginate(rows, 10, 20)

		// Spans tile [0, rows) exactly: every row lands on one page.
		next := 0
		for _, s := range spans {
			assert.Equal(t, next, s.start, "rows=%d", rows)
			assert.GreaterOrEqual(t, s.end, s.start)
			next = s.end
		}
		assert.Equal(t, rows, next, "rows=%d", rows)

		// Row k (first overflow row) opens page 2.
		if rows > 10 {
			assert.Equal(t, 10, spans[1].start)
		}
	}
}

func TestPaginate_PageCountFormula(t *testing.T) {
	g := InvoiceGeometry()
	first, cont := g.RowsPerPage(true), g.RowsPerPage(false)
	for _, n := range []int{24, 50, 52, 53, 200} {
		spans := paginate(n, first, cont)
		want := (n-first+cont-1)/cont + 1
		assert.Len(t, spans, want, "n=%d", n)
	}
}
