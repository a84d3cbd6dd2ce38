package render

import (
	"bytes"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/rezonia/invoice-issuer/internal/model"
)

// MergeDocuments concatenates finished PDF documents page-wise into one
// file. Input order is preserved; callers pass documents in the already
// sorted invoice order.
func MergeDocuments(docs [][]byte) ([]byte, error) {
	if len(docs) == 0 {
		return nil, model.NewRenderError("merge", "no documents to merge", nil)
	}
	if len(docs) == 1 {
		return docs[0], nil
	}

	readers := make([]io.ReadSeeker, len(docs))
	for i, d := range docs {
		readers[i] = bytes.NewReader(d)
	}

	var buf bytes.Buffer
	if err := api.MergeRaw(readers, &buf, false, nil); err != nil {
		return nil, model.NewRenderError("merge", "failed to merge documents", err)
	}
	return buf.Bytes(), nil
}

// BuildBatch renders every record to its own document and merges the
// results in order. Each invoice owns an independent page cursor and output
// buffer, so individual renders are safe to run in any order; the merge is
// the single order-sensitive step.
func BuildBatch(records []model.InvoiceRecord) ([]byte, error) {
	builder := NewInvoiceBuilder()
	docs := make([][]byte, 0, len(records))
	for _, rec := range records {
		doc, err := builder.Build(rec)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return MergeDocuments(docs)
}
