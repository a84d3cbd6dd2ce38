package consolidate

import (
	"time"

	"github.com/rezonia/invoice-issuer/internal/model"
)

// Stamp returns copies of the records carrying the run date/time as backend
// integer fields, the print status flag and the print count. First issuance
// stamps P with a count of 1; a reprint stamps R and increments the count.
func Stamp(records []model.InvoiceRecord, runAt time.Time, reprint bool) []model.InvoiceRecord {
	out := make([]model.InvoiceRecord, len(records))
	for i, rec := range records {
		rec.RunDate = model.DateInt(runAt)
		rec.RunTime = model.TimeInt(runAt)
		if reprint {
			rec.Status = model.StatusReprinted
			rec.PrintCount++
		} else {
			rec.Status = model.StatusPrinted
			rec.PrintCount = 1
		}
		out[i] = rec
	}
	return out
}
