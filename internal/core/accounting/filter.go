package accounting

import (
	"time"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

// FilterByDate keeps transactions whose calendar date falls within [from, to].
// A nil bound is open.
func FilterByDate(transactions []domain.Transaction, from, to *time.Time) []domain.Transaction {
	out := make([]domain.Transaction, 0, len(transactions))
	for _, txn := range transactions {
		d := CalendarDate(txn.Date)
		if from != nil && d.Before(CalendarDate(*from)) {
			continue
		}
		if to != nil && d.After(CalendarDate(*to)) {
			continue
		}
		out = append(out, txn)
	}
	return out
}
