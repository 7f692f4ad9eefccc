// Package reports provides the owner's invoice summary (totals per status
// and per month).
package reports

import (
	"time"

	"invoicer/internal/core/types"
	"invoicer/internal/domain/invoice"
)

// SummaryFilter limits the summary to invoices dated within [DateFrom, DateTo].
// Nil bounds are open.
type SummaryFilter struct {
	DateFrom *time.Time
	DateTo   *time.Time
}

// StatusTotal aggregates invoices of one status.
type StatusTotal struct {
	Status invoice.Status `db:"status" json:"status"`
	Count  int64          `db:"count" json:"count"`
	Total  types.Money    `db:"total" json:"total"`
}

// MonthTotal aggregates invoices dated within one calendar month (YYYY-MM).
type MonthTotal struct {
	Month string      `db:"month" json:"month"`
	Count int64       `db:"count" json:"count"`
	Total types.Money `db:"total" json:"total"`
}

// Summary is the owner's dashboard report.
type Summary struct {
	Count int64
	Total types.Money
	Paid  types.Money
	// Outstanding is the sum of sent and overdue invoices
	Outstanding types.Money
	ByStatus    []StatusTotal
	ByMonth     []MonthTotal
	// NextNumber is the number the next allocation will return, formatted
	NextNumber string
}
