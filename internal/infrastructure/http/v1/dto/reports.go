package dto

import (
	"github.com/samber/lo"

	"invoicer/internal/core/types"
	"invoicer/internal/domain/invoice"
	"invoicer/internal/domain/reports"
)

// SummaryQuery holds the optional report date range.
type SummaryQuery struct {
	From string `form:"from"`
	To   string `form:"to"`
}

// ToFilter converts to the domain filter.
func (q SummaryQuery) ToFilter() (reports.SummaryFilter, error) {
	var (
		f   reports.SummaryFilter
		err error
	)
	if f.DateFrom, err = ParseDate("from", &q.From); err != nil {
		return f, err
	}
	if f.DateTo, err = ParseDate("to", &q.To); err != nil {
		return f, err
	}
	return f, nil
}

// TotalResponse is one aggregate row.
type TotalResponse struct {
	Count int64  `json:"count"`
	Total string `json:"total"`
}

// StatusTotalResponse aggregates one status.
type StatusTotalResponse struct {
	Status invoice.Status `json:"status"`
	Label  string         `json:"label"`
	TotalResponse
}

// MonthTotalResponse aggregates one month.
type MonthTotalResponse struct {
	Month string `json:"month"`
	TotalResponse
}

// SummaryResponse is returned by GET /reports/summary.
type SummaryResponse struct {
	Count       int64                 `json:"count"`
	Total       string                `json:"total"`
	Paid        string                `json:"paid"`
	Outstanding string                `json:"outstanding"`
	ByStatus    []StatusTotalResponse `json:"byStatus"`
	ByMonth     []MonthTotalResponse  `json:"byMonth"`
	NextNumber  string                `json:"nextNumber"`
}

// FromSummary converts the domain summary.
func FromSummary(s *reports.Summary) SummaryResponse {
	return SummaryResponse{
		Count:       s.Count,
		Total:       types.FormatMoney(s.Total),
		Paid:        types.FormatMoney(s.Paid),
		Outstanding: types.FormatMoney(s.Outstanding),
		ByStatus: lo.Map(s.ByStatus, func(r reports.StatusTotal, _ int) StatusTotalResponse {
			return StatusTotalResponse{
				Status:        r.Status,
				Label:         r.Status.Label(),
				TotalResponse: TotalResponse{Count: r.Count, Total: types.FormatMoney(r.Total)},
			}
		}),
		ByMonth: lo.Map(s.ByMonth, func(r reports.MonthTotal, _ int) MonthTotalResponse {
			return MonthTotalResponse{
				Month:         r.Month,
				TotalResponse: TotalResponse{Count: r.Count, Total: types.FormatMoney(r.Total)},
			}
		}),
		NextNumber: s.NextNumber,
	}
}
