package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/gocarina/gocsv"

	"invoicer/internal/core/types"
	"invoicer/internal/domain/invoice"
)

// csvRecord is one exported invoice row. Column order is the field order.
type csvRecord struct {
	InvoiceNumber string `csv:"invoice_number"`
	Date          string `csv:"date"`
	DueDate       string `csv:"due_date"`
	Status        string `csv:"status"`
	ClientName    string `csv:"client_name"`
	Description   string `csv:"description"`
	Amount        string `csv:"amount"`
	UserName      string `csv:"user_name"`
	UserEmail     string `csv:"user_email"`
}

// CSVRenderer exports an invoice as a header line plus one data row.
type CSVRenderer struct{}

var _ invoice.Renderer = (*CSVRenderer)(nil)

// NewCSV creates a CSV renderer.
func NewCSV() *CSVRenderer {
	return &CSVRenderer{}
}

func (r *CSVRenderer) Format() invoice.Format { return invoice.FormatCSV }

func (r *CSVRenderer) ContentType() string { return "text/csv; charset=utf-8" }

// Render implements invoice.Renderer.
func (r *CSVRenderer) Render(ctx context.Context, doc *invoice.Document) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("csv: nil document")
	}

	record := csvRecord{
		InvoiceNumber: Sanitize(doc.InvoiceNumber),
		Date:          formatDate(&doc.Date),
		DueDate:       formatDate(doc.DueDate),
		Status:        string(doc.Status),
		ClientName:    Sanitize(doc.ClientName),
		Description:   Sanitize(doc.Description),
		Amount:        types.FormatMoney(doc.Amount),
		UserName:      Sanitize(doc.OwnerName),
		UserEmail:     doc.OwnerEmail,
	}

	var buf bytes.Buffer
	if err := gocsv.Marshal([]csvRecord{record}, &buf); err != nil {
		return nil, fmt.Errorf("csv: marshal: %w", err)
	}
	return buf.Bytes(), nil
}
