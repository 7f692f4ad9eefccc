package dto

import (
	"time"

	"github.com/samber/lo"

	"invoicer/internal/core/id"
	"invoicer/internal/core/types"
	"invoicer/internal/domain/invoice"
)

// NextNumberResponse is returned by GET /invoices/next-number.
type NextNumberResponse struct {
	NextNumber string `json:"nextNumber"`
}

// InvoiceResponse is the wire form of an invoice.
type InvoiceResponse struct {
	ID            id.ID          `json:"id"`
	OwnerID       id.ID          `json:"user_id"`
	InvoiceNumber string         `json:"invoice_number"`
	Date          string         `json:"date"`
	DueDate       *string        `json:"due_date"`
	ClientName    string         `json:"client_name"`
	Amount        string         `json:"amount"`
	Description   string         `json:"description"`
	Status        invoice.Status `json:"status"`
	StatusLabel   string         `json:"status_label"`
	CreatedAt     time.Time      `json:"created_at"`
}

// FromInvoice converts a domain invoice.
func FromInvoice(inv *invoice.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:            inv.ID,
		OwnerID:       inv.OwnerID,
		InvoiceNumber: inv.InvoiceNumber,
		Date:          inv.Date.Format(invoice.DateLayout),
		DueDate:       formatDate(inv.DueDate),
		ClientName:    inv.ClientName,
		Amount:        types.FormatMoney(inv.Amount),
		Description:   inv.Description,
		Status:        inv.Status,
		StatusLabel:   inv.Status.Label(),
		CreatedAt:     inv.CreatedAt,
	}
}

// FromInvoices converts a list, never returning nil.
func FromInvoices(items []*invoice.Invoice) []InvoiceResponse {
	if len(items) == 0 {
		return []InvoiceResponse{}
	}
	return lo.Map(items, func(inv *invoice.Invoice, _ int) InvoiceResponse {
		return FromInvoice(inv)
	})
}

// CreateInvoiceRequest for POST /invoices.
type CreateInvoiceRequest struct {
	InvoiceNumber string           `json:"invoice_number"`
	Date          *string          `json:"date"`
	DueDate       *string          `json:"due_date"`
	ClientName    string           `json:"client_name"`
	Amount        *Amount          `json:"amount"`
	Description   string           `json:"description"`
	Status        string           `json:"status"`
}

// ToDomain converts to the domain request.
func (r CreateInvoiceRequest) ToDomain() (invoice.CreateRequest, error) {
	date, err := ParseDate("date", r.Date)
	if err != nil {
		return invoice.CreateRequest{}, err
	}
	due, err := ParseDate("due_date", r.DueDate)
	if err != nil {
		return invoice.CreateRequest{}, err
	}
	return invoice.CreateRequest{
		InvoiceNumber: r.InvoiceNumber,
		Date:          date,
		DueDate:       due,
		ClientName:    r.ClientName,
		Amount:        r.Amount.Value(),
		Description:   r.Description,
		Status:        r.Status,
	}, nil
}

// UpdateInvoiceRequest for PUT /invoices/:id.
type UpdateInvoiceRequest struct {
	InvoiceNumber string           `json:"invoice_number"`
	Date          *string          `json:"date"`
	DueDate       *string          `json:"due_date"`
	ClientName    *string          `json:"client_name"`
	Amount        *Amount          `json:"amount"`
	Description   string           `json:"description"`
	Status        string           `json:"status"`
}

// ToDomain converts to the domain request.
func (r UpdateInvoiceRequest) ToDomain() (invoice.UpdateRequest, error) {
	date, err := ParseDate("date", r.Date)
	if err != nil {
		return invoice.UpdateRequest{}, err
	}
	due, err := ParseDate("due_date", r.DueDate)
	if err != nil {
		return invoice.UpdateRequest{}, err
	}
	return invoice.UpdateRequest{
		InvoiceNumber: r.InvoiceNumber,
		Date:          date,
		DueDate:       due,
		ClientName:    r.ClientName,
		Amount:        r.Amount.Value(),
		Description:   r.Description,
		Status:        r.Status,
	}, nil
}

// InvoiceListQuery holds the optional list filters.
type InvoiceListQuery struct {
	Status string `form:"status"`
	From   string `form:"from"`
	To     string `form:"to"`
	Client string `form:"client"`
}

// ToFilter converts to the domain filter.
func (q InvoiceListQuery) ToFilter() (invoice.ListFilter, error) {
	var f invoice.ListFilter
	if q.Status != "" {
		s, err := invoice.ParseStatus(q.Status)
		if err != nil {
			return f, err
		}
		f.Status = &s
	}
	var err error
	if f.DateFrom, err = ParseDate("from", &q.From); err != nil {
		return f, err
	}
	if f.DateTo, err = ParseDate("to", &q.To); err != nil {
		return f, err
	}
	f.Client = q.Client
	return f, nil
}
