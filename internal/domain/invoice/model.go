// Package invoice provides invoice numbering, the invoice lifecycle and
// document export.
package invoice

import (
	"context"
	"strings"
	"time"

	"invoicer/internal/core/apperror"
	"invoicer/internal/core/id"
	"invoicer/internal/core/types"
)

// Status is the lifecycle state of an invoice.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusSent      Status = "sent"
	StatusPaid      Status = "paid"
	StatusOverdue   Status = "overdue"
	StatusCancelled Status = "cancelled"
)

// Statuses lists every valid status in display order.
var Statuses = []Status{StatusDraft, StatusSent, StatusPaid, StatusOverdue, StatusCancelled}

var statusLabels = map[Status]string{
	StatusDraft:     "Draft",
	StatusSent:      "Sent",
	StatusPaid:      "Paid",
	StatusOverdue:   "Overdue",
	StatusCancelled: "Cancelled",
}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// Label returns the human-readable status name.
func (s Status) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}

// ParseStatus normalizes and validates a status value.
// An empty value yields the default status (draft).
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	if s == "" {
		return StatusDraft, nil
	}
	if !s.Valid() {
		return "", apperror.NewValidation("invalid invoice status").
			WithDetail("field", "status").
			WithDetail("value", raw)
	}
	return s, nil
}

// DateLayout is the calendar-date format used on the wire and in exports.
const DateLayout = "2006-01-02"

// Invoice is a billing record owned by one account.
// ID, OwnerID and CreatedAt never change after creation.
type Invoice struct {
	ID            id.ID       `db:"id"`
	OwnerID       id.ID       `db:"owner_id"`
	InvoiceNumber string      `db:"invoice_number"`
	Date          time.Time   `db:"date"`
	DueDate       *time.Time  `db:"due_date"`
	ClientName    string      `db:"client_name"`
	Amount        types.Money `db:"amount"`
	Description   string      `db:"description"`
	Status        Status      `db:"status"`
	CreatedAt     time.Time   `db:"created_at"`
}

// Validate implements entity.Validatable.
func (inv *Invoice) Validate(ctx context.Context) error {
	if strings.TrimSpace(inv.InvoiceNumber) == "" {
		return apperror.NewRequiredField("invoice_number")
	}
	if inv.Date.IsZero() {
		return apperror.NewRequiredField("date")
	}
	if inv.Amount.IsNegative() {
		return apperror.NewValidation("amount must not be negative").WithDetail("field", "amount")
	}
	if inv.Status == "" {
		inv.Status = StatusDraft
	}
	if !inv.Status.Valid() {
		return apperror.NewValidation("invalid invoice status").WithDetail("field", "status")
	}
	return nil
}

// Document is an invoice joined with its owner's display fields.
// It is the input of every renderer.
type Document struct {
	Invoice
	OwnerName  string `db:"user_name"`
	OwnerEmail string `db:"user_email"`
}

// Changes is the set of fields an update replaces.
// InvoiceNumber, Date, Amount, Description and DueDate are always written
// (a nil DueDate clears it). Status and ClientName are written only when set.
type Changes struct {
	InvoiceNumber string
	Date          time.Time
	Amount        types.Money
	Description   string
	DueDate       *time.Time
	Status        *Status
	ClientName    *string
}

// CreateRequest carries the caller-supplied fields of a new invoice.
// Pointer fields distinguish "absent" from a zero value.
type CreateRequest struct {
	InvoiceNumber string
	Date          *time.Time
	DueDate       *time.Time
	ClientName    string
	Amount        *types.Money
	Description   string
	Status        string
}

// UpdateRequest carries the replacement fields of an existing invoice.
type UpdateRequest struct {
	InvoiceNumber string
	Date          *time.Time
	DueDate       *time.Time
	ClientName    *string
	Amount        *types.Money
	Description   string
	Status        string
}

// ListFilter narrows an owner's invoice list. The zero value lists everything.
type ListFilter struct {
	Status   *Status
	DateFrom *time.Time
	DateTo   *time.Time
	// Client matches client_name case-insensitively as a substring
	Client string
}
