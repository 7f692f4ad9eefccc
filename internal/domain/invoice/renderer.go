package invoice

import (
	"context"
	"regexp"
	"strings"

	"invoicer/internal/core/apperror"
)

// Format is an export format.
type Format string

const (
	FormatPDF Format = "pdf"
	FormatCSV Format = "csv"
)

// ParseFormat validates an export format name.
func ParseFormat(raw string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(raw))); f {
	case FormatPDF, FormatCSV:
		return f, nil
	default:
		return "", apperror.NewValidation("unsupported export format").WithDetail("format", raw)
	}
}

// Renderer turns one invoice document into bytes.
// Output must depend only on the document so repeated exports match.
type Renderer interface {
	Format() Format
	ContentType() string
	Render(ctx context.Context, doc *Document) ([]byte, error)
}

// RenderedDocument is an export ready to be sent as an attachment.
type RenderedDocument struct {
	Filename    string
	ContentType string
	Body        []byte
}

var unsafeFilenameRE = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// Filename returns invoice-<number>.<ext> with characters unsafe for a
// Content-Disposition header replaced.
func Filename(invoiceNumber string, f Format) string {
	num := unsafeFilenameRE.ReplaceAllString(strings.TrimSpace(invoiceNumber), "_")
	if num == "" {
		num = "unnumbered"
	}
	return "invoice-" + num + "." + string(f)
}
