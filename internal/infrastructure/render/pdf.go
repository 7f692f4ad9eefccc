package render

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"invoicer/internal/core/types"
	"invoicer/internal/domain/invoice"
)

// PDFOptions customizes the PDF layout.
type PDFOptions struct {
	// CurrencySymbol is printed before amounts (default "€")
	CurrencySymbol string
	// Footer is printed at the bottom of the page
	Footer string
	// QRSize is the QR code PNG size in pixels (default 256)
	QRSize int
}

// DefaultPDFOptions returns the standard layout.
func DefaultPDFOptions() PDFOptions {
	return PDFOptions{
		CurrencySymbol: "€",
		Footer:         "Thank you for your business!",
		QRSize:         256,
	}
}

// PDFRenderer draws a one-page A4 invoice with an embedded QR code.
type PDFRenderer struct {
	opts PDFOptions
}

var _ invoice.Renderer = (*PDFRenderer)(nil)

// NewPDF creates a PDF renderer.
func NewPDF(opts PDFOptions) *PDFRenderer {
	def := DefaultPDFOptions()
	if opts.CurrencySymbol == "" {
		opts.CurrencySymbol = def.CurrencySymbol
	}
	if opts.QRSize <= 0 {
		opts.QRSize = def.QRSize
	}
	return &PDFRenderer{opts: opts}
}

func (r *PDFRenderer) Format() invoice.Format { return invoice.FormatPDF }

func (r *PDFRenderer) ContentType() string { return "application/pdf" }

// QRPayload is the text encoded in the invoice QR code.
func QRPayload(doc *invoice.Document) string {
	return fmt.Sprintf("INVOICE|id:%d|no:%s|amt:%s|date:%s|client:%s",
		doc.ID,
		Sanitize(doc.InvoiceNumber),
		types.FormatMoney(doc.Amount),
		formatDate(&doc.Date),
		Sanitize(doc.ClientName),
	)
}

const (
	pageMargin = 20.0
	lineHeight = 6.0
	qrSizeMM   = 35.0
	rightColX  = 120.0
)

// Render implements invoice.Renderer.
func (r *PDFRenderer) Render(ctx context.Context, doc *invoice.Document) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("pdf: nil document")
	}

	qr, err := qrcode.Encode(QRPayload(doc), qrcode.Medium, r.opts.QRSize)
	if err != nil {
		return nil, fmt.Errorf("pdf: qr code: %w", err)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(false, pageMargin)
	pdf.SetCatalogSort(true)
	stamp := documentTime(doc)
	pdf.SetCreationDate(stamp)
	pdf.SetModificationDate(stamp)
	pdf.SetCreator("invoicer", false)

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	text := func(s string) string { return tr(latin1(s)) }
	money := func(m types.Money) string { return text(r.opts.CurrencySymbol + " " + types.FormatMoney(m)) }

	pdf.SetTitle(text("Invoice "+doc.InvoiceNumber), false)
	pdf.SetAuthor(text(doc.OwnerName), false)
	pdf.AddPage()
	pageW, pageH := pdf.GetPageSize()
	contentW := pageW - 2*pageMargin

	// Header
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(contentW, 10, "INVOICE", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(contentW, 8, text("Invoice number: "+doc.InvoiceNumber), "", 1, "C", false, 0, "")

	// Issuer (left) and invoice details (right)
	infoY := pdf.GetY() + 10
	pdf.SetXY(pageMargin, infoY)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Cell(80, lineHeight, "Issuer:")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(pageMargin, infoY+lineHeight)
	pdf.Cell(80, lineHeight, text(orNA(doc.OwnerName)))
	pdf.SetXY(pageMargin, infoY+2*lineHeight)
	pdf.Cell(80, lineHeight, text(orNA(doc.OwnerEmail)))

	pdf.SetXY(rightColX, infoY)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Cell(40, lineHeight, "Invoice details:")
	pdf.SetFont("Helvetica", "", 10)
	details := []string{
		"Date: " + formatDate(&doc.Date),
		"Due date: " + orNA(formatDate(doc.DueDate)),
		"Status: " + doc.Status.Label(),
	}
	for i, line := range details {
		pdf.SetXY(rightColX, infoY+float64(i+1)*lineHeight)
		pdf.Cell(40, lineHeight, text(line))
	}

	pdf.RegisterImageOptionsReader("qr", fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qr))
	pdf.ImageOptions("qr", pageW-pageMargin-qrSizeMM, infoY, qrSizeMM, qrSizeMM, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	// Client
	clientY := infoY + qrSizeMM + 8
	pdf.SetXY(pageMargin, clientY)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Cell(80, lineHeight, "Client:")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(pageMargin, clientY+lineHeight)
	pdf.Cell(80, lineHeight, text(orNA(doc.ClientName)))

	// Items table
	tableY := clientY + 3*lineHeight
	colDesc, colAmount, colTotal := pageMargin, 110.0, 150.0
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetXY(colDesc, tableY)
	pdf.Cell(85, lineHeight, "Description")
	pdf.SetXY(colAmount, tableY)
	pdf.Cell(35, lineHeight, "Amount")
	pdf.SetXY(colTotal, tableY)
	pdf.Cell(35, lineHeight, "Total")

	pdf.SetDrawColor(204, 204, 204)
	pdf.SetLineWidth(0.3)
	pdf.Line(pageMargin, tableY+lineHeight+1, pageW-pageMargin, tableY+lineHeight+1)

	description := doc.Description
	if description == "" {
		description = "Service"
	}
	rowY := tableY + lineHeight + 3
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(colAmount, rowY)
	pdf.Cell(35, lineHeight, money(doc.Amount))
	pdf.SetXY(colTotal, rowY)
	pdf.Cell(35, lineHeight, money(doc.Amount))
	pdf.SetXY(colDesc, rowY)
	pdf.MultiCell(85, lineHeight, text(description), "", "L", false)

	totalY := pdf.GetY() + 8
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetXY(colAmount, totalY)
	pdf.Cell(35, lineHeight, "TOTAL:")
	pdf.SetXY(colTotal, totalY)
	pdf.Cell(35, lineHeight, money(doc.Amount))

	if r.opts.Footer != "" {
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(153, 153, 153)
		pdf.SetXY(pageMargin, pageH-pageMargin-lineHeight)
		pdf.CellFormat(contentW, lineHeight, text(r.opts.Footer), "", 0, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: output: %w", err)
	}
	return buf.Bytes(), nil
}

// documentTime is the timestamp written into PDF metadata.
// It comes from the stored invoice so re-exports are byte identical.
func documentTime(doc *invoice.Document) time.Time {
	if !doc.CreatedAt.IsZero() {
		return doc.CreatedAt.UTC()
	}
	return doc.Date.UTC()
}

func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(invoice.DateLayout)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
