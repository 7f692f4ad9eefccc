package invoice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoicer/internal/core/apperror"
)

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus("")
	require.NoError(t, err)
	assert.Equal(t, StatusDraft, s)

	s, err = ParseStatus(" Paid ")
	require.NoError(t, err)
	assert.Equal(t, StatusPaid, s)

	_, err = ParseStatus("archived")
	assert.True(t, apperror.IsValidation(err))
}

func TestStatus_Label(t *testing.T) {
	assert.Equal(t, "Overdue", StatusOverdue.Label())
	assert.Equal(t, "Cancelled", StatusCancelled.Label())
	assert.Len(t, Statuses, 5)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("PDF")
	require.NoError(t, err)
	assert.Equal(t, FormatPDF, f)

	_, err = ParseFormat("docx")
	assert.True(t, apperror.IsValidation(err))
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "invoice-42.pdf", Filename("42", FormatPDF))
	assert.Equal(t, "invoice-INV_2024_7.csv", Filename(`INV/2024"7`, FormatCSV))
	assert.Equal(t, "invoice-unnumbered.csv", Filename("  ", FormatCSV))
}
