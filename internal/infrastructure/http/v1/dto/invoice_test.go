package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoicer/internal/core/apperror"
	"invoicer/internal/core/types"
	"invoicer/internal/domain/invoice"
)

func strPtr(s string) *string { return &s }

func TestParseDate_KeepsWrittenDay(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "2024-03-01", want: "2024-03-01"},
		{in: "2024-03-01T00:30:00+02:00", want: "2024-03-01"},
		{in: "2024-03-31T23:30:00-05:00", want: "2024-03-31"},
		{in: "2024-03-01T12:00:00Z", want: "2024-03-01"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDate("date", strPtr(tt.in))
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.Format(invoice.DateLayout))
		})
	}
}

func TestParseDate_BlankAndInvalid(t *testing.T) {
	got, err := ParseDate("date", nil)
	assert.NoError(t, err)
	assert.Nil(t, got)

	got, err = ParseDate("date", strPtr("  "))
	assert.NoError(t, err)
	assert.Nil(t, got)

	_, err = ParseDate("due_date", strPtr("01/02/2024"))
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "due_date", appErr.Details["field"])
}

func TestCreateInvoiceRequest_ToDomain(t *testing.T) {
	var req CreateInvoiceRequest
	body := `{"invoice_number":"INV-1","date":"2024-03-01T00:30:00+02:00","due_date":"2024-03-31","amount":"12.5"}`
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	got, err := req.ToDomain()
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", got.Date.Format(invoice.DateLayout))
	assert.Equal(t, "2024-03-31", got.DueDate.Format(invoice.DateLayout))
	require.NotNil(t, got.Amount)
	assert.Equal(t, "12.50", types.FormatMoney(*got.Amount))
}

func TestAmount_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{name: "number", body: `{"amount":100}`, want: "100.00"},
		{name: "fraction", body: `{"amount":10.005}`, want: "10.01"},
		{name: "string", body: `{"amount":"5.00"}`, want: "5.00"},
		{name: "exponent", body: `{"amount":1e3}`, wantErr: true},
		{name: "exponent string", body: `{"amount":"1E3"}`, wantErr: true},
		{name: "negative", body: `{"amount":-1}`, wantErr: true},
		{name: "word", body: `{"amount":"ten"}`, wantErr: true},
		{name: "bool", body: `{"amount":true}`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req CreateInvoiceRequest
			err := json.Unmarshal([]byte(tt.body), &req)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, req.Amount.Value())
			assert.Equal(t, tt.want, types.FormatMoney(*req.Amount.Value()))
		})
	}
}

func TestAmount_AbsentOrNull(t *testing.T) {
	for _, body := range []string{`{}`, `{"amount":null}`} {
		var req UpdateInvoiceRequest
		require.NoError(t, json.Unmarshal([]byte(body), &req))
		assert.Nil(t, req.Amount.Value(), body)
	}
}
