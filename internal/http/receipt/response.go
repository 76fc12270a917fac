package receipt

import (
	"time"

	"github.com/google/uuid"

	"github.com/cwehmeyer/belegwerk/internal/receipt"
)

type receiptResponse struct {
	ID          uuid.UUID `json:"id"`
	CustomerID  uuid.UUID `json:"customer_id"`
	FilePath    string    `json:"file_path"`
	Date        *string   `json:"date,omitempty"`
	Supplier    *string   `json:"supplier,omitempty"`
	NetAmount   *string   `json:"net_amount,omitempty"`
	TaxAmount   *string   `json:"tax_amount,omitempty"`
	GrossAmount *string   `json:"gross_amount,omitempty"`
	VATRate     *int      `json:"vat_rate,omitempty"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

func toResponse(rec *receipt.Record) receiptResponse {
	resp := receiptResponse{
		ID:         rec.ID,
		CustomerID: rec.CustomerID,
		FilePath:   rec.FilePath,
		Supplier:   rec.Supplier,
		VATRate:    rec.VATRate,
		UploadedAt: rec.UploadedAt,
	}

	if rec.Date != nil {
		d := rec.Date.Format(time.DateOnly)
		resp.Date = &d
	}

	if rec.NetAmount != nil {
		s := rec.NetAmount.StringFixed(2)
		resp.NetAmount = &s
	}

	if rec.TaxAmount != nil {
		s := rec.TaxAmount.StringFixed(2)
		resp.TaxAmount = &s
	}

	if rec.GrossAmount != nil {
		s := rec.GrossAmount.StringFixed(2)
		resp.GrossAmount = &s
	}

	return resp
}

func toResponseList(records []*receipt.Record) []receiptResponse {
	resp := make([]receiptResponse, len(records))
	for i, rec := range records {
		resp[i] = toResponse(rec)
	}

	return resp
}
