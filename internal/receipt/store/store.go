package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cwehmeyer/belegwerk/internal/receipt"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectReceiptColumns = `
	r.id, r.customer_id, r.file_path, r.date,
	r.net_amount, r.tax_amount, r.gross_amount, r.vat_rate, r.supplier,
	r.uploaded_at
`

// scanReceipt reads a receipt row in selectReceiptColumns order.
func scanReceipt(s scanner) (*receipt.Record, error) {
	var rec receipt.Record

	var (
		date     sql.NullTime
		net      decimal.NullDecimal
		tax      decimal.NullDecimal
		gross    decimal.NullDecimal
		vatRate  sql.NullInt64
		supplier sql.NullString
	)

	if err := s.Scan(
		&rec.ID, &rec.CustomerID, &rec.FilePath, &date,
		&net, &tax, &gross, &vatRate, &supplier,
		&rec.UploadedAt,
	); err != nil {
		return nil, err
	}

	if date.Valid {
		rec.Date = &date.Time
	}

	if net.Valid {
		rec.NetAmount = &net.Decimal
	}

	if tax.Valid {
		rec.TaxAmount = &tax.Decimal
	}

	if gross.Valid {
		rec.GrossAmount = &gross.Decimal
	}

	if vatRate.Valid {
		rate := int(vatRate.Int64)
		rec.VATRate = &rate
	}

	if supplier.Valid {
		rec.Supplier = &supplier.String
	}

	return &rec, nil
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}

	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

func (s *Store) CreateReceipt(ctx context.Context, rec *receipt.Record) error {
	query := `
		INSERT INTO receipts (customer_id, file_path, date, net_amount, tax_amount, gross_amount, vat_rate, supplier, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id, uploaded_at
	`

	var (
		date    sql.NullTime
		vatRate sql.NullInt64
	)

	if rec.Date != nil {
		date = sql.NullTime{Time: *rec.Date, Valid: true}
	}

	if rec.VATRate != nil {
		vatRate = sql.NullInt64{Int64: int64(*rec.VATRate), Valid: true}
	}

	var supplier sql.NullString
	if rec.Supplier != nil {
		supplier = sql.NullString{String: *rec.Supplier, Valid: true}
	}

	err := s.db.QueryRowContext(ctx, query,
		rec.CustomerID,
		rec.FilePath,
		date,
		nullDecimal(rec.NetAmount),
		nullDecimal(rec.TaxAmount),
		nullDecimal(rec.GrossAmount),
		vatRate,
		supplier,
	).Scan(&rec.ID, &rec.UploadedAt)
	if err != nil {
		return fmt.Errorf("creating receipt: %w", err)
	}

	return nil
}

func (s *Store) GetReceipt(ctx context.Context, id uuid.UUID) (*receipt.Record, error) {
	query := `SELECT ` + selectReceiptColumns + ` FROM receipts r WHERE r.id = $1`

	rec, err := scanReceipt(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, receipt.ErrNotFound
		}

		return nil, fmt.Errorf("getting receipt: %w", err)
	}

	return rec, nil
}

func (s *Store) ListReceipts(ctx context.Context, filter receipt.ListFilter) ([]*receipt.Record, error) {
	query := `SELECT ` + selectReceiptColumns + ` FROM receipts r WHERE 1=1`

	var args []any

	argIdx := 1

	if filter.CustomerID != nil {
		query += fmt.Sprintf(" AND r.customer_id = $%d", argIdx)
		args = append(args, *filter.CustomerID)
		argIdx++
	}

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND r.date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND r.date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	query += " ORDER BY r.uploaded_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing receipts: %w", err)
	}
	defer rows.Close()

	var records []*receipt.Record

	for rows.Next() {
		rec, err := scanReceipt(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning receipt: %w", err)
		}

		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating receipts: %w", err)
	}

	return records, nil
}
