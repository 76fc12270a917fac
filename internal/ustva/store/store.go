package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/cwehmeyer/belegwerk/internal/ustva"
)

const uniqueViolation = "23505"

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectSummaryColumns = `
	u.id, u.customer_id, u.period, u.net_sum, u.tax_sum, u.gross_sum, u.generated_at
`

func scanSummary(s scanner) (*ustva.Summary, error) {
	var sum ustva.Summary

	if err := s.Scan(
		&sum.ID, &sum.CustomerID, &sum.Period,
		&sum.NetSum, &sum.TaxSum, &sum.GrossSum,
		&sum.GeneratedAt,
	); err != nil {
		return nil, err
	}

	sum.Derive()

	return &sum, nil
}

// CreateSummary inserts a summary. The unique (customer_id, period) index
// serializes concurrent aggregations for the same key; the loser gets
// ustva.ErrExists.
func (s *Store) CreateSummary(ctx context.Context, summary *ustva.Summary) error {
	query := `
		INSERT INTO ustva_summaries (customer_id, period, net_sum, tax_sum, gross_sum, generated_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, generated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		summary.CustomerID,
		summary.Period,
		summary.NetSum,
		summary.TaxSum,
		summary.GrossSum,
	).Scan(&summary.ID, &summary.GeneratedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ustva.ErrExists
		}

		return fmt.Errorf("creating summary: %w", err)
	}

	return nil
}

func (s *Store) FindSummary(ctx context.Context, customerID uuid.UUID, period string) (*ustva.Summary, error) {
	query := `SELECT ` + selectSummaryColumns + `
		FROM ustva_summaries u
		WHERE u.customer_id = $1 AND u.period = $2`

	sum, err := scanSummary(s.db.QueryRowContext(ctx, query, customerID, period))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ustva.ErrNotFound
		}

		return nil, fmt.Errorf("finding summary: %w", err)
	}

	return sum, nil
}

func (s *Store) ListSummaries(ctx context.Context, customerID uuid.UUID) ([]*ustva.Summary, error) {
	query := `SELECT ` + selectSummaryColumns + `
		FROM ustva_summaries u
		WHERE u.customer_id = $1
		ORDER BY u.period`

	rows, err := s.db.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("listing summaries: %w", err)
	}
	defer rows.Close()

	var summaries []*ustva.Summary

	for rows.Next() {
		sum, err := scanSummary(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning summary: %w", err)
		}

		summaries = append(summaries, sum)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating summaries: %w", err)
	}

	return summaries, nil
}
