package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/cwehmeyer/belegwerk/internal/openitem"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanOpenItem(s scanner) (*openitem.OpenItem, error) {
	var item openitem.OpenItem

	if err := s.Scan(
		&item.ID, &item.CustomerID, &item.Description,
		&item.Amount, &item.DueDate, &item.Paid,
	); err != nil {
		return nil, err
	}

	return &item, nil
}

func (s *Store) CreateOpenItem(ctx context.Context, item *openitem.OpenItem) error {
	query := `
		INSERT INTO open_items (customer_id, description, amount, due_date, paid)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query,
		item.CustomerID,
		item.Description,
		item.Amount,
		item.DueDate,
		item.Paid,
	).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("creating open item: %w", err)
	}

	return nil
}

func (s *Store) ListOpenItems(ctx context.Context, filter openitem.ListFilter) ([]*openitem.OpenItem, error) {
	query := `SELECT id, customer_id, description, amount, due_date, paid FROM open_items WHERE 1=1`

	var args []any

	argIdx := 1

	if filter.CustomerID != nil {
		query += fmt.Sprintf(" AND customer_id = $%d", argIdx)
		args = append(args, *filter.CustomerID)
		argIdx++
	}

	if filter.Unpaid {
		query += " AND NOT paid"
	}

	if filter.DueBy != nil {
		query += fmt.Sprintf(" AND due_date <= $%d", argIdx)
		args = append(args, *filter.DueBy)
		argIdx++
	}

	query += " ORDER BY due_date"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing open items: %w", err)
	}
	defer rows.Close()

	var items []*openitem.OpenItem

	for rows.Next() {
		item, err := scanOpenItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning open item: %w", err)
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating open items: %w", err)
	}

	return items, nil
}

func (s *Store) MarkPaid(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `UPDATE open_items SET paid = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("marking open item paid: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return openitem.ErrNotFound
	}

	return nil
}
