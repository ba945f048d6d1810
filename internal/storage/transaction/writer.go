package transaction

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

// Mutations re-check ownership inside the statement that performs the write:
// the EXISTS probe and the row change are one atomic operation, so there is
// no window between "the account is mine" and "the row is gone/changed".
// Inserts skip the probe; they rely on the accounts foreign key alone.
const (
	insertQuery = `INSERT INTO transactions (id, account_id, category_id, date, amount, payee, notes)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, account_id, category_id, date, amount, payee, notes`

	updateQuery = `UPDATE transactions t
SET account_id = $1, category_id = $2, date = $3, amount = $4, payee = $5, notes = $6
WHERE t.id = $7
  AND EXISTS (SELECT 1 FROM accounts a WHERE a.id = t.account_id AND a.user_id = $8)
RETURNING t.id, t.account_id, t.category_id, t.date, t.amount, t.payee, t.notes`

	deleteQuery = `DELETE FROM transactions t
WHERE t.id = $1
  AND EXISTS (SELECT 1 FROM accounts a WHERE a.id = t.account_id AND a.user_id = $2)
RETURNING t.id`

	deleteBatchQuery = `DELETE FROM transactions t
WHERE t.id = ANY($1)
  AND EXISTS (SELECT 1 FROM accounts a WHERE a.id = t.account_id AND a.user_id = $2)
RETURNING t.id`
)

// Writer performs transaction mutations inside one database transaction.
type Writer struct {
	tx *sql.Tx
}

func NewWriter(tx *sql.Tx) *Writer {
	return &Writer{tx: tx}
}

// Insert stores a new transaction under the given id and returns the stored
// row. The target account is not checked against any user.
func (w *Writer) Insert(ctx context.Context, id string, fields *Fields) (*Row, error) {
	row := w.tx.QueryRowContext(ctx, insertQuery,
		id, fields.AccountID, fields.CategoryID, fields.Date, fields.Amount, fields.Payee, fields.Notes)
	return scanRow(row)
}

// Update replaces the full editable field set of the transaction, provided it
// exists and its current account belongs to userID. Returns (nil, nil) when
// the predicate matched nothing; no row is altered in that case.
func (w *Writer) Update(ctx context.Context, userID, id string, fields *Fields) (*Row, error) {
	row := w.tx.QueryRowContext(ctx, updateQuery,
		fields.AccountID, fields.CategoryID, fields.Date, fields.Amount, fields.Payee, fields.Notes,
		id, userID)
	updated, err := scanRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return updated, err
}

// Delete removes the transaction under the same combined existence+ownership
// predicate as Update. Returns the deleted id, or "" when nothing matched.
func (w *Writer) Delete(ctx context.Context, userID, id string) (string, error) {
	var deletedID string
	err := w.tx.QueryRowContext(ctx, deleteQuery, id, userID).Scan(&deletedID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return deletedID, nil
}

// DeleteBatch removes every requested id whose transaction sits on one of the
// user's accounts and reports exactly the ids it removed. Foreign or unknown
// ids are skipped silently, so the result may be a strict subset of ids.
func (w *Writer) DeleteBatch(ctx context.Context, userID string, ids []string) ([]string, error) {
	rows, err := w.tx.QueryContext(ctx, deleteBatchQuery, pq.Array(ids), userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var deleted []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		deleted = append(deleted, id)
	}
	return deleted, rows.Err()
}

func scanRow(s scanner) (*Row, error) {
	var row Row
	var categoryID, notes sql.NullString
	err := s.Scan(
		&row.ID,
		&row.AccountID,
		&categoryID,
		&row.Date,
		&row.Amount,
		&row.Payee,
		&notes,
	)
	if err != nil {
		return nil, err
	}
	if categoryID.Valid {
		row.CategoryID = &categoryID.String
	}
	if notes.Valid {
		row.Notes = &notes.String
	}
	return &row, nil
}
