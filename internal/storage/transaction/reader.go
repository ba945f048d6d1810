package transaction

import (
	"context"
	"database/sql"
	"errors"
)

// Ownership is enforced inside every statement: transactions carry no owner
// column, so each query joins (or probes) accounts and matches its user_id.
// The empty-string account filter form keeps each operation a single
// statement regardless of whether the caller narrowed to one account.
const (
	viewColumns = `t.id, t.account_id, t.category_id, t.date, t.amount, t.payee, t.notes, a.name, c.name`

	listQuery = `SELECT ` + viewColumns + `
FROM transactions t
JOIN accounts a ON a.id = t.account_id
LEFT JOIN categories c ON c.id = t.category_id
WHERE a.user_id = $1
  AND t.date >= $2 AND t.date <= $3
  AND ($4::text = '' OR t.account_id = $4)
ORDER BY t.date DESC`

	findByIDQuery = `SELECT ` + viewColumns + `
FROM transactions t
JOIN accounts a ON a.id = t.account_id
LEFT JOIN categories c ON c.id = t.category_id
WHERE t.id = $1 AND a.user_id = $2`

	totalsQuery = `SELECT
  COALESCE(SUM(CASE WHEN t.amount >= 0 THEN t.amount ELSE 0 END), 0),
  COALESCE(SUM(CASE WHEN t.amount < 0 THEN t.amount ELSE 0 END), 0)
FROM transactions t
JOIN accounts a ON a.id = t.account_id
WHERE a.user_id = $1
  AND t.date >= $2 AND t.date <= $3
  AND ($4::text = '' OR t.account_id = $4)`

	expensesByCategoryQuery = `SELECT c.name, SUM(ABS(t.amount))
FROM transactions t
JOIN accounts a ON a.id = t.account_id
LEFT JOIN categories c ON c.id = t.category_id
WHERE a.user_id = $1
  AND t.amount < 0
  AND t.date >= $2 AND t.date <= $3
  AND ($4::text = '' OR t.account_id = $4)
GROUP BY c.name
ORDER BY SUM(ABS(t.amount)) DESC`
)

var _ ITransactionReader = (*Reader)(nil)

type Reader struct {
	db *sql.DB
}

func NewReader(db *sql.DB) *Reader {
	return &Reader{db: db}
}

// List returns the user's transactions inside the filter window, newest date
// first. Rows on other users' accounts never appear.
func (r *Reader) List(ctx context.Context, filter *ListFilter) ([]*View, error) {
	rows, err := r.db.QueryContext(ctx, listQuery,
		filter.UserID, filter.StartDate, filter.EndDate, filter.AccountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*View
	for rows.Next() {
		view, err := scanView(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, view)
	}
	return result, rows.Err()
}

// FindByID returns the transaction when it exists on one of the user's
// accounts, and (nil, nil) otherwise. A missing row and a row owned by
// someone else are indistinguishable here on purpose.
func (r *Reader) FindByID(ctx context.Context, userID, id string) (*View, error) {
	view, err := scanView(r.db.QueryRowContext(ctx, findByIDQuery, id, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return view, nil
}

// Totals returns the signed income and expense sums for the filter window.
func (r *Reader) Totals(ctx context.Context, filter *ListFilter) (*Totals, error) {
	var totals Totals
	err := r.db.QueryRowContext(ctx, totalsQuery,
		filter.UserID, filter.StartDate, filter.EndDate, filter.AccountID).
		Scan(&totals.Income, &totals.Expenses)
	if err != nil {
		return nil, err
	}
	return &totals, nil
}

// ExpensesByCategory returns absolute expense totals grouped by category
// name, largest first. Uncategorized rows group under a nil name.
func (r *Reader) ExpensesByCategory(ctx context.Context, filter *ListFilter) ([]*CategoryTotal, error) {
	rows, err := r.db.QueryContext(ctx, expensesByCategoryQuery,
		filter.UserID, filter.StartDate, filter.EndDate, filter.AccountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*CategoryTotal
	for rows.Next() {
		var total CategoryTotal
		var name sql.NullString
		if err := rows.Scan(&name, &total.Total); err != nil {
			return nil, err
		}
		if name.Valid {
			total.Name = &name.String
		}
		result = append(result, &total)
	}
	return result, rows.Err()
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanView(s scanner) (*View, error) {
	var view View
	var categoryID, notes, categoryName sql.NullString
	err := s.Scan(
		&view.ID,
		&view.AccountID,
		&categoryID,
		&view.Date,
		&view.Amount,
		&view.Payee,
		&notes,
		&view.AccountName,
		&categoryName,
	)
	if err != nil {
		return nil, err
	}
	if categoryID.Valid {
		view.CategoryID = &categoryID.String
	}
	if notes.Valid {
		view.Notes = &notes.String
	}
	if categoryName.Valid {
		view.CategoryName = &categoryName.String
	}
	return &view, nil
}
