// Package category provides read access to the categories table for display
// joins and pickers. Category lifecycle and ownership enforcement on writes
// live outside the ledger.
package category

import (
	"context"
	"database/sql"
)

const listQuery = `SELECT id, name FROM categories WHERE user_id = $1 ORDER BY name ASC`

type Category struct {
	ID   string
	Name string
}

type ICategoryReader interface {
	ListForUser(ctx context.Context, userID string) ([]*Category, error)
}

var _ ICategoryReader = (*Reader)(nil)

type Reader struct {
	db *sql.DB
}

func NewReader(db *sql.DB) *Reader {
	return &Reader{db: db}
}

func (r *Reader) ListForUser(ctx context.Context, userID string) ([]*Category, error) {
	rows, err := r.db.QueryContext(ctx, listQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*Category
	for rows.Next() {
		var cat Category
		if err := rows.Scan(&cat.ID, &cat.Name); err != nil {
			return nil, err
		}
		result = append(result, &cat)
	}
	return result, rows.Err()
}
