// Package account provides read access to the accounts table. Account
// lifecycle is managed elsewhere; the ledger only resolves names and
// ownership.
package account

import (
	"context"
	"database/sql"
)

const (
	listQuery = `SELECT id, name FROM accounts WHERE user_id = $1 ORDER BY name ASC`

	ownsQuery = `SELECT EXISTS (SELECT 1 FROM accounts WHERE id = $1 AND user_id = $2)`
)

// Account is an account record as the ledger sees it.
type Account struct {
	ID   string
	Name string
}

// IAccountReader defines the account read operations the service layer uses.
type IAccountReader interface {
	ListForUser(ctx context.Context, userID string) ([]*Account, error)
	Owns(ctx context.Context, userID, accountID string) (bool, error)
}

var _ IAccountReader = (*Reader)(nil)

type Reader struct {
	db *sql.DB
}

func NewReader(db *sql.DB) *Reader {
	return &Reader{db: db}
}

// ListForUser returns the user's accounts ordered by name.
func (r *Reader) ListForUser(ctx context.Context, userID string) ([]*Account, error) {
	rows, err := r.db.QueryContext(ctx, listQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*Account
	for rows.Next() {
		var acc Account
		if err := rows.Scan(&acc.ID, &acc.Name); err != nil {
			return nil, err
		}
		result = append(result, &acc)
	}
	return result, rows.Err()
}

// Owns reports whether the account exists and belongs to the user. This is
// the standalone form of the ownership predicate; the transaction mutations
// embed the equivalent EXISTS probe in their own statements instead of
// calling this first.
func (r *Reader) Owns(ctx context.Context, userID, accountID string) (bool, error) {
	var owns bool
	err := r.db.QueryRowContext(ctx, ownsQuery, accountID, userID).Scan(&owns)
	if err != nil {
		return false, err
	}
	return owns, nil
}
