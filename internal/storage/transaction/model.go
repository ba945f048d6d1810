package transaction

import (
	"context"
	"time"

	"github.com/carson-networks/ledger-server/internal/money"
)

// Fields is the complete editable field set of a transaction. Updates always
// carry the whole set; there are no partial patches.
type Fields struct {
	AccountID  string
	CategoryID *string
	Date       time.Time
	Amount     money.Milliunits
	Payee      string
	Notes      *string
}

// Row is a stored transaction.
type Row struct {
	ID string
	Fields
}

// View is a transaction enriched with the display names of its joined
// account and optional category. A nil CategoryName means the transaction is
// uncategorized, not that the lookup failed.
type View struct {
	Row
	AccountName  string
	CategoryName *string
}

// ListFilter scopes a list or aggregate query. UserID is mandatory: every
// query is implicitly restricted to accounts owned by that user. AccountID
// narrows to one account when non-empty. Date bounds are inclusive.
type ListFilter struct {
	UserID    string
	AccountID string
	StartDate time.Time
	EndDate   time.Time
}

// Totals are the signed period aggregates: income sums the non-negative
// amounts, expenses sums the negative ones (and is itself non-positive).
type Totals struct {
	Income   money.Milliunits
	Expenses money.Milliunits
}

// CategoryTotal is the absolute expense total attributed to one category.
// A nil Name groups the uncategorized rows.
type CategoryTotal struct {
	Name  *string
	Total money.Milliunits
}

// ITransactionReader defines the read operations over the transactions table.
// The service layer depends on this interface so tests can substitute mocks.
type ITransactionReader interface {
	List(ctx context.Context, filter *ListFilter) ([]*View, error)
	FindByID(ctx context.Context, userID, id string) (*View, error)
	Totals(ctx context.Context, filter *ListFilter) (*Totals, error)
	ExpensesByCategory(ctx context.Context, filter *ListFilter) ([]*CategoryTotal, error)
}
