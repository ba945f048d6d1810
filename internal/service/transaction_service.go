package service

import (
	"context"
	"fmt"
	"time"

	"github.com/carson-networks/ledger-server/internal/daterange"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

// TransactionService handles the scoped transaction reads. Mutations go
// through the operator (see internal/operator/actions).
type TransactionService struct {
	storage *storage.Storage
	now     func() time.Time
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage) *TransactionService {
	return &TransactionService{storage: store, now: time.Now}
}

// ListTransactions returns the user's transactions matching the filters,
// newest date first. The window defaults to the trailing 30 days.
func (s *TransactionService) ListTransactions(ctx context.Context, userID string, params ListParams) ([]TransactionView, error) {
	start, end, err := daterange.Resolve(params.From, params.To, s.now())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	rows, err := s.storage.Transactions.List(ctx, &transaction.ListFilter{
		UserID:    userID,
		AccountID: params.AccountID,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		return nil, err
	}

	converted := make([]TransactionView, len(rows))
	for i, row := range rows {
		converted[i] = viewFromStorage(row)
	}
	return converted, nil
}

// GetTransaction retrieves one of the user's transactions by id. Ids that do
// not exist and ids on another user's accounts both come back as ErrNotFound.
func (s *TransactionService) GetTransaction(ctx context.Context, userID, id string) (*TransactionView, error) {
	row, err := s.storage.Transactions.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrNotFound
	}

	view := viewFromStorage(row)
	return &view, nil
}
