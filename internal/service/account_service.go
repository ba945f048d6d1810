package service

import (
	"context"

	"github.com/carson-networks/ledger-server/internal/storage"
)

// Account represents an account in the service layer.
type Account struct {
	ID   string
	Name string
}

// AccountService exposes the read-only account surface the ledger needs:
// clients resolve names and pickers from it, management happens elsewhere.
type AccountService struct {
	storage *storage.Storage
}

func NewAccountService(store *storage.Storage) *AccountService {
	return &AccountService{storage: store}
}

// ListAccounts returns the calling user's accounts.
func (s *AccountService) ListAccounts(ctx context.Context, userID string) ([]Account, error) {
	rows, err := s.storage.Accounts.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	converted := make([]Account, len(rows))
	for i, row := range rows {
		converted[i] = Account{ID: row.ID, Name: row.Name}
	}
	return converted, nil
}
