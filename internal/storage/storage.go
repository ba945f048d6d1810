package storage

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"

	"github.com/carson-networks/ledger-server/internal/config"
	"github.com/carson-networks/ledger-server/internal/storage/account"
	"github.com/carson-networks/ledger-server/internal/storage/category"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

// Storage is the explicit store dependency handed to the service layer and
// the operator. Its lifecycle is owned by the process entry point.
type Storage struct {
	DB           *sql.DB
	Transactions transaction.ITransactionReader
	Accounts     account.IAccountReader
	Categories   category.ICategoryReader
}

func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.ConnectionString())
	if err != nil {
		return nil, err
	}

	return &Storage{
		DB:           db,
		Transactions: transaction.NewReader(db),
		Accounts:     account.NewReader(db),
		Categories:   category.NewReader(db),
	}, nil
}

// Write opens a database transaction and returns a Writer bound to it. The
// caller must Commit or Rollback.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	writer := NewWriter(tx)
	return &writer, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
