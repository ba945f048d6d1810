package storage

import (
	"database/sql"

	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

// Writer bundles the per-entity writers bound to one database transaction.
type Writer struct {
	tx          *sql.Tx
	Transaction *transaction.Writer
}

func NewWriter(tx *sql.Tx) Writer {
	return Writer{
		tx:          tx,
		Transaction: transaction.NewWriter(tx),
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit()
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback()
}
