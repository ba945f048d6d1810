package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

// BulkCreateTransactions inserts a batch of transactions, each under its own
// generated id. The inserts share one storage transaction, so either the
// whole batch persists or none of it does.
type BulkCreateTransactions struct {
	UserID string
	Items  []transaction.Fields

	// Created is set on success, in input order.
	Created []*transaction.Row
}

func (a *BulkCreateTransactions) Perform(ctx context.Context, writer *storage.Writer) error {
	created := make([]*transaction.Row, 0, len(a.Items))
	for i := range a.Items {
		id := uuid.Must(uuid.NewV4()).String()

		row, err := writer.Transaction.Insert(ctx, id, &a.Items[i])
		if err != nil {
			return err
		}
		created = append(created, row)
	}

	a.Created = created
	return nil
}
