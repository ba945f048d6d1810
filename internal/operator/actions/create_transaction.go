package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

// CreateTransaction inserts one transaction under a freshly generated id.
// Unlike update/delete, the target account is not checked against UserID;
// an unknown account id fails on the foreign key instead.
type CreateTransaction struct {
	UserID string
	Fields transaction.Fields

	// Created is set on success.
	Created *transaction.Row
}

func (a *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	id := uuid.Must(uuid.NewV4()).String()

	row, err := writer.Transaction.Insert(ctx, id, &a.Fields)
	if err != nil {
		return err
	}

	a.Created = row
	return nil
}
