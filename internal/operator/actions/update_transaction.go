package actions

import (
	"context"

	"github.com/carson-networks/ledger-server/internal/service"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

// UpdateTransaction replaces the full editable field set of one transaction.
// The existence and ownership check happens inside the update statement
// itself; a predicate miss surfaces as service.ErrNotFound and rolls back.
type UpdateTransaction struct {
	UserID string
	ID     string
	Fields transaction.Fields

	// Updated is set on success.
	Updated *transaction.Row
}

func (a *UpdateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Transaction.Update(ctx, a.UserID, a.ID, &a.Fields)
	if err != nil {
		return err
	}
	if row == nil {
		return service.ErrNotFound
	}

	a.Updated = row
	return nil
}
