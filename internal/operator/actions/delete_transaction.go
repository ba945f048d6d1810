package actions

import (
	"context"

	"github.com/carson-networks/ledger-server/internal/service"
	"github.com/carson-networks/ledger-server/internal/storage"
)

// DeleteTransaction removes one transaction under the combined
// existence+ownership predicate. Deletion is physical; a second delete of the
// same id reports service.ErrNotFound.
type DeleteTransaction struct {
	UserID string
	ID     string

	// DeletedID is set on success.
	DeletedID string
}

func (a *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	deletedID, err := writer.Transaction.Delete(ctx, a.UserID, a.ID)
	if err != nil {
		return err
	}
	if deletedID == "" {
		return service.ErrNotFound
	}

	a.DeletedID = deletedID
	return nil
}
