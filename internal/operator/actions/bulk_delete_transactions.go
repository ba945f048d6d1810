package actions

import (
	"context"

	"github.com/carson-networks/ledger-server/internal/storage"
)

// BulkDeleteTransactions removes every requested id the user actually owns
// and reports the ids it removed. Unlike the single delete, ids that match
// nothing are skipped rather than failing the batch, so DeletedIDs may be a
// strict subset of IDs (possibly empty).
type BulkDeleteTransactions struct {
	UserID string
	IDs    []string

	// DeletedIDs is set on success.
	DeletedIDs []string
}

func (a *BulkDeleteTransactions) Perform(ctx context.Context, writer *storage.Writer) error {
	deleted, err := writer.Transaction.DeleteBatch(ctx, a.UserID, a.IDs)
	if err != nil {
		return err
	}

	a.DeletedIDs = deleted
	return nil
}
