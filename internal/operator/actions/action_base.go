package actions

import (
	"context"

	"github.com/carson-networks/ledger-server/internal/storage"
)

// IAction is a unit of write work. Perform runs inside one storage
// transaction; returning an error rolls the whole transaction back. Actions
// carry their results as struct fields the caller reads after processing.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
