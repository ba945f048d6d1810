package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/operator/actions"
)

// BulkDeleteTransactionsBody is the request body for bulk deleting transactions.
type BulkDeleteTransactionsBody struct {
	IDs []string `json:"ids" required:"true" minItems:"1" doc:"Transaction ids to delete"`
}

// BulkDeleteTransactionsInput is the Huma input for bulk deleting transactions.
type BulkDeleteTransactionsInput struct {
	Body BulkDeleteTransactionsBody
}

// BulkDeleteTransactionsResponseBody is the response body for bulk deleting transactions.
type BulkDeleteTransactionsResponseBody struct {
	IDs []string `json:"ids" doc:"Ids actually deleted; ids that matched nothing are omitted"`
}

// BulkDeleteTransactionsOutput is the Huma output for bulk deleting transactions.
type BulkDeleteTransactionsOutput struct {
	Body BulkDeleteTransactionsResponseBody
}

// BulkDeleteTransactionsHandler handles POST /v1/transaction/bulk-delete.
type BulkDeleteTransactionsHandler struct {
	Operator actionProcessor
}

// NewBulkDeleteTransactionsHandler creates a new BulkDeleteTransactionsHandler.
func NewBulkDeleteTransactionsHandler(op actionProcessor) *BulkDeleteTransactionsHandler {
	return &BulkDeleteTransactionsHandler{Operator: op}
}

// Register registers the bulk delete endpoint with the Huma API.
func (h *BulkDeleteTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "bulk-delete-transactions",
		Method:      http.MethodPost,
		Path:        "/v1/transaction/bulk-delete",
		Summary:     "Bulk delete transactions",
		Description: "Deletes every listed transaction the caller owns and reports which ids were removed.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *BulkDeleteTransactionsHandler) handle(ctx context.Context, input *BulkDeleteTransactionsInput) (*BulkDeleteTransactionsOutput, error) {
	userID, err := authenticatedUser(ctx)
	if err != nil {
		return nil, err
	}

	action := &actions.BulkDeleteTransactions{
		UserID: userID,
		IDs:    input.Body.IDs,
	}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, mapServiceError(err, "bulk delete transactions")
	}

	deleted := action.DeletedIDs
	if deleted == nil {
		deleted = []string{}
	}

	return &BulkDeleteTransactionsOutput{
		Body: BulkDeleteTransactionsResponseBody{IDs: deleted},
	}, nil
}
