package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/operator/actions"
)

// DeleteTransactionInput is the Huma input for deleting a transaction.
type DeleteTransactionInput struct {
	ID string `path:"id" doc:"Transaction id"`
}

// DeleteTransactionResponseBody is the response body for deleting a transaction.
type DeleteTransactionResponseBody struct {
	ID string `json:"id" doc:"Id of the deleted transaction"`
}

// DeleteTransactionOutput is the Huma output for deleting a transaction.
type DeleteTransactionOutput struct {
	Body DeleteTransactionResponseBody
}

// DeleteTransactionHandler handles DELETE /v1/transaction/{id}.
type DeleteTransactionHandler struct {
	Operator actionProcessor
}

// NewDeleteTransactionHandler creates a new DeleteTransactionHandler.
func NewDeleteTransactionHandler(op actionProcessor) *DeleteTransactionHandler {
	return &DeleteTransactionHandler{Operator: op}
}

// Register registers the delete transaction endpoint with the Huma API.
func (h *DeleteTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-transaction",
		Method:      http.MethodDelete,
		Path:        "/v1/transaction/{id}",
		Summary:     "Delete transaction",
		Description: "Permanently removes one of the caller's transactions. Ids on other users' accounts read as not found.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *DeleteTransactionHandler) handle(ctx context.Context, input *DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	userID, err := authenticatedUser(ctx)
	if err != nil {
		return nil, err
	}

	action := &actions.DeleteTransaction{
		UserID: userID,
		ID:     input.ID,
	}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, mapServiceError(err, "delete transaction")
	}

	return &DeleteTransactionOutput{
		Body: DeleteTransactionResponseBody{ID: action.DeletedID},
	}, nil
}
