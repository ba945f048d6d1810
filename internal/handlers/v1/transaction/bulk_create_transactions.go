package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

// BulkCreateTransactionsBody is the request body for bulk creating transactions.
type BulkCreateTransactionsBody struct {
	Transactions []TransactionBody `json:"transactions" required:"true" minItems:"1" doc:"Transactions to insert as one batch"`
}

// BulkCreateTransactionsInput is the Huma input for bulk creating transactions.
type BulkCreateTransactionsInput struct {
	Body BulkCreateTransactionsBody
}

// BulkCreateTransactionsResponseBody is the response body for bulk creating transactions.
type BulkCreateTransactionsResponseBody struct {
	Transactions []Transaction `json:"transactions" doc:"Stored rows, in input order, each with its generated id"`
}

// BulkCreateTransactionsOutput is the Huma output for bulk creating transactions.
type BulkCreateTransactionsOutput struct {
	Status int
	Body   BulkCreateTransactionsResponseBody
}

// BulkCreateTransactionsHandler handles POST /v1/transaction/bulk-create.
type BulkCreateTransactionsHandler struct {
	Operator actionProcessor
}

// NewBulkCreateTransactionsHandler creates a new BulkCreateTransactionsHandler.
func NewBulkCreateTransactionsHandler(op actionProcessor) *BulkCreateTransactionsHandler {
	return &BulkCreateTransactionsHandler{Operator: op}
}

// Register registers the bulk create endpoint with the Huma API.
func (h *BulkCreateTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "bulk-create-transactions",
		Method:      http.MethodPost,
		Path:        "/v1/transaction/bulk-create",
		Summary:     "Bulk create transactions",
		Description: "Inserts a batch of transactions atomically; either every item persists or none do.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *BulkCreateTransactionsHandler) handle(ctx context.Context, input *BulkCreateTransactionsInput) (*BulkCreateTransactionsOutput, error) {
	userID, err := authenticatedUser(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]transaction.Fields, len(input.Body.Transactions))
	for i := range input.Body.Transactions {
		fields, err := parseTransactionBody(&input.Body.Transactions[i])
		if err != nil {
			return nil, err
		}
		items[i] = *fields
	}

	action := &actions.BulkCreateTransactions{
		UserID: userID,
		Items:  items,
	}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, mapServiceError(err, "bulk create transactions")
	}

	resp := BulkCreateTransactionsResponseBody{
		Transactions: make([]Transaction, len(action.Created)),
	}
	for i, row := range action.Created {
		resp.Transactions[i] = transactionFromRow(row)
	}

	return &BulkCreateTransactionsOutput{
		Status: http.StatusCreated,
		Body:   resp,
	}, nil
}
