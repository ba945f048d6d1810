package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
)

// ListTransactionsInput is the Huma input for listing transactions.
type ListTransactionsInput struct {
	From      string `query:"from" doc:"Inclusive lower date bound, YYYY-MM-DD; defaults to 30 days before the upper bound"`
	To        string `query:"to" doc:"Inclusive upper date bound, YYYY-MM-DD; defaults to today"`
	AccountID string `query:"accountId" doc:"Restrict to one account"`
}

// ListTransactionsResponseBody is the response body for listing transactions.
type ListTransactionsResponseBody struct {
	Transactions []TransactionView `json:"transactions" doc:"Transactions in the window, newest date first"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	ListTransactions(ctx context.Context, userID string, params service.ListParams) ([]service.TransactionView, error)
}

// ListTransactionsHandler handles GET /v1/transaction.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/transaction",
		Summary:     "List transactions",
		Description: "Returns the caller's transactions inside the date window, joined with account and category names.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	userID, err := authenticatedUser(ctx)
	if err != nil {
		return nil, err
	}

	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTransactionsMs")
	}
	views, err := h.TransactionService.ListTransactions(ctx, userID, service.ListParams{
		AccountID: input.AccountID,
		From:      input.From,
		To:        input.To,
	})
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, mapServiceError(err, "list transactions")
	}

	if logData != nil {
		logData.AddData("transactionCount", len(views))
	}

	resp := ListTransactionsResponseBody{
		Transactions: make([]TransactionView, len(views)),
	}
	for i := range views {
		resp.Transactions[i] = viewFromService(&views[i])
	}

	return &ListTransactionsOutput{Body: resp}, nil
}
