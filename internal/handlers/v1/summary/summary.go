// Package summary exposes the dashboard aggregates endpoint.
package summary

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/identity"
	"github.com/carson-networks/ledger-server/internal/service"
)

// CategorySummary is the API model for one category's expense total.
type CategorySummary struct {
	Name  *string `json:"name" doc:"Category name, null for uncategorized spending"`
	Total int64   `json:"total" doc:"Absolute expense total in milliunits"`
}

// SummaryResponseBody is the response body for the summary endpoint.
type SummaryResponseBody struct {
	Income           int64             `json:"income" doc:"Income total in milliunits"`
	IncomeDisplay    string            `json:"incomeDisplay" doc:"Income formatted as a decimal amount"`
	Expenses         int64             `json:"expenses" doc:"Expense total in milliunits, negative or zero"`
	ExpensesDisplay  string            `json:"expensesDisplay" doc:"Expenses formatted as a decimal amount"`
	Remaining        int64             `json:"remaining" doc:"Income plus expenses in milliunits"`
	RemainingDisplay string            `json:"remainingDisplay" doc:"Remaining formatted as a decimal amount"`
	Categories       []CategorySummary `json:"categories" doc:"Per-category expense breakdown, largest spend first"`
}

// GetSummaryInput is the Huma input for the summary endpoint.
type GetSummaryInput struct {
	From      string `query:"from" doc:"Inclusive lower date bound, YYYY-MM-DD; defaults to 30 days before the upper bound"`
	To        string `query:"to" doc:"Inclusive upper date bound, YYYY-MM-DD; defaults to today"`
	AccountID string `query:"accountId" doc:"Restrict to one account; must belong to the caller"`
}

// GetSummaryOutput is the Huma output for the summary endpoint.
type GetSummaryOutput struct {
	Body SummaryResponseBody
}

// summaryGetter is the interface for computing summaries.
type summaryGetter interface {
	GetSummary(ctx context.Context, userID string, params service.ListParams) (*service.Summary, error)
}

// GetSummaryHandler handles GET /v1/summary.
type GetSummaryHandler struct {
	SummaryService summaryGetter
}

// NewGetSummaryHandler creates a new GetSummaryHandler.
func NewGetSummaryHandler(svc summaryGetter) *GetSummaryHandler {
	return &GetSummaryHandler{SummaryService: svc}
}

// Register registers the summary endpoint with the Huma API.
func (h *GetSummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-summary",
		Method:      http.MethodGet,
		Path:        "/v1/summary",
		Summary:     "Get summary",
		Description: "Returns period totals and the per-category expense breakdown for the caller's activity.",
		Tags:        []string{"Summary"},
	}, h.handle)
}

func (h *GetSummaryHandler) handle(ctx context.Context, input *GetSummaryInput) (*GetSummaryOutput, error) {
	userID, ok := identity.FromContext(ctx)
	if !ok {
		return nil, huma.NewError(http.StatusUnauthorized, "no authenticated identity")
	}

	result, err := h.SummaryService.GetSummary(ctx, userID, service.ListParams{
		AccountID: input.AccountID,
		From:      input.From,
		To:        input.To,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return nil, huma.NewError(http.StatusNotFound, "account not found")
		case errors.Is(err, service.ErrInvalidArgument):
			return nil, huma.NewError(http.StatusBadRequest, err.Error())
		default:
			return nil, huma.NewError(http.StatusInternalServerError, "failed to compute summary", err)
		}
	}

	resp := SummaryResponseBody{
		Income:           int64(result.Income),
		IncomeDisplay:    result.Income.String(),
		Expenses:         int64(result.Expenses),
		ExpensesDisplay:  result.Expenses.String(),
		Remaining:        int64(result.Remaining),
		RemainingDisplay: result.Remaining.String(),
		Categories:       make([]CategorySummary, len(result.Categories)),
	}
	for i, category := range result.Categories {
		resp.Categories[i] = CategorySummary{Name: category.Name, Total: int64(category.Total)}
	}

	return &GetSummaryOutput{Body: resp}, nil
}
