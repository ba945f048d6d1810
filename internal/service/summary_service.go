package service

import (
	"context"
	"fmt"
	"time"

	"github.com/carson-networks/ledger-server/internal/daterange"
	"github.com/carson-networks/ledger-server/internal/money"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

// Summary aggregates the user's activity inside the resolved window.
type Summary struct {
	Income     money.Milliunits
	Expenses   money.Milliunits
	Remaining  money.Milliunits
	Categories []CategorySummary
}

// CategorySummary is the absolute expense total for one category; a nil name
// is the uncategorized bucket.
type CategorySummary struct {
	Name  *string
	Total money.Milliunits
}

// SummaryService computes dashboard aggregates.
type SummaryService struct {
	storage *storage.Storage
	now     func() time.Time
}

func NewSummaryService(store *storage.Storage) *SummaryService {
	return &SummaryService{storage: store, now: time.Now}
}

// GetSummary returns period totals and the per-category expense breakdown.
// When an account filter is supplied it must belong to the caller; a foreign
// or unknown account id yields ErrNotFound.
func (s *SummaryService) GetSummary(ctx context.Context, userID string, params ListParams) (*Summary, error) {
	if params.AccountID != "" {
		owns, err := s.storage.Accounts.Owns(ctx, userID, params.AccountID)
		if err != nil {
			return nil, err
		}
		if !owns {
			return nil, ErrNotFound
		}
	}

	start, end, err := daterange.Resolve(params.From, params.To, s.now())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	filter := &transaction.ListFilter{
		UserID:    userID,
		AccountID: params.AccountID,
		StartDate: start,
		EndDate:   end,
	}

	totals, err := s.storage.Transactions.Totals(ctx, filter)
	if err != nil {
		return nil, err
	}

	byCategory, err := s.storage.Transactions.ExpensesByCategory(ctx, filter)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		Income:     totals.Income,
		Expenses:   totals.Expenses,
		Remaining:  totals.Income + totals.Expenses,
		Categories: make([]CategorySummary, len(byCategory)),
	}
	for i, ct := range byCategory {
		summary.Categories[i] = CategorySummary{Name: ct.Name, Total: ct.Total}
	}
	return summary, nil
}
