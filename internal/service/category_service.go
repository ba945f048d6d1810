package service

import (
	"context"

	"github.com/carson-networks/ledger-server/internal/storage"
)

// Category represents a category in the service layer.
type Category struct {
	ID   string
	Name string
}

// CategoryService exposes read-only category access for pickers and display.
type CategoryService struct {
	storage *storage.Storage
}

func NewCategoryService(store *storage.Storage) *CategoryService {
	return &CategoryService{storage: store}
}

// ListCategories returns the calling user's categories.
func (s *CategoryService) ListCategories(ctx context.Context, userID string) ([]Category, error) {
	rows, err := s.storage.Categories.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	converted := make([]Category, len(rows))
	for i, row := range rows {
		converted[i] = Category{ID: row.ID, Name: row.Name}
	}
	return converted, nil
}
