package category

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/identity"
	"github.com/carson-networks/ledger-server/internal/service"
)

const testUserID = "user_category_test"

type mockCategoryLister struct {
	mock.Mock
}

func (m *mockCategoryLister) ListCategories(ctx context.Context, userID string) ([]service.Category, error) {
	args := m.Called(ctx, userID)
	categories, _ := args.Get(0).([]service.Category)
	return categories, args.Error(1)
}

func asUser(userID string) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		next(huma.WithContext(ctx, identity.WithUserID(ctx.Context(), userID)))
	}
}

func newTestAPI(t *testing.T, svc categoryLister, middleware ...func(huma.Context, func(huma.Context))) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	for _, mw := range middleware {
		api.UseMiddleware(mw)
	}
	NewListCategoriesHandler(svc).Register(api)
	return api
}

func TestHTTP_ListCategories_Success(t *testing.T) {
	mockSvc := new(mockCategoryLister)
	mockSvc.On("ListCategories", mock.Anything, testUserID).Return([]service.Category{
		{ID: "cat_1", Name: "Groceries"},
		{ID: "cat_2", Name: "Rent"},
	}, nil)

	resp := newTestAPI(t, mockSvc, asUser(testUserID)).Get("/v1/category")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListCategoriesResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Categories, 2)
	assert.Equal(t, "cat_1", body.Categories[0].ID)
	assert.Equal(t, "Groceries", body.Categories[0].Name)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListCategories_ServiceError(t *testing.T) {
	mockSvc := new(mockCategoryLister)
	mockSvc.On("ListCategories", mock.Anything, testUserID).
		Return(([]service.Category)(nil), errors.New("database unavailable"))

	resp := newTestAPI(t, mockSvc, asUser(testUserID)).Get("/v1/category")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListCategories_NoIdentity(t *testing.T) {
	mockSvc := new(mockCategoryLister)

	resp := newTestAPI(t, mockSvc).Get("/v1/category")

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	mockSvc.AssertNotCalled(t, "ListCategories")
}
