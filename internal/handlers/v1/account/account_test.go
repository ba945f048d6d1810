package account

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

const testUserID = "user_account_test"

type mockAccountLister struct {
	mock.Mock
}

func (m *mockAccountLister) ListAccounts(ctx context.Context, userID string) ([]service.Account, error) {
	args := m.Called(ctx, userID)
	accounts, _ := args.Get(0).([]service.Account)
	return accounts, args.Error(1)
}

func asUser(userID string) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		next(huma.WithContext(ctx, identity.WithUserID(ctx.Context(), userID)))
	}
}

func newTestAPI(t *testing.T, svc accountLister, middleware ...func(huma.Context, func(huma.Context))) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	for _, mw := range middleware {
		api.UseMiddleware(mw)
	}
	NewListAccountsHandler(svc).Register(api)
	return api
}

func TestHTTP_ListAccounts_Success(t *testing.T) {
	mockSvc := new(mockAccountLister)
	mockSvc.On("ListAccounts", mock.Anything, testUserID).Return([]service.Account{
		{ID: "acc_1", Name: "Checking"},
		{ID: "acc_2", Name: "Savings"},
	}, nil)

	resp := newTestAPI(t, mockSvc, asUser(testUserID)).Get("/v1/account")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListAccountsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Accounts, 2)
	assert.Equal(t, "acc_1", body.Accounts[0].ID)
	assert.Equal(t, "Checking", body.Accounts[0].Name)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListAccounts_Empty(t *testing.T) {
	mockSvc := new(mockAccountLister)
	mockSvc.On("ListAccounts", mock.Anything, testUserID).
		Return(([]service.Account)(nil), nil)

	resp := newTestAPI(t, mockSvc, asUser(testUserID)).Get("/v1/account")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListAccountsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body.Accounts)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListAccounts_ServiceError(t *testing.T) {
	mockSvc := new(mockAccountLister)
	mockSvc.On("ListAccounts", mock.Anything, testUserID).
		Return(([]service.Account)(nil), errors.New("database unavailable"))

	resp := newTestAPI(t, mockSvc, asUser(testUserID)).Get("/v1/account")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListAccounts_NoIdentity(t *testing.T) {
	mockSvc := new(mockAccountLister)

	resp := newTestAPI(t, mockSvc).Get("/v1/account")

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	mockSvc.AssertNotCalled(t, "ListAccounts")
}
