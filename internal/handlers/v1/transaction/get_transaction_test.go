package transaction

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/service"
)

type mockTransactionGetter struct {
	mock.Mock
}

func (m *mockTransactionGetter) GetTransaction(ctx context.Context, userID, id string) (*service.TransactionView, error) {
	args := m.Called(ctx, userID, id)
	view, _ := args.Get(0).(*service.TransactionView)
	return view, args.Error(1)
}

func newGetTestAPI(t *testing.T, svc transactionGetter, middleware ...func(huma.Context, func(huma.Context))) humatest.TestAPI {
	t.Helper()
	return newTestAPI(t, NewGetTransactionHandler(svc).Register, middleware...)
}

func TestHTTP_GetTransaction_Success(t *testing.T) {
	notes := "weekly shop"
	view := &service.TransactionView{
		Transaction: service.Transaction{
			ID:        "tx_1",
			AccountID: "acc_1",
			Date:      time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
			Amount:    -45000,
			Payee:     "Market",
			Notes:     &notes,
		},
		Account: "Checking",
	}

	mockSvc := new(mockTransactionGetter)
	mockSvc.On("GetTransaction", mock.Anything, testUserID, "tx_1").Return(view, nil)

	resp := newGetTestAPI(t, mockSvc, asUser(testUserID)).Get("/v1/transaction/tx_1")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body TransactionView
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "tx_1", body.ID)
	assert.Equal(t, "acc_1", body.AccountID)
	assert.Equal(t, "2025-06-10", body.Date)
	assert.Equal(t, int64(-45000), body.Amount)
	assert.Equal(t, "Checking", body.Account)
	assert.Nil(t, body.Category)
	if assert.NotNil(t, body.Notes) {
		assert.Equal(t, "weekly shop", *body.Notes)
	}
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetTransaction_NotFound(t *testing.T) {
	mockSvc := new(mockTransactionGetter)
	mockSvc.On("GetTransaction", mock.Anything, testUserID, "tx_missing").
		Return((*service.TransactionView)(nil), service.ErrNotFound)

	resp := newGetTestAPI(t, mockSvc, asUser(testUserID)).Get("/v1/transaction/tx_missing")

	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetTransaction_ServiceError(t *testing.T) {
	mockSvc := new(mockTransactionGetter)
	mockSvc.On("GetTransaction", mock.Anything, testUserID, "tx_1").
		Return((*service.TransactionView)(nil), errors.New("database unavailable"))

	resp := newGetTestAPI(t, mockSvc, asUser(testUserID)).Get("/v1/transaction/tx_1")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetTransaction_NoIdentity(t *testing.T) {
	mockSvc := new(mockTransactionGetter)

	resp := newGetTestAPI(t, mockSvc).Get("/v1/transaction/tx_1")

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	mockSvc.AssertNotCalled(t, "GetTransaction")
}
