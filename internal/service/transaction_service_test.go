package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/money"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

// mockTransactionReader is a testify mock for transaction.ITransactionReader.
type mockTransactionReader struct {
	mock.Mock
}

func (m *mockTransactionReader) List(ctx context.Context, filter *transaction.ListFilter) ([]*transaction.View, error) {
	args := m.Called(ctx, filter)
	views, _ := args.Get(0).([]*transaction.View)
	return views, args.Error(1)
}

func (m *mockTransactionReader) FindByID(ctx context.Context, userID, id string) (*transaction.View, error) {
	args := m.Called(ctx, userID, id)
	view, _ := args.Get(0).(*transaction.View)
	return view, args.Error(1)
}

func (m *mockTransactionReader) Totals(ctx context.Context, filter *transaction.ListFilter) (*transaction.Totals, error) {
	args := m.Called(ctx, filter)
	totals, _ := args.Get(0).(*transaction.Totals)
	return totals, args.Error(1)
}

func (m *mockTransactionReader) ExpensesByCategory(ctx context.Context, filter *transaction.ListFilter) ([]*transaction.CategoryTotal, error) {
	args := m.Called(ctx, filter)
	totals, _ := args.Get(0).([]*transaction.CategoryTotal)
	return totals, args.Error(1)
}

var serviceNow = time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

func newTestTransactionService(t *testing.T) (*TransactionService, *mockTransactionReader) {
	t.Helper()
	mockReader := new(mockTransactionReader)
	store := &storage.Storage{Transactions: mockReader}
	svc := NewTransactionService(store)
	svc.now = func() time.Time { return serviceNow }
	return svc, mockReader
}

func storageView(id string) *transaction.View {
	categoryID := "category_1"
	categoryName := "Food"
	return &transaction.View{
		Row: transaction.Row{
			ID: id,
			Fields: transaction.Fields{
				AccountID:  "account_1",
				CategoryID: &categoryID,
				Date:       time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
				Amount:     money.Milliunits(-4500),
				Payee:      "Store",
			},
		},
		AccountName:  "Checking",
		CategoryName: &categoryName,
	}
}

// -- ListTransactions tests --

func TestListTransactions_DefaultWindow(t *testing.T) {
	svc, mockReader := newTestTransactionService(t)

	mockReader.On("List", mock.Anything, mock.MatchedBy(func(f *transaction.ListFilter) bool {
		return f.UserID == "user_1" &&
			f.AccountID == "" &&
			f.EndDate.Equal(time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)) &&
			f.StartDate.Equal(time.Date(2024, 5, 16, 0, 0, 0, 0, time.UTC))
	})).Return([]*transaction.View{storageView("tx_1")}, nil)

	views, err := svc.ListTransactions(context.Background(), "user_1", ListParams{})

	assert.NoError(t, err)
	assert.Len(t, views, 1)
	assert.Equal(t, "tx_1", views[0].ID)
	assert.Equal(t, "Checking", views[0].Account)
	assert.Equal(t, "Food", *views[0].Category)
	assert.Equal(t, money.Milliunits(-4500), views[0].Amount)
	mockReader.AssertExpectations(t)
}

func TestListTransactions_ExplicitBoundsAndAccount(t *testing.T) {
	svc, mockReader := newTestTransactionService(t)

	mockReader.On("List", mock.Anything, mock.MatchedBy(func(f *transaction.ListFilter) bool {
		return f.AccountID == "account_2" &&
			f.StartDate.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) &&
			f.EndDate.Equal(time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC))
	})).Return([]*transaction.View{}, nil)

	views, err := svc.ListTransactions(context.Background(), "user_1", ListParams{
		AccountID: "account_2",
		From:      "2024-01-01",
		To:        "2024-01-31",
	})

	assert.NoError(t, err)
	assert.Empty(t, views)
	mockReader.AssertExpectations(t)
}

func TestListTransactions_MalformedDate(t *testing.T) {
	svc, mockReader := newTestTransactionService(t)

	_, err := svc.ListTransactions(context.Background(), "user_1", ListParams{From: "garbage"})

	assert.ErrorIs(t, err, ErrInvalidArgument)
	mockReader.AssertNotCalled(t, "List")
}

func TestListTransactions_StorageError(t *testing.T) {
	svc, mockReader := newTestTransactionService(t)

	mockReader.On("List", mock.Anything, mock.Anything).
		Return(nil, errors.New("database unavailable"))

	_, err := svc.ListTransactions(context.Background(), "user_1", ListParams{})

	assert.EqualError(t, err, "database unavailable", "storage failures surface unchanged")
}

// -- GetTransaction tests --

func TestGetTransaction_Found(t *testing.T) {
	svc, mockReader := newTestTransactionService(t)

	mockReader.On("FindByID", mock.Anything, "user_1", "tx_1").
		Return(storageView("tx_1"), nil)

	view, err := svc.GetTransaction(context.Background(), "user_1", "tx_1")

	assert.NoError(t, err)
	assert.Equal(t, "tx_1", view.ID)
	assert.Equal(t, "Store", view.Payee)
}

func TestGetTransaction_NotFound(t *testing.T) {
	svc, mockReader := newTestTransactionService(t)

	mockReader.On("FindByID", mock.Anything, "user_2", "tx_1").
		Return(nil, nil)

	_, err := svc.GetTransaction(context.Background(), "user_2", "tx_1")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetTransaction_StorageError(t *testing.T) {
	svc, mockReader := newTestTransactionService(t)

	mockReader.On("FindByID", mock.Anything, "user_1", "tx_1").
		Return(nil, errors.New("connection refused"))

	_, err := svc.GetTransaction(context.Background(), "user_1", "tx_1")

	assert.EqualError(t, err, "connection refused")
}
