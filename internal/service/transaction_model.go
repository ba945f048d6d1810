package service

import (
	"time"

	"github.com/carson-networks/ledger-server/internal/money"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID         string
	AccountID  string
	CategoryID *string
	Date       time.Time
	Amount     money.Milliunits
	Payee      string
	Notes      *string
}

// TransactionView is a transaction enriched with the joined account name and
// the optional category name.
type TransactionView struct {
	Transaction
	Account  string
	Category *string
}

// ListParams are the optional list filters as supplied by the caller. Empty
// date strings take the default trailing window.
type ListParams struct {
	AccountID string
	From      string
	To        string
}

func transactionFromRow(row *transaction.Row) Transaction {
	return Transaction{
		ID:         row.ID,
		AccountID:  row.AccountID,
		CategoryID: row.CategoryID,
		Date:       row.Date,
		Amount:     row.Amount,
		Payee:      row.Payee,
		Notes:      row.Notes,
	}
}

func viewFromStorage(view *transaction.View) TransactionView {
	return TransactionView{
		Transaction: transactionFromRow(&view.Row),
		Account:     view.AccountName,
		Category:    view.CategoryName,
	}
}
