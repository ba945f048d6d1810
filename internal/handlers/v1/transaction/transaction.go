package transaction

import (
	"github.com/carson-networks/ledger-server/internal/daterange"
	"github.com/carson-networks/ledger-server/internal/money"
	"github.com/carson-networks/ledger-server/internal/service"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

// Transaction is the API response model for a stored transaction row.
type Transaction struct {
	ID         string  `json:"id" doc:"Transaction id"`
	AccountID  string  `json:"accountId" doc:"Account id"`
	CategoryID *string `json:"categoryId,omitempty" doc:"Category id, absent when uncategorized"`
	Date       string  `json:"date" doc:"Calendar date, YYYY-MM-DD"`
	Amount     int64   `json:"amount" doc:"Signed amount in milliunits"`
	Payee      string  `json:"payee" doc:"Payee"`
	Notes      *string `json:"notes,omitempty" doc:"Optional notes"`
}

// TransactionView is a Transaction enriched with the joined account name and
// the optional category name. Used by list and get responses.
type TransactionView struct {
	Transaction
	Account  string  `json:"account" doc:"Account name"`
	Category *string `json:"category,omitempty" doc:"Category name, absent when uncategorized"`
}

// TransactionBody is the full editable field set carried by create and
// update requests. Updates require the complete set; there is no partial
// patch shape.
type TransactionBody struct {
	AccountID  string  `json:"accountId" required:"true" minLength:"1" doc:"Account id"`
	CategoryID *string `json:"categoryId,omitempty" doc:"Optional category id"`
	Date       string  `json:"date" required:"true" doc:"Calendar date, YYYY-MM-DD"`
	Amount     int64   `json:"amount" doc:"Signed amount in milliunits, negative for expenses"`
	Payee      string  `json:"payee" required:"true" minLength:"1" doc:"Payee"`
	Notes      *string `json:"notes,omitempty" doc:"Optional notes"`
}

// parseTransactionBody validates the date and converts the body to storage
// fields. Amount stays integer milliunits end to end.
func parseTransactionBody(body *TransactionBody) (*transaction.Fields, error) {
	date, err := parseDate(body.Date)
	if err != nil {
		return nil, err
	}

	return &transaction.Fields{
		AccountID:  body.AccountID,
		CategoryID: body.CategoryID,
		Date:       date,
		Amount:     money.Milliunits(body.Amount),
		Payee:      body.Payee,
		Notes:      body.Notes,
	}, nil
}

func transactionFromRow(row *transaction.Row) Transaction {
	return Transaction{
		ID:         row.ID,
		AccountID:  row.AccountID,
		CategoryID: row.CategoryID,
		Date:       row.Date.Format(daterange.Layout),
		Amount:     int64(row.Amount),
		Payee:      row.Payee,
		Notes:      row.Notes,
	}
}

func viewFromService(view *service.TransactionView) TransactionView {
	return TransactionView{
		Transaction: Transaction{
			ID:         view.ID,
			AccountID:  view.AccountID,
			CategoryID: view.CategoryID,
			Date:       view.Date.Format(daterange.Layout),
			Amount:     int64(view.Amount),
			Payee:      view.Payee,
			Notes:      view.Notes,
		},
		Account:  view.Account,
		Category: view.Category,
	}
}
