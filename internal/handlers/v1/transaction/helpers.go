package transaction

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/daterange"
	"github.com/carson-networks/ledger-server/internal/identity"
	"github.com/carson-networks/ledger-server/internal/service"
)

// authenticatedUser returns the caller's user id or a 401 error. The
// identity middleware normally guarantees presence; this covers direct use.
func authenticatedUser(ctx context.Context) (string, error) {
	userID, ok := identity.FromContext(ctx)
	if !ok {
		return "", huma.NewError(http.StatusUnauthorized, "no authenticated identity")
	}
	return userID, nil
}

func parseDate(value string) (time.Time, error) {
	date, err := time.Parse(daterange.Layout, value)
	if err != nil {
		return time.Time{}, huma.NewError(http.StatusBadRequest, "invalid date", err)
	}
	return date, nil
}

// mapServiceError translates the failure taxonomy to HTTP outcomes. Unknown
// errors are storage failures and surface as 500 with the cause attached.
func mapServiceError(err error, operation string) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return huma.NewError(http.StatusNotFound, "transaction not found")
	case errors.Is(err, service.ErrInvalidArgument):
		return huma.NewError(http.StatusBadRequest, err.Error())
	default:
		return huma.NewError(http.StatusInternalServerError, "failed to "+operation, err)
	}
}
