package transaction

import (
	"context"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/identity"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
)

const testUserID = "user_handler_test"

// asUser injects an authenticated identity the way the bearer middleware
// does, so handler tests skip token parsing.
func asUser(userID string) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		next(huma.WithContext(ctx, identity.WithUserID(ctx.Context(), userID)))
	}
}

// newTestAPI registers a handler against a humatest API behind the given
// middleware chain.
func newTestAPI(t *testing.T, register func(huma.API), middleware ...func(huma.Context, func(huma.Context))) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	for _, mw := range middleware {
		api.UseMiddleware(mw)
	}
	register(api)
	return api
}

// mockActionProcessor is a mock for actionProcessor. Result fields on the
// action are populated via Run, mirroring what Perform does on commit.
type mockActionProcessor struct {
	mock.Mock
}

func (m *mockActionProcessor) Process(ctx context.Context, action actions.IAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}
