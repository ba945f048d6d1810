// Package status serves the health endpoint outside the API surface.
package status

import (
	"context"
	"errors"
	"net/http"

	"github.com/carson-networks/ledger-server/internal/logging"
)

type pinger interface {
	PingContext(ctx context.Context) error
}

// Handler reports liveness and database reachability.
type Handler struct {
	DB pinger
}

func NewHandler(db pinger) Handler {
	return Handler{DB: db}
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	if err := h.DB.PingContext(req.Context()); err != nil {
		logData.AddData("dbReachable", false)
		w.WriteHeader(http.StatusServiceUnavailable)
		return err
	}

	logData.AddData("dbReachable", true)
	w.WriteHeader(http.StatusOK)
	return nil
}
