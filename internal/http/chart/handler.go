// Package chart exposes the account-mapping table for review. Accounting
// rules are data in this subsystem; bookkeepers check this endpoint, not the
// source.
package chart

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/contaro/docintel/internal/accounts"
)

type Handler struct {
	suggester *accounts.Suggester
}

func NewHandler(suggester *accounts.Suggester) *Handler {
	return &Handler{suggester: suggester}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/chart", h.get)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(h.suggester.Chart()); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
