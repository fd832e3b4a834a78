// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-budget-keeper/internal/utils"
	"github.com/MKhiriev/go-budget-keeper/models"
)

// currentPeriod resolves the budget period of today, or of ?date=YYYY-MM-DD.
func (h *Handler) currentPeriod(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	now := time.Now().UTC()
	if raw := r.URL.Query().Get("date"); raw != "" {
		date, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidQuery))
			return
		}
		now = date
	}

	p, err := h.services.LedgerService.CurrentPeriod(r.Context(), userID, now)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, p, http.StatusOK)
}

// budgetConsumption answers per-line consumption. ?includeIncome=false
// counts only expense and saving transactions.
func (h *Handler) budgetConsumption(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	includeIncome := true
	if raw := r.URL.Query().Get("includeIncome"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: includeIncome must be a boolean", ErrInvalidQuery))
			return
		}
		includeIncome = parsed
	}

	consumption, err := h.services.LedgerService.BudgetConsumption(r.Context(), userID, chi.URLParam(r, "budgetID"), includeIncome)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, consumption, http.StatusOK)
}

func (h *Handler) budgetSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	summary, err := h.services.LedgerService.BudgetSummary(r.Context(), userID, chi.URLParam(r, "budgetID"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, summary, http.StatusOK)
}

func (h *Handler) createTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req models.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	transaction, err := h.services.LedgerService.CreateTransaction(r.Context(), userID, chi.URLParam(r, "budgetID"), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, transaction, http.StatusCreated)
}
