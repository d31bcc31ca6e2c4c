package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/ledgerline/expense-service/internal/application"
)

func (h *Handler) listCashflows(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "no token provided")
		return
	}

	res, err := h.service.ListCashflows(r.Context(), userID)
	if err != nil {
		writeMappedError(r.Context(), w, "list_cashflows", err)
		return
	}
	writeSuccess(w, http.StatusOK, res)
}

func (h *Handler) getCashflow(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "no token provided")
		return
	}

	cashflowID, err := uuid.Parse(chi.URLParam(r, "cashflowId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid cashflow id")
		return
	}

	res, err := h.service.GetCashflow(r.Context(), userID, cashflowID)
	if err != nil {
		writeMappedError(r.Context(), w, "get_cashflow", err)
		return
	}
	writeSuccess(w, http.StatusOK, res)
}

func (h *Handler) addCashflow(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "no token provided")
		return
	}

	var req application.CashflowAddRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "add_cashflow", err)
		return
	}

	res, err := h.service.AddCashflow(r.Context(), userID, req)
	if err != nil {
		writeMappedError(r.Context(), w, "add_cashflow", err)
		return
	}
	writeSuccess(w, http.StatusCreated, res)
}

func (h *Handler) updateCashflow(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "no token provided")
		return
	}

	var req application.CashflowUpdateRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "update_cashflow", err)
		return
	}

	res, err := h.service.UpdateCashflow(r.Context(), userID, req)
	if err != nil {
		writeMappedError(r.Context(), w, "update_cashflow", err)
		return
	}
	writeSuccess(w, http.StatusOK, res)
}

func (h *Handler) deleteCashflow(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "no token provided")
		return
	}

	var req struct {
		CashflowID uuid.UUID `json:"cashflowId"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "delete_cashflow", err)
		return
	}

	if err := h.service.DeleteCashflow(r.Context(), userID, req.CashflowID); err != nil {
		writeMappedError(r.Context(), w, "delete_cashflow", err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"id": req.CashflowID})
}
