package api

import (
	"encoding/json"
	"net/http"

	"imodocs/internal/auth"
	"imodocs/internal/service"

	"github.com/go-chi/chi/v5"
)

func (d Dependencies) createReceivable(w http.ResponseWriter, r *http.Request) {
	var input service.ReceivableInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid request body", d.Log)
		return
	}
	receivable, err := d.Receivables.CreateReceivable(r.Context(), auth.GetUserID(r.Context()), input)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "create_failed", err.Error(), d.Log)
		return
	}
	writeJSON(w, http.StatusCreated, receivable)
}

func (d Dependencies) getReceivable(w http.ResponseWriter, r *http.Request) {
	receivable, err := d.Receivables.GetReceivable(r.Context(), auth.GetUserID(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, http.StatusNotFound, "not_found", "Receivable not found", d.Log)
		return
	}
	writeJSON(w, http.StatusOK, receivable)
}

func (d Dependencies) listReceivables(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)
	var status *string
	if s := r.URL.Query().Get("status"); s != "" {
		status = &s
	}
	receivables, err := d.Receivables.ListReceivables(r.Context(), auth.GetUserID(r.Context()), status, limit, offset)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "list_failed", err.Error(), d.Log)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"recebimentos": receivables})
}

func (d Dependencies) payReceivable(w http.ResponseWriter, r *http.Request) {
	receivable, err := d.Receivables.MarkPaid(r.Context(), auth.GetUserID(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, http.StatusNotFound, "pay_failed", err.Error(), d.Log)
		return
	}
	writeJSON(w, http.StatusOK, receivable)
}

func (d Dependencies) deleteReceivable(w http.ResponseWriter, r *http.Request) {
	if err := d.Receivables.DeleteReceivable(r.Context(), auth.GetUserID(r.Context()), chi.URLParam(r, "id")); err != nil {
		WriteError(w, http.StatusNotFound, "not_found", "Receivable not found", d.Log)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
