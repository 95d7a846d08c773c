package api

import (
	"encoding/json"
	"net/http"

	"imodocs/internal/auth"
	"imodocs/internal/service"

	"github.com/go-chi/chi/v5"
)

func (d Dependencies) createClause(w http.ResponseWriter, r *http.Request) {
	var input service.ClauseInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid request body", d.Log)
		return
	}
	clause, err := d.Clauses.CreateClause(r.Context(), auth.GetUserID(r.Context()), input)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "create_failed", err.Error(), d.Log)
		return
	}
	writeJSON(w, http.StatusCreated, clause)
}

func (d Dependencies) listClauses(w http.ResponseWriter, r *http.Request) {
	var categoria *string
	if c := r.URL.Query().Get("categoria"); c != "" {
		categoria = &c
	}
	clauses, err := d.Clauses.ListClauses(r.Context(), auth.GetUserID(r.Context()), categoria)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "list_failed", err.Error(), d.Log)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"clausulas": clauses})
}

func (d Dependencies) deleteClause(w http.ResponseWriter, r *http.Request) {
	if err := d.Clauses.DeleteClause(r.Context(), auth.GetUserID(r.Context()), chi.URLParam(r, "id")); err != nil {
		WriteError(w, http.StatusNotFound, "not_found", "Clause not found", d.Log)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
