package api

import (
	"encoding/json"
	"net/http"

	"imodocs/internal/auth"
	"imodocs/internal/service"

	"github.com/go-chi/chi/v5"
)

func (d Dependencies) createProperty(w http.ResponseWriter, r *http.Request) {
	var input service.PropertyInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid request body", d.Log)
		return
	}
	property, err := d.Properties.CreateProperty(r.Context(), auth.GetUserID(r.Context()), input)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "create_failed", err.Error(), d.Log)
		return
	}
	writeJSON(w, http.StatusCreated, property)
}

func (d Dependencies) getProperty(w http.ResponseWriter, r *http.Request) {
	property, err := d.Properties.GetProperty(r.Context(), auth.GetUserID(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, http.StatusNotFound, "not_found", "Property not found", d.Log)
		return
	}
	writeJSON(w, http.StatusOK, property)
}

func (d Dependencies) listProperties(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)
	properties, err := d.Properties.ListProperties(r.Context(), auth.GetUserID(r.Context()), limit, offset)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "list_failed", err.Error(), d.Log)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"imoveis": properties})
}

func (d Dependencies) updateProperty(w http.ResponseWriter, r *http.Request) {
	var input service.PropertyInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid request body", d.Log)
		return
	}
	property, err := d.Properties.UpdateProperty(r.Context(), auth.GetUserID(r.Context()), chi.URLParam(r, "id"), input)
	if err != nil {
		WriteError(w, http.StatusNotFound, "update_failed", err.Error(), d.Log)
		return
	}
	writeJSON(w, http.StatusOK, property)
}

func (d Dependencies) deleteProperty(w http.ResponseWriter, r *http.Request) {
	if err := d.Properties.DeleteProperty(r.Context(), auth.GetUserID(r.Context()), chi.URLParam(r, "id")); err != nil {
		WriteError(w, http.StatusNotFound, "not_found", "Property not found", d.Log)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
