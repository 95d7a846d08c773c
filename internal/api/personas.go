package api

import (
	"encoding/json"
	"net/http"

	"imodocs/internal/auth"
	"imodocs/internal/service"

	"github.com/go-chi/chi/v5"
)

func (d Dependencies) createPersona(w http.ResponseWriter, r *http.Request) {
	var input service.PersonaInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid request body", d.Log)
		return
	}
	persona, err := d.Personas.CreatePersona(r.Context(), auth.GetUserID(r.Context()), input)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "create_failed", err.Error(), d.Log)
		return
	}
	writeJSON(w, http.StatusCreated, persona)
}

func (d Dependencies) getPersona(w http.ResponseWriter, r *http.Request) {
	persona, err := d.Personas.GetPersona(r.Context(), auth.GetUserID(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, http.StatusNotFound, "not_found", "Persona not found", d.Log)
		return
	}
	writeJSON(w, http.StatusOK, persona)
}

func (d Dependencies) listPersonas(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)
	personas, err := d.Personas.ListPersonas(r.Context(), auth.GetUserID(r.Context()), limit, offset)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "list_failed", err.Error(), d.Log)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"personas": personas})
}

func (d Dependencies) updatePersona(w http.ResponseWriter, r *http.Request) {
	var input service.PersonaInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid request body", d.Log)
		return
	}
	persona, err := d.Personas.UpdatePersona(r.Context(), auth.GetUserID(r.Context()), chi.URLParam(r, "id"), input)
	if err != nil {
		WriteError(w, http.StatusNotFound, "update_failed", err.Error(), d.Log)
		return
	}
	writeJSON(w, http.StatusOK, persona)
}

func (d Dependencies) deletePersona(w http.ResponseWriter, r *http.Request) {
	if err := d.Personas.DeletePersona(r.Context(), auth.GetUserID(r.Context()), chi.URLParam(r, "id")); err != nil {
		WriteError(w, http.StatusNotFound, "not_found", "Persona not found", d.Log)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
