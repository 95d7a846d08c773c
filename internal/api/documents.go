package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"imodocs/internal/auth"
	"imodocs/internal/model"
	"imodocs/internal/service"
	"imodocs/internal/storage"

	"github.com/go-chi/chi/v5"
)

type CreateDocumentRequest struct {
	TemplateID string            `json:"templateId"`
	Title      string            `json:"title,omitempty"`
	FormData   map[string]string `json:"formData"`
}

func (d Dependencies) createDocument(w http.ResponseWriter, r *http.Request) {
	var req CreateDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid request body", d.Log)
		return
	}

	doc, err := d.Documents.CreateDocument(r.Context(), service.CreateDocumentInput{
		UserID:     auth.GetUserID(r.Context()),
		TemplateID: req.TemplateID,
		Title:      req.Title,
		FormData:   req.FormData,
	})
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "create_failed", err.Error(), d.Log)
		return
	}
	writeJSON(w, http.StatusCreated, doc)
}

func (d Dependencies) getDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := d.Documents.GetDocument(r.Context(), auth.GetUserID(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, http.StatusNotFound, "not_found", "Document not found", d.Log)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (d Dependencies) listDocuments(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)
	var status *string
	if s := r.URL.Query().Get("status"); s != "" {
		status = &s
	}

	docs, err := d.Documents.ListDocuments(r.Context(), auth.GetUserID(r.Context()), status, limit, offset)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "list_failed", err.Error(), d.Log)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"documents": docs})
}

type UpdateDocumentRequest struct {
	Title         string            `json:"title,omitempty"`
	Status        string            `json:"status,omitempty"`
	FormData      map[string]string `json:"formData,omitempty"`
	GeneratedText string            `json:"generatedText,omitempty"`
	Regenerate    bool              `json:"regenerate,omitempty"`
}

func (d Dependencies) updateDocument(w http.ResponseWriter, r *http.Request) {
	var req UpdateDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid request body", d.Log)
		return
	}

	doc, err := d.Documents.UpdateDocument(r.Context(), service.UpdateDocumentInput{
		UserID:        auth.GetUserID(r.Context()),
		ID:            chi.URLParam(r, "id"),
		Title:         req.Title,
		Status:        model.DocumentStatus(req.Status),
		FormData:      req.FormData,
		GeneratedText: req.GeneratedText,
		Regenerate:    req.Regenerate,
	})
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "update_failed", err.Error(), d.Log)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (d Dependencies) deleteDocument(w http.ResponseWriter, r *http.Request) {
	if err := d.Documents.DeleteDocument(r.Context(), auth.GetUserID(r.Context()), chi.URLParam(r, "id")); err != nil {
		WriteError(w, http.StatusNotFound, "not_found", "Document not found", d.Log)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (d Dependencies) listDocumentVersions(w http.ResponseWriter, r *http.Request) {
	versions, err := d.Documents.ListVersions(r.Context(), auth.GetUserID(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, http.StatusNotFound, "not_found", "Document not found", d.Log)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"versions": versions})
}

// exportDocument returns a presigned download link for the markdown export
func (d Dependencies) exportDocument(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	// Ownership check before handing out a link
	if _, err := d.Documents.GetDocument(r.Context(), auth.GetUserID(r.Context()), id); err != nil {
		WriteError(w, http.StatusNotFound, "not_found", "Document not found", d.Log)
		return
	}

	url, err := d.Storage.PresignGet(r.Context(), storage.ExportObjectName(id), storage.DefaultPresignExpiry)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "export_failed", err.Error(), d.Log)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"url": url})
}

func pagination(r *http.Request) (limit, offset int) {
	limit = 50
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 && v <= 200 {
		limit = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && v >= 0 {
		offset = v
	}
	return limit, offset
}
