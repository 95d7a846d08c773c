package api

import (
	"net/http"
	"strconv"

	"imodocs/internal/auth"
	"imodocs/internal/storage"
)

// signAttachment hands out presigned upload and download URLs for a document
// attachment (a scanned signature page, a matrícula copy)
func (d Dependencies) signAttachment(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	contentType := r.URL.Query().Get("contentType")
	documentID := r.URL.Query().Get("documentId")

	if documentID == "" {
		WriteError(w, http.StatusBadRequest, "invalid_request", "documentId parameter required", d.Log)
		return
	}

	size := int64(0)
	if s := r.URL.Query().Get("size"); s != "" {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			WriteError(w, http.StatusBadRequest, "invalid_size", "Invalid size parameter", d.Log)
			return
		}
		size = v
	}

	meta := storage.NormalizeAttachmentMetadata(map[string]interface{}{
		"name":        name,
		"contentType": contentType,
		"size":        size,
	})
	if err := storage.ValidateAttachmentMetadata(meta); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", err.Error(), d.Log)
		return
	}

	// Attachments hang off documents the caller owns
	if _, err := d.Documents.GetDocument(r.Context(), auth.GetUserID(r.Context()), documentID); err != nil {
		WriteError(w, http.StatusNotFound, "document_not_found", "Document not found", d.Log)
		return
	}

	objectName := storage.AttachmentObjectName(documentID, meta.Name)

	putURL, err := d.Storage.PresignPut(r.Context(), objectName, meta.MIME, storage.DefaultPresignExpiry)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "url_generation_failed", "Failed to generate presigned URL", d.Log)
		return
	}
	getURL, err := d.Storage.PresignGet(r.Context(), objectName, storage.DefaultPresignExpiry)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "url_generation_failed", "Failed to generate presigned URL", d.Log)
		return
	}

	meta.URL = getURL
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"objectName": objectName,
		"putUrl":     putURL,
		"getUrl":     getURL,
		"file":       meta.ToMap(),
	})
}
