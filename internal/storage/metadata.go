package storage

import (
	"fmt"
)

// AttachmentMetadata describes one uploaded inspection attachment
type AttachmentMetadata struct {
	Name   string `json:"name"`
	URL    string `json:"url"`
	Size   int64  `json:"size"`
	MIME   string `json:"mime"`
	SHA256 string `json:"sha256,omitempty"`
}

// NormalizeAttachmentMetadata normalizes attachment metadata from a map
func NormalizeAttachmentMetadata(file map[string]interface{}) AttachmentMetadata {
	meta := AttachmentMetadata{}

	if name, ok := file["name"].(string); ok {
		meta.Name = name
	}
	if url, ok := file["url"].(string); ok {
		meta.URL = url
	}
	if size, ok := file["size"].(float64); ok {
		meta.Size = int64(size)
	} else if size, ok := file["size"].(int64); ok {
		meta.Size = size
	} else if size, ok := file["size"].(int); ok {
		meta.Size = int64(size)
	}
	if mime, ok := file["mime"].(string); ok {
		meta.MIME = mime
	} else if contentType, ok := file["contentType"].(string); ok {
		meta.MIME = contentType
	}
	if sha256, ok := file["sha256"].(string); ok {
		meta.SHA256 = sha256
	}

	return meta
}

// ValidateAttachmentMetadata validates that metadata has required fields
func ValidateAttachmentMetadata(meta AttachmentMetadata) error {
	if meta.Name == "" {
		return fmt.Errorf("attachment name is required")
	}
	if meta.Size < 0 {
		return fmt.Errorf("attachment size must be non-negative")
	}
	return nil
}

// ToMap converts AttachmentMetadata to a map for storage
func (m AttachmentMetadata) ToMap() map[string]interface{} {
	result := map[string]interface{}{
		"name": m.Name,
		"url":  m.URL,
		"size": m.Size,
		"mime": m.MIME,
	}
	if m.SHA256 != "" {
		result["sha256"] = m.SHA256
	}
	return result
}

// NormalizeAttachments normalizes a slice of attachment metadata maps
func NormalizeAttachments(files []map[string]interface{}) ([]map[string]interface{}, error) {
	normalized := make([]map[string]interface{}, 0, len(files))
	for _, file := range files {
		meta := NormalizeAttachmentMetadata(file)
		if err := ValidateAttachmentMetadata(meta); err != nil {
			return nil, fmt.Errorf("invalid attachment metadata: %w", err)
		}
		normalized = append(normalized, meta.ToMap())
	}
	return normalized, nil
}
