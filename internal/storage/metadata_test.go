package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAttachmentMetadata(t *testing.T) {
	meta := NormalizeAttachmentMetadata(map[string]interface{}{
		"name":        "laudo.pdf",
		"contentType": "application/pdf",
		"size":        float64(2048),
	})
	assert.Equal(t, "laudo.pdf", meta.Name)
	assert.Equal(t, "application/pdf", meta.MIME)
	assert.Equal(t, int64(2048), meta.Size)
}

func TestValidateAttachmentMetadata(t *testing.T) {
	assert.Error(t, ValidateAttachmentMetadata(AttachmentMetadata{}))
	assert.Error(t, ValidateAttachmentMetadata(AttachmentMetadata{Name: "a.pdf", Size: -1}))
	assert.NoError(t, ValidateAttachmentMetadata(AttachmentMetadata{Name: "a.pdf", Size: 10}))
}

func TestNormalizeAttachments(t *testing.T) {
	out, err := NormalizeAttachments([]map[string]interface{}{
		{"name": "a.pdf", "mime": "application/pdf", "size": float64(10), "sha256": "abc"},
	})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "a.pdf", out[0]["name"])
	assert.Equal(t, "abc", out[0]["sha256"])

	_, err = NormalizeAttachments([]map[string]interface{}{
		{"mime": "application/pdf"},
	})
	assert.Error(t, err)
}
