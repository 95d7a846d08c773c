package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_PutGetDelete(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir(), "http://localhost:8080")
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "exports/doc1.md", strings.NewReader("# Contrato")))

	r, err := s.Get(ctx, "exports/doc1.md")
	require.NoError(t, err)
	defer r.Close()
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "# Contrato", string(data))

	require.NoError(t, s.Delete(ctx, "exports/doc1.md"))
	_, err = s.Get(ctx, "exports/doc1.md")
	assert.Error(t, err)
}

func TestWriteExport(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir(), "http://localhost:8080")
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, WriteExport(ctx, s, "01ABC", "# Recibo\n\nconteúdo"))

	r, err := s.Get(ctx, ExportObjectName("01ABC"))
	require.NoError(t, err)
	defer r.Close()
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Recibo")
}

func TestObjectNames(t *testing.T) {
	assert.Equal(t, "exports/doc1.md", ExportObjectName("doc1"))
	assert.Equal(t, "attachments/doc1/laudo.pdf", AttachmentObjectName("doc1", "laudo.pdf"))
	// Path components in the file name are stripped
	assert.Equal(t, "attachments/doc1/laudo.pdf", AttachmentObjectName("doc1", "../../laudo.pdf"))
}

func TestCalculateSHA256(t *testing.T) {
	sum, err := CalculateSHA256(strings.NewReader("abc"))
	require.NoError(t, err)
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", sum)
}
