package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"crypto/sha256"
	"encoding/hex"
)

// DefaultPresignExpiry is how long presigned links stay valid
const DefaultPresignExpiry = 15 * time.Minute

// Storage is the backend for generated document exports and inspection
// report attachments
type Storage interface {
	PresignPut(ctx context.Context, objectName, contentType string, expiresIn time.Duration) (string, error)
	PresignGet(ctx context.Context, objectName string, expiresIn time.Duration) (string, error)
	Put(ctx context.Context, objectName string, reader io.Reader) error
	Get(ctx context.Context, objectName string) (io.ReadCloser, error)
	Delete(ctx context.Context, objectName string) error
}

// LocalStorage implements Storage using the local filesystem
type LocalStorage struct {
	baseDir string
	baseURL string
}

// NewLocalStorage creates a new local filesystem storage backend
func NewLocalStorage(baseDir, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create base directory: %w", err)
	}
	return &LocalStorage{
		baseDir: baseDir,
		baseURL: baseURL,
	}, nil
}

func (s *LocalStorage) PresignPut(ctx context.Context, objectName, contentType string, expiresIn time.Duration) (string, error) {
	// Local backend has no signing; the returned URL accepts a direct PUT
	return fmt.Sprintf("%s/files/%s", s.baseURL, objectName), nil
}

func (s *LocalStorage) PresignGet(ctx context.Context, objectName string, expiresIn time.Duration) (string, error) {
	return fmt.Sprintf("%s/files/%s", s.baseURL, objectName), nil
}

func (s *LocalStorage) Put(ctx context.Context, objectName string, reader io.Reader) error {
	fullPath := filepath.Join(s.baseDir, objectName)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, reader); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

func (s *LocalStorage) Get(ctx context.Context, objectName string) (io.ReadCloser, error) {
	fullPath := filepath.Join(s.baseDir, objectName)
	file, err := os.Open(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return file, nil
}

func (s *LocalStorage) Delete(ctx context.Context, objectName string) error {
	fullPath := filepath.Join(s.baseDir, objectName)
	if err := os.Remove(fullPath); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// ExportObjectName is the object key for a markdown export of one document
func ExportObjectName(documentID string) string {
	return fmt.Sprintf("exports/%s.md", documentID)
}

// AttachmentObjectName is the object key for an inspection attachment,
// namespaced under its document
func AttachmentObjectName(documentID, fileName string) string {
	return fmt.Sprintf("attachments/%s/%s", documentID, filepath.Base(fileName))
}

// WriteExport stores the generated markdown for a document
func WriteExport(ctx context.Context, s Storage, documentID, generatedText string) error {
	return s.Put(ctx, ExportObjectName(documentID), strings.NewReader(generatedText))
}

// CalculateSHA256 calculates SHA256 hash of file content
func CalculateSHA256(reader io.Reader) (string, error) {
	hash := sha256.New()
	if _, err := io.Copy(hash, reader); err != nil {
		return "", err
	}
	return hex.EncodeToString(hash.Sum(nil)), nil
}
