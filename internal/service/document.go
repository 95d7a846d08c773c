package service

import (
	"context"
	"fmt"

	"imodocs/internal/db"
	"imodocs/internal/generator"
	"imodocs/internal/model"
	"imodocs/internal/registry"
	"imodocs/internal/storage"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

type DocumentService struct {
	queries *db.Queries
	reg     *registry.Registry
	gen     *generator.Generator
	bus     EventBus
	store   storage.Storage
	log     *zap.Logger
}

type EventBus interface {
	PublishUser(userID string, event map[string]interface{}) error
	PublishDocument(documentID string, event map[string]interface{}) error
}

func NewDocumentService(queries *db.Queries, reg *registry.Registry, gen *generator.Generator, bus EventBus, store storage.Storage, log *zap.Logger) *DocumentService {
	return &DocumentService{
		queries: queries,
		reg:     reg,
		gen:     gen,
		bus:     bus,
		store:   store,
		log:     log,
	}
}

type CreateDocumentInput struct {
	UserID     string
	TemplateID string
	Title      string
	FormData   map[string]string
}

// CreateDocument generates the document text from the template and form data,
// persists the head row and the first immutable version, and writes the
// markdown export.
func (s *DocumentService) CreateDocument(ctx context.Context, input CreateDocumentInput) (*model.Document, error) {
	templateID := input.TemplateID
	if _, ok := s.reg.Get(templateID); !ok {
		// Soft fallback: unknown template ids resolve to the default template
		templateID = registry.DefaultTemplateID
	}

	if input.FormData == nil {
		input.FormData = make(map[string]string)
	}
	generated := s.gen.Generate(templateID, input.FormData)

	title := input.Title
	if title == "" {
		if schema, ok := s.reg.Get(templateID); ok {
			title = schema.Title
		}
	}

	documentID := ulid.Make().String()
	doc, err := s.queries.CreateDocument(ctx, db.CreateDocumentParams{
		ID:            documentID,
		UserID:        input.UserID,
		TemplateID:    templateID,
		Title:         title,
		Status:        string(model.DocumentFinalized),
		FormData:      input.FormData,
		GeneratedText: generated,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create document: %w", err)
	}

	if _, err := s.queries.CreateDocumentVersion(ctx, ulid.Make().String(), documentID, input.FormData, generated); err != nil {
		return nil, fmt.Errorf("failed to record document version: %w", err)
	}

	// Export is best-effort; the document row is the source of truth
	if s.store != nil {
		if err := storage.WriteExport(ctx, s.store, documentID, generated); err != nil {
			s.log.Warn("Failed to write document export", zap.String("document_id", documentID), zap.Error(err))
		}
	}

	_ = s.bus.PublishUser(input.UserID, map[string]interface{}{
		"type":       "document.created",
		"documentId": documentID,
		"templateId": templateID,
	})

	return dbDocumentToModel(doc), nil
}

func (s *DocumentService) GetDocument(ctx context.Context, userID, id string) (*model.Document, error) {
	doc, err := s.queries.GetDocumentByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("document not found: %w", err)
	}
	return dbDocumentToModel(doc), nil
}

func (s *DocumentService) ListDocuments(ctx context.Context, userID string, status *string, limit, offset int) ([]*model.Document, error) {
	docs, err := s.queries.ListDocuments(ctx, userID, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	out := make([]*model.Document, 0, len(docs))
	for _, d := range docs {
		out = append(out, dbDocumentToModel(d))
	}
	return out, nil
}

type UpdateDocumentInput struct {
	UserID        string
	ID            string
	Title         string
	Status        model.DocumentStatus
	FormData      map[string]string
	GeneratedText string
	Regenerate    bool
}

// UpdateDocument saves an edited document. When Regenerate is set, the text
// is re-rendered from the form data; otherwise the caller's free-text edit is
// stored verbatim. Either way a new version row is appended.
func (s *DocumentService) UpdateDocument(ctx context.Context, input UpdateDocumentInput) (*model.Document, error) {
	existing, err := s.queries.GetDocumentByID(ctx, input.UserID, input.ID)
	if err != nil {
		return nil, fmt.Errorf("document not found: %w", err)
	}

	formData := input.FormData
	if formData == nil {
		formData = existing.FormData
	}

	generated := input.GeneratedText
	if input.Regenerate {
		generated = s.gen.Generate(existing.TemplateID, formData)
	} else if generated == "" {
		generated = existing.GeneratedText
	}

	title := input.Title
	if title == "" {
		title = existing.Title
	}
	status := string(input.Status)
	if status == "" {
		status = existing.Status
	}

	doc, err := s.queries.UpdateDocument(ctx, db.UpdateDocumentParams{
		ID:            input.ID,
		UserID:        input.UserID,
		Title:         title,
		Status:        status,
		FormData:      formData,
		GeneratedText: generated,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update document: %w", err)
	}

	if _, err := s.queries.CreateDocumentVersion(ctx, ulid.Make().String(), input.ID, formData, generated); err != nil {
		return nil, fmt.Errorf("failed to record document version: %w", err)
	}

	if s.store != nil {
		if err := storage.WriteExport(ctx, s.store, input.ID, generated); err != nil {
			s.log.Warn("Failed to write document export", zap.String("document_id", input.ID), zap.Error(err))
		}
	}

	_ = s.bus.PublishDocument(input.ID, map[string]interface{}{
		"type":       "document.updated",
		"documentId": input.ID,
	})

	return dbDocumentToModel(doc), nil
}

func (s *DocumentService) DeleteDocument(ctx context.Context, userID, id string) error {
	if err := s.queries.SoftDeleteDocument(ctx, userID, id); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	_ = s.bus.PublishUser(userID, map[string]interface{}{
		"type":       "document.deleted",
		"documentId": id,
	})
	return nil
}

func (s *DocumentService) ListVersions(ctx context.Context, userID, documentID string) ([]*model.DocumentVersion, error) {
	// Ownership check before reading the version history
	if _, err := s.queries.GetDocumentByID(ctx, userID, documentID); err != nil {
		return nil, fmt.Errorf("document not found: %w", err)
	}

	versions, err := s.queries.ListDocumentVersions(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list versions: %w", err)
	}
	out := make([]*model.DocumentVersion, 0, len(versions))
	for _, v := range versions {
		out = append(out, &model.DocumentVersion{
			ID:            v.ID,
			DocumentID:    v.DocumentID,
			Version:       v.Version,
			FormData:      v.FormData,
			GeneratedText: v.GeneratedText,
			CreatedAt:     v.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	return out, nil
}

func dbDocumentToModel(d db.Document) *model.Document {
	return &model.Document{
		ID:            d.ID,
		UserID:        d.UserID,
		TemplateID:    d.TemplateID,
		Title:         d.Title,
		Status:        model.DocumentStatus(d.Status),
		FormData:      d.FormData,
		GeneratedText: d.GeneratedText,
		CreatedAt:     d.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:     d.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
