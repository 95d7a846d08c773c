package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"imodocs/internal/db"
	"imodocs/internal/generator"
	"imodocs/internal/model"
	"imodocs/internal/schema"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

// templateMetaSchema is the JSON Schema every custom template's field
// definition must satisfy before the template is accepted.
var templateMetaSchema = map[string]interface{}{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type":    "object",
	"properties": map[string]interface{}{
		"fields": map[string]interface{}{
			"type":     "array",
			"minItems": 1,
			"items": map[string]interface{}{
				"type":     "object",
				"required": []interface{}{"id", "label", "type"},
				"properties": map[string]interface{}{
					"id": map[string]interface{}{
						"type":    "string",
						"pattern": "^[a-z][a-z0-9_]*$",
					},
					"label": map[string]interface{}{"type": "string", "minLength": 1},
					"type": map[string]interface{}{
						"type": "string",
						"enum": []interface{}{"text", "number", "email", "select", "radio", "date"},
					},
					"required": map[string]interface{}{"type": "boolean"},
					"options": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type":     "object",
							"required": []interface{}{"label", "value"},
							"properties": map[string]interface{}{
								"label": map[string]interface{}{"type": "string"},
								"value": map[string]interface{}{"type": "string"},
							},
						},
					},
				},
			},
		},
	},
	"required": []interface{}{"fields"},
}

// CustomTemplateService stores user-authored templates. The field
// definitions are validated against a meta-schema and every placeholder in
// the body must be declared as a field.
type CustomTemplateService struct {
	queries   *db.Queries
	compiler  *schema.Compiler
	bodyCache *expirable.LRU[string, string]
	log       *zap.Logger
}

func NewCustomTemplateService(queries *db.Queries, compiler *schema.Compiler, log *zap.Logger) *CustomTemplateService {
	return &CustomTemplateService{
		queries:   queries,
		compiler:  compiler,
		bodyCache: expirable.NewLRU[string, string](256, nil, 10*time.Minute),
		log:       log,
	}
}

type CustomTemplateInput struct {
	Titulo    string                 `json:"titulo"`
	Descricao string                 `json:"descricao"`
	Body      string                 `json:"body"`
	Fields    map[string]interface{} `json:"fields"`
}

func (s *CustomTemplateService) CreateTemplate(ctx context.Context, userID string, input CustomTemplateInput) (*model.CustomTemplate, error) {
	if err := s.validateInput(ctx, input); err != nil {
		return nil, err
	}
	row, err := s.queries.CreateCustomTemplate(ctx, db.CustomTemplateParams{
		ID:        ulid.Make().String(),
		UserID:    userID,
		Titulo:    strings.TrimSpace(input.Titulo),
		Descricao: strings.TrimSpace(input.Descricao),
		Body:      input.Body,
		Fields:    input.Fields,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create template: %w", err)
	}
	return dbCustomTemplateToModel(row), nil
}

func (s *CustomTemplateService) GetTemplate(ctx context.Context, userID, id string) (*model.CustomTemplate, error) {
	row, err := s.queries.GetCustomTemplateByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("template not found: %w", err)
	}
	return dbCustomTemplateToModel(row), nil
}

func (s *CustomTemplateService) ListTemplates(ctx context.Context, userID string) ([]*model.CustomTemplate, error) {
	rows, err := s.queries.ListCustomTemplates(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	out := make([]*model.CustomTemplate, 0, len(rows))
	for _, r := range rows {
		out = append(out, dbCustomTemplateToModel(r))
	}
	return out, nil
}

func (s *CustomTemplateService) DeleteTemplate(ctx context.Context, userID, id string) error {
	if err := s.queries.DeleteCustomTemplate(ctx, userID, id); err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}
	s.bodyCache.Remove(bodyCacheKey(userID, id))
	return nil
}

// bodyCacheKey scopes cached bodies per owner so a cache hit never skips
// the ownership check that the database lookup enforces.
func bodyCacheKey(userID, id string) string {
	return userID + ":" + id
}

// Render substitutes values into a custom template's body using the same
// placeholder rules as the built-in templates
func (s *CustomTemplateService) Render(ctx context.Context, userID, id string, values map[string]string) (string, error) {
	key := bodyCacheKey(userID, id)
	body, ok := s.bodyCache.Get(key)
	if !ok {
		row, err := s.queries.GetCustomTemplateByID(ctx, userID, id)
		if err != nil {
			return "", fmt.Errorf("template not found: %w", err)
		}
		body = row.Body
		s.bodyCache.Add(key, body)
	}
	return generator.GenerateBody(body, values), nil
}

func (s *CustomTemplateService) validateInput(ctx context.Context, input CustomTemplateInput) error {
	if strings.TrimSpace(input.Titulo) == "" {
		return fmt.Errorf("titulo is required")
	}
	if strings.TrimSpace(input.Body) == "" {
		return fmt.Errorf("body is required")
	}
	if err := s.compiler.Validate(ctx, templateMetaSchema, input.Fields); err != nil {
		return fmt.Errorf("invalid field definitions: %w", err)
	}

	declared := make(map[string]bool)
	if fields, ok := input.Fields["fields"].([]interface{}); ok {
		for _, f := range fields {
			if m, ok := f.(map[string]interface{}); ok {
				if id, ok := m["id"].(string); ok {
					declared[id] = true
				}
			}
		}
	}
	for _, id := range generator.ExtractFields(input.Body) {
		if !declared[id] {
			return fmt.Errorf("placeholder %q is not declared as a field", id)
		}
	}
	return nil
}

func dbCustomTemplateToModel(r db.CustomTemplate) *model.CustomTemplate {
	return &model.CustomTemplate{
		ID:        r.ID,
		UserID:    r.UserID,
		Titulo:    r.Titulo,
		Descricao: r.Descricao,
		Body:      r.Body,
		Fields:    r.Fields,
		CreatedAt: r.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt: r.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
