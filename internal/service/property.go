package service

import (
	"context"
	"fmt"
	"strings"

	"imodocs/internal/db"
	"imodocs/internal/model"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

// PropertyService manages the saved imóveis that feed the property
// auto-fill resolver.
type PropertyService struct {
	queries *db.Queries
	log     *zap.Logger
}

func NewPropertyService(queries *db.Queries, log *zap.Logger) *PropertyService {
	return &PropertyService{queries: queries, log: log}
}

type PropertyInput struct {
	Endereco       string `json:"endereco"`
	Bairro         string `json:"bairro"`
	Cidade         string `json:"cidade"`
	Estado         string `json:"estado"`
	CEP            string `json:"cep"`
	Tipo           string `json:"tipo"`
	AreaTotal      string `json:"area_total"`
	AreaConstruida string `json:"area_construida"`
	Matricula      string `json:"matricula"`
	IPTU           string `json:"iptu"`
	Descricao      string `json:"descricao"`
}

func (s *PropertyService) CreateProperty(ctx context.Context, userID string, input PropertyInput) (*model.Property, error) {
	if strings.TrimSpace(input.Endereco) == "" {
		return nil, fmt.Errorf("endereco is required")
	}
	row, err := s.queries.CreateProperty(ctx, propertyParams(ulid.Make().String(), userID, input))
	if err != nil {
		return nil, fmt.Errorf("failed to create property: %w", err)
	}
	return dbPropertyToModel(row), nil
}

func (s *PropertyService) GetProperty(ctx context.Context, userID, id string) (*model.Property, error) {
	row, err := s.queries.GetPropertyByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("property not found: %w", err)
	}
	return dbPropertyToModel(row), nil
}

func (s *PropertyService) ListProperties(ctx context.Context, userID string, limit, offset int) ([]*model.Property, error) {
	rows, err := s.queries.ListProperties(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	out := make([]*model.Property, 0, len(rows))
	for _, r := range rows {
		out = append(out, dbPropertyToModel(r))
	}
	return out, nil
}

func (s *PropertyService) UpdateProperty(ctx context.Context, userID, id string, input PropertyInput) (*model.Property, error) {
	row, err := s.queries.UpdateProperty(ctx, propertyParams(id, userID, input))
	if err != nil {
		return nil, fmt.Errorf("failed to update property: %w", err)
	}
	return dbPropertyToModel(row), nil
}

func (s *PropertyService) DeleteProperty(ctx context.Context, userID, id string) error {
	if err := s.queries.DeleteProperty(ctx, userID, id); err != nil {
		return fmt.Errorf("failed to delete property: %w", err)
	}
	return nil
}

func propertyParams(id, userID string, input PropertyInput) db.PropertyParams {
	return db.PropertyParams{
		ID:             id,
		UserID:         userID,
		Endereco:       strings.TrimSpace(input.Endereco),
		Bairro:         strings.TrimSpace(input.Bairro),
		Cidade:         strings.TrimSpace(input.Cidade),
		Estado:         strings.ToUpper(strings.TrimSpace(input.Estado)),
		CEP:            strings.TrimSpace(input.CEP),
		Tipo:           input.Tipo,
		AreaTotal:      strings.TrimSpace(input.AreaTotal),
		AreaConstruida: strings.TrimSpace(input.AreaConstruida),
		Matricula:      strings.TrimSpace(input.Matricula),
		IPTU:           strings.TrimSpace(input.IPTU),
		Descricao:      strings.TrimSpace(input.Descricao),
	}
}

func dbPropertyToModel(r db.Property) *model.Property {
	return &model.Property{
		ID:             r.ID,
		UserID:         r.UserID,
		Endereco:       r.Endereco,
		Bairro:         r.Bairro,
		Cidade:         r.Cidade,
		Estado:         r.Estado,
		CEP:            r.CEP,
		Tipo:           r.Tipo,
		AreaTotal:      r.AreaTotal,
		AreaConstruida: r.AreaConstruida,
		Matricula:      r.Matricula,
		IPTU:           r.IPTU,
		Descricao:      r.Descricao,
		CreatedAt:      r.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:      r.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
