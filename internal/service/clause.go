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

// ClauseService manages the user's library of reusable contract clauses.
type ClauseService struct {
	queries *db.Queries
	log     *zap.Logger
}

func NewClauseService(queries *db.Queries, log *zap.Logger) *ClauseService {
	return &ClauseService{queries: queries, log: log}
}

type ClauseInput struct {
	Titulo    string `json:"titulo"`
	Categoria string `json:"categoria"`
	Texto     string `json:"texto"`
}

func (s *ClauseService) CreateClause(ctx context.Context, userID string, input ClauseInput) (*model.Clause, error) {
	if strings.TrimSpace(input.Titulo) == "" {
		return nil, fmt.Errorf("titulo is required")
	}
	if strings.TrimSpace(input.Texto) == "" {
		return nil, fmt.Errorf("texto is required")
	}
	row, err := s.queries.CreateClause(ctx, ulid.Make().String(), userID,
		strings.TrimSpace(input.Titulo), strings.TrimSpace(input.Categoria), input.Texto)
	if err != nil {
		return nil, fmt.Errorf("failed to create clause: %w", err)
	}
	return dbClauseToModel(row), nil
}

func (s *ClauseService) ListClauses(ctx context.Context, userID string, categoria *string) ([]*model.Clause, error) {
	rows, err := s.queries.ListClauses(ctx, userID, categoria)
	if err != nil {
		return nil, fmt.Errorf("failed to list clauses: %w", err)
	}
	out := make([]*model.Clause, 0, len(rows))
	for _, r := range rows {
		out = append(out, dbClauseToModel(r))
	}
	return out, nil
}

func (s *ClauseService) DeleteClause(ctx context.Context, userID, id string) error {
	if err := s.queries.DeleteClause(ctx, userID, id); err != nil {
		return fmt.Errorf("failed to delete clause: %w", err)
	}
	return nil
}

func dbClauseToModel(r db.Clause) *model.Clause {
	return &model.Clause{
		ID:        r.ID,
		UserID:    r.UserID,
		Titulo:    r.Titulo,
		Categoria: r.Categoria,
		Texto:     r.Texto,
		CreatedAt: r.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
