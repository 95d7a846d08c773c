package service

import (
	"context"
	"fmt"
	"strings"

	"imodocs/internal/db"
	"imodocs/internal/mask"
	"imodocs/internal/model"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

// PersonaService manages the saved contracting parties that feed the
// persona auto-fill resolver.
type PersonaService struct {
	queries *db.Queries
	log     *zap.Logger
}

func NewPersonaService(queries *db.Queries, log *zap.Logger) *PersonaService {
	return &PersonaService{queries: queries, log: log}
}

type PersonaInput struct {
	Nome        string `json:"nome"`
	CpfCnpj     string `json:"cpf_cnpj"`
	RG          string `json:"rg"`
	EstadoCivil string `json:"estado_civil"`
	Profissao   string `json:"profissao"`
	Endereco    string `json:"endereco"`
	RegimeBens  string `json:"regime_bens"`
	Telefone    string `json:"telefone"`
	Email       string `json:"email"`
}

func (s *PersonaService) CreatePersona(ctx context.Context, userID string, input PersonaInput) (*model.Persona, error) {
	if strings.TrimSpace(input.Nome) == "" {
		return nil, fmt.Errorf("nome is required")
	}
	row, err := s.queries.CreatePersona(ctx, personaParams(ulid.Make().String(), userID, input))
	if err != nil {
		return nil, fmt.Errorf("failed to create persona: %w", err)
	}
	return dbPersonaToModel(row), nil
}

func (s *PersonaService) GetPersona(ctx context.Context, userID, id string) (*model.Persona, error) {
	row, err := s.queries.GetPersonaByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("persona not found: %w", err)
	}
	return dbPersonaToModel(row), nil
}

func (s *PersonaService) ListPersonas(ctx context.Context, userID string, limit, offset int) ([]*model.Persona, error) {
	rows, err := s.queries.ListPersonas(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list personas: %w", err)
	}
	out := make([]*model.Persona, 0, len(rows))
	for _, r := range rows {
		out = append(out, dbPersonaToModel(r))
	}
	return out, nil
}

func (s *PersonaService) UpdatePersona(ctx context.Context, userID, id string, input PersonaInput) (*model.Persona, error) {
	row, err := s.queries.UpdatePersona(ctx, personaParams(id, userID, input))
	if err != nil {
		return nil, fmt.Errorf("failed to update persona: %w", err)
	}
	return dbPersonaToModel(row), nil
}

func (s *PersonaService) DeletePersona(ctx context.Context, userID, id string) error {
	if err := s.queries.DeletePersona(ctx, userID, id); err != nil {
		return fmt.Errorf("failed to delete persona: %w", err)
	}
	return nil
}

// personaParams normalizes display masks on the way in so stored values
// match what the generator prints
func personaParams(id, userID string, input PersonaInput) db.PersonaParams {
	return db.PersonaParams{
		ID:          id,
		UserID:      userID,
		Nome:        strings.TrimSpace(input.Nome),
		CpfCnpj:     mask.CpfCnpj(input.CpfCnpj),
		RG:          strings.TrimSpace(input.RG),
		EstadoCivil: input.EstadoCivil,
		Profissao:   strings.TrimSpace(input.Profissao),
		Endereco:    strings.TrimSpace(input.Endereco),
		RegimeBens:  input.RegimeBens,
		Telefone:    mask.Phone(input.Telefone),
		Email:       strings.TrimSpace(input.Email),
	}
}

func dbPersonaToModel(r db.Persona) *model.Persona {
	return &model.Persona{
		ID:          r.ID,
		UserID:      r.UserID,
		Nome:        r.Nome,
		CpfCnpj:     r.CpfCnpj,
		RG:          r.RG,
		EstadoCivil: r.EstadoCivil,
		Profissao:   r.Profissao,
		Endereco:    r.Endereco,
		RegimeBens:  r.RegimeBens,
		Telefone:    r.Telefone,
		Email:       r.Email,
		CreatedAt:   r.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   r.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
