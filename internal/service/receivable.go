package service

import (
	"context"
	"fmt"
	"time"

	"imodocs/internal/db"
	"imodocs/internal/model"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

// ReceivableService tracks recebimentos (rent, installments, deposits) and
// schedules the due-soon and overdue background jobs for each one.
type ReceivableService struct {
	queries *db.Queries
	jobs    JobClient
	bus     EventBus
	log     *zap.Logger
}

func NewReceivableService(queries *db.Queries, jobs JobClient, bus EventBus, log *zap.Logger) *ReceivableService {
	return &ReceivableService{queries: queries, jobs: jobs, bus: bus, log: log}
}

type ReceivableInput struct {
	DocumentID *string `json:"documentId,omitempty"`
	Descricao  string  `json:"descricao"`
	Valor      float64 `json:"valor"`
	Vencimento string  `json:"vencimento"` // YYYY-MM-DD
}

func (s *ReceivableService) CreateReceivable(ctx context.Context, userID string, input ReceivableInput) (*model.Receivable, error) {
	if input.Descricao == "" {
		return nil, fmt.Errorf("descricao is required")
	}
	if input.Valor <= 0 {
		return nil, fmt.Errorf("valor must be positive")
	}
	due, err := time.Parse("2006-01-02", input.Vencimento)
	if err != nil {
		return nil, fmt.Errorf("invalid vencimento: %w", err)
	}

	// Document link is validated against the caller's own documents
	if input.DocumentID != nil {
		if _, err := s.queries.GetDocumentByID(ctx, userID, *input.DocumentID); err != nil {
			return nil, fmt.Errorf("document not found: %w", err)
		}
	}

	row, err := s.queries.CreateReceivable(ctx, db.ReceivableParams{
		ID:         ulid.Make().String(),
		UserID:     userID,
		DocumentID: input.DocumentID,
		Descricao:  input.Descricao,
		Valor:      input.Valor,
		Vencimento: due,
		Status:     string(model.ReceivablePending),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create receivable: %w", err)
	}

	// Job scheduling is best-effort; a missed reminder must not fail the
	// creation
	if s.jobs != nil {
		if err := s.jobs.ScheduleDueSoonNotification(row.ID, due); err != nil {
			s.log.Warn("Failed to schedule due-soon job", zap.String("receivable_id", row.ID), zap.Error(err))
		}
		if err := s.jobs.ScheduleOverdueCheck(row.ID, due); err != nil {
			s.log.Warn("Failed to schedule overdue job", zap.String("receivable_id", row.ID), zap.Error(err))
		}
	}

	return dbReceivableToModel(row), nil
}

func (s *ReceivableService) GetReceivable(ctx context.Context, userID, id string) (*model.Receivable, error) {
	row, err := s.queries.GetReceivableByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("receivable not found: %w", err)
	}
	return dbReceivableToModel(row), nil
}

func (s *ReceivableService) ListReceivables(ctx context.Context, userID string, status *string, limit, offset int) ([]*model.Receivable, error) {
	rows, err := s.queries.ListReceivables(ctx, userID, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list receivables: %w", err)
	}
	out := make([]*model.Receivable, 0, len(rows))
	for _, r := range rows {
		out = append(out, dbReceivableToModel(r))
	}
	return out, nil
}

// MarkPaid transitions a receivable to PAGO and stamps pago_em
func (s *ReceivableService) MarkPaid(ctx context.Context, userID, id string) (*model.Receivable, error) {
	row, err := s.queries.MarkReceivablePaid(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to mark receivable paid: %w", err)
	}
	_ = s.bus.PublishUser(userID, map[string]interface{}{
		"type":         "receivable.paid",
		"receivableId": id,
	})
	return dbReceivableToModel(row), nil
}

func (s *ReceivableService) DeleteReceivable(ctx context.Context, userID, id string) error {
	if err := s.queries.DeleteReceivable(ctx, userID, id); err != nil {
		return fmt.Errorf("failed to delete receivable: %w", err)
	}
	return nil
}

func dbReceivableToModel(r db.Receivable) *model.Receivable {
	return &model.Receivable{
		ID:         r.ID,
		UserID:     r.UserID,
		DocumentID: r.DocumentID,
		Descricao:  r.Descricao,
		Valor:      r.Valor,
		Vencimento: r.Vencimento.Format("2006-01-02"),
		Status:     model.ReceivableStatus(r.Status),
		PagoEm:     timePtrToString(r.PagoEm),
		CreatedAt:  r.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:  r.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02T15:04:05Z07:00")
	return &s
}
