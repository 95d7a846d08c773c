package jobs

import (
	"context"
	"fmt"
	"time"

	"imodocs/internal/db"
	"imodocs/internal/pubsub"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// dueSoonLead is how far before the due date the due-soon notification fires
const dueSoonLead = 72 * time.Hour

type JobServer struct {
	server *asynq.Server
	client *asynq.Client
	db     *db.Pool
	bus    *pubsub.Bus
	log    *zap.Logger
}

func NewJobServer(redisAddr string, dbPool *db.Pool, bus *pubsub.Bus, log *zap.Logger) (*JobServer, *asynq.Client) {
	redisOpt := asynq.RedisClientOpt{Addr: redisAddr}

	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
		},
	)

	client := asynq.NewClient(redisOpt)

	return &JobServer{
		server: server,
		client: client,
		db:     dbPool,
		bus:    bus,
		log:    log,
	}, client
}

func (js *JobServer) Start() error {
	mux := asynq.NewServeMux()

	mux.HandleFunc("receivable:due_soon", js.handleDueSoon)
	mux.HandleFunc("receivable:overdue", js.handleOverdue)

	return js.server.Start(mux)
}

func (js *JobServer) Stop() {
	js.server.Shutdown()
	js.client.Close()
}

// Job handlers

func (js *JobServer) handleDueSoon(ctx context.Context, t *asynq.Task) error {
	receivableID := string(t.Payload())

	rec, err := js.db.Queries.GetReceivableAnyUser(ctx, receivableID)
	if err != nil {
		return fmt.Errorf("failed to get receivable: %w", err)
	}

	// Only notify while still pending
	if rec.Status != "PENDENTE" {
		return nil
	}

	_ = js.bus.PublishUser(rec.UserID, map[string]interface{}{
		"type":         "receivable.due_soon",
		"receivableId": receivableID,
		"vencimento":   rec.Vencimento.Format(time.RFC3339),
		"valor":        rec.Valor,
	})

	js.log.Info("Due-soon notification sent", zap.String("receivable_id", receivableID))
	return nil
}

func (js *JobServer) handleOverdue(ctx context.Context, t *asynq.Task) error {
	receivableID := string(t.Payload())

	rec, err := js.db.Queries.GetReceivableAnyUser(ctx, receivableID)
	if err != nil {
		return fmt.Errorf("failed to get receivable: %w", err)
	}

	if rec.Status != "PENDENTE" {
		return nil
	}

	if err := js.db.Queries.MarkReceivableOverdue(ctx, receivableID); err != nil {
		return fmt.Errorf("failed to mark receivable overdue: %w", err)
	}

	_ = js.bus.PublishUser(rec.UserID, map[string]interface{}{
		"type":         "receivable.overdue",
		"receivableId": receivableID,
		"valor":        rec.Valor,
	})

	js.log.Info("Receivable marked overdue", zap.String("receivable_id", receivableID))
	return nil
}

// Schedule jobs

func ScheduleDueSoonNotification(client *asynq.Client, receivableID string, vencimento time.Time) error {
	notifyAt := vencimento.Add(-dueSoonLead)
	if notifyAt.Before(time.Now()) {
		return nil // Already inside the notification window
	}

	task := asynq.NewTask("receivable:due_soon", []byte(receivableID))
	_, err := client.Enqueue(task, asynq.ProcessIn(time.Until(notifyAt)))
	return err
}

func ScheduleOverdueCheck(client *asynq.Client, receivableID string, vencimento time.Time) error {
	if vencimento.Before(time.Now()) {
		// Due date already past: run the overdue check immediately
		task := asynq.NewTask("receivable:overdue", []byte(receivableID))
		_, err := client.Enqueue(task)
		return err
	}

	task := asynq.NewTask("receivable:overdue", []byte(receivableID))
	_, err := client.Enqueue(task, asynq.ProcessIn(time.Until(vencimento)))
	return err
}
