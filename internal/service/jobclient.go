package service

import (
	"time"

	"imodocs/internal/jobs"

	"github.com/hibiken/asynq"
)

// JobClient schedules background jobs for receivable lifecycle transitions
type JobClient interface {
	ScheduleDueSoonNotification(receivableID string, vencimento time.Time) error
	ScheduleOverdueCheck(receivableID string, vencimento time.Time) error
}

// AsynqJobClient implements JobClient using asynq
type AsynqJobClient struct {
	client *asynq.Client
}

func NewAsynqJobClient(client *asynq.Client) *AsynqJobClient {
	return &AsynqJobClient{client: client}
}

func (c *AsynqJobClient) ScheduleDueSoonNotification(receivableID string, vencimento time.Time) error {
	return jobs.ScheduleDueSoonNotification(c.client, receivableID, vencimento)
}

func (c *AsynqJobClient) ScheduleOverdueCheck(receivableID string, vencimento time.Time) error {
	return jobs.ScheduleOverdueCheck(c.client, receivableID, vencimento)
}
