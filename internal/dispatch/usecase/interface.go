// Package usecase implements the dispatch workers that drain the recipient queue
// through a mail transport.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	campaignDomain "github.com/allisson/leadmail/internal/campaign/domain"
	historyDomain "github.com/allisson/leadmail/internal/history/domain"
	queueDomain "github.com/allisson/leadmail/internal/queue/domain"
)

// TaskQueue is the part of the recipient queue a worker drives.
type TaskQueue interface {
	Lease(ctx context.Context, workerID string) (*queueDomain.RecipientTask, error)
	Complete(ctx context.Context, taskID uuid.UUID, workerID string, outcome queueDomain.Outcome) error
	Retry(ctx context.Context, taskID uuid.UUID, workerID string, cause string, availableAt time.Time) error
}

// CampaignReader loads the campaign a task belongs to.
type CampaignReader interface {
	Get(ctx context.Context, id uuid.UUID) (*campaignDomain.Campaign, error)
}

// RecordWriter persists send records. Create must ignore a record whose id already exists.
type RecordWriter interface {
	Create(ctx context.Context, record *historyDomain.SendRecord) error
}

// ContactToucher stamps the last time a contact was emailed.
type ContactToucher interface {
	TouchLastContacted(ctx context.Context, id uuid.UUID, at time.Time) error
}
