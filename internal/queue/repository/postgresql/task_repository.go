// Package postgresql implements recipient task persistence for PostgreSQL.
package postgresql

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/leadmail/internal/database"
	apperrors "github.com/allisson/leadmail/internal/errors"
	"github.com/allisson/leadmail/internal/queue/domain"
)

const taskColumns = `t.id, t.campaign_id, t.contact_id, t.position, t.recipient_name, t.recipient_email,
	t.recipient_company, t.recipient_phone, t.recipient_status, t.state, t.attempt_count, t.last_error,
	t.lease_owner, t.lease_expires_at, t.available_at, t.created_at, t.updated_at`

// TaskRepository implements recipient task persistence for PostgreSQL.
type TaskRepository struct {
	db *sql.DB
}

// NewTaskRepository creates a new PostgreSQL task repository.
func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create inserts a new task.
func (r *TaskRepository) Create(ctx context.Context, task *domain.RecipientTask) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO recipient_tasks (id, campaign_id, contact_id, position, recipient_name,
			  recipient_email, recipient_company, recipient_phone, recipient_status, state, attempt_count,
			  last_error, lease_owner, lease_expires_at, available_at, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

	_, err := querier.ExecContext(ctx, query,
		task.ID,
		task.CampaignID,
		task.ContactID,
		task.Position,
		task.Recipient.Name,
		task.Recipient.Email,
		task.Recipient.Company,
		task.Recipient.Phone,
		task.Recipient.Status,
		task.State,
		task.AttemptCount,
		task.LastError,
		task.LeaseOwner,
		task.LeaseExpiresAt,
		task.AvailableAt,
		task.CreatedAt,
		task.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create recipient task")
	}
	return nil
}

// LockNextPending locks the oldest leasable task. Must be called inside a transaction.
func (r *TaskRepository) LockNextPending(ctx context.Context, now time.Time) (*domain.RecipientTask, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + taskColumns + `
			  FROM recipient_tasks t
			  JOIN campaigns c ON c.id = t.campaign_id
			  WHERE t.state = $1 AND t.available_at <= $2 AND c.status = 'sending'
			  ORDER BY t.created_at ASC, t.position ASC
			  LIMIT 1
			  FOR UPDATE OF t SKIP LOCKED`

	task, err := scanTask(querier.QueryRowContext(ctx, query, domain.TaskStatePending, now))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, apperrors.Wrap(err, "failed to lock next pending task")
	}
	return task, nil
}

// LockByID locks a task row. Must be called inside a transaction.
func (r *TaskRepository) LockByID(ctx context.Context, id uuid.UUID) (*domain.RecipientTask, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + taskColumns + ` FROM recipient_tasks t WHERE t.id = $1 FOR UPDATE`

	task, err := scanTask(querier.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, apperrors.Wrap(err, "failed to lock task")
	}
	return task, nil
}

// Update persists the mutable state of a task.
func (r *TaskRepository) Update(ctx context.Context, task *domain.RecipientTask) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE recipient_tasks
			  SET state = $1, attempt_count = $2, last_error = $3, lease_owner = $4,
			      lease_expires_at = $5, available_at = $6, updated_at = $7
			  WHERE id = $8`

	result, err := querier.ExecContext(ctx, query,
		task.State,
		task.AttemptCount,
		task.LastError,
		task.LeaseOwner,
		task.LeaseExpiresAt,
		task.AvailableAt,
		task.UpdatedAt,
		task.ID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update recipient task")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to read affected rows")
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

// ListExpiredLeases returns ids of sending tasks whose lease ended at or before now.
func (r *TaskRepository) ListExpiredLeases(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id FROM recipient_tasks
			  WHERE state = $1 AND lease_expires_at <= $2
			  ORDER BY lease_expires_at ASC
			  LIMIT $3`

	rows, err := querier.QueryContext(ctx, query, domain.TaskStateSending, now, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list expired leases")
	}
	defer func() { _ = rows.Close() }()

	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan task id")
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate expired leases")
	}
	return ids, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*domain.RecipientTask, error) {
	var t domain.RecipientTask
	err := row.Scan(
		&t.ID,
		&t.CampaignID,
		&t.ContactID,
		&t.Position,
		&t.Recipient.Name,
		&t.Recipient.Email,
		&t.Recipient.Company,
		&t.Recipient.Phone,
		&t.Recipient.Status,
		&t.State,
		&t.AttemptCount,
		&t.LastError,
		&t.LeaseOwner,
		&t.LeaseExpiresAt,
		&t.AvailableAt,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
