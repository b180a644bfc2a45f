// Package mysql implements recipient task persistence for MySQL. UUIDs are stored as BINARY(16).
package mysql

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

// TaskRepository implements recipient task persistence for MySQL.
type TaskRepository struct {
	db *sql.DB
}

// NewTaskRepository creates a new MySQL task repository.
func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create inserts a new task.
func (r *TaskRepository) Create(ctx context.Context, task *domain.RecipientTask) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO recipient_tasks (id, campaign_id, contact_id, position, recipient_name,
			  recipient_email, recipient_company, recipient_phone, recipient_status, state, attempt_count,
			  last_error, lease_owner, lease_expires_at, available_at, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := querier.ExecContext(ctx, query,
		database.UUIDBytes(task.ID),
		database.UUIDBytes(task.CampaignID),
		database.UUIDBytes(task.ContactID),
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
			  WHERE t.state = ? AND t.available_at <= ? AND c.status = 'sending'
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

	query := `SELECT ` + taskColumns + ` FROM recipient_tasks t WHERE t.id = ? FOR UPDATE`

	task, err := scanTask(querier.QueryRowContext(ctx, query, database.UUIDBytes(id)))
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
			  SET state = ?, attempt_count = ?, last_error = ?, lease_owner = ?,
			      lease_expires_at = ?, available_at = ?, updated_at = ?
			  WHERE id = ?`

	_, err := querier.ExecContext(ctx, query,
		task.State,
		task.AttemptCount,
		task.LastError,
		task.LeaseOwner,
		task.LeaseExpiresAt,
		task.AvailableAt,
		task.UpdatedAt,
		database.UUIDBytes(task.ID),
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update recipient task")
	}
	return nil
}

// ListExpiredLeases returns ids of sending tasks whose lease ended at or before now.
func (r *TaskRepository) ListExpiredLeases(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id FROM recipient_tasks
			  WHERE state = ? AND lease_expires_at <= ?
			  ORDER BY lease_expires_at ASC
			  LIMIT ?`

	rows, err := querier.QueryContext(ctx, query, domain.TaskStateSending, now, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list expired leases")
	}
	defer func() { _ = rows.Close() }()

	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan task id")
		}
		id, err := database.UUIDFromBytes(raw)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal task id")
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
	var id, campaignID, contactID []byte
	err := row.Scan(
		&id,
		&campaignID,
		&contactID,
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
	if t.ID, err = database.UUIDFromBytes(id); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal task id")
	}
	if t.CampaignID, err = database.UUIDFromBytes(campaignID); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal campaign id")
	}
	if t.ContactID, err = database.UUIDFromBytes(contactID); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal contact id")
	}
	return &t, nil
}
