// Package mysql implements send record persistence for MySQL. UUIDs are stored as BINARY(16).
package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/leadmail/internal/database"
	apperrors "github.com/allisson/leadmail/internal/errors"
	historyDomain "github.com/allisson/leadmail/internal/history/domain"
)

const recordColumns = `id, recipient_task_id, campaign_id, contact_id, recipient_email, recipient_name, subject,
	content, status, provider_message_id, error_message, sent_at, opened_at, clicked_at, created_at, updated_at`

const deliveredStatuses = `('sent', 'opened', 'clicked')`

// SendRecordRepository implements send record persistence for MySQL.
type SendRecordRepository struct {
	db *sql.DB
}

// NewSendRecordRepository creates a new MySQL send record repository.
func NewSendRecordRepository(db *sql.DB) *SendRecordRepository {
	return &SendRecordRepository{db: db}
}

// Create inserts a send record. An existing record with the same id wins.
func (r *SendRecordRepository) Create(ctx context.Context, record *historyDomain.SendRecord) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT IGNORE INTO send_records (` + recordColumns + `)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := querier.ExecContext(ctx, query,
		database.UUIDBytes(record.ID),
		database.UUIDBytes(record.RecipientTaskID),
		database.UUIDBytes(record.CampaignID),
		database.UUIDBytes(record.ContactID),
		record.RecipientEmail,
		record.RecipientName,
		record.Subject,
		record.Content,
		record.Status,
		record.ProviderMessageID,
		record.ErrorMessage,
		record.SentAt,
		record.OpenedAt,
		record.ClickedAt,
		record.CreatedAt,
		record.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create send record")
	}
	return nil
}

// Get retrieves a send record by id.
func (r *SendRecordRepository) Get(ctx context.Context, id uuid.UUID) (*historyDomain.SendRecord, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + recordColumns + ` FROM send_records WHERE id = ?`

	record, err := scanRecord(querier.QueryRowContext(ctx, query, database.UUIDBytes(id)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, historyDomain.ErrSendRecordNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get send record")
	}
	return record, nil
}

// List returns a page of send records and the total number of matching rows.
func (r *SendRecordRepository) List(
	ctx context.Context,
	filter historyDomain.ListFilter,
) ([]*historyDomain.SendRecord, int64, error) {
	querier := database.GetTx(ctx, r.db)

	var conditions []string
	var args []any
	if filter.CampaignID != nil {
		conditions = append(conditions, "campaign_id = ?")
		args = append(args, database.UUIDBytes(*filter.CampaignID))
	}
	if filter.Status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, filter.Status)
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		conditions = append(conditions,
			"(LOWER(recipient_email) LIKE ? OR LOWER(recipient_name) LIKE ? OR LOWER(subject) LIKE ?)")
		args = append(args, pattern, pattern, pattern)
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	if err := querier.QueryRowContext(ctx, `SELECT COUNT(*) FROM send_records`+where, args...).Scan(&total); err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to count send records")
	}

	args = append(args, filter.Limit, filter.Offset)
	query := fmt.Sprintf(`SELECT %s FROM send_records%s ORDER BY %s LIMIT ? OFFSET ?`,
		recordColumns, where, orderBy(filter))

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to list send records")
	}
	defer func() { _ = rows.Close() }()

	records := make([]*historyDomain.SendRecord, 0)
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, 0, apperrors.Wrap(err, "failed to scan send record")
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to iterate send records")
	}
	return records, total, nil
}

// orderBy emulates NULLS LAST, which MySQL lacks.
func orderBy(filter historyDomain.ListFilter) string {
	column := "created_at"
	for _, allowed := range historyDomain.SortFields {
		if filter.SortBy == allowed {
			column = allowed
			break
		}
	}
	direction := "ASC"
	if filter.SortDesc {
		direction = "DESC"
	}
	return fmt.Sprintf("%s IS NULL, %s %s, id %s", column, column, direction, direction)
}

// Summary counts delivered, opened, clicked and failed records.
func (r *SendRecordRepository) Summary(
	ctx context.Context,
	campaignID *uuid.UUID,
) (*historyDomain.Summary, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT
				COALESCE(SUM(CASE WHEN status IN ` + deliveredStatuses + ` THEN 1 ELSE 0 END), 0),
				COALESCE(SUM(CASE WHEN opened_at IS NOT NULL THEN 1 ELSE 0 END), 0),
				COALESCE(SUM(CASE WHEN clicked_at IS NOT NULL THEN 1 ELSE 0 END), 0),
				COALESCE(SUM(CASE WHEN status IN ('failed', 'bounced') THEN 1 ELSE 0 END), 0)
			  FROM send_records`
	var args []any
	if campaignID != nil {
		query += ` WHERE campaign_id = ?`
		args = append(args, database.UUIDBytes(*campaignID))
	}

	var s historyDomain.Summary
	err := querier.QueryRowContext(ctx, query, args...).
		Scan(&s.TotalSent, &s.TotalOpened, &s.TotalClicked, &s.TotalFailed)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to summarize send records")
	}
	return &s, nil
}

// MarkOpened records the first open of a delivered message.
func (r *SendRecordRepository) MarkOpened(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE send_records
			  SET opened_at = ?,
			      status = CASE WHEN status = 'sent' THEN 'opened' ELSE status END,
			      updated_at = ?
			  WHERE id = ? AND opened_at IS NULL AND status IN ` + deliveredStatuses

	result, err := querier.ExecContext(ctx, query, at, at, database.UUIDBytes(id))
	if err != nil {
		return false, apperrors.Wrap(err, "failed to mark send record opened")
	}
	return affected(result)
}

// MarkClicked records the first click of a delivered message. A click implies an open.
func (r *SendRecordRepository) MarkClicked(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE send_records
			  SET clicked_at = ?,
			      opened_at = COALESCE(opened_at, ?),
			      status = 'clicked',
			      updated_at = ?
			  WHERE id = ? AND clicked_at IS NULL AND status IN ` + deliveredStatuses

	result, err := querier.ExecContext(ctx, query, at, at, at, database.UUIDBytes(id))
	if err != nil {
		return false, apperrors.Wrap(err, "failed to mark send record clicked")
	}
	return affected(result)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*historyDomain.SendRecord, error) {
	var s historyDomain.SendRecord
	var id, taskID, campaignID, contactID []byte
	err := row.Scan(
		&id,
		&taskID,
		&campaignID,
		&contactID,
		&s.RecipientEmail,
		&s.RecipientName,
		&s.Subject,
		&s.Content,
		&s.Status,
		&s.ProviderMessageID,
		&s.ErrorMessage,
		&s.SentAt,
		&s.OpenedAt,
		&s.ClickedAt,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	for _, pair := range []struct {
		dst *uuid.UUID
		raw []byte
	}{
		{&s.ID, id},
		{&s.RecipientTaskID, taskID},
		{&s.CampaignID, campaignID},
		{&s.ContactID, contactID},
	} {
		if *pair.dst, err = database.UUIDFromBytes(pair.raw); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal send record id")
		}
	}
	return &s, nil
}

func affected(result sql.Result) (bool, error) {
	n, err := result.RowsAffected()
	if err != nil {
		return false, apperrors.Wrap(err, "failed to read affected rows")
	}
	return n > 0, nil
}
