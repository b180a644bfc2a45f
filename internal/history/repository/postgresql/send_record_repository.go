// Package postgresql implements send record persistence for PostgreSQL.
package postgresql

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

// deliveredStatuses are the statuses a record can be in once the message was accepted.
const deliveredStatuses = `('sent', 'opened', 'clicked')`

// SendRecordRepository implements send record persistence for PostgreSQL.
type SendRecordRepository struct {
	db *sql.DB
}

// NewSendRecordRepository creates a new PostgreSQL send record repository.
func NewSendRecordRepository(db *sql.DB) *SendRecordRepository {
	return &SendRecordRepository{db: db}
}

// Create inserts a send record. An existing record with the same id wins.
func (r *SendRecordRepository) Create(ctx context.Context, record *historyDomain.SendRecord) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO send_records (` + recordColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
			  ON CONFLICT (id) DO NOTHING`

	_, err := querier.ExecContext(ctx, query,
		record.ID,
		record.RecipientTaskID,
		record.CampaignID,
		record.ContactID,
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

	query := `SELECT ` + recordColumns + ` FROM send_records WHERE id = $1`

	record, err := scanRecord(querier.QueryRowContext(ctx, query, id))
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
		args = append(args, *filter.CampaignID)
		conditions = append(conditions, fmt.Sprintf("campaign_id = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		conditions = append(conditions,
			fmt.Sprintf("(recipient_email ILIKE $%d OR recipient_name ILIKE $%d OR subject ILIKE $%d)", n, n, n))
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
	query := fmt.Sprintf(`SELECT %s FROM send_records%s ORDER BY %s LIMIT $%d OFFSET $%d`,
		recordColumns, where, orderBy(filter), len(args)-1, len(args))

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
	return fmt.Sprintf("%s %s NULLS LAST, id %s", column, direction, direction)
}

// Summary counts delivered, opened, clicked and failed records.
func (r *SendRecordRepository) Summary(
	ctx context.Context,
	campaignID *uuid.UUID,
) (*historyDomain.Summary, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT
				COUNT(*) FILTER (WHERE status IN ` + deliveredStatuses + `),
				COUNT(*) FILTER (WHERE opened_at IS NOT NULL),
				COUNT(*) FILTER (WHERE clicked_at IS NOT NULL),
				COUNT(*) FILTER (WHERE status IN ('failed', 'bounced'))
			  FROM send_records`
	var args []any
	if campaignID != nil {
		query += ` WHERE campaign_id = $1`
		args = append(args, *campaignID)
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
			  SET opened_at = $1,
			      status = CASE WHEN status = 'sent' THEN 'opened' ELSE status END,
			      updated_at = $1
			  WHERE id = $2 AND opened_at IS NULL AND status IN ` + deliveredStatuses

	result, err := querier.ExecContext(ctx, query, at, id)
	if err != nil {
		return false, apperrors.Wrap(err, "failed to mark send record opened")
	}
	return affected(result)
}

// MarkClicked records the first click of a delivered message. A click implies an open.
func (r *SendRecordRepository) MarkClicked(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE send_records
			  SET clicked_at = $1,
			      opened_at = COALESCE(opened_at, $1),
			      status = 'clicked',
			      updated_at = $1
			  WHERE id = $2 AND clicked_at IS NULL AND status IN ` + deliveredStatuses

	result, err := querier.ExecContext(ctx, query, at, id)
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
	err := row.Scan(
		&s.ID,
		&s.RecipientTaskID,
		&s.CampaignID,
		&s.ContactID,
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
	return &s, nil
}

func affected(result sql.Result) (bool, error) {
	n, err := result.RowsAffected()
	if err != nil {
		return false, apperrors.Wrap(err, "failed to read affected rows")
	}
	return n > 0, nil
}
