// Package postgresql implements campaign persistence for PostgreSQL.
package postgresql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	campaignDomain "github.com/allisson/leadmail/internal/campaign/domain"
	"github.com/allisson/leadmail/internal/database"
	apperrors "github.com/allisson/leadmail/internal/errors"
)

const campaignColumns = `id, name, subject, content, status, total_recipients, emails_sent, emails_failed,
	scheduled_at, enqueued_at, sent_at, completed_at, error_message, created_at, updated_at`

var sortColumns = map[campaignDomain.SortField]string{
	campaignDomain.SortByCreatedAt: "created_at",
	campaignDomain.SortByName:      "name",
	campaignDomain.SortByStatus:    "status",
	campaignDomain.SortBySentAt:    "sent_at",
}

// CampaignRepository implements campaign persistence for PostgreSQL.
type CampaignRepository struct {
	db *sql.DB
}

// NewCampaignRepository creates a new PostgreSQL campaign repository.
func NewCampaignRepository(db *sql.DB) *CampaignRepository {
	return &CampaignRepository{db: db}
}

// Create inserts a new campaign.
func (r *CampaignRepository) Create(ctx context.Context, c *campaignDomain.Campaign) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO campaigns (` + campaignColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	_, err := querier.ExecContext(ctx, query,
		c.ID,
		c.Name,
		c.Subject,
		c.Content,
		c.Status,
		c.TotalRecipients,
		c.EmailsSent,
		c.EmailsFailed,
		c.ScheduledAt,
		c.EnqueuedAt,
		c.SentAt,
		c.CompletedAt,
		c.ErrorMessage,
		c.CreatedAt,
		c.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create campaign")
	}
	return nil
}

// Get retrieves a campaign by id.
func (r *CampaignRepository) Get(ctx context.Context, id uuid.UUID) (*campaignDomain.Campaign, error) {
	return r.get(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)
}

// GetForUpdate retrieves and locks a campaign. Must be called inside a transaction.
func (r *CampaignRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*campaignDomain.Campaign, error) {
	return r.get(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1 FOR UPDATE`, id)
}

func (r *CampaignRepository) get(ctx context.Context, query string, id uuid.UUID) (*campaignDomain.Campaign, error) {
	querier := database.GetTx(ctx, r.db)

	campaign, err := scanCampaign(querier.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, campaignDomain.ErrCampaignNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get campaign")
	}
	return campaign, nil
}

// Update persists name, subject, content, status and schedule.
func (r *CampaignRepository) Update(ctx context.Context, c *campaignDomain.Campaign) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE campaigns
			  SET name = $1, subject = $2, content = $3, status = $4, scheduled_at = $5, updated_at = $6
			  WHERE id = $7`

	result, err := querier.ExecContext(ctx, query,
		c.Name, c.Subject, c.Content, c.Status, c.ScheduledAt, c.UpdatedAt, c.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to update campaign")
	}
	return requireAffected(result, campaignDomain.ErrCampaignNotFound)
}

// Delete removes a campaign together with its recipients, tasks and send records.
func (r *CampaignRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete campaign")
	}
	return requireAffected(result, campaignDomain.ErrCampaignNotFound)
}

// List returns a page of campaigns and the total number of matching rows.
func (r *CampaignRepository) List(
	ctx context.Context,
	filter campaignDomain.ListFilter,
) ([]*campaignDomain.Campaign, int64, error) {
	querier := database.GetTx(ctx, r.db)

	var conditions []string
	var args []any
	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR subject ILIKE $%d)", n, n))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	if err := querier.QueryRowContext(ctx, `SELECT COUNT(*) FROM campaigns`+where, args...).Scan(&total); err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to count campaigns")
	}

	args = append(args, filter.Limit, filter.Offset)
	query := fmt.Sprintf(`SELECT %s FROM campaigns%s ORDER BY %s LIMIT $%d OFFSET $%d`,
		campaignColumns, where, orderBy(filter), len(args)-1, len(args))

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to list campaigns")
	}
	defer func() { _ = rows.Close() }()

	campaigns := make([]*campaignDomain.Campaign, 0)
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, 0, apperrors.Wrap(err, "failed to scan campaign")
		}
		campaigns = append(campaigns, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to iterate campaigns")
	}
	return campaigns, total, nil
}

func orderBy(filter campaignDomain.ListFilter) string {
	column, ok := sortColumns[filter.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "ASC"
	if filter.SortDesc {
		direction = "DESC"
	}
	return fmt.Sprintf("%s %s NULLS LAST, id %s", column, direction, direction)
}

// Stats aggregates campaign counts and email counters per status.
func (r *CampaignRepository) Stats(ctx context.Context) (*campaignDomain.Stats, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT status, COUNT(*), COALESCE(SUM(emails_sent), 0), COALESCE(SUM(emails_failed), 0)
			  FROM campaigns GROUP BY status`

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to aggregate campaigns")
	}
	defer func() { _ = rows.Close() }()

	stats := &campaignDomain.Stats{ByStatus: make(map[campaignDomain.Status]int64)}
	for rows.Next() {
		var status campaignDomain.Status
		var count, sent, failed int64
		if err := rows.Scan(&status, &count, &sent, &failed); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan campaign stats")
		}
		stats.ByStatus[status] = count
		stats.TotalCampaigns += count
		stats.TotalEmailsSent += sent
		stats.TotalEmailsFailed += failed
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate campaign stats")
	}
	return stats, nil
}

// AddRecipients stores the recipient ids of a campaign in the given order.
func (r *CampaignRepository) AddRecipients(ctx context.Context, campaignID uuid.UUID, contactIDs []uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO campaign_recipients (campaign_id, contact_id, position) VALUES ($1, $2, $3)`
	for i, contactID := range contactIDs {
		if _, err := querier.ExecContext(ctx, query, campaignID, contactID, i); err != nil {
			return apperrors.Wrap(err, "failed to add campaign recipient")
		}
	}
	return nil
}

// ListRecipientIDs returns the recipient ids of a campaign in stored order.
func (r *CampaignRepository) ListRecipientIDs(ctx context.Context, campaignID uuid.UUID) ([]uuid.UUID, error) {
	querier := database.GetTx(ctx, r.db)

	rows, err := querier.QueryContext(ctx,
		`SELECT contact_id FROM campaign_recipients WHERE campaign_id = $1 ORDER BY position ASC`, campaignID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list campaign recipients")
	}
	defer func() { _ = rows.Close() }()

	return scanIDs(rows)
}

// ClaimForActivation marks a never-enqueued campaign as sending and enqueued.
func (r *CampaignRepository) ClaimForActivation(ctx context.Context, id uuid.UUID, now time.Time) (bool, error) {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE campaigns
			  SET status = 'sending', sent_at = $2, enqueued_at = $2, updated_at = $2
			  WHERE id = $1 AND enqueued_at IS NULL AND status IN ('scheduled', 'sending')`

	result, err := querier.ExecContext(ctx, query, id, now)
	if err != nil {
		return false, apperrors.Wrap(err, "failed to claim campaign for activation")
	}
	return affectedOne(result)
}

// SetTotalRecipients overwrites the recipient total.
func (r *CampaignRepository) SetTotalRecipients(ctx context.Context, id uuid.UUID, total int, now time.Time) error {
	querier := database.GetTx(ctx, r.db)

	_, err := querier.ExecContext(ctx,
		`UPDATE campaigns SET total_recipients = $2, updated_at = $3 WHERE id = $1`, id, total, now)
	if err != nil {
		return apperrors.Wrap(err, "failed to set campaign total recipients")
	}
	return nil
}

// ListDue returns ids of campaigns waiting for activation.
func (r *CampaignRepository) ListDue(
	ctx context.Context,
	now, staleBefore time.Time,
	limit int,
) ([]uuid.UUID, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id FROM campaigns
			  WHERE enqueued_at IS NULL
			    AND ((status = 'scheduled' AND scheduled_at <= $1) OR (status = 'sending' AND created_at <= $2))
			  ORDER BY COALESCE(scheduled_at, created_at) ASC
			  LIMIT $3`

	rows, err := querier.QueryContext(ctx, query, now, staleBefore, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list due campaigns")
	}
	defer func() { _ = rows.Close() }()

	return scanIDs(rows)
}

// MarkFailed fails a campaign whose activation never completed.
func (r *CampaignRepository) MarkFailed(ctx context.Context, id uuid.UUID, message string, now time.Time) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE campaigns
			  SET status = 'failed', error_message = $2, completed_at = $3, updated_at = $3
			  WHERE id = $1 AND enqueued_at IS NULL AND status IN ('scheduled', 'sending')`

	if _, err := querier.ExecContext(ctx, query, id, message, now); err != nil {
		return apperrors.Wrap(err, "failed to mark campaign failed")
	}
	return nil
}

// IncrementCounters adds to the sent and failed counters while the campaign is not drained.
func (r *CampaignRepository) IncrementCounters(
	ctx context.Context,
	id uuid.UUID,
	sent, failed int,
	now time.Time,
) (bool, error) {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE campaigns
			  SET emails_sent = emails_sent + $2, emails_failed = emails_failed + $3, updated_at = $4
			  WHERE id = $1 AND emails_sent + emails_failed < total_recipients`

	result, err := querier.ExecContext(ctx, query, id, sent, failed, now)
	if err != nil {
		return false, apperrors.Wrap(err, "failed to increment campaign counters")
	}
	return affectedOne(result)
}

// CompleteIfDrained marks a sending campaign completed once every recipient has an outcome.
func (r *CampaignRepository) CompleteIfDrained(ctx context.Context, id uuid.UUID, now time.Time) (bool, error) {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE campaigns
			  SET status = 'completed', completed_at = $2, updated_at = $2
			  WHERE id = $1 AND status = 'sending' AND emails_sent + emails_failed >= total_recipients`

	result, err := querier.ExecContext(ctx, query, id, now)
	if err != nil {
		return false, apperrors.Wrap(err, "failed to complete campaign")
	}
	return affectedOne(result)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCampaign(row rowScanner) (*campaignDomain.Campaign, error) {
	var c campaignDomain.Campaign
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Subject,
		&c.Content,
		&c.Status,
		&c.TotalRecipients,
		&c.EmailsSent,
		&c.EmailsFailed,
		&c.ScheduledAt,
		&c.EnqueuedAt,
		&c.SentAt,
		&c.CompletedAt,
		&c.ErrorMessage,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func scanIDs(rows *sql.Rows) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan id")
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate ids")
	}
	return ids, nil
}

func affectedOne(result sql.Result) (bool, error) {
	affected, err := result.RowsAffected()
	if err != nil {
		return false, apperrors.Wrap(err, "failed to read affected rows")
	}
	return affected > 0, nil
}

func requireAffected(result sql.Result, notFound error) error {
	ok, err := affectedOne(result)
	if err != nil {
		return err
	}
	if !ok {
		return notFound
	}
	return nil
}
