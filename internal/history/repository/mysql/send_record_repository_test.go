package mysql

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/leadmail/internal/database"
	historyDomain "github.com/allisson/leadmail/internal/history/domain"
)

func TestSendRecordRepository_Get(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	id := uuid.Must(uuid.NewV7())
	taskID := uuid.Must(uuid.NewV7())
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("FROM send_records WHERE id = ?")).
		WithArgs(database.UUIDBytes(id)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "recipient_task_id", "campaign_id", "contact_id", "recipient_email", "recipient_name",
			"subject", "content", "status", "provider_message_id", "error_message", "sent_at", "opened_at",
			"clicked_at", "created_at", "updated_at",
		}).AddRow(
			database.UUIDBytes(id), database.UUIDBytes(taskID),
			database.UUIDBytes(uuid.Must(uuid.NewV7())), database.UUIDBytes(uuid.Must(uuid.NewV7())),
			"ana@example.com", "Ana", "Hello", "<p>Hi</p>", "sent", nil, nil, now, nil, nil, now, now,
		))

	record, err := NewSendRecordRepository(db).Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, record.ID)
	assert.Equal(t, taskID, record.RecipientTaskID)
	assert.Equal(t, historyDomain.StatusSent, record.Status)
}

func TestSendRecordRepository_MarkClicked(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	id := uuid.Must(uuid.NewV7())
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("WHERE id = ? AND clicked_at IS NULL")).
		WithArgs(at, at, at, database.UUIDBytes(id)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	changed, err := NewSendRecordRepository(db).MarkClicked(ctx, id, at)
	require.NoError(t, err)
	assert.True(t, changed)
}

func TestOrderBy(t *testing.T) {
	assert.Equal(t,
		"sent_at IS NULL, sent_at DESC, id DESC",
		orderBy(historyDomain.ListFilter{SortBy: "sent_at", SortDesc: true}),
	)
}
