package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	campaignMocks "github.com/allisson/leadmail/internal/campaign/usecase/mocks"
	queueDomain "github.com/allisson/leadmail/internal/queue/domain"
)

func newTestAggregator(t *testing.T) (*aggregator, *campaignMocks.MockCampaignRepository) {
	repo := campaignMocks.NewMockCampaignRepository(t)
	a := NewAggregator(repo, nil).(*aggregator)
	a.now = func() time.Time { return testNow }
	return a, repo
}

func TestAggregator_RecordOutcome(t *testing.T) {
	ctx := context.Background()
	id := uuid.Must(uuid.NewV7())

	t.Run("Success_Sent", func(t *testing.T) {
		a, repo := newTestAggregator(t)
		repo.EXPECT().IncrementCounters(ctx, id, 1, 0, testNow).Return(true, nil)
		repo.EXPECT().CompleteIfDrained(ctx, id, testNow).Return(false, nil)

		assert.NoError(t, a.RecordOutcome(ctx, id, queueDomain.TaskStateSent))
	})

	t.Run("Success_FailedCompletes", func(t *testing.T) {
		a, repo := newTestAggregator(t)
		repo.EXPECT().IncrementCounters(ctx, id, 0, 1, testNow).Return(true, nil)
		repo.EXPECT().CompleteIfDrained(ctx, id, testNow).Return(true, nil)

		assert.NoError(t, a.RecordOutcome(ctx, id, queueDomain.TaskStateFailed))
	})

	t.Run("Success_BouncedCountsAsFailed", func(t *testing.T) {
		a, repo := newTestAggregator(t)
		repo.EXPECT().IncrementCounters(ctx, id, 0, 1, testNow).Return(true, nil)
		repo.EXPECT().CompleteIfDrained(ctx, id, testNow).Return(false, nil)

		assert.NoError(t, a.RecordOutcome(ctx, id, queueDomain.TaskStateBounced))
	})

	t.Run("Success_AlreadyDrainedIsIgnored", func(t *testing.T) {
		a, repo := newTestAggregator(t)
		repo.EXPECT().IncrementCounters(ctx, id, 1, 0, testNow).Return(false, nil)

		assert.NoError(t, a.RecordOutcome(ctx, id, queueDomain.TaskStateSent))
		repo.AssertNotCalled(t, "CompleteIfDrained", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Error_NonTerminalState", func(t *testing.T) {
		a, _ := newTestAggregator(t)
		assert.ErrorIs(t, a.RecordOutcome(ctx, id, queueDomain.TaskStatePending), queueDomain.ErrInvalidOutcome)
	})

	t.Run("Error_Increment", func(t *testing.T) {
		a, repo := newTestAggregator(t)
		repo.EXPECT().IncrementCounters(ctx, id, 1, 0, testNow).Return(false, assert.AnError)

		assert.ErrorIs(t, a.RecordOutcome(ctx, id, queueDomain.TaskStateSent), assert.AnError)
	})
}

func TestAggregator_MarkFailed(t *testing.T) {
	ctx := context.Background()
	id := uuid.Must(uuid.NewV7())

	a, repo := newTestAggregator(t)
	repo.EXPECT().MarkFailed(ctx, id, "boom", testNow).Return(nil)

	assert.NoError(t, a.MarkFailed(ctx, id, "boom"))
}
