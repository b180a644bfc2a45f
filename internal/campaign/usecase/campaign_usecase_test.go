package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	campaignDomain "github.com/allisson/leadmail/internal/campaign/domain"
	campaignMocks "github.com/allisson/leadmail/internal/campaign/usecase/mocks"
	contactDomain "github.com/allisson/leadmail/internal/contact/domain"
	databaseMocks "github.com/allisson/leadmail/internal/database/mocks"
	apperrors "github.com/allisson/leadmail/internal/errors"
	queueDomain "github.com/allisson/leadmail/internal/queue/domain"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type campaignTestDeps struct {
	txManager  *databaseMocks.MockTxManager
	repo       *campaignMocks.MockCampaignRepository
	contacts   *campaignMocks.MockContactReader
	queue      *campaignMocks.MockRecipientQueue
	aggregator *campaignMocks.MockAggregator
	uc         *campaignUseCase
}

func newCampaignTestDeps(t *testing.T) *campaignTestDeps {
	d := &campaignTestDeps{
		txManager:  databaseMocks.NewMockTxManager(t),
		repo:       campaignMocks.NewMockCampaignRepository(t),
		contacts:   campaignMocks.NewMockContactReader(t),
		queue:      campaignMocks.NewMockRecipientQueue(t),
		aggregator: campaignMocks.NewMockAggregator(t),
	}
	d.uc = NewCampaignUseCase(
		Config{ActivationGracePeriod: time.Minute},
		d.txManager, d.repo, d.contacts, d.queue, d.aggregator, nil,
	).(*campaignUseCase)
	d.uc.now = func() time.Time { return testNow }
	return d
}

// runTx makes the mocked transaction manager execute its callback.
func (d *campaignTestDeps) runTx() {
	d.txManager.EXPECT().WithTx(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		})
}

func newContacts(n int) []*contactDomain.Contact {
	company := "ACME"
	contacts := make([]*contactDomain.Contact, n)
	for i := range contacts {
		contacts[i] = &contactDomain.Contact{
			ID:      uuid.Must(uuid.NewV7()),
			Name:    "Lead",
			Email:   "lead@example.com",
			Company: &company,
			Status:  contactDomain.StatusNew,
		}
	}
	return contacts
}

func contactIDs(contacts []*contactDomain.Contact) []uuid.UUID {
	ids := make([]uuid.UUID, len(contacts))
	for i, c := range contacts {
		ids[i] = c.ID
	}
	return ids
}

func TestCampaignUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_SendsImmediately", func(t *testing.T) {
		d := newCampaignTestDeps(t)
		contacts := newContacts(3)
		ids := contactIDs(contacts)

		var created *campaignDomain.Campaign
		d.runTx()
		d.contacts.EXPECT().ListByIDs(mock.Anything, ids).Return(contacts, nil)
		d.repo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Campaign")).
			Run(func(_ context.Context, c *campaignDomain.Campaign) { created = c }).
			Return(nil)
		d.repo.EXPECT().AddRecipients(mock.Anything, mock.Anything, ids).Return(nil)
		d.repo.EXPECT().ClaimForActivation(mock.Anything, mock.Anything, testNow).Return(true, nil)
		d.repo.EXPECT().ListRecipientIDs(mock.Anything, mock.Anything).Return(ids, nil)
		d.queue.EXPECT().Enqueue(mock.Anything, mock.Anything, mock.Anything).
			Run(func(_ context.Context, _ uuid.UUID, items []queueDomain.EnqueueItem) {
				require.Len(t, items, 3)
				assert.Equal(t, ids[0], items[0].ContactID)
				assert.Equal(t, "ACME", items[0].Recipient.Company)
				assert.Equal(t, "new", items[0].Recipient.Status)
			}).
			Return(nil)
		d.repo.EXPECT().Get(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, id uuid.UUID) (*campaignDomain.Campaign, error) {
				c := *created
				c.Status = campaignDomain.StatusSending
				return &c, nil
			})

		campaign, err := d.uc.Create(ctx, campaignDomain.CreateCampaignInput{
			Name:         "  Launch  ",
			Subject:      "Hi [name]",
			Content:      "<p>Hello</p>",
			RecipientIDs: ids,
		})
		require.NoError(t, err)
		assert.Equal(t, "Launch", campaign.Name)
		assert.Equal(t, 3, campaign.TotalRecipients)
		assert.Equal(t, campaignDomain.StatusSending, campaign.Status)
	})

	t.Run("Success_Scheduled", func(t *testing.T) {
		d := newCampaignTestDeps(t)
		contacts := newContacts(1)
		ids := contactIDs(contacts)
		future := testNow.Add(time.Hour)

		d.runTx()
		d.contacts.EXPECT().ListByIDs(mock.Anything, ids).Return(contacts, nil)
		d.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
		d.repo.EXPECT().AddRecipients(mock.Anything, mock.Anything, ids).Return(nil)

		campaign, err := d.uc.Create(ctx, campaignDomain.CreateCampaignInput{
			Name: "Later", Subject: "s", Content: "c", RecipientIDs: ids, ScheduledAt: &future,
		})
		require.NoError(t, err)
		assert.Equal(t, campaignDomain.StatusScheduled, campaign.Status)
		assert.Equal(t, future, *campaign.ScheduledAt)
	})

	t.Run("Success_PastScheduleSendsNow", func(t *testing.T) {
		d := newCampaignTestDeps(t)
		contacts := newContacts(1)
		ids := contactIDs(contacts)
		past := testNow.Add(-time.Hour)

		d.runTx()
		d.contacts.EXPECT().ListByIDs(mock.Anything, ids).Return(contacts, nil)
		d.repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(c *campaignDomain.Campaign) bool {
			return c.Status == campaignDomain.StatusSending && c.ScheduledAt == nil
		})).Return(nil)
		d.repo.EXPECT().AddRecipients(mock.Anything, mock.Anything, ids).Return(nil)
		d.repo.EXPECT().ClaimForActivation(mock.Anything, mock.Anything, testNow).Return(true, nil)
		d.repo.EXPECT().ListRecipientIDs(mock.Anything, mock.Anything).Return(ids, nil)
		d.queue.EXPECT().Enqueue(mock.Anything, mock.Anything, mock.Anything).Return(nil)
		d.repo.EXPECT().Get(mock.Anything, mock.Anything).Return(&campaignDomain.Campaign{
			Status: campaignDomain.StatusSending,
		}, nil)

		_, err := d.uc.Create(ctx, campaignDomain.CreateCampaignInput{
			Name: "Now", Subject: "s", Content: "c", RecipientIDs: ids, ScheduledAt: &past,
		})
		require.NoError(t, err)
	})

	t.Run("Success_Draft", func(t *testing.T) {
		d := newCampaignTestDeps(t)
		contacts := newContacts(2)
		ids := contactIDs(contacts)

		d.runTx()
		d.contacts.EXPECT().ListByIDs(mock.Anything, ids).Return(contacts, nil)
		d.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
		d.repo.EXPECT().AddRecipients(mock.Anything, mock.Anything, ids).Return(nil)

		campaign, err := d.uc.Create(ctx, campaignDomain.CreateCampaignInput{
			Name: "Draft", Subject: "s", Content: "c", RecipientIDs: ids, Draft: true,
		})
		require.NoError(t, err)
		assert.Equal(t, campaignDomain.StatusDraft, campaign.Status)
	})

	t.Run("Success_ActivationFailureReturnsFailedCampaign", func(t *testing.T) {
		d := newCampaignTestDeps(t)
		contacts := newContacts(1)
		ids := contactIDs(contacts)

		d.runTx()
		d.contacts.EXPECT().ListByIDs(mock.Anything, ids).Return(contacts, nil).Once()
		d.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
		d.repo.EXPECT().AddRecipients(mock.Anything, mock.Anything, ids).Return(nil)
		d.repo.EXPECT().ClaimForActivation(mock.Anything, mock.Anything, testNow).Return(true, nil)
		d.repo.EXPECT().ListRecipientIDs(mock.Anything, mock.Anything).Return(ids, nil)
		d.contacts.EXPECT().ListByIDs(mock.Anything, ids).Return([]*contactDomain.Contact{}, nil).Once()
		d.aggregator.EXPECT().MarkFailed(mock.Anything, mock.Anything, mock.Anything).Return(nil)
		d.repo.EXPECT().Get(mock.Anything, mock.Anything).Return(&campaignDomain.Campaign{
			Status: campaignDomain.StatusFailed,
		}, nil)

		campaign, err := d.uc.Create(ctx, campaignDomain.CreateCampaignInput{
			Name: "Now", Subject: "s", Content: "c", RecipientIDs: ids,
		})
		require.NoError(t, err)
		assert.Equal(t, campaignDomain.StatusFailed, campaign.Status)
	})

	t.Run("Error_NoRecipients", func(t *testing.T) {
		d := newCampaignTestDeps(t)

		_, err := d.uc.Create(ctx, campaignDomain.CreateCampaignInput{Name: "x"})
		assert.ErrorIs(t, err, campaignDomain.ErrNoRecipients)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("Error_DuplicateRecipients", func(t *testing.T) {
		d := newCampaignTestDeps(t)
		id := uuid.Must(uuid.NewV7())

		_, err := d.uc.Create(ctx, campaignDomain.CreateCampaignInput{
			Name: "x", RecipientIDs: []uuid.UUID{id, id},
		})
		assert.ErrorIs(t, err, campaignDomain.ErrDuplicateRecipients)
	})

	t.Run("Error_UnknownRecipients", func(t *testing.T) {
		d := newCampaignTestDeps(t)
		contacts := newContacts(1)
		missing := uuid.Must(uuid.NewV7())
		ids := []uuid.UUID{contacts[0].ID, missing}

		d.contacts.EXPECT().ListByIDs(mock.Anything, ids).Return(contacts, nil)

		_, err := d.uc.Create(ctx, campaignDomain.CreateCampaignInput{Name: "x", RecipientIDs: ids})
		assert.ErrorIs(t, err, campaignDomain.ErrRecipientsNotFound)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		assert.Contains(t, err.Error(), missing.String())
	})
}

func TestCampaignUseCase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_ScheduleDraft", func(t *testing.T) {
		d := newCampaignTestDeps(t)
		campaign := &campaignDomain.Campaign{ID: uuid.Must(uuid.NewV7()), Name: "Old", Status: campaignDomain.StatusDraft}
		name := "New"
		at := testNow.Add(time.Hour)

		d.runTx()
		d.repo.EXPECT().GetForUpdate(mock.Anything, campaign.ID).Return(campaign, nil)
		d.repo.EXPECT().Update(mock.Anything, campaign).Return(nil)

		updated, err := d.uc.Update(ctx, campaign.ID, campaignDomain.UpdateCampaignInput{Name: &name, ScheduledAt: &at})
		require.NoError(t, err)
		assert.Equal(t, "New", updated.Name)
		assert.Equal(t, campaignDomain.StatusScheduled, updated.Status)
		assert.Equal(t, testNow, updated.UpdatedAt)
	})

	t.Run("Success_ClearSchedule", func(t *testing.T) {
		d := newCampaignTestDeps(t)
		at := testNow.Add(time.Hour)
		campaign := &campaignDomain.Campaign{
			ID: uuid.Must(uuid.NewV7()), Status: campaignDomain.StatusScheduled, ScheduledAt: &at,
		}

		d.runTx()
		d.repo.EXPECT().GetForUpdate(mock.Anything, campaign.ID).Return(campaign, nil)
		d.repo.EXPECT().Update(mock.Anything, campaign).Return(nil)

		updated, err := d.uc.Update(ctx, campaign.ID, campaignDomain.UpdateCampaignInput{ClearSchedule: true})
		require.NoError(t, err)
		assert.Equal(t, campaignDomain.StatusDraft, updated.Status)
		assert.Nil(t, updated.ScheduledAt)
	})

	t.Run("Error_WhileSending", func(t *testing.T) {
		d := newCampaignTestDeps(t)
		campaign := &campaignDomain.Campaign{ID: uuid.Must(uuid.NewV7()), Status: campaignDomain.StatusSending}
		subject := "changed"

		d.runTx()
		d.repo.EXPECT().GetForUpdate(mock.Anything, campaign.ID).Return(campaign, nil)

		_, err := d.uc.Update(ctx, campaign.ID, campaignDomain.UpdateCampaignInput{Subject: &subject})
		assert.ErrorIs(t, err, campaignDomain.ErrCampaignNotEditable)
		assert.ErrorIs(t, err, apperrors.ErrInvalidState)
	})

	t.Run("Error_Completed", func(t *testing.T) {
		d := newCampaignTestDeps(t)
		campaign := &campaignDomain.Campaign{ID: uuid.Must(uuid.NewV7()), Status: campaignDomain.StatusCompleted}

		d.runTx()
		d.repo.EXPECT().GetForUpdate(mock.Anything, campaign.ID).Return(campaign, nil)

		_, err := d.uc.Update(ctx, campaign.ID, campaignDomain.UpdateCampaignInput{})
		assert.ErrorIs(t, err, apperrors.ErrInvalidState)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		d := newCampaignTestDeps(t)
		id := uuid.Must(uuid.NewV7())

		d.runTx()
		d.repo.EXPECT().GetForUpdate(mock.Anything, id).Return(nil, campaignDomain.ErrCampaignNotFound)

		_, err := d.uc.Update(ctx, id, campaignDomain.UpdateCampaignInput{})
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestCampaignUseCase_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		d := newCampaignTestDeps(t)
		campaign := &campaignDomain.Campaign{ID: uuid.Must(uuid.NewV7()), Status: campaignDomain.StatusCompleted}

		d.runTx()
		d.repo.EXPECT().GetForUpdate(mock.Anything, campaign.ID).Return(campaign, nil)
		d.repo.EXPECT().Delete(mock.Anything, campaign.ID).Return(nil)

		assert.NoError(t, d.uc.Delete(ctx, campaign.ID))
	})

	t.Run("Error_WhileSending", func(t *testing.T) {
		d := newCampaignTestDeps(t)
		campaign := &campaignDomain.Campaign{ID: uuid.Must(uuid.NewV7()), Status: campaignDomain.StatusSending}

		d.runTx()
		d.repo.EXPECT().GetForUpdate(mock.Anything, campaign.ID).Return(campaign, nil)

		assert.ErrorIs(t, d.uc.Delete(ctx, campaign.ID), campaignDomain.ErrCampaignSending)
	})
}

func TestCampaignUseCase_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		d := newCampaignTestDeps(t)
		campaign := &campaignDomain.Campaign{ID: uuid.Must(uuid.NewV7()), Status: campaignDomain.StatusScheduled}

		d.runTx()
		d.repo.EXPECT().GetForUpdate(mock.Anything, campaign.ID).Return(campaign, nil)
		d.repo.EXPECT().Update(mock.Anything, campaign).Return(nil)

		cancelled, err := d.uc.Cancel(ctx, campaign.ID)
		require.NoError(t, err)
		assert.Equal(t, campaignDomain.StatusCancelled, cancelled.Status)
	})

	t.Run("Error_AlreadySending", func(t *testing.T) {
		d := newCampaignTestDeps(t)
		campaign := &campaignDomain.Campaign{ID: uuid.Must(uuid.NewV7()), Status: campaignDomain.StatusSending}

		d.runTx()
		d.repo.EXPECT().GetForUpdate(mock.Anything, campaign.ID).Return(campaign, nil)

		_, err := d.uc.Cancel(ctx, campaign.ID)
		assert.ErrorIs(t, err, campaignDomain.ErrCampaignNotCancellable)
	})
}

func TestCampaignUseCase_SendNow(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		d := newCampaignTestDeps(t)
		contacts := newContacts(2)
		ids := contactIDs(contacts)
		campaign := &campaignDomain.Campaign{ID: uuid.Must(uuid.NewV7()), Status: campaignDomain.StatusDraft}

		d.runTx()
		d.repo.EXPECT().GetForUpdate(mock.Anything, campaign.ID).Return(campaign, nil)
		d.repo.EXPECT().Update(mock.Anything, mock.MatchedBy(func(c *campaignDomain.Campaign) bool {
			return c.Status == campaignDomain.StatusSending
		})).Return(nil)
		d.repo.EXPECT().ClaimForActivation(mock.Anything, campaign.ID, testNow).Return(true, nil)
		d.repo.EXPECT().ListRecipientIDs(mock.Anything, campaign.ID).Return(ids, nil)
		d.contacts.EXPECT().ListByIDs(mock.Anything, ids).Return(contacts, nil)
		d.queue.EXPECT().Enqueue(mock.Anything, campaign.ID, mock.Anything).Return(nil)
		d.repo.EXPECT().Get(mock.Anything, campaign.ID).Return(campaign, nil)

		result, err := d.uc.SendNow(ctx, campaign.ID)
		require.NoError(t, err)
		assert.Equal(t, campaignDomain.StatusSending, result.Status)
	})

	t.Run("Error_NotEditable", func(t *testing.T) {
		d := newCampaignTestDeps(t)
		campaign := &campaignDomain.Campaign{ID: uuid.Must(uuid.NewV7()), Status: campaignDomain.StatusCancelled}

		d.runTx()
		d.repo.EXPECT().GetForUpdate(mock.Anything, campaign.ID).Return(campaign, nil)

		_, err := d.uc.SendNow(ctx, campaign.ID)
		assert.ErrorIs(t, err, apperrors.ErrInvalidState)
	})
}

func TestCampaignUseCase_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_DefaultSort", func(t *testing.T) {
		d := newCampaignTestDeps(t)
		expected := campaignDomain.ListFilter{
			Search: "launch", SortBy: campaignDomain.SortByCreatedAt, SortDesc: true, Limit: 10,
		}

		d.repo.EXPECT().List(mock.Anything, expected).Return([]*campaignDomain.Campaign{}, int64(0), nil)

		_, total, err := d.uc.List(ctx, campaignDomain.ListFilter{Search: " launch ", Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(0), total)
	})
}

func TestCampaignUseCase_Stats(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		d := newCampaignTestDeps(t)
		d.repo.EXPECT().Stats(mock.Anything).Return(&campaignDomain.Stats{
			TotalCampaigns:    4,
			TotalEmailsSent:   2,
			TotalEmailsFailed: 1,
			ByStatus:          map[campaignDomain.Status]int64{campaignDomain.StatusCompleted: 4},
		}, nil)

		stats, err := d.uc.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, 66.67, stats.SuccessRate)
		assert.Len(t, stats.ByStatus, len(campaignDomain.Statuses))
		assert.Equal(t, int64(4), stats.ByStatus[campaignDomain.StatusCompleted])
		assert.Equal(t, int64(0), stats.ByStatus[campaignDomain.StatusSending])
	})

	t.Run("Success_NothingAttempted", func(t *testing.T) {
		d := newCampaignTestDeps(t)
		d.repo.EXPECT().Stats(mock.Anything).Return(&campaignDomain.Stats{}, nil)

		stats, err := d.uc.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, float64(0), stats.SuccessRate)
	})
}
