package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/allisson/leadmail/internal/queue/domain"
)

// MockTxManager is a mock implementation of database.TxManager
type MockTxManager struct {
	mock.Mock
}

func (m *MockTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, fn)
	if args.Get(0) != nil {
		return args.Error(0)
	}
	return fn(ctx)
}

// MockTaskRepository is a mock implementation of TaskRepository
type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) Create(ctx context.Context, task *domain.RecipientTask) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) LockNextPending(ctx context.Context, now time.Time) (*domain.RecipientTask, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecipientTask), args.Error(1)
}

func (m *MockTaskRepository) LockByID(ctx context.Context, id uuid.UUID) (*domain.RecipientTask, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecipientTask), args.Error(1)
}

func (m *MockTaskRepository) Update(ctx context.Context, task *domain.RecipientTask) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) ListExpiredLeases(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error) {
	args := m.Called(ctx, now, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

// MockOutcomeRecorder is a mock implementation of OutcomeRecorder
type MockOutcomeRecorder struct {
	mock.Mock
}

func (m *MockOutcomeRecorder) RecordOutcome(ctx context.Context, campaignID uuid.UUID, state domain.TaskState) error {
	args := m.Called(ctx, campaignID, state)
	return args.Error(0)
}

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestQueue(txManager *MockTxManager, repo *MockTaskRepository, recorder *MockOutcomeRecorder) *queueUseCase {
	uc := NewQueueUseCase(Config{LeaseTimeout: 2 * time.Minute, MaxAttempts: 3, BatchSize: 10},
		txManager, repo, recorder, nil).(*queueUseCase)
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func leasedTask(owner string, attempts int) *domain.RecipientTask {
	expires := fixedNow.Add(time.Minute)
	return &domain.RecipientTask{
		ID:             uuid.Must(uuid.NewV7()),
		CampaignID:     uuid.Must(uuid.NewV7()),
		ContactID:      uuid.Must(uuid.NewV7()),
		State:          domain.TaskStateSending,
		AttemptCount:   attempts,
		LeaseOwner:     &owner,
		LeaseExpiresAt: &expires,
	}
}

func TestNewQueueUseCase_Defaults(t *testing.T) {
	uc := NewQueueUseCase(Config{}, &MockTxManager{}, &MockTaskRepository{}, &MockOutcomeRecorder{}, nil).(*queueUseCase)
	assert.Equal(t, 100, uc.config.BatchSize)
	assert.Equal(t, 1, uc.config.MaxAttempts)
}

func TestQueueUseCase_Enqueue(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_PreservesOrder", func(t *testing.T) {
		txManager := &MockTxManager{}
		repo := &MockTaskRepository{}
		uc := newTestQueue(txManager, repo, &MockOutcomeRecorder{})

		campaignID := uuid.Must(uuid.NewV7())
		items := []domain.EnqueueItem{
			{ContactID: uuid.Must(uuid.NewV7()), Recipient: domain.Recipient{Email: "a@example.com"}},
			{ContactID: uuid.Must(uuid.NewV7()), Recipient: domain.Recipient{Email: "b@example.com"}},
		}

		var created []*domain.RecipientTask
		txManager.On("WithTx", ctx, mock.Anything).Return(nil)
		repo.On("Create", ctx, mock.AnythingOfType("*domain.RecipientTask")).
			Run(func(args mock.Arguments) {
				created = append(created, args.Get(1).(*domain.RecipientTask))
			}).
			Return(nil)

		require.NoError(t, uc.Enqueue(ctx, campaignID, items))
		require.Len(t, created, 2)
		for i, task := range created {
			assert.Equal(t, campaignID, task.CampaignID)
			assert.Equal(t, items[i].ContactID, task.ContactID)
			assert.Equal(t, items[i].Recipient, task.Recipient)
			assert.Equal(t, i, task.Position)
			assert.Equal(t, domain.TaskStatePending, task.State)
			assert.Equal(t, fixedNow, task.AvailableAt)
		}
	})

	t.Run("Error_Create", func(t *testing.T) {
		txManager := &MockTxManager{}
		repo := &MockTaskRepository{}
		uc := newTestQueue(txManager, repo, &MockOutcomeRecorder{})

		txManager.On("WithTx", ctx, mock.Anything).Return(nil)
		repo.On("Create", ctx, mock.Anything).Return(assert.AnError).Once()

		err := uc.Enqueue(ctx, uuid.Must(uuid.NewV7()), []domain.EnqueueItem{{}, {}})
		assert.ErrorIs(t, err, assert.AnError)
		repo.AssertNumberOfCalls(t, "Create", 1)
	})
}

func TestQueueUseCase_Lease(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		txManager := &MockTxManager{}
		repo := &MockTaskRepository{}
		uc := newTestQueue(txManager, repo, &MockOutcomeRecorder{})

		task := &domain.RecipientTask{ID: uuid.Must(uuid.NewV7()), State: domain.TaskStatePending}
		txManager.On("WithTx", ctx, mock.Anything).Return(nil)
		repo.On("LockNextPending", ctx, fixedNow).Return(task, nil)
		repo.On("Update", ctx, task).Return(nil)

		leased, err := uc.Lease(ctx, "worker-1")
		require.NoError(t, err)
		require.NotNil(t, leased)
		assert.Equal(t, domain.TaskStateSending, leased.State)
		assert.True(t, leased.HeldBy("worker-1"))
		assert.Equal(t, fixedNow.Add(2*time.Minute), *leased.LeaseExpiresAt)
	})

	t.Run("Success_Idle", func(t *testing.T) {
		txManager := &MockTxManager{}
		repo := &MockTaskRepository{}
		uc := newTestQueue(txManager, repo, &MockOutcomeRecorder{})

		txManager.On("WithTx", ctx, mock.Anything).Return(nil)
		repo.On("LockNextPending", ctx, fixedNow).Return(nil, domain.ErrTaskNotFound)

		leased, err := uc.Lease(ctx, "worker-1")
		assert.NoError(t, err)
		assert.Nil(t, leased)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Error_Update", func(t *testing.T) {
		txManager := &MockTxManager{}
		repo := &MockTaskRepository{}
		uc := newTestQueue(txManager, repo, &MockOutcomeRecorder{})

		task := &domain.RecipientTask{ID: uuid.Must(uuid.NewV7()), State: domain.TaskStatePending}
		txManager.On("WithTx", ctx, mock.Anything).Return(nil)
		repo.On("LockNextPending", ctx, fixedNow).Return(task, nil)
		repo.On("Update", ctx, task).Return(assert.AnError)

		leased, err := uc.Lease(ctx, "worker-1")
		assert.ErrorIs(t, err, assert.AnError)
		assert.Nil(t, leased)
	})
}

func TestQueueUseCase_Complete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_Sent", func(t *testing.T) {
		txManager := &MockTxManager{}
		repo := &MockTaskRepository{}
		recorder := &MockOutcomeRecorder{}
		uc := newTestQueue(txManager, repo, recorder)

		task := leasedTask("worker-1", 0)
		txManager.On("WithTx", ctx, mock.Anything).Return(nil)
		repo.On("LockByID", ctx, task.ID).Return(task, nil)
		repo.On("Update", ctx, task).Return(nil)
		recorder.On("RecordOutcome", ctx, task.CampaignID, domain.TaskStateSent).Return(nil)

		err := uc.Complete(ctx, task.ID, "worker-1", domain.Outcome{State: domain.TaskStateSent})
		require.NoError(t, err)
		assert.Equal(t, domain.TaskStateSent, task.State)
		assert.Equal(t, 1, task.AttemptCount)
		assert.Nil(t, task.LeaseOwner)
		assert.Nil(t, task.LastError)
		recorder.AssertExpectations(t)
	})

	t.Run("Success_BouncedKeepsError", func(t *testing.T) {
		txManager := &MockTxManager{}
		repo := &MockTaskRepository{}
		recorder := &MockOutcomeRecorder{}
		uc := newTestQueue(txManager, repo, recorder)

		task := leasedTask("worker-1", 1)
		txManager.On("WithTx", ctx, mock.Anything).Return(nil)
		repo.On("LockByID", ctx, task.ID).Return(task, nil)
		repo.On("Update", ctx, task).Return(nil)
		recorder.On("RecordOutcome", ctx, task.CampaignID, domain.TaskStateBounced).Return(nil)

		err := uc.Complete(ctx, task.ID, "worker-1",
			domain.Outcome{State: domain.TaskStateBounced, Error: "550 mailbox unavailable"})
		require.NoError(t, err)
		require.NotNil(t, task.LastError)
		assert.Equal(t, "550 mailbox unavailable", *task.LastError)
	})

	t.Run("Error_InvalidOutcome", func(t *testing.T) {
		uc := newTestQueue(&MockTxManager{}, &MockTaskRepository{}, &MockOutcomeRecorder{})

		err := uc.Complete(ctx, uuid.Must(uuid.NewV7()), "worker-1", domain.Outcome{State: domain.TaskStatePending})
		assert.ErrorIs(t, err, domain.ErrInvalidOutcome)
	})

	t.Run("Error_LeaseLost", func(t *testing.T) {
		txManager := &MockTxManager{}
		repo := &MockTaskRepository{}
		recorder := &MockOutcomeRecorder{}
		uc := newTestQueue(txManager, repo, recorder)

		task := leasedTask("worker-2", 0)
		txManager.On("WithTx", ctx, mock.Anything).Return(nil)
		repo.On("LockByID", ctx, task.ID).Return(task, nil)

		err := uc.Complete(ctx, task.ID, "worker-1", domain.Outcome{State: domain.TaskStateSent})
		assert.ErrorIs(t, err, domain.ErrLeaseLost)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		recorder.AssertNotCalled(t, "RecordOutcome", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Error_Recorder", func(t *testing.T) {
		txManager := &MockTxManager{}
		repo := &MockTaskRepository{}
		recorder := &MockOutcomeRecorder{}
		uc := newTestQueue(txManager, repo, recorder)

		task := leasedTask("worker-1", 0)
		txManager.On("WithTx", ctx, mock.Anything).Return(nil)
		repo.On("LockByID", ctx, task.ID).Return(task, nil)
		repo.On("Update", ctx, task).Return(nil)
		recorder.On("RecordOutcome", ctx, task.CampaignID, domain.TaskStateFailed).Return(assert.AnError)

		err := uc.Complete(ctx, task.ID, "worker-1", domain.Outcome{State: domain.TaskStateFailed})
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestQueueUseCase_Retry(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		txManager := &MockTxManager{}
		repo := &MockTaskRepository{}
		uc := newTestQueue(txManager, repo, &MockOutcomeRecorder{})

		task := leasedTask("worker-1", 0)
		availableAt := fixedNow.Add(30 * time.Second)
		txManager.On("WithTx", ctx, mock.Anything).Return(nil)
		repo.On("LockByID", ctx, task.ID).Return(task, nil)
		repo.On("Update", ctx, task).Return(nil)

		err := uc.Retry(ctx, task.ID, "worker-1", "421 try later", availableAt)
		require.NoError(t, err)
		assert.Equal(t, domain.TaskStatePending, task.State)
		assert.Equal(t, 1, task.AttemptCount)
		assert.Equal(t, availableAt, task.AvailableAt)
		assert.Nil(t, task.LeaseOwner)
		assert.Nil(t, task.LeaseExpiresAt)
		assert.Equal(t, "421 try later", *task.LastError)
	})

	t.Run("Error_LeaseLost", func(t *testing.T) {
		txManager := &MockTxManager{}
		repo := &MockTaskRepository{}
		uc := newTestQueue(txManager, repo, &MockOutcomeRecorder{})

		task := leasedTask("worker-1", 0)
		task.State = domain.TaskStatePending
		txManager.On("WithTx", ctx, mock.Anything).Return(nil)
		repo.On("LockByID", ctx, task.ID).Return(task, nil)

		err := uc.Retry(ctx, task.ID, "worker-1", "boom", fixedNow)
		assert.ErrorIs(t, err, domain.ErrLeaseLost)
	})
}

func TestQueueUseCase_Requeue(t *testing.T) {
	ctx := context.Background()
	later := fixedNow.Add(5 * time.Minute)

	t.Run("Success_BackToPending", func(t *testing.T) {
		txManager := &MockTxManager{}
		repo := &MockTaskRepository{}
		recorder := &MockOutcomeRecorder{}
		uc := newTestQueue(txManager, repo, recorder)

		task := leasedTask("worker-1", 0)
		txManager.On("WithTx", ctx, mock.Anything).Return(nil)
		repo.On("LockByID", ctx, task.ID).Return(task, nil)
		repo.On("Update", ctx, task).Return(nil)

		require.NoError(t, uc.Requeue(ctx, task.ID, later))
		assert.Equal(t, domain.TaskStatePending, task.State)
		assert.Equal(t, 1, task.AttemptCount)
		assert.Nil(t, task.LeaseOwner)
		assert.Equal(t, later, task.AvailableAt)
		recorder.AssertNotCalled(t, "RecordOutcome", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Success_ExhaustedFails", func(t *testing.T) {
		txManager := &MockTxManager{}
		repo := &MockTaskRepository{}
		recorder := &MockOutcomeRecorder{}
		uc := newTestQueue(txManager, repo, recorder)

		task := leasedTask("worker-1", 2)
		txManager.On("WithTx", ctx, mock.Anything).Return(nil)
		repo.On("LockByID", ctx, task.ID).Return(task, nil)
		repo.On("Update", ctx, task).Return(nil)
		recorder.On("RecordOutcome", ctx, task.CampaignID, domain.TaskStateFailed).Return(nil)

		require.NoError(t, uc.Requeue(ctx, task.ID, later))
		assert.Equal(t, domain.TaskStateFailed, task.State)
		assert.Equal(t, 3, task.AttemptCount)
		assert.Contains(t, *task.LastError, "lease expired")
		recorder.AssertExpectations(t)
	})

	t.Run("Error_LeaseActive", func(t *testing.T) {
		txManager := &MockTxManager{}
		repo := &MockTaskRepository{}
		uc := newTestQueue(txManager, repo, &MockOutcomeRecorder{})

		task := leasedTask("worker-1", 0)
		txManager.On("WithTx", ctx, mock.Anything).Return(nil)
		repo.On("LockByID", ctx, task.ID).Return(task, nil)

		assert.ErrorIs(t, uc.Requeue(ctx, task.ID, fixedNow), domain.ErrLeaseActive)
	})
}

func TestQueueUseCase_ReclaimExpired(t *testing.T) {
	ctx := context.Background()
	later := fixedNow.Add(5 * time.Minute)

	t.Run("Success_SkipsRaces", func(t *testing.T) {
		txManager := &MockTxManager{}
		repo := &MockTaskRepository{}
		uc := newTestQueue(txManager, repo, &MockOutcomeRecorder{})

		expired := leasedTask("worker-1", 0)
		completed := leasedTask("worker-2", 0)
		completed.State = domain.TaskStateSent

		txManager.On("WithTx", ctx, mock.Anything).Return(nil)
		repo.On("ListExpiredLeases", ctx, later, 10).Return([]uuid.UUID{expired.ID, completed.ID}, nil)
		repo.On("LockByID", ctx, expired.ID).Return(expired, nil)
		repo.On("LockByID", ctx, completed.ID).Return(completed, nil)
		repo.On("Update", ctx, expired).Return(nil)

		n, err := uc.ReclaimExpired(ctx, later)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("Error_List", func(t *testing.T) {
		repo := &MockTaskRepository{}
		uc := newTestQueue(&MockTxManager{}, repo, &MockOutcomeRecorder{})

		repo.On("ListExpiredLeases", ctx, later, 10).Return(nil, assert.AnError)

		_, err := uc.ReclaimExpired(ctx, later)
		assert.ErrorIs(t, err, assert.AnError)
	})
}
