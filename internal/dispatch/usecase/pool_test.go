package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	campaignDomain "github.com/allisson/leadmail/internal/campaign/domain"
	campaignUseCase "github.com/allisson/leadmail/internal/campaign/usecase"
	"github.com/allisson/leadmail/internal/dispatch/service"
	historyDomain "github.com/allisson/leadmail/internal/history/domain"
	queueDomain "github.com/allisson/leadmail/internal/queue/domain"
	queueUseCase "github.com/allisson/leadmail/internal/queue/usecase"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type memTxKey struct{}

// memTxManager serializes transactions with one mutex. Nested calls join the outer one.
type memTxManager struct {
	mu sync.Mutex
}

func (m *memTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(memTxKey{}) != nil {
		return fn(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(context.WithValue(ctx, memTxKey{}, true))
}

type memCampaignRepo struct {
	campaignUseCase.CampaignRepository

	mu        sync.Mutex
	campaigns map[uuid.UUID]*campaignDomain.Campaign
}

func newMemCampaignRepo() *memCampaignRepo {
	return &memCampaignRepo{campaigns: map[uuid.UUID]*campaignDomain.Campaign{}}
}

func (r *memCampaignRepo) put(c *campaignDomain.Campaign) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.campaigns[c.ID] = c
}

func (r *memCampaignRepo) Get(_ context.Context, id uuid.UUID) (*campaignDomain.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.campaigns[id]
	if !ok {
		return nil, campaignDomain.ErrCampaignNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *memCampaignRepo) sending(id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.campaigns[id]
	return ok && c.Status == campaignDomain.StatusSending
}

func (r *memCampaignRepo) IncrementCounters(
	_ context.Context,
	id uuid.UUID,
	sent, failed int,
	now time.Time,
) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.campaigns[id]
	if !ok || c.EmailsSent+c.EmailsFailed >= c.TotalRecipients {
		return false, nil
	}
	c.EmailsSent += sent
	c.EmailsFailed += failed
	c.UpdatedAt = now
	return true, nil
}

func (r *memCampaignRepo) CompleteIfDrained(_ context.Context, id uuid.UUID, now time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.campaigns[id]
	if !ok || c.Status != campaignDomain.StatusSending || !c.Drained() {
		return false, nil
	}
	c.Status = campaignDomain.StatusCompleted
	c.CompletedAt = &now
	return true, nil
}

type memTaskRepo struct {
	mu        sync.Mutex
	tasks     map[uuid.UUID]queueDomain.RecipientTask
	campaigns *memCampaignRepo
}

func newMemTaskRepo(campaigns *memCampaignRepo) *memTaskRepo {
	return &memTaskRepo{tasks: map[uuid.UUID]queueDomain.RecipientTask{}, campaigns: campaigns}
}

func (r *memTaskRepo) Create(_ context.Context, task *queueDomain.RecipientTask) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks[task.ID] = *task
	return nil
}

func (r *memTaskRepo) LockNextPending(_ context.Context, now time.Time) (*queueDomain.RecipientTask, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var next *queueDomain.RecipientTask
	for _, task := range r.tasks {
		if task.State != queueDomain.TaskStatePending || task.AvailableAt.After(now) {
			continue
		}
		if !r.campaigns.sending(task.CampaignID) {
			continue
		}
		if next == nil || task.AvailableAt.Before(next.AvailableAt) ||
			(task.AvailableAt.Equal(next.AvailableAt) && task.Position < next.Position) {
			cp := task
			next = &cp
		}
	}
	if next == nil {
		return nil, queueDomain.ErrTaskNotFound
	}
	return next, nil
}

func (r *memTaskRepo) LockByID(_ context.Context, id uuid.UUID) (*queueDomain.RecipientTask, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	task, ok := r.tasks[id]
	if !ok {
		return nil, queueDomain.ErrTaskNotFound
	}
	return &task, nil
}

func (r *memTaskRepo) Update(_ context.Context, task *queueDomain.RecipientTask) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks[task.ID] = *task
	return nil
}

func (r *memTaskRepo) ListExpiredLeases(context.Context, time.Time, int) ([]uuid.UUID, error) {
	return nil, nil
}

func (r *memTaskRepo) snapshot() []queueDomain.RecipientTask {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]queueDomain.RecipientTask, 0, len(r.tasks))
	for _, task := range r.tasks {
		out = append(out, task)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out
}

type memRecordWriter struct {
	mu      sync.Mutex
	records map[uuid.UUID]historyDomain.SendRecord
}

func (w *memRecordWriter) Create(_ context.Context, record *historyDomain.SendRecord) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.records[record.ID]; !ok {
		w.records[record.ID] = *record
	}
	return nil
}

func (w *memRecordWriter) byStatus() map[historyDomain.Status]int {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := map[historyDomain.Status]int{}
	for _, r := range w.records {
		out[r.Status]++
	}
	return out
}

// scriptedTransport fails each address according to its script, then succeeds.
type scriptedTransport struct {
	mu       sync.Mutex
	script   map[string][]error
	attempts map[string]int
}

func newScriptedTransport(script map[string][]error) *scriptedTransport {
	return &scriptedTransport{script: script, attempts: map[string]int{}}
}

func (s *scriptedTransport) Send(_ context.Context, msg service.Message) (*service.SendResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.attempts[msg.To]
	s.attempts[msg.To]++
	if errs := s.script[msg.To]; n < len(errs) {
		return nil, errs[n]
	}
	return &service.SendResult{MessageID: fmt.Sprintf("%s-%d", msg.To, n)}, nil
}

func (s *scriptedTransport) attemptsFor(to string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attempts[to]
}

type pipeline struct {
	deps      Dependencies
	queue     queueUseCase.QueueUseCase
	campaigns *memCampaignRepo
	tasks     *memTaskRepo
	records   *memRecordWriter
	campaign  *campaignDomain.Campaign
}

func newPipeline(t *testing.T, transport service.Transport, recipients int) *pipeline {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	txManager := &memTxManager{}
	campaigns := newMemCampaignRepo()
	tasks := newMemTaskRepo(campaigns)
	records := &memRecordWriter{records: map[uuid.UUID]historyDomain.SendRecord{}}

	queue := queueUseCase.NewQueueUseCase(
		queueUseCase.Config{LeaseTimeout: time.Minute, MaxAttempts: 3},
		txManager,
		tasks,
		campaignUseCase.NewAggregator(campaigns, logger),
		logger,
	)

	campaign := &campaignDomain.Campaign{
		ID:              uuid.Must(uuid.NewV7()),
		Subject:         "Hello [name]",
		Content:         "<p>Hi [name]</p>",
		Status:          campaignDomain.StatusSending,
		TotalRecipients: recipients,
	}
	campaigns.put(campaign)

	items := make([]queueDomain.EnqueueItem, recipients)
	for i := range items {
		items[i] = queueDomain.EnqueueItem{
			ContactID: uuid.Must(uuid.NewV7()),
			Recipient: queueDomain.Recipient{
				Name:  fmt.Sprintf("Lead %d", i),
				Email: fmt.Sprintf("lead%d@example.com", i),
			},
		}
	}
	require.NoError(t, queue.Enqueue(context.Background(), campaign.ID, items))

	return &pipeline{
		deps: Dependencies{
			TxManager: txManager,
			Queue:     queue,
			Campaigns: campaigns,
			Records:   records,
			Transport: transport,
			Logger:    logger,
		},
		queue:     queue,
		campaigns: campaigns,
		tasks:     tasks,
		records:   records,
		campaign:  campaign,
	}
}

func (p *pipeline) current(t *testing.T) *campaignDomain.Campaign {
	t.Helper()
	c, err := p.campaigns.Get(context.Background(), p.campaign.ID)
	require.NoError(t, err)
	return c
}

var testWorkerConfig = Config{
	PollInterval:     2 * time.Millisecond,
	TransportTimeout: time.Second,
	BaseURL:          "https://mail.example.com",
	Retry:            RetryPolicy{MaxAttempts: 3, BaseDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond},
}

// drain runs a single worker step by step until the campaign leaves sending.
func drain(t *testing.T, w *Worker, p *pipeline) {
	t.Helper()
	ctx := context.Background()
	deadline := time.Now().Add(5 * time.Second)
	for p.current(t).Status == campaignDomain.StatusSending {
		require.True(t, time.Now().Before(deadline), "campaign did not drain")
		processed, err := w.ProcessNext(ctx)
		require.NoError(t, err)
		if !processed {
			time.Sleep(time.Millisecond)
		}
	}
}

func TestPipeline_RetryThenSucceed(t *testing.T) {
	unavailable := service.Retryable(503, errors.New("unavailable"))
	transport := newScriptedTransport(map[string][]error{
		"lead1@example.com": {unavailable, unavailable},
	})
	p := newPipeline(t, transport, 3)
	w := NewWorker("worker-1", testWorkerConfig, p.deps, nil)

	drain(t, w, p)

	campaign := p.current(t)
	assert.Equal(t, campaignDomain.StatusCompleted, campaign.Status)
	assert.Equal(t, 3, campaign.EmailsSent)
	assert.Equal(t, 0, campaign.EmailsFailed)
	assert.Equal(t, 3, transport.attemptsFor("lead1@example.com"))
	assert.Equal(t, map[historyDomain.Status]int{historyDomain.StatusSent: 3}, p.records.byStatus())

	tasks := p.tasks.snapshot()
	require.Len(t, tasks, 3)
	assert.Equal(t, 3, tasks[1].AttemptCount)
	for _, task := range tasks {
		assert.Equal(t, queueDomain.TaskStateSent, task.State)
	}
}

func TestPipeline_TerminalFailures(t *testing.T) {
	transport := newScriptedTransport(map[string][]error{
		"lead0@example.com": {service.Terminal(400, errors.New("invalid"))},
		"lead1@example.com": {service.Bounced(550, errors.New("no such user"))},
	})
	p := newPipeline(t, transport, 2)
	w := NewWorker("worker-1", testWorkerConfig, p.deps, nil)

	drain(t, w, p)

	campaign := p.current(t)
	assert.Equal(t, campaignDomain.StatusCompleted, campaign.Status)
	assert.Equal(t, 0, campaign.EmailsSent)
	assert.Equal(t, 2, campaign.EmailsFailed)
	assert.Equal(t, map[historyDomain.Status]int{
		historyDomain.StatusFailed:  1,
		historyDomain.StatusBounced: 1,
	}, p.records.byStatus())
}

func TestPipeline_RetriesExhausted(t *testing.T) {
	unavailable := service.Retryable(503, errors.New("unavailable"))
	transport := newScriptedTransport(map[string][]error{
		"lead0@example.com": {unavailable, unavailable, unavailable, unavailable},
	})
	p := newPipeline(t, transport, 1)
	w := NewWorker("worker-1", testWorkerConfig, p.deps, nil)

	drain(t, w, p)

	campaign := p.current(t)
	assert.Equal(t, campaignDomain.StatusCompleted, campaign.Status)
	assert.Equal(t, 1, campaign.EmailsFailed)
	assert.Equal(t, 3, transport.attemptsFor("lead0@example.com"))
}

func TestPool_ConcurrentWorkersSendEachRecipientOnce(t *testing.T) {
	const recipients = 200
	transport := newScriptedTransport(nil)
	p := newPipeline(t, transport, recipients)
	pool := NewPool(PoolConfig{Workers: 8, WorkerPrefix: "test"}, testWorkerConfig, p.deps)
	require.Len(t, pool.Workers(), 8)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- pool.Run(ctx) }()

	require.Eventually(t, func() bool {
		return p.current(t).Status == campaignDomain.StatusCompleted
	}, 10*time.Second, 5*time.Millisecond)

	cancel()
	require.NoError(t, <-done)

	campaign := p.current(t)
	assert.Equal(t, recipients, campaign.EmailsSent)
	assert.Equal(t, 0, campaign.EmailsFailed)
	assert.Equal(t, map[historyDomain.Status]int{historyDomain.StatusSent: recipients}, p.records.byStatus())
	for i := 0; i < recipients; i++ {
		assert.Equal(t, 1, transport.attemptsFor(fmt.Sprintf("lead%d@example.com", i)))
	}
}
