package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTaskState_IsTerminal(t *testing.T) {
	assert.False(t, TaskStatePending.IsTerminal())
	assert.False(t, TaskStateSending.IsTerminal())
	assert.True(t, TaskStateSent.IsTerminal())
	assert.True(t, TaskStateFailed.IsTerminal())
	assert.True(t, TaskStateBounced.IsTerminal())
}

func TestRecipientTask_Lease(t *testing.T) {
	now := time.Now()
	owner := "worker-1"
	past := now.Add(-time.Second)
	future := now.Add(time.Minute)

	task := &RecipientTask{State: TaskStateSending, LeaseOwner: &owner, LeaseExpiresAt: &future}
	assert.False(t, task.LeaseExpired(now))
	assert.True(t, task.HeldBy("worker-1"))
	assert.False(t, task.HeldBy("worker-2"))

	task.LeaseExpiresAt = &past
	assert.True(t, task.LeaseExpired(now))

	task.State = TaskStateSent
	assert.False(t, task.LeaseExpired(now))
	assert.False(t, task.HeldBy("worker-1"))
}
