package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_CanTransitionTo(t *testing.T) {
	allowed := map[Status][]Status{
		StatusDraft:     {StatusScheduled, StatusSending, StatusFailed, StatusCancelled},
		StatusScheduled: {StatusDraft, StatusSending, StatusFailed, StatusCancelled},
		StatusSending:   {StatusCompleted, StatusFailed},
		StatusCompleted: {},
		StatusFailed:    {},
		StatusCancelled: {},
	}

	for from, targets := range allowed {
		for _, to := range Statuses {
			expected := false
			for _, target := range targets {
				if target == to {
					expected = true
				}
			}
			assert.Equal(t, expected, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestStatus_NeverRegresses(t *testing.T) {
	// Walk every pair: an allowed move never lowers the rank.
	for _, from := range Statuses {
		for _, to := range Statuses {
			if from.CanTransitionTo(to) {
				assert.GreaterOrEqual(t, to.rank(), from.rank(), "%s -> %s", from, to)
			}
		}
	}
	assert.False(t, StatusCompleted.CanTransitionTo(StatusSending))
	assert.False(t, StatusFailed.CanTransitionTo(StatusSending))
	assert.False(t, StatusSending.CanTransitionTo(StatusScheduled))
}

func TestStatus_Flags(t *testing.T) {
	assert.True(t, StatusDraft.IsEditable())
	assert.True(t, StatusScheduled.IsEditable())
	assert.False(t, StatusSending.IsEditable())
	assert.False(t, StatusCompleted.IsEditable())

	assert.True(t, StatusCancelled.IsTerminal())
	assert.False(t, StatusSending.IsTerminal())

	assert.False(t, Status("bogus").IsValid())
	assert.False(t, Status("bogus").CanTransitionTo(StatusSending))
}

func TestCampaign_Drained(t *testing.T) {
	c := &Campaign{TotalRecipients: 3, EmailsSent: 2, EmailsFailed: 0}
	assert.False(t, c.Drained())

	c.EmailsFailed = 1
	assert.True(t, c.Drained())

	assert.False(t, (&Campaign{}).Drained())
}
