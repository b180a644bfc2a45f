package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"Retryable", Retryable(503, errors.New("unavailable")), KindRetryable},
		{"Terminal", Terminal(400, errors.New("bad request")), KindTerminal},
		{"Bounced", Bounced(550, errors.New("no such user")), KindBounced},
		{"Wrapped", fmt.Errorf("send: %w", Terminal(422, errors.New("invalid"))), KindTerminal},
		{"Unclassified", errors.New("boom"), KindRetryable},
		{"Deadline", context.DeadlineExceeded, KindRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestTransportError(t *testing.T) {
	cause := errors.New("mailbox full")
	err := Retryable(452, cause)

	assert.Equal(t, "retryable transport error (452): mailbox full", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "terminal transport error: bad", Terminal(0, errors.New("bad")).Error())
}
