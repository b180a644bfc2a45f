package service

import (
	"bytes"
	"context"
	"errors"
	"net/textproto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type fakeSMTPSender struct {
	err   error
	delay time.Duration
	sent  []*gomail.Message
}

func (f *fakeSMTPSender) DialAndSend(m ...*gomail.Message) error {
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	f.sent = append(f.sent, m...)
	return f.err
}

func newTestSMTPTransport(sender smtpSender) *SMTPTransport {
	return &SMTPTransport{sender: sender, fromEmail: "team@leadmail.io", fromName: "Leadmail"}
}

func TestSMTPTransport_Send(t *testing.T) {
	ctx := context.Background()
	msg := Message{To: "ana@example.com", ToName: "Ana", Subject: "Hello", HTML: "<p>Hi</p>", Text: "Hi"}

	t.Run("Success", func(t *testing.T) {
		sender := &fakeSMTPSender{}

		result, err := newTestSMTPTransport(sender).Send(ctx, msg)

		require.NoError(t, err)
		assert.Contains(t, result.MessageID, "@leadmail.io>")
		require.Len(t, sender.sent, 1)

		var buf bytes.Buffer
		_, err = sender.sent[0].WriteTo(&buf)
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Subject: Hello")
		assert.Contains(t, buf.String(), "text/html")
	})

	t.Run("Error_MailboxUnavailableIsBounced", func(t *testing.T) {
		sender := &fakeSMTPSender{err: &textproto.Error{Code: 550, Msg: "no such user"}}

		_, err := newTestSMTPTransport(sender).Send(ctx, msg)

		assert.Equal(t, KindBounced, Classify(err))
	})

	t.Run("Error_TimeoutIsRetryable", func(t *testing.T) {
		sender := &fakeSMTPSender{delay: 200 * time.Millisecond}
		timeoutCtx, cancel := context.WithTimeout(ctx, 10*time.Millisecond)
		defer cancel()

		_, err := newTestSMTPTransport(sender).Send(timeoutCtx, msg)

		assert.Equal(t, KindRetryable, Classify(err))
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestClassifySMTPError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"Greylisted", &textproto.Error{Code: 451, Msg: "try again later"}, KindRetryable},
		{"MailboxFull", &textproto.Error{Code: 452, Msg: "insufficient storage"}, KindRetryable},
		{"UnknownUser", &textproto.Error{Code: 550, Msg: "no such user"}, KindBounced},
		{"UserNotLocal", &textproto.Error{Code: 551, Msg: "user not local"}, KindBounced},
		{"BadMailbox", &textproto.Error{Code: 553, Msg: "mailbox name invalid"}, KindBounced},
		{"PolicyRejected", &textproto.Error{Code: 554, Msg: "rejected"}, KindTerminal},
		{"Network", errors.New("dial tcp: connection refused"), KindRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifySMTPError(tt.err).Kind)
		})
	}
}

func TestNewMessageID(t *testing.T) {
	assert.Contains(t, newMessageID("team@leadmail.io"), "@leadmail.io>")
	assert.Contains(t, newMessageID("broken"), "@localhost>")
}
