package service

import (
	"context"
	"errors"
	"fmt"
	"net/textproto"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"
)

// smtpSender is the part of *gomail.Dialer the transport uses.
type smtpSender interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPTransport delivers mail through an SMTP relay.
type SMTPTransport struct {
	sender    smtpSender
	fromEmail string
	fromName  string
}

// NewSMTPTransport creates an SMTP transport for the given relay.
func NewSMTPTransport(host string, port int, username, password, fromEmail, fromName string) *SMTPTransport {
	return &SMTPTransport{
		sender:    gomail.NewDialer(host, port, username, password),
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

// Send dials the relay and sends one message. The dial cannot be interrupted, so
// when ctx ends first the send keeps running in the background and a retryable
// error is returned.
func (t *SMTPTransport) Send(ctx context.Context, msg Message) (*SendResult, error) {
	m := t.buildMessage(msg)

	done := make(chan error, 1)
	go func() {
		done <- t.sender.DialAndSend(m)
	}()

	select {
	case err := <-done:
		if err != nil {
			return nil, classifySMTPError(err)
		}
		return &SendResult{MessageID: m.GetHeader("Message-ID")[0]}, nil
	case <-ctx.Done():
		return nil, Retryable(0, fmt.Errorf("smtp send interrupted: %w", ctx.Err()))
	}
}

func (t *SMTPTransport) buildMessage(msg Message) *gomail.Message {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", t.fromEmail, t.fromName)
	if msg.ToName != "" {
		m.SetAddressHeader("To", msg.To, msg.ToName)
	} else {
		m.SetHeader("To", msg.To)
	}
	m.SetHeader("Subject", msg.Subject)
	m.SetHeader("Message-ID", newMessageID(t.fromEmail))
	m.SetBody("text/plain", msg.Text)
	m.AddAlternative("text/html", msg.HTML)
	return m
}

// classifySMTPError maps SMTP reply codes: 4xx retryable, 550/551/553 bounced,
// other 5xx terminal. Errors without a reply code are network failures and retryable.
func classifySMTPError(err error) *TransportError {
	var reply *textproto.Error
	if !errors.As(err, &reply) {
		return Retryable(0, err)
	}

	switch {
	case reply.Code >= 400 && reply.Code < 500:
		return Retryable(reply.Code, err)
	case reply.Code == 550 || reply.Code == 551 || reply.Code == 553:
		return Bounced(reply.Code, err)
	default:
		return Terminal(reply.Code, err)
	}
}

// newMessageID builds an RFC 5322 Message-ID on the sender's domain.
func newMessageID(fromEmail string) string {
	domain := "localhost"
	if at := strings.LastIndex(fromEmail, "@"); at >= 0 && at < len(fromEmail)-1 {
		domain = fromEmail[at+1:]
	}
	return "<" + uuid.Must(uuid.NewV7()).String() + "@" + domain + ">"
}
