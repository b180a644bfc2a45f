package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

const sendGridHost = "https://api.sendgrid.com"

// SendGridTransport delivers mail through the SendGrid v3 API.
type SendGridTransport struct {
	apiKey    string
	host      string
	fromEmail string
	fromName  string
}

// NewSendGridTransport creates a SendGrid transport. An empty host uses the public API.
func NewSendGridTransport(apiKey, host, fromEmail, fromName string) *SendGridTransport {
	if host == "" {
		host = sendGridHost
	}
	return &SendGridTransport{
		apiKey:    apiKey,
		host:      host,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

// Send posts the message to /v3/mail/send.
// 429 and 5xx responses are retryable, other 4xx responses are terminal.
func (t *SendGridTransport) Send(ctx context.Context, msg Message) (*SendResult, error) {
	from := mail.NewEmail(t.fromName, t.fromEmail)
	to := mail.NewEmail(msg.ToName, msg.To)
	message := mail.NewSingleEmail(from, msg.Subject, to, msg.Text, msg.HTML)

	request := sendgrid.GetRequest(t.apiKey, "/v3/mail/send", t.host)
	request.Method = "POST"
	request.Body = mail.GetRequestBody(message)

	response, err := sendgrid.MakeRequestWithContext(ctx, request)
	if err != nil {
		return nil, Retryable(0, fmt.Errorf("sendgrid request failed: %w", err))
	}

	switch code := response.StatusCode; {
	case code == 429 || code >= 500:
		return nil, Retryable(code, fmt.Errorf("sendgrid responded %d: %s", code, response.Body))
	case code >= 400:
		return nil, Terminal(code, fmt.Errorf("sendgrid responded %d: %s", code, response.Body))
	}

	var messageID string
	if ids := response.Headers["X-Message-Id"]; len(ids) > 0 {
		messageID = ids[0]
	}
	return &SendResult{MessageID: messageID}, nil
}
