// Package service provides the mail transports used by the dispatch workers.
package service

import (
	"context"
	"errors"
	"fmt"
)

// Message is one rendered email ready for delivery.
type Message struct {
	To      string
	ToName  string
	Subject string
	HTML    string
	Text    string
}

// SendResult is returned by a transport that accepted a message.
type SendResult struct {
	MessageID string
}

// Transport delivers a single message. Transports never retry; the worker owns retry policy.
type Transport interface {
	Send(ctx context.Context, msg Message) (*SendResult, error)
}

// ErrorKind classifies a transport failure.
type ErrorKind string

const (
	// KindRetryable covers timeouts, throttling and server-side failures.
	KindRetryable ErrorKind = "retryable"
	// KindTerminal covers permanent rejections such as invalid requests.
	KindTerminal ErrorKind = "terminal"
	// KindBounced covers mailbox-level permanent rejections.
	KindBounced ErrorKind = "bounced"
)

// TransportError is a classified delivery failure.
type TransportError struct {
	Kind ErrorKind
	Code int
	Err  error
}

func (e *TransportError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("%s transport error (%d): %v", e.Kind, e.Code, e.Err)
	}
	return fmt.Sprintf("%s transport error: %v", e.Kind, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Retryable wraps err as a retryable failure.
func Retryable(code int, err error) *TransportError {
	return &TransportError{Kind: KindRetryable, Code: code, Err: err}
}

// Terminal wraps err as a terminal failure.
func Terminal(code int, err error) *TransportError {
	return &TransportError{Kind: KindTerminal, Code: code, Err: err}
}

// Bounced wraps err as a bounce.
func Bounced(code int, err error) *TransportError {
	return &TransportError{Kind: KindBounced, Code: code, Err: err}
}

// Classify returns the kind of a send error. Unclassified errors are retryable.
func Classify(err error) ErrorKind {
	var te *TransportError
	if errors.As(err, &te) {
		return te.Kind
	}
	return KindRetryable
}
