package errors

import (
	"errors"
	"testing"
)

type providerError struct {
	Code int
}

func (e providerError) Error() string { return "provider rejected message" }

func TestWrapping(t *testing.T) {
	base := errors.New("duplicate key")

	tests := []struct {
		name string
		got  error
		want string
	}{
		{"wrap", Wrap(base, "failed to create contact"), "failed to create contact: duplicate key"},
		{"wrapf", Wrapf(base, "campaign %s", "spring"), "campaign spring: duplicate key"},
		{"nested", Wrap(Wrap(base, "insert"), "create contact"), "create contact: insert: duplicate key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got.Error() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, tt.got.Error())
			}
			if !Is(tt.got, base) {
				t.Error("wrapped error lost its cause")
			}
		})
	}

	if Wrap(nil, "ignored") != nil || Wrapf(nil, "ignored %d", 1) != nil {
		t.Error("wrapping nil must return nil")
	}
	if New("bounced").Error() != "bounced" {
		t.Error("New must keep the message")
	}
}

func TestSentinels(t *testing.T) {
	sentinels := map[error]string{
		ErrNotFound:     "not found",
		ErrConflict:     "conflict",
		ErrInvalidInput: "invalid input",
		ErrInvalidState: "invalid state",
		ErrBadRequest:   "bad request",
	}

	for err, msg := range sentinels {
		if err.Error() != msg {
			t.Errorf("expected %q, got %q", msg, err.Error())
		}

		wrapped := Wrapf(err, "campaign %d", 1)
		for other := range sentinels {
			if Is(wrapped, other) != (other == err) {
				t.Errorf("%q matched %q unexpectedly", wrapped, other)
			}
		}
	}
}

func TestAs(t *testing.T) {
	wrapped := Wrap(providerError{Code: 550}, "send")

	var target providerError
	if !As(wrapped, &target) {
		t.Fatal("expected to extract providerError")
	}
	if target.Code != 550 {
		t.Errorf("expected code 550, got %d", target.Code)
	}
}
