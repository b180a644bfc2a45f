package domain

import (
	"github.com/allisson/leadmail/internal/errors"
)

// Contact errors.
var (
	// ErrContactNotFound indicates the contact does not exist.
	ErrContactNotFound = errors.Wrap(errors.ErrNotFound, "contact not found")

	// ErrContactAlreadyExists indicates another contact already uses the email.
	ErrContactAlreadyExists = errors.Wrap(errors.ErrConflict, "contact with this email already exists")
)
