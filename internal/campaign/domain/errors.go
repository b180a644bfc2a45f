package domain

import (
	"github.com/allisson/leadmail/internal/errors"
)

// Campaign errors.
var (
	// ErrCampaignNotFound indicates the campaign does not exist.
	ErrCampaignNotFound = errors.Wrap(errors.ErrNotFound, "campaign not found")

	// ErrCampaignNotEditable indicates the campaign has started sending or already finished.
	ErrCampaignNotEditable = errors.Wrap(errors.ErrInvalidState, "campaign can only be modified while draft or scheduled")

	// ErrCampaignSending indicates the campaign cannot be deleted while it is sending.
	ErrCampaignSending = errors.Wrap(errors.ErrInvalidState, "cannot delete a campaign that is currently sending")

	// ErrCampaignNotCancellable indicates the campaign already started or finished.
	ErrCampaignNotCancellable = errors.Wrap(errors.ErrInvalidState, "campaign can only be cancelled while draft or scheduled")

	// ErrNoRecipients indicates the campaign has no recipients.
	ErrNoRecipients = errors.Wrap(errors.ErrInvalidInput, "at least one recipient is required")

	// ErrDuplicateRecipients indicates a recipient id was supplied more than once.
	ErrDuplicateRecipients = errors.Wrap(errors.ErrInvalidInput, "recipient ids must be unique")

	// ErrRecipientsNotFound indicates some recipient ids do not resolve to contacts.
	ErrRecipientsNotFound = errors.Wrap(errors.ErrInvalidInput, "some recipients not found")

	// ErrNothingToEnqueue indicates activation found no resolvable recipient.
	ErrNothingToEnqueue = errors.New("no recipient could be resolved at activation")
)
