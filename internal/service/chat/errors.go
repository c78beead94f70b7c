package chat

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidChannelID      = errors.New("invalid channel id")
	ErrInvalidUserID         = errors.New("invalid user id")
	ErrEmptyMessage          = errors.New("empty message text")
	ErrNoDriverAttached      = errors.New("order has no driver attached")

	ErrChatNotFound      = errors.New("chat channel not found")
	ErrChatAlreadyExists = errors.New("chat channel already exists for this order")
	ErrNotParticipant    = errors.New("sender is not a participant of this channel")
)
