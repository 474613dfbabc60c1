package contact

import "errors"

var (
	ErrNotConfigured = errors.New("contact storage is not configured")
	ErrNotFound      = errors.New("message not found")
	ErrInvalidID     = errors.New("invalid message id")
)
