package docstore

import "errors"

var (
	ErrNotConfigured = errors.New("document store is not configured")
	ErrEmptyName     = errors.New("collection name is empty")
)
