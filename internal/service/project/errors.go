package project

import "errors"

var (
	ErrNotFound    = errors.New("project not found")
	ErrDuplicateID = errors.New("duplicate project id")
)
