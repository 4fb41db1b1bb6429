package document

import "errors"

var (
	ErrEmptyName      = errors.New("document name is empty")
	ErrInvalidName    = errors.New("document name escapes the base directory")
	ErrNotFound       = errors.New("document not found")
	ErrEmptyPrefix    = errors.New("refusing to clear documents without a key prefix")
	ErrUnknownBackend = errors.New("unknown document backend")
)
