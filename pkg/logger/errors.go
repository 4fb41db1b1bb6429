package logger

import "errors"

var (
	ErrInvalidLevel = errors.New("invalid log level")
	ErrNilConfig    = errors.New("logger config is nil")
)
