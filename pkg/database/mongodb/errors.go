package mongodb

import "errors"

var (
	ErrConnectFailed    = errors.New("failed to connect to mongodb")
	ErrPingFailed       = errors.New("failed to ping mongodb")
	ErrDisconnectFailed = errors.New("failed to disconnect from mongodb")
	ErrNilConfig        = errors.New("mongodb config is nil")
)
