package imaging

import "errors"

var (
	ErrBadStatus = errors.New("unexpected response status")
	ErrDecode    = errors.New("failed to decode image")
	ErrEncode    = errors.New("failed to encode image")
	ErrEmptyURL  = errors.New("image url is empty")
)
