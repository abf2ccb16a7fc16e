package message

import "errors"

var (
	ErrTooManyHeaders       = errors.New("too many headers")
	ErrHeaderFieldsTooLarge = errors.New("header fields too large")
	ErrTooManyParams        = errors.New("too many query parameters")
)
