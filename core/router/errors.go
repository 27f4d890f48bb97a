package router

import "errors"

var (
	ErrInvalidMethod = errors.New("invalid http method")
	ErrNilHandler    = errors.New("nil handler")
)
