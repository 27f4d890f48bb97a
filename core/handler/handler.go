package handler

import "context"

// HandlerFunc handles one routed request. A nil result means no content.
type HandlerFunc func(ctx context.Context, req *Request) (any, error)
