package handler

import (
	"context"
	"net/http"
)

// Request holds everything the pipeline extracted and validated for a handler.
type Request struct {
	// Params maps variable names to the raw path components they matched.
	Params map[string]string

	// Query starts as map[string]string and is replaced by the query schema's
	// output when the route declares one.
	Query any

	// Body is nil unless the route declares a body schema.
	Body any

	// Wildcard holds the components captured by a trailing '*', or nil when
	// the matched route has no wildcard.
	Wildcard []string

	// HTTP is the underlying request.
	HTTP *http.Request
}

// Context returns the request's context, or context.Background when no HTTP
// request is attached.
func (r *Request) Context() context.Context {
	if r.HTTP == nil {
		return context.Background()
	}
	return r.HTTP.Context()
}

// Param returns the value bound to a path variable, or "".
func (r *Request) Param(key string) string {
	if r.Params == nil {
		return ""
	}
	return r.Params[key]
}

// RawQuery returns the unvalidated query value for key. It only works before a
// query schema replaced Query.
func (r *Request) RawQuery(key string) string {
	if q, ok := r.Query.(map[string]string); ok {
		return q[key]
	}
	return ""
}

// QueryAs returns the query value as T.
func QueryAs[T any](r *Request) (T, bool) {
	return as[T](r.Query)
}

// BodyAs returns the body value as T.
func BodyAs[T any](r *Request) (T, bool) {
	return as[T](r.Body)
}

func as[T any](v any) (T, bool) {
	switch typed := v.(type) {
	case T:
		return typed, true
	case *T:
		if typed != nil {
			return *typed, true
		}
	}
	var zero T
	return zero, false
}
