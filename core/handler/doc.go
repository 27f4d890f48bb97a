// Package handler defines the request value and function signature shared by
// the router and the request pipeline.
//
// # Core Types
//
//	// Request carries the validated inputs of one call.
//	type Request struct {
//		Params   map[string]string // bound path variables
//		Query    any               // raw map[string]string or the query schema's output
//		Body     any               // nil or the body schema's output
//		Wildcard []string          // components captured by a trailing '*'
//		HTTP     *http.Request
//	}
//
//	// HandlerFunc returns the response value or an error.
//	type HandlerFunc func(ctx context.Context, req *Request) (any, error)
//
// A handler returning a nil value produces 204 No Content. Any other value is
// validated against the route's response schema (if declared) and encoded as
// JSON. Returned errors are translated by the pipeline: errors carrying a
// response.HTTPError are rendered as-is, everything else becomes an opaque 500.
//
// # Basic Handler Implementation
//
//	type CreateUser struct {
//		Name string `json:"name" validate:"required"`
//	}
//
//	func createUser(ctx context.Context, req *handler.Request) (any, error) {
//		body, ok := handler.BodyAs[CreateUser](req)
//		if !ok {
//			return nil, response.BadRequest("missing_body")
//		}
//		return map[string]string{"id": req.Param("org"), "name": body.Name}, nil
//	}
//
// QueryAs and BodyAs recover the typed values produced by schema.Struct.
package handler
