// Package response holds the error taxonomy and the JSON renderers used by
// the request pipeline.
//
// # Error Taxonomy
//
// HTTPError is a tagged variant. Constructors fix the status for each kind:
//
//	response.NotFound()                          // 404 "not_found"
//	response.BadRequest("body_parse_error")      // 400
//	response.Validation("query_parse_error", is) // 400, carries schema issues
//	response.Internal("response schema failed")  // 500, message never sent
//	response.New(http.StatusConflict, "")        // 409 "conflict"
//
// Handlers return these as ordinary errors; the pipeline finds them with
// FromError (errors.As under the hood) and renders ToWire():
//
//	{"status": 400, "message": "body_parse_error", "validationErrors": {...}}
//
// Any other error becomes KindUnknown and is rendered as
// {"status": 500, "message": "internal_server_error"}. Internal and unknown
// errors keep their detail in Error() for logging only.
//
// # Rendering
//
// Response is a deferred renderer, func(w, r) error. JSON encodes before
// writing so that marshal failures can still be turned into an error
// response:
//
//	response.Value(result)(w, r) // 204 for nil, 200 JSON otherwise
//	response.Error(err)(w, r)
package response
