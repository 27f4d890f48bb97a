package response

import (
	"encoding/json"
	"net/http"
)

// Response renders an HTTP response. Implementations set headers, status and body.
type Response func(w http.ResponseWriter, r *http.Request) error

// ContentTypeJSON is the content type of every non-empty response.
const ContentTypeJSON = "application/json; charset=utf-8"

// JSON creates an application/json response with 200 OK status.
func JSON(v any) Response {
	return JSONWithStatus(v, http.StatusOK)
}

// JSONWithStatus creates an application/json response with custom status code.
// The value is encoded before anything is written, so an encoding failure
// leaves the response untouched for the error handler.
func JSONWithStatus(v any, status int) Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		// Determine final status code
		if status == 0 {
			if v == nil {
				status = http.StatusNoContent // 204 for nil data with unspecified status
			} else {
				status = http.StatusOK
			}
		}

		// These status codes never carry a body
		switch status {
		case http.StatusNoContent, http.StatusNotModified:
			w.WriteHeader(status)
			return nil
		}

		data, err := json.Marshal(v)
		if err != nil {
			return err
		}

		w.Header().Set("Content-Type", ContentTypeJSON)
		w.WriteHeader(status)
		_, err = w.Write(data)
		return err
	}
}

// NoContent creates a 204 No Content response.
func NoContent() Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		w.WriteHeader(http.StatusNoContent)
		return nil
	}
}

// Value renders a handler result: 204 for nil, JSON otherwise.
func Value(v any) Response {
	if v == nil {
		return NoContent()
	}
	return JSON(v)
}
