package response

import "net/http"

// Error renders err as a JSON error response using its wire form. Errors
// outside the taxonomy render as an opaque 500.
func Error(err error) Response {
	httpErr := FromError(err)
	if httpErr == nil {
		httpErr = Unknown(nil)
	}
	return JSONWithStatus(httpErr.ToWire(), httpErr.Status)
}

// WriteError renders err to w and returns the resolved HTTPError so callers
// can log it.
func WriteError(w http.ResponseWriter, r *http.Request, err error) *HTTPError {
	httpErr := FromError(err)
	if httpErr == nil {
		httpErr = Unknown(nil)
	}
	if rerr := JSONWithStatus(httpErr.ToWire(), httpErr.Status)(w, r); rerr != nil {
		http.Error(w, `{"status":500,"message":"internal_server_error"}`, http.StatusInternalServerError)
	}
	return httpErr
}
