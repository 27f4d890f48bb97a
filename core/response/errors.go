package response

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/ForestKatsch/phosphor/core/schema"
)

// Kind tags the variant of an HTTPError.
type Kind uint8

const (
	// KindUnknown wraps a failure outside the taxonomy. Rendered as an opaque 500.
	KindUnknown Kind = iota
	// KindStatus is a plain status error raised by a handler.
	KindStatus
	KindNotFound
	KindBadRequest
	KindValidation
	// KindInternal is a server-side contract violation. Its message never
	// reaches the client.
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindStatus:
		return "status"
	case KindNotFound:
		return "not_found"
	case KindBadRequest:
		return "bad_request"
	case KindValidation:
		return "validation"
	case KindInternal:
		return "internal"
	}
	return "unknown"
}

// Stable message keys used on the wire.
const (
	MessageNotFound            = "not_found"
	MessageBadRequest          = "bad_request"
	MessageValidation          = "validation_error"
	MessageInternalServerError = "internal_server_error"
)

// HTTPError is the error taxonomy shared by the pipeline and handlers.
type HTTPError struct {
	Kind    Kind
	Status  int
	Message string
	Context string
	// Issues is set for KindValidation only.
	Issues *schema.Issues

	internal string
	cause    error
}

// New creates a plain status error. An empty message defaults to the status
// text in snake_case, e.g. 409 becomes "conflict".
func New(status int, message string, context ...string) *HTTPError {
	if message == "" {
		message = StatusKey(status)
	}
	return &HTTPError{
		Kind:    KindStatus,
		Status:  status,
		Message: message,
		Context: strings.Join(context, "; "),
	}
}

// NotFound reports that no route or resource matched.
func NotFound(context ...string) *HTTPError {
	e := New(http.StatusNotFound, MessageNotFound, context...)
	e.Kind = KindNotFound
	return e
}

// BadRequest reports malformed request framing, such as an unparsable body.
func BadRequest(message string, context ...string) *HTTPError {
	if message == "" {
		message = MessageBadRequest
	}
	e := New(http.StatusBadRequest, message, context...)
	e.Kind = KindBadRequest
	return e
}

// Validation reports a schema failure. The issues are sent to the client.
func Validation(message string, issues *schema.Issues) *HTTPError {
	if message == "" {
		message = MessageValidation
	}
	e := New(http.StatusBadRequest, message)
	e.Kind = KindValidation
	e.Issues = issues
	return e
}

// Internal reports a server-side failure. internalMessage is kept for logs
// only; the client sees "internal_server_error".
func Internal(internalMessage string) *HTTPError {
	return &HTTPError{
		Kind:     KindInternal,
		Status:   http.StatusInternalServerError,
		Message:  MessageInternalServerError,
		internal: internalMessage,
	}
}

// Unknown wraps an error that is not part of the taxonomy.
func Unknown(cause error) *HTTPError {
	return &HTTPError{
		Kind:    KindUnknown,
		Status:  http.StatusInternalServerError,
		Message: MessageInternalServerError,
		cause:   cause,
	}
}

// FromError returns the HTTPError inside err's chain, or wraps err as Unknown.
func FromError(err error) *HTTPError {
	if err == nil {
		return nil
	}
	var he *HTTPError
	if errors.As(err, &he) {
		return he
	}
	return Unknown(err)
}

// Error implements the error interface. It includes internal detail and is
// meant for logs, not for clients.
func (e *HTTPError) Error() string {
	msg := fmt.Sprintf("%d %s", e.Status, e.Message)
	if e.Context != "" {
		msg += ": " + e.Context
	}
	if e.internal != "" {
		msg += ": " + e.internal
	}
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	return msg
}

// Unwrap returns the wrapped cause, if any.
func (e *HTTPError) Unwrap() error {
	return e.cause
}

// StatusCode returns the HTTP status code for the error.
func (e *HTTPError) StatusCode() int {
	return e.Status
}

// InternalMessage returns the log-only message of an Internal error.
func (e *HTTPError) InternalMessage() string {
	return e.internal
}

// WithCause returns a copy of the error wrapping cause.
func (e *HTTPError) WithCause(cause error) *HTTPError {
	c := *e
	c.cause = cause
	return &c
}

// WithContext returns a copy of the error with context attached. Context is
// never attached to Internal or Unknown errors since it would reach the client.
func (e *HTTPError) WithContext(context string) *HTTPError {
	c := *e
	if e.Kind != KindInternal && e.Kind != KindUnknown {
		c.Context = context
	}
	return &c
}

// WireError is the JSON body of every error response.
type WireError struct {
	Status           int            `json:"status"`
	Message          string         `json:"message"`
	Context          string         `json:"context,omitempty"`
	ValidationErrors *schema.Issues `json:"validationErrors,omitempty"`
}

// ToWire maps the error to its client-facing form.
func (e *HTTPError) ToWire() WireError {
	switch e.Kind {
	case KindInternal, KindUnknown:
		return WireError{Status: e.Status, Message: MessageInternalServerError}
	case KindValidation:
		issues := e.Issues
		if issues == nil {
			issues = schema.NewIssues()
		}
		return WireError{Status: e.Status, Message: e.Message, Context: e.Context, ValidationErrors: issues}
	}
	return WireError{Status: e.Status, Message: e.Message, Context: e.Context}
}

// StatusKey returns the status text of code in snake_case.
func StatusKey(code int) string {
	text := http.StatusText(code)
	if text == "" {
		return "unknown_error"
	}
	text = strings.ToLower(text)
	text = strings.NewReplacer("'", "", "-", "_", " ", "_").Replace(text)
	return text
}
