package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/ForestKatsch/phosphor/core/handler"
	"github.com/ForestKatsch/phosphor/core/logger"
	"github.com/ForestKatsch/phosphor/core/response"
	"github.com/ForestKatsch/phosphor/core/router"
	"github.com/ForestKatsch/phosphor/core/schema"
)

// TracerName is the instrumentation name used for pipeline spans.
const TracerName = "github.com/ForestKatsch/phosphor/core/server"

// Handler runs the request pipeline: match, validate query and body, call the
// route handler, validate its result and render JSON. Every failure is
// rendered through the response error taxonomy.
type Handler struct {
	router       *router.Router
	logger       *slog.Logger
	metrics      *Metrics
	tracer       trace.Tracer
	maxBodyBytes int64
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithRequestLogger sets the logger used for access and failure logs. Build it
// with logger.WithContextExtractors(RequestIDExtractor) to tag records with
// the request id.
func WithRequestLogger(l *slog.Logger) HandlerOption {
	return func(h *Handler) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithMetrics enables Prometheus observations.
func WithMetrics(m *Metrics) HandlerOption {
	return func(h *Handler) { h.metrics = m }
}

// WithTracerProvider overrides the global OpenTelemetry provider.
func WithTracerProvider(tp trace.TracerProvider) HandlerOption {
	return func(h *Handler) {
		if tp != nil {
			h.tracer = tp.Tracer(TracerName)
		}
	}
}

// WithMaxBodyBytes bounds request bodies. Values <= 0 are ignored.
func WithMaxBodyBytes(n int64) HandlerOption {
	return func(h *Handler) {
		if n > 0 {
			h.maxBodyBytes = n
		}
	}
}

// NewHandler wraps r in the request pipeline. It panics when r is nil.
func NewHandler(r *router.Router, opts ...HandlerOption) *Handler {
	if r == nil {
		panic(ErrNilRouter)
	}
	h := &Handler{
		router:       r,
		logger:       logger.Discard(),
		tracer:       otel.Tracer(TracerName),
		maxBodyBytes: DefaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ww := newResponseWriter(w)
	h.metrics.begin()

	id := requestID(r.Header.Get(RequestIDHeader))
	ww.Header().Set(RequestIDHeader, id)
	ctx := withRequestID(r.Context(), id)

	match, found := h.router.Match(r.Method, r.URL.EscapedPath())
	route, method := unmatchedRoute, methodLabel(r.Method)
	if found {
		route, method = match.Pattern, match.Method.String()
	}

	ctx, span := h.tracer.Start(ctx, method+" "+route,
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("http.route", route),
			attribute.String("url.path", r.URL.Path),
			attribute.String("request.id", id),
		),
	)
	defer span.End()
	r = r.WithContext(ctx)

	var herr *response.HTTPError
	if found {
		herr = h.serve(ww, r, match)
	} else {
		herr = response.NotFound()
	}
	if herr != nil {
		h.fail(ww, r, herr)
	}

	status := ww.Status()
	span.SetAttributes(attribute.Int("http.response.status_code", status))
	if status >= http.StatusInternalServerError {
		span.SetStatus(codes.Error, http.StatusText(status))
	}

	elapsed := time.Since(start)
	h.metrics.observe(method, route, status, elapsed)

	level := slog.LevelInfo
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	h.logger.LogAttrs(ctx, level, "request completed",
		logger.Method(r.Method),
		logger.Path(r.URL.Path),
		logger.Route(route),
		logger.StatusCode(status),
		logger.BytesOut(ww.bytes),
		logger.Latency(elapsed),
		logger.ClientIP(r.RemoteAddr),
	)
}

// serve runs the matched route. A nil return means the response was written.
func (h *Handler) serve(w *responseWriter, r *http.Request, m *router.MatchResult) (herr *response.HTTPError) {
	defer func() {
		if p := recover(); p != nil {
			herr = response.Unknown(&panicError{value: p, stack: debug.Stack()})
		}
	}()

	req := &handler.Request{
		Params:   m.Params,
		Query:    queryValues(r),
		Wildcard: m.Wildcard,
		HTTP:     r,
	}
	if req.Params == nil {
		req.Params = map[string]string{}
	}
	schemas := m.Entry.Schemas

	if schemas.Query != nil {
		q, err := schemas.Query.Parse(req.Query)
		if err != nil {
			return validationError(MessageQueryParse, err)
		}
		req.Query = q
	}

	if schemas.Body != nil {
		raw, rerr := h.readBody(w, r)
		if rerr != nil {
			return rerr
		}
		body, err := schemas.Body.Parse(raw)
		if err != nil {
			return validationError(MessageBodyParse, err)
		}
		req.Body = body
	}

	result, err := m.Entry.Handler(r.Context(), req)
	if err != nil {
		return response.FromError(err)
	}

	if schemas.Response != nil {
		out, err := schemas.Response.Parse(result)
		if err != nil {
			h.logger.ErrorContext(r.Context(), "response failed validation",
				logger.Route(m.Pattern),
				logger.Key("issues", schema.IssuesOf(err)),
				logger.Error(err),
			)
			return response.Internal("response failed validation").WithCause(err)
		}
		result = out
	}

	if err := response.Value(result)(w, r); err != nil {
		if w.Written() {
			h.logger.ErrorContext(r.Context(), "response write failed", logger.Error(err))
			return nil
		}
		return response.Unknown(fmt.Errorf("encode response: %w", err))
	}
	return nil
}

// readBody reads the whole payload within the size limit. An empty or
// whitespace-only payload yields nil.
func (h *Handler) readBody(w http.ResponseWriter, r *http.Request) (any, *response.HTTPError) {
	if r.Body == nil || r.Body == http.NoBody {
		return nil, nil
	}
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, response.New(http.StatusRequestEntityTooLarge, "")
		}
		if ctxErr := r.Context().Err(); ctxErr != nil {
			return nil, response.Unknown(fmt.Errorf("read body: %w", ctxErr))
		}
		return nil, response.BadRequest(MessageBodyParse, "unreadable body")
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, response.BadRequest(MessageBodyParse)
	}
	return v, nil
}

func (h *Handler) fail(w *responseWriter, r *http.Request, herr *response.HTTPError) {
	ctx := r.Context()
	if herr.Kind == response.KindInternal || herr.Kind == response.KindUnknown {
		attrs := []slog.Attr{logger.Error(herr), logger.Path(r.URL.Path), logger.Method(r.Method)}
		var pe PanicError
		if errors.As(herr, &pe) {
			attrs = append(attrs, slog.String("stack", string(pe.Stack())))
		}
		h.logger.LogAttrs(ctx, slog.LevelError, "request failed", attrs...)
		trace.SpanFromContext(ctx).RecordError(herr)
	}

	if w.Written() {
		h.logger.WarnContext(ctx, "error after response written", logger.Error(herr), logger.StatusCode(w.Status()))
		return
	}
	response.WriteError(w, r, herr)
}

// queryValues flattens the URL query. Repeated keys keep the last value.
func queryValues(r *http.Request) map[string]string {
	values := r.URL.Query()
	out := make(map[string]string, len(values))
	for k, v := range values {
		if len(v) > 0 {
			out[k] = v[len(v)-1]
		}
	}
	return out
}

func validationError(message string, err error) *response.HTTPError {
	issues := schema.IssuesOf(err)
	if issues == nil {
		issues = schema.NewIssues()
		issues.Add(nil, err.Error())
	}
	return response.Validation(message, issues)
}

// methodLabel bounds the method label for requests with unknown methods.
func methodLabel(method string) string {
	if m, ok := router.ParseMethod(method); ok {
		return m.String()
	}
	return "OTHER"
}
