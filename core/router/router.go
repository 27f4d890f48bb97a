package router

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/ForestKatsch/phosphor/core/handler"
	"github.com/ForestKatsch/phosphor/core/schema"
)

// Schemas declares the optional validation for one route method.
type Schemas struct {
	Body     schema.Schema
	Query    schema.Schema
	Response schema.Schema
}

// Entry is a registered handler together with its schemas.
type Entry struct {
	Handler handler.HandlerFunc
	Schemas
}

// endpoints is the value stored at each trie node.
type endpoints struct {
	path    []Segment
	methods methodTable
}

// Router registers handlers on a segment trie and resolves requests against it.
// Routers returned by Route share the trie of their parent, so routes added to
// a sub-router are visible from the root.
//
// Registration is not synchronized. Build the route tree before serving; after
// that Match and Introspect are safe for concurrent use.
type Router struct {
	tree   *Tree[*endpoints]
	base   []Segment
	logger *slog.Logger
}

// New creates an empty router rooted at "/".
func New(opts ...Option) *Router {
	r := &Router{
		tree:   NewTree[*endpoints](),
		logger: slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Route returns a router for the base path extended by pattern.
func (r *Router) Route(pattern string) *Router {
	return &Router{
		tree:   r.tree,
		base:   slices.Concat(r.base, ParsePath(pattern)),
		logger: r.logger,
	}
}

// Path returns the router's base path in display form.
func (r *Router) Path() string {
	return FormatPath(r.base)
}

// On registers h for method at the router's base path. Registering the same
// method twice replaces the earlier entry. It panics on an unknown method or a
// nil handler.
func (r *Router) On(method string, h handler.HandlerFunc, schemas ...Schemas) *Router {
	m, ok := ParseMethod(method)
	if !ok {
		panic(fmt.Errorf("%w: %s", ErrInvalidMethod, method))
	}
	return r.Handle(m, h, schemas...)
}

// Handle is On with a resolved Method.
func (r *Router) Handle(m Method, h handler.HandlerFunc, schemas ...Schemas) *Router {
	if m >= methodCount {
		panic(fmt.Errorf("%w: %d", ErrInvalidMethod, m))
	}
	if h == nil {
		panic(fmt.Errorf("%w on %s %s", ErrNilHandler, m, r.Path()))
	}

	entry := &Entry{Handler: h, Schemas: mergeSchemas(schemas)}

	// Reuse the stored table so a repeated wildcard path does not grow a
	// second wildcard edge.
	eps, ok := r.tree.Value(r.base)
	if !ok {
		eps = &endpoints{path: slices.Clone(r.base)}
		r.tree.Insert(r.base, eps)
	}
	if eps.methods[m] != nil {
		r.logger.Warn("route replaced", "method", m.String(), "path", r.Path())
	}
	eps.methods[m] = entry

	r.logger.Debug("route registered", "method", m.String(), "path", r.Path())
	return r
}

func (r *Router) Get(h handler.HandlerFunc, schemas ...Schemas) *Router {
	return r.Handle(MethodGet, h, schemas...)
}

func (r *Router) Post(h handler.HandlerFunc, schemas ...Schemas) *Router {
	return r.Handle(MethodPost, h, schemas...)
}

func (r *Router) Put(h handler.HandlerFunc, schemas ...Schemas) *Router {
	return r.Handle(MethodPut, h, schemas...)
}

func (r *Router) Patch(h handler.HandlerFunc, schemas ...Schemas) *Router {
	return r.Handle(MethodPatch, h, schemas...)
}

func (r *Router) Delete(h handler.HandlerFunc, schemas ...Schemas) *Router {
	return r.Handle(MethodDelete, h, schemas...)
}

func (r *Router) Options(h handler.HandlerFunc, schemas ...Schemas) *Router {
	return r.Handle(MethodOptions, h, schemas...)
}

func (r *Router) Head(h handler.HandlerFunc, schemas ...Schemas) *Router {
	return r.Handle(MethodHead, h, schemas...)
}

// MatchResult is a resolved route.
type MatchResult struct {
	Entry  *Entry
	Method Method
	// Pattern is the display form of the matched route, e.g. "/users/{id}".
	Pattern string
	Params  map[string]string
	// Wildcard is nil unless the route ends in '*'.
	Wildcard []string
}

// Match resolves method and a concrete path. It reports false when no path
// matches or the matched path has no handler for method.
func (r *Router) Match(method, path string) (*MatchResult, bool) {
	m, ok := ParseMethod(method)
	if !ok {
		return nil, false
	}

	found, ok := r.tree.Match(SplitPath(path))
	if !ok {
		return nil, false
	}

	entry := found.Value.methods[m]
	if entry == nil {
		return nil, false
	}

	return &MatchResult{
		Entry:    entry,
		Method:   m,
		Pattern:  FormatPath(found.Value.path),
		Params:   found.Params,
		Wildcard: found.Wildcard,
	}, true
}

// Allowed returns the methods registered at the path that matches path,
// in enumeration order.
func (r *Router) Allowed(path string) []Method {
	found, ok := r.tree.Match(SplitPath(path))
	if !ok {
		return nil
	}
	var out []Method
	for m, e := range found.Value.methods {
		if e != nil {
			out = append(out, Method(m))
		}
	}
	return out
}

func mergeSchemas(list []Schemas) Schemas {
	var out Schemas
	for _, s := range list {
		if s.Body != nil {
			out.Body = s.Body
		}
		if s.Query != nil {
			out.Query = s.Query
		}
		if s.Response != nil {
			out.Response = s.Response
		}
	}
	return out
}
