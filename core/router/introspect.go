package router

import "github.com/ForestKatsch/phosphor/core/schema"

// RouteInfo describes one registered path for documentation generators.
type RouteInfo struct {
	// Path is the display form: variables as {name}, the wildcard as *.
	Path string
	// Params has one string field per variable segment.
	Params  *schema.ParamsSchema
	Methods []MethodInfo
}

// MethodInfo lists the schemas declared for one method of a route.
type MethodInfo struct {
	Method   Method
	Body     schema.Schema
	Query    schema.Schema
	Response schema.Schema
}

// Route is a flat (method, pattern) pair.
type Route struct {
	Method  string
	Pattern string
}

// Routes provides route introspection capabilities for debugging and monitoring.
type Routes interface {
	Routes() []Route
}

// Introspect lists every registered path with its declared schemas. The
// result is independent of dispatch and is rebuilt on each call.
func (r *Router) Introspect() []RouteInfo {
	entries := r.tree.Entries()
	out := make([]RouteInfo, 0, len(entries))

	for _, e := range entries {
		info := RouteInfo{
			Path:   FormatPath(e.Path),
			Params: schema.Params(ParamNames(e.Path)...),
		}
		for m, entry := range e.Value.methods {
			if entry == nil {
				continue
			}
			info.Methods = append(info.Methods, MethodInfo{
				Method:   Method(m),
				Body:     entry.Body,
				Query:    entry.Query,
				Response: entry.Response,
			})
		}
		if len(info.Methods) > 0 {
			out = append(out, info)
		}
	}

	return out
}

// Routes returns one Route per registered (method, path) pair.
func (r *Router) Routes() []Route {
	var out []Route
	for _, info := range r.Introspect() {
		for _, m := range info.Methods {
			out = append(out, Route{Method: m.Method.String(), Pattern: info.Path})
		}
	}
	return out
}
