// Package router matches HTTP method and path pairs against registered
// handlers.
//
// Patterns are split on '/' into segments:
//
//	users        literal, matches exactly
//	:id          variable, matches one component and binds it to "id"
//	*            wildcard, matches every remaining component (possibly none)
//
// Routes live in a segment trie shared by a root Router and every sub-router
// derived from it with Route:
//
//	r := router.New()
//	users := r.Route("/users")
//	users.Get(listUsers)
//	users.Route("/:id").Get(getUser, router.Schemas{Response: schema.Struct[User]()})
//	r.Route("/files/*").Get(serveFile)
//
// # Matching
//
// At each node a literal edge is tried first, then variable edges in
// registration order, then wildcard edges. A branch that fails deeper in the
// trie backtracks to the next candidate, so /users/new can coexist with
// /users/:id and /users/:id/posts.
//
// Request paths are split without interpretation: a component that looks
// like ":x" or "*" in a request is matched as plain text.
//
// # Methods
//
// Methods form a closed set (GET, HEAD, POST, PUT, PATCH, DELETE, OPTIONS,
// CONNECT, TRACE). On with any other name panics with ErrInvalidMethod.
// A path that matches but has no handler for the requested method does not
// match at all.
//
// # Introspection
//
// Introspect returns every registered path in display form ("/users/{id}")
// with its parameter names and per-method schemas. It is read-only and is
// what the openapi package consumes.
package router
