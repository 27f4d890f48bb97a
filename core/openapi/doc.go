// Package openapi generates OpenAPI 3.1 documents from router introspection.
//
// Path parameters come from the route's variable segments, query parameters
// from the properties of the query schema, and request and response bodies
// from the body and response schemas. A route without a response schema is
// documented as 204 No Content. Every operation carries a default error
// response matching the wire error shape.
//
//	src := openapi.NewSource(r, openapi.Info{Title: "API", Version: "1.0.0"})
//	r.Route("/openapi.json").Get(src.JSONHandler(), router.Schemas{Response: schema.Any()})
package openapi
