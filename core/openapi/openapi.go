package openapi

import (
	"slices"
	"strings"

	"github.com/ForestKatsch/phosphor/core/router"
	"github.com/ForestKatsch/phosphor/core/schema"
)

// Version is the OpenAPI version of generated documents.
const Version = "3.1.0"

const contentTypeJSON = "application/json"

// Info contains API metadata.
type Info struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Version     string `json:"version" yaml:"version"`
}

// Server is an entry of the servers list.
type Server struct {
	URL string `json:"url" yaml:"url"`
}

// Document is an OpenAPI 3.1 document.
type Document struct {
	OpenAPI string              `json:"openapi" yaml:"openapi"`
	Info    Info                `json:"info" yaml:"info"`
	Servers []Server            `json:"servers,omitempty" yaml:"servers,omitempty"`
	Paths   map[string]PathItem `json:"paths" yaml:"paths"`
}

// PathItem maps lower-case method names to operations.
type PathItem map[string]*Operation

// Operation documents one method of a path.
type Operation struct {
	OperationID string              `json:"operationId,omitempty" yaml:"operationId,omitempty"`
	Parameters  []Parameter         `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	RequestBody *RequestBody        `json:"requestBody,omitempty" yaml:"requestBody,omitempty"`
	Responses   map[string]Response `json:"responses" yaml:"responses"`
}

// Parameter is a path or query parameter.
type Parameter struct {
	Name        string             `json:"name" yaml:"name"`
	In          string             `json:"in" yaml:"in"`
	Description string             `json:"description,omitempty" yaml:"description,omitempty"`
	Required    bool               `json:"required,omitempty" yaml:"required,omitempty"`
	Schema      *schema.Definition `json:"schema" yaml:"schema"`
}

// RequestBody documents a JSON request body.
type RequestBody struct {
	Required bool                 `json:"required,omitempty" yaml:"required,omitempty"`
	Content  map[string]MediaType `json:"content" yaml:"content"`
}

// Response documents one status code.
type Response struct {
	Description string               `json:"description" yaml:"description"`
	Content     map[string]MediaType `json:"content,omitempty" yaml:"content,omitempty"`
}

// MediaType wraps the schema of a content type.
type MediaType struct {
	Schema *schema.Definition `json:"schema" yaml:"schema"`
}

// Option configures Generate.
type Option func(*Document)

// WithServers sets the servers list.
func WithServers(urls ...string) Option {
	return func(d *Document) {
		for _, u := range urls {
			d.Servers = append(d.Servers, Server{URL: u})
		}
	}
}

// Generate builds a document from router introspection output. Schemas that
// cannot describe themselves are documented as accepting any value.
func Generate(routes []router.RouteInfo, info Info, opts ...Option) *Document {
	if info.Title == "" {
		info.Title = "API"
	}
	if info.Version == "" {
		info.Version = "1.0.0"
	}

	doc := &Document{
		OpenAPI: Version,
		Info:    info,
		Paths:   make(map[string]PathItem, len(routes)),
	}
	for _, opt := range opts {
		opt(doc)
	}

	for _, route := range routes {
		item := make(PathItem, len(route.Methods))
		for _, m := range route.Methods {
			item[strings.ToLower(m.Method.String())] = operation(route, m)
		}
		doc.Paths[route.Path] = item
	}

	return doc
}

func operation(route router.RouteInfo, m router.MethodInfo) *Operation {
	op := &Operation{
		OperationID: operationID(m.Method, route.Path),
		Responses:   make(map[string]Response, 2),
	}

	if route.Params != nil {
		for _, name := range route.Params.Names() {
			op.Parameters = append(op.Parameters, Parameter{
				Name:     name,
				In:       "path",
				Required: true,
				Schema:   &schema.Definition{Type: "string"},
			})
		}
	}

	if m.Query != nil {
		op.Parameters = append(op.Parameters, queryParameters(m.Query)...)
	}

	if m.Body != nil {
		op.RequestBody = &RequestBody{
			Content: map[string]MediaType{contentTypeJSON: {Schema: definition(m.Body)}},
		}
	}

	if m.Response != nil {
		op.Responses["200"] = Response{
			Description: "Success",
			Content:     map[string]MediaType{contentTypeJSON: {Schema: definition(m.Response)}},
		}
	} else {
		op.Responses["204"] = Response{Description: "No Content"}
	}
	op.Responses["default"] = Response{
		Description: "Error",
		Content:     map[string]MediaType{contentTypeJSON: {Schema: ErrorDefinition()}},
	}

	return op
}

func queryParameters(s schema.Schema) []Parameter {
	def := schema.Describe(s)
	if def == nil || len(def.Properties) == 0 {
		return nil
	}

	names := make([]string, 0, len(def.Properties))
	for name := range def.Properties {
		names = append(names, name)
	}
	slices.Sort(names)

	params := make([]Parameter, 0, len(names))
	for _, name := range names {
		prop := def.Properties[name]
		params = append(params, Parameter{
			Name:        name,
			In:          "query",
			Description: prop.Description,
			Required:    slices.Contains(def.Required, name),
			Schema:      prop,
		})
	}
	return params
}

func definition(s schema.Schema) *schema.Definition {
	if def := schema.Describe(s); def != nil {
		return def
	}
	return &schema.Definition{}
}

// ErrorDefinition describes the JSON body of every error response.
func ErrorDefinition() *schema.Definition {
	return &schema.Definition{
		Type: "object",
		Properties: map[string]*schema.Definition{
			"status":           {Type: "integer"},
			"message":          {Type: "string"},
			"context":          {Type: "string"},
			"validationErrors": issuesDefinition(),
		},
		Required: []string{"status", "message"},
	}
}

func issuesDefinition() *schema.Definition {
	return &schema.Definition{
		Type: "object",
		Properties: map[string]*schema.Definition{
			"errors":     {Type: "array", Items: &schema.Definition{Type: "string"}},
			"properties": {Type: "object", AdditionalProperties: &schema.Definition{Type: "object"}},
		},
		Required: []string{"errors"},
	}
}

// operationID derives a stable id such as "get_users_id" from method and path.
func operationID(m router.Method, path string) string {
	var b strings.Builder
	b.WriteString(strings.ToLower(m.String()))
	for _, part := range strings.Split(path, "/") {
		part = strings.Trim(part, "{}")
		switch part {
		case "":
			continue
		case "*":
			part = "wildcard"
		}
		b.WriteByte('_')
		b.WriteString(part)
	}
	return b.String()
}
