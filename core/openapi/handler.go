package openapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/ForestKatsch/phosphor/core/handler"
	"github.com/ForestKatsch/phosphor/core/router"
)

// ContentTypeYAML is served by YAMLHandler.
const ContentTypeYAML = "application/yaml; charset=utf-8"

// Source lazily generates and caches the document of a router. Routes must be
// registered before the first call to Document.
type Source struct {
	router *router.Router
	info   Info
	opts   []Option

	once sync.Once
	doc  *Document
}

// NewSource creates a Source for r.
func NewSource(r *router.Router, info Info, opts ...Option) *Source {
	return &Source{router: r, info: info, opts: opts}
}

// Document returns the generated document.
func (s *Source) Document() *Document {
	s.once.Do(func() {
		s.doc = Generate(s.router.Introspect(), s.info, s.opts...)
	})
	return s.doc
}

// JSONHandler serves the document through the request pipeline. Register
// it with a response schema of schema.Any().
func (s *Source) JSONHandler() handler.HandlerFunc {
	return func(context.Context, *handler.Request) (any, error) {
		return s.Document(), nil
	}
}

// YAMLHandler serves the document as YAML outside the JSON pipeline.
func (s *Source) YAMLHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := yaml.Marshal(s.Document())
		if err != nil {
			http.Error(w, "failed to encode document", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", ContentTypeYAML)
		_, _ = w.Write(data)
	})
}

// WriteJSON writes doc as indented JSON.
func WriteJSON(w io.Writer, doc *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("openapi: encode json: %w", err)
	}
	return nil
}

// WriteYAML writes doc as YAML.
func WriteYAML(w io.Writer, doc *Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("openapi: encode yaml: %w", err)
	}
	return enc.Close()
}
