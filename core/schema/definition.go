package schema

import (
	"maps"
	"reflect"
	"slices"
	"strings"
	"time"
)

// Definition is the subset of JSON Schema needed to document routes.
// An empty Definition accepts any value.
type Definition struct {
	Type                 string                 `json:"type,omitempty" yaml:"type,omitempty"`
	Format               string                 `json:"format,omitempty" yaml:"format,omitempty"`
	Description          string                 `json:"description,omitempty" yaml:"description,omitempty"`
	Enum                 []string               `json:"enum,omitempty" yaml:"enum,omitempty"`
	Items                *Definition            `json:"items,omitempty" yaml:"items,omitempty"`
	Properties           map[string]*Definition `json:"properties,omitempty" yaml:"properties,omitempty"`
	AdditionalProperties *Definition            `json:"additionalProperties,omitempty" yaml:"additionalProperties,omitempty"`
	Required             []string               `json:"required,omitempty" yaml:"required,omitempty"`
}

var timeType = reflect.TypeFor[time.Time]()

func definitionOf(t reflect.Type, seen map[reflect.Type]bool) *Definition {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == timeType {
		return &Definition{Type: "string", Format: "date-time"}
	}

	switch t.Kind() {
	case reflect.String:
		return &Definition{Type: "string"}
	case reflect.Bool:
		return &Definition{Type: "boolean"}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &Definition{Type: "integer"}
	case reflect.Float32, reflect.Float64:
		return &Definition{Type: "number"}
	case reflect.Slice, reflect.Array:
		return &Definition{Type: "array", Items: definitionOf(t.Elem(), seen)}
	case reflect.Map:
		return &Definition{Type: "object", AdditionalProperties: definitionOf(t.Elem(), seen)}
	case reflect.Struct:
		if seen[t] {
			return &Definition{Type: "object"}
		}
		seen[t] = true
		defer delete(seen, t)
		return structDefinition(t, seen)
	}
	return &Definition{}
}

func structDefinition(t reflect.Type, seen map[reflect.Type]bool) *Definition {
	def := &Definition{Type: "object", Properties: map[string]*Definition{}}
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = f.Name
		}

		prop := definitionOf(f.Type, seen)
		rules := strings.Split(f.Tag.Get("validate"), ",")
		for _, rule := range rules {
			if values, ok := strings.CutPrefix(rule, "oneof="); ok && prop.Type == "string" {
				prop.Enum = strings.Fields(values)
			}
		}
		if slices.Contains(rules, "required") {
			def.Required = append(def.Required, name)
		}
		if desc := f.Tag.Get("doc"); desc != "" {
			prop.Description = desc
		}
		def.Properties[name] = prop
	}
	return def
}

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}
