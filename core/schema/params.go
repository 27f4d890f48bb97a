package schema

import "slices"

// ParamsSchema describes a set of string path parameters.
type ParamsSchema struct {
	names []string
}

// Params returns a schema of required string fields with the given names.
func Params(names ...string) *ParamsSchema {
	return &ParamsSchema{names: slices.Clone(names)}
}

// Names returns the parameter names in declaration order.
func (p *ParamsSchema) Names() []string {
	return slices.Clone(p.names)
}

// Parse accepts a map[string]string holding every declared name.
func (p *ParamsSchema) Parse(v any) (any, error) {
	params, ok := v.(map[string]string)
	if !ok {
		return nil, NewError(nil, "expected object of strings")
	}
	issues := NewIssues()
	for _, name := range p.names {
		if _, ok := params[name]; !ok {
			issues.Add([]string{name}, "required")
		}
	}
	if !issues.Empty() {
		return nil, &Error{Issues: issues}
	}
	return params, nil
}

func (p *ParamsSchema) Describe() *Definition {
	def := &Definition{Type: "object", Properties: make(map[string]*Definition, len(p.names))}
	for _, name := range p.names {
		def.Properties[name] = &Definition{Type: "string"}
		def.Required = append(def.Required, name)
	}
	return def
}
