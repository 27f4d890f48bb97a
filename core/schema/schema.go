package schema

// Schema validates an untyped value and returns its typed form.
// Failures are reported as *Error.
type Schema interface {
	Parse(v any) (any, error)
}

// Describer is implemented by schemas that can document their shape.
type Describer interface {
	Describe() *Definition
}

// Func adapts an ordinary function to the Schema interface.
type Func func(v any) (any, error)

// Parse calls f(v).
func (f Func) Parse(v any) (any, error) {
	return f(v)
}

type anySchema struct{}

// Any returns a schema that accepts every value unchanged.
func Any() Schema {
	return anySchema{}
}

func (anySchema) Parse(v any) (any, error) {
	return v, nil
}

func (anySchema) Describe() *Definition {
	return &Definition{}
}

// Describe returns the definition of s, or nil if s does not implement Describer.
func Describe(s Schema) *Definition {
	if s == nil {
		return nil
	}
	if d, ok := s.(Describer); ok {
		return d.Describe()
	}
	return nil
}
