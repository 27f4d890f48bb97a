package router

import "strings"

// SegmentKind classifies a route pattern segment.
type SegmentKind uint8

const (
	SegmentLiteral  SegmentKind = iota // users
	SegmentVariable                    // :id
	SegmentWildcard                    // *
)

// Segment is one '/'-delimited component of a route pattern.
type Segment struct {
	Kind SegmentKind
	// Value is the literal text or the variable name. Empty for wildcards.
	Value string
}

// Literal returns a segment that matches value exactly.
func Literal(value string) Segment { return Segment{Kind: SegmentLiteral, Value: value} }

// Variable returns a segment binding one component to name.
func Variable(name string) Segment { return Segment{Kind: SegmentVariable, Value: name} }

// Wildcard returns a segment capturing all remaining components.
func Wildcard() Segment { return Segment{Kind: SegmentWildcard} }

// String renders the segment in pattern syntax.
func (s Segment) String() string {
	switch s.Kind {
	case SegmentVariable:
		return ":" + s.Value
	case SegmentWildcard:
		return "*"
	}
	return s.Value
}

// ParsePath parses a route pattern such as "/users/:id/*" into segments.
// Leading, trailing and repeated separators are ignored; the root pattern
// yields an empty slice. Parsing never fails: anything that is not "*" or
// ":name" is a literal.
func ParsePath(pattern string) []Segment {
	parts := SplitPath(pattern)
	if len(parts) == 0 {
		return nil
	}

	segments := make([]Segment, len(parts))
	for i, part := range parts {
		switch {
		case part == "*":
			segments[i] = Wildcard()
		case strings.HasPrefix(part, ":"):
			segments[i] = Variable(part[1:])
		default:
			segments[i] = Literal(part)
		}
	}
	return segments
}

// SplitPath splits a concrete request path into its non-empty components
// without interpreting them.
func SplitPath(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}

	parts := strings.Split(path, "/")
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// FormatPath renders segments for display: variables as {name}, the wildcard
// as *, and the root as "/".
func FormatPath(segments []Segment) string {
	if len(segments) == 0 {
		return "/"
	}

	var b strings.Builder
	for _, s := range segments {
		b.WriteByte('/')
		switch s.Kind {
		case SegmentVariable:
			b.WriteString("{" + s.Value + "}")
		case SegmentWildcard:
			b.WriteByte('*')
		default:
			b.WriteString(s.Value)
		}
	}
	return b.String()
}

// ParamNames returns the variable names of segments in order.
func ParamNames(segments []Segment) []string {
	var names []string
	for _, s := range segments {
		if s.Kind == SegmentVariable {
			names = append(names, s.Value)
		}
	}
	return names
}
