package router

import (
	"maps"
	"slices"
)

// Tree is a segment trie storing one value per distinct registered path.
// It is not safe for concurrent mutation; build it before serving and treat
// it as read-only afterwards.
type Tree[V any] struct {
	root *node[V]
}

// TreeMatch is the result of resolving a concrete path.
type TreeMatch[V any] struct {
	Value  V
	Params map[string]string
	// Wildcard holds the components captured by a wildcard edge. It is nil
	// when no wildcard took part in the match.
	Wildcard []string
}

// TreeEntry is a stored value with the pattern it was registered under.
type TreeEntry[V any] struct {
	Path  []Segment
	Value V
}

type variableEdge[V any] struct {
	name string
	node *node[V]
}

type node[V any] struct {
	// literal children, plus their insertion order for stable listing
	literals     map[string]*node[V]
	literalOrder []string

	// variable and wildcard children in registration order
	variables []variableEdge[V]
	wildcards []*node[V]

	value    V
	hasValue bool
}

// NewTree returns an empty tree.
func NewTree[V any]() *Tree[V] {
	return &Tree[V]{root: &node[V]{}}
}

// Insert stores value at path, creating nodes as needed. A value already
// stored at the same node is replaced.
func (t *Tree[V]) Insert(path []Segment, value V) {
	n := t.root
	for _, seg := range path {
		switch seg.Kind {
		case SegmentLiteral:
			next, ok := n.literals[seg.Value]
			if !ok {
				next = &node[V]{}
				if n.literals == nil {
					n.literals = make(map[string]*node[V])
				}
				n.literals[seg.Value] = next
				n.literalOrder = append(n.literalOrder, seg.Value)
			}
			n = next

		case SegmentVariable:
			next := n.variable(seg.Value)
			if next == nil {
				next = &node[V]{}
				n.variables = append(n.variables, variableEdge[V]{name: seg.Value, node: next})
			}
			n = next

		case SegmentWildcard:
			next := &node[V]{}
			n.wildcards = append(n.wildcards, next)
			n = next
		}
	}

	n.value = value
	n.hasValue = true
}

// Value returns the value stored at exactly path, without precedence search.
// Wildcard segments follow the first wildcard edge.
func (t *Tree[V]) Value(path []Segment) (V, bool) {
	var zero V
	n := t.root
	for _, seg := range path {
		var next *node[V]
		switch seg.Kind {
		case SegmentLiteral:
			next = n.literals[seg.Value]
		case SegmentVariable:
			next = n.variable(seg.Value)
		case SegmentWildcard:
			if len(n.wildcards) > 0 {
				next = n.wildcards[0]
			}
		}
		if next == nil {
			return zero, false
		}
		n = next
	}
	if !n.hasValue {
		return zero, false
	}
	return n.value, true
}

// Match resolves the components of a concrete path. At each node a literal
// edge is tried first, then variable edges in registration order, then
// wildcard edges; the first branch that reaches a value wins.
func (t *Tree[V]) Match(components []string) (TreeMatch[V], bool) {
	return t.root.match(components, 0, map[string]string{})
}

func (n *node[V]) match(components []string, i int, params map[string]string) (TreeMatch[V], bool) {
	if i >= len(components) {
		if n.hasValue {
			return TreeMatch[V]{Value: n.value, Params: params}, true
		}
		for _, w := range n.wildcards {
			if w.hasValue {
				return TreeMatch[V]{Value: w.value, Params: params, Wildcard: []string{}}, true
			}
		}
		return TreeMatch[V]{}, false
	}

	component := components[i]

	if next, ok := n.literals[component]; ok {
		if m, ok := next.match(components, i+1, params); ok {
			return m, true
		}
	}

	for _, edge := range n.variables {
		bound := maps.Clone(params)
		bound[edge.name] = component
		if m, ok := edge.node.match(components, i+1, bound); ok {
			return m, true
		}
	}

	for _, w := range n.wildcards {
		if w.hasValue {
			return TreeMatch[V]{
				Value:    w.value,
				Params:   params,
				Wildcard: slices.Clone(components[i:]),
			}, true
		}
	}

	return TreeMatch[V]{}, false
}

// Entries lists every stored value depth-first: the node itself, then literal,
// variable and wildcard children.
func (t *Tree[V]) Entries() []TreeEntry[V] {
	var out []TreeEntry[V]
	t.root.walk(nil, func(path []Segment, v V) {
		out = append(out, TreeEntry[V]{Path: path, Value: v})
	})
	return out
}

func (n *node[V]) walk(path []Segment, fn func([]Segment, V)) {
	if n.hasValue {
		fn(slices.Clone(path), n.value)
	}
	for _, lit := range n.literalOrder {
		n.literals[lit].walk(append(slices.Clone(path), Literal(lit)), fn)
	}
	for _, edge := range n.variables {
		edge.node.walk(append(slices.Clone(path), Variable(edge.name)), fn)
	}
	for _, w := range n.wildcards {
		w.walk(append(slices.Clone(path), Wildcard()), fn)
	}
}

func (n *node[V]) variable(name string) *node[V] {
	for _, edge := range n.variables {
		if edge.name == name {
			return edge.node
		}
	}
	return nil
}
