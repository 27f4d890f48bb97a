package schema

import (
	"errors"
	"strings"
)

// Issues is a tree of validation messages. Errors holds the messages for the
// current level; Properties nests issues by field name.
type Issues struct {
	Errors     []string           `json:"errors"`
	Properties map[string]*Issues `json:"properties,omitempty"`
}

// NewIssues returns an empty issue tree.
func NewIssues() *Issues {
	return &Issues{Errors: []string{}}
}

// Add records msg at the given field path. An empty path targets the root.
func (i *Issues) Add(path []string, msg string) {
	node := i
	for _, key := range path {
		if node.Properties == nil {
			node.Properties = make(map[string]*Issues)
		}
		child, ok := node.Properties[key]
		if !ok {
			child = NewIssues()
			node.Properties[key] = child
		}
		node = child
	}
	node.Errors = append(node.Errors, msg)
}

// Empty reports whether the tree holds no messages at any level.
func (i *Issues) Empty() bool {
	if i == nil {
		return true
	}
	if len(i.Errors) > 0 {
		return false
	}
	for _, child := range i.Properties {
		if !child.Empty() {
			return false
		}
	}
	return true
}

// Get returns the subtree at path, or nil when nothing was recorded there.
func (i *Issues) Get(path ...string) *Issues {
	node := i
	for _, key := range path {
		if node == nil || node.Properties == nil {
			return nil
		}
		node = node.Properties[key]
	}
	return node
}

// first returns the first message in depth-first order with its dotted path.
func (i *Issues) first(prefix string) (string, bool) {
	if i == nil {
		return "", false
	}
	if len(i.Errors) > 0 {
		if prefix == "" {
			return i.Errors[0], true
		}
		return prefix + ": " + i.Errors[0], true
	}
	for _, key := range sortedKeys(i.Properties) {
		p := key
		if prefix != "" {
			p = prefix + "." + key
		}
		if msg, ok := i.Properties[key].first(p); ok {
			return msg, true
		}
	}
	return "", false
}

// Error is returned by Schema.Parse when validation fails.
type Error struct {
	Issues *Issues
}

// NewError returns an Error with a single message at path.
func NewError(path []string, msg string) *Error {
	issues := NewIssues()
	issues.Add(path, msg)
	return &Error{Issues: issues}
}

func (e *Error) Error() string {
	if msg, ok := e.Issues.first(""); ok {
		return "schema: " + msg
	}
	return "schema: validation failed"
}

// IssuesOf extracts the issue tree from err. It returns nil when err is not
// a schema error.
func IssuesOf(err error) *Issues {
	var se *Error
	if errors.As(err, &se) {
		return se.Issues
	}
	return nil
}

// splitPath turns "items[0].name" into ["items", "0", "name"].
func splitPath(path string) []string {
	if path == "" {
		return nil
	}
	path = strings.NewReplacer("[", ".", "]", "").Replace(path)
	parts := strings.Split(path, ".")
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
