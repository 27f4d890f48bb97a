package router_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ForestKatsch/phosphor/core/router"
)

func newTree(patterns ...string) *router.Tree[string] {
	tree := router.NewTree[string]()
	for _, p := range patterns {
		tree.Insert(router.ParsePath(p), p)
	}
	return tree
}

func TestTreeMatch(t *testing.T) {
	t.Parallel()

	t.Run("matches the root", func(t *testing.T) {
		t.Parallel()

		m, ok := newTree("/").Match(router.SplitPath("/"))
		require.True(t, ok)
		assert.Equal(t, "/", m.Value)
		assert.Empty(t, m.Params)
		assert.Nil(t, m.Wildcard)
	})

	t.Run("prefers literal over variable", func(t *testing.T) {
		t.Parallel()

		tree := newTree("/users/:id", "/users/new")

		m, ok := tree.Match([]string{"users", "new"})
		require.True(t, ok)
		assert.Equal(t, "/users/new", m.Value)
		assert.Empty(t, m.Params)

		m, ok = tree.Match([]string{"users", "42"})
		require.True(t, ok)
		assert.Equal(t, "/users/:id", m.Value)
		assert.Equal(t, map[string]string{"id": "42"}, m.Params)
	})

	t.Run("backtracks from a literal dead end", func(t *testing.T) {
		t.Parallel()

		tree := newTree("/users/new", "/users/:id/posts")

		m, ok := tree.Match([]string{"users", "new", "posts"})
		require.True(t, ok)
		assert.Equal(t, "/users/:id/posts", m.Value)
		assert.Equal(t, map[string]string{"id": "new"}, m.Params)
	})

	t.Run("tries variables in registration order", func(t *testing.T) {
		t.Parallel()

		tree := newTree("/x/:a/one", "/x/:b/two")

		m, ok := tree.Match([]string{"x", "v", "one"})
		require.True(t, ok)
		assert.Equal(t, map[string]string{"a": "v"}, m.Params)

		m, ok = tree.Match([]string{"x", "v", "two"})
		require.True(t, ok)
		assert.Equal(t, map[string]string{"b": "v"}, m.Params, "bindings from the failed branch are dropped")
	})

	t.Run("first registered variable wins on a tie", func(t *testing.T) {
		t.Parallel()

		tree := newTree("/x/:a", "/x/:b")

		m, ok := tree.Match([]string{"x", "v"})
		require.True(t, ok)
		assert.Equal(t, "/x/:a", m.Value)
	})

	t.Run("wildcard captures the remaining components", func(t *testing.T) {
		t.Parallel()

		tree := newTree("/files/*")

		m, ok := tree.Match([]string{"files", "a", "b", "c.txt"})
		require.True(t, ok)
		assert.Equal(t, []string{"a", "b", "c.txt"}, m.Wildcard)
	})

	t.Run("wildcard matches zero components", func(t *testing.T) {
		t.Parallel()

		m, ok := newTree("/files/*").Match([]string{"files"})
		require.True(t, ok)
		require.NotNil(t, m.Wildcard)
		assert.Empty(t, m.Wildcard)
	})

	t.Run("wildcard is tried after literals and variables", func(t *testing.T) {
		t.Parallel()

		tree := newTree("/a/*", "/a/:b", "/a/c")

		m, ok := tree.Match([]string{"a", "c"})
		require.True(t, ok)
		assert.Equal(t, "/a/c", m.Value)

		m, ok = tree.Match([]string{"a", "d"})
		require.True(t, ok)
		assert.Equal(t, "/a/:b", m.Value)

		m, ok = tree.Match([]string{"a", "d", "e"})
		require.True(t, ok)
		assert.Equal(t, "/a/*", m.Value)
		assert.Equal(t, []string{"d", "e"}, m.Wildcard)
	})

	t.Run("variable bound before a wildcard", func(t *testing.T) {
		t.Parallel()

		m, ok := newTree("/a/:b/*").Match([]string{"a", "x", "y", "z"})
		require.True(t, ok)
		assert.Equal(t, map[string]string{"b": "x"}, m.Params)
		assert.Equal(t, []string{"y", "z"}, m.Wildcard)
	})

	t.Run("reports no match", func(t *testing.T) {
		t.Parallel()

		tree := newTree("/users/:id")

		_, ok := tree.Match([]string{"users"})
		assert.False(t, ok, "intermediate node has no value")

		_, ok = tree.Match([]string{"users", "1", "extra"})
		assert.False(t, ok)

		_, ok = tree.Match([]string{"posts"})
		assert.False(t, ok)
	})

	t.Run("variable does not match an empty component", func(t *testing.T) {
		t.Parallel()

		_, ok := newTree("/users/:id").Match(router.SplitPath("/users/"))
		assert.False(t, ok)
	})
}

func TestTreeInsert(t *testing.T) {
	t.Parallel()

	t.Run("replaces the value at an existing node", func(t *testing.T) {
		t.Parallel()

		tree := router.NewTree[int]()
		tree.Insert(router.ParsePath("/a/:id"), 1)
		tree.Insert(router.ParsePath("/a/:id"), 2)

		m, ok := tree.Match([]string{"a", "x"})
		require.True(t, ok)
		assert.Equal(t, 2, m.Value)
		assert.Len(t, tree.Entries(), 1)
	})

	t.Run("same variable name shares one edge", func(t *testing.T) {
		t.Parallel()

		tree := newTree("/a/:id", "/a/:id/b")
		entries := tree.Entries()
		require.Len(t, entries, 2)
		assert.Equal(t, "/a/{id}", router.FormatPath(entries[0].Path))
		assert.Equal(t, "/a/{id}/b", router.FormatPath(entries[1].Path))
	})
}

func TestTreeValue(t *testing.T) {
	t.Parallel()

	tree := newTree("/a/:b", "/c/*")

	v, ok := tree.Value(router.ParsePath("/a/:b"))
	require.True(t, ok)
	assert.Equal(t, "/a/:b", v)

	_, ok = tree.Value(router.ParsePath("/a/:other"))
	assert.False(t, ok, "exact lookup does not rebind variable names")

	v, ok = tree.Value(router.ParsePath("/c/*"))
	require.True(t, ok)
	assert.Equal(t, "/c/*", v)

	_, ok = tree.Value(router.ParsePath("/a"))
	assert.False(t, ok)
}

func TestTreeEntries(t *testing.T) {
	t.Parallel()

	tree := newTree("/b", "/a/*", "/a/:x", "/a/lit", "/")

	var got []string
	for _, e := range tree.Entries() {
		got = append(got, e.Value)
	}
	assert.Equal(t, []string{"/", "/b", "/a/lit", "/a/:x", "/a/*"}, got)
}
