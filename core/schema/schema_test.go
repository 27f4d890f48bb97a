package schema_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ForestKatsch/phosphor/core/schema"
)

func TestAny(t *testing.T) {
	t.Parallel()

	s := schema.Any()
	for _, v := range []any{nil, "x", 1.5, map[string]any{"a": 1}} {
		out, err := s.Parse(v)
		require.NoError(t, err)
		assert.Equal(t, v, out)
	}
	assert.Equal(t, &schema.Definition{}, schema.Describe(s))
}

func TestFunc(t *testing.T) {
	t.Parallel()

	s := schema.Func(func(v any) (any, error) {
		str, ok := v.(string)
		if !ok {
			return nil, schema.NewError(nil, "expected string")
		}
		return len(str), nil
	})

	out, err := s.Parse("abc")
	require.NoError(t, err)
	assert.Equal(t, 3, out)

	_, err = s.Parse(1)
	require.Error(t, err)
	assert.Equal(t, []string{"expected string"}, schema.IssuesOf(err).Errors)
	assert.Nil(t, schema.Describe(s), "plain functions cannot describe themselves")
}

func TestParams(t *testing.T) {
	t.Parallel()

	p := schema.Params("org", "id")
	assert.Equal(t, []string{"org", "id"}, p.Names())

	out, err := p.Parse(map[string]string{"org": "a", "id": "1"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"org": "a", "id": "1"}, out)

	_, err = p.Parse(map[string]string{"org": "a"})
	require.Error(t, err)
	assert.Equal(t, []string{"required"}, schema.IssuesOf(err).Get("id").Errors)

	_, err = p.Parse("nope")
	require.Error(t, err)

	def := p.Describe()
	assert.Equal(t, "object", def.Type)
	assert.Equal(t, []string{"org", "id"}, def.Required)
	assert.Equal(t, "string", def.Properties["id"].Type)
}

func TestIssues(t *testing.T) {
	t.Parallel()

	t.Run("adds messages by path", func(t *testing.T) {
		t.Parallel()

		issues := schema.NewIssues()
		assert.True(t, issues.Empty())

		issues.Add(nil, "root problem")
		issues.Add([]string{"items", "0", "name"}, "required")

		assert.False(t, issues.Empty())
		assert.Equal(t, []string{"root problem"}, issues.Errors)
		assert.Equal(t, []string{"required"}, issues.Get("items", "0", "name").Errors)
		assert.Nil(t, issues.Get("missing"))
	})

	t.Run("serializes as errors and properties", func(t *testing.T) {
		t.Parallel()

		issues := schema.NewIssues()
		issues.Add([]string{"name"}, "required")

		data, err := json.Marshal(issues)
		require.NoError(t, err)
		assert.JSONEq(t, `{"errors":[],"properties":{"name":{"errors":["required"]}}}`, string(data))
	})

	t.Run("nil tree is empty", func(t *testing.T) {
		t.Parallel()

		var issues *schema.Issues
		assert.True(t, issues.Empty())
		assert.Nil(t, issues.Get("a"))
	})
}

func TestError(t *testing.T) {
	t.Parallel()

	err := schema.NewError([]string{"name"}, "required")
	assert.Equal(t, "schema: name: required", err.Error())
	assert.Equal(t, "schema: expected object", schema.NewError(nil, "expected object").Error())

	wrapped := errors.Join(errors.New("context"), err)
	assert.Same(t, err.Issues, schema.IssuesOf(wrapped))
	assert.Nil(t, schema.IssuesOf(errors.New("plain")))
}
