package response_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ForestKatsch/phosphor/core/response"
	"github.com/ForestKatsch/phosphor/core/schema"
)

func TestWriteError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{
			name:   "not found",
			err:    response.NotFound(),
			status: http.StatusNotFound,
			body:   `{"status":404,"message":"not_found"}`,
		},
		{
			name: "validation",
			err: func() error {
				issues := schema.NewIssues()
				issues.Add([]string{"name"}, "required")
				return response.Validation("body_parse_error", issues)
			}(),
			status: http.StatusBadRequest,
			body:   `{"status":400,"message":"body_parse_error","validationErrors":{"errors":[],"properties":{"name":{"errors":["required"]}}}}`,
		},
		{
			name:   "internal",
			err:    response.Internal("secret detail"),
			status: http.StatusInternalServerError,
			body:   `{"status":500,"message":"internal_server_error"}`,
		},
		{
			name:   "foreign error",
			err:    errors.New("sql: no rows"),
			status: http.StatusInternalServerError,
			body:   `{"status":500,"message":"internal_server_error"}`,
		},
		{
			name:   "custom status with context",
			err:    response.New(http.StatusConflict, "", "email taken"),
			status: http.StatusConflict,
			body:   `{"status":409,"message":"conflict","context":"email taken"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/", nil)

			got := response.WriteError(w, r, tt.err)
			require.NotNil(t, got)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, response.ContentTypeJSON, w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.body, w.Body.String())
		})
	}
}

func TestErrorResponse(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	require.NoError(t, response.Error(response.BadRequest("body_parse_error"))(w, r))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"status":400,"message":"body_parse_error"}`, w.Body.String())
}
