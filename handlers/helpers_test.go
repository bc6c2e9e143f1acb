package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"valid", `{"name":"ok"}`, ""},
		{"unknown fields ignored", `{"name":"ok","extra":1}`, ""},
		{"empty", ``, "body must not be empty"},
		{"truncated", `{"name":`, "badly-formed JSON"},
		{"wrong type", `{"name":5}`, `incorrect JSON type for field "name"`},
		{"two values", `{"name":"a"}{"name":"b"}`, "single JSON value"},
		{"too large", `{"name":"` + strings.Repeat("x", maxBodyBytes) + `"}`, "must not be larger"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var dst payload
			err := readJSON(httptest.NewRecorder(), req, &dst)
			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, "ok", dst.Name)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGetIDFromURL(t *testing.T) {
	withParam := func(v string) *http.Request {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", v)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}

	id, err := getIDFromURL(withParam("17"), "id")
	require.NoError(t, err)
	assert.Equal(t, 17, id)

	for _, bad := range []string{"", "x1", "0", "-3"} {
		_, err := getIDFromURL(withParam(bad), "id")
		assert.Error(t, err, bad)
	}
}

func TestWriteJSONIndentsBody(t *testing.T) {
	rec := httptest.NewRecorder()
	headers := http.Header{"X-Request-Id": []string{"abc"}}

	require.NoError(t, writeJSON(rec, http.StatusCreated, jsonResponse{"message": "Team created."}, headers))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "abc", rec.Header().Get("X-Request-Id"))
	assert.Equal(t, "{\n\t\"message\": \"Team created.\"\n}\n", rec.Body.String())

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Team created.", body["message"])
}
