package httputil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	testCases := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"object", `{"name":"Final"}`, ""},
		{"empty", ``, "request body is empty"},
		{"broken", `{"name":`, "invalid JSON body"},
		{"two objects", `{"name":"a"}{"name":"b"}`, "single JSON object"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body))
			w := httptest.NewRecorder()

			var v struct {
				Name string `json:"name"`
			}
			err := DecodeJSON(w, r, &v)
			if tc.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, "Final", v.Name)
				return
			}
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestBadRequestFields(t *testing.T) {
	w := httptest.NewRecorder()
	BadRequestFields(w, "validation failed", map[string]string{"title": "this field is required"}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "validation failed", body.Error)
	assert.Equal(t, "this field is required", body.Fields["title"])
}
