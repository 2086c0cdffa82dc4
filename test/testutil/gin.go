package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// APIResponse mirrors response.Response with data decoded as an object.
type APIResponse struct {
	Success bool                     `json:"success"`
	Data    map[string]interface{}   `json:"data"`
	Error   string                   `json:"error"`
	Errors  []map[string]interface{} `json:"errors"`
}

// MakeRequest creates and executes a test HTTP request.
func MakeRequest(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	return MakeAuthRequest(t, router, method, path, "", body)
}

// MakeAuthRequest creates a request with Authorization header. An empty token sends none.
func MakeAuthRequest(t *testing.T, router http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	reqBody := bytes.NewBuffer(nil)
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, path, reqBody)
	require.NoError(t, err)

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

// ParseResponse parses JSON response into target struct.
func ParseResponse(t *testing.T, w *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	err := json.Unmarshal(w.Body.Bytes(), target)
	require.NoError(t, err)
}

// ParseAPIResponse parses a standard envelope whose data is an object.
func ParseAPIResponse(t *testing.T, w *httptest.ResponseRecorder) APIResponse {
	t.Helper()
	var resp APIResponse
	ParseResponse(t, w, &resp)
	return resp
}

// ParseAPIListResponse parses a standard envelope whose data is an array.
func ParseAPIListResponse(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var resp struct {
		Success bool                     `json:"success"`
		Data    []map[string]interface{} `json:"data"`
	}
	ParseResponse(t, w, &resp)
	require.True(t, resp.Success, "list response should be successful: %s", w.Body.String())
	return resp.Data
}
