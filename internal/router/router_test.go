package router_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"stockbook/internal/config"
	"stockbook/internal/router"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{Env: "production", RateLimitPerMinute: 1000}
}

// db and rdb can be nil here: routing decisions (404/405) are made before any
// handler dereferences them.
func serve(t *testing.T, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	r := router.New(testConfig(), nil, nil)
	req := httptest.NewRequest(method, path, strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestWrongVerbIs405(t *testing.T) {
	w := serve(t, http.MethodPut, "/v1/products/"+uuid.NewString())
	require.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.JSONEq(t, `{"error":"Method Not Allowed"}`, w.Body.String())
}

func TestWrongVerbOnCollectionIs405(t *testing.T) {
	w := serve(t, http.MethodPut, "/v1/brands")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestUnknownPathIs404(t *testing.T) {
	w := serve(t, http.MethodGet, "/v1/nope")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
