package httpapi

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoobzio/filterql/entities"
	"github.com/zoobzio/filterql/executor/sqlexec"
	"github.com/zoobzio/filterql/repository"
	"github.com/zoobzio/filterql/sqlite"
	ftesting "github.com/zoobzio/filterql/testing"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	renderer := sqlite.New()
	exec := sqlexec.New(ftesting.SeededSQLite(t), renderer.Capabilities())
	catalog, err := entities.NewCatalog(renderer, exec, repository.Config{Logger: logger, MaxPageSize: 100})
	require.NoError(t, err)

	srv := httptest.NewServer(NewHandler(catalog, logger).Routes())
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, srv *httptest.Server, path, tenant, body string) (*http.Response, map[string]any) {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, srv.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if tenant != "" {
		req.Header.Set(TenantHeader, tenant)
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp, out
}

func TestHealthz(t *testing.T) {
	srv := newServer(t)

	resp, err := srv.Client().Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.NotEmpty(t, resp.Header.Get(RequestIDHeader))
}

func TestRequestIDEchoed(t *testing.T) {
	srv := newServer(t)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/healthz", nil)
	require.NoError(t, err)
	req.Header.Set(RequestIDHeader, "req-123")

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "req-123", resp.Header.Get(RequestIDHeader))
}

func TestListEntities(t *testing.T) {
	srv := newServer(t)

	resp, err := srv.Client().Get(srv.URL + "/v1/entities")
	require.NoError(t, err)
	defer resp.Body.Close()

	var names []string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&names))
	assert.Contains(t, names, "leads")
	assert.Contains(t, names, "purchase-orders")
}

func TestSearch(t *testing.T) {
	srv := newServer(t)

	resp, body := post(t, srv, "/v1/leads/search", "1", `{
		"filters": [{"column": "name", "operator": "contains", "value": "alpha"}],
		"logicOperator": "AND",
		"start": 0,
		"end": 10
	}`)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 1, body["totalCount"])
	assert.EqualValues(t, 0, body["pageIndex"])
	assert.EqualValues(t, 10, body["pageSize"])
	content, ok := body["content"].([]any)
	require.True(t, ok)
	require.Len(t, content, 1)
	assert.Equal(t, "Alpha Corp", content[0].(map[string]any)["name"])
}

func TestSearch_NumericValues(t *testing.T) {
	srv := newServer(t)

	resp, body := post(t, srv, "/v1/leads/search", "1", `{
		"filters": [{"column": "score", "operator": "greaterThan", "value": 9}],
		"selectedIds": [1, 2, 3],
		"end": 10
	}`)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 2, body["totalCount"])
}

func TestSearch_PurchaseOrderDetails(t *testing.T) {
	srv := newServer(t)

	resp, body := post(t, srv, "/v1/purchase-orders/search?details=true", "1", `{
		"filters": [{"column": "orderNumber", "operator": "equals", "value": "po-1"}],
		"end": 10
	}`)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	content := body["content"].([]any)
	require.Len(t, content, 1)
	order := content[0].(map[string]any)
	assert.Len(t, order["packages"], 2)
	assert.Len(t, order["attachments"], 1)
}

func TestSearch_Errors(t *testing.T) {
	srv := newServer(t)

	tests := []struct {
		name   string
		path   string
		tenant string
		body   string
		status int
		code   string
	}{
		{"missing tenant", "/v1/leads/search", "", `{"end": 10}`, http.StatusBadRequest, "INVALID_REQUEST"},
		{"bad tenant", "/v1/leads/search", "abc", `{"end": 10}`, http.StatusBadRequest, "INVALID_REQUEST"},
		{"bad json", "/v1/leads/search", "1", `{"end":`, http.StatusBadRequest, "INVALID_REQUEST"},
		{"unknown column", "/v1/leads/search", "1",
			`{"filters": [{"column": "salary", "operator": "equals", "value": 1}], "end": 10}`,
			http.StatusBadRequest, "INVALID_COLUMN"},
		{"bad operator", "/v1/leads/search", "1",
			`{"filters": [{"column": "score", "operator": "contains", "value": 1}], "end": 10}`,
			http.StatusBadRequest, "INVALID_OPERATOR"},
		{"bad logic", "/v1/leads/search", "1", `{"logicOperator": "XOR", "end": 10}`,
			http.StatusBadRequest, "INVALID_LOGIC_OPERATOR"},
		{"bad window", "/v1/leads/search", "1", `{"start": 10, "end": 5}`,
			http.StatusBadRequest, "INVALID_PAGINATION"},
		{"page too large", "/v1/leads/search", "1", `{"start": 0, "end": 1000}`,
			http.StatusBadRequest, "INVALID_PAGINATION"},
		{"unknown entity", "/v1/widgets/search", "1", `{"end": 10}`, http.StatusNotFound, "NOT_FOUND"},
		{"oversized body", "/v1/leads/search", "1",
			`{"end": 10, "logicOperator": "` + strings.Repeat("a", maxBodyBytes) + `"}`,
			http.StatusRequestEntityTooLarge, "REQUEST_TOO_LARGE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := post(t, srv, tt.path, tt.tenant, tt.body)
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, tt.code, body["code"])
			assert.NotEmpty(t, body["error"])
		})
	}
}
