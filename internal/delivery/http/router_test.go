package http

import (
	"ProjectTracker/internal/metrics"
	"ProjectTracker/internal/service"
	"ProjectTracker/internal/service/tracker"
	"ProjectTracker/internal/storage/jsonfile"
	"ProjectTracker/pkg/logger"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	engine    *gin.Engine
	dataFile  string
	staticDir string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	dataFile := filepath.Join(dir, "data.json")
	staticDir := filepath.Join(dir, "frontend")
	require.NoError(t, os.MkdirAll(staticDir, 0o750))

	l := logger.New("test")
	svc := tracker.NewTrackerService(l, jsonfile.NewStorage(dataFile), nil, nil)
	r := InitRoutes(l, service.Collection{TrackerService: svc}, metrics.New(), staticDir)
	return &testServer{engine: r, dataFile: dataFile, staticDir: staticDir}
}

func (s *testServer) do(method, path, body string) *httptest.ResponseRecorder {
	var req *stdhttp.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, req)
	return rec
}

func TestExampleScenario(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(stdhttp.MethodPost, "/api/programmes", `{"name":"Launch"}`)
	require.Equal(t, stdhttp.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":1,"name":"Launch","modules":[]}`, rec.Body.String())

	rec = s.do(stdhttp.MethodPost, "/api/programmes/1/modules", `{"name":"Design"}`)
	require.Equal(t, stdhttp.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":1,"name":"Design","tasks":[]}`, rec.Body.String())

	rec = s.do(stdhttp.MethodPost, "/api/modules/1/tasks", `{"name":"Wireframes","start":"2024-01-01","end":"2024-01-10"}`)
	require.Equal(t, stdhttp.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":1,"name":"Wireframes","start":"2024-01-01","end":"2024-01-10"}`, rec.Body.String())

	rec = s.do(stdhttp.MethodGet, "/api/programmes/1", "")
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1,"name":"Launch","modules":[{"id":1,"name":"Design","tasks":[
		{"id":1,"name":"Wireframes","start":"2024-01-01","end":"2024-01-10"}]}]}`, rec.Body.String())

	rec = s.do(stdhttp.MethodGet, "/api/modules/1", "")
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1,"name":"Design","programmeId":1,"tasks":[
		{"id":1,"name":"Wireframes","start":"2024-01-01","end":"2024-01-10"}]}`, rec.Body.String())

	rec = s.do(stdhttp.MethodGet, "/api/programmes", "")
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	rec = s.do(stdhttp.MethodGet, "/api/data", "")
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	persisted, err := os.ReadFile(s.dataFile)
	require.NoError(t, err)
	assert.JSONEq(t, string(persisted), rec.Body.String())
}

func TestListEmpty(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(stdhttp.MethodGet, "/api/programmes", "")
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = s.do(stdhttp.MethodGet, "/api/data", "")
	assert.JSONEq(t, `{"programmes":[]}`, rec.Body.String())
}

func TestModulesKeepCreationOrder(t *testing.T) {
	s := newTestServer(t)
	s.do(stdhttp.MethodPost, "/api/programmes", `{"name":"P"}`)
	for _, name := range []string{"Alpha", "Beta", "Gamma"} {
		rec := s.do(stdhttp.MethodPost, "/api/programmes/1/modules", `{"name":"`+name+`"}`)
		require.Equal(t, stdhttp.StatusCreated, rec.Code)
	}

	rec := s.do(stdhttp.MethodGet, "/api/programmes/1", "")
	var p struct {
		Modules []struct {
			ID   int    `json:"id"`
			Name string `json:"name"`
		} `json:"modules"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	require.Len(t, p.Modules, 3)
	for i, name := range []string{"Alpha", "Beta", "Gamma"} {
		assert.Equal(t, i+1, p.Modules[i].ID)
		assert.Equal(t, name, p.Modules[i].Name)
	}
}

func TestValidationErrors(t *testing.T) {
	s := newTestServer(t)
	s.do(stdhttp.MethodPost, "/api/programmes", `{"name":"P"}`)
	s.do(stdhttp.MethodPost, "/api/programmes/1/modules", `{"name":"M"}`)
	before, err := os.ReadFile(s.dataFile)
	require.NoError(t, err)

	cases := []struct {
		name, path, body, wantErr string
	}{
		{"empty programme name", "/api/programmes", `{"name":""}`, "Name is required"},
		{"missing programme name", "/api/programmes", `{}`, "Name is required"},
		{"numeric programme name", "/api/programmes", `{"name":5}`, "Name is required"},
		{"malformed programme body", "/api/programmes", `{"name":`, "Invalid JSON"},
		{"trailing garbage", "/api/programmes", `{"name":"Launch"} trailing-garbage`, "Invalid JSON"},
		{"two objects", "/api/programmes", `{"name":"A"}{"name":"B"}`, "Invalid JSON"},
		{"null programme body", "/api/programmes", `null`, "Invalid JSON"},
		{"array programme body", "/api/programmes", `[1]`, "Name is required"},
		{"trailing module body", "/api/programmes/1/modules", `{"name":"M2"} x`, "Invalid JSON"},
		{"null task body", "/api/modules/1/tasks", ` null `, "Invalid JSON"},
		{"empty module name", "/api/programmes/1/modules", `{"name":""}`, "Module name is required"},
		{"malformed module body", "/api/programmes/1/modules", `nope`, "Invalid JSON"},
		{"task missing end", "/api/modules/1/tasks", `{"name":"T","start":"2024-01-01"}`, "Name, start, and end are required"},
		{"task numeric start", "/api/modules/1/tasks", `{"name":"T","start":1,"end":"2024-01-02"}`, "Name, start, and end are required"},
		{"malformed task body", "/api/modules/1/tasks", `{]`, "Invalid JSON"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := s.do(stdhttp.MethodPost, tc.path, tc.body)
			assert.Equal(t, stdhttp.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"error":"`+tc.wantErr+`"}`, rec.Body.String())
		})
	}

	t.Run("empty body", func(t *testing.T) {
		rec := s.do(stdhttp.MethodPost, "/api/programmes", "")
		assert.Equal(t, stdhttp.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Invalid JSON"}`, rec.Body.String())
	})

	after, err := os.ReadFile(s.dataFile)
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestNotFound(t *testing.T) {
	s := newTestServer(t)

	cases := []struct {
		method, path, body, wantErr string
	}{
		{stdhttp.MethodGet, "/api/programmes/9", "", "Programme not found"},
		{stdhttp.MethodPost, "/api/programmes/9/modules", `{"name":"M"}`, "Programme not found"},
		// the missing parent is reported before the bad body
		{stdhttp.MethodPost, "/api/programmes/9/modules", `garbage`, "Programme not found"},
		{stdhttp.MethodGet, "/api/modules/9", "", "Module not found"},
		{stdhttp.MethodPost, "/api/modules/9/tasks", `{}`, "Module not found"},
		{stdhttp.MethodGet, "/api/programmes/abc", "", "Not Found"},
		{stdhttp.MethodGet, "/api/programmes/1abc", "", "Not Found"},
		{stdhttp.MethodGet, "/api/modules/2x", "", "Not Found"},
		{stdhttp.MethodGet, "/api/unknown", "", "Not Found"},
		{stdhttp.MethodGet, "/api/programmes/1/tasks", "", "Not Found"},
		{stdhttp.MethodDelete, "/api/programmes/1", "", "Not Found"},
		{stdhttp.MethodPut, "/api/programmes/1", `{"name":"x"}`, "Not Found"},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := s.do(tc.method, tc.path, tc.body)
			assert.Equal(t, stdhttp.StatusNotFound, rec.Code)
			assert.JSONEq(t, `{"error":"`+tc.wantErr+`"}`, rec.Body.String())
		})
	}
}

func TestOptionsPreflight(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(stdhttp.MethodOptions, "/api/programmes", "")
	assert.Equal(t, stdhttp.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "DELETE")

	req := httptest.NewRequest(stdhttp.MethodOptions, "/api/modules/1/tasks", nil)
	req.Header.Set("Origin", "http://client.test")
	req.Header.Set("Access-Control-Request-Method", stdhttp.MethodPost)
	cross := httptest.NewRecorder()
	s.engine.ServeHTTP(cross, req)
	assert.Equal(t, stdhttp.StatusNoContent, cross.Code)
	assert.Equal(t, "*", cross.Header().Get("Access-Control-Allow-Origin"))
}

func TestCrossOriginResponsesCarryCORS(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(stdhttp.MethodGet, "/api/programmes", nil)
	req.Header.Set("Origin", "http://client.test")
	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, req)

	assert.Equal(t, stdhttp.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestStaticFiles(t *testing.T) {
	s := newTestServer(t)
	write := func(name, body string) {
		require.NoError(t, os.WriteFile(filepath.Join(s.staticDir, name), []byte(body), 0o600))
	}
	write("index.html", "<h1>tracker</h1>")
	write("script.js", "console.log(1)")
	write("logo.SVG", "<svg/>")
	write("notes.txt", "plain")
	require.NoError(t, os.MkdirAll(filepath.Join(s.staticDir, "assets"), 0o750))

	cases := []struct {
		path, wantType, wantBody string
	}{
		{"/", "text/html", "<h1>tracker</h1>"},
		{"/index.html", "text/html", "<h1>tracker</h1>"},
		{"/script.js", "application/javascript", "console.log(1)"},
		{"/logo.SVG", "image/svg+xml", "<svg/>"},
		{"/notes.txt", "application/octet-stream", "plain"},
	}
	for _, tc := range cases {
		rec := s.do(stdhttp.MethodGet, tc.path, "")
		assert.Equal(t, stdhttp.StatusOK, rec.Code, tc.path)
		assert.Equal(t, tc.wantType, rec.Header().Get("Content-Type"), tc.path)
		assert.Equal(t, tc.wantBody, rec.Body.String(), tc.path)
	}

	for _, path := range []string{"/missing.css", "/assets", "/../data.json"} {
		rec := s.do(stdhttp.MethodGet, path, "")
		assert.Equal(t, stdhttp.StatusNotFound, rec.Code, path)
		assert.Equal(t, "Not Found", rec.Body.String(), path)
	}
}

func TestStatusAndMetrics(t *testing.T) {
	s := newTestServer(t)
	s.do(stdhttp.MethodPost, "/api/programmes", `{"name":"P"}`)

	rec := s.do(stdhttp.MethodGet, "/status", "")
	assert.Equal(t, stdhttp.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"Available"}`, rec.Body.String())

	rec = s.do(stdhttp.MethodGet, "/metrics", "")
	assert.Equal(t, stdhttp.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `tracker_http_requests_total{method="POST",route="/api/programmes",status="201"} 1`)
}

func TestRequestIDHeader(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(stdhttp.MethodGet, "/status", "")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(stdhttp.MethodGet, "/status", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	echoed := httptest.NewRecorder()
	s.engine.ServeHTTP(echoed, req)
	assert.Equal(t, "abc-123", echoed.Header().Get("X-Request-ID"))
}

func TestStoreFailureIs500(t *testing.T) {
	s := newTestServer(t)
	require.NoError(t, os.WriteFile(s.dataFile, []byte("{broken"), 0o600))

	rec := s.do(stdhttp.MethodGet, "/api/programmes", "")
	assert.Equal(t, stdhttp.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, rec.Body.String())

	rec = s.do(stdhttp.MethodGet, "/status", "")
	assert.Equal(t, stdhttp.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"status":"Unavailable"}`, rec.Body.String())
}
