package server_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/simman/go-hostroute/internal/config"
	"github.com/simman/go-hostroute/internal/router"
	"github.com/simman/go-hostroute/internal/router/hostname"
	"github.com/simman/go-hostroute/internal/server"
)

const testConfig = `
server:
  addr: 127.0.0.1:0
routes:
  - name: api
    type: hostname
    options:
      hosts: [api.example.test, api.example.org]
      defaults:
        section: api
  - name: www
    type: hostname
    options:
      host: www.example.test
`

type matchBody struct {
	Route     string         `json:"route"`
	Params    map[string]any `json:"params"`
	URL       string         `json:"url"`
	Assembled []string       `json:"assembled"`
}

func newServer(t *testing.T, yaml string) *server.Server {
	t.Helper()

	cfg, err := config.ParseConfig([]byte(yaml))
	require.NoError(t, err)

	m := router.NewManager()
	require.NoError(t, m.Load(router.BaseModule{}, hostname.Module()))

	srv, err := server.NewServer(cfg, router.NewRouter(m))
	require.NoError(t, err)
	return srv
}

func TestServer_ServeHTTP(t *testing.T) {
	t.Parallel()

	srv := newServer(t, testConfig)

	tests := []struct {
		name          string
		host          string
		target        string
		wantRoute     string
		wantParams    map[string]any
		wantURL       string
		wantAssembled []string
	}{
		{
			name:          "matched host and port",
			host:          "API.example.test:8080",
			target:        "/v1/users?limit=5",
			wantRoute:     "api",
			wantParams:    map[string]any{"host": "API.example.test", "section": "api"},
			wantURL:       "http://API.example.test:8080/v1/users?limit=5",
			wantAssembled: []string{"host", "port"},
		},
		{
			name:          "second host of a list",
			host:          "api.example.org",
			target:        "/",
			wantRoute:     "api",
			wantParams:    map[string]any{"host": "api.example.org", "section": "api"},
			wantURL:       "http://api.example.org/",
			wantAssembled: []string{"host"},
		},
		{
			name:          "single host route",
			host:          "WWW.example.test",
			target:        "/about",
			wantRoute:     "www",
			wantParams:    map[string]any{"host": "WWW.example.test"},
			wantURL:       "http://WWW.example.test/about",
			wantAssembled: []string{"host"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			req.Host = tt.host
			rec := httptest.NewRecorder()

			srv.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body matchBody
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.Equal(t, tt.wantRoute, body.Route)
			require.Equal(t, tt.wantParams, body.Params)
			require.Equal(t, tt.wantURL, body.URL)
			require.Equal(t, tt.wantAssembled, body.Assembled)
		})
	}
}

func TestServer_NoMatch(t *testing.T) {
	t.Parallel()

	srv := newServer(t, testConfig)

	req := httptest.NewRequest(http.MethodPost, "/x", nil)
	req.Host = "unknown.test"
	rec := httptest.NewRecorder()

	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "no matching route found", body["error"])
	require.Equal(t, "unknown.test", body["host"])
	require.Equal(t, "/x", body["path"])
	require.Equal(t, http.MethodPost, body["method"])
}

func TestServer_Reload(t *testing.T) {
	t.Parallel()

	srv := newServer(t, testConfig)

	cfg, err := config.ParseConfig([]byte(`
routes:
  - name: new
    type: hostname
    options:
      host: new.example.test
`))
	require.NoError(t, err)
	require.NoError(t, srv.Reload(cfg))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Host = "api.example.test"
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)

	req.Host = "new.example.test"
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	bad := &config.Config{Routes: []config.Route{{Name: "x", Type: "hostname", Options: map[string]any{}}}}
	require.Error(t, srv.Reload(bad))

	// the previous table survives a failed reload
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_StartStop(t *testing.T) {
	t.Parallel()

	srv := newServer(t, testConfig)
	require.Nil(t, srv.Addr())
	require.NoError(t, srv.Start())
	require.Error(t, srv.Start())

	req, err := http.NewRequest(http.MethodGet, "http://"+srv.Addr().String()+"/docs", nil)
	require.NoError(t, err)
	req.Host = "www.example.test"

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body matchBody
	require.NoError(t, json.Unmarshal(data, &body))
	require.Equal(t, "www", body.Route)
	require.Equal(t, "http://www.example.test/docs", body.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, srv.Stop(ctx))
	require.NoError(t, srv.Stop(ctx))
}

func TestNewServer_BadRoutes(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Routes: []config.Route{{Name: "x", Type: "nope", Options: map[string]any{}}}}
	_, err := server.NewServer(cfg, router.NewRouter(router.NewManager()))
	require.Error(t, err)
	require.ErrorIs(t, err, router.ErrUnknownRouteType)
}
