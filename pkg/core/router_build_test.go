package core

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/joeydtaylor/steeze-routes/pkg/middleware/logger"
	"github.com/joeydtaylor/steeze-routes/pkg/middleware/metrics"
	"github.com/joeydtaylor/steeze-routes/pkg/routes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func serve(h http.Handler, method, target string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(method, target, nil))
	return rr
}

func demoTable() routes.Table {
	return routes.Table{
		"hello": routes.Text("hello world"),
		"hi":    routes.Text("hi world"),
	}
}

func TestBuildRouter_ServesTableAtRoot(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	h, err := BuildRouter("/", demoTable(), BuildDeps{
		LogMW:   logger.New(zap.New(core)),
		Metrics: metrics.NewPromHttpHandler(),
	})
	require.NoError(t, err)

	rr := serve(h, http.MethodGet, "/hello")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "hello world", rr.Body.String())
	assert.NotEmpty(t, rr.Header().Get("Content-Type"))

	rr = serve(h, http.MethodGet, "/hi")
	assert.Equal(t, "hi world", rr.Body.String())

	assert.Equal(t, http.StatusNotFound, serve(h, http.MethodGet, "/nope").Code)
	assert.Equal(t, http.StatusMethodNotAllowed, serve(h, http.MethodPost, "/hello").Code)
	assert.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/ping").Code)
	assert.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/metrics").Code)

	assert.GreaterOrEqual(t, logs.Len(), 5)
}

func TestBuildRouter_BasePath(t *testing.T) {
	h, err := BuildRouter("api/", demoTable(), BuildDeps{})
	require.NoError(t, err)

	assert.Equal(t, "hello world", serve(h, http.MethodGet, "/api/hello").Body.String())
	assert.Equal(t, http.StatusNotFound, serve(h, http.MethodGet, "/hello").Code)
}

func TestBuildRouter_CustomNotFound(t *testing.T) {
	var hits int
	h, err := BuildRouter("/", demoTable(), BuildDeps{
		NotFound: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			hits++
			w.WriteHeader(http.StatusGone)
		}),
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusGone, serve(h, http.MethodGet, "/nope").Code)
	assert.Equal(t, 1, hits)
}

func TestBuildRouter_RecoversHandlerPanic(t *testing.T) {
	h, err := BuildRouter("/", routes.Table{
		"boom": routes.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") }),
	}, BuildDeps{})
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, serve(h, http.MethodGet, "/boom").Code)
}

func TestBuildRouter_ReservedAndInvalid(t *testing.T) {
	_, err := BuildRouter("/", routes.Table{
		"metrics": routes.Text("x"),
		"ping":    routes.Text("x"),
		"":        routes.Text("x"),
	}, BuildDeps{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReservedRoute)
	assert.ErrorIs(t, err, routes.ErrInvalidName)
	assert.Len(t, multierr.Errors(err), 3)

	// reserved only when mounted at the root
	_, err = BuildRouter("/v1", routes.Table{"metrics": routes.Text("x")}, BuildDeps{})
	assert.NoError(t, err)

	for _, base := range []string{"/metrics", "metrics/", "/ping", "/ping/v1"} {
		t.Run("base "+base, func(t *testing.T) {
			_, err := BuildRouter(base, demoTable(), BuildDeps{Metrics: metrics.NewPromHttpHandler()})
			assert.ErrorIs(t, err, ErrReservedRoute)
		})
	}

	for _, base := range []string{"/pings", "/v1/metrics"} {
		_, err := BuildRouter(base, demoTable(), BuildDeps{})
		assert.NoError(t, err, base)
	}
}

func TestBuildRouter_EmptyTable(t *testing.T) {
	h, err := BuildRouter("/", nil, BuildDeps{})
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, serve(h, http.MethodGet, "/hello").Code)
	assert.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/ping").Code)
}
