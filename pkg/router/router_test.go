package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josys/shop/pkg/router"
)

func TestGroupRoutesAndParams(t *testing.T) {
	r := router.New()
	api := r.Group("/api")
	api.Get("/stores/{id:[0-9]+}", "stores.show", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(chi.URLParam(req, "id"))) //nolint:errcheck
	})
	api.Delete("/stores/{id:[0-9]+}", "stores.destroy", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/stores/42", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "42", rec.Body.String())

	rec = httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/stores/abc", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/stores/7", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestURLResolvesPatternParams(t *testing.T) {
	r := router.New()
	r.Put("/stores/{id:[0-9]+}", "stores.update", func(http.ResponseWriter, *http.Request) {})

	url, err := r.URL("stores.update", map[string]string{"id": "9"})
	require.NoError(t, err)
	assert.Equal(t, "/stores/9", url)

	_, err = r.URL("stores.update", nil)
	assert.Error(t, err)

	_, err = r.URL("missing", nil)
	assert.Error(t, err)
}

func TestRoutesAreSorted(t *testing.T) {
	r := router.New()
	noop := func(http.ResponseWriter, *http.Request) {}
	r.Post("/b", "b.store", noop)
	r.Get("/b", "b.index", noop)
	r.Get("/a", "", noop)

	assert.Equal(t, []router.RouteInfo{
		{Method: http.MethodGet, Path: "/a"},
		{Method: http.MethodGet, Path: "/b", Name: "b.index"},
		{Method: http.MethodPost, Path: "/b", Name: "b.store"},
	}, r.Routes())
}

func TestGroupMiddlewareOrder(t *testing.T) {
	var trace []string
	mark := func(name string) router.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				trace = append(trace, name)
				next.ServeHTTP(w, req)
			})
		}
	}

	r := router.New()
	g := r.Group("/v1", mark("outer")).Group("/inner", mark("inner"))
	g.Get("/", "", func(http.ResponseWriter, *http.Request) { trace = append(trace, "handler") }, mark("route"))

	r.Handler().ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/inner", nil))
	assert.Equal(t, []string{"outer", "inner", "route", "handler"}, trace)
}
