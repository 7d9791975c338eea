package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-book-keeper/internal/app"
	"github.com/MKhiriev/go-book-keeper/internal/logger"
	"github.com/MKhiriev/go-book-keeper/internal/service"
	"github.com/MKhiriev/go-book-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFullRouterHandler(t *testing.T) *Handler {
	t.Helper()
	svcs := &service.Services{
		UserService: &mockUserService{
			listUsersFn: func(_ context.Context) ([]models.User, error) { return nil, nil },
		},
		BookService: &mockBookService{
			getAllBooksFn: func(_ context.Context) ([]models.Book, error) { return nil, nil },
		},
	}
	return NewHandler(svcs, logger.Nop())
}

func TestInit_MountsUserAndBookRoutes(t *testing.T) {
	router := newFullRouterHandler(t).Init()

	for _, path := range []string{"/user/get", "/book/get"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestInitCatalog_ExcludesUserRoutes(t *testing.T) {
	router := newFullRouterHandler(t).InitCatalog()

	req := httptest.NewRequest(http.MethodGet, "/user/get", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/book/get", nil)
	rec = httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoutes_MutatingEndpointsRequireJSON(t *testing.T) {
	router := newFullRouterHandler(t).Init()

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/user/add"},
		{http.MethodPost, "/user/verify"},
		{http.MethodPost, "/book/add"},
		{http.MethodPut, "/book/update/1"},
		{http.MethodPatch, "/book/update/1"},
	}

	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(`{}`))
			req.Header.Set("Content-Type", "text/plain")
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			require.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
			assert.Equal(t, app.MsgDataMustBeJSON, errorOf(t, rec))
		})
	}
}

func TestRoutes_TraceIDHeaderIsSet(t *testing.T) {
	router := newFullRouterHandler(t).Init()

	req := httptest.NewRequest(http.MethodGet, "/book/get", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestRoutes_TraceIDHeaderIsEchoed(t *testing.T) {
	router := newFullRouterHandler(t).Init()

	req := httptest.NewRequest(http.MethodGet, "/book/get", nil)
	req.Header.Set(traceIDHeader, "trace-123")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, "trace-123", rec.Header().Get(traceIDHeader))
}
