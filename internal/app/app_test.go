package app

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/pahana/bookshop-order-service/internal/config"
	"github.com/stretchr/testify/assert"
)

type pingHandler struct{}

func (pingHandler) Init(r chi.Router) {
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func testConfig(secret string) config.Config {
	cfg := config.New()
	cfg.Http.Host = "127.0.0.1"
	cfg.Http.Port = "0"
	cfg.Auth.JWTSecret = secret
	return cfg
}

func TestApplication_Routes(t *testing.T) {
	testCases := []struct {
		name       string
		secret     string
		path       string
		wantStatus int
	}{
		{name: "order routes open without secret", path: "/orders/ping", wantStatus: http.StatusOK},
		{name: "order routes need token with secret", secret: "s3cret", path: "/orders/ping", wantStatus: http.StatusUnauthorized},
		{name: "metrics stay public", secret: "s3cret", path: "/metrics", wantStatus: http.StatusOK},
		{name: "unknown route", path: "/nope", wantStatus: http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a := New(slog.New(slog.NewTextHandler(io.Discard, nil)), testConfig(tc.secret))
			a.SetHTTPHandlers(pingHandler{})

			rr := httptest.NewRecorder()
			a.router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tc.path, nil))

			assert.Equal(t, tc.wantStatus, rr.Code)
		})
	}
}
