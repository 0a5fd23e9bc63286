package middleware

import (
	"bufio"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type hijackRecorder struct {
	*httptest.ResponseRecorder
}

func (h hijackRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	server, client := net.Pipe()
	client.Close()
	return server, bufio.NewReadWriter(bufio.NewReader(server), bufio.NewWriter(server)), nil
}

func TestMetrics(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Metrics)
	r.Get("/orders/{order_id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.Get("/orders/ws", func(w http.ResponseWriter, r *http.Request) {
		conn, _, err := w.(http.Hijacker).Hijack()
		require.NoError(t, err)
		conn.Close()
	})
	r.Get(metricsPath, func(w http.ResponseWriter, r *http.Request) {})

	notFound := httpRequestsTotal.WithLabelValues(http.MethodGet, "/orders/{order_id}", "404")
	upgraded := httpRequestsTotal.WithLabelValues(http.MethodGet, "/orders/ws", "101")
	scrapes := httpRequestsTotal.WithLabelValues(http.MethodGet, metricsPath, "200")

	beforeNotFound := testutil.ToFloat64(notFound)
	beforeUpgraded := testutil.ToFloat64(upgraded)

	for _, id := range []string{"ord_1", "ord_2"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/orders/"+id, nil))
	}
	r.ServeHTTP(hijackRecorder{httptest.NewRecorder()}, httptest.NewRequest(http.MethodGet, "/orders/ws", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, metricsPath, nil))

	assert.Equal(t, beforeNotFound+2, testutil.ToFloat64(notFound))
	assert.Equal(t, beforeUpgraded+1, testutil.ToFloat64(upgraded))
	assert.Equal(t, float64(0), testutil.ToFloat64(scrapes))
	assert.Equal(t, float64(0), testutil.ToFloat64(httpInFlight))
}
