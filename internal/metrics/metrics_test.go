package metrics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCounter struct {
	n   int64
	err error
}

func (s stubCounter) CountActive(context.Context) (int64, error) {
	return s.n, s.err
}

func TestMetrics_ShoppingOps(t *testing.T) {
	m := New()
	m.ObserveShoppingOp("add", 1)
	m.ObserveShoppingOp("clear", 3)
	m.ObserveShoppingOp("clear", 0)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.shoppingOps.WithLabelValues("add")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.shoppingOps.WithLabelValues("clear")))
}

func TestMetrics_HTTPAndHandler(t *testing.T) {
	m := New()
	m.ObserveHTTP("GET", "/api/stores", "200", 15*time.Millisecond)
	require.NoError(t, m.RegisterActiveItems(stubCounter{n: 4}))

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, `family_shopping_http_requests_total{method="GET",route="/api/stores",status="200"} 1`)
	assert.Contains(t, body, "family_shopping_shopping_active_items 4")
}

func TestMetrics_ActiveItemsError(t *testing.T) {
	m := New()
	require.NoError(t, m.RegisterActiveItems(stubCounter{err: errors.New("db down")}))

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.True(t, strings.Contains(w.Body.String(), "family_shopping_shopping_active_items -1"))
}
