package metrics_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"warehouse/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_ObserveTransition(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())

	m.ObserveTransition("archive", nil)
	m.ObserveTransition("archive", nil)
	m.ObserveTransition("archive", errors.New("boom"))

	assert.InDelta(t, 2, testutil.ToFloat64(m.Transitions.WithLabelValues("archive", metrics.OutcomeSuccess)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Transitions.WithLabelValues("archive", metrics.OutcomeFailure)), 0)
}

func TestMetrics_Handler(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	m.SweepDeleted.Add(3)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "warehouse_cleanup_deleted_total 3")
}
