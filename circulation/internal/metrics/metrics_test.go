package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	m := New()
	m.Checkout("ok")
	m.Checkout("ok")
	m.Checkout("conflict")
	m.Return("RESERVED")
	m.Reservation("PENDING")
	m.Notification("failed")
	m.Fault()

	require.Equal(t, 2.0, testutil.ToFloat64(m.checkouts.WithLabelValues("ok")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.checkouts.WithLabelValues("conflict")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.returns.WithLabelValues("RESERVED")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.faults))

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, strings.Contains(w.Body.String(), `circulation_notifications_total{result="failed"} 1`))
}

func TestMetrics_Nil(t *testing.T) {
	var m *Metrics
	require.NotPanics(t, func() {
		m.Checkout("ok")
		m.Return("AVAILABLE")
		m.Reservation("CANCELED")
		m.Notification("sent")
		m.Fault()
	})
}
