package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddleware_CountsByRoutePattern(t *testing.T) {
	mc := New()

	r := chi.NewRouter()
	r.Use(mc.Middleware)
	r.Get("/api/attendance/weekly/{employeeID}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for _, id := range []string{"E001", "E002"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/attendance/weekly/"+id, nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	got := testutil.ToFloat64(mc.RequestsTotal.WithLabelValues(http.MethodGet, "/api/attendance/weekly/{employeeID}", "200"))
	assert.Equal(t, 2.0, got)
}

func TestDomainCounters(t *testing.T) {
	mc := New()
	mc.ClockIn()
	mc.ClockIn()
	mc.ClockOut()
	mc.ApplicationSubmitted("휴가")
	mc.StatusUpdated("승인")

	assert.Equal(t, 2.0, testutil.ToFloat64(mc.ClockEventsTotal.WithLabelValues("clock_in")))
	assert.Equal(t, 1.0, testutil.ToFloat64(mc.ClockEventsTotal.WithLabelValues("clock_out")))
	assert.Equal(t, 1.0, testutil.ToFloat64(mc.ApplicationsTotal.WithLabelValues("휴가")))
	assert.Equal(t, 1.0, testutil.ToFloat64(mc.StatusUpdatesTotal.WithLabelValues("승인")))
}

func TestNilCollectionIsNoop(t *testing.T) {
	var mc *MetricsCollection
	assert.NotPanics(t, func() {
		mc.ClockIn()
		mc.ClockOut()
		mc.ApplicationSubmitted("기타")
		mc.StatusUpdated("반려")
	})
}

func TestHandler_ServesExposition(t *testing.T) {
	mc := New()
	mc.ClockIn()

	rec := httptest.NewRecorder()
	mc.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "hrsvr_clock_events_total")
}
