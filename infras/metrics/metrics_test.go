package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	Register()
	Register()

	assert.NotPanics(t, func() {
		ObserveHTTP(http.MethodGet, "/api/rooms/available", http.StatusOK, 15*time.Millisecond)
		ObserveHTTP(http.MethodGet, "", http.StatusNotFound, time.Millisecond)
	})

	assert.InDelta(t, 1, testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "unmatched", "404")), 0)
}

func TestDomainCounters(t *testing.T) {
	Register()

	before := testutil.ToFloat64(bookingConflicts)

	IncBookingConflict()
	IncBookingCreated()
	IncRoomServiceOrder()

	assert.InDelta(t, before+1, testutil.ToFloat64(bookingConflicts), 0)
	assert.GreaterOrEqual(t, testutil.ToFloat64(bookingsCreated), float64(1))
	assert.GreaterOrEqual(t, testutil.ToFloat64(roomServiceOrders), float64(1))
}
