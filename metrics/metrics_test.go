package metrics

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceRecordsOutcomes(t *testing.T) {
	reg := prometheus.NewRegistry()
	s := NewService(reg)

	s.ObserveUnitOfWork("register", true)
	s.ObserveUnitOfWork("register", false)
	s.ObserveUnitOfWork("register", false)
	s.IncEventsPublished("registration.created")
	s.IncSnapshotExports(true)
	s.ObserveRequest("GET", "/api/teams-public", 200, 15*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(s.UnitsOfWork.WithLabelValues("register", "committed")))
	assert.Equal(t, 2.0, testutil.ToFloat64(s.UnitsOfWork.WithLabelValues("register", "rolled_back")))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.EventsPublished.WithLabelValues("registration.created")))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.SnapshotExports.WithLabelValues("success")))
	assert.Equal(t, 1, testutil.CollectAndCount(s.RequestDuration))
}

func TestMetricsHandlerExposesRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	s := NewService(reg)
	s.ObserveUnitOfWork("team.delete", true)

	rec := httptest.NewRecorder()
	NewMetricsHandler(reg).ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `esports_units_of_work_total{operation="team.delete",outcome="committed"} 1`)
}

func TestMock(t *testing.T) {
	m := NewMock()
	m.ObserveUnitOfWork("player.delete", false)
	m.IncEventsPublished("player.deleted")
	m.ObserveRequest("DELETE", "/api/players/{id}", 200, time.Millisecond)

	assert.Equal(t, 1, m.UnitsOfWork("player.delete", false))
	assert.Equal(t, 0, m.UnitsOfWork("player.delete", true))
	assert.Equal(t, 1, m.EventsPublished("player.deleted"))
	assert.Equal(t, 1, m.Requests())
}
