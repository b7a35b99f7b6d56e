package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LENAX/dag-checker/pkg/core/dag"
)

func TestMetrics_RecordCheck(t *testing.T) {
	m := NewMetrics()

	m.RecordCheck(dag.Result{NumNodes: 3, NumEdges: 2, IsDAG: true})
	m.RecordCheck(dag.Result{NumNodes: 3, NumEdges: 3, IsDAG: false})
	m.RecordCheck(dag.Result{NumNodes: 1, NumEdges: 0, IsDAG: true})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ChecksTotal.WithLabelValues(OutcomeDAG)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ChecksTotal.WithLabelValues(OutcomeCyclic)))
}

func TestMetrics_RecordRequest(t *testing.T) {
	m := NewMetrics()
	m.RecordRequest(http.MethodPost, "/pipelines/parse", 200, 5*time.Millisecond)
	m.RecordRequest(http.MethodPost, "/pipelines/parse", 422, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("POST", "/pipelines/parse", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("POST", "/pipelines/parse", "422")))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordCheck(dag.Result{IsDAG: true})
		m.RecordRequest("GET", "/", 200, time.Millisecond)
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := NewMetrics()
	m.RecordCheck(dag.Result{NumNodes: 1, IsDAG: true})

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `dag_checker_pipeline_checks_total{outcome="dag"} 1`)
}
