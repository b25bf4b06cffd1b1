package metrics_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/katalvlaran/wavepick/metrics"
	"github.com/katalvlaran/wavepick/selector"
	"github.com/stretchr/testify/require"
)

func TestRegistry_ExportsCounters(t *testing.T) {
	r := metrics.NewRegistry()
	r.IncIteration()
	r.IncIteration()
	r.IncPerturbation()
	r.IncEliteOffer(true)
	r.IncEliteOffer(false)
	r.SetBestCost(12.5)
	r.SetBestSolutionStats(3, 42)
	r.SetArchiveSize(2)
	r.ExportBanditSnapshots([]selector.Snapshot{
		{Name: "AddOrder", Uses: 5, MeanReward: 0.4},
	})

	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)

	body := rec.Body.String()
	require.Contains(t, body, "wavepick_iterations_total 2")
	require.Contains(t, body, "wavepick_best_cost 12.5")
	require.Contains(t, body, `wavepick_operator_uses{operator="AddOrder"} 5`)
	require.True(t, strings.Contains(body, "wavepick_elite_accepts_total 1"))
}

func TestNewRegistry_Independent(t *testing.T) {
	r1 := metrics.NewRegistry()
	r2 := metrics.NewRegistry()
	r1.IncIteration()
	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()
	r2.Handler().ServeHTTP(rec, req)
	require.Contains(t, rec.Body.String(), "wavepick_iterations_total 0")
}
