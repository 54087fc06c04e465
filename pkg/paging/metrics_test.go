package paging

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsCountRecomputations(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(WithPrometheusRegistry(reg))

	p := newTestPaged(t, Range(1, 10), WithPageSize(3), WithMetrics(m))

	_ = p.PageCount()
	_ = p.PageCount()
	if got := testutil.ToFloat64(m.recomputations.WithLabelValues("page_count")); got != 1 {
		t.Errorf("expected 1 page_count recomputation, got %v", got)
	}

	if err := p.SetPageSize(2); err != nil {
		t.Fatalf("SetPageSize: %v", err)
	}
	_ = p.PageCount()
	if got := testutil.ToFloat64(m.recomputations.WithLabelValues("page_count")); got != 2 {
		t.Errorf("expected 2 page_count recomputations, got %v", got)
	}
}

func TestMetricsCountNavigations(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(WithPrometheusRegistry(reg), WithNamespace("test"))

	p := newTestPaged(t, Range(1, 4), WithPageSize(2), WithMetrics(m))
	p.ToNextPage()
	p.ToNextPage()
	p.ToFirstPage()

	if got := testutil.ToFloat64(m.navigations.WithLabelValues("next", "moved")); got != 1 {
		t.Errorf("expected 1 moved next, got %v", got)
	}
	if got := testutil.ToFloat64(m.navigations.WithLabelValues("next", "noop")); got != 1 {
		t.Errorf("expected 1 noop next, got %v", got)
	}
	if got := testutil.ToFloat64(m.navigations.WithLabelValues("first", "moved")); got != 1 {
		t.Errorf("expected 1 moved first, got %v", got)
	}

	if err := p.UseGenerator(GeneratorSliding); err != nil {
		t.Fatalf("UseGenerator: %v", err)
	}
	p.SetGenerator(p.Generator())
	if got := testutil.ToFloat64(m.generatorChanges); got != 1 {
		t.Errorf("expected 1 generator change, got %v", got)
	}

	if n, err := testutil.GatherAndCount(reg, "test_navigations_total"); err != nil || n != 3 {
		t.Errorf("expected 3 navigation series, got %d (%v)", n, err)
	}
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.recomputed("pages")
	m.navigated("next", true)
	m.generatorChanged()
}
