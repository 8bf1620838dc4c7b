package metrics

import (
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestIntentMetricsExportsCountersAndHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewIntentMetrics(reg)

	metrics.IncCommand("SEARCH")
	metrics.IncCommand("SEARCH")
	metrics.IncFallback()
	metrics.ObserveOracleDuration(120 * time.Millisecond)
	metrics.IncOracleError("rate_limited")

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	if got, err := fetchCounterValue(mfs, "intent_commands_total", "action", "SEARCH"); err != nil {
		t.Fatalf("fetch commands: %v", err)
	} else if got != 2 {
		t.Fatalf("expected commands=2, got %f", got)
	}

	if got, err := fetchCounterValue(mfs, "oracle_errors_total", "kind", "rate_limited"); err != nil {
		t.Fatalf("fetch oracle errors: %v", err)
	} else if got != 1 {
		t.Fatalf("expected errors=1, got %f", got)
	}

	if mf := findMetricFamily(mfs, "intent_fallbacks_total"); mf == nil {
		t.Fatal("fallback counter not registered")
	} else if mf.GetMetric()[0].GetCounter().GetValue() != 1 {
		t.Fatalf("expected fallbacks=1")
	}

	if mf := findMetricFamily(mfs, "oracle_request_duration_seconds"); mf == nil {
		t.Fatal("latency histogram not registered")
	} else if mf.GetMetric()[0].GetHistogram().GetSampleSum() <= 0 {
		t.Fatalf("expected latency sum > 0")
	}
}

func TestIntentMetricsNilReceiverIsSafe(t *testing.T) {
	var metrics *IntentMetrics
	metrics.IncCommand("SEARCH")
	metrics.IncFallback()
	metrics.ObserveOracleDuration(time.Second)
	metrics.IncOracleError("")

	empty := NewIntentMetrics(nil)
	empty.IncCommand("NAVIGATE")
}

func fetchCounterValue(mfs []*dto.MetricFamily, name, label, value string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		if matchesLabel(metric.GetLabel(), label, value) {
			return metric.GetCounter().GetValue(), nil
		}
	}
	return 0, fmt.Errorf("metric %q missing label %s=%s", name, label, value)
}

func findMetricFamily(mfs []*dto.MetricFamily, name string) *dto.MetricFamily {
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func matchesLabel(labels []*dto.LabelPair, name, value string) bool {
	for _, label := range labels {
		if label.GetName() == name && label.GetValue() == value {
			return true
		}
	}
	return false
}
