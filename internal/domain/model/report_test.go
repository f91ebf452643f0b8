//go:build !integration

package model

import "testing"

func TestDecodeReport(t *testing.T) {
	t.Run("should default every missing field", func(t *testing.T) {
		report, metrics, err := DecodeReport([]byte(`{}`))
		if err != nil {
			t.Fatalf("expected no error, but got: %v", err)
		}
		if report.Overview != "Analysis completed." {
			t.Errorf("overview = %q, want fallback sentence", report.Overview)
		}
		if report.StrongSignals == nil || len(report.StrongSignals) != 0 {
			t.Error("strongSignals must default to an empty list")
		}
		if report.RiskFlags == nil || len(report.RiskFlags) != 0 {
			t.Error("riskFlags must default to an empty list")
		}
		if report.ExampleRewrites == nil || len(report.ExampleRewrites) != 0 {
			t.Error("exampleRewrites must default to an empty list")
		}
		if metrics == nil {
			t.Fatal("metrics must default to a zero value")
		}
		if metrics.QuantificationRate != 0 || metrics.ClarityScore != 0 {
			t.Errorf("metrics must zero-default, got %+v", metrics)
		}
		if metrics.ImpactDistribution == nil || len(metrics.ImpactDistribution) != 0 {
			t.Error("impactDistribution must default to an empty map")
		}
	})

	t.Run("should cap example rewrites at two", func(t *testing.T) {
		raw := []byte(`{"exampleRewrites":[
			{"original":"a","revised":"A"},
			{"original":"b","revised":"B"},
			{"original":"c","revised":"C"},
			{"original":"d","revised":"D"},
			{"original":"e","revised":"E"}
		]}`)
		report, _, err := DecodeReport(raw)
		if err != nil {
			t.Fatalf("expected no error, but got: %v", err)
		}
		if len(report.ExampleRewrites) != 2 {
			t.Fatalf("expected 2 rewrites, got %d", len(report.ExampleRewrites))
		}
		if report.ExampleRewrites[0].Original != "a" || report.ExampleRewrites[1].Original != "b" {
			t.Errorf("cap must keep the first two entries, got %+v", report.ExampleRewrites)
		}
	})

	t.Run("should pass populated fields through", func(t *testing.T) {
		raw := []byte(`{
			"overview":"Strong backend profile.",
			"strongSignals":[{"type":"impact","evidence":"cut p99 by 40%","whyItMatters":"quantified"}],
			"metrics":{"quantificationRate":0.6,"clarityScore":0.8,"impactDistribution":{"high":0.5}}
		}`)
		report, metrics, err := DecodeReport(raw)
		if err != nil {
			t.Fatalf("expected no error, but got: %v", err)
		}
		if report.Overview != "Strong backend profile." {
			t.Errorf("overview = %q", report.Overview)
		}
		if len(report.StrongSignals) != 1 || report.StrongSignals[0].Evidence != "cut p99 by 40%" {
			t.Errorf("strongSignals = %+v", report.StrongSignals)
		}
		if metrics.QuantificationRate != 0.6 || metrics.ImpactDistribution["high"] != 0.5 {
			t.Errorf("metrics = %+v", metrics)
		}
	})

	t.Run("should reject malformed json", func(t *testing.T) {
		if _, _, err := DecodeReport([]byte(`{"overview":`)); err == nil {
			t.Fatal("expected an error for malformed json")
		}
	})
}
