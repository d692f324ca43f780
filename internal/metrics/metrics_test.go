package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func counterValue(t *testing.T, reg *prometheus.Registry, name string) float64 {
	t.Helper()
	metrics, err := reg.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}
	for _, mf := range metrics {
		if mf.GetName() == name {
			if len(mf.GetMetric()) != 1 {
				t.Fatalf("expected 1 metric for %s, got %d", name, len(mf.GetMetric()))
			}
			m := mf.GetMetric()[0]
			if m.GetCounter() != nil {
				return m.GetCounter().GetValue()
			}
			return m.GetGauge().GetValue()
		}
	}
	t.Fatalf("metric %s not found", name)
	return 0
}

// TestNewCollector_ReturnsNonNil はCollectorが正常に生成されることを検証する。
func TestNewCollector_ReturnsNonNil(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	if c == nil {
		t.Fatal("expected non-nil Collector")
	}
}

// TestRecordLoginCounters はログイン成敗カウンタが増加することを検証する。
func TestRecordLoginCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordLoginSuccess()
	c.RecordLoginSuccess()
	c.RecordLoginFailure()

	if v := counterValue(t, reg, "stockman_login_success_total"); v != 2 {
		t.Errorf("login_success_total = %v, want 2", v)
	}
	if v := counterValue(t, reg, "stockman_login_fail_total"); v != 1 {
		t.Errorf("login_fail_total = %v, want 1", v)
	}
}

// TestRecordHTTPStatus はステータスコード別カウンタが増加することを検証する。
func TestRecordHTTPStatus(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordHTTPStatus(200)
	c.RecordHTTPStatus(200)
	c.RecordHTTPStatus(401)

	metrics, err := reg.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}

	found := map[string]float64{}
	for _, mf := range metrics {
		if mf.GetName() != "stockman_http_status_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, l := range m.GetLabel() {
				if l.GetName() == "status_code" {
					found[l.GetValue()] = m.GetCounter().GetValue()
				}
			}
		}
	}

	if found["200"] != 2 {
		t.Errorf("http_status_total{200} = %v, want 2", found["200"])
	}
	if found["401"] != 1 {
		t.Errorf("http_status_total{401} = %v, want 1", found["401"])
	}
}

// TestSessionMetrics はセッション関連メトリクスの記録を検証する。
func TestSessionMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordSessionCreated()
	c.RecordSessionCreated()
	c.RecordSessionsExpired(2)
	c.SetActiveSessions(5)

	if v := counterValue(t, reg, "stockman_sessions_created_total"); v != 2 {
		t.Errorf("sessions_created_total = %v, want 2", v)
	}
	if v := counterValue(t, reg, "stockman_sessions_expired_total"); v != 2 {
		t.Errorf("sessions_expired_total = %v, want 2", v)
	}
	if v := counterValue(t, reg, "stockman_sessions_active"); v != 5 {
		t.Errorf("sessions_active = %v, want 5", v)
	}
}

// TestSetupMetricsRoute_ServesMetrics は/metricsパスでメトリクスが返ることを検証する。
func TestSetupMetricsRoute_ServesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.RecordLoginSuccess()

	handler := SetupMetricsRoute(reg)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "stockman_login_success_total") {
		t.Error("response should contain stockman_login_success_total metric")
	}
}
