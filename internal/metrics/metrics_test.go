package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRegistry_Records(t *testing.T) {
	reg := NewRegistry()

	reg.RecordRequest("GET", "/cryptos", 200, 0.05)
	reg.RecordRefreshSuccess(250)
	reg.RecordRefreshFailure()
	reg.RecordCacheHit()
	reg.RecordCacheMiss()
	reg.InFlightInc()
	reg.InFlightDec()

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}

	want := map[string]bool{
		"http_requests_total":                  false,
		"coinsight_refresh_total":              false,
		"coinsight_snapshot_assets":            false,
		"coinsight_request_cache_hits_total":   false,
		"coinsight_request_cache_misses_total": false,
	}
	for _, f := range families {
		if _, ok := want[f.GetName()]; ok {
			want[f.GetName()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("metric %s not gathered", name)
		}
	}
}

func TestRegistry_NilSafe(t *testing.T) {
	var reg *Registry

	// All instrumentation points must be no-ops on a nil registry.
	reg.RecordRequest("GET", "/", 200, 0)
	reg.RecordRefreshSuccess(1)
	reg.RecordRefreshFailure()
	reg.RecordCacheHit()
	reg.RecordCacheMiss()
	reg.InFlightInc()
	reg.InFlightDec()
}

func TestHTTPMiddleware(t *testing.T) {
	reg := NewRegistry()

	handler := HTTPMiddleware(reg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/missing", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 passthrough, got %d", rec.Code)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}
	found := false
	for _, f := range families {
		if f.GetName() == "http_requests_total" {
			found = true
		}
	}
	if !found {
		t.Error("expected http_requests_total to be recorded")
	}
}

func TestHTTPMiddleware_NilRegistry(t *testing.T) {
	handler := HTTPMiddleware(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}
