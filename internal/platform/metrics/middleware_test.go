// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsMiddleware_RecordsRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware())
	r.Get("/api/v1/media/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/media/m404", http.NoBody)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rr.Code)
	}

	got := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/api/v1/media/{id}", "404"))
	if got < 1 {
		t.Errorf("expected http_requests_total >= 1, got %f", got)
	}
}

func TestObserveRemote_CountsOutcomes(t *testing.T) {
	before := testutil.ToFloat64(remoteRequestsTotal.WithLabelValues("search", OutcomeSuperseded))

	CountRemote("search", OutcomeSuperseded)
	ObserveRemote("search", OutcomeOK, 20*time.Millisecond)

	after := testutil.ToFloat64(remoteRequestsTotal.WithLabelValues("search", OutcomeSuperseded))
	if after-before != 1 {
		t.Errorf("expected superseded counter to grow by 1, got %f", after-before)
	}
	if testutil.CollectAndCount(remoteRequestDuration) == 0 {
		t.Error("expected remote latency observations")
	}
}
