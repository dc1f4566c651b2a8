package observability_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"homestay/internal/adapters/observability"
	"homestay/internal/domain"
)

func TestMetricsRegistryAndHandler(t *testing.T) {
	reg := observability.InitRegistry()

	// record samples so counters are non-zero
	observability.ObserveHTTP("/test", "GET", 200, 12*time.Millisecond)
	observability.ObserveStore("get_by_id", 3*time.Millisecond, nil)
	observability.ObserveStore("get_by_id", 3*time.Millisecond, domain.ErrNotFound)
	observability.ObserveStore("create", time.Millisecond, &domain.ValidationError{Field: "maxGuests", Reason: "x"})
	observability.ObserveStore("list", time.Millisecond, errors.New("boom"))

	mh := observability.MetricsHandler(reg)
	req := httptest.NewRequest("GET", "/metrics", nil)
	rr := httptest.NewRecorder()
	mh.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("metrics status: %d", rr.Code)
	}
	body, _ := io.ReadAll(rr.Body)
	out := string(body)
	for _, want := range []string{
		"homestay_http_requests_total",
		`homestay_store_ops_total{op="get_by_id",outcome="ok"}`,
		`homestay_store_ops_total{op="get_by_id",outcome="not_found"}`,
		`homestay_store_ops_total{op="create",outcome="invalid"}`,
		`homestay_store_ops_total{op="list",outcome="error"}`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in metrics output", want)
		}
	}
}
