package analyze

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func testService() *Service {
	return NewService(NewEngine(fixedNow), nil, fixedNow)
}

func TestAnalyzeBytesEmptyPayloadFallsBack(t *testing.T) {
	out := testService().AnalyzeBytes(context.Background(), nil)
	if out.Record.ServiceDate != "2025-03-10" {
		t.Fatalf("service date = %q, want 2025-03-10", out.Record.ServiceDate)
	}
	if out.Record.TotalAmount != 0 || out.Record.PartsCost != 0 || out.Record.LaborCost != 0 {
		t.Fatalf("costs not zeroed: %+v", out.Record)
	}
	if out.Notice == "" {
		t.Fatal("expected an advisory notice for an unreadable document")
	}
}

func TestAnalyzeBytesGarbageFallsBack(t *testing.T) {
	out := testService().AnalyzeBytes(context.Background(), []byte("%PDF-1.4 truncated nonsense"))
	if out.Record.ServiceDate != "2025-03-10" {
		t.Fatalf("service date = %q", out.Record.ServiceDate)
	}
	if out.Notice != noFieldsNotice {
		t.Fatalf("notice = %q", out.Notice)
	}
}

func TestAnalyzeURLNonSuccessStatusFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	out := testService().AnalyzeURL(context.Background(), srv.URL+"/missing.pdf")
	if out.Cause == nil {
		t.Fatal("expected a cause for a 404 fetch")
	}
	if out.Notice != manualEntryNotice {
		t.Fatalf("notice = %q", out.Notice)
	}
	if out.Record != FallbackRecord(fixedNow()) {
		t.Fatalf("record = %+v, want fallback", out.Record)
	}
}

func TestAnalyzeURLUnreachableHostFallsBack(t *testing.T) {
	out := testService().AnalyzeURL(context.Background(), "http://127.0.0.1:1/ro.pdf")
	if out.Cause == nil {
		t.Fatal("expected a transport failure")
	}
	if out.Record.ServiceDate != "2025-03-10" {
		t.Fatalf("record = %+v", out.Record)
	}
}

func TestAnalyzeBytesFetchesOnlyOnce(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_ = testService().AnalyzeURL(context.Background(), srv.URL)
	if hits != 1 {
		t.Fatalf("fetch attempts = %d, want 1 (no retries)", hits)
	}
}

func TestFallbackRecordShape(t *testing.T) {
	rec := testService().Fallback()
	if rec.ServiceDate != "2025-03-10" {
		t.Fatalf("service date = %q", rec.ServiceDate)
	}
	if rec.CustomerName != "" || rec.VIN != "" {
		t.Fatalf("fallback carries extracted fields: %+v", rec)
	}
}
