package analyze

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(testService())
	h.RegisterRoutes(r.Group("/api/v1"))
	return r
}

func decodeAnalyze(t *testing.T, w *httptest.ResponseRecorder) analyzeResponse {
	t.Helper()
	var resp analyzeResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func TestAnalyzeMissingShopIDStillSucceeds(t *testing.T) {
	r := testRouter(t)
	body := `{"file_url":"http://example.com/ro.pdf"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/repair-orders/analyze", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	resp := decodeAnalyze(t, w)
	if !resp.Success {
		t.Fatal("success = false")
	}
	if resp.Message == "" {
		t.Fatal("expected an advisory message")
	}
	if resp.Data.ServiceDate != "2025-03-10" {
		t.Fatalf("service date = %q", resp.Data.ServiceDate)
	}
}

func TestAnalyzeMalformedJSONStillSucceeds(t *testing.T) {
	r := testRouter(t)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/repair-orders/analyze", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	resp := decodeAnalyze(t, w)
	if !resp.Success || resp.Message == "" {
		t.Fatalf("response = %+v", resp)
	}
}

func TestAnalyzeMultipartGarbageStillSucceeds(t *testing.T) {
	r := testRouter(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := mw.WriteField("shop_id", "shop-42"); err != nil {
		t.Fatal(err)
	}
	fw, err := mw.CreateFormFile("file", "ro.pdf")
	if err != nil {
		t.Fatal(err)
	}
	fw.Write([]byte("not a pdf at all"))
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/repair-orders/analyze", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	resp := decodeAnalyze(t, w)
	if !resp.Success {
		t.Fatal("success = false")
	}
	if resp.Data.ServiceDate != "2025-03-10" || resp.Data.TotalAmount != 0 {
		t.Fatalf("data = %+v, want fallback record", resp.Data)
	}
}

func TestAnalyzeMultipartWithoutFileStillSucceeds(t *testing.T) {
	r := testRouter(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	mw.WriteField("shop_id", "shop-42")
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/repair-orders/analyze", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	resp := decodeAnalyze(t, w)
	if !resp.Success || resp.Message == "" {
		t.Fatalf("response = %+v", resp)
	}
}
