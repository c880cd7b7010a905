package analyze

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"autoshop-backend/internal/extract"
)

const (
	manualEntryNotice = "Could not read the document. Please enter the repair order details manually."
	noFieldsNotice    = "No fields could be read from the document. Please review and complete the details manually."
)

// Service runs the document → text → fields pipeline with the fallback
// policy wrapped around every stage.
type Service struct {
	engine *Engine
	client *http.Client
	now    func() time.Time
}

// NewService constructs a Service. The HTTP client carries no timeout on
// purpose: the gateway in front of the API bounds slow fetches, and the
// loader itself never retries. nil arguments fall back to defaults.
func NewService(engine *Engine, client *http.Client, now func() time.Time) *Service {
	if engine == nil {
		engine = NewEngine(now)
	}
	if client == nil {
		client = &http.Client{}
	}
	if now == nil {
		now = time.Now
	}
	return &Service{engine: engine, client: client, now: now}
}

// Outcome is the internal result of one extraction run. Cause never crosses
// the HTTP boundary as a hard error; the handler folds it into the soft
// response contract.
type Outcome struct {
	Record Record
	Notice string // advisory shown to the user when the run degraded
	Cause  error  // underlying failure, for logs only
}

// Fallback returns the default record for requests that cannot be processed.
func (s *Service) Fallback() Record {
	return FallbackRecord(s.now())
}

// AnalyzeURL fetches the document once and analyzes it. Any transport
// failure degrades to the fallback record; the caller may retry the whole
// operation if it wants another attempt.
func (s *Service) AnalyzeURL(ctx context.Context, fileURL string) Outcome {
	data, err := s.fetch(ctx, fileURL)
	if err != nil {
		return Outcome{Record: s.Fallback(), Notice: manualEntryNotice, Cause: err}
	}
	return s.AnalyzeBytes(ctx, data)
}

// AnalyzeBytes converts the payload to text and runs the field engine.
// Text extraction failures surface as empty text, which simply matches
// nothing; the result is then indistinguishable from a blank document.
func (s *Service) AnalyzeBytes(ctx context.Context, data []byte) Outcome {
	if err := ctx.Err(); err != nil {
		return Outcome{Record: s.Fallback(), Notice: manualEntryNotice, Cause: err}
	}

	text := extract.PDFText(data)
	rec := s.engine.Extract(text)
	nothingFound := rec == Record{}

	out := Outcome{Record: finalize(rec, s.now())}
	if nothingFound {
		out.Notice = noFieldsNotice
	}
	return out
}

// finalize applies the fallback defaults to whatever the engine recovered.
func finalize(rec Record, now time.Time) Record {
	if rec.ServiceDate == "" {
		rec.ServiceDate = now.UTC().Format(dateLayout)
	}
	return rec
}

func (s *Service) fetch(ctx context.Context, fileURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch document: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read document body: %w", err)
	}
	return data, nil
}
