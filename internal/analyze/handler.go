package analyze

import (
	"fmt"
	"io"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"autoshop-backend/internal/shared/metrics"
	"autoshop-backend/internal/shared/server/middleware"
	"autoshop-backend/internal/shared/server/respond"
	"autoshop-backend/internal/shared/telemetry"
)

const maxDocumentSize = 10 << 20 // 10MB

// Handler exposes the repair-order analysis endpoint.
//
// The endpoint never fails hard: malformed requests, unreachable documents,
// unreadable PDFs, and even panics all answer HTTP 200 with success=true and
// the fallback record, so the portal can drop straight into manual entry.
// Callers detect degraded runs through the message/error fields, not the
// status code.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/repair-orders/analyze", h.analyze)
}

type analyzeRequest struct {
	FileURL string `json:"file_url"`
	ShopID  string `json:"shop_id"`
}

type analyzeResponse struct {
	Success bool   `json:"success"`
	Data    Record `json:"data"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func (h *Handler) analyze(c *gin.Context) {
	start := time.Now()
	metrics.IncExtractionStarted()
	defer func() {
		metrics.ObserveExtractionDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
		if rec := recover(); rec == nil {
			return
		} else {
			telemetry.Error("analyze.panic", map[string]any{
				"request_id": middleware.RequestIDFromContext(c),
				"error":      fmt.Sprint(rec),
				"stack":      string(debug.Stack()),
			})
			metrics.IncExtractionFallback()
			c.Set("extractionOutcome", "panic")
			if !c.Writer.Written() {
				respond.OK(c, analyzeResponse{
					Success: true,
					Data:    h.Svc.Fallback(),
					Message: manualEntryNotice,
					Error:   fmt.Sprint(rec),
				})
			}
		}
	}()

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxDocumentSize)

	var (
		out    Outcome
		shopID string
	)

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		shopID = strings.TrimSpace(c.PostForm("shop_id"))
		fileHeader, err := c.FormFile("file")
		if err != nil {
			h.soft(c, shopID, "A document file is required. Please enter the details manually.")
			return
		}
		if shopID == "" {
			h.soft(c, shopID, "shop_id is required. Please enter the details manually.")
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			h.soft(c, shopID, manualEntryNotice)
			return
		}
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			h.soft(c, shopID, manualEntryNotice)
			return
		}
		c.Set("shopId", shopID)
		out = h.Svc.AnalyzeBytes(c.Request.Context(), data)
	} else {
		var req analyzeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			h.soft(c, "", "Invalid request body. Please enter the details manually.")
			return
		}
		shopID = strings.TrimSpace(req.ShopID)
		fileURL := strings.TrimSpace(req.FileURL)
		if fileURL == "" || shopID == "" {
			h.soft(c, shopID, "file_url and shop_id are required. Please enter the details manually.")
			return
		}
		c.Set("shopId", shopID)
		out = h.Svc.AnalyzeURL(c.Request.Context(), fileURL)
	}

	if out.Cause != nil || out.Notice != "" {
		metrics.IncExtractionFallback()
		c.Set("extractionOutcome", "degraded")
		if out.Cause != nil {
			telemetry.Error("analyze.degraded", map[string]any{
				"request_id": middleware.RequestIDFromContext(c),
				"shop_id":    shopID,
				"error":      out.Cause.Error(),
			})
		}
	} else {
		metrics.IncExtractionCompleted()
		c.Set("extractionOutcome", "ok")
	}

	respond.OK(c, analyzeResponse{
		Success: true,
		Data:    out.Record,
		Message: out.Notice,
	})
}

// soft answers a request that could not even reach the pipeline: still a 200
// with the fallback record and an advisory message.
func (h *Handler) soft(c *gin.Context, shopID, msg string) {
	if shopID != "" {
		c.Set("shopId", shopID)
	}
	metrics.IncExtractionFallback()
	c.Set("extractionOutcome", "fallback")
	respond.OK(c, analyzeResponse{
		Success: true,
		Data:    h.Svc.Fallback(),
		Message: msg,
	})
}
