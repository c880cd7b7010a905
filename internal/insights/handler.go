package insights

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"autoshop-backend/internal/shared/server/respond"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/insights/summary", h.summary)
}

func (h *Handler) summary(c *gin.Context) {
	shopID := strings.TrimSpace(c.Query("shop_id"))
	if shopID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "shop_id is required", nil)
		return
	}
	c.Set("shopId", shopID)

	from, ok := parseDay(c.Query("from"))
	if !ok {
		respond.Error(c, http.StatusBadRequest, "validation_error", "from must be YYYY-MM-DD", nil)
		return
	}
	to, ok := parseDay(c.Query("to"))
	if !ok {
		respond.Error(c, http.StatusBadRequest, "validation_error", "to must be YYYY-MM-DD", nil)
		return
	}
	if !to.IsZero() {
		// Make the "to" day inclusive.
		to = to.Add(24 * time.Hour)
	}

	sum, err := h.Svc.Summary(c.Request.Context(), shopID, from, to)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}
	respond.OK(c, sum)
}

func parseDay(v string) (time.Time, bool) {
	if v == "" {
		return time.Time{}, true
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}
