package rewards

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

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
	rg.POST("/customers", h.createCustomer)
	rg.GET("/customers", h.listCustomers)
	rg.GET("/customers/:id", h.getCustomer)
	rg.POST("/customers/:id/points/earn", h.earn)
	rg.POST("/customers/:id/points/redeem", h.redeem)
	rg.GET("/customers/:id/points/history", h.history)
}

func (h *Handler) createCustomer(c *gin.Context) {
	var cust Customer
	if err := c.ShouldBindJSON(&cust); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	created, err := h.Svc.CreateCustomer(c.Request.Context(), cust)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}
	respond.JSON(c, http.StatusCreated, created)
}

func (h *Handler) getCustomer(c *gin.Context) {
	cust, err := h.Svc.GetCustomer(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "customer not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load customer", nil)
		return
	}
	respond.OK(c, cust)
}

func (h *Handler) listCustomers(c *gin.Context) {
	shopID := strings.TrimSpace(c.Query("shop_id"))
	if shopID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "shop_id is required", nil)
		return
	}
	c.Set("shopId", shopID)
	out, err := h.Svc.ListCustomers(c.Request.Context(), shopID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list customers", nil)
		return
	}
	respond.OK(c, gin.H{"customers": out})
}

type pointsRequest struct {
	ShopID string `json:"shop_id"`
	Points int64  `json:"points"`
	Reason string `json:"reason"`
}

func (h *Handler) earn(c *gin.Context) {
	var req pointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	cust, err := h.Svc.Earn(c.Request.Context(), req.ShopID, c.Param("id"), req.Points, req.Reason, "")
	if err != nil {
		h.pointsError(c, err)
		return
	}
	respond.OK(c, cust)
}

func (h *Handler) redeem(c *gin.Context) {
	var req pointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	cust, err := h.Svc.Redeem(c.Request.Context(), req.ShopID, c.Param("id"), req.Points, req.Reason)
	if err != nil {
		h.pointsError(c, err)
		return
	}
	respond.OK(c, cust)
}

func (h *Handler) pointsError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "customer not found", nil)
	case errors.Is(err, ErrInsufficientPoints):
		respond.Error(c, http.StatusConflict, "insufficient_points", "customer does not have enough points", nil)
	default:
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	}
}

func (h *Handler) history(c *gin.Context) {
	limit := 50
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	out, err := h.Svc.History(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load history", nil)
		return
	}
	respond.OK(c, gin.H{"transactions": out})
}
