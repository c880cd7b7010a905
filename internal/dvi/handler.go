package dvi

import (
	"errors"
	"net/http"
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
	rg.POST("/dvi/templates", h.createTemplate)
	rg.GET("/dvi/templates", h.listTemplates)
	rg.GET("/dvi/templates/:id", h.getTemplate)
	rg.POST("/dvi/reports", h.createReport)
	rg.GET("/dvi/reports", h.listReports)
	rg.GET("/dvi/reports/:id", h.getReport)
	rg.PATCH("/dvi/reports/:id", h.updateReport)
	rg.POST("/dvi/reports/:id/send", h.sendReport)
}

func (h *Handler) createTemplate(c *gin.Context) {
	var tpl Template
	if err := c.ShouldBindJSON(&tpl); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	created, err := h.Svc.CreateTemplate(c.Request.Context(), tpl)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}
	respond.JSON(c, http.StatusCreated, created)
}

func (h *Handler) getTemplate(c *gin.Context) {
	tpl, err := h.Svc.GetTemplate(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "template not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load template", nil)
		return
	}
	respond.OK(c, tpl)
}

func (h *Handler) listTemplates(c *gin.Context) {
	shopID := strings.TrimSpace(c.Query("shop_id"))
	if shopID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "shop_id is required", nil)
		return
	}
	c.Set("shopId", shopID)
	out, err := h.Svc.ListTemplates(c.Request.Context(), shopID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list templates", nil)
		return
	}
	respond.OK(c, gin.H{"templates": out})
}

func (h *Handler) createReport(c *gin.Context) {
	var rep Report
	if err := c.ShouldBindJSON(&rep); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	created, err := h.Svc.CreateReport(c.Request.Context(), rep)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "template not found", nil)
			return
		}
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}
	respond.JSON(c, http.StatusCreated, created)
}

func (h *Handler) getReport(c *gin.Context) {
	rep, err := h.Svc.GetReport(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "report not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load report", nil)
		return
	}
	respond.OK(c, rep)
}

func (h *Handler) listReports(c *gin.Context) {
	shopID := strings.TrimSpace(c.Query("shop_id"))
	if shopID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "shop_id is required", nil)
		return
	}
	c.Set("shopId", shopID)
	out, err := h.Svc.ListReports(c.Request.Context(), shopID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list reports", nil)
		return
	}
	respond.OK(c, gin.H{"reports": out})
}

type updateReportRequest struct {
	Results []ReportItem `json:"results"`
	Status  string       `json:"status"`
}

func (h *Handler) updateReport(c *gin.Context) {
	var req updateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	rep, err := h.Svc.UpdateReport(c.Request.Context(), c.Param("id"), req.Results, req.Status)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "report not found", nil)
			return
		}
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}
	respond.OK(c, rep)
}

func (h *Handler) sendReport(c *gin.Context) {
	rep, err := h.Svc.UpdateReport(c.Request.Context(), c.Param("id"), nil, ReportStatusSent)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "report not found", nil)
			return
		}
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}
	respond.OK(c, rep)
}
