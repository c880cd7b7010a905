package shops

import (
	"net/http"

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
	rg.POST("/shops", h.create)
	rg.GET("/shops", h.list)
	rg.GET("/shops/:id", h.get)
	rg.PATCH("/shops/:id", h.update)
}

func (h *Handler) create(c *gin.Context) {
	var shop Shop
	if err := c.ShouldBindJSON(&shop); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	created, err := h.Svc.Create(c.Request.Context(), shop)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}
	respond.JSON(c, http.StatusCreated, created)
}

func (h *Handler) get(c *gin.Context) {
	shop, err := h.Svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if err == ErrNotFound {
			respond.Error(c, http.StatusNotFound, "not_found", "shop not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load shop", nil)
		return
	}
	respond.OK(c, shop)
}

func (h *Handler) list(c *gin.Context) {
	out, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list shops", nil)
		return
	}
	respond.OK(c, gin.H{"shops": out})
}

func (h *Handler) update(c *gin.Context) {
	var upd ShopUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	shop, err := h.Svc.Update(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		if err == ErrNotFound {
			respond.Error(c, http.StatusNotFound, "not_found", "shop not found", nil)
			return
		}
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}
	respond.OK(c, shop)
}
