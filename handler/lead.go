package handler

import (
	"net/http"
	"time"

	"github.com/buildboardhq/buildboard/backend/middleware"
	"github.com/buildboardhq/buildboard/backend/model"
	"github.com/buildboardhq/buildboard/backend/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LeadHandler struct {
	store *service.Store
}

func NewLeadHandler(store *service.Store) *LeadHandler {
	return &LeadHandler{store: store}
}

type LeadRequest struct {
	ShopID  string `json:"shop_id" binding:"required"`
	BuildID string `json:"build_id"`
	Name    string `json:"name" binding:"required"`
	Contact string `json:"contact" binding:"required"`
	Message string `json:"message"`
}

// Create records an inbound inquiry for a shop. Public endpoint.
func (h *LeadHandler) Create(c *gin.Context) {
	var req LeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if h.store.ShopByID(req.ShopID) == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Shop not found"})
		return
	}
	if req.BuildID != "" && h.store.BuildByID(req.BuildID) == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Build not found"})
		return
	}

	lead := &model.Lead{
		ID:        uuid.New().String(),
		ShopID:    req.ShopID,
		BuildID:   req.BuildID,
		Name:      req.Name,
		Contact:   req.Contact,
		Message:   req.Message,
		CreatedAt: time.Now().UTC(),
	}
	h.store.SaveLead(lead)

	c.JSON(http.StatusOK, lead)
}

// ListByShop returns a shop's leads. Owner only.
func (h *LeadHandler) ListByShop(c *gin.Context) {
	shop := h.store.ShopByID(c.Param("id"))
	if shop == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Shop not found"})
		return
	}
	if shop.OwnerID != middleware.GetUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not the shop owner"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"leads": h.store.LeadsByShop(shop.ID)})
}
