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

type ShopHandler struct {
	store *service.Store
}

func NewShopHandler(store *service.Store) *ShopHandler {
	return &ShopHandler{store: store}
}

type ShopRequest struct {
	Name        string   `json:"name" binding:"required"`
	Location    string   `json:"location"`
	Specialties []string `json:"specialties"`
	Instagram   string   `json:"instagram"`
	Website     string   `json:"website"`
}

// Create creates the caller's shop. One shop per user.
func (h *ShopHandler) Create(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req ShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if h.store.ShopByOwner(userID) != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "User already owns a shop"})
		return
	}

	shop := &model.Shop{
		ID:          uuid.New().String(),
		OwnerID:     userID,
		Name:        req.Name,
		Location:    req.Location,
		Specialties: req.Specialties,
		Instagram:   req.Instagram,
		Website:     req.Website,
		CreatedAt:   time.Now().UTC(),
	}
	h.store.SaveShop(shop)

	c.JSON(http.StatusOK, shop)
}

// List returns all shops
func (h *ShopHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"shops": h.store.Shops()})
}

// Get returns a single shop
func (h *ShopHandler) Get(c *gin.Context) {
	shop := h.store.ShopByID(c.Param("id"))
	if shop == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Shop not found"})
		return
	}

	c.JSON(http.StatusOK, shop)
}

// Update updates the caller's shop profile
func (h *ShopHandler) Update(c *gin.Context) {
	shop := h.store.ShopByID(c.Param("id"))
	if shop == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Shop not found"})
		return
	}
	if shop.OwnerID != middleware.GetUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not the shop owner"})
		return
	}

	var req ShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	shop.Name = req.Name
	shop.Location = req.Location
	shop.Specialties = req.Specialties
	shop.Instagram = req.Instagram
	shop.Website = req.Website
	h.store.SaveShop(shop)

	c.JSON(http.StatusOK, shop)
}
