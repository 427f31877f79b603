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

type BuildHandler struct {
	store *service.Store
}

func NewBuildHandler(store *service.Store) *BuildHandler {
	return &BuildHandler{store: store}
}

type BuildRequest struct {
	Title      string        `json:"title" binding:"required"`
	Vehicle    model.Vehicle `json:"vehicle" binding:"required"`
	Status     string        `json:"status"`
	Visibility string        `json:"visibility"`
	Gallery    []string      `json:"gallery"`
	Tags       []string      `json:"tags"`
}

func (r *BuildRequest) validate() string {
	switch r.Status {
	case "", model.BuildStatusInProgress, model.BuildStatusComplete:
	default:
		return "status must be 'in-progress' or 'complete'"
	}
	switch r.Visibility {
	case "", model.VisibilityPublic, model.VisibilityUnlisted:
	default:
		return "visibility must be 'public' or 'unlisted'"
	}
	return ""
}

// Create creates a build under the caller's shop
func (h *BuildHandler) Create(c *gin.Context) {
	shop := h.store.ShopByID(c.Param("id"))
	if shop == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Shop not found"})
		return
	}
	if shop.OwnerID != middleware.GetUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not the shop owner"})
		return
	}

	var req BuildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	build := &model.Build{
		ID:         uuid.New().String(),
		ShopID:     shop.ID,
		Title:      req.Title,
		Vehicle:    req.Vehicle,
		Status:     req.Status,
		Visibility: req.Visibility,
		Gallery:    req.Gallery,
		Tags:       req.Tags,
		CreatedAt:  time.Now().UTC(),
	}
	if build.Status == "" {
		build.Status = model.BuildStatusInProgress
	}
	if build.Visibility == "" {
		build.Visibility = model.VisibilityPublic
	}
	h.store.SaveBuild(build)

	c.JSON(http.StatusOK, build)
}

// List returns all public builds
func (h *BuildHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"builds": h.store.PublicBuilds()})
}

// ListByShop returns a shop's builds
func (h *BuildHandler) ListByShop(c *gin.Context) {
	shop := h.store.ShopByID(c.Param("id"))
	if shop == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Shop not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"builds": h.store.BuildsByShop(shop.ID)})
}

// Get returns a single build. Unlisted builds stay reachable by direct ID.
func (h *BuildHandler) Get(c *gin.Context) {
	build := h.store.BuildByID(c.Param("id"))
	if build == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Build not found"})
		return
	}

	c.JSON(http.StatusOK, build)
}

// Update updates a build owned by the caller's shop
func (h *BuildHandler) Update(c *gin.Context) {
	build, shop, ok := h.ownedBuild(c)
	if !ok {
		return
	}

	var req BuildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	build.Title = req.Title
	build.Vehicle = req.Vehicle
	if req.Status != "" {
		build.Status = req.Status
	}
	if req.Visibility != "" {
		build.Visibility = req.Visibility
	}
	build.Gallery = req.Gallery
	build.Tags = req.Tags
	build.ShopID = shop.ID
	h.store.SaveBuild(build)

	c.JSON(http.StatusOK, build)
}

type AttachPartRequest struct {
	PartID        string `json:"part_id" binding:"required"`
	OrderIndex    int    `json:"order_index"`
	Notes         string `json:"notes"`
	ProofImageURL string `json:"proof_image_url"`
}

// AttachPart links an existing catalog part to a build
func (h *BuildHandler) AttachPart(c *gin.Context) {
	build, shop, ok := h.ownedBuild(c)
	if !ok {
		return
	}

	var req AttachPartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if h.store.PartByID(req.PartID) == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Part not found"})
		return
	}

	bp := &model.BuildPart{
		ID:            uuid.New().String(),
		BuildID:       build.ID,
		PartID:        req.PartID,
		ShopID:        shop.ID,
		OrderIndex:    req.OrderIndex,
		Notes:         req.Notes,
		ProofImageURL: req.ProofImageURL,
		CreatedAt:     time.Now().UTC(),
	}
	h.store.SaveBuildPart(bp)

	c.JSON(http.StatusOK, bp)
}

// ListParts returns a build's linked parts ordered by install index
func (h *BuildHandler) ListParts(c *gin.Context) {
	build := h.store.BuildByID(c.Param("id"))
	if build == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Build not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"parts": h.store.BuildPartsByBuild(build.ID)})
}

// ownedBuild resolves the :id build and checks the caller owns its shop,
// writing the error response itself when the check fails.
func (h *BuildHandler) ownedBuild(c *gin.Context) (*model.Build, *model.Shop, bool) {
	build := h.store.BuildByID(c.Param("id"))
	if build == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Build not found"})
		return nil, nil, false
	}
	shop := h.store.ShopByID(build.ShopID)
	if shop == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Shop not found"})
		return nil, nil, false
	}
	if shop.OwnerID != middleware.GetUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not the shop owner"})
		return nil, nil, false
	}
	return build, shop, true
}
