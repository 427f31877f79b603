package handler

import (
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/buildboardhq/buildboard/backend/model"
	"github.com/buildboardhq/buildboard/backend/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PartHandler struct {
	store *service.Store
}

func NewPartHandler(store *service.Store) *PartHandler {
	return &PartHandler{store: store}
}

type PartRequest struct {
	Name         string            `json:"name" binding:"required"`
	Brand        string            `json:"brand"`
	Category     string            `json:"category"`
	ImageURL     string            `json:"image_url"`
	Specs        map[string]string `json:"specs"`
	Vendors      []model.VendorRef `json:"vendors"`
	CanonicalURL string            `json:"canonical_url"`
}

// Create creates a catalog part directly
func (h *PartHandler) Create(c *gin.Context) {
	var req PartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	part := &model.Part{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Brand:        req.Brand,
		Category:     req.Category,
		ImageURL:     req.ImageURL,
		Specs:        req.Specs,
		Vendors:      req.Vendors,
		CanonicalURL: req.CanonicalURL,
		CreatedAt:    time.Now().UTC(),
	}
	h.store.SavePart(part)

	c.JSON(http.StatusOK, part)
}

type LinkPartRequest struct {
	URL string `json:"url" binding:"required,url"`
}

// Link creates a part from a product URL, deriving a readable name from the
// URL path.
func (h *PartHandler) Link(c *gin.Context) {
	var req LinkPartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	u, err := url.Parse(req.URL)
	if err != nil || u.Host == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid URL"})
		return
	}

	part := &model.Part{
		ID:           uuid.New().String(),
		Name:         nameFromURL(u),
		CanonicalURL: req.URL,
		Vendors:      []model.VendorRef{{Name: u.Host, URL: req.URL}},
		CreatedAt:    time.Now().UTC(),
	}
	h.store.SavePart(part)

	c.JSON(http.StatusOK, part)
}

// List returns the part catalog
func (h *PartHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"parts": h.store.Parts()})
}

// Get returns a single part
func (h *PartHandler) Get(c *gin.Context) {
	part := h.store.PartByID(c.Param("id"))
	if part == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Part not found"})
		return
	}

	c.JSON(http.StatusOK, part)
}

// nameFromURL turns the last URL path segment into a display name,
// falling back to the host when the path is empty.
func nameFromURL(u *url.URL) string {
	segment := path.Base(strings.TrimSuffix(u.Path, "/"))
	if segment == "" || segment == "." || segment == "/" {
		return u.Host
	}
	segment = strings.TrimSuffix(segment, path.Ext(segment))
	return strings.ReplaceAll(strings.ReplaceAll(segment, "-", " "), "_", " ")
}
