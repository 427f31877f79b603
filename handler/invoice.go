package handler

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/buildboardhq/buildboard/backend/middleware"
	"github.com/buildboardhq/buildboard/backend/model"
	"github.com/buildboardhq/buildboard/backend/pkg/logger"
	"github.com/buildboardhq/buildboard/backend/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InvoiceHandler struct {
	store     *service.Store
	files     service.FileStore
	extractor service.TextExtractor
}

func NewInvoiceHandler(store *service.Store, files service.FileStore, extractor service.TextExtractor) *InvoiceHandler {
	return &InvoiceHandler{
		store:     store,
		files:     files,
		extractor: extractor,
	}
}

// Upload accepts a PDF invoice for a build, stores the file, and returns the
// parsed invoice. Extraction is best-effort: a file that yields no text still
// produces a zero-line invoice with status "parsed".
func (h *InvoiceHandler) Upload(c *gin.Context) {
	build := h.store.BuildByID(c.Param("id"))
	if build == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Build not found"})
		return
	}
	shop := h.store.ShopByID(build.ShopID)
	if shop == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Shop not found"})
		return
	}
	if shop.OwnerID != middleware.GetUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not the shop owner"})
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".pdf" {
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "Only PDF files are allowed"})
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read file"})
		return
	}

	// Object name comes from a fresh ID plus the original extension, so the
	// public URL is stable and predictable.
	invoiceID := uuid.New().String()
	objectName := "invoices/" + invoiceID + ext

	if err := h.files.Upload(c.Request.Context(), objectName, bytes.NewReader(data), int64(len(data)), "application/pdf"); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload file: " + err.Error()})
		return
	}
	fileURL := h.files.PublicURL(objectName)

	text := h.extractor.Extract(bytes.NewReader(data), int64(len(data)))

	invoice := service.NewInvoice(build.ID, fileURL, text)
	invoice.ID = invoiceID
	h.store.SaveInvoice(invoice)

	logger.Info(c.Request.Context(), "invoice parsed",
		"invoice_id", invoice.ID,
		"build_id", build.ID,
		"line_items", len(invoice.LineItems),
	)

	c.JSON(http.StatusOK, invoice)
}

type ConfirmRequest struct {
	LineItemIDs []string `json:"line_item_ids"`
}

// Confirm promotes selected line items into Part/BuildPart records and flips
// the invoice status to confirmed.
func (h *InvoiceHandler) Confirm(c *gin.Context) {
	var req ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	partIDs, err := service.ConfirmInvoice(h.store, c.Param("id"), middleware.GetUserID(c), req.LineItemIDs)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Not the shop owner"})
		case errors.Is(err, service.ErrInvoiceNotFound),
			errors.Is(err, service.ErrBuildNotFound),
			errors.Is(err, service.ErrShopNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to confirm invoice"})
		}
		return
	}

	logger.Info(c.Request.Context(), "invoice confirmed",
		"invoice_id", c.Param("id"),
		"parts_created", len(partIDs),
	)

	c.JSON(http.StatusOK, gin.H{"part_ids": partIDs})
}

// Get returns a single invoice with full line-item detail. Owner only.
func (h *InvoiceHandler) Get(c *gin.Context) {
	invoice := h.store.InvoiceByID(c.Param("id"))
	if invoice == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		return
	}

	build := h.store.BuildByID(invoice.BuildID)
	shop := (*model.Shop)(nil)
	if build != nil {
		shop = h.store.ShopByID(build.ShopID)
	}
	if shop == nil || shop.OwnerID != middleware.GetUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not the shop owner"})
		return
	}

	c.JSON(http.StatusOK, invoice)
}
