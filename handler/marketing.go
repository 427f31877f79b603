package handler

import (
	"net/http"
	"time"

	"github.com/buildboardhq/buildboard/backend/model"
	"github.com/buildboardhq/buildboard/backend/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MarketingHandler serves the landing-page capture endpoints. These keep the
// wire format of the original marketing API: snake_case fields and 24-char
// ObjectID hex ids, which the deployed landing pages already depend on.
type MarketingHandler struct {
	store *service.Store
}

func NewMarketingHandler(store *service.Store) *MarketingHandler {
	return &MarketingHandler{store: store}
}

// Root is the API hello endpoint
func (h *MarketingHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello World"})
}

type StatusCheckRequest struct {
	ClientName string `json:"client_name" binding:"required"`
}

// CreateStatus records a client health ping
func (h *MarketingHandler) CreateStatus(c *gin.Context) {
	var req StatusCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "client_name is required"})
		return
	}

	sc := &model.StatusCheck{
		ID:         uuid.New().String(),
		ClientName: req.ClientName,
		Timestamp:  time.Now().UTC(),
	}
	h.store.SaveStatusCheck(sc)

	c.JSON(http.StatusOK, sc)
}

// ListStatus returns recorded status checks
func (h *MarketingHandler) ListStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.StatusChecks(1000))
}

type WaitlistRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Role        string `json:"role" binding:"required"`
	SourceURL   string `json:"source_url"`
	UTMSource   string `json:"utm_source"`
	UTMCampaign string `json:"utm_campaign"`
	UTMMedium   string `json:"utm_medium"`
}

// CreateWaitlist records a landing-page signup
func (h *MarketingHandler) CreateWaitlist(c *gin.Context) {
	var req WaitlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid waitlist entry"})
		return
	}

	entry := &model.WaitlistEntry{
		ID:          primitive.NewObjectID().Hex(),
		Name:        req.Name,
		Email:       req.Email,
		Role:        req.Role,
		SourceURL:   req.SourceURL,
		UTMSource:   req.UTMSource,
		UTMCampaign: req.UTMCampaign,
		UTMMedium:   req.UTMMedium,
		CreatedAt:   time.Now().UTC(),
	}
	h.store.SaveWaitlistEntry(entry)

	c.JSON(http.StatusOK, entry)
}

type ReferralRequest struct {
	ReferrerName    string `json:"referrer_name" binding:"required"`
	ReferrerEmail   string `json:"referrer_email" binding:"required,email"`
	ReferralType    string `json:"referral_type" binding:"required"`
	ReferralName    string `json:"referral_name" binding:"required"`
	ReferralContact string `json:"referral_contact"`
	Notes           string `json:"notes"`
	SourceURL       string `json:"source_url"`
	UTMSource       string `json:"utm_source"`
	UTMCampaign     string `json:"utm_campaign"`
	UTMMedium       string `json:"utm_medium"`
}

// CreateReferral records a shop/builder referral
func (h *MarketingHandler) CreateReferral(c *gin.Context) {
	var req ReferralRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid referral"})
		return
	}

	if req.ReferralType != model.ReferralTypeShop && req.ReferralType != model.ReferralTypeBuilder {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "referral_type must be 'Shop' or 'Builder'"})
		return
	}

	referral := &model.Referral{
		ID:              primitive.NewObjectID().Hex(),
		ReferrerName:    req.ReferrerName,
		ReferrerEmail:   req.ReferrerEmail,
		ReferralType:    req.ReferralType,
		ReferralName:    req.ReferralName,
		ReferralContact: req.ReferralContact,
		Notes:           req.Notes,
		SourceURL:       req.SourceURL,
		UTMSource:       req.UTMSource,
		UTMCampaign:     req.UTMCampaign,
		UTMMedium:       req.UTMMedium,
		CreatedAt:       time.Now().UTC(),
	}
	h.store.SaveReferral(referral)

	c.JSON(http.StatusOK, referral)
}
