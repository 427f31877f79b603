package model

import (
	"time"
)

// VendorRef is a place a part can be bought from.
type VendorRef struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// Part is a catalog entry. Parts are created directly, by linking a product
// URL, or by confirming invoice line items.
type Part struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Brand        string            `json:"brand,omitempty"`
	Category     string            `json:"category,omitempty"`
	ImageURL     string            `json:"imageUrl,omitempty"`
	Specs        map[string]string `json:"specs,omitempty"`
	Vendors      []VendorRef       `json:"vendors,omitempty"`
	CanonicalURL string            `json:"canonicalUrl,omitempty"`
	CreatedAt    time.Time         `json:"createdAt"`
}

// BuildPart links a Part to a Build with install metadata.
type BuildPart struct {
	ID            string    `json:"id"`
	BuildID       string    `json:"buildId"`
	PartID        string    `json:"partId"`
	ShopID        string    `json:"shopId"` // installing shop
	OrderIndex    int       `json:"orderIndex"`
	Notes         string    `json:"notes,omitempty"`
	ProofImageURL string    `json:"proofImageUrl,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}
