package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItem is one heuristically parsed row of an uploaded invoice document.
// Qty, Price and Vendor are nil when the classifier found no signal for them.
// Immutable once created.
type LineItem struct {
	ID               string           `json:"id"`
	Raw              string           `json:"raw"`
	DetectedPartName string           `json:"detectedPartName"`
	Qty              *decimal.Decimal `json:"qty"`
	Price            *decimal.Decimal `json:"price"`
	Vendor           *string          `json:"vendor"`
	Confidence       float64          `json:"confidence"`
}

// Invoice is one parsed upload against a build. The file reference is
// immutable and the status only moves forward (parsed -> confirmed).
type Invoice struct {
	ID        string     `json:"id"`
	BuildID   string     `json:"buildId"`
	FileURL   string     `json:"fileUrl"`
	ParsedAt  time.Time  `json:"parsedAt"`
	LineItems []LineItem `json:"lineItems"`
	Status    string     `json:"status"` // parsed, confirmed
}

// Invoice status constants
const (
	InvoiceStatusParsed    = "parsed"
	InvoiceStatusConfirmed = "confirmed"
)
