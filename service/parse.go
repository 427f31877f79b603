package service

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/buildboardhq/buildboard/backend/model"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// maxInvoiceLines caps how many non-blank lines of a document get
	// classified; later lines are silently dropped.
	maxInvoiceLines = 50

	// partNameMaxLen is the detected part name truncation length, applied
	// without word-boundary awareness.
	partNameMaxLen = 80

	// lineConfidence is assigned to every classified line. No signal
	// modulates it yet.
	lineConfidence = 0.5
)

var (
	// Monetary amounts: optional $, digits, a decimal point, two digits.
	priceRe = regexp.MustCompile(`\$?\d+\.\d{2}`)

	// Quantity markers: "x 2" / "qty 2" anywhere, or a leading count.
	qtyMarkerRe  = regexp.MustCompile(`(?i)(?:x|qty)\s+(\d+(?:\.\d+)?)`)
	qtyLeadingRe = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s+`)
)

// ClassifyLine turns one trimmed, non-empty line of extracted invoice text
// into a structured guess. It never fails; fields with no signal stay nil.
func ClassifyLine(raw string) model.LineItem {
	item := model.LineItem{
		ID:               uuid.New().String(),
		Raw:              raw,
		DetectedPartName: truncate(raw, partNameMaxLen),
		Confidence:       lineConfidence,
	}

	// Price: the last amount on the line. Totals and unit prices typically
	// trail the item description.
	if matches := priceRe.FindAllString(raw, -1); len(matches) > 0 {
		last := strings.TrimPrefix(matches[len(matches)-1], "$")
		if price, err := decimal.NewFromString(last); err == nil {
			item.Price = &price
		}
	}

	// Quantity: an explicit marker wins over a leading count.
	if m := qtyMarkerRe.FindStringSubmatch(raw); m != nil {
		if qty, err := decimal.NewFromString(m[1]); err == nil {
			item.Qty = &qty
		}
	} else if m := qtyLeadingRe.FindStringSubmatch(raw); m != nil {
		if qty, err := decimal.NewFromString(m[1]); err == nil {
			item.Qty = &qty
		}
	}

	// Vendor guess: a fully alphabetic first token reads like a brand name.
	if fields := strings.Fields(raw); len(fields) > 0 && isAlpha(fields[0]) {
		vendor := fields[0]
		item.Vendor = &vendor
	}

	return item
}

// ParseInvoiceText splits extracted text into lines, discards blank ones and
// classifies at most the first maxInvoiceLines in original order.
func ParseInvoiceText(text string) []model.LineItem {
	items := make([]model.LineItem, 0)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(items) >= maxInvoiceLines {
			break
		}
		items = append(items, ClassifyLine(line))
	}
	return items
}

// NewInvoice runs the classifier over one extraction pass and bundles the
// result. Empty text produces a zero-line invoice, not an error.
func NewInvoice(buildID, fileURL, text string) *model.Invoice {
	return &model.Invoice{
		ID:        uuid.New().String(),
		BuildID:   buildID,
		FileURL:   fileURL,
		ParsedAt:  time.Now().UTC(),
		LineItems: ParseInvoiceText(text),
		Status:    model.InvoiceStatusParsed,
	}
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return s != ""
}
