package service

import (
	"errors"
	"time"

	"github.com/buildboardhq/buildboard/backend/model"
	"github.com/google/uuid"
)

// Sentinel errors for the invoice pipeline. Handlers map these to HTTP
// status codes.
var (
	ErrInvoiceNotFound = errors.New("invoice not found")
	ErrBuildNotFound   = errors.New("build not found")
	ErrShopNotFound    = errors.New("shop not found")
	ErrForbidden       = errors.New("caller does not own this shop")
)

// ConfirmInvoice materializes operator-selected line items into durable
// catalog data: one Part plus one BuildPart per selected line item, in
// original line order, attributed to the build's owning shop.
//
// Requested IDs not present in the invoice are silently ignored. The status
// flip to confirmed is unconditional, even when zero items matched. Confirm
// is NOT idempotent: repeating a call re-creates Part/BuildPart pairs for
// the same line items. See TestConfirmTwiceDuplicatesParts.
//
// All existence and ownership checks happen before any mutation.
func ConfirmInvoice(store *Store, invoiceID, callerID string, lineItemIDs []string) ([]string, error) {
	inv := store.InvoiceByID(invoiceID)
	if inv == nil {
		return nil, ErrInvoiceNotFound
	}
	build := store.BuildByID(inv.BuildID)
	if build == nil {
		return nil, ErrBuildNotFound
	}
	shop := store.ShopByID(build.ShopID)
	if shop == nil {
		return nil, ErrShopNotFound
	}
	if shop.OwnerID != callerID {
		return nil, ErrForbidden
	}

	requested := make(map[string]bool, len(lineItemIDs))
	for _, id := range lineItemIDs {
		requested[id] = true
	}

	now := time.Now().UTC()
	orderIndex := len(store.BuildPartsByBuild(build.ID))

	partIDs := make([]string, 0, len(lineItemIDs))
	for _, item := range inv.LineItems {
		if !requested[item.ID] {
			continue
		}

		name := item.DetectedPartName
		if name == "" {
			name = item.Raw
		}
		brand := ""
		if item.Vendor != nil {
			brand = *item.Vendor
		}

		part := &model.Part{
			ID:        uuid.New().String(),
			Name:      name,
			Brand:     brand,
			Specs:     map[string]string{"note": item.Raw},
			CreatedAt: now,
		}
		store.SavePart(part)

		store.SaveBuildPart(&model.BuildPart{
			ID:         uuid.New().String(),
			BuildID:    build.ID,
			PartID:     part.ID,
			ShopID:     shop.ID,
			OrderIndex: orderIndex,
			CreatedAt:  now,
		})
		orderIndex++

		partIDs = append(partIDs, part.ID)
	}

	store.SetInvoiceStatus(inv.ID, model.InvoiceStatusConfirmed)

	return partIDs, nil
}
