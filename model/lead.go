package model

import (
	"time"
)

// Lead is an inbound customer inquiry for a shop, optionally tied to the
// build that prompted it.
type Lead struct {
	ID        string    `json:"id"`
	ShopID    string    `json:"shopId"`
	BuildID   string    `json:"buildId,omitempty"`
	Name      string    `json:"name"`
	Contact   string    `json:"contact"`
	Message   string    `json:"message,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
