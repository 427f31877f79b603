package model

import (
	"time"
)

// User is a registered account. Builders and shop owners share the same
// account type; owning a Shop is what grants shop-level permissions.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
