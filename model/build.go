package model

import (
	"time"
)

// Vehicle describes the car a build is based on.
type Vehicle struct {
	Year  int    `json:"year"`
	Make  string `json:"make"`
	Model string `json:"model"`
	Trim  string `json:"trim,omitempty"`
}

// Build is a documented vehicle modification project, the central showcase
// entity. It is owned by the shop that created it.
type Build struct {
	ID         string    `json:"id"`
	ShopID     string    `json:"shopId"`
	Title      string    `json:"title"`
	Vehicle    Vehicle   `json:"vehicle"`
	Status     string    `json:"status"`     // in-progress, complete
	Visibility string    `json:"visibility"` // public, unlisted
	Gallery    []string  `json:"gallery,omitempty"`
	Tags       []string  `json:"tags,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Build status constants
const (
	BuildStatusInProgress = "in-progress"
	BuildStatusComplete   = "complete"
)

// Build visibility constants
const (
	VisibilityPublic   = "public"
	VisibilityUnlisted = "unlisted"
)
