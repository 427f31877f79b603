package model

import (
	"time"
)

// Marketing-site capture records. These predate the Buildboard entities and
// keep the original snake_case wire format the landing pages already send.

// StatusCheck is a client-reported health ping.
type StatusCheck struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}

// WaitlistEntry is a landing-page signup.
type WaitlistEntry struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	SourceURL   string    `json:"source_url,omitempty"`
	UTMSource   string    `json:"utm_source,omitempty"`
	UTMCampaign string    `json:"utm_campaign,omitempty"`
	UTMMedium   string    `json:"utm_medium,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Referral is a "refer a shop or builder" submission.
type Referral struct {
	ID              string    `json:"id"`
	ReferrerName    string    `json:"referrer_name"`
	ReferrerEmail   string    `json:"referrer_email"`
	ReferralType    string    `json:"referral_type"` // Shop or Builder
	ReferralName    string    `json:"referral_name"`
	ReferralContact string    `json:"referral_contact,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	SourceURL       string    `json:"source_url,omitempty"`
	UTMSource       string    `json:"utm_source,omitempty"`
	UTMCampaign     string    `json:"utm_campaign,omitempty"`
	UTMMedium       string    `json:"utm_medium,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// Referral type constants
const (
	ReferralTypeShop    = "Shop"
	ReferralTypeBuilder = "Builder"
)
