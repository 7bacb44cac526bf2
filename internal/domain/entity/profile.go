package entity

import "time"

// Profile holds per-owner preferences that outlive a browser session.
type Profile struct {
	UserID              string    `json:"user_id"`
	OnboardingCompleted bool      `json:"onboarding_completed"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}
