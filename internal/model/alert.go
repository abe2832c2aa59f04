package model

import "time"

// Alert is a user-defined price threshold that fires a one-time notification.
// Triggered flips false→true exactly once; removal is manual only.
type Alert struct {
	ID        string    `json:"id"`
	Slug      string    `json:"slug"`
	Threshold float64   `json:"threshold"`
	Triggered bool      `json:"triggered"`
	CreatedAt time.Time `json:"created_at"`
}
