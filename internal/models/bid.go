package models

import (
	"time"
)

// Bid represents a freelancer's offer on an open project. Quick bids come
// from the abbreviated submission flow; the flag carries no other behavior.
type Bid struct {
	ID           string    `json:"id"`
	FreelancerID string    `json:"freelancer_id"`
	ProjectID    string    `json:"project_id"`
	Message      string    `json:"message"`
	Amount       float64   `json:"amount"`
	IsQuickBid   bool      `json:"is_quick_bid"`
	SubmittedAt  time.Time `json:"submitted_at"`
}
