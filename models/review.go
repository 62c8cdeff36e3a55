package models

import (
	"strings"
	"time"
)

const (
	MinRating = 1
	MaxRating = 5

	// TempReviewIDPrefix marks ids synthesized on the client for optimistic inserts.
	TempReviewIDPrefix = "tmp-"
)

// Review is a rating left by a purchaser of a service.
type Review struct {
	ID         string    `json:"id"`
	ServiceID  string    `json:"serviceId"`
	UserID     string    `json:"userId"`
	UserName   string    `json:"userName"`
	Comment    string    `json:"comment"`
	Rating     int       `json:"rating"`
	CreatedAt  time.Time `json:"createdAt"`
	Optimistic bool      `json:"optimistic,omitempty"`
}

// IsTemporary reports whether the review still carries a client-side id.
func (r *Review) IsTemporary() bool {
	return strings.HasPrefix(r.ID, TempReviewIDPrefix)
}
