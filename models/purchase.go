package models

import (
	"strings"
	"time"
)

type PurchaseStatus string

const (
	PurchaseStatusPending   PurchaseStatus = "pending"
	PurchaseStatusPaid      PurchaseStatus = "paid"
	PurchaseStatusCompleted PurchaseStatus = "completed"
	PurchaseStatusCancelled PurchaseStatus = "cancelled"
	PurchaseStatusRefunded  PurchaseStatus = "refunded"
)

// Purchase is a user's order of a service, as returned by the purchases endpoint.
type Purchase struct {
	ID        string         `json:"id"`
	UserID    string         `json:"userId"`
	ServiceID string         `json:"serviceId"`
	Status    PurchaseStatus `json:"status"`
	CreatedAt time.Time      `json:"createdAt,omitempty"`
}

// Qualifies reports whether the purchase entitles its owner to review the service.
func (p *Purchase) Qualifies() bool {
	switch PurchaseStatus(strings.ToLower(string(p.Status))) {
	case PurchaseStatusPaid, PurchaseStatusCompleted:
		return true
	default:
		return false
	}
}

// AnyQualifies reports whether at least one purchase is paid or completed.
func AnyQualifies(purchases []Purchase) bool {
	for i := range purchases {
		if purchases[i].Qualifies() {
			return true
		}
	}
	return false
}
