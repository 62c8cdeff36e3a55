package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Rate is the price a provider charges per unit of work.
type Rate struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	Unit     string          `json:"unit"`
}

// String renders the rate the way listings show it, e.g. "MXN 250.00/hora".
func (r Rate) String() string {
	s := fmt.Sprintf("%s %s", strings.ToUpper(r.Currency), r.Amount.StringFixed(2))
	if r.Unit != "" {
		s += "/" + r.Unit
	}
	return strings.TrimSpace(s)
}

// Service is a browsable listing published by a provider.
//
// Rating and ReviewsCount are display hints computed by the list endpoint.
// They are never used for aggregation; see ProviderAggregate.
type Service struct {
	ID           string   `json:"id"`
	CategoryID   string   `json:"categoryId"`
	ProviderID   string   `json:"providerId"`
	ProviderName string   `json:"providerName"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Rate         Rate     `json:"rate"`
	Location     string   `json:"location"`
	Thumbnail    string   `json:"thumbnail"`
	Rating       *float64 `json:"rating,omitempty"`
	ReviewsCount *int     `json:"reviewsCount,omitempty"`
}
