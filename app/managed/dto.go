package managed

import (
	"github.com/joefazee/bosko/models"
)

// ManagedServiceResponse is a managed service with its price rendered for display.
type ManagedServiceResponse struct {
	models.ManagedService
	PriceLabel string `json:"priceLabel"`
}

// PlanUsage tells the caller how much of their quota is used.
type PlanUsage struct {
	Tier  models.PlanTier `json:"tier"`
	Used  int             `json:"used"`
	Limit int             `json:"limit"`
}

func ToManagedServiceResponse(s models.ManagedService) ManagedServiceResponse {
	return ManagedServiceResponse{ManagedService: s, PriceLabel: s.Price.StringFixed(2)}
}

func ToManagedServiceResponseList(services []models.ManagedService) []ManagedServiceResponse {
	out := make([]ManagedServiceResponse, len(services))
	for i := range services {
		out[i] = ToManagedServiceResponse(services[i])
	}
	return out
}
