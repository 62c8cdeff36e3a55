package catalog

import (
	"github.com/joefazee/bosko/internal/formatter"
	"github.com/joefazee/bosko/models"
)

// ReviewInput is what a caller submits to AddReviewWithRating.
type ReviewInput struct {
	ServiceID string `json:"serviceId" validate:"required"`
	UserID    string `json:"userId" validate:"required"`
	UserName  string `json:"userName" validate:"max=120"`
	Rating    int    `json:"rating" validate:"min=1,max=5"`
	Comment   string `json:"comment" validate:"max=1000"`
}

// CreateReviewRequest is the body of POST /services/:id/reviews. The author
// comes from the access token.
type CreateReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type EligibilityResponse struct {
	ServiceID string `json:"serviceId"`
	UserID    string `json:"userId"`
	Eligible  bool   `json:"eligible"`
}

// ProviderResponse is a provider profile with display-ready extras.
type ProviderResponse struct {
	models.Provider
	RateLabel    string `json:"rateLabel"`
	ContactPhone string `json:"contactPhone,omitempty"`
}

// ServiceResponse is a service with its rate rendered for display.
type ServiceResponse struct {
	models.Service
	RateLabel string `json:"rateLabel"`
}

func ToProviderResponse(p *models.Provider, phoneRegion string) *ProviderResponse {
	if p == nil {
		return nil
	}
	return &ProviderResponse{
		Provider:     *p,
		RateLabel:    p.Rate.String(),
		ContactPhone: formatter.ContactPhone(p.Phone, phoneRegion),
	}
}

func ToServiceResponse(svc models.Service) ServiceResponse {
	return ServiceResponse{Service: svc, RateLabel: svc.Rate.String()}
}

func ToServiceResponseList(services []models.Service) []ServiceResponse {
	out := make([]ServiceResponse, len(services))
	for i := range services {
		out[i] = ToServiceResponse(services[i])
	}
	return out
}
