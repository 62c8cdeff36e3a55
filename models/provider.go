package models

// Provider is the public profile of someone offering services.
type Provider struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Title     string   `json:"title"`
	Summary   string   `json:"summary"`
	Bio       string   `json:"bio"`
	Location  string   `json:"location"`
	Avatar    string   `json:"avatar"`
	HeroImage string   `json:"heroImage"`
	Tags      []string `json:"tags"`
	Rate      Rate     `json:"rate"`
	Phone     string   `json:"phone,omitempty"`
}

// ProviderAggregate is derived from cached reviews and never stored.
type ProviderAggregate struct {
	ProviderID    string  `json:"providerId"`
	AverageRating float64 `json:"averageRating"`
	TotalReviews  int     `json:"totalReviews"`
}
