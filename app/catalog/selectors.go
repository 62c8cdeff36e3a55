package catalog

import "github.com/joefazee/bosko/models"

func (s *Store) GetCategories() Resource[[]models.Category] {
	return s.Snapshot().Categories
}

func (s *Store) GetServicesResource(categoryID string) Resource[[]models.Service] {
	return s.Snapshot().servicesResource(categoryID)
}

func (s *Store) GetServicesForCategory(categoryID string) []models.Service {
	return s.Snapshot().ServicesForCategory(categoryID)
}

func (s *Store) GetServicesStatus(categoryID string) Status {
	return s.Snapshot().servicesResource(categoryID).Status
}

func (s *Store) GetServiceByID(serviceID string) (models.Service, bool) {
	return s.Snapshot().ServiceByID(serviceID)
}

func (s *Store) GetProviderResource(providerID string) Resource[*models.Provider] {
	st := s.Snapshot()
	r := st.providerResource(providerID)
	r.Data = st.Provider(providerID)
	return r
}

// GetProvider returns the cached profile, or nil when it was never loaded.
func (s *Store) GetProvider(providerID string) *models.Provider {
	return s.Snapshot().Provider(providerID)
}

func (s *Store) GetProviderStatus(providerID string) Status {
	return s.Snapshot().providerResource(providerID).Status
}

func (s *Store) GetReviewsResource(serviceID string) Resource[[]models.Review] {
	st := s.Snapshot()
	r := st.reviewsResource(serviceID)
	r.Data = st.ReviewsForService(serviceID)
	return r
}

func (s *Store) GetReviewsForService(serviceID string) []models.Review {
	return s.Snapshot().ReviewsForService(serviceID)
}

func (s *Store) GetReviewStatus(serviceID string) Status {
	return s.Snapshot().reviewsResource(serviceID).Status
}

// GetProviderAggregate recomputes the provider's rating from the cached reviews.
func (s *Store) GetProviderAggregate(providerID string) models.ProviderAggregate {
	return Aggregate(s.Snapshot(), providerID)
}
