package catalog

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/joefazee/bosko/internal/logger"
	"github.com/joefazee/bosko/models"
)

// maxParallelReviewFetches bounds FetchProviderReviews fan-out.
const maxParallelReviewFetches = 4

// FetchCategories loads the category list. It is a no-op while a categories
// fetch is in flight. Failures are recorded on the resource, never returned.
func (s *Store) FetchCategories(ctx context.Context) {
	if !s.dispatch(categoriesRequested{}) {
		return
	}
	items, err := s.remote.GetCategories(context.WithoutCancel(ctx))
	if err != nil {
		s.logger.Error(err, logger.Fields{"resource": "categories"})
		s.dispatch(categoriesFailed{message: errorMessage(err)})
		return
	}
	s.dispatch(categoriesReceived{items: items})
}

// FetchServicesByCategory loads one category's services.
func (s *Store) FetchServicesByCategory(ctx context.Context, categoryID string) {
	if !s.dispatch(servicesRequested{categoryID: categoryID}) {
		return
	}
	items, err := s.remote.GetServicesByCategory(context.WithoutCancel(ctx), categoryID)
	if err != nil {
		s.logger.Error(err, logger.Fields{"resource": "services", "category_id": categoryID})
		s.dispatch(servicesFailed{categoryID: categoryID, message: errorMessage(err)})
		return
	}
	s.dispatch(servicesReceived{categoryID: categoryID, items: items})
}

// FetchProviderProfile loads a provider once per process. Calls made while the
// profile is loading or already loaded return the cached value without a request.
func (s *Store) FetchProviderProfile(ctx context.Context, providerID string) *models.Provider {
	if !s.dispatch(providerRequested{providerID: providerID}) {
		return s.GetProvider(providerID)
	}
	provider, err := s.remote.GetProvider(context.WithoutCancel(ctx), providerID)
	if err != nil {
		s.logger.Error(err, logger.Fields{"resource": "provider", "provider_id": providerID})
		s.dispatch(providerFailed{providerID: providerID, message: errorMessage(err)})
		return s.GetProvider(providerID)
	}
	s.dispatch(providerReceived{providerID: providerID, provider: provider})
	return s.GetProvider(providerID)
}

// FetchServiceReviews loads the reviews of one service.
func (s *Store) FetchServiceReviews(ctx context.Context, serviceID string) {
	if !s.dispatch(reviewsRequested{serviceID: serviceID}) {
		return
	}
	items, err := s.remote.GetServiceReviews(context.WithoutCancel(ctx), serviceID)
	if err != nil {
		s.logger.Error(err, logger.Fields{"resource": "reviews", "service_id": serviceID})
		s.dispatch(reviewsFailed{serviceID: serviceID, message: errorMessage(err)})
		return
	}
	s.dispatch(reviewsReceived{serviceID: serviceID, items: items})
}

// FetchProviderReviews loads reviews for every cached service of a provider so
// that GetProviderAggregate sees all of them. Services already holding
// reviews are skipped.
func (s *Store) FetchProviderReviews(ctx context.Context, providerID string) {
	st := s.Snapshot()

	var g errgroup.Group
	g.SetLimit(maxParallelReviewFetches)
	for _, svc := range st.ProviderServices(providerID) {
		if st.reviewsResource(svc.ID).Status == StatusSuccess {
			continue
		}
		serviceID := svc.ID
		g.Go(func() error {
			s.FetchServiceReviews(ctx, serviceID)
			return nil
		})
	}
	_ = g.Wait()
}
