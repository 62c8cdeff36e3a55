package catalog

import (
	"context"

	"github.com/joefazee/bosko/app/remote"
	"github.com/joefazee/bosko/models"
)

// Remote is the slice of the backend client the store reads and writes through.
type Remote interface {
	GetCategories(ctx context.Context) ([]models.Category, error)
	GetServicesByCategory(ctx context.Context, categoryID string) ([]models.Service, error)
	GetProvider(ctx context.Context, providerID string) (*models.Provider, error)
	GetServiceReviews(ctx context.Context, serviceID string) ([]models.Review, error)
	CreateReview(ctx context.Context, serviceID string, payload remote.CreateReviewPayload) (*models.Review, error)
}

// PurchaseLookup lists a user's purchases of one service.
type PurchaseLookup interface {
	GetUserPurchases(ctx context.Context, userID, serviceID string) ([]models.Purchase, error)
}

// EligibilityChecker decides whether a user may review a service.
type EligibilityChecker interface {
	Ensure(ctx context.Context, serviceID, userID string) bool
}
