package catalog

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/joefazee/bosko/app/remote"
	"github.com/joefazee/bosko/models"
)

type MockRemote struct {
	mock.Mock
}

func (m *MockRemote) GetCategories(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockRemote) GetServicesByCategory(ctx context.Context, categoryID string) ([]models.Service, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Service), args.Error(1)
}

func (m *MockRemote) GetProvider(ctx context.Context, providerID string) (*models.Provider, error) {
	args := m.Called(ctx, providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Provider), args.Error(1)
}

func (m *MockRemote) GetServiceReviews(ctx context.Context, serviceID string) ([]models.Review, error) {
	args := m.Called(ctx, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *MockRemote) CreateReview(ctx context.Context, serviceID string, payload remote.CreateReviewPayload) (*models.Review, error) {
	args := m.Called(ctx, serviceID, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

type MockPurchases struct {
	mock.Mock
}

func (m *MockPurchases) GetUserPurchases(ctx context.Context, userID, serviceID string) ([]models.Purchase, error) {
	args := m.Called(ctx, userID, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Purchase), args.Error(1)
}

type stubEligibility map[string]bool

func (s stubEligibility) Ensure(_ context.Context, serviceID, userID string) bool {
	return s[userID+":"+serviceID]
}
