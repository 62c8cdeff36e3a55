package managed

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/joefazee/bosko/models"
)

type MockRemote struct {
	mock.Mock
}

func (m *MockRemote) GetMyServices(ctx context.Context) ([]models.ManagedService, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ManagedService), args.Error(1)
}

func (m *MockRemote) CreateService(ctx context.Context, input *models.ManagedServiceInput) (*models.ManagedService, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ManagedService), args.Error(1)
}

func (m *MockRemote) UpdateService(ctx context.Context, id string, input *models.ManagedServiceInput) (*models.ManagedService, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ManagedService), args.Error(1)
}

func (m *MockRemote) DeleteService(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
