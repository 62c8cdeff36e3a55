package managed

import (
	"context"

	"github.com/joefazee/bosko/models"
)

// Remote is the managed-services CRUD surface of the backend, already bound
// to the caller's credentials.
type Remote interface {
	GetMyServices(ctx context.Context) ([]models.ManagedService, error)
	CreateService(ctx context.Context, input *models.ManagedServiceInput) (*models.ManagedService, error)
	UpdateService(ctx context.Context, id string, input *models.ManagedServiceInput) (*models.ManagedService, error)
	DeleteService(ctx context.Context, id string) error
}

// RemoteFactory binds a Remote to an access token.
type RemoteFactory func(accessToken string) Remote
