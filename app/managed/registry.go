package managed

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/joefazee/bosko/internal/cache"
	"github.com/joefazee/bosko/internal/logger"
	"github.com/joefazee/bosko/internal/sanitizer"
	"github.com/joefazee/bosko/models"
)

// DefaultIdleTTL is how long a user's workflow survives without requests.
const DefaultIdleTTL = 30 * time.Minute

// Registry keeps one Workflow per user so the local list survives between
// requests. A workflow unused for idleTTL is evicted; the next request for
// that user starts from an unloaded list.
type Registry struct {
	mu        sync.Mutex
	workflows *cache.MemoryCache[*Workflow]
	idleTTL   time.Duration
	factory   RemoteFactory
	sanitizer sanitizer.HTMLStripperer
	logger    logger.Logger
}

func NewRegistry(factory RemoteFactory, idleTTL time.Duration, stripper sanitizer.HTMLStripperer, log logger.Logger) *Registry {
	if log == nil {
		log = logger.NewNullLogger()
	}
	if idleTTL <= 0 {
		idleTTL = DefaultIdleTTL
	}
	return &Registry{
		workflows: cache.NewMemoryCache[*Workflow](),
		idleTTL:   idleTTL,
		factory:   factory,
		sanitizer: stripper,
		logger:    log,
	}
}

// For returns the user's workflow, rebinding it to the latest token and plan
// and extending its idle deadline.
func (r *Registry) For(user models.CurrentUser, accessToken string) *Workflow {
	ctx := context.Background()
	remote := r.factory(accessToken)

	r.mu.Lock()
	defer r.mu.Unlock()

	w, err := r.workflows.Get(ctx, user.ID)
	switch {
	case err == nil:
		w.setRemote(remote)
		w.SetPlan(user.Plan)
	case errors.Is(err, cache.ErrCacheMiss):
		w = NewWorkflow(remote, user.Plan, r.sanitizer, r.logger)
	default:
		r.logger.Warn("managed registry read failed", logger.Fields{"user_id": user.ID, "error": err.Error()})
		w = NewWorkflow(remote, user.Plan, r.sanitizer, r.logger)
	}
	_ = r.workflows.Set(ctx, user.ID, w, r.idleTTL)
	return w
}

// Forget drops the user's workflow.
func (r *Registry) Forget(userID string) {
	r.mu.Lock()
	_ = r.workflows.Delete(context.Background(), userID)
	r.mu.Unlock()
}

// Len returns the number of live workflows.
func (r *Registry) Len() int {
	return r.workflows.Len()
}

// Close stops the eviction janitor.
func (r *Registry) Close() error {
	return r.workflows.Close()
}
