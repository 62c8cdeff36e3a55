package managed

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/joefazee/bosko/internal/logger"
	"github.com/joefazee/bosko/internal/sanitizer"
	"github.com/joefazee/bosko/internal/validator"
	"github.com/joefazee/bosko/models"
)

const maxTitleLength = 120

// Workflow manages the services one user publishes. Every operation calls the
// backend first and only touches the local list after it succeeds.
type Workflow struct {
	mu       sync.Mutex
	remote   Remote
	plan     models.PlanInfo
	services []models.ManagedService
	loaded   bool

	sanitizer sanitizer.HTMLStripperer
	logger    logger.Logger
}

func NewWorkflow(remote Remote, plan models.PlanInfo, stripper sanitizer.HTMLStripperer, log logger.Logger) *Workflow {
	if stripper == nil {
		stripper = sanitizer.NewHTMLStripper()
	}
	if log == nil {
		log = logger.NewNullLogger()
	}
	return &Workflow{remote: remote, plan: plan, sanitizer: stripper, logger: log}
}

// SetPlan updates the tier after the caller's token changed.
func (w *Workflow) SetPlan(plan models.PlanInfo) {
	w.mu.Lock()
	w.plan = plan
	w.mu.Unlock()
}

func (w *Workflow) setRemote(r Remote) {
	w.mu.Lock()
	w.remote = r
	w.mu.Unlock()
}

// Services returns a copy of the local list.
func (w *Workflow) Services() []models.ManagedService {
	w.mu.Lock()
	defer w.mu.Unlock()
	return slices.Clone(w.services)
}

// Loaded reports whether LoadMyServices has succeeded at least once.
func (w *Workflow) Loaded() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.loaded
}

// LoadMyServices replaces the local list with the backend's.
func (w *Workflow) LoadMyServices(ctx context.Context) ([]models.ManagedService, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	items, err := w.remote.GetMyServices(context.WithoutCancel(ctx))
	if err != nil {
		w.logger.Error(err, logger.Fields{"operation": "load_my_services"})
		return nil, err
	}
	w.services = slices.Clone(items)
	w.loaded = true
	return slices.Clone(items), nil
}

// AddService publishes a new service. FREE users are refused once they have
// one service, before any request is made.
func (w *Workflow) AddService(ctx context.Context, input *models.ManagedServiceInput) (*models.ManagedService, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.plan.CanPublish(len(w.services)) {
		return nil, models.NewCodedError(models.CodePlanLimitReached,
			fmt.Sprintf("%s plan allows %d service(s)", w.plan.Tier, w.plan.ServiceLimit()), nil)
	}
	clean, err := w.prepare(input, true)
	if err != nil {
		return nil, err
	}

	created, err := w.remote.CreateService(context.WithoutCancel(ctx), clean)
	if err != nil {
		w.logger.Error(err, logger.Fields{"operation": "add_service"})
		return nil, err
	}
	w.services = append(slices.Clone(w.services), *created)
	w.logger.Info("managed service created", logger.Fields{"service_id": created.ID})
	return created, nil
}

// EditService applies a partial update to one of the user's services.
func (w *Workflow) EditService(ctx context.Context, id string, input *models.ManagedServiceInput) (*models.ManagedService, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	i := w.indexOf(id)
	if i < 0 && w.loaded {
		return nil, models.ErrRecordNotFound
	}
	clean, err := w.prepare(input, false)
	if err != nil {
		return nil, err
	}

	updated, err := w.remote.UpdateService(context.WithoutCancel(ctx), id, clean)
	if err != nil {
		w.logger.Error(err, logger.Fields{"operation": "edit_service", "service_id": id})
		return nil, err
	}

	next := slices.Clone(w.services)
	if i >= 0 {
		next[i] = *updated
	} else {
		next = append(next, *updated)
	}
	w.services = next
	return updated, nil
}

// RemoveService deletes one of the user's services.
func (w *Workflow) RemoveService(ctx context.Context, id string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.indexOf(id) < 0 && w.loaded {
		return models.ErrRecordNotFound
	}
	if err := w.remote.DeleteService(context.WithoutCancel(ctx), id); err != nil {
		w.logger.Error(err, logger.Fields{"operation": "remove_service", "service_id": id})
		return err
	}
	if i := w.indexOf(id); i >= 0 {
		w.services = slices.Delete(slices.Clone(w.services), i, i+1)
	}
	return nil
}

func (w *Workflow) indexOf(id string) int {
	return slices.IndexFunc(w.services, func(s models.ManagedService) bool { return s.ID == id })
}

// prepare validates input and returns a sanitized copy. Title is required on
// create and, when present, must not be blank on update.
func (w *Workflow) prepare(input *models.ManagedServiceInput, creating bool) (*models.ManagedServiceInput, error) {
	if input == nil {
		return nil, models.NewValidationError("invalid service", map[string]string{"title": "is required"})
	}
	clean := *input
	v := validator.New()

	if clean.Title != nil || creating {
		title := ""
		if clean.Title != nil {
			title = strings.TrimSpace(w.sanitizer.StripHTML(*clean.Title))
		}
		v.Check(validator.NotBlank(title), "title", models.ErrInvalidServiceTitle.Error())
		v.Check(validator.MaxRunes(title, maxTitleLength), "title", "must be at most 120 characters")
		clean.Title = &title
	}
	if clean.Price != nil {
		v.Check(!clean.Price.IsNegative(), "price", models.ErrNegativePrice.Error())
	}
	if clean.Description != nil {
		desc := w.sanitizer.StripHTML(*clean.Description)
		clean.Description = &desc
	}
	if clean.Image != nil && *clean.Image != "" {
		v.Check(validator.IsURL(*clean.Image), "image", "must be a valid URL")
	}

	if !v.Valid() {
		return nil, models.NewValidationError("invalid service", v.Errors)
	}
	return &clean, nil
}
