package catalog

import (
	"slices"
	"strings"

	"github.com/joefazee/bosko/models"
)

// State is the whole cache. Values handed out by the store are never mutated
// afterwards: the reducer clones every map and slice it changes.
type State struct {
	Categories         Resource[[]models.Category]
	ServicesByCategory map[string]Resource[[]models.Service]
	ServiceIndex       map[string]models.Service
	Providers          map[string]Resource[*models.Provider]
	ReviewsByService   map[string]Resource[[]models.Review]
}

func NewState() State {
	return State{
		Categories:         idle[[]models.Category](),
		ServicesByCategory: map[string]Resource[[]models.Service]{},
		ServiceIndex:       map[string]models.Service{},
		Providers:          map[string]Resource[*models.Provider]{},
		ReviewsByService:   map[string]Resource[[]models.Review]{},
	}
}

func (st State) servicesResource(categoryID string) Resource[[]models.Service] {
	if r, ok := st.ServicesByCategory[categoryID]; ok {
		return r
	}
	return idle[[]models.Service]()
}

func (st State) providerResource(providerID string) Resource[*models.Provider] {
	if r, ok := st.Providers[providerID]; ok {
		return r
	}
	return idle[*models.Provider]()
}

func (st State) reviewsResource(serviceID string) Resource[[]models.Review] {
	if r, ok := st.ReviewsByService[serviceID]; ok {
		return r
	}
	return idle[[]models.Review]()
}

// ServicesForCategory returns a copy of the cached list, never nil.
func (st State) ServicesForCategory(categoryID string) []models.Service {
	data := st.servicesResource(categoryID).Data
	if data == nil {
		return []models.Service{}
	}
	return slices.Clone(data)
}

// ReviewsForService returns a copy of the cached list, never nil.
func (st State) ReviewsForService(serviceID string) []models.Review {
	data := st.reviewsResource(serviceID).Data
	if data == nil {
		return []models.Review{}
	}
	return slices.Clone(data)
}

func (st State) ServiceByID(serviceID string) (models.Service, bool) {
	svc, ok := st.ServiceIndex[serviceID]
	return svc, ok
}

// Provider returns a copy of the cached profile, or nil.
func (st State) Provider(providerID string) *models.Provider {
	p := st.providerResource(providerID).Data
	if p == nil {
		return nil
	}
	cp := *p
	cp.Tags = slices.Clone(p.Tags)
	return &cp
}

// ProviderServices lists the distinct cached services of a provider across all buckets.
func (st State) ProviderServices(providerID string) []models.Service {
	seen := map[string]struct{}{}
	var out []models.Service
	for _, bucket := range st.ServicesByCategory {
		for _, svc := range bucket.Data {
			if svc.ProviderID != providerID {
				continue
			}
			if _, dup := seen[svc.ID]; dup {
				continue
			}
			seen[svc.ID] = struct{}{}
			out = append(out, svc)
		}
	}
	slices.SortFunc(out, func(a, b models.Service) int {
		return strings.Compare(a.ID, b.ID)
	})
	return out
}
