package catalog

import (
	"maps"
	"slices"

	"github.com/joefazee/bosko/models"
)

// action is a state transition request. reduce decides whether it applies.
type action interface{}

type (
	categoriesRequested struct{}
	categoriesReceived  struct{ items []models.Category }
	categoriesFailed    struct{ message string }

	servicesRequested struct{ categoryID string }
	servicesReceived  struct {
		categoryID string
		items      []models.Service
	}
	servicesFailed struct{ categoryID, message string }

	providerRequested struct{ providerID string }
	providerReceived  struct {
		providerID string
		provider   *models.Provider
	}
	providerFailed struct{ providerID, message string }

	reviewsRequested struct{ serviceID string }
	reviewsReceived  struct {
		serviceID string
		items     []models.Review
	}
	reviewsFailed struct{ serviceID, message string }

	reviewInserted struct {
		serviceID string
		review    models.Review
	}
	reviewConfirmed struct {
		serviceID string
		tempID    string
		review    models.Review
	}
	reviewRolledBack struct{ serviceID, tempID string }
)

// reduce returns the next state and whether the action applied. A rejected
// action leaves st untouched. reduce never mutates st's maps or slices.
func reduce(st State, a action) (State, bool) {
	switch a := a.(type) {
	case categoriesRequested:
		if st.Categories.Status == StatusLoading {
			return st, false
		}
		st.Categories = st.Categories.loading()
		return st, true

	case categoriesReceived:
		st.Categories = st.Categories.succeeded(slices.Clone(a.items))
		return st, true

	case categoriesFailed:
		st.Categories = st.Categories.failed(a.message)
		return st, true

	case servicesRequested:
		cur := st.servicesResource(a.categoryID)
		if cur.Status == StatusLoading {
			return st, false
		}
		st.ServicesByCategory = maps.Clone(st.ServicesByCategory)
		st.ServicesByCategory[a.categoryID] = cur.loading()
		return st, true

	case servicesReceived:
		return receiveServices(st, a), true

	case servicesFailed:
		st.ServicesByCategory = maps.Clone(st.ServicesByCategory)
		st.ServicesByCategory[a.categoryID] = st.servicesResource(a.categoryID).failed(a.message)
		return st, true

	case providerRequested:
		cur := st.providerResource(a.providerID)
		if cur.Status == StatusLoading || cur.Status == StatusSuccess {
			return st, false
		}
		st.Providers = maps.Clone(st.Providers)
		st.Providers[a.providerID] = cur.loading()
		return st, true

	case providerReceived:
		st.Providers = maps.Clone(st.Providers)
		st.Providers[a.providerID] = st.providerResource(a.providerID).succeeded(a.provider)
		return st, true

	case providerFailed:
		st.Providers = maps.Clone(st.Providers)
		st.Providers[a.providerID] = st.providerResource(a.providerID).failed(a.message)
		return st, true

	case reviewsRequested:
		cur := st.reviewsResource(a.serviceID)
		if cur.Status == StatusLoading {
			return st, false
		}
		st.ReviewsByService = maps.Clone(st.ReviewsByService)
		st.ReviewsByService[a.serviceID] = cur.loading()
		return st, true

	case reviewsReceived:
		st.ReviewsByService = maps.Clone(st.ReviewsByService)
		st.ReviewsByService[a.serviceID] = st.reviewsResource(a.serviceID).succeeded(slices.Clone(a.items))
		return st, true

	case reviewsFailed:
		st.ReviewsByService = maps.Clone(st.ReviewsByService)
		st.ReviewsByService[a.serviceID] = st.reviewsResource(a.serviceID).failed(a.message)
		return st, true

	case reviewInserted:
		return insertReview(st, a)

	case reviewConfirmed:
		return confirmReview(st, a)

	case reviewRolledBack:
		return rollbackReview(st, a)
	}
	return st, false
}

// receiveServices replaces the category bucket, upserts the flat index and
// refreshes copies of the same services sitting in other buckets.
func receiveServices(st State, a servicesReceived) State {
	items := slices.Clone(a.items)
	fresh := make(map[string]models.Service, len(items))
	for _, svc := range items {
		fresh[svc.ID] = svc
	}

	buckets := maps.Clone(st.ServicesByCategory)
	for categoryID, bucket := range buckets {
		if categoryID == a.categoryID {
			continue
		}
		var patched []models.Service
		for i, svc := range bucket.Data {
			latest, ok := fresh[svc.ID]
			if !ok {
				continue
			}
			if patched == nil {
				patched = slices.Clone(bucket.Data)
			}
			patched[i] = latest
		}
		if patched != nil {
			bucket.Data = patched
			buckets[categoryID] = bucket
		}
	}
	buckets[a.categoryID] = st.servicesResource(a.categoryID).succeeded(items)

	index := maps.Clone(st.ServiceIndex)
	for _, svc := range items {
		index[svc.ID] = svc
	}

	st.ServicesByCategory = buckets
	st.ServiceIndex = index
	return st
}

func indexOfReview(list []models.Review, id string) int {
	return slices.IndexFunc(list, func(r models.Review) bool { return r.ID == id })
}

func insertReview(st State, a reviewInserted) (State, bool) {
	cur := st.reviewsResource(a.serviceID)
	if indexOfReview(cur.Data, a.review.ID) >= 0 {
		return st, false
	}
	list := make([]models.Review, 0, len(cur.Data)+1)
	list = append(list, cur.Data...)
	list = append(list, a.review)
	cur.Data = list

	st.ReviewsByService = maps.Clone(st.ReviewsByService)
	st.ReviewsByService[a.serviceID] = cur
	return st, true
}

// confirmReview swaps the temporary entry for the server copy in place. When a
// refetch already dropped the temporary entry the server copy is appended,
// unless the refetch brought it in already.
func confirmReview(st State, a reviewConfirmed) (State, bool) {
	cur := st.reviewsResource(a.serviceID)
	list := slices.Clone(cur.Data)

	if i := indexOfReview(list, a.tempID); i >= 0 {
		list[i] = a.review
		if dup := indexOfReview(list[i+1:], a.review.ID); dup >= 0 {
			list = slices.Delete(list, i+1+dup, i+2+dup)
		}
	} else if indexOfReview(list, a.review.ID) < 0 {
		list = append(list, a.review)
	} else {
		return st, false
	}
	cur.Data = list

	st.ReviewsByService = maps.Clone(st.ReviewsByService)
	st.ReviewsByService[a.serviceID] = cur
	return st, true
}

func rollbackReview(st State, a reviewRolledBack) (State, bool) {
	cur := st.reviewsResource(a.serviceID)
	i := indexOfReview(cur.Data, a.tempID)
	if i < 0 {
		return st, false
	}
	cur.Data = slices.Delete(slices.Clone(cur.Data), i, i+1)

	st.ReviewsByService = maps.Clone(st.ReviewsByService)
	st.ReviewsByService[a.serviceID] = cur
	return st, true
}
